// Package api implements the client for the storefront REST API.
//
// Every response from the API uses a single envelope:
//
//	{ "success": bool, "data": <payload>, "message": <string> }
//
// Failures are normalized into *Error values tagged with a Kind, so callers
// can distinguish transport problems, malformed bodies, server-reported
// failures and missing-session preconditions without parsing message text.
package api

import (
	"context"

	"github.com/shopfront/shopfront/internal/client/models"
)

// TokenSource supplies the current session token for authenticated calls.
// An empty string means no active session. The session store satisfies this.
type TokenSource interface {
	Token() string
}

// Client is the remote storefront API surface.
//
// All methods issue at most one request, with no retries. Methods that
// require authentication fail with Kind KindUnauthenticated before any
// network I/O when the token source is empty.
type Client interface {
	Close() error

	Login(ctx context.Context, username string, password []byte) (*models.LoginResult, error)
	Register(ctx context.Context, username string, password []byte, email string) error
	// Logout requires auth.
	Logout(ctx context.Context) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)

	// Profile calls require auth.
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, newPassword []byte) error
	DeleteProfile(ctx context.Context) error
}
