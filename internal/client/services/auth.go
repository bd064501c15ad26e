// Package services contains the application services of the Shopfront CLI:
// authentication, catalog browsing and profile management. They sit between
// the REPL and the API client, and own the session side effects.
package services

import (
	"context"

	"github.com/shopfront/shopfront/internal/client/api"
	"github.com/shopfront/shopfront/internal/client/models"
	"github.com/shopfront/shopfront/internal/client/session"
	"github.com/shopfront/shopfront/internal/logging"
)

// AuthService defines the authentication operations of the CLI.
//
// Contract:
//   - Login: authenticate against the server; on success the session store
//     holds the returned token and username.
//   - Register: create an account; no session side effect, the user logs in
//     afterwards.
//   - Logout: best-effort server notification; the local session is cleared
//     regardless of the outcome.
//   - Close: release the underlying client.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte, email string) error
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	result, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return a.store.Establish(ctx, result.SessionToken, models.User{Username: result.Username})
}

func (a *authService) Register(ctx context.Context, username string, password []byte, email string) error {
	return a.client.Register(ctx, username, password, email)
}

// Logout notifies the server and clears the local session. The server call
// is best-effort: a failure (network down, expired token) is logged and the
// local state transition proceeds anyway.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
	}
	return a.store.Clear(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
