package services

import (
	"context"

	"github.com/shopfront/shopfront/internal/client/api"
	"github.com/shopfront/shopfront/internal/client/models"
	"github.com/shopfront/shopfront/internal/client/session"
	"github.com/shopfront/shopfront/internal/logging"
)

// ProfileService manages the authenticated user's account.
type ProfileService interface {
	Get(ctx context.Context) (*models.User, error)
	// UpdatePassword submits the new password as-is; any policy lives
	// server-side.
	UpdatePassword(ctx context.Context, newPassword []byte) error
	// Delete removes the account server-side and, on success, clears the
	// local session: the credentials it holds no longer exist.
	Delete(ctx context.Context) error
}

type profileService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger
}

func NewProfileService(client api.Client, store *session.Store, log logging.Logger) ProfileService {
	return &profileService{client: client, store: store, log: log.With("component", "profile")}
}

func (p *profileService) Get(ctx context.Context) (*models.User, error) {
	return p.client.GetProfile(ctx)
}

func (p *profileService) UpdatePassword(ctx context.Context, newPassword []byte) error {
	return p.client.UpdateProfile(ctx, newPassword)
}

func (p *profileService) Delete(ctx context.Context) error {
	if err := p.client.DeleteProfile(ctx); err != nil {
		return err
	}
	return p.store.Clear(ctx)
}
