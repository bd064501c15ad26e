// Package session tracks the authenticated identity and bearer token, and
// makes them durable across runs of the client.
//
// The persisted form is two independent records in the local state store:
// the opaque session token and the JSON-encoded user. The two writes are
// deliberately not wrapped in a transaction; a crash between them leaves
// partial state, which Restore treats as logged out.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopfront/shopfront/internal/client/models"
	"github.com/shopfront/shopfront/internal/client/repositories/state"
)

// Fixed persistence keys.
const (
	KeySessionToken = "session_token"
	KeyCurrentUser  = "current_user"
)

// Store holds the in-memory session and syncs it with the state repository.
// Safe for concurrent readers; writes happen only on login/logout/delete,
// which are user-serialized.
type Store struct {
	repo state.Repository

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewStore(repo state.Repository) *Store {
	return &Store{repo: repo}
}

// Restore loads the persisted session. The in-memory session is set only
// when both records are present and the user record decodes; any partial or
// corrupted state is ignored and the store stays unauthenticated.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.repo.Get(ctx, KeySessionToken)
	if err != nil {
		return err
	}
	rawUser, err := s.repo.Get(ctx, KeyCurrentUser)
	if err != nil {
		return err
	}

	if len(token) == 0 || len(rawUser) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil
	}

	s.mu.Lock()
	s.token = string(token)
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Establish sets the in-memory session and persists both records. The token
// is written first, then the user; there is no atomicity across the two.
func (s *Store) Establish(ctx context.Context, token string, user models.User) error {
	s.mu.Lock()
	s.token = token
	u := user
	s.user = &u
	s.mu.Unlock()

	if err := s.repo.Set(ctx, KeySessionToken, []byte(token)); err != nil {
		return err
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, KeyCurrentUser, rawUser)
}

// Clear drops the in-memory session unconditionally, then removes the
// persisted records. Storage errors are returned but the store is already
// unauthenticated by then.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	errToken := s.repo.Delete(ctx, KeySessionToken)
	errUser := s.repo.Delete(ctx, KeyCurrentUser)
	if errToken != nil {
		return errToken
	}
	return errUser
}

// Token returns the current session token, or "" when logged out.
// Satisfies api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user and whether a session is active.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}
