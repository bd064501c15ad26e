// Package state persists small client-side key/value records (session token,
// current user) in a local sqlite database.
package state

import "context"

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every record.
	Clear(ctx context.Context) error
}
