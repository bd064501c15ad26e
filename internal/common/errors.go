// Package common defines shared sentinel errors and small helpers used across
// the Shopfront client layers. Callers should use errors.Is to match the
// sentinel values.
package common

import "errors"

var (
	// Session / auth flow errors.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrStaleResult marks a catalog response that was superseded by a
	// later-issued request before it arrived. Callers drop it silently.
	ErrStaleResult = errors.New("stale result")

	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Generic flow control.
	ErrorInternal = errors.New("internal error")
)
