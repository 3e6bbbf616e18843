// Package apperr defines sentinel errors shared across the engine.
package apperr

import "errors"

var (
	// ErrNotFound marks expected not-found conditions (missing note, missing
	// session, missing workspace). Handlers absorb it into empty results.
	ErrNotFound = errors.New("not found")

	// ErrNoVault means the configured vault could not be resolved. Every
	// query is meaningless without one, so this class surfaces to the client.
	ErrNoVault = errors.New("vault not configured")
)
