package apperror

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownMode     = errors.New("unknown game mode")
	ErrInvalidToken    = errors.New("invalid session token")

	// ErrStaleMove aborts a deferred computer move whose session has moved on.
	ErrStaleMove = errors.New("computer move is stale")
)
