package gfx

import "errors"

// Instance errors.
var (
	// ErrUnknownAPI is returned by ParseAPI for unrecognized names.
	ErrUnknownAPI = errors.New("gfx: unknown graphics API")

	// ErrAlreadyBound is returned by Bind when a backend is already bound.
	ErrAlreadyBound = errors.New("gfx: a backend is already bound")

	// ErrIncompleteBinding is returned by Bind when the window, the state
	// or the API is missing. The instance never holds one without the others.
	ErrIncompleteBinding = errors.New("gfx: window, state and API must be bound together")

	// ErrStateMismatch is returned by Bind when the state belongs to another API.
	ErrStateMismatch = errors.New("gfx: state does not belong to the bound API")
)

// ErrInvalidVersion is returned by ParseVersion.
var ErrInvalidVersion = errors.New("gfx: invalid version")
