package window

import "errors"

var (
	// ErrCreateFailed is returned when a system could not create a window
	// and has no further detail.
	ErrCreateFailed = errors.New("window: creation failed")

	// ErrInvalidSize is returned for non-positive window dimensions.
	ErrInvalidSize = errors.New("window: invalid size")

	// ErrDestroyed is returned when operating on a destroyed window.
	ErrDestroyed = errors.New("window: already destroyed")

	// ErrSystemClosed is returned when creating a window on a closed system.
	ErrSystemClosed = errors.New("window: system closed")
)
