// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "errors"

var (
	// ErrBackendUnavailable is returned when no HAL backend is registered
	// for the requested API.
	ErrBackendUnavailable = errors.New("device: HAL backend not available")

	// ErrNoAdapter is returned when the HAL instance exposes no adapters.
	ErrNoAdapter = errors.New("device: no GPU adapters found")

	// ErrOpenFailed wraps instance or device creation failures.
	ErrOpenFailed = errors.New("device: open failed")

	// ErrNilProvider is returned by Adopt for a nil provider.
	ErrNilProvider = errors.New("device: nil device provider")

	// ErrNotShareable is returned when a provider does not expose HAL objects.
	ErrNotShareable = errors.New("device: provider cannot share its device")

	// ErrDeviceLost is reported after the device was lost.
	ErrDeviceLost = errors.New("device: lost")

	// ErrClosed is reported after Close.
	ErrClosed = errors.New("device: closed")
)
