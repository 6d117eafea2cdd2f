// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"

	"github.com/gogpu/wgpu"
)

// Negotiation errors. The window's renderer cannot be created; callers may
// retry later.
var (
	ErrAdapterUnavailable = errors.New("surface: no compatible adapter")
	ErrDeviceCreation     = errors.New("surface: device creation failed")
	ErrNoSurfaceFormat    = errors.New("surface: no supported surface format")
	ErrUnsupportedWindow  = errors.New("surface: window does not support this backend")
	ErrNoPool             = errors.New("surface: device pool required")
)

// Frame errors.
var (
	// ErrSurfaceOutOfMemory is fatal. It matches wgpu.ErrOutOfMemory.
	ErrSurfaceOutOfMemory = &frameError{msg: "surface: out of memory", cause: wgpu.ErrOutOfMemory}

	ErrSurfaceTimeout  = errors.New("surface: frame acquisition timed out")
	ErrSurfaceOutdated = errors.New("surface: surface outdated")
	ErrSurfaceLost     = errors.New("surface: surface lost")
	ErrZeroSize        = errors.New("surface: zero-sized surface")
	ErrClosed          = errors.New("surface: closed")
	ErrForeignFrame    = errors.New("surface: frame belongs to another surface")
	ErrFrameReleased   = errors.New("surface: frame already presented or discarded")
)

type frameError struct {
	msg   string
	cause error
}

func (e *frameError) Error() string { return e.msg }
func (e *frameError) Unwrap() error { return e.cause }

// IsTransient reports whether a frame error may clear up on a later frame.
func IsTransient(err error) bool {
	return errors.Is(err, ErrSurfaceTimeout) ||
		errors.Is(err, ErrSurfaceOutdated) ||
		errors.Is(err, ErrSurfaceLost) ||
		errors.Is(err, ErrZeroSize)
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no backends are registered or
	// available on the current system.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}
