// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"errors"
	"fmt"

	"github.com/gogpu/gghost/internal/convert"
)

// ErrConfiguration is the class of errors caused by invalid input to the
// plugin. Every configuration error matches it with errors.Is.
var ErrConfiguration = errors.New("gghost: configuration error")

var (
	// ErrMissingLabel is returned by CreateWindow for an empty label.
	ErrMissingLabel = fmt.Errorf("%w: missing window label", ErrConfiguration)

	// ErrNotInitialized is returned when the plugin was not created with New,
	// or has been closed.
	ErrNotInitialized = fmt.Errorf("%w: plugin not initialized", ErrConfiguration)

	// ErrWindowNotFound is returned when the host has no window for a label.
	ErrWindowNotFound = fmt.Errorf("%w: window not found", ErrConfiguration)

	// ErrInvalidScaleFactor is returned for a zero, negative or NaN scale
	// factor. It also matches convert.ErrInvalidScaleFactor.
	ErrInvalidScaleFactor = fmt.Errorf("%w: %w", ErrConfiguration, convert.ErrInvalidScaleFactor)
)

// RenderError reports a failed pipeline step for one window.
type RenderError struct {
	Window string
	Op     string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("gghost: %s %q: %v", e.Op, e.Window, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
