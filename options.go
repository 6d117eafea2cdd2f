// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"os"
	"time"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gghost/surface"
)

// Option configures a Plugin during creation.
//
// Example:
//
//	// GPU rendering with the default font
//	p, err := gghost.New(provider, loop)
//
//	// Software rendering at a larger text size
//	p, err := gghost.New(provider, loop,
//	    gghost.WithBackend("software"),
//	    gghost.WithTextSize(18))
type Option func(*options)

type options struct {
	manager         surface.Manager
	backend         string
	fatal           func(error)
	now             func() time.Time
	textSize        float32
	font            *text.FontSource
	powerPreference gputypes.PowerPreference
	presentMode     gputypes.PresentMode
}

func defaultOptions() options {
	return options{
		fatal:       defaultFatal,
		now:         time.Now,
		presentMode: gputypes.PresentModeFifo,
	}
}

func defaultFatal(err error) {
	slogger().Error("gghost: unrecoverable render error, exiting", "err", err)
	os.Exit(1)
}

// WithManager sets the surface manager directly. It takes precedence over
// WithBackend. The plugin closes the manager on Close.
func WithManager(m surface.Manager) Option {
	return func(o *options) {
		o.manager = m
	}
}

// WithBackend selects a registered surface backend by name, such as
// "wgpu" or "software". The empty name selects the best available.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithFatalHandler replaces the handler for unrecoverable render errors.
// The default logs the error and exits the process.
func WithFatalHandler(fn func(error)) Option {
	return func(o *options) {
		if fn != nil {
			o.fatal = fn
		}
	}
}

// WithClock sets the time source for redraw events.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithTextSize sets the default text size in logical pixels.
func WithTextSize(size float32) Option {
	return func(o *options) {
		o.textSize = size
	}
}

// WithFont sets the default UI font. Nil selects Go Regular.
func WithFont(f *text.FontSource) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithPowerPreference sets the GPU adapter power preference.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(o *options) {
		o.powerPreference = p
	}
}

// WithPresentMode sets the GPU present mode. FIFO is the default.
func WithPresentMode(m gputypes.PresentMode) Option {
	return func(o *options) {
		o.presentMode = m
	}
}
