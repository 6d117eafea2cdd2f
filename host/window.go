// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import "github.com/gogpu/gpucontext"

// WindowID identifies a native window for the lifetime of the host process.
type WindowID uint64

// Window is a native window owned by the host.
type Window interface {
	// ID returns the window identifier used in host events.
	ID() WindowID

	// Label returns the application-level name of the window.
	Label() string

	// InnerSize returns the drawable area in physical pixels.
	InnerSize() (width, height uint32)

	// ScaleFactor returns the ratio of physical to logical pixels.
	ScaleFactor() float64

	// SetTransparent marks the window background as see-through so a
	// custom scene can be composited behind the UI.
	SetTransparent(transparent bool) error
}

// SurfaceWindow is a Window that exposes native handles for GPU surface
// creation. On Windows display is 0 and window is the HWND; on X11 display
// is the Display pointer and window the XID; on macOS window is the NSView.
type SurfaceWindow interface {
	Window
	RawHandles() (display, window uintptr)
}

// PixelPresenter is a Window that accepts CPU-rendered frames.
//
// pix holds width*height premultiplied RGBA pixels, row-major with no row
// padding. Implementations must copy pix if they retain it.
type PixelPresenter interface {
	Window
	PresentPixels(width, height uint32, pix []byte) error
}

// Provider resolves windows by label and labels by window ID.
//
// gghost calls Window only while creating a window. LabelOf is called for
// every routed event and must be cheap.
type Provider interface {
	Window(label string) (Window, bool)
	LabelOf(id WindowID) (string, bool)
}

// EventLoop is the part of the host loop that gghost drives.
type EventLoop interface {
	// RequestRedraw schedules a RedrawRequested event for the window.
	RequestRedraw(id WindowID)

	// SetCursor changes the cursor shape shown over the window.
	SetCursor(id WindowID, cursor gpucontext.CursorShape)
}
