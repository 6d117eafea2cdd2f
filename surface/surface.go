// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gghost/host"
)

// Surface is the drawable target of one host window.
type Surface interface {
	// Resize reconfigures the surface for a new physical size. Adapter and
	// device are never renegotiated.
	Resize(width, height uint32) error

	// AcquireFrame returns the next frame to draw into.
	AcquireFrame() (Frame, error)

	// Present shows a frame returned by AcquireFrame.
	Present(f Frame) error

	// Discard gives back a frame that will not be presented. Frames from
	// another surface and frames already presented are ignored.
	Discard(f Frame)

	// Size returns the configured physical size.
	Size() (width, height uint32)

	// Close releases the surface. Closing twice is a no-op.
	Close() error
}

// Frame is a single image being drawn.
type Frame interface {
	// Size returns the frame size in physical pixels.
	Size() (width, height uint32)

	// Canvas returns the premultiplied RGBA pixmap the UI is rasterized
	// into. It has the frame's size.
	Canvas() *gg.Pixmap

	// Clear sets the background the frame is composited over.
	Clear(background gg.RGBA)
}

// Manager creates and caches surfaces per window.
type Manager interface {
	// AcquireOrCreate returns the window's surface, creating it at the
	// given physical size on first use. It is idempotent per window ID.
	AcquireOrCreate(w host.Window, width, height uint32) (Surface, error)

	// Release closes and forgets the window's surface.
	Release(w host.Window)

	// Close releases every surface.
	Close() error
}

// Options configure a Manager created through the registry.
type Options struct {
	// Pool shares the GPU adapter and device. Required by "wgpu".
	Pool *DevicePool

	// PresentMode is the requested present mode. Zero selects FIFO.
	PresentMode gputypes.PresentMode
}
