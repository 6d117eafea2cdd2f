// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface manages the drawable surfaces gghost renders into.
//
// A [Manager] hands out one [Surface] per host window. Surfaces are created
// lazily on the first frame, reconfigured on resize and released when the
// window goes away. Each frame follows the same cycle on every backend:
//
//	frame, err := s.AcquireFrame()
//	frame.Clear(background)
//	// draw into frame.Canvas() with gg
//	err = s.Present(frame)
//
// # Backends
//
//   - GPU ([GPUManager]): one wgpu surface per window over an adapter and
//     device shared through a [DevicePool]. The frame canvas is uploaded to
//     a texture and blitted over the cleared swapchain image with
//     premultiplied blending. [GPUFrame.Encode] records extra draws into the
//     same render pass, below the canvas.
//   - Software ([SoftwareManager]): frames are gg pixmaps committed to the
//     host through [host.PixelPresenter].
//
// # Registry
//
// Backends register under a name and priority, mirroring gg's surface
// registry:
//
//	m, err := surface.NewManager("", surface.Options{Pool: pool}) // best available
//	m, err := surface.NewManager("software", surface.Options{})
//
// Built-in backends are "wgpu" (priority 100) and "software" (priority 10).
//
// # Errors
//
// Negotiation failures ([ErrAdapterUnavailable], [ErrNoSurfaceFormat],
// [ErrDeviceCreation]) are returned from AcquireOrCreate. Frame errors are
// either transient ([ErrSurfaceTimeout], [ErrSurfaceOutdated],
// [ErrSurfaceLost], [ErrZeroSize]) or fatal ([ErrSurfaceOutOfMemory]).
package surface
