// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/gputypes"

// chooseFormat returns the first non-sRGB format, else the first format.
func chooseFormat(formats []gputypes.TextureFormat) (gputypes.TextureFormat, error) {
	if len(formats) == 0 {
		return 0, ErrNoSurfaceFormat
	}
	for _, f := range formats {
		if !f.IsSrgb() {
			return f, nil
		}
	}
	return formats[0], nil
}

// chooseAlphaMode returns the first non-opaque mode, else the first mode.
func chooseAlphaMode(modes []gputypes.CompositeAlphaMode) gputypes.CompositeAlphaMode {
	for _, m := range modes {
		if m != gputypes.CompositeAlphaModeOpaque {
			return m
		}
	}
	if len(modes) > 0 {
		return modes[0]
	}
	return gputypes.CompositeAlphaModeOpaque
}

// choosePresentMode returns want if supported, else FIFO.
func choosePresentMode(want gputypes.PresentMode, modes []gputypes.PresentMode) gputypes.PresentMode {
	if want == gputypes.PresentModeUndefined {
		want = gputypes.PresentModeFifo
	}
	if len(modes) == 0 {
		return want
	}
	for _, m := range modes {
		if m == want {
			return m
		}
	}
	return gputypes.PresentModeFifo
}
