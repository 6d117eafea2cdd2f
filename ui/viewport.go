// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// Viewport relates the physical drawable size of a window to the logical
// size the toolkit lays out in.
type Viewport struct {
	width, height uint32
	scale         float64
}

// NewViewport returns a viewport for a physical size and scale factor.
// A non-positive scale is treated as 1.
func NewViewport(width, height uint32, scale float64) Viewport {
	if scale <= 0 {
		scale = 1
	}
	return Viewport{width: width, height: height, scale: scale}
}

// PhysicalSize returns the drawable size in physical pixels.
func (v Viewport) PhysicalSize() (width, height uint32) {
	return v.width, v.height
}

// ScaleFactor returns the physical-to-logical ratio.
func (v Viewport) ScaleFactor() float64 {
	if v.scale <= 0 {
		return 1
	}
	return v.scale
}

// LogicalSize returns the physical size divided by the scale factor.
func (v Viewport) LogicalSize() Size {
	s := v.ScaleFactor()
	return Size{
		Width:  float32(float64(v.width) / s),
		Height: float32(float64(v.height) / s),
	}
}
