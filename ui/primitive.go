// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "github.com/gogpu/gg"

// Primitive is a drawing command recorded by widgets.
type Primitive interface {
	primitive()
}

// Quad is a filled and optionally stroked rectangle.
type Quad struct {
	Bounds       Rectangle
	Background   gg.RGBA
	BorderRadius float32
	BorderWidth  float32
	BorderColor  gg.RGBA
}

// TextRun is a single line of text. Position is the top-left corner of the
// line box.
type TextRun struct {
	Content  string
	Position Point
	Color    gg.RGBA
	Size     float32
}

func (Quad) primitive()    {}
func (TextRun) primitive() {}

// Layer is a group of primitives sharing a clip rectangle. Layers are
// composited in order.
type Layer struct {
	Bounds     Rectangle
	Primitives []Primitive
}
