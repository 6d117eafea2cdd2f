// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// Point is a position in logical units.
type Point struct {
	X, Y float32
}

// Size is an extent in logical units.
type Size struct {
	Width, Height float32
}

// Rectangle is an axis-aligned box in logical units.
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Size returns the extent of r.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Shrink returns r with p removed from each side.
func (r Rectangle) Shrink(p Padding) Rectangle {
	return Rectangle{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  max(0, r.Width-p.Left-p.Right),
		Height: max(0, r.Height-p.Top-p.Bottom),
	}
}

// Padding is spacing around content.
type Padding struct {
	Top, Right, Bottom, Left float32
}

// Uniform returns the same padding on every side.
func Uniform(v float32) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

func (p Padding) horizontal() float32 { return p.Left + p.Right }
func (p Padding) vertical() float32   { return p.Top + p.Bottom }
