// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "github.com/gogpu/gg"

// TextWidget displays a single line of text.
type TextWidget struct {
	Content string
	Size    float32
	Color   gg.RGBA
}

// Text returns a text element in the default size and black.
func Text(content string) *TextWidget {
	return &TextWidget{Content: content, Color: gg.Black}
}

// WithSize sets the text size.
func (t *TextWidget) WithSize(size float32) *TextWidget {
	t.Size = size
	return t
}

// WithColor sets the text color.
func (t *TextWidget) WithColor(c gg.RGBA) *TextWidget {
	t.Color = c
	return t
}

func (t *TextWidget) Tag() string         { return "text" }
func (t *TextWidget) NewState() any       { return nil }
func (t *TextWidget) Children() []Element { return nil }

func (t *TextWidget) Layout(_ *Tree, limits Limits, r *Renderer) Node {
	s := limits.Resolve(r.MeasureText(t.Content, t.Size))
	return Node{Bounds: Rectangle{Width: s.Width, Height: s.Height}}
}

func (t *TextWidget) Update(*Tree, Event, Node, Cursor, *Shell) Status { return Ignored }

func (t *TextWidget) Draw(_ *Tree, r *Renderer, n Node, _ Cursor) {
	r.FillText(TextRun{
		Content:  t.Content,
		Position: Point{X: n.Bounds.X, Y: n.Bounds.Y},
		Color:    t.Color,
		Size:     t.Size,
	})
}

func (t *TextWidget) Interaction(*Tree, Node, Cursor) Interaction { return InteractionNone }
