// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "github.com/gogpu/gg"

// ContainerWidget pads its content, optionally fills the available space
// and centers the content in it.
type ContainerWidget struct {
	Content    Element
	Padding    Padding
	Background gg.RGBA
	Fill       bool
	Center     bool
}

// Container wraps content.
func Container(content Element) *ContainerWidget {
	return &ContainerWidget{Content: content}
}

// Filled makes the container take all available space and center content.
func (c *ContainerWidget) Filled() *ContainerWidget {
	c.Fill, c.Center = true, true
	return c
}

// WithBackground sets the background color.
func (c *ContainerWidget) WithBackground(bg gg.RGBA) *ContainerWidget {
	c.Background = bg
	return c
}

// WithPadding sets the padding.
func (c *ContainerWidget) WithPadding(p Padding) *ContainerWidget {
	c.Padding = p
	return c
}

func (c *ContainerWidget) Tag() string         { return "container" }
func (c *ContainerWidget) NewState() any       { return nil }
func (c *ContainerWidget) Children() []Element { return []Element{c.Content} }

func (c *ContainerWidget) Layout(st *Tree, limits Limits, r *Renderer) Node {
	child := c.Content.Layout(&st.Children[0], limits.Loose().Shrink(c.Padding), r)
	want := Size{
		Width:  child.Bounds.Width + c.Padding.horizontal(),
		Height: child.Bounds.Height + c.Padding.vertical(),
	}
	if c.Fill {
		want = limits.Max
	}
	s := limits.Resolve(want)
	dx, dy := c.Padding.Left, c.Padding.Top
	if c.Center {
		inner := Rectangle{Width: s.Width, Height: s.Height}.Shrink(c.Padding)
		dx += max(0, (inner.Width-child.Bounds.Width)/2)
		dy += max(0, (inner.Height-child.Bounds.Height)/2)
	}
	return Node{
		Bounds:   Rectangle{Width: s.Width, Height: s.Height},
		Children: []Node{child.Translate(dx, dy)},
	}
}

func (c *ContainerWidget) Update(st *Tree, ev Event, n Node, cursor Cursor, shell *Shell) Status {
	return c.Content.Update(&st.Children[0], ev, n.Children[0], cursor, shell)
}

func (c *ContainerWidget) Draw(st *Tree, r *Renderer, n Node, cursor Cursor) {
	if c.Background.A > 0 {
		r.FillQuad(Quad{Bounds: n.Bounds, Background: c.Background})
	}
	c.Content.Draw(&st.Children[0], r, n.Children[0], cursor)
}

func (c *ContainerWidget) Interaction(st *Tree, n Node, cursor Cursor) Interaction {
	return c.Content.Interaction(&st.Children[0], n.Children[0], cursor)
}
