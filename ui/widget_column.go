// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// ColumnWidget stacks its children vertically.
type ColumnWidget struct {
	Items   []Element
	Spacing float32
	Padding Padding
}

// Column returns a column of items.
func Column(items ...Element) *ColumnWidget {
	return &ColumnWidget{Items: items}
}

// WithSpacing sets the gap between items.
func (c *ColumnWidget) WithSpacing(s float32) *ColumnWidget {
	c.Spacing = s
	return c
}

// WithPadding sets the padding around the items.
func (c *ColumnWidget) WithPadding(p Padding) *ColumnWidget {
	c.Padding = p
	return c
}

// Push appends an item.
func (c *ColumnWidget) Push(e Element) *ColumnWidget {
	c.Items = append(c.Items, e)
	return c
}

func (c *ColumnWidget) Tag() string         { return "column" }
func (c *ColumnWidget) NewState() any       { return nil }
func (c *ColumnWidget) Children() []Element { return c.Items }

func (c *ColumnWidget) Layout(st *Tree, limits Limits, r *Renderer) Node {
	inner := limits.Loose().Shrink(c.Padding)
	y := c.Padding.Top
	var width float32
	nodes := make([]Node, len(c.Items))
	for i, item := range c.Items {
		if i > 0 {
			y += c.Spacing
		}
		child := item.Layout(&st.Children[i], inner, r)
		nodes[i] = child.Translate(c.Padding.Left, y)
		y += child.Bounds.Height
		width = max(width, child.Bounds.Width)
	}
	s := limits.Resolve(Size{
		Width:  width + c.Padding.horizontal(),
		Height: y + c.Padding.Bottom,
	})
	return Node{Bounds: Rectangle{Width: s.Width, Height: s.Height}, Children: nodes}
}

func (c *ColumnWidget) Update(st *Tree, ev Event, n Node, cursor Cursor, shell *Shell) Status {
	status := Ignored
	for i, item := range c.Items {
		status = status.Merge(item.Update(&st.Children[i], ev, n.Children[i], cursor, shell))
	}
	return status
}

func (c *ColumnWidget) Draw(st *Tree, r *Renderer, n Node, cursor Cursor) {
	for i, item := range c.Items {
		item.Draw(&st.Children[i], r, n.Children[i], cursor)
	}
}

func (c *ColumnWidget) Interaction(st *Tree, n Node, cursor Cursor) Interaction {
	out := InteractionNone
	for i, item := range c.Items {
		out = out.Max(item.Interaction(&st.Children[i], n.Children[i], cursor))
	}
	return out
}
