// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// Message is an application message published by a widget.
type Message = any

// Element is a node of the widget tree returned by a view function.
//
// Elements are values rebuilt every cycle. Persistent widget state lives in
// the [Tree] passed to each method, matched to the element by position and
// Tag.
type Element interface {
	// Tag identifies the widget kind. State is reset when the tag at a
	// position in the tree changes.
	Tag() string

	// NewState returns the initial widget state, or nil.
	NewState() any

	// Children returns the child elements in tree order.
	Children() []Element

	// Layout computes the node for this element within limits.
	Layout(st *Tree, limits Limits, r *Renderer) Node

	// Update handles one event. Widgets publish messages through shell.
	Update(st *Tree, ev Event, n Node, cursor Cursor, shell *Shell) Status

	// Draw records primitives for the element.
	Draw(st *Tree, r *Renderer, n Node, cursor Cursor)

	// Interaction returns the pointer hint for the cursor.
	Interaction(st *Tree, n Node, cursor Cursor) Interaction
}

// Status reports whether a widget consumed an event.
type Status uint8

const (
	Ignored Status = iota
	Captured
)

// Merge returns Captured if either status is Captured.
func (s Status) Merge(o Status) Status {
	if s == Captured || o == Captured {
		return Captured
	}
	return Ignored
}

// Limits bounds the size an element may take during layout.
type Limits struct {
	Min, Max Size
}

// Resolve clamps s into the limits.
func (l Limits) Resolve(s Size) Size {
	return Size{
		Width:  min(max(s.Width, l.Min.Width), l.Max.Width),
		Height: min(max(s.Height, l.Min.Height), l.Max.Height),
	}
}

// Shrink returns limits reduced by padding.
func (l Limits) Shrink(p Padding) Limits {
	return Limits{
		Min: Size{
			Width:  max(0, l.Min.Width-p.horizontal()),
			Height: max(0, l.Min.Height-p.vertical()),
		},
		Max: Size{
			Width:  max(0, l.Max.Width-p.horizontal()),
			Height: max(0, l.Max.Height-p.vertical()),
		},
	}
}

// Loose drops the minimum size.
func (l Limits) Loose() Limits {
	return Limits{Max: l.Max}
}

// Node is the result of layout. Bounds are absolute once the root has been
// laid out.
type Node struct {
	Bounds   Rectangle
	Children []Node
}

// Translate moves n and its children by (dx, dy).
func (n Node) Translate(dx, dy float32) Node {
	out := Node{Bounds: n.Bounds}
	out.Bounds.X += dx
	out.Bounds.Y += dy
	if len(n.Children) > 0 {
		out.Children = make([]Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Translate(dx, dy)
		}
	}
	return out
}

// Shell collects the side effects of Update.
type Shell struct {
	messages    *[]Message
	clipboard   Clipboard
	redraw      bool
	relayoutReq bool
}

// NewShell returns a shell that appends published messages to messages.
func NewShell(messages *[]Message, clipboard Clipboard) *Shell {
	if clipboard == nil {
		clipboard = NullClipboard{}
	}
	return &Shell{messages: messages, clipboard: clipboard}
}

// Publish queues msg for the application.
func (s *Shell) Publish(msg Message) {
	if s.messages != nil {
		*s.messages = append(*s.messages, msg)
	}
}

// RequestRedraw asks the host for another frame.
func (s *Shell) RequestRedraw() { s.redraw = true }

// InvalidateLayout asks the runtime to lay the tree out again.
func (s *Shell) InvalidateLayout() { s.relayoutReq = true }

// Clipboard returns the clipboard available to widgets.
func (s *Shell) Clipboard() Clipboard { return s.clipboard }

// RedrawRequested reports whether a widget asked for a redraw.
func (s *Shell) RedrawRequested() bool { return s.redraw }
