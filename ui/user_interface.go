// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// State summarizes an Update call.
type State struct {
	// RedrawRequested is set when a widget asked for another frame.
	RedrawRequested bool
}

// UserInterface is a laid out element tree bound to its state. It lives
// for a single cycle; call IntoCache to keep the state.
type UserInterface struct {
	root   Element
	tree   Tree
	layout Node
	bounds Size
}

// Build lays out root within bounds, reusing the state held by cache.
func Build(root Element, bounds Size, cache Cache, r *Renderer) *UserInterface {
	var tree Tree
	if cache.tree != nil {
		tree = *cache.tree
		tree.Diff(root)
	} else {
		tree = NewTree(root)
	}
	u := &UserInterface{root: root, tree: tree, bounds: bounds}
	u.relayout(r)
	return u
}

func (u *UserInterface) relayout(r *Renderer) {
	u.layout = u.root.Layout(&u.tree, Limits{Max: u.bounds}, r)
}

// Update feeds events to the tree in order and appends published messages
// to messages. The cursor tracks positions carried by mouse events.
func (u *UserInterface) Update(events []Event, cursor Cursor, r *Renderer, clipboard Clipboard, messages *[]Message) (State, []Status) {
	var state State
	statuses := make([]Status, 0, len(events))
	for _, ev := range events {
		cursor = advanceCursor(cursor, ev)
		shell := NewShell(messages, clipboard)
		statuses = append(statuses, u.root.Update(&u.tree, ev, u.layout, cursor, shell))
		if shell.relayoutReq {
			u.relayout(r)
		}
		if shell.redraw {
			state.RedrawRequested = true
		}
	}
	return state, statuses
}

func advanceCursor(c Cursor, ev Event) Cursor {
	me, ok := ev.(MouseEvent)
	if !ok {
		return c
	}
	switch me.Kind {
	case CursorLeft:
		return Cursor{Position: c.Position}
	default:
		return Cursor{Position: me.Position, Available: true}
	}
}

// Draw records the tree into r and returns the pointer hint for cursor.
func (u *UserInterface) Draw(r *Renderer, cursor Cursor) Interaction {
	r.StartLayer(Rectangle{Width: u.bounds.Width, Height: u.bounds.Height})
	u.root.Draw(&u.tree, r, u.layout, cursor)
	r.EndLayer()
	return u.Interaction(cursor)
}

// Interaction returns the pointer hint without drawing.
func (u *UserInterface) Interaction(cursor Cursor) Interaction {
	return u.root.Interaction(&u.tree, u.layout, cursor)
}

// Layout returns the root node.
func (u *UserInterface) Layout() Node { return u.layout }

// IntoCache releases the interface and returns its state.
func (u *UserInterface) IntoCache() Cache {
	t := u.tree
	return Cache{tree: &t}
}
