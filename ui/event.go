// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"time"

	"github.com/gogpu/gpucontext"
)

// Event is an input or window event understood by widgets.
type Event interface {
	uiEvent()
}

// MouseEventKind enumerates mouse events.
type MouseEventKind uint8

const (
	CursorMoved MouseEventKind = iota
	CursorEntered
	CursorLeft
	ButtonPressed
	ButtonReleased
	WheelScrolled
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
)

// ScrollDelta is a wheel movement. Lines is false when X and Y are logical
// pixels.
type ScrollDelta struct {
	Lines bool
	X, Y  float32
}

// MouseEvent is a pointer event. Position is the logical cursor position
// at the time of the event.
type MouseEvent struct {
	Kind     MouseEventKind
	Position Point
	Button   MouseButton
	Delta    ScrollDelta
}

// KeyboardEventKind enumerates keyboard events.
type KeyboardEventKind uint8

const (
	KeyPressed KeyboardEventKind = iota
	KeyReleased
	ModifiersChanged
	TextCommitted
)

// KeyboardEvent is a key or text event. Modifiers holds the modifier state
// current when the event was produced.
type KeyboardEvent struct {
	Kind      KeyboardEventKind
	Key       gpucontext.Key
	Modifiers gpucontext.Modifiers
	Text      string
	Repeat    bool
}

// WindowEventKind enumerates window events.
type WindowEventKind uint8

const (
	WindowResized WindowEventKind = iota
	WindowFocused
	WindowUnfocused
	WindowRedrawRequested
)

// WindowEvent is a window-level event. Size is set for WindowResized and At
// for WindowRedrawRequested.
type WindowEvent struct {
	Kind WindowEventKind
	Size Size
	At   time.Time
}

func (MouseEvent) uiEvent()    {}
func (KeyboardEvent) uiEvent() {}
func (WindowEvent) uiEvent()   {}

// Cursor is the pointer as seen by widgets.
type Cursor struct {
	Position  Point
	Available bool
}

// Over reports whether the cursor is available and inside r.
func (c Cursor) Over(r Rectangle) bool {
	return c.Available && r.Contains(c.Position)
}
