// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import "github.com/gogpu/gpucontext"

// Event is a host event. The set of implementations is closed.
type Event interface {
	hostEvent()
}

// WindowEvent is an Event targeting a single window.
type WindowEvent interface {
	Event
	Window() WindowID
}

// LoopDestroyed is delivered once when the host loop is shutting down.
type LoopDestroyed struct{}

// WindowCreated is delivered after the host created a native window.
type WindowCreated struct{ ID WindowID }

// WindowDestroyed is delivered after a native window was destroyed.
type WindowDestroyed struct{ ID WindowID }

// CloseRequested is delivered when the user asks to close a window.
type CloseRequested struct{ ID WindowID }

// Resized reports a new inner size in physical pixels.
type Resized struct {
	ID            WindowID
	Width, Height uint32
}

// ScaleFactorChanged reports a new scale factor together with the inner
// size the host picked for it.
type ScaleFactorChanged struct {
	ID            WindowID
	ScaleFactor   float64
	Width, Height uint32
}

// Moved reports a new outer position in physical pixels.
type Moved struct {
	ID   WindowID
	X, Y int32
}

// CursorMoved reports the pointer position in physical pixels relative to
// the window's inner area.
type CursorMoved struct {
	ID   WindowID
	X, Y float64
}

// CursorEntered is delivered when the pointer enters the window.
type CursorEntered struct{ ID WindowID }

// CursorLeft is delivered when the pointer leaves the window.
type CursorLeft struct{ ID WindowID }

// MouseInput reports a button press or release.
type MouseInput struct {
	ID      WindowID
	Button  gpucontext.MouseButton
	Pressed bool
}

// MouseWheel reports a scroll delta. Mode tells whether the delta is in
// lines, pages or physical pixels.
type MouseWheel struct {
	ID             WindowID
	DeltaX, DeltaY float64
	Mode           gpucontext.ScrollDeltaMode
}

// ModifiersChanged reports the new modifier state.
type ModifiersChanged struct {
	ID        WindowID
	Modifiers gpucontext.Modifiers
}

// KeyboardInput reports a key press or release. Text carries the text the
// key produced, if any.
type KeyboardInput struct {
	ID      WindowID
	Key     gpucontext.Key
	Pressed bool
	Repeat  bool
	Text    string
}

// ReceivedText reports committed text that is not tied to a single key,
// such as IME output.
type ReceivedText struct {
	ID   WindowID
	Text string
}

// Focused reports a focus change.
type Focused struct {
	ID      WindowID
	Focused bool
}

// RedrawRequested asks for a new frame.
type RedrawRequested struct{ ID WindowID }

func (LoopDestroyed) hostEvent()      {}
func (WindowCreated) hostEvent()      {}
func (WindowDestroyed) hostEvent()    {}
func (CloseRequested) hostEvent()     {}
func (Resized) hostEvent()            {}
func (ScaleFactorChanged) hostEvent() {}
func (Moved) hostEvent()              {}
func (CursorMoved) hostEvent()        {}
func (CursorEntered) hostEvent()      {}
func (CursorLeft) hostEvent()         {}
func (MouseInput) hostEvent()         {}
func (MouseWheel) hostEvent()         {}
func (ModifiersChanged) hostEvent()   {}
func (KeyboardInput) hostEvent()      {}
func (ReceivedText) hostEvent()       {}
func (Focused) hostEvent()            {}
func (RedrawRequested) hostEvent()    {}

func (e WindowCreated) Window() WindowID      { return e.ID }
func (e WindowDestroyed) Window() WindowID    { return e.ID }
func (e CloseRequested) Window() WindowID     { return e.ID }
func (e Resized) Window() WindowID            { return e.ID }
func (e ScaleFactorChanged) Window() WindowID { return e.ID }
func (e Moved) Window() WindowID              { return e.ID }
func (e CursorMoved) Window() WindowID        { return e.ID }
func (e CursorEntered) Window() WindowID      { return e.ID }
func (e CursorLeft) Window() WindowID         { return e.ID }
func (e MouseInput) Window() WindowID         { return e.ID }
func (e MouseWheel) Window() WindowID         { return e.ID }
func (e ModifiersChanged) Window() WindowID   { return e.ID }
func (e KeyboardInput) Window() WindowID      { return e.ID }
func (e ReceivedText) Window() WindowID       { return e.ID }
func (e Focused) Window() WindowID            { return e.ID }
func (e RedrawRequested) Window() WindowID    { return e.ID }

// Target returns the window an event is addressed to.
func Target(ev Event) (WindowID, bool) {
	we, ok := ev.(WindowEvent)
	if !ok {
		return 0, false
	}
	return we.Window(), true
}
