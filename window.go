// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gghost/host"
	"github.com/gogpu/gghost/internal/convert"
	"github.com/gogpu/gghost/surface"
	"github.com/gogpu/gghost/ui"
)

// State is the rendering state of a window.
type State uint8

const (
	// StateUninitialized means no surface exists yet. Events are still
	// queued and applied.
	StateUninitialized State = iota

	// StateReady means the surface matches the viewport.
	StateReady

	// StateResizing is held while the surface is reconfigured.
	StateResizing

	// StateDestroyed means the window left the registry.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateReady:
		return "Ready"
	case StateResizing:
		return "Resizing"
	case StateDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Window is the per-window state of the plugin. The host window is
// referenced, never owned.
//
// Once promoted, a Window is only touched from the event loop.
type Window struct {
	label    string
	host     host.Window
	controls Controls
	hook     EventHook
	scene    Scene

	renderer *ui.Renderer
	surface  surface.Surface
	viewport ui.Viewport

	// dc draws into canvas and is rebuilt when the frame canvas changes.
	dc     *gg.Context
	canvas *gg.Pixmap

	queued    []ui.Event
	cache     ui.Cache
	clipboard ui.Clipboard
	cursor    ui.Cursor
	modifiers gpucontext.Modifiers

	scale         float64
	width, height uint32
	resizePending bool
	redraw        bool

	state                State
	creationFailedLogged bool
}

func newWindow(label string, hw host.Window, controls Controls, r *ui.Renderer, scale float64) *Window {
	width, height := hw.InnerSize()
	w := &Window{
		label:     label,
		host:      hw,
		controls:  controls,
		renderer:  r,
		viewport:  ui.NewViewport(width, height, scale),
		cache:     ui.NewCache(),
		clipboard: clipboardFor(hw),
		scale:     scale,
		width:     width,
		height:    height,
	}
	if h, ok := controls.(EventHook); ok {
		w.hook = h
	}
	return w
}

// Label returns the window label.
func (w *Window) Label() string { return w.label }

// State returns the rendering state.
func (w *Window) State() State { return w.state }

// Viewport returns the viewport the last frame was drawn with.
func (w *Window) Viewport() ui.Viewport { return w.viewport }

// handle records a host event and queues its translation. It reports
// whether an event was queued.
func (w *Window) handle(ev host.Event) bool {
	switch e := ev.(type) {
	case host.Resized:
		w.width, w.height = e.Width, e.Height
		w.resizePending = true
	case host.ModifiersChanged:
		w.modifiers = e.Modifiers
	}

	out, ok, err := convert.Event(ev, convert.State{
		ScaleFactor: w.scale,
		Modifiers:   w.modifiers,
		Cursor:      w.cursor.Position,
	})
	if err != nil {
		slogger().Debug("gghost: event dropped", "window", w.label, "err", err)
		return false
	}

	if e, isScale := ev.(host.ScaleFactorChanged); isScale {
		w.scale = e.ScaleFactor
		w.width, w.height = e.Width, e.Height
		w.resizePending = true
	}
	if !ok {
		return false
	}

	if me, isMouse := out.(ui.MouseEvent); isMouse {
		switch me.Kind {
		case ui.CursorMoved, ui.CursorEntered:
			w.cursor = ui.Cursor{Position: me.Position, Available: true}
		case ui.CursorLeft:
			w.cursor.Available = false
		}
	}

	if w.hook != nil {
		w.hook.OnEvent(out)
	}
	w.queued = append(w.queued, out)
	return true
}

// setCursor forwards shape to the host on every hint. The host may have
// reset the cursor itself.
func (w *Window) setCursor(loop host.EventLoop, shape gpucontext.CursorShape) {
	loop.SetCursor(w.host.ID(), shape)
}

// destroy releases the surface. The host window is left alone.
func (w *Window) destroy(m surface.Manager) {
	if w.dc != nil {
		_ = w.dc.Close()
		w.dc, w.canvas = nil, nil
	}
	if w.surface != nil {
		m.Release(w.host)
		w.surface = nil
	}
	w.queued = nil
	w.state = StateDestroyed
}
