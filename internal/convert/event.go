// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/gghost/host"
	"github.com/gogpu/gghost/ui"
)

// ErrInvalidScaleFactor is returned for a scale factor that is zero,
// negative or not a number.
var ErrInvalidScaleFactor = errors.New("convert: invalid scale factor")

// State is the input state of a window at the time of an event.
type State struct {
	ScaleFactor float64
	Modifiers   gpucontext.Modifiers
	Cursor      ui.Point
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// Position converts a physical position to logical units.
func Position(x, y, scale float64) (ui.Point, error) {
	if !validScale(scale) {
		return ui.Point{}, fmt.Errorf("%w: %v", ErrInvalidScaleFactor, scale)
	}
	return ui.Point{X: float32(x / scale), Y: float32(y / scale)}, nil
}

// LogicalSize converts a physical size to logical units.
func LogicalSize(width, height uint32, scale float64) (ui.Size, error) {
	p, err := Position(float64(width), float64(height), scale)
	if err != nil {
		return ui.Size{}, err
	}
	return ui.Size{Width: p.X, Height: p.Y}, nil
}

// Event translates a host event. ok is false when the event has no ui
// counterpart, including unmapped keys and buttons.
func Event(ev host.Event, st State) (out ui.Event, ok bool, err error) {
	switch ev := ev.(type) {
	case host.Resized:
		size, err := LogicalSize(ev.Width, ev.Height, st.ScaleFactor)
		if err != nil {
			return nil, false, err
		}
		return ui.WindowEvent{Kind: ui.WindowResized, Size: size}, true, nil

	case host.ScaleFactorChanged:
		size, err := LogicalSize(ev.Width, ev.Height, ev.ScaleFactor)
		if err != nil {
			return nil, false, err
		}
		return ui.WindowEvent{Kind: ui.WindowResized, Size: size}, true, nil

	case host.CursorMoved:
		p, err := Position(ev.X, ev.Y, st.ScaleFactor)
		if err != nil {
			return nil, false, err
		}
		return ui.MouseEvent{Kind: ui.CursorMoved, Position: p}, true, nil

	case host.CursorEntered:
		return ui.MouseEvent{Kind: ui.CursorEntered, Position: st.Cursor}, true, nil

	case host.CursorLeft:
		return ui.MouseEvent{Kind: ui.CursorLeft, Position: st.Cursor}, true, nil

	case host.MouseInput:
		b, ok := mouseButton(ev.Button)
		if !ok {
			return nil, false, nil
		}
		kind := ui.ButtonReleased
		if ev.Pressed {
			kind = ui.ButtonPressed
		}
		return ui.MouseEvent{Kind: kind, Button: b, Position: st.Cursor}, true, nil

	case host.MouseWheel:
		return wheel(ev, st)

	case host.ModifiersChanged:
		return ui.KeyboardEvent{Kind: ui.ModifiersChanged, Modifiers: ev.Modifiers}, true, nil

	case host.KeyboardInput:
		if ev.Key == gpucontext.KeyUnknown || ev.Key > gpucontext.KeyPause {
			return nil, false, nil
		}
		kind := ui.KeyReleased
		if ev.Pressed {
			kind = ui.KeyPressed
		}
		return ui.KeyboardEvent{
			Kind:      kind,
			Key:       ev.Key,
			Modifiers: st.Modifiers,
			Text:      norm.NFC.String(ev.Text),
			Repeat:    ev.Repeat,
		}, true, nil

	case host.ReceivedText:
		if ev.Text == "" {
			return nil, false, nil
		}
		return ui.KeyboardEvent{
			Kind:      ui.TextCommitted,
			Modifiers: st.Modifiers,
			Text:      norm.NFC.String(ev.Text),
		}, true, nil

	case host.Focused:
		if ev.Focused {
			return ui.WindowEvent{Kind: ui.WindowFocused}, true, nil
		}
		return ui.WindowEvent{Kind: ui.WindowUnfocused}, true, nil
	}
	return nil, false, nil
}

func mouseButton(b gpucontext.MouseButton) (ui.MouseButton, bool) {
	switch b {
	case gpucontext.MouseButtonLeft:
		return ui.MouseLeft, true
	case gpucontext.MouseButtonRight:
		return ui.MouseRight, true
	case gpucontext.MouseButtonMiddle:
		return ui.MouseMiddle, true
	case gpucontext.MouseButton4:
		return ui.MouseBack, true
	case gpucontext.MouseButton5:
		return ui.MouseForward, true
	}
	return 0, false
}

func wheel(ev host.MouseWheel, st State) (ui.Event, bool, error) {
	delta := ui.ScrollDelta{Lines: true, X: float32(ev.DeltaX), Y: float32(ev.DeltaY)}
	if ev.Mode == gpucontext.ScrollDeltaPixel {
		p, err := Position(ev.DeltaX, ev.DeltaY, st.ScaleFactor)
		if err != nil {
			return nil, false, err
		}
		delta = ui.ScrollDelta{X: p.X, Y: p.Y}
	}
	return ui.MouseEvent{Kind: ui.WheelScrolled, Position: st.Cursor, Delta: delta}, true, nil
}
