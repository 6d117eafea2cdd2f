// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gghost/host"
	"github.com/gogpu/gghost/ui"
)

func TestPositionRoundTrip(t *testing.T) {
	scales := []float64{0.5, 1, 1.25, 1.5, 2, 3}
	points := [][2]float64{{0, 0}, {400, 300}, {1919, 1079}, {12.5, 7.25}}
	for _, s := range scales {
		for _, pt := range points {
			p, err := Position(pt[0], pt[1], s)
			if err != nil {
				t.Fatalf("Position(%v, %v, %v): %v", pt[0], pt[1], s, err)
			}
			bx, by := float64(p.X)*s, float64(p.Y)*s
			if math.Abs(bx-pt[0]) > 1e-3 || math.Abs(by-pt[1]) > 1e-3 {
				t.Errorf("scale %v: (%v, %v) -> %+v -> (%v, %v)", s, pt[0], pt[1], p, bx, by)
			}
		}
	}
}

func TestPositionInvalidScale(t *testing.T) {
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Position(10, 10, s); !errors.Is(err, ErrInvalidScaleFactor) {
			t.Errorf("Position(scale=%v) error = %v, want ErrInvalidScaleFactor", s, err)
		}
	}
}

func TestEventCursorMovedUnitScale(t *testing.T) {
	ev, ok, err := Event(host.CursorMoved{ID: 1, X: 400, Y: 300}, State{ScaleFactor: 1})
	if err != nil || !ok {
		t.Fatalf("Event() = (%v, %v, %v)", ev, ok, err)
	}
	me, isMouse := ev.(ui.MouseEvent)
	if !isMouse || me.Kind != ui.CursorMoved || me.Position != (ui.Point{X: 400, Y: 300}) {
		t.Errorf("Event() = %+v, want CursorMoved at (400, 300)", ev)
	}
}

func TestEventTranslation(t *testing.T) {
	st := State{ScaleFactor: 2, Modifiers: gpucontext.ModShift, Cursor: ui.Point{X: 5, Y: 6}}
	tests := []struct {
		name   string
		in     host.Event
		want   ui.Event
		wantOK bool
	}{
		{
			name:   "cursor moved scaled",
			in:     host.CursorMoved{X: 200, Y: 100},
			want:   ui.MouseEvent{Kind: ui.CursorMoved, Position: ui.Point{X: 100, Y: 50}},
			wantOK: true,
		},
		{
			name:   "left press carries cursor",
			in:     host.MouseInput{Button: gpucontext.MouseButtonLeft, Pressed: true},
			want:   ui.MouseEvent{Kind: ui.ButtonPressed, Button: ui.MouseLeft, Position: ui.Point{X: 5, Y: 6}},
			wantOK: true,
		},
		{
			name:   "right release",
			in:     host.MouseInput{Button: gpucontext.MouseButtonRight},
			want:   ui.MouseEvent{Kind: ui.ButtonReleased, Button: ui.MouseRight, Position: ui.Point{X: 5, Y: 6}},
			wantOK: true,
		},
		{
			name: "unmapped button",
			in:   host.MouseInput{Button: gpucontext.MouseButton(42), Pressed: true},
		},
		{
			name:   "wheel lines",
			in:     host.MouseWheel{DeltaY: -1, Mode: gpucontext.ScrollDeltaLine},
			want:   ui.MouseEvent{Kind: ui.WheelScrolled, Position: ui.Point{X: 5, Y: 6}, Delta: ui.ScrollDelta{Lines: true, Y: -1}},
			wantOK: true,
		},
		{
			name:   "wheel pixels scaled",
			in:     host.MouseWheel{DeltaY: 40, Mode: gpucontext.ScrollDeltaPixel},
			want:   ui.MouseEvent{Kind: ui.WheelScrolled, Position: ui.Point{X: 5, Y: 6}, Delta: ui.ScrollDelta{Y: 20}},
			wantOK: true,
		},
		{
			name:   "resized logical",
			in:     host.Resized{Width: 1024, Height: 768},
			want:   ui.WindowEvent{Kind: ui.WindowResized, Size: ui.Size{Width: 512, Height: 384}},
			wantOK: true,
		},
		{
			name:   "scale factor uses new scale",
			in:     host.ScaleFactorChanged{ScaleFactor: 1, Width: 800, Height: 600},
			want:   ui.WindowEvent{Kind: ui.WindowResized, Size: ui.Size{Width: 800, Height: 600}},
			wantOK: true,
		},
		{
			name:   "key press carries modifiers",
			in:     host.KeyboardInput{Key: gpucontext.KeyA, Pressed: true, Text: "A"},
			want:   ui.KeyboardEvent{Kind: ui.KeyPressed, Key: gpucontext.KeyA, Modifiers: gpucontext.ModShift, Text: "A"},
			wantOK: true,
		},
		{
			name: "unknown key",
			in:   host.KeyboardInput{Key: gpucontext.KeyUnknown, Pressed: true},
		},
		{
			name:   "modifiers changed",
			in:     host.ModifiersChanged{Modifiers: gpucontext.ModControl},
			want:   ui.KeyboardEvent{Kind: ui.ModifiersChanged, Modifiers: gpucontext.ModControl},
			wantOK: true,
		},
		{
			name:   "text normalized",
			in:     host.ReceivedText{Text: "e\u0301"},
			want:   ui.KeyboardEvent{Kind: ui.TextCommitted, Modifiers: gpucontext.ModShift, Text: "\u00e9"},
			wantOK: true,
		},
		{name: "empty text", in: host.ReceivedText{}},
		{
			name:   "focus lost",
			in:     host.Focused{Focused: false},
			want:   ui.WindowEvent{Kind: ui.WindowUnfocused},
			wantOK: true,
		},
		{
			name:   "cursor left",
			in:     host.CursorLeft{},
			want:   ui.MouseEvent{Kind: ui.CursorLeft, Position: ui.Point{X: 5, Y: 6}},
			wantOK: true,
		},
		{name: "redraw ignored", in: host.RedrawRequested{}},
		{name: "moved ignored", in: host.Moved{X: 10, Y: 10}},
		{name: "close ignored", in: host.CloseRequested{}},
		{name: "loop destroyed ignored", in: host.LoopDestroyed{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Event(tt.in, st)
			if err != nil {
				t.Fatalf("Event() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Event() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Event() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEventInvalidScale(t *testing.T) {
	tests := []struct {
		name string
		in   host.Event
		st   State
	}{
		{"cursor moved", host.CursorMoved{X: 1, Y: 1}, State{}},
		{"resized", host.Resized{Width: 1, Height: 1}, State{}},
		{"scale factor zero", host.ScaleFactorChanged{Width: 1, Height: 1}, State{ScaleFactor: 1}},
		{"pixel wheel", host.MouseWheel{DeltaY: 1, Mode: gpucontext.ScrollDeltaPixel}, State{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := Event(tt.in, tt.st)
			if ok || !errors.Is(err, ErrInvalidScaleFactor) {
				t.Errorf("Event() = (ok=%v, err=%v), want ErrInvalidScaleFactor", ok, err)
			}
		})
	}
}
