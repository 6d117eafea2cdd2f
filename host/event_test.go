// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import "testing"

func TestTarget(t *testing.T) {
	tests := []struct {
		name   string
		ev     Event
		wantID WindowID
		wantOK bool
	}{
		{"loop destroyed", LoopDestroyed{}, 0, false},
		{"resized", Resized{ID: 3, Width: 10, Height: 20}, 3, true},
		{"redraw", RedrawRequested{ID: 7}, 7, true},
		{"cursor left", CursorLeft{ID: 9}, 9, true},
		{"scale", ScaleFactorChanged{ID: 1, ScaleFactor: 2}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Target(tt.ev)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("Target() = (%d, %v), want (%d, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
