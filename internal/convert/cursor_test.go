// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gghost/ui"
)

func TestCursorTotal(t *testing.T) {
	for i := ui.InteractionNone; i <= ui.InteractionHidden; i++ {
		if _, ok := cursors[i]; !ok {
			t.Errorf("no cursor for %v", i)
		}
	}
}

func TestCursor(t *testing.T) {
	tests := []struct {
		in   ui.Interaction
		want gpucontext.CursorShape
	}{
		{ui.InteractionIdle, gpucontext.CursorDefault},
		{ui.InteractionPointer, gpucontext.CursorPointer},
		{ui.InteractionText, gpucontext.CursorText},
		{ui.InteractionResizingHorizontally, gpucontext.CursorResizeEW},
		{ui.InteractionResizingVertically, gpucontext.CursorResizeNS},
		{ui.InteractionWorking, gpucontext.CursorWait},
		{ui.InteractionHidden, gpucontext.CursorNone},
		{ui.Interaction(200), gpucontext.CursorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := Cursor(tt.in); got != tt.want {
				t.Errorf("Cursor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
