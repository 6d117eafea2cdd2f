// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gghost/ui"
)

var cursors = map[ui.Interaction]gpucontext.CursorShape{
	ui.InteractionNone:                   gpucontext.CursorDefault,
	ui.InteractionIdle:                   gpucontext.CursorDefault,
	ui.InteractionPointer:                gpucontext.CursorPointer,
	ui.InteractionGrab:                   gpucontext.CursorMove,
	ui.InteractionGrabbing:               gpucontext.CursorMove,
	ui.InteractionText:                   gpucontext.CursorText,
	ui.InteractionCrosshair:              gpucontext.CursorCrosshair,
	ui.InteractionWorking:                gpucontext.CursorWait,
	ui.InteractionResizingHorizontally:   gpucontext.CursorResizeEW,
	ui.InteractionResizingVertically:     gpucontext.CursorResizeNS,
	ui.InteractionResizingDiagonallyUp:   gpucontext.CursorResizeNESW,
	ui.InteractionResizingDiagonallyDown: gpucontext.CursorResizeNWSE,
	ui.InteractionNotAllowed:             gpucontext.CursorNotAllowed,
	ui.InteractionMove:                   gpucontext.CursorMove,
	ui.InteractionHidden:                 gpucontext.CursorNone,
}

// Cursor returns the host cursor shape for an interaction hint. Unknown
// hints map to the default arrow.
func Cursor(i ui.Interaction) gpucontext.CursorShape {
	if c, ok := cursors[i]; ok {
		return c
	}
	return gpucontext.CursorDefault
}
