// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// Interaction is the pointer-interaction hint a widget reports for the
// cursor position. The host maps it to a native cursor shape.
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionIdle
	InteractionPointer
	InteractionGrab
	InteractionGrabbing
	InteractionText
	InteractionCrosshair
	InteractionWorking
	InteractionResizingHorizontally
	InteractionResizingVertically
	InteractionResizingDiagonallyUp
	InteractionResizingDiagonallyDown
	InteractionNotAllowed
	InteractionMove
	InteractionHidden
)

var interactionNames = [...]string{
	"None", "Idle", "Pointer", "Grab", "Grabbing", "Text", "Crosshair",
	"Working", "ResizingHorizontally", "ResizingVertically",
	"ResizingDiagonallyUp", "ResizingDiagonallyDown", "NotAllowed", "Move",
	"Hidden",
}

// String returns the interaction name.
func (i Interaction) String() string {
	if int(i) < len(interactionNames) {
		return interactionNames[i]
	}
	return "Unknown"
}

// Max returns the more specific of two interactions.
func (i Interaction) Max(o Interaction) Interaction {
	if o > i {
		return o
	}
	return i
}
