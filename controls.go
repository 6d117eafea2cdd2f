// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/gghost/ui"
)

// Controls is the application state behind one window.
type Controls interface {
	// View returns the element tree for the current state.
	View() ui.Element

	// Update applies a message published by the tree.
	Update(msg ui.Message)

	// Background returns the color the window is cleared to.
	Background() gg.RGBA
}

// EventHook is implemented by Controls that want to observe input. OnEvent
// is called for each translated event before it is queued.
type EventHook interface {
	OnEvent(ev ui.Event)
}

// Scene draws custom content under the UI.
//
// Frames are composed as background, then the scene, then the UI. dc
// covers the frame in physical pixels and has already been cleared.
type Scene interface {
	Draw(dc *gg.Context, background gg.RGBA)
}

// GPUScene is a Scene that can record directly into the frame's render
// pass on the wgpu backend. The pass is cleared to background and the UI
// is blended over it afterwards. The software backend calls Draw instead.
type GPUScene interface {
	Scene
	DrawGPU(pass *wgpu.RenderPassEncoder, background gg.RGBA)
}

// WindowOption configures a window created by CreateWindow.
type WindowOption func(*Window)

// WithScene attaches a scene to the window. The host window is made
// transparent so the scene can show through.
func WithScene(s Scene) WindowOption {
	return func(w *Window) {
		w.scene = s
	}
}
