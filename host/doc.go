// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host describes the windowing host that gghost plugs into.
//
// The host owns the native event loop and the native windows. gghost never
// creates windows itself: it receives host events through [Event] values,
// looks windows up through a [Provider], and asks the loop for redraws and
// cursor changes through an [EventLoop].
//
// Keys, modifiers, mouse buttons and cursor shapes reuse the vocabulary of
// github.com/gogpu/gpucontext so that hosts built on gogpu need no adapter
// layer for them.
//
// # Events
//
// Every event except [LoopDestroyed] targets a single window and implements
// [WindowEvent]:
//
//	switch ev := ev.(type) {
//	case host.Resized:
//	    resize(ev.ID, ev.Width, ev.Height)
//	case host.RedrawRequested:
//	    draw(ev.ID)
//	}
//
// Coordinates carried by events are physical pixels. Conversion to logical
// units happens inside gghost using the window's scale factor.
package host
