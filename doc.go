// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gghost embeds the retained-mode UI runtime of package ui into
// windows owned by a host application.
//
// # Overview
//
// The host owns the native windows and the event loop. gghost receives
// every event through [Plugin.HandleEvent], translates input into ui
// events, and on each redraw request runs the frame pipeline: the queued
// events are applied to the element tree, the application's [Controls]
// receive the published messages, and the tree is drawn and presented to
// a surface backed either by wgpu or by a CPU pixel buffer.
//
// # Quick Start
//
//	p, err := gghost.New(provider, loop)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	// Any goroutine, before or after the host window exists in the loop.
//	if err := p.CreateWindow("main", &counter{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// On the event loop, for every host event:
//	p.HandleEvent(ev)
//
// # Window lifecycle
//
// CreateWindow stages the window. It joins the registry on the first event
// the loop delivers for its host window, which keeps window creation from
// racing with the loop. A window is rendered once its surface exists; the
// surface is created on the first redraw and retried on later redraws if
// negotiation fails. Close and destroy events remove the window and
// release its surface, never the host window.
//
// # Compositing
//
// Both backends compose each frame as background, then the optional
// [Scene], then the UI.
//
// # Logging
//
// gghost is silent by default. Call [SetLogger] to enable structured
// logging through log/slog.
package gghost
