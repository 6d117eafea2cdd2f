// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ui is the retained-mode toolkit runtime hosted by gghost.
//
// An application describes its interface as a tree of [Element] values
// returned from a view function. Each cycle the runtime builds a
// [UserInterface] from that tree and the widget state kept in a [Cache],
// feeds it [Event] values, collects the resulting messages and draws it
// through a [Renderer]:
//
//	ui := ui.Build(view(), viewport.LogicalSize(), cache, renderer)
//	ui.Update(events, cursor, renderer, clipboard, &messages)
//	interaction := ui.Draw(renderer, cursor)
//	cache = ui.IntoCache()
//
// Layout and drawing happen in logical units. The Renderer records
// primitives into layers and rasterizes them with gg onto a physical
// pixmap using the viewport scale factor.
package ui
