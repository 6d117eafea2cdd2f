// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"errors"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/gghost/surface"
	"github.com/gogpu/gghost/ui"
)

var (
	errNoSurface = errors.New("gghost: window has no surface")
	errFrameSize = errors.New("gghost: frame size differs from viewport")
)

// processQueuedEvents applies the queued events to a freshly built tree in
// arrival order and feeds the published messages to the controls. It is a
// no-op when nothing is queued.
func (w *Window) processQueuedEvents() (ui.Interaction, bool) {
	events := w.queued
	w.queued = nil
	if len(events) == 0 {
		return ui.InteractionNone, false
	}

	u := ui.Build(w.controls.View(), w.viewport.LogicalSize(), w.cache, w.renderer)
	var messages []ui.Message
	state, _ := u.Update(events, w.cursor, w.renderer, w.clipboard, &messages)
	hint := u.Interaction(w.cursor)
	w.cache = u.IntoCache()

	if state.RedrawRequested {
		w.redraw = true
	}
	for _, msg := range messages {
		w.controls.Update(msg)
	}
	return hint, true
}

// render draws and presents one frame. A pending resize is applied first
// with the latest size.
func (w *Window) render(now time.Time) (ui.Interaction, bool, error) {
	if w.surface == nil {
		return ui.InteractionNone, false, &RenderError{Window: w.label, Op: "render", Err: errNoSurface}
	}

	if w.resizePending {
		w.state = StateResizing
		if err := w.surface.Resize(w.width, w.height); err != nil {
			w.state = StateReady
			return ui.InteractionNone, false, &RenderError{Window: w.label, Op: "resize", Err: err}
		}
		w.viewport = ui.NewViewport(w.width, w.height, w.scale)
		w.resizePending = false
		w.state = StateReady
	}

	frame, err := w.surface.AcquireFrame()
	if err != nil {
		return ui.InteractionNone, false, &RenderError{Window: w.label, Op: "acquire", Err: err}
	}
	if fw, fh := frame.Size(); !w.viewportMatches(fw, fh) {
		w.surface.Discard(frame)
		w.resizePending = true
		return ui.InteractionNone, false, &RenderError{Window: w.label, Op: "acquire", Err: errFrameSize}
	}

	bg := w.controls.Background()
	frame.Clear(bg)
	dc := w.context(frame.Canvas())
	w.drawScene(dc, frame, bg)

	u := ui.Build(w.controls.View(), w.viewport.LogicalSize(), w.cache, w.renderer)
	var messages []ui.Message
	redraw := ui.WindowEvent{Kind: ui.WindowRedrawRequested, At: now}
	state, _ := u.Update([]ui.Event{redraw}, w.cursor, w.renderer, w.clipboard, &messages)
	hint := u.Draw(w.renderer, w.cursor)
	w.cache = u.IntoCache()

	if state.RedrawRequested {
		w.redraw = true
	}
	for _, msg := range messages {
		w.controls.Update(msg)
	}

	scale := w.viewport.ScaleFactor()
	dc.Push()
	dc.Scale(scale, scale)
	err = w.renderer.Present(dc, w.renderer.TakeLayers())
	dc.Pop()
	if err != nil {
		w.surface.Discard(frame)
		return ui.InteractionNone, false, &RenderError{Window: w.label, Op: "draw", Err: err}
	}

	if err := w.surface.Present(frame); err != nil {
		return ui.InteractionNone, false, &RenderError{Window: w.label, Op: "present", Err: err}
	}
	return hint, true, nil
}

func (w *Window) viewportMatches(width, height uint32) bool {
	vw, vh := w.viewport.PhysicalSize()
	return vw == width && vh == height
}

// context returns a drawing context bound to canvas.
func (w *Window) context(canvas *gg.Pixmap) *gg.Context {
	if w.dc != nil && w.canvas == canvas {
		return w.dc
	}
	if w.dc != nil {
		_ = w.dc.Close()
	}
	w.dc, w.canvas = gg.NewContextForPixmap(canvas), canvas
	return w.dc
}

func (w *Window) drawScene(dc *gg.Context, frame surface.Frame, bg gg.RGBA) {
	if w.scene == nil {
		return
	}
	if gs, ok := w.scene.(GPUScene); ok {
		if gf, ok := frame.(*surface.GPUFrame); ok {
			gf.Encode(func(pass *wgpu.RenderPassEncoder) {
				gs.DrawGPU(pass, bg)
			})
			return
		}
	}
	dc.Push()
	w.scene.Draw(dc, bg)
	dc.Pop()
}

// ensureRenderer moves w from Uninitialized to Ready by creating its
// surface at the current size. Failures are logged once per streak and
// retried on the next redraw.
func (p *Plugin) ensureRenderer(w *Window) error {
	if w.surface != nil {
		return nil
	}
	s, err := p.manager.AcquireOrCreate(w.host, w.width, w.height)
	if err != nil {
		if !w.creationFailedLogged {
			slogger().Error("gghost: renderer creation failed", "window", w.label, "err", err)
			w.creationFailedLogged = true
		}
		return &RenderError{Window: w.label, Op: "create", Err: err}
	}

	w.surface = s
	w.creationFailedLogged = false
	w.viewport = ui.NewViewport(w.width, w.height, w.scale)
	w.resizePending = false
	w.state = StateReady
	slogger().Info("gghost: renderer created", "window", w.label, "width", w.width, "height", w.height, "scale", w.scale)
	return nil
}

// renderWithRetry renders w. Errors are logged and dropped so the next
// redraw tries again; running out of surface memory is fatal.
func (p *Plugin) renderWithRetry(w *Window) (ui.Interaction, bool) {
	hint, ok, err := w.render(p.opts.now())
	if err == nil {
		return hint, ok
	}
	switch {
	case errors.Is(err, surface.ErrSurfaceOutOfMemory):
		p.opts.fatal(err)
	case surface.IsTransient(err):
		slogger().Debug("gghost: frame skipped", "err", err)
	default:
		slogger().Warn("gghost: render failed", "err", err)
	}
	return ui.InteractionNone, false
}
