// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gghost/host"
	"github.com/gogpu/gghost/internal/convert"
	"github.com/gogpu/gghost/surface"
	"github.com/gogpu/gghost/ui"
)

// Plugin routes host events into per-window UI pipelines.
//
// HandleEvent, CloseWindow and Windows must be called from the host event
// loop. CreateWindow may be called from any goroutine.
type Plugin struct {
	provider host.Provider
	loop     host.EventLoop
	opts     options

	pool     *surface.DevicePool
	manager  surface.Manager
	settings ui.Settings
	reg      *registry

	// inert is set once the loop is destroyed.
	inert  bool
	closed atomic.Bool
}

// New creates a plugin for the host. Unless WithManager is given, the
// surface backend is chosen from the registry by WithBackend.
func New(provider host.Provider, loop host.EventLoop, opts ...Option) (*Plugin, error) {
	if provider == nil || loop == nil {
		return nil, fmt.Errorf("%w: nil provider or event loop", ErrConfiguration)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Plugin{provider: provider, loop: loop, opts: o}

	p.manager = o.manager
	if p.manager == nil {
		p.pool = surface.NewDevicePool(surface.PoolOptions{PowerPreference: o.powerPreference})
		m, err := surface.NewManager(o.backend, surface.Options{Pool: p.pool, PresentMode: o.presentMode})
		if err != nil {
			_ = p.pool.Close()
			return nil, fmt.Errorf("gghost: surface backend %q: %w", o.backend, err)
		}
		p.manager = m
	}

	p.settings = ui.Settings{Font: o.font, TextSize: o.textSize}
	if p.settings.Font == nil {
		f, err := ui.DefaultFont()
		if err != nil {
			slogger().Warn("gghost: default font unavailable, text is not drawn", "err", err)
		}
		p.settings.Font = f
	}

	p.reg = newRegistry(p.manager)
	return p, nil
}

// CreateWindow stages a window for the host window with the given label.
// It joins the registry when the event loop first sees an event for it.
// A window staged earlier and not yet registered is replaced.
func (p *Plugin) CreateWindow(label string, controls Controls, opts ...WindowOption) error {
	if p == nil || p.reg == nil || p.closed.Load() {
		return ErrNotInitialized
	}
	if label == "" {
		return ErrMissingLabel
	}
	if controls == nil {
		return fmt.Errorf("%w: nil controls for %q", ErrConfiguration, label)
	}
	hw, ok := p.provider.Window(label)
	if !ok {
		return fmt.Errorf("%w: %q", ErrWindowNotFound, label)
	}
	scale := hw.ScaleFactor()
	if _, err := convert.Position(0, 0, scale); err != nil {
		return fmt.Errorf("%w: %q has scale %v", ErrInvalidScaleFactor, label, scale)
	}

	w := newWindow(label, hw, controls, ui.NewRenderer(p.settings), scale)
	for _, opt := range opts {
		opt(w)
	}
	if w.scene != nil {
		if err := hw.SetTransparent(true); err != nil {
			slogger().Debug("gghost: window transparency unavailable", "window", label, "err", err)
		}
	}

	if prev := p.reg.staging.put(label, w); prev != nil {
		slogger().Debug("gghost: staged window replaced", "window", prev.label)
	}
	return nil
}

// HandleEvent processes one host event. It always returns false so the
// host continues its own handling.
func (p *Plugin) HandleEvent(ev host.Event) bool {
	if p.inert || p.closed.Load() {
		return false
	}
	if _, ok := ev.(host.LoopDestroyed); ok {
		p.inert = true
		return false
	}

	id, ok := host.Target(ev)
	if !ok {
		return false
	}
	label, ok := p.route(id)
	if !ok {
		return false
	}

	switch ev.(type) {
	case host.WindowDestroyed, host.CloseRequested:
		p.reg.remove(label)
		return false
	}

	w := p.reg.promote(label)
	if w == nil {
		slogger().Debug("gghost: event for unmanaged window", "window", label)
		return false
	}

	if _, ok := ev.(host.RedrawRequested); ok {
		p.redraw(w)
		return false
	}
	if w.handle(ev) {
		p.loop.RequestRedraw(id)
	}
	return false
}

// route resolves a host window ID to its label.
func (p *Plugin) route(id host.WindowID) (string, bool) {
	label, ok := p.provider.LabelOf(id)
	if !ok {
		slogger().Debug("gghost: event for unknown window dropped", "id", id)
	}
	return label, ok
}

func (p *Plugin) redraw(w *Window) {
	rendererErr := p.ensureRenderer(w)

	hint, hinted := w.processQueuedEvents()
	if rendererErr == nil {
		if h, ok := p.renderWithRetry(w); ok {
			hint, hinted = h, true
		}
	}
	if hinted {
		w.setCursor(p.loop, convert.Cursor(hint))
	}
	if w.redraw {
		w.redraw = false
		p.loop.RequestRedraw(w.host.ID())
	}
}

// CloseWindow removes the window with label, registered or still staged,
// and releases its surface. The host window is not closed.
func (p *Plugin) CloseWindow(label string) error {
	if p == nil || p.reg == nil {
		return ErrNotInitialized
	}
	if !p.reg.remove(label) {
		return fmt.Errorf("%w: %q", ErrWindowNotFound, label)
	}
	return nil
}

// Windows returns the labels of registered windows in sorted order.
func (p *Plugin) Windows() []string {
	if p == nil || p.reg == nil {
		return nil
	}
	return p.reg.labels()
}

// Close removes every window, staged ones included, and releases the
// surface backend. The plugin is unusable afterwards.
func (p *Plugin) Close() error {
	if p == nil || p.reg == nil || p.closed.Swap(true) {
		return nil
	}
	p.reg.removeAll()
	var errs []error
	if err := p.manager.Close(); err != nil {
		errs = append(errs, err)
	}
	if p.pool != nil {
		if err := p.pool.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
