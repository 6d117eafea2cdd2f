// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/gghost/host"
	"github.com/gogpu/gghost/internal/hosttest"
	"github.com/gogpu/gghost/surface"
	"github.com/gogpu/gghost/ui"
)

// fakeManager records surface creation and can fail it.
type fakeManager struct {
	createErr error
	creates   int
	surfaces  map[host.WindowID]*fakeSurface
	released  []host.WindowID
	closed    bool
}

func newFakeManager() *fakeManager {
	return &fakeManager{surfaces: make(map[host.WindowID]*fakeSurface)}
}

func (m *fakeManager) AcquireOrCreate(w host.Window, width, height uint32) (surface.Surface, error) {
	if s, ok := m.surfaces[w.ID()]; ok {
		return s, nil
	}
	m.creates++
	if m.createErr != nil {
		return nil, m.createErr
	}
	s := &fakeSurface{width: width, height: height}
	m.surfaces[w.ID()] = s
	return s, nil
}

func (m *fakeManager) Release(w host.Window) {
	delete(m.surfaces, w.ID())
	m.released = append(m.released, w.ID())
}

func (m *fakeManager) Close() error {
	m.closed = true
	return nil
}

type fakeSurface struct {
	width, height uint32
	resizes       [][2]uint32
	acquireErr    error
	presents      int
	discards      int
	last          *gg.Pixmap

	// staleFrames makes the next frames one pixel wider than the surface.
	staleFrames int
}

func (s *fakeSurface) Resize(width, height uint32) error {
	s.resizes = append(s.resizes, [2]uint32{width, height})
	s.width, s.height = width, height
	return nil
}

func (s *fakeSurface) AcquireFrame() (surface.Frame, error) {
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	width := s.width
	if s.staleFrames > 0 {
		s.staleFrames--
		width++
	}
	return fakeFrame{gg.NewPixmap(int(width), int(s.height))}, nil
}

func (s *fakeSurface) Present(f surface.Frame) error {
	s.presents++
	s.last = f.Canvas()
	return nil
}

func (s *fakeSurface) Discard(surface.Frame)  { s.discards++ }
func (s *fakeSurface) Size() (uint32, uint32) { return s.width, s.height }
func (s *fakeSurface) Close() error           { return nil }

type fakeFrame struct{ pm *gg.Pixmap }

func (f fakeFrame) Size() (uint32, uint32) {
	return uint32(f.pm.Width()), uint32(f.pm.Height())
}
func (f fakeFrame) Canvas() *gg.Pixmap { return f.pm }
func (f fakeFrame) Clear(bg gg.RGBA)   { f.pm.Clear(bg) }

// recorder is an element that logs every event it sees. A button press
// publishes the number of events seen so far.
type recorder struct {
	log         *[]ui.Event
	interaction ui.Interaction
}

func (e recorder) Tag() string            { return "recorder" }
func (e recorder) NewState() any          { return nil }
func (e recorder) Children() []ui.Element { return nil }

func (e recorder) Layout(_ *ui.Tree, limits ui.Limits, _ *ui.Renderer) ui.Node {
	return ui.Node{Bounds: ui.Rectangle{Width: limits.Max.Width, Height: limits.Max.Height}}
}

func (e recorder) Update(_ *ui.Tree, ev ui.Event, _ ui.Node, _ ui.Cursor, shell *ui.Shell) ui.Status {
	*e.log = append(*e.log, ev)
	if me, ok := ev.(ui.MouseEvent); ok && me.Kind == ui.ButtonPressed {
		shell.Publish(len(*e.log))
	}
	return ui.Captured
}

func (e recorder) Draw(_ *ui.Tree, r *ui.Renderer, _ ui.Node, _ ui.Cursor) {
	r.FillQuad(ui.Quad{Bounds: ui.Rectangle{Width: 10, Height: 10}, Background: gg.RGB(1, 0, 0)})
}

func (e recorder) Interaction(_ *ui.Tree, _ ui.Node, cursor ui.Cursor) ui.Interaction {
	if cursor.Available {
		return e.interaction
	}
	return ui.InteractionNone
}

// testControls drives a recorder and keeps the messages it receives.
type testControls struct {
	events      []ui.Event
	messages    []ui.Message
	hooked      []ui.Event
	views       int
	interaction ui.Interaction
	background  gg.RGBA
}

func (c *testControls) View() ui.Element {
	c.views++
	return recorder{log: &c.events, interaction: c.interaction}
}

func (c *testControls) Update(msg ui.Message) { c.messages = append(c.messages, msg) }
func (c *testControls) Background() gg.RGBA   { return c.background }
func (c *testControls) OnEvent(ev ui.Event)   { c.hooked = append(c.hooked, ev) }

// inputEvents returns the recorded events without redraw ticks.
func (c *testControls) inputEvents() []ui.Event {
	var out []ui.Event
	for _, ev := range c.events {
		if we, ok := ev.(ui.WindowEvent); ok && we.Kind == ui.WindowRedrawRequested {
			continue
		}
		out = append(out, ev)
	}
	return out
}

type testHost struct {
	provider *hosttest.Provider
	loop     *hosttest.Loop
	manager  *fakeManager
	plugin   *Plugin
}

// newTestHost returns a plugin over a fake manager serving windows.
func newTestHost(t *testing.T, windows ...*hosttest.Window) *testHost {
	t.Helper()
	h := &testHost{
		provider: hosttest.NewProvider(),
		loop:     hosttest.NewLoop(),
		manager:  newFakeManager(),
	}
	for _, w := range windows {
		h.provider.Add(w)
	}
	p, err := New(h.provider, h.loop, WithManager(h.manager), WithFatalHandler(func(err error) {
		t.Fatalf("unexpected fatal error: %v", err)
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.plugin = p
	return h
}

// open creates and promotes a window and draws its first frame.
func (h *testHost) open(t *testing.T, w *hosttest.Window, c Controls, opts ...WindowOption) *Window {
	t.Helper()
	if err := h.plugin.CreateWindow(w.Label(), c, opts...); err != nil {
		t.Fatalf("CreateWindow(%q): %v", w.Label(), err)
	}
	h.plugin.HandleEvent(host.RedrawRequested{ID: w.ID()})
	win, ok := h.plugin.reg.get(w.Label())
	if !ok {
		t.Fatalf("window %q not registered", w.Label())
	}
	return win
}
