// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package hosttest provides an in-memory host for tests and headless runs.
package hosttest

import (
	"image"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gghost/host"
)

// Frame is a presented software frame.
type Frame struct {
	Width, Height uint32
	Pix           []byte
}

// Image returns the frame as an image. gg pixmaps and image.RGBA share the
// premultiplied RGBA layout.
func (f Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(f.Width), int(f.Height)))
	copy(img.Pix, f.Pix)
	return img
}

// Window is a fake native window. It presents pixels, exposes zero native
// handles and a process-local clipboard.
type Window struct {
	gpucontext.NullPlatformProvider

	mu            sync.Mutex
	id            host.WindowID
	label         string
	width, height uint32
	scale         float64
	transparent   bool
	frames        []Frame
	presentErr    error
	clipboard     string
}

var (
	_ host.PixelPresenter         = (*Window)(nil)
	_ host.SurfaceWindow          = (*Window)(nil)
	_ gpucontext.PlatformProvider = (*Window)(nil)
)

// NewWindow returns a window with the given physical size and scale.
func NewWindow(id host.WindowID, label string, width, height uint32, scale float64) *Window {
	return &Window{id: id, label: label, width: width, height: height, scale: scale}
}

func (w *Window) ID() host.WindowID { return w.id }
func (w *Window) Label() string     { return w.label }

func (w *Window) InnerSize() (uint32, uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

func (w *Window) ScaleFactor() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

// SetSize changes the inner size. It does not emit events.
func (w *Window) SetSize(width, height uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width, w.height = width, height
}

// SetScale changes the scale factor. It does not emit events.
func (w *Window) SetScale(scale float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scale = scale
}

func (w *Window) SetTransparent(t bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.transparent = t
	return nil
}

// Transparent reports the last SetTransparent value.
func (w *Window) Transparent() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.transparent
}

// RawHandles returns zero handles.
func (w *Window) RawHandles() (display, window uintptr) { return 0, 0 }

// FailPresent makes PresentPixels return err until cleared with nil.
func (w *Window) FailPresent(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.presentErr = err
}

func (w *Window) PresentPixels(width, height uint32, pix []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.presentErr != nil {
		return w.presentErr
	}
	w.frames = append(w.frames, Frame{Width: width, Height: height, Pix: append([]byte(nil), pix...)})
	return nil
}

// Frames returns the presented frames in order.
func (w *Window) Frames() []Frame {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Frame(nil), w.frames...)
}

// LastFrame returns the most recent frame.
func (w *Window) LastFrame() (Frame, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.frames) == 0 {
		return Frame{}, false
	}
	return w.frames[len(w.frames)-1], true
}

func (w *Window) ClipboardRead() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.clipboard, nil
}

func (w *Window) ClipboardWrite(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clipboard = text
	return nil
}

// Provider is an in-memory host.Provider.
type Provider struct {
	mu      sync.Mutex
	windows map[string]host.Window
	labels  map[host.WindowID]string
	lookups int
}

// NewProvider returns a provider holding windows.
func NewProvider(windows ...host.Window) *Provider {
	p := &Provider{
		windows: make(map[string]host.Window),
		labels:  make(map[host.WindowID]string),
	}
	for _, w := range windows {
		p.Add(w)
	}
	return p
}

// Add registers a window.
func (p *Provider) Add(w host.Window) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.windows[w.Label()] = w
	p.labels[w.ID()] = w.Label()
}

// Remove forgets a window.
func (p *Provider) Remove(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w, ok := p.windows[label]; ok {
		delete(p.labels, w.ID())
		delete(p.windows, label)
	}
}

func (p *Provider) Window(label string) (host.Window, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lookups++
	w, ok := p.windows[label]
	return w, ok
}

func (p *Provider) LabelOf(id host.WindowID) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.labels[id]
	return l, ok
}

// Lookups returns how many times Window was called.
func (p *Provider) Lookups() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lookups
}

// Loop records redraw requests and cursor changes.
type Loop struct {
	mu      sync.Mutex
	redraws []host.WindowID
	cursors map[host.WindowID]gpucontext.CursorShape
	sets    int
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{cursors: make(map[host.WindowID]gpucontext.CursorShape)}
}

func (l *Loop) RequestRedraw(id host.WindowID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.redraws = append(l.redraws, id)
}

func (l *Loop) SetCursor(id host.WindowID, c gpucontext.CursorShape) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cursors[id] = c
	l.sets++
}

// TakeRedraws returns and clears the pending redraw requests.
func (l *Loop) TakeRedraws() []host.WindowID {
	l.mu.Lock()
	defer l.mu.Unlock()
	r := l.redraws
	l.redraws = nil
	return r
}

// Cursor returns the last cursor set for a window.
func (l *Loop) Cursor(id host.WindowID) (gpucontext.CursorShape, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.cursors[id]
	return c, ok
}

// CursorSets returns how many times SetCursor was called.
func (l *Loop) CursorSets() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sets
}
