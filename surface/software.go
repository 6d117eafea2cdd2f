// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/gghost/host"
)

// SoftwareManager renders into gg pixmaps and commits them through
// host.PixelPresenter.
type SoftwareManager struct {
	mu       sync.Mutex
	surfaces map[host.WindowID]*SoftwareSurface
}

// NewSoftwareManager returns an empty manager.
func NewSoftwareManager() *SoftwareManager {
	return &SoftwareManager{surfaces: make(map[host.WindowID]*SoftwareSurface)}
}

// AcquireOrCreate implements Manager. The window must implement
// host.PixelPresenter. The pixel buffer is allocated on the first frame.
func (m *SoftwareManager) AcquireOrCreate(w host.Window, width, height uint32) (Surface, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.surfaces[w.ID()]; ok {
		return s, nil
	}
	p, ok := w.(host.PixelPresenter)
	if !ok {
		return nil, fmt.Errorf("%w: %q cannot present pixels", ErrUnsupportedWindow, w.Label())
	}
	s := &SoftwareSurface{presenter: p, width: width, height: height}
	m.surfaces[w.ID()] = s
	slogger().Info("surface: software surface created", "window", w.Label(), "width", width, "height", height)
	return s, nil
}

// Release implements Manager.
func (m *SoftwareManager) Release(w host.Window) {
	m.mu.Lock()
	s, ok := m.surfaces[w.ID()]
	delete(m.surfaces, w.ID())
	m.mu.Unlock()

	if ok {
		_ = s.Close()
	}
}

// Close implements Manager.
func (m *SoftwareManager) Close() error {
	m.mu.Lock()
	surfaces := m.surfaces
	m.surfaces = make(map[host.WindowID]*SoftwareSurface)
	m.mu.Unlock()

	for _, s := range surfaces {
		_ = s.Close()
	}
	return nil
}

// Len returns the number of live surfaces.
func (m *SoftwareManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.surfaces)
}

// SoftwareSurface is a CPU pixel buffer bound to a window.
type SoftwareSurface struct {
	presenter     host.PixelPresenter
	width, height uint32
	pixmap        *gg.Pixmap
	closed        bool
}

// Size implements Surface.
func (s *SoftwareSurface) Size() (width, height uint32) { return s.width, s.height }

// Resize implements Surface. The buffer is reallocated on the next frame.
func (s *SoftwareSurface) Resize(width, height uint32) error {
	if s.closed {
		return ErrClosed
	}
	s.width, s.height = width, height
	if s.pixmap != nil && (s.pixmap.Width() != int(width) || s.pixmap.Height() != int(height)) {
		s.pixmap = nil
	}
	return nil
}

// AcquireFrame implements Surface.
func (s *SoftwareSurface) AcquireFrame() (Frame, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.width == 0 || s.height == 0 {
		return nil, ErrZeroSize
	}
	if s.pixmap == nil {
		s.pixmap = gg.NewPixmap(int(s.width), int(s.height))
	}
	return &SoftwareFrame{owner: s, pixmap: s.pixmap}, nil
}

// Present implements Surface.
func (s *SoftwareSurface) Present(f Frame) error {
	sf, ok := f.(*SoftwareFrame)
	if !ok || sf.owner != s {
		return ErrForeignFrame
	}
	w, h := sf.Size()
	if err := s.presenter.PresentPixels(w, h, sf.pixmap.Data()); err != nil {
		return fmt.Errorf("surface: present pixels: %w", err)
	}
	return nil
}

// Discard implements Surface. The pixmap is reused by the next frame.
func (s *SoftwareSurface) Discard(Frame) {}

// Close implements Surface.
func (s *SoftwareSurface) Close() error {
	s.closed = true
	s.pixmap = nil
	return nil
}

// SoftwareFrame is a pixmap being drawn.
type SoftwareFrame struct {
	owner  *SoftwareSurface
	pixmap *gg.Pixmap
}

// Size implements Frame.
func (f *SoftwareFrame) Size() (width, height uint32) {
	return uint32(f.pixmap.Width()), uint32(f.pixmap.Height())
}

// Canvas implements Frame.
func (f *SoftwareFrame) Canvas() *gg.Pixmap { return f.pixmap }

// Clear implements Frame by filling the pixmap.
func (f *SoftwareFrame) Clear(background gg.RGBA) { f.pixmap.Clear(background) }
