// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"sort"
	"sync"

	"github.com/gogpu/gghost/surface"
)

// stagingSlot holds the one window created since the last tick. It is the
// only state shared with goroutines other than the event loop.
type stagingSlot struct {
	mu    sync.Mutex
	label string
	win   *Window
}

// put stages w and returns the window it replaced, if any.
func (s *stagingSlot) put(label string, w *Window) *Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.win
	s.label, s.win = label, w
	return prev
}

// take empties the slot if it holds label.
func (s *stagingSlot) take(label string) (*Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.win == nil || s.label != label {
		return nil, false
	}
	w := s.win
	s.label, s.win = "", nil
	return w, true
}

// clear empties the slot and returns what it held.
func (s *stagingSlot) clear() *Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.win
	s.label, s.win = "", nil
	return w
}

// registry maps labels to live windows. Event loop only.
type registry struct {
	windows map[string]*Window
	staging stagingSlot
	manager surface.Manager
}

func newRegistry(m surface.Manager) *registry {
	return &registry{windows: make(map[string]*Window), manager: m}
}

// promote returns the live window for label, moving it out of staging
// first if needed. A staged window whose label is already live is dropped.
func (r *registry) promote(label string) *Window {
	if w, ok := r.windows[label]; ok {
		if _, staged := r.staging.take(label); staged {
			slogger().Debug("gghost: staged window dropped, label is live", "window", label)
		}
		return w
	}
	w, ok := r.staging.take(label)
	if !ok {
		return nil
	}
	r.windows[label] = w
	slogger().Info("gghost: window registered", "window", label)
	return w
}

// remove drops the live or staged window for label and releases its
// surface before returning. It reports whether anything was removed.
func (r *registry) remove(label string) bool {
	sw, staged := r.staging.take(label)
	if staged {
		sw.destroy(r.manager)
		slogger().Debug("gghost: staged window discarded", "window", label)
	}
	w, ok := r.windows[label]
	if !ok {
		return staged
	}
	delete(r.windows, label)
	w.destroy(r.manager)
	slogger().Info("gghost: window removed", "window", label)
	return true
}

// removeAll drops every live window and the staged one, if any.
func (r *registry) removeAll() {
	for _, label := range r.labels() {
		r.remove(label)
	}
	if w := r.staging.clear(); w != nil {
		w.destroy(r.manager)
		slogger().Debug("gghost: staged window discarded", "window", w.label)
	}
}

func (r *registry) get(label string) (*Window, bool) {
	w, ok := r.windows[label]
	return w, ok
}

func (r *registry) labels() []string {
	labels := make([]string, 0, len(r.windows))
	for l := range r.windows {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
