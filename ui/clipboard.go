// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "sync"

// Clipboard gives widgets access to text copy and paste.
type Clipboard interface {
	Read() (string, bool)
	Write(contents string)
}

// NullClipboard discards writes and reads nothing.
type NullClipboard struct{}

func (NullClipboard) Read() (string, bool) { return "", false }
func (NullClipboard) Write(string)         {}

// MemoryClipboard keeps contents in process memory.
type MemoryClipboard struct {
	mu       sync.Mutex
	contents string
	set      bool
}

func (c *MemoryClipboard) Read() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contents, c.set
}

func (c *MemoryClipboard) Write(contents string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contents, c.set = contents, true
}
