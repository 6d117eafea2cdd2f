// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gghost/host"
	"github.com/gogpu/gghost/ui"
)

// platformClipboard exposes a host clipboard to widgets.
type platformClipboard struct {
	label    string
	platform gpucontext.PlatformProvider
}

func (c platformClipboard) Read() (string, bool) {
	s, err := c.platform.ClipboardRead()
	if err != nil {
		slogger().Debug("gghost: clipboard read failed", "window", c.label, "err", err)
		return "", false
	}
	return s, s != ""
}

func (c platformClipboard) Write(contents string) {
	if err := c.platform.ClipboardWrite(contents); err != nil {
		slogger().Debug("gghost: clipboard write failed", "window", c.label, "err", err)
	}
}

// clipboardFor returns the host clipboard when the window has one and a
// process-local clipboard otherwise.
func clipboardFor(w host.Window) ui.Clipboard {
	if p, ok := w.(gpucontext.PlatformProvider); ok {
		return platformClipboard{label: w.Label(), platform: p}
	}
	return &ui.MemoryClipboard{}
}
