// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestChooseFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []gputypes.TextureFormat
		want    gputypes.TextureFormat
		wantErr error
	}{
		{
			name:    "skips srgb",
			formats: []gputypes.TextureFormat{gputypes.TextureFormatBGRA8UnormSrgb, gputypes.TextureFormatBGRA8Unorm},
			want:    gputypes.TextureFormatBGRA8Unorm,
		},
		{
			name:    "first non-srgb wins",
			formats: []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm},
			want:    gputypes.TextureFormatRGBA8Unorm,
		},
		{
			name:    "only srgb falls back to first",
			formats: []gputypes.TextureFormat{gputypes.TextureFormatRGBA8UnormSrgb, gputypes.TextureFormatBGRA8UnormSrgb},
			want:    gputypes.TextureFormatRGBA8UnormSrgb,
		},
		{
			name:    "empty",
			wantErr: ErrNoSurfaceFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chooseFormat(tt.formats)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("chooseFormat() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("chooseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChooseAlphaMode(t *testing.T) {
	tests := []struct {
		name  string
		modes []gputypes.CompositeAlphaMode
		want  gputypes.CompositeAlphaMode
	}{
		{"prefers premultiplied", []gputypes.CompositeAlphaMode{gputypes.CompositeAlphaModeOpaque, gputypes.CompositeAlphaModePremultiplied}, gputypes.CompositeAlphaModePremultiplied},
		{"opaque only", []gputypes.CompositeAlphaMode{gputypes.CompositeAlphaModeOpaque}, gputypes.CompositeAlphaModeOpaque},
		{"first non-opaque", []gputypes.CompositeAlphaMode{gputypes.CompositeAlphaModeInherit, gputypes.CompositeAlphaModePremultiplied}, gputypes.CompositeAlphaModeInherit},
		{"none reported", nil, gputypes.CompositeAlphaModeOpaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseAlphaMode(tt.modes); got != tt.want {
				t.Errorf("chooseAlphaMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChoosePresentMode(t *testing.T) {
	all := []gputypes.PresentMode{gputypes.PresentModeFifo, gputypes.PresentModeMailbox}
	tests := []struct {
		name  string
		want  gputypes.PresentMode
		modes []gputypes.PresentMode
		out   gputypes.PresentMode
	}{
		{"default fifo", gputypes.PresentModeUndefined, all, gputypes.PresentModeFifo},
		{"supported request", gputypes.PresentModeMailbox, all, gputypes.PresentModeMailbox},
		{"unsupported request", gputypes.PresentModeImmediate, all, gputypes.PresentModeFifo},
		{"no caps keeps request", gputypes.PresentModeMailbox, nil, gputypes.PresentModeMailbox},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := choosePresentMode(tt.want, tt.modes); got != tt.out {
				t.Errorf("choosePresentMode() = %v, want %v", got, tt.out)
			}
		})
	}
}
