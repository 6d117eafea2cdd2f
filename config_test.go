// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Config
		wantErr bool
	}{
		{
			name: "empty",
			yaml: "",
			want: DefaultConfig(),
		},
		{
			name: "full",
			yaml: "backend: software\ndefault_text_size: 20\npower_preference: high\npresent_mode: mailbox\nlog_level: debug\n",
			want: Config{
				Backend:         "software",
				DefaultTextSize: 20,
				PowerPreference: "high",
				PresentMode:     "mailbox",
				LogLevel:        "debug",
			},
		},
		{
			name: "partial keeps defaults",
			yaml: "backend: wgpu\n",
			want: Config{Backend: "wgpu", DefaultTextSize: 16, PresentMode: "fifo"},
		},
		{name: "unknown key", yaml: "colour: red\n", wantErr: true},
		{name: "bad present mode", yaml: "present_mode: tearing\n", wantErr: true},
		{name: "bad power preference", yaml: "power_preference: max\n", wantErr: true},
		{name: "negative text size", yaml: "default_text_size: -1\n", wantErr: true},
		{name: "bad log level", yaml: "log_level: loud\n", wantErr: true},
		{name: "malformed", yaml: "backend: [\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.yaml))
			if tt.wantErr {
				if !errors.Is(err, ErrConfiguration) {
					t.Fatalf("err = %v, want configuration error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := Config{Backend: "software", DefaultTextSize: 12, PowerPreference: "low", PresentMode: "immediate"}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend != "software" || o.textSize != 12 {
		t.Errorf("backend/text size = %q/%v", o.backend, o.textSize)
	}
	if o.presentMode != gputypes.PresentModeImmediate {
		t.Errorf("present mode = %v, want Immediate", o.presentMode)
	}
	if o.powerPreference != gputypes.PowerPreferenceLowPower {
		t.Errorf("power preference = %v, want LowPower", o.powerPreference)
	}
	if o.font != nil {
		t.Error("font set without font_path")
	}
}

func TestLoadConfigWithFont(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "regular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "gghost.yaml")
	if err := os.WriteFile(cfgPath, []byte("font_path: "+fontPath+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.font == nil {
		t.Error("font not loaded")
	}
}

func TestLoadFontErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0o600); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{filepath.Join(dir, "missing.ttf"), garbage} {
		if _, err := LoadFont(path); !errors.Is(err, ErrConfiguration) {
			t.Errorf("LoadFont(%s) err = %v, want configuration error", filepath.Base(path), err)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("LoadConfig of a missing file succeeded")
	}
}

func TestConfigLogger(t *testing.T) {
	if l := (Config{}).Logger(&bytes.Buffer{}); l != nil {
		t.Error("Logger without log_level should be nil")
	}
	var buf bytes.Buffer
	l := Config{LogLevel: "warn"}.Logger(&buf)
	if l == nil {
		t.Fatal("Logger(warn) = nil")
	}
	if l.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
	l.Warn("hello")
	if buf.Len() == 0 {
		t.Error("warn record not written")
	}
}
