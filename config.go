// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gghost

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the plugin options.
//
//	backend: software
//	default_text_size: 18
//	font_path: /usr/share/fonts/TTF/DejaVuSans.ttf
//	power_preference: high
//	present_mode: mailbox
//	log_level: debug
type Config struct {
	// Backend names a surface backend. Empty selects the best available.
	Backend string `yaml:"backend"`

	// DefaultTextSize is the UI text size in logical pixels.
	DefaultTextSize float32 `yaml:"default_text_size"`

	// FontPath is a TrueType or OpenType file used as the UI font.
	FontPath string `yaml:"font_path"`

	// PowerPreference is "", "low" or "high".
	PowerPreference string `yaml:"power_preference"`

	// PresentMode is "fifo", "fifo_relaxed", "immediate" or "mailbox".
	PresentMode string `yaml:"present_mode"`

	// LogLevel is "", "debug", "info", "warn" or "error". Empty disables
	// logging.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		DefaultTextSize: 16,
		PresentMode:     "fifo",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gghost: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("gghost: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var presentModes = map[string]gputypes.PresentMode{
	"":             gputypes.PresentModeFifo,
	"fifo":         gputypes.PresentModeFifo,
	"fifo_relaxed": gputypes.PresentModeFifoRelaxed,
	"immediate":    gputypes.PresentModeImmediate,
	"mailbox":      gputypes.PresentModeMailbox,
}

var powerPreferences = map[string]gputypes.PowerPreference{
	"":     gputypes.PowerPreferenceNone,
	"low":  gputypes.PowerPreferenceLowPower,
	"high": gputypes.PowerPreferenceHighPerformance,
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.DefaultTextSize < 0 {
		return fmt.Errorf("%w: default_text_size %v", ErrConfiguration, c.DefaultTextSize)
	}
	if _, ok := presentModes[strings.ToLower(c.PresentMode)]; !ok {
		return fmt.Errorf("%w: present_mode %q", ErrConfiguration, c.PresentMode)
	}
	if _, ok := powerPreferences[strings.ToLower(c.PowerPreference)]; !ok {
		return fmt.Errorf("%w: power_preference %q", ErrConfiguration, c.PowerPreference)
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok && c.LogLevel != "" {
		return fmt.Errorf("%w: log_level %q", ErrConfiguration, c.LogLevel)
	}
	return nil
}

// Options converts the configuration to plugin options, loading the font
// file if one is named.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []Option{
		WithBackend(c.Backend),
		WithTextSize(c.DefaultTextSize),
		WithPresentMode(presentModes[strings.ToLower(c.PresentMode)]),
		WithPowerPreference(powerPreferences[strings.ToLower(c.PowerPreference)]),
	}
	if c.FontPath != "" {
		f, err := LoadFont(c.FontPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFont(f))
	}
	return opts, nil
}

// Logger returns a text logger writing to w at the configured level, or
// nil when logging is disabled.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, ok := logLevels[strings.ToLower(c.LogLevel)]
	if !ok {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LoadFont reads a TrueType or OpenType font file.
func LoadFont(path string) (*text.FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: font: %w", ErrConfiguration, err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %w", ErrConfiguration, path, err)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %w", ErrConfiguration, path, err)
	}
	desc := face.Describe()
	slogger().Debug("gghost: font loaded", "path", path, "family", desc.Family)
	return src, nil
}
