// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gghost/internal/cache"
)

// DefaultTextSize is the text size used when Settings leaves it unset.
const DefaultTextSize float32 = 16

// ErrNoFont is returned when the default font cannot be loaded.
var ErrNoFont = errors.New("ui: no font available")

// Settings configures a Renderer.
type Settings struct {
	// Font is the default font. Nil selects Go Regular.
	Font *text.FontSource

	// TextSize is the default text size in logical pixels.
	TextSize float32
}

var (
	defaultFontOnce sync.Once
	defaultFont     *text.FontSource
	defaultFontErr  error
)

// DefaultFont returns the bundled Go Regular font. The source is parsed
// once and shared.
func DefaultFont() (*text.FontSource, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = text.NewFontSource(goregular.TTF)
		if defaultFontErr != nil {
			defaultFontErr = fmt.Errorf("%w: %w", ErrNoFont, defaultFontErr)
		}
	})
	return defaultFont, defaultFontErr
}

// DefaultSettings returns settings with Go Regular at DefaultTextSize.
func DefaultSettings() (Settings, error) {
	f, err := DefaultFont()
	if err != nil {
		return Settings{}, err
	}
	return Settings{Font: f, TextSize: DefaultTextSize}, nil
}

// Renderer measures text and records primitives into layers. It holds no
// GPU resources; Present rasterizes recorded layers with gg.
//
// A Renderer with a nil font measures text with a fixed advance and skips
// drawing it.
type Renderer struct {
	settings Settings
	faces    map[float32]text.Face
	measures *cache.Cache[measureKey, Size]

	layers []Layer
	open   []int
}

// NewRenderer creates a renderer.
func NewRenderer(settings Settings) *Renderer {
	if settings.TextSize <= 0 {
		settings.TextSize = DefaultTextSize
	}
	return &Renderer{
		settings: settings,
		faces:    make(map[float32]text.Face),
		measures: cache.New[measureKey, Size](measureCacheSize),
	}
}

const measureCacheSize = 1024

type measureKey struct {
	content string
	size    float32
}

// TextSize returns the default text size.
func (r *Renderer) TextSize() float32 { return r.settings.TextSize }

func (r *Renderer) face(size float32) text.Face {
	if r.settings.Font == nil {
		return nil
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := r.settings.Font.Face(float64(size))
	r.faces[size] = f
	return f
}

// MeasureText returns the logical extent of a single line of text.
func (r *Renderer) MeasureText(content string, size float32) Size {
	if size <= 0 {
		size = r.settings.TextSize
	}
	return r.measures.GetOrCompute(measureKey{content, size}, func() Size {
		return r.measure(content, size)
	})
}

func (r *Renderer) measure(content string, size float32) Size {
	f := r.face(size)
	if f == nil {
		n := float32(utf8.RuneCountInString(content))
		return Size{Width: n * size * 0.5, Height: size * 1.2}
	}
	m := f.Metrics()
	return Size{
		Width:  float32(f.Advance(content)),
		Height: float32(m.Ascent + m.Descent + m.LineGap),
	}
}

// StartLayer opens a layer clipped to bounds.
func (r *Renderer) StartLayer(bounds Rectangle) {
	r.layers = append(r.layers, Layer{Bounds: bounds})
	r.open = append(r.open, len(r.layers)-1)
}

// EndLayer closes the innermost open layer.
func (r *Renderer) EndLayer() {
	if len(r.open) > 0 {
		r.open = r.open[:len(r.open)-1]
	}
}

func (r *Renderer) push(p Primitive) {
	if len(r.open) == 0 {
		r.StartLayer(Rectangle{Width: maxExtent, Height: maxExtent})
		defer r.EndLayer()
	}
	l := &r.layers[r.open[len(r.open)-1]]
	l.Primitives = append(l.Primitives, p)
}

const maxExtent = 1 << 20

// FillQuad records a quad.
func (r *Renderer) FillQuad(q Quad) { r.push(q) }

// FillText records a text run.
func (r *Renderer) FillText(t TextRun) {
	if t.Size <= 0 {
		t.Size = r.settings.TextSize
	}
	r.push(t)
}

// TakeLayers returns the recorded layers and resets the renderer.
func (r *Renderer) TakeLayers() []Layer {
	layers := r.layers
	r.layers = nil
	r.open = r.open[:0]
	return layers
}

// Present rasterizes layers onto dc in logical coordinates.
func (r *Renderer) Present(dc *gg.Context, layers []Layer) error {
	var errs []error
	for _, l := range layers {
		dc.Push()
		dc.ClipRect(float64(l.Bounds.X), float64(l.Bounds.Y), float64(l.Bounds.Width), float64(l.Bounds.Height))
		for _, p := range l.Primitives {
			switch p := p.(type) {
			case Quad:
				errs = append(errs, r.drawQuad(dc, p))
			case TextRun:
				r.drawText(dc, p)
			}
		}
		dc.Pop()
	}
	return errors.Join(errs...)
}

func (r *Renderer) drawQuad(dc *gg.Context, q Quad) error {
	x, y := float64(q.Bounds.X), float64(q.Bounds.Y)
	w, h := float64(q.Bounds.Width), float64(q.Bounds.Height)
	if w <= 0 || h <= 0 {
		return nil
	}
	rect := func() {
		if q.BorderRadius > 0 {
			dc.DrawRoundedRectangle(x, y, w, h, float64(q.BorderRadius))
		} else {
			dc.DrawRectangle(x, y, w, h)
		}
	}
	if q.Background.A > 0 {
		rect()
		dc.SetColor(q.Background)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("ui: fill quad: %w", err)
		}
	}
	if q.BorderWidth > 0 && q.BorderColor.A > 0 {
		rect()
		dc.SetColor(q.BorderColor)
		dc.SetLineWidth(float64(q.BorderWidth))
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("ui: stroke quad: %w", err)
		}
	}
	return nil
}

func (r *Renderer) drawText(dc *gg.Context, t TextRun) {
	f := r.face(t.Size)
	if f == nil || t.Content == "" {
		return
	}
	dc.SetFont(f)
	dc.SetColor(t.Color)
	dc.DrawString(t.Content, float64(t.Position.X), float64(t.Position.Y)+f.Metrics().Ascent)
}
