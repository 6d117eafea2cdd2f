// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestRendererPresentQuad(t *testing.T) {
	r := NewRenderer(Settings{})
	r.StartLayer(Rectangle{Width: 20, Height: 20})
	r.FillQuad(Quad{Bounds: Rectangle{X: 0, Y: 0, Width: 10, Height: 20}, Background: gg.RGB(1, 0, 0)})
	r.EndLayer()

	pm := gg.NewPixmap(20, 20)
	dc := gg.NewContext(20, 20, gg.WithPixmap(pm))
	if err := r.Present(dc, r.TakeLayers()); err != nil {
		t.Fatalf("Present: %v", err)
	}
	_ = dc.Close()

	if c := pm.GetPixel(4, 10); c.R < 0.9 || c.A < 0.9 {
		t.Errorf("inside quad = %+v, want red", c)
	}
	if c := pm.GetPixel(15, 10); c.A != 0 {
		t.Errorf("outside quad = %+v, want transparent", c)
	}
}

func TestRendererMeasureFallback(t *testing.T) {
	r := NewRenderer(Settings{TextSize: 10})
	got := r.MeasureText("abcd", 0)
	if got.Width != 20 || math.Abs(float64(got.Height)-12) > 1e-3 {
		t.Errorf("MeasureText = %+v, want {20 12}", got)
	}
}

func TestRendererMeasureCached(t *testing.T) {
	r := NewRenderer(Settings{TextSize: 10})
	r.MeasureText("abcd", 0)
	r.MeasureText("abcd", 10)
	r.MeasureText("abcd", 20)
	if hits, misses := r.measures.Stats(); hits != 1 || misses != 2 {
		t.Errorf("measure cache = %d hits, %d misses; want 1, 2", hits, misses)
	}
}

func TestRendererDefaultFont(t *testing.T) {
	s, err := DefaultSettings()
	if err != nil {
		t.Fatalf("DefaultSettings: %v", err)
	}
	r := NewRenderer(s)
	short := r.MeasureText("i", 0)
	long := r.MeasureText("iiiiiiii", 0)
	if long.Width <= short.Width {
		t.Errorf("width(iiiiiiii)=%v <= width(i)=%v", long.Width, short.Width)
	}
	if short.Height <= 0 {
		t.Errorf("height = %v, want > 0", short.Height)
	}
}

func TestRendererPrimitivesOutsideLayer(t *testing.T) {
	r := NewRenderer(Settings{})
	r.FillText(TextRun{Content: "x"})
	layers := r.TakeLayers()
	if len(layers) != 1 || len(layers[0].Primitives) != 1 {
		t.Fatalf("layers = %+v, want one implicit layer", layers)
	}
	if tr := layers[0].Primitives[0].(TextRun); tr.Size != DefaultTextSize {
		t.Errorf("size = %v, want default %v", tr.Size, DefaultTextSize)
	}
}
