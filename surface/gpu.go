// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/gghost/host"
)

// maxFrameLatency is recorded with each surface configuration. wgpu does
// not expose a latency setting yet.
const maxFrameLatency = 2

// Config is the negotiated configuration of a GPU surface.
type Config struct {
	Format          gputypes.TextureFormat
	AlphaMode       gputypes.CompositeAlphaMode
	PresentMode     gputypes.PresentMode
	MaxFrameLatency int
}

// GPUManager creates one wgpu surface per window over a shared DevicePool.
type GPUManager struct {
	pool        *DevicePool
	presentMode gputypes.PresentMode

	mu       sync.Mutex
	surfaces map[host.WindowID]*GPUSurface
}

// NewGPUManager returns a manager drawing through pool. The pool is not
// owned by the manager.
func NewGPUManager(pool *DevicePool, presentMode gputypes.PresentMode) *GPUManager {
	return &GPUManager{
		pool:        pool,
		presentMode: presentMode,
		surfaces:    make(map[host.WindowID]*GPUSurface),
	}
}

// AcquireOrCreate implements Manager. The window must implement
// host.SurfaceWindow.
func (m *GPUManager) AcquireOrCreate(w host.Window, width, height uint32) (Surface, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.surfaces[w.ID()]; ok {
		return s, nil
	}
	sw, ok := w.(host.SurfaceWindow)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no native handles", ErrUnsupportedWindow, w.Label())
	}
	s, err := m.create(sw, width, height)
	if err != nil {
		return nil, err
	}
	m.surfaces[w.ID()] = s
	return s, nil
}

func (m *GPUManager) create(w host.SurfaceWindow, width, height uint32) (*GPUSurface, error) {
	inst, err := m.pool.Instance()
	if err != nil {
		return nil, err
	}
	display, handle := w.RawHandles()
	ws, err := inst.CreateSurface(display, handle)
	if err != nil {
		return nil, fmt.Errorf("%w: create surface: %w", ErrAdapterUnavailable, err)
	}

	gpu, err := m.pool.Acquire(ws)
	if err != nil {
		ws.Release()
		return nil, err
	}

	caps := gpu.Adapter.GetSurfaceCapabilities(ws)
	if caps == nil {
		ws.Release()
		return nil, ErrNoSurfaceFormat
	}
	format, err := chooseFormat(caps.Formats)
	if err != nil {
		ws.Release()
		return nil, err
	}
	cfg := Config{
		Format:          format,
		AlphaMode:       chooseAlphaMode(caps.AlphaModes),
		PresentMode:     choosePresentMode(m.presentMode, caps.PresentModes),
		MaxFrameLatency: maxFrameLatency,
	}

	blit, err := newBlitter(gpu.Device, format)
	if err != nil {
		ws.Release()
		return nil, fmt.Errorf("%w: %w", ErrDeviceCreation, err)
	}

	s := &GPUSurface{
		label:   w.Label(),
		gpu:     gpu,
		surface: ws,
		config:  cfg,
		blit:    blit,
	}
	if err := s.Resize(width, height); err != nil && !errors.Is(err, ErrZeroSize) {
		s.Close()
		return nil, err
	}
	slogger().Info("surface: gpu surface created",
		"window", w.Label(), "format", format, "alpha", cfg.AlphaMode,
		"present", cfg.PresentMode, "width", width, "height", height)
	return s, nil
}

// Release implements Manager.
func (m *GPUManager) Release(w host.Window) {
	m.mu.Lock()
	s, ok := m.surfaces[w.ID()]
	delete(m.surfaces, w.ID())
	m.mu.Unlock()

	if ok {
		_ = s.Close()
	}
}

// Close implements Manager.
func (m *GPUManager) Close() error {
	m.mu.Lock()
	surfaces := m.surfaces
	m.surfaces = make(map[host.WindowID]*GPUSurface)
	m.mu.Unlock()

	for _, s := range surfaces {
		_ = s.Close()
	}
	return nil
}

// GPUSurface presents frames to a window through wgpu.
//
// The UI canvas of each frame is uploaded into a texture and drawn over the
// cleared swapchain image. Draws recorded with GPUFrame.Encode run between
// the clear and the canvas.
type GPUSurface struct {
	label   string
	gpu     *GPU
	surface *wgpu.Surface
	config  Config
	blit    *blitter

	width, height uint32
	configured    bool

	canvas    *gg.Pixmap
	layer     *wgpu.Texture
	layerView *wgpu.TextureView
	layerBind *wgpu.BindGroup

	closed bool
}

// Config returns the negotiated configuration.
func (s *GPUSurface) Config() Config { return s.config }

// Size implements Surface.
func (s *GPUSurface) Size() (width, height uint32) { return s.width, s.height }

// Resize implements Surface.
func (s *GPUSurface) Resize(width, height uint32) error {
	if s.closed {
		return ErrClosed
	}
	s.width, s.height = width, height
	s.configured = false
	return s.configure()
}

func (s *GPUSurface) configure() error {
	if s.width == 0 || s.height == 0 {
		return ErrZeroSize
	}
	err := s.surface.Configure(s.gpu.Device, &wgpu.SurfaceConfiguration{
		Width:       s.width,
		Height:      s.height,
		Format:      s.config.Format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: s.config.PresentMode,
		AlphaMode:   s.config.AlphaMode,
	})
	if err != nil {
		return fmt.Errorf("surface: configure %dx%d: %w", s.width, s.height, frameErr(err))
	}
	s.configured = true
	slogger().Debug("surface: configured", "window", s.label, "width", s.width, "height", s.height)
	return nil
}

// ensureLayer sizes the canvas and its texture to the surface.
func (s *GPUSurface) ensureLayer() error {
	w, h := int(s.width), int(s.height)
	if s.canvas != nil && s.canvas.Width() == w && s.canvas.Height() == h {
		return nil
	}
	s.releaseLayer()

	tex, err := s.gpu.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "gghost ui layer",
		Size:          wgpu.Extent3D{Width: s.width, Height: s.height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("surface: layer texture: %w", frameErr(err))
	}
	view, err := s.gpu.Device.CreateTextureView(tex, nil)
	if err != nil {
		tex.Release()
		return fmt.Errorf("surface: layer view: %w", err)
	}
	bind, err := s.blit.bindGroup(view)
	if err != nil {
		view.Release()
		tex.Release()
		return fmt.Errorf("surface: layer bind group: %w", err)
	}
	s.layer, s.layerView, s.layerBind = tex, view, bind
	s.canvas = gg.NewPixmap(w, h)
	return nil
}

func (s *GPUSurface) releaseLayer() {
	if s.layerBind != nil {
		s.layerBind.Release()
	}
	if s.layerView != nil {
		s.layerView.Release()
	}
	if s.layer != nil {
		s.layer.Release()
	}
	s.layer, s.layerView, s.layerBind, s.canvas = nil, nil, nil, nil
}

// AcquireFrame implements Surface.
func (s *GPUSurface) AcquireFrame() (Frame, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if !s.configured {
		if err := s.configure(); err != nil {
			return nil, err
		}
	}

	st, suboptimal, err := s.surface.GetCurrentTexture()
	if err != nil {
		err = frameErr(err)
		if errors.Is(err, ErrSurfaceOutdated) || errors.Is(err, ErrSurfaceLost) {
			s.configured = false
		}
		return nil, err
	}
	if suboptimal {
		s.configured = false
	}

	view, err := st.CreateView(nil)
	if err != nil {
		s.surface.DiscardTexture()
		return nil, fmt.Errorf("surface: frame view: %w", err)
	}
	if err := s.ensureLayer(); err != nil {
		view.Release()
		s.surface.DiscardTexture()
		return nil, err
	}
	return &GPUFrame{owner: s, texture: st, view: view}, nil
}

// Present implements Surface.
func (s *GPUSurface) Present(f Frame) error {
	gf, ok := f.(*GPUFrame)
	if !ok || gf.owner != s {
		return ErrForeignFrame
	}
	if gf.done {
		return ErrFrameReleased
	}
	gf.done = true
	defer gf.view.Release()

	if err := s.encode(gf); err != nil {
		s.surface.DiscardTexture()
		return err
	}
	if err := s.surface.Present(gf.texture); err != nil {
		return fmt.Errorf("surface: present: %w", frameErr(err))
	}
	return nil
}

// Discard implements Surface. The swapchain image is handed back so the
// next AcquireFrame can succeed.
func (s *GPUSurface) Discard(f Frame) {
	gf, ok := f.(*GPUFrame)
	if !ok || gf.owner != s || gf.done {
		return
	}
	gf.done = true
	gf.view.Release()
	s.surface.DiscardTexture()
}

func (s *GPUSurface) encode(gf *GPUFrame) error {
	queue := s.gpu.Queue
	err := queue.WriteTexture(
		&wgpu.ImageCopyTexture{Texture: s.layer},
		s.canvas.Data(),
		&wgpu.ImageDataLayout{BytesPerRow: s.width * 4, RowsPerImage: s.height},
		&wgpu.Extent3D{Width: s.width, Height: s.height, DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("surface: upload layer: %w", frameErr(err))
	}

	encoder, err := s.gpu.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "gghost frame"})
	if err != nil {
		return fmt.Errorf("surface: command encoder: %w", frameErr(err))
	}
	bg := gf.background
	pass, err := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    gf.view,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: bg.R * bg.A, G: bg.G * bg.A, B: bg.B * bg.A, A: bg.A,
			},
		}},
	})
	if err != nil {
		return fmt.Errorf("surface: begin pass: %w", err)
	}
	for _, fn := range gf.passes {
		fn(pass)
	}
	s.blit.draw(pass, s.layerBind)
	if err := pass.End(); err != nil {
		return fmt.Errorf("surface: end pass: %w", err)
	}
	cmds, err := encoder.Finish()
	if err != nil {
		return fmt.Errorf("surface: finish: %w", err)
	}
	if _, err := queue.Submit(cmds); err != nil {
		return fmt.Errorf("surface: submit: %w", frameErr(err))
	}
	return nil
}

// Close implements Surface.
func (s *GPUSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.releaseLayer()
	s.blit.release()
	if s.configured {
		s.surface.Unconfigure()
	}
	s.surface.Release()
	slogger().Debug("surface: gpu surface released", "window", s.label)
	return nil
}

// GPUFrame is a swapchain image being drawn.
type GPUFrame struct {
	owner      *GPUSurface
	texture    *wgpu.SurfaceTexture
	view       *wgpu.TextureView
	background gg.RGBA
	passes     []func(*wgpu.RenderPassEncoder)
	done       bool
}

// Size implements Frame.
func (f *GPUFrame) Size() (width, height uint32) { return f.owner.width, f.owner.height }

// Canvas implements Frame. The canvas is composited over the render pass
// with premultiplied blending.
func (f *GPUFrame) Canvas() *gg.Pixmap { return f.owner.canvas }

// Clear implements Frame. The background becomes the render pass clear
// color and the canvas is cleared to transparent.
func (f *GPUFrame) Clear(background gg.RGBA) {
	f.background = background
	f.owner.canvas.Clear(gg.Transparent)
}

// Encode records draws into the frame's render pass. They run after the
// clear and before the canvas is composited.
func (f *GPUFrame) Encode(fn func(pass *wgpu.RenderPassEncoder)) {
	f.passes = append(f.passes, fn)
}
