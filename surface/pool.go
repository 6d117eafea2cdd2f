// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// PoolOptions configure adapter selection.
type PoolOptions struct {
	// Backends limits which GPU APIs are tried. Zero selects the primary
	// backends.
	Backends gputypes.Backends

	PowerPreference      gputypes.PowerPreference
	ForceFallbackAdapter bool
}

// GPU is the adapter, device and queue shared by all windows of a pool.
type GPU struct {
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue
}

// DevicePool lazily negotiates a wgpu instance, adapter and device and
// shares them between windows. It is safe for concurrent use.
type DevicePool struct {
	mu       sync.Mutex
	opts     PoolOptions
	instance *wgpu.Instance
	gpu      *GPU
	closed   bool
}

// NewDevicePool returns an empty pool. Nothing is negotiated until the
// first surface needs it.
func NewDevicePool(opts PoolOptions) *DevicePool {
	if opts.Backends == 0 {
		opts.Backends = gputypes.BackendsPrimary
	}
	return &DevicePool{opts: opts}
}

// Instance returns the shared wgpu instance, creating it on first use.
func (p *DevicePool) Instance() (*wgpu.Instance, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.instanceLocked()
}

func (p *DevicePool) instanceLocked() (*wgpu.Instance, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if p.instance != nil {
		return p.instance, nil
	}
	inst, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: p.opts.Backends})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", ErrAdapterUnavailable, err)
	}
	p.instance = inst
	return inst, nil
}

// Acquire returns the shared GPU, negotiating adapter and device on first
// use. compatible is the surface the adapter must be able to present to.
func (p *DevicePool) Acquire(compatible *wgpu.Surface) (*GPU, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.gpu != nil {
		return p.gpu, nil
	}
	inst, err := p.instanceLocked()
	if err != nil {
		return nil, err
	}

	log := slogger()
	log.Debug("surface: requesting adapter", "power", p.opts.PowerPreference)
	adapter, err := inst.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      p.opts.PowerPreference,
		ForceFallbackAdapter: p.opts.ForceFallbackAdapter,
		CompatibleSurface:    compatible,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAdapterUnavailable, err)
	}
	log.Info("surface: adapter selected", "name", adapter.Info().Name)

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "gghost"})
	if err != nil {
		adapter.Release()
		return nil, fmt.Errorf("%w: %w", ErrDeviceCreation, err)
	}

	p.gpu = &GPU{Adapter: adapter, Device: device, Queue: device.Queue()}
	return p.gpu, nil
}

// Ready reports whether a device has been negotiated.
func (p *DevicePool) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gpu != nil
}

// Close releases the device, adapter and instance. Surfaces created from
// the pool must be closed first.
func (p *DevicePool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	if p.gpu != nil {
		p.gpu.Device.Release()
		p.gpu.Adapter.Release()
		p.gpu = nil
	}
	if p.instance != nil {
		p.instance.Release()
		p.instance = nil
	}
	return nil
}

// frameErr maps a wgpu frame acquisition error to a surface error.
func frameErr(err error) error {
	switch {
	case errors.Is(err, wgpu.ErrOutOfMemory):
		return fmt.Errorf("%w: %w", ErrSurfaceOutOfMemory, err)
	case errors.Is(err, wgpu.ErrSurfaceOutdated):
		return fmt.Errorf("%w: %w", ErrSurfaceOutdated, err)
	case errors.Is(err, wgpu.ErrSurfaceLost):
		return fmt.Errorf("%w: %w", ErrSurfaceLost, err)
	case errors.Is(err, wgpu.ErrTimeout):
		return fmt.Errorf("%w: %w", ErrSurfaceTimeout, err)
	}
	return err
}
