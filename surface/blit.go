// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu"
)

//go:embed shaders/blit.wgsl
var blitShaderSource string

// blitter draws a premultiplied RGBA texture over the whole render target.
type blitter struct {
	device   *wgpu.Device
	shader   *wgpu.ShaderModule
	layout   *wgpu.BindGroupLayout
	pipeline *wgpu.PipelineLayout
	render   *wgpu.RenderPipeline
	sampler  *wgpu.Sampler
}

// compileBlitShader validates the blit shader and returns its SPIR-V.
func compileBlitShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(blitShaderSource)
	if err != nil {
		return nil, fmt.Errorf("surface: compile blit shader: %w", err)
	}
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

func newBlitter(device *wgpu.Device, format gputypes.TextureFormat) (b *blitter, err error) {
	code, err := compileBlitShader()
	if err != nil {
		return nil, err
	}

	b = &blitter{device: device}
	defer func() {
		if err != nil {
			b.release()
			b = nil
		}
	}()

	b.shader, err = device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "gghost blit",
		SPIRV: code,
	})
	if err != nil {
		return nil, fmt.Errorf("surface: blit shader: %w", err)
	}

	b.layout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "gghost blit",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("surface: blit bind group layout: %w", err)
	}

	b.pipeline, err = device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "gghost blit",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.layout},
	})
	if err != nil {
		return nil, fmt.Errorf("surface: blit pipeline layout: %w", err)
	}

	blend := gputypes.BlendStatePremultiplied()
	b.render, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "gghost blit",
		Layout: b.pipeline,
		Vertex: wgpu.VertexState{Module: b.shader, EntryPoint: "vs_main"},
		Fragment: &wgpu.FragmentState{
			Module:     b.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    format,
				Blend:     &blend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("surface: blit pipeline: %w", err)
	}

	b.sampler, err = device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:        "gghost blit",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return nil, fmt.Errorf("surface: blit sampler: %w", err)
	}
	return b, nil
}

func (b *blitter) bindGroup(view *wgpu.TextureView) (*wgpu.BindGroup, error) {
	return b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "gghost blit",
		Layout: b.layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Sampler: b.sampler},
			{Binding: 1, TextureView: view},
		},
	})
}

func (b *blitter) draw(pass *wgpu.RenderPassEncoder, group *wgpu.BindGroup) {
	pass.SetPipeline(b.render)
	pass.SetBindGroup(0, group, nil)
	pass.Draw(3, 1, 0, 0)
}

func (b *blitter) release() {
	if b.sampler != nil {
		b.sampler.Release()
	}
	if b.render != nil {
		b.render.Release()
	}
	if b.pipeline != nil {
		b.pipeline.Release()
	}
	if b.layout != nil {
		b.layout.Release()
	}
	if b.shader != nil {
		b.shader.Release()
	}
}
