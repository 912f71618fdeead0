// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu defines the opaque GPU collaborator surface that vpipe's
// pipeline is driven through: a device handle, texture/view handles, and
// the shader-builder contract an in-flight shader is appended to. vpipe
// never creates a device, dispatches a draw call, or constructs shader
// code itself — all of that lives on the other side of this package.
package gpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vpipe/internal/blend"
)

// DeviceHandle provides GPU device access from the host application.
//
// vpipe RECEIVES the device from the host, it does NOT create one. A
// Renderer is constructed with a DeviceHandle and never instantiates its
// own gpucontext.Device.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving vpipe a
// package-local name for the interface while staying compatible with the
// wider gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDescriptor describes parameters for creating or recreating a
// texture. This mirrors the WebGPU GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be sampled.
	TextureUsageTextureBinding

	// TextureUsageStorageBinding allows the texture to be bound as a
	// compute storage image.
	TextureUsageStorageBinding

	// TextureUsageRenderAttachment allows the texture to be used as a
	// render target (required of every FBO pool entry).
	TextureUsageRenderAttachment
)

// Texture represents a GPU texture resource.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() uint32

	// Height returns the texture height in pixels.
	Height() uint32

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// CreateView creates a view for this texture.
	CreateView() TextureView

	// Sampleable reports whether the texture supports being read by a
	// texture-sample instruction (a source plane's requirement).
	Sampleable() bool

	// Renderable reports whether the texture can be a render-pass color
	// attachment (a target plane's and FBO pool entry's requirement).
	Renderable() bool

	// Storable reports whether the texture can be bound as a compute
	// storage image. Its absence trips disable_compute.
	Storable() bool

	// Blendable reports whether the texture's format supports
	// fixed-function alpha blending. Its absence trips disable_blending.
	Blendable() bool

	// LinearFilterable reports whether the texture's format may be
	// sampled with hardware linear (bilinear) filtering. Gates sampler
	// fast-path substitution.
	LinearFilterable() bool

	// Destroy releases GPU resources associated with this texture.
	Destroy()
}

// TextureView represents a view into a texture, used to bind it to a
// shader stage.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// DefaultTextureDescriptor returns a TextureDescriptor with sensible
// defaults for an FBO pool entry: renderable and sampleable, single mip,
// single sample.
func DefaultTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:  width,
		Height: height,
		Format: format,
		Usage:  TextureUsageTextureBinding | TextureUsageRenderAttachment,
	}
}

// DeviceCapabilities describes the capabilities of a GPU device. The
// renderer does not read it: FBO format selection probes formats
// through FormatProber instead.
type DeviceCapabilities struct {
	// MaxTextureSize is the maximum texture dimension supported.
	MaxTextureSize uint32

	// MaxBindGroups is the maximum number of bind groups.
	MaxBindGroups uint32

	// SupportsCompute indicates if compute shaders are supported at all.
	SupportsCompute bool

	// SupportsStorageTextures indicates if storage textures are supported.
	SupportsStorageTextures bool

	// SupportsFloatFiltering indicates whether FLOAT-format textures
	// may be linearly filtered.
	SupportsFloatFiltering bool

	// VendorName is the GPU vendor name.
	VendorName string

	// DeviceName is the GPU device name.
	DeviceName string
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used in tests where no live GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// ShaderBuilder is the in-flight-shader construction contract: an opaque
// shader-under-composition that pipeline stages append operations to.
// Every concrete operation (sample, merge, color-map, dither, ...) is
// owned by a shader constructor outside this module; vpipe only
// sequences calls against this interface.
//
// A ShaderBuilder is produced by a ShaderFactory (BeginSample,
// BeginEmpty) when the pipeline begins constructing a new in-flight
// shader, and consumed by a Finisher when it is committed to a texture
// (Finisher.Finish, Finisher.FinishBlend).
type ShaderBuilder interface {
	// Width and Height report the shader's declared fixed output size,
	// if any. A shader with no fixed size reports (0, 0) and adopts
	// whatever size the pipeline later dispatches it at.
	Width() uint32
	Height() uint32

	// IsCompute reports whether this shader was begun in compute mode
	// (required for operations such as HDR peak detection).
	IsCompute() bool
}

// Finisher commits a ShaderBuilder to a concrete texture, or tears it
// down on failure. The renderer uses it when its DeviceHandle also
// implements Finisher.
type Finisher interface {
	// Finish dispatches the shader onto dst and releases the builder.
	// Returns false on dispatch failure (allocation, compilation); the
	// caller aborts the in-flight shader and may retry with a
	// direct-sample fallback.
	Finish(sh ShaderBuilder, dst Texture) bool

	// FinishBlend dispatches sh onto dst inside rect using the given
	// fixed-function blend state, for overlay compositing. A Finisher
	// that cannot honor blended draws at all may implement Finisher
	// without ever supporting this path; overlay compositing treats a
	// false return as a failure and disables overlay rendering.
	FinishBlend(sh ShaderBuilder, dst Texture, state blend.State, rect BlendRect) bool
}

// BlendRect is the destination rectangle a blended draw writes into,
// in the target texture's pixel space. A negative W or H mirrors that
// axis, matching output_target's destination-rect-corner-mirroring
// rule for flipped targets.
type BlendRect struct {
	X, Y, W, H float64
}
