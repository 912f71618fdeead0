// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/gogpu/gputypes"
)

// RenderTarget defines where a dispatch's output goes.
//
// vpipe deals with two concrete kinds of target: a PooledTexture owned
// by the FBO pool (an intermediate framebuffer between pipeline stages)
// and a SwapchainTarget supplied by the host application (the final
// output frame, or a from-swapchain single-plane source).
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// TextureView returns the GPU texture view for this target.
	TextureView() TextureView

	// Flipped reports whether row 0 of this target is the bottom row
	// (a swapchain convention); from_swapchain consults this to decide
	// whether to swap the derived frame's crop.y0/y1.
	Flipped() bool
}

// PooledTexture is a GPU texture-backed render target owned by the FBO
// pool. Its dimensions can be changed in place via Recreate, matching
// the pool's "recreate at (w, h) if dimensions differ" contract
// (internal/fbo.Pool.Get).
type PooledTexture struct {
	width  int
	height int
	format gputypes.TextureFormat
	tex    Texture
	view   TextureView
}

// NewPooledTexture creates a new FBO pool entry recording the given
// size and format. handle is not used and no backing texture is
// allocated: Underlying returns nil for the new entry.
func NewPooledTexture(handle DeviceHandle, width, height int, format gputypes.TextureFormat) (*PooledTexture, error) {
	_ = handle // texture allocation is delegated to the concrete backend
	return &PooledTexture{
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Width returns the target width in pixels.
func (t *PooledTexture) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *PooledTexture) Height() int { return t.height }

// Format returns the pixel format.
func (t *PooledTexture) Format() gputypes.TextureFormat { return t.format }

// TextureView returns the GPU texture view.
func (t *PooledTexture) TextureView() TextureView { return t.view }

// Flipped is always false for a pool-owned intermediate: the pool never
// represents a swapchain's row order.
func (t *PooledTexture) Flipped() bool { return false }

// Underlying returns the backing Texture, or nil if not yet allocated.
func (t *PooledTexture) Underlying() Texture { return t.tex }

// Recreate destroys the backing texture and view, if any, and records
// the given dimensions; it allocates no replacement texture. Called by
// the FBO pool when a reused entry's size doesn't match the request.
func (t *PooledTexture) Recreate(handle DeviceHandle, width, height int) error {
	_ = handle
	if t.tex != nil {
		t.tex.Destroy()
		t.tex = nil
	}
	if t.view != nil {
		t.view.Destroy()
		t.view = nil
	}
	t.width = width
	t.height = height
	return nil
}

// Destroy releases GPU resources.
func (t *PooledTexture) Destroy() {
	if t.view != nil {
		t.view.Destroy()
		t.view = nil
	}
	if t.tex != nil {
		t.tex.Destroy()
		t.tex = nil
	}
}

// Ensure PooledTexture implements RenderTarget.
var _ RenderTarget = (*PooledTexture)(nil)

// SwapchainTarget wraps a window surface (or other externally-owned
// framebuffer) from the host application. output_target's final write
// and from_swapchain's single-plane source both address one of these.
type SwapchainTarget struct {
	width   int
	height  int
	format  gputypes.TextureFormat
	view    TextureView
	flipped bool
}

// NewSwapchainTarget wraps a host-provided texture view as a render
// target. flipped should be true when the surface's row 0 is the
// bottom row, matching the host framework's presentation convention.
func NewSwapchainTarget(width, height int, format gputypes.TextureFormat, view TextureView, flipped bool) *SwapchainTarget {
	return &SwapchainTarget{
		width:   width,
		height:  height,
		format:  format,
		view:    view,
		flipped: flipped,
	}
}

// Width returns the surface width in pixels.
func (t *SwapchainTarget) Width() int { return t.width }

// Height returns the surface height in pixels.
func (t *SwapchainTarget) Height() int { return t.height }

// Format returns the surface pixel format.
func (t *SwapchainTarget) Format() gputypes.TextureFormat { return t.format }

// TextureView returns the current frame's texture view.
func (t *SwapchainTarget) TextureView() TextureView { return t.view }

// Flipped reports the surface's row-order convention.
func (t *SwapchainTarget) Flipped() bool { return t.flipped }

// Ensure SwapchainTarget implements RenderTarget.
var _ RenderTarget = (*SwapchainTarget)(nil)
