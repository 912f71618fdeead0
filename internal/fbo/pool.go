// Package fbo implements the renderer's framebuffer-object pool: a
// growable collection of intermediate textures keyed by size, reused
// across pipeline stages within a frame.
//
// Grounded on the bucket-pool idea in the teacher's image buffer pool,
// generalized from exact-size buckets to the nearest-size reuse policy
// this pipeline's get_fbo contract requires.
package fbo

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vpipe/gpu"
)

// Pool is a renderer-scoped collection of intermediate textures.
// Entries never shrink and their indices are stable for the renderer's
// lifetime, per the data-model invariant: "FBO pool entries never
// shrink; indices are stable for the lifetime of the renderer."
type Pool struct {
	device  gpu.DeviceHandle
	format  gputypes.TextureFormat
	entries []*gpu.PooledTexture
}

// New creates an empty pool that allocates entries in the given format
// when first needed. format is chosen once at renderer creation by the
// one-time format-selection cascade (§4.1) and never changes afterward.
func New(device gpu.DeviceHandle, format gputypes.TextureFormat) *Pool {
	return &Pool{device: device, format: format}
}

// Len reports the current number of pool entries. Used callers must
// keep their bitset's length in lockstep with this value (data-model
// invariant: "fbos_used has the same length as the FBO pool at any
// time during a pass").
func (p *Pool) Len() int { return len(p.entries) }

// Used is a pass-scoped bitset marking which pool entries are claimed
// for the remainder of the current frame. It lives with the pass, not
// the pool, per §5's "FBO pool is pass-scoped for assignment,
// renderer-scoped for residency".
type Used struct {
	bits []bool
}

// EnsureLen grows u to at least n entries, leaving existing bits
// untouched. Called by Pool.Get whenever it appends a new pool entry.
func (u *Used) EnsureLen(n int) {
	for len(u.bits) < n {
		u.bits = append(u.bits, false)
	}
}

// Len reports u's current tracked length.
func (u *Used) Len() int { return len(u.bits) }

// Reset clears all claims, called at the start of a new pass.
func (u *Used) Reset(n int) {
	u.bits = make([]bool, n)
}

// Get returns a renderable, sampleable intermediate texture of exactly
// (w, h), or (nil, false) if allocating or recreating the entry fails.
// Get never refuses based on any disable state; the caller checks that
// separately.
//
// Picks the currently-unused entry (per used) whose |Δw| + |Δh| is
// minimum; on tie, the first encountered (lowest index) wins. If no
// free entry exists, appends a new one. The chosen entry is recreated
// at (w, h) if its dimensions differ, then marked used for the
// remainder of the frame.
func (p *Pool) Get(used *Used, w, h int) (*gpu.PooledTexture, bool) {
	used.EnsureLen(len(p.entries))

	best := -1
	bestDelta := -1
	for i, e := range p.entries {
		if used.bits[i] {
			continue
		}
		delta := absInt(e.Width()-w) + absInt(e.Height()-h)
		if best == -1 || delta < bestDelta {
			best = i
			bestDelta = delta
		}
	}

	if best == -1 {
		entry, err := gpu.NewPooledTexture(p.device, w, h, p.format)
		if err != nil {
			return nil, false
		}
		p.entries = append(p.entries, entry)
		best = len(p.entries) - 1
		used.EnsureLen(len(p.entries))
	}

	entry := p.entries[best]
	if entry.Width() != w || entry.Height() != h {
		if err := entry.Recreate(p.device, w, h); err != nil {
			return nil, false
		}
	}
	used.bits[best] = true
	return entry, true
}

// Destroy releases every pool entry. Called from Renderer.Destroy.
func (p *Pool) Destroy() {
	for _, e := range p.entries {
		e.Destroy()
	}
	p.entries = nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
