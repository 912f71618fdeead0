package vpipe

import (
	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/internal/color"
)

// defaultRect overwrites rc with fallback if all four of rc's
// components are zero, per §4.8's default_rect.
func defaultRect(rc, fallback Rect) Rect {
	if rc.IsZero() {
		return fallback
	}
	return rc
}

// referenceIndex picks the index of the highest-priority plane in
// planes (ALPHA < CHROMA < LUMA < RGB < XYZ), or -1 if planes is
// empty.
func referenceIndex(planes []Plane, sys color.System, types []PlaneType) int {
	best := -1
	for i := range planes {
		if best == -1 || types[i] > types[best] {
			best = i
		}
	}
	return best
}

// fixRefsAndRects classifies every plane of f by type, picks its
// reference plane, fills a default crop from the reference texture's
// full extent, and normalizes the crop so x0<x1 and y0<y1 (remembering
// any flip). It returns the plane types, the reference plane index,
// the normalized crop, and the flip flags.
func fixRefsAndRects(f *Frame) (types []PlaneType, ref int, crop Rect, flipX, flipY bool) {
	types = make([]PlaneType, len(f.Planes))
	for i, p := range f.Planes {
		types[i] = DetectPlaneType(p, f.Repr.Sys)
	}
	ref = referenceIndex(f.Planes, f.Repr.Sys, types)

	var fallback Rect
	if ref >= 0 && f.Planes[ref].Texture != nil {
		tex := f.Planes[ref].Texture
		fallback = Rect{X0: 0, Y0: 0, X1: float64(tex.Width()), Y1: float64(tex.Height())}
	}
	crop = defaultRect(f.Crop, fallback)
	crop, flipX, flipY = crop.Normalized()
	return types, ref, crop, flipX, flipY
}

// roundRect rounds a floating-point rectangle to integer pixel
// boundaries, per output_target's destination-rect rounding.
func roundRect(r Rect) Rect {
	round := func(v float64) float64 {
		if v >= 0 {
			return float64(int64(v + 0.5))
		}
		return -float64(int64(-v + 0.5))
	}
	return Rect{X0: round(r.X0), Y0: round(r.Y0), X1: round(r.X1), Y1: round(r.Y1)}
}

// clipRect clips r to [0, maxW] x [0, maxH].
func clipRect(r Rect, maxW, maxH float64) Rect {
	if r.X0 < 0 {
		r.X0 = 0
	}
	if r.Y0 < 0 {
		r.Y0 = 0
	}
	if r.X1 > maxW {
		r.X1 = maxW
	}
	if r.Y1 > maxH {
		r.Y1 = maxH
	}
	return r
}

// fixColorSpace falls back to resolution-based primaries detection
// (color.GuessPrimaries) when a frame's primaries are unknown, fills
// in transfer and peak defaults, and reconciles the sample/color
// depths and bit shift.
func fixColorSpace(repr *color.Repr, space *color.Space, refW, refH int, sampleDepthHint int) {
	if space.Primaries == color.PrimariesUnknown {
		space.Primaries = color.GuessPrimaries(refW, refH)
	}
	if space.Transfer == color.TransferUnknown {
		space.Transfer = color.TransferSRGB
	}
	if space.PeakNits == 0 {
		space.PeakNits = color.DefaultPeakNits
	}

	if repr.SampleDepth == 0 {
		repr.SampleDepth = sampleDepthHint
	}
	if repr.ColorDepth == 0 || repr.ColorDepth > repr.SampleDepth {
		repr.ColorDepth = repr.SampleDepth
	}
	// Any residual difference between the texture's storage depth and
	// its real signal precision accumulates into BitShift, keeping
	// ColorDepth <= SampleDepth.
	residual := repr.SampleDepth - repr.ColorDepth
	if residual > repr.BitShift {
		repr.BitShift = residual
	}
}

// SetChromaLocation applies a chroma-plane sub-pixel shift to every
// plane of f classified as CHROMA. The fallback to every plane applies
// only when no reference plane exists, i.e. when f has no planes.
func (f *Frame) SetChromaLocation(shiftX, shiftY float64) {
	types, ref, _, _, _ := fixRefsAndRects(f)
	applyToAll := ref < 0
	for i := range f.Planes {
		if applyToAll || types[i] == PlaneChroma {
			f.Planes[i].ShiftX = shiftX
			f.Planes[i].ShiftY = shiftY
		}
	}
}

// FromSwapchain builds a single-plane target Frame sized to a
// swapchain-backed render target. If target.Flipped() is true, the
// constructed frame's crop.y0/y1 are swapped so output_target mirrors
// the destination rectangle to match the surface's row order. Only the
// target's size and row order are used: the plane's Texture is left
// nil and the frame keeps no reference to target.
func FromSwapchain(target gpu.RenderTarget, repr color.Repr, space color.Space) Frame {
	w, h := float64(target.Width()), float64(target.Height())
	crop := Rect{X0: 0, Y0: 0, X1: w, Y1: h}
	if target.Flipped() {
		crop.Y0, crop.Y1 = crop.Y1, crop.Y0
	}
	return Frame{
		Planes: []Plane{{
			Components:       4,
			ComponentMapping: [4]Component{ChannelR, ChannelG, ChannelB, ChannelA},
		}},
		Repr:  repr,
		Space: space,
		Crop:  crop,
	}
}

// IsCropped reports whether f's (normalized, rounded) crop differs
// from its reference texture's full extent. A frame with no reference
// plane, or whose reference plane has no texture (as FromSwapchain
// builds), reports false; for a full-extent crop, normalization undoes
// any y0/y1 swap before comparison.
func IsCropped(f *Frame) bool {
	types, ref, crop, _, _ := fixRefsAndRects(f)
	_ = types
	if ref < 0 {
		return false
	}
	tex := f.Planes[ref].Texture
	if tex == nil {
		return false
	}
	full := Rect{X0: 0, Y0: 0, X1: float64(tex.Width()), Y1: float64(tex.Height())}
	rc := roundRect(crop)
	return rc != full
}

// Clear computes, for each of f's planes, the per-channel values that
// represent the RGB triple in that plane's component layout, and
// returns them keyed by plane index. rgb is converted from BT.709
// primaries to f.Space.Primaries; a Y channel gets fixed BT.601 luma
// weights, Cb and Cr get 0.5, and alpha gets 1. f.Repr is not
// consulted, device is not used, and no texture is cleared.
func Clear(device gpu.DeviceHandle, f *Frame, rgb [3]float32) map[int][4]float32 {
	mat := color.PrimaryMatrix(color.PrimariesBT709, f.Space.Primaries)
	vr, vg, vb := mat.MulVec3(rgb[0], rgb[1], rgb[2])

	out := make(map[int][4]float32, len(f.Planes))
	for i, p := range f.Planes {
		var channel [4]float32
		for c := 0; c < p.Components; c++ {
			switch p.ComponentMapping[c] {
			case ChannelR:
				channel[c] = vr
			case ChannelG:
				channel[c] = vg
			case ChannelB:
				channel[c] = vb
			case ChannelA:
				channel[c] = 1
			case ChannelY:
				channel[c] = 0.299*vr + 0.587*vg + 0.114*vb
			case ChannelCb:
				channel[c] = 0.5
			case ChannelCr:
				channel[c] = 0.5
			}
		}
		out[i] = channel
	}
	return out
}
