package vpipe

import (
	"math"

	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/internal/color"
	"github.com/gogpu/vpipe/internal/hook"
	"github.com/gogpu/vpipe/internal/img"
)

// planeState is read_image's per-plane scratch: the plane's (possibly
// grain-replaced) texture, its subsampling ratio relative to the
// reference plane, and its sampling rectangle.
type planeState struct {
	plane Plane
	typ   PlaneType
	tex   gpu.Texture
	rrx   float64
	rry   float64
	rect  Rect
}

// subsampleRatio computes read_image step 2's integer-or-reciprocal
// scaling ratio: if ref/plane >= 1, round it; else take the reciprocal
// of round(plane/ref). This discards fractional subsampling artifacts
// (e.g. a 961-wide chroma plane under a 1920-wide luma plane still
// reports rrx=2).
func subsampleRatio(ref, plane float64) float64 {
	if plane <= 0 {
		return 1
	}
	ratio := ref / plane
	if ratio >= 1 {
		return math.Round(ratio)
	}
	return 1 / math.Round(plane/ref)
}

// readImage implements §4.4: classifies planes, computes per-plane
// sampling rectangles, applies grain synthesis, merges every plane
// into a single RGBA in-flight image, then runs color decode (with the
// NATIVE and RGB hooks) and HDR peak detection. Per-plane input hooks
// (LUMA_INPUT, CHROMA_INPUT, ...) are not run.
func readImage(p *pass) (*img.Image, error) {
	src := p.srcFrame
	types, ref, crop, _, _ := fixRefsAndRects(src)
	if ref < 0 {
		return nil, validationErrorf("source frame has no reference plane")
	}
	p.srcTypes = types
	p.srcRef = ref
	p.refRect = crop

	refTex := src.Planes[ref].Texture
	refW, refH := float64(refTex.Width()), float64(refTex.Height())

	states := make([]planeState, len(src.Planes))
	for i, pl := range src.Planes {
		w, h := float64(pl.Texture.Width()), float64(pl.Texture.Height())
		rrx := subsampleRatio(refW, w)
		rry := subsampleRatio(refH, h)
		rect := Rect{
			X0: (crop.X0 - pl.ShiftX) / rrx,
			Y0: (crop.Y0 - pl.ShiftY) / rry,
			X1: (crop.X1 - pl.ShiftX) / rrx,
			Y1: (crop.Y1 - pl.ShiftY) / rry,
		}
		states[i] = planeState{plane: pl, typ: types[i], tex: pl.Texture, rrx: rrx, rry: rry, rect: rect}
	}

	applyGrain(p, src, states)

	// Per-plane input hooks (LUMA_INPUT, CHROMA_INPUT, ...) are a
	// simplification left as future work — see DESIGN.md.

	refRectW := states[ref].rect.Width()
	refRectH := states[ref].rect.Height()
	logicalW := int(math.Round(math.Abs(refRectW)))
	logicalH := int(math.Round(math.Abs(refRectH)))

	factory, haveFactory := p.r.shaderFactory()
	if !haveFactory {
		return nil, capabilityErrorf("shader_factory", "device does not implement gpu.ShaderFactory")
	}
	sh := factory.BeginEmpty()

	alphaPresent := false
	for _, st := range states {
		if st.typ == PlaneAlpha {
			alphaPresent = true
		}
		for c := 0; c < st.plane.Components; c++ {
			if st.plane.ComponentMapping[c] == ChannelA {
				alphaPresent = true
			}
		}
		if ops, ok := sh.(gpu.ShaderOps); ok {
			ops.Append(gpu.OpSample, st)
			ops.Append(gpu.OpMerge, st.plane.ComponentMapping)
		}
	}

	components := 3
	if alphaPresent {
		components = 4
	}

	offX := math.Floor(math.Abs(crop.X0 - states[ref].rect.X0*states[ref].rrx))
	offY := math.Floor(math.Abs(crop.Y0 - states[ref].rect.Y0*states[ref].rry))

	rect := img.Rect{X0: offX, Y0: offY, X1: offX + refRectW, Y1: offY + refRectH}
	merged := img.FromShader(sh, logicalW, logicalH, rect, src.Repr, src.Space, components)

	decodeColor(p, merged)
	runPeakDetect(p, merged)

	return merged, nil
}

// applyGrain runs AV1 grain synthesis (§4.4 step 4) on every plane
// whose components participate, replacing that plane's texture with a
// post-grain one. Requires intermediate FBOs and a device implementing
// gpu.ShaderFactory, gpu.Finisher, and gpu.ShaderOps; any failure sets
// disable_grain permanently and leaves the plane's original texture in
// place.
func applyGrain(p *pass, src *Frame, states []planeState) {
	if src.Grain == nil || p.r.flags.Has(DisableGrain) {
		return
	}
	factory, haveFactory := p.r.shaderFactory()
	finisher, haveFinisher := p.r.finisher()
	if !haveFactory || !haveFinisher {
		p.r.flags.Set(DisableGrain, "device does not implement the shader collaborators grain synthesis needs")
		return
	}

	for i := range states {
		idx := i
		if idx >= len(src.Grain.Present) || !src.Grain.Present[idx] {
			continue
		}
		w, h := int(states[i].tex.Width()), int(states[i].tex.Height())
		tex, ok := p.r.fbos.Get(&p.used, w, h)
		if !ok {
			p.r.flags.Set(DisableGrain, "grain FBO allocation failed")
			return
		}
		sh := factory.BeginSample(states[i].tex)
		ops, supportsOps := sh.(gpu.ShaderOps)
		if !supportsOps || !ops.Append(gpu.OpGrain, src.Grain) {
			p.r.flags.Set(DisableGrain, "device cannot append grain synthesis op")
			return
		}
		if !finisher.Finish(sh, tex.Underlying()) {
			p.r.flags.Set(DisableGrain, "grain synthesis dispatch failed")
			return
		}
		states[i].tex = tex.Underlying()
	}
}

// decodeColor fires the NATIVE hook, decodes the frame's color system
// to RGB, then fires the RGB hook.
func decodeColor(p *pass, merged *img.Image) {
	if !p.r.flags.Has(DisableHooks) {
		image, err := p.r.hooks.Run(hook.Native, merged, img.Rect{X0: p.refRect.X0, Y0: p.refRect.Y0, X1: p.refRect.X1, Y1: p.refRect.Y1}, img.Rect{}, p.r.fbos, &p.used, mustFactory(p), mustFinisher(p))
		if err == nil {
			*merged = *image
		} else {
			p.r.flags.Set(DisableHooks, err.Error())
		}
	}

	if ops, ok := currentShaderOps(merged); ok {
		ops.Append(gpu.OpDecodeColor, merged.Repr)
	}
	merged.Repr.Sys = color.SystemRGB

	if !p.r.flags.Has(DisableHooks) {
		image, err := p.r.hooks.Run(hook.RGB, merged, img.Rect{}, img.Rect{}, p.r.fbos, &p.used, mustFactory(p), mustFinisher(p))
		if err == nil {
			*merged = *image
		} else {
			p.r.flags.Set(DisableHooks, err.Error())
		}
	}
}

// runPeakDetect installs HDR peak detection on the post-RGB shader
// when configured, requiring compute support and (unless delayed
// results are allowed) intermediate FBOs.
func runPeakDetect(p *pass, merged *img.Image) {
	if p.r.flags.Has(DisablePeakDetect) {
		return
	}
	if p.r.flags.Has(DisableCompute) {
		p.r.flags.Set(DisablePeakDetect, "compute shaders unavailable")
		return
	}
	ops, ok := currentShaderOps(merged)
	if !ok {
		p.r.flags.Set(DisablePeakDetect, "device cannot append peak-detect op")
		return
	}
	if !ops.Append(gpu.OpPeakDetect, nil) {
		p.r.flags.Set(DisablePeakDetect, "peak-detect dispatch failed")
	}
}

func currentShaderOps(i *img.Image) (gpu.ShaderOps, bool) {
	sh, ok := i.Shader()
	if !ok {
		return nil, false
	}
	ops, ok := sh.(gpu.ShaderOps)
	return ops, ok
}

func mustFactory(p *pass) gpu.ShaderFactory {
	f, _ := p.r.shaderFactory()
	return f
}

func mustFinisher(p *pass) gpu.Finisher {
	f, _ := p.r.finisher()
	return f
}
