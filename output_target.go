package vpipe

import (
	"math"

	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/internal/blend"
	"github.com/gogpu/vpipe/internal/color"
	"github.com/gogpu/vpipe/internal/hook"
	"github.com/gogpu/vpipe/internal/img"
)

// outputTarget implements §4.6: either engages a 3D-LUT (when
// LUT3DParams is set, the 3D-LUT is not disabled, and the source and
// target ICC profiles differ or force_3dlut is set) or color-maps to
// the target's space; the 3D-LUT path appends no color-map step before
// or after the LUT. It then distorts for cone response, encodes, fires
// the OUTPUT hook, then writes every target plane (with component
// masking, dithering, and target-scope overlay compositing as
// configured).
func outputTarget(p *pass, params RenderParams) error {
	dst := p.dstFrame
	types := p.dstTypes
	image := p.image

	use3DLUT := !p.r.flags.Has(Disable3DLUT) && params.LUT3DParams != nil &&
		(params.Force3DLUT || p.srcFrame.ICCProfile != dst.ICCProfile)

	if use3DLUT {
		appendOp(image, gpu.OpLUT3D, params.LUT3DParams)
	} else {
		appendOp(image, gpu.OpColorMap, colorMapParams{
			from: p.srcFrame.Space, to: dst.Space,
			adjust: params.ColorAdjustment, cfg: params.ColorMapParams,
		})
	}

	if params.ConeParams != nil {
		appendOp(image, gpu.OpCone, params.ConeParams)
	}

	appendOp(image, gpu.OpEncodeColor, dst.Repr)

	runHook(p, hook.Output, image)

	finisher, haveFinisher := p.r.finisher()
	factory, haveFactory := p.r.shaderFactory()
	if !haveFinisher || !haveFactory {
		return capabilityErrorf("shader_factory", "device does not implement the shader collaborators output writing needs")
	}

	multiPlane := len(dst.Planes) > 1
	if multiPlane && image.IsShader() {
		// A single shader-form image can only be finished once; with
		// more than one target plane to write, commit it to a texture
		// up front so each plane starts its own sample-and-mask pass.
		if !image.ToTex(p.r.fbos, &p.used, finisher) {
			return dispatchErrorf("output_target", "failed to materialize multi-plane write source")
		}
	}
	for i, pl := range dst.Planes {
		if err := writePlane(p, params, image, pl, types[i], i == p.dstRef, multiPlane, factory, finisher); err != nil {
			return err
		}
	}

	drawOverlays(p, image, dst.Overlays, false)

	return nil
}

type colorMapParams struct {
	from, to color.Space
	adjust   *ColorAdjustment
	cfg      *StageConfig
}

// writePlane dispatches the fully-processed in-flight image onto one
// target plane: resamples to the plane's own subsampled footprint
// (rrx/rry against the target's reference plane, like read_image's
// input-side rule), masks to its mapped components, divides by its
// NormalizeScale so the write lands in the target's raw sample range,
// swizzles into its channel layout, dithers if its depth warrants it
// (or force_dither is set), and finishes with the destination rect
// mirrored to match any x/y flip on the target's crop.
func writePlane(p *pass, params RenderParams, image *img.Image, pl Plane, typ PlaneType, isRef, multiPlane bool, factory gpu.ShaderFactory, finisher gpu.Finisher) error {
	var sh gpu.ShaderBuilder
	if tex, isTex := image.Texture(); isTex {
		sh = factory.BeginSample(tex.Underlying())
	} else if s, isSh := image.Shader(); isSh {
		sh = s
	} else {
		return dispatchErrorf("output_target", "in-flight image has neither a texture nor a shader form")
	}

	ops, supportsOps := sh.(gpu.ShaderOps)
	if !supportsOps {
		return capabilityErrorf("shader_ops", "device's shader builder does not support operation append")
	}

	// Same subsampling rules as read_image step 2 (§4.4): the plane's
	// ratio to the target's reference plane, and a flip-normalized,
	// shift-adjusted rect in the plane's own pixel space.
	refTex := p.dstFrame.Planes[p.dstRef].Texture
	refW, refH := float64(refTex.Width()), float64(refTex.Height())
	w, h := float64(pl.Texture.Width()), float64(pl.Texture.Height())
	rrx := subsampleRatio(refW, w)
	rry := subsampleRatio(refH, h)
	rect := Rect{
		X0: (p.dstRect.X0 - pl.ShiftX) / rrx,
		Y0: (p.dstRect.Y0 - pl.ShiftY) / rry,
		X1: (p.dstRect.X1 - pl.ShiftX) / rrx,
		Y1: (p.dstRect.Y1 - pl.ShiftY) / rry,
	}
	ops.Append(gpu.OpSample, planeState{plane: pl, typ: typ, tex: pl.Texture, rrx: rrx, rry: rry, rect: rect})

	if multiPlane {
		ops.Append(gpu.OpComponentMask, pl.ComponentMapping)
	}

	if scale := p.dstFrame.Repr.NormalizeScale(); scale != 1 {
		ops.Append(gpu.OpColorMap, scaleDivideParams{scale: scale})
	}
	ops.Append(gpu.OpSwizzle, pl.ComponentMapping)

	needsDither := !p.r.flags.Has(DisableDebanding) && params.DitherParams != nil &&
		(p.dstFrame.Repr.SampleDepth <= 16 || params.ForceDither)
	if needsDither {
		ops.Append(gpu.OpDither, params.DitherParams)
	}

	state := blend.Replace()
	if params.BlendParams != nil && !p.r.flags.Has(DisableBlending) && pl.Texture.Blendable() {
		state = blend.Overlay()
	}

	newW := math.Round(math.Abs(rect.Width()))
	newH := math.Round(math.Abs(rect.Height()))
	blendRect := gpu.BlendRect{X: rect.X0, Y: rect.Y0, W: newW, H: newH}
	if p.dstFlipX {
		blendRect.W = -blendRect.W
	}
	if p.dstFlipY {
		blendRect.H = -blendRect.H
	}

	if !finisher.FinishBlend(sh, pl.Texture, state, blendRect) {
		return dispatchErrorf("output_target", "failed to dispatch onto target plane")
	}
	return nil
}

// scaleDivideParams parameterizes gpu.OpColorMap when writePlane needs
// to divide by a plane's raw-sample-range scale factor
// (color.Repr.NormalizeScale) rather than convert between color
// systems.
type scaleDivideParams struct {
	scale float64
}
