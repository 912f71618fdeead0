package vpipe

import (
	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/internal/blend"
	"github.com/gogpu/vpipe/internal/img"
)

// drawOverlays implements §4.7's overlay compositing: each overlay is
// sampled, its color decoded and (if the destination is sigmoidized)
// matched to that encoding, then alpha blended onto dst, which must
// already be a committed texture.
//
// Per spec §9, the destination-rect transform divides both axes by
// the rect's *width*, not width and height respectively — this bug is
// preserved verbatim here rather than fixed; see DESIGN.md's Open
// Question decision.
func drawOverlays(p *pass, dst *img.Image, overlays []Overlay, sigmoidized bool) {
	if p.r.flags.Has(DisableOverlay) || len(overlays) == 0 {
		return
	}

	pooled, ok := dst.Texture()
	if !ok {
		return
	}
	tex := pooled.Underlying()
	if tex == nil {
		return
	}

	factory, haveFactory := p.r.shaderFactory()
	finisher, haveFinisher := p.r.finisher()
	if !haveFactory || !haveFinisher {
		p.r.flags.Set(DisableOverlay, "device does not implement the shader collaborators overlay compositing needs")
		return
	}

	if !tex.Blendable() {
		p.r.flags.Set(DisableBlending, "target texture format is not blendable")
	}

	for _, ov := range overlays {
		state := blend.Overlay()
		if p.r.flags.Has(DisableBlending) {
			state = blend.Replace()
		}

		sh := factory.BeginSample(ov.Plane.Texture)
		ops, supportsOps := sh.(gpu.ShaderOps)
		if !supportsOps {
			continue
		}

		if ov.Mode == OverlayMonochrome {
			ops.Append(gpu.OpColorMap, monochromeParams{base: ov.BaseColor})
		} else {
			ops.Append(gpu.OpDecodeColor, ov.Repr)
		}
		if sigmoidized {
			ops.Append(gpu.OpSigmoidize, nil)
		}
		ops.Append(gpu.OpEncodeColor, dst.Repr)
		ops.Append(gpu.OpSwizzle, ov.Plane.ComponentMapping)

		// NOTE: per spec §9, both axes are scaled by the rect's width.
		scale := ov.Rect.Width()
		rect := gpu.BlendRect{
			X: ov.Rect.X0 * scale,
			Y: ov.Rect.Y0 * scale,
			W: ov.Rect.Width() * scale,
			H: ov.Rect.Height() * scale,
		}
		if !finisher.FinishBlend(sh, tex, state, rect) {
			p.r.flags.Set(DisableOverlay, "overlay blend dispatch failed")
			return
		}
	}
}

// monochromeParams parameterizes gpu.OpColorMap when an overlay
// plane's single mapped channel is alpha over a solid base color.
type monochromeParams struct {
	base [3]float32
}
