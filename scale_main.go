package vpipe

import (
	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/internal/hook"
	"github.com/gogpu/vpipe/internal/img"
	"github.com/gogpu/vpipe/internal/sampler"
)

// scaleMain implements §4.5: decides whether an intermediate FBO is
// needed, optionally linearizes and sigmoidizes, dispatches the
// configured filter, fires the PRE_KERNEL/POST_KERNEL/SCALED hooks,
// and (if an intermediate was materialized) composites image-scope
// overlays onto it.
//
// NOTE: the `tf` matrix bug noted in spec §9 (image-overlay scaling
// uses the rect's width for both axes) is preserved verbatim in
// drawOverlays, not here — scale_main itself only decides whether the
// overlay draw happens at all.
func scaleMain(p *pass, params RenderParams) error {
	image := p.image
	srcRect := image.Rect
	targetW := p.dstRect.Width()
	targetH := p.dstRect.Height()

	direction := sampler.ClassifyDirection(targetW/srcRect.Width(), targetH/srcRect.Height())
	filter := params.Upscaler.Kind
	if direction == sampler.DOWN {
		filter = params.Downscaler.Kind
	}
	if params.DisableBuiltinScalers && filter == sampler.FilterNone {
		filter = sampler.FilterOther
	}

	linearFilterable := false
	if tex, ok := image.Texture(); ok && tex.Underlying() != nil {
		linearFilterable = tex.Underlying().LinearFilterable()
	}

	req := sampler.Request{
		RX:                       targetW / srcRect.Width(),
		RY:                       targetH / srcRect.Height(),
		Filter:                   filter,
		IntermediateFBOsDisabled: p.r.flags.Has(DisableSampling) || params.DisableFBOs,
		AdvancedSamplingDisabled: p.r.flags.Has(DisableSampling),
		LinearFilterable:         linearFilterable,
		AntiAliasingSkip:         params.SkipAntiAliasing,
	}
	plan := sampler.Select(req)

	hasScalingHooks := hooksBindAny(params.Hooks, StageLinear, StageSigmoid, StagePreOverlay, StagePreKernel, StagePostKernel, StageScaled)
	peakLive := !p.r.flags.Has(DisablePeakDetect) && params.PeakDetectParams != nil
	needFBO := len(p.srcFrame.Overlays) > 0 ||
		(peakLive && !params.AllowDelayedPeakDetect) ||
		(image.IsShader() && fixedSizeMismatch(image, p.dstRect)) ||
		hasScalingHooks

	if plan.Direction == sampler.NOOP && !needFBO {
		image.W, image.H = int(targetW), int(targetH)
		return nil
	}
	if plan.Type == sampler.DIRECT && !needFBO {
		image.W, image.H = int(targetW), int(targetH)
		return nil
	}

	useLinear := false
	useSigmoid := false
	if !params.DisableLinearScaling {
		isHDR := image.Space.IsHDR()
		useSigmoid = direction == sampler.UP && params.SigmoidParams != nil && !isHDR
		useLinear = useSigmoid || direction == sampler.DOWN

		if p.r.flags.Has(DisableLinearSDR) {
			useLinear = false
			useSigmoid = false
		}
		if isHDR {
			useSigmoid = false
			if p.r.flags.Has(DisableLinearHDR) {
				useLinear = false
			}
		}
	}

	runHook(p, hook.Linear, image)
	if useLinear {
		appendOp(image, gpu.OpLinearize, nil)
	}
	runHook(p, hook.Sigmoid, image)
	if useSigmoid {
		appendOp(image, gpu.OpSigmoidize, params.SigmoidParams)
	}

	runHook(p, hook.PreOverlay, image)

	finisher, haveFinisher := p.r.finisher()
	if haveFinisher && needFBO {
		if !image.ToTex(p.r.fbos, &p.used, finisher) {
			return dispatchErrorf("scale_main", "failed to materialize pre-overlay texture")
		}
		drawOverlays(p, image, p.srcFrame.Overlays, useSigmoid)
	}

	runHook(p, hook.PreKernel, image)

	factory, haveFactory := p.r.shaderFactory()
	if !haveFactory {
		return capabilityErrorf("shader_factory", "device does not implement gpu.ShaderFactory")
	}

	kind, ok := sampler.Dispatch(plan)
	if !ok {
		p.r.flags.Set(DisableSampling, "sampler dispatch kind unresolved")
		kind = sampler.DispatchDirect
	}

	var sh gpu.ShaderBuilder
	if tex, isTex := image.Texture(); isTex {
		sh = factory.BeginSample(tex.Underlying())
	} else {
		s, _ := image.Shader()
		sh = s
	}
	if ops, isOps := sh.(gpu.ShaderOps); isOps {
		if !ops.Append(gpu.OpSample, kind) {
			p.r.flags.Set(DisableSampling, "complex sampler dispatch failed")
		}
	}
	image.W, image.H = int(targetW), int(targetH)
	image.Rect = img.Rect{X0: 0, Y0: 0, X1: targetW, Y1: targetH}

	runHook(p, hook.PostKernel, image)
	if useSigmoid {
		appendOp(image, gpu.OpUnsigmoidize, nil)
	}
	runHook(p, hook.Scaled, image)

	return nil
}

func fixedSizeMismatch(image *img.Image, dst Rect) bool {
	sh, ok := image.Shader()
	if !ok {
		return false
	}
	w, h := sh.Width(), sh.Height()
	if w == 0 && h == 0 {
		return false
	}
	return int(w) != int(dst.Width()) || int(h) != int(dst.Height())
}

func hooksBindAny(hooks []Hook, stages ...HookStage) bool {
	want := map[HookStage]bool{}
	for _, s := range stages {
		want[s] = true
	}
	for _, h := range hooks {
		for _, s := range h.Stages {
			if want[s] {
				return true
			}
		}
	}
	return false
}

func appendOp(image *img.Image, op gpu.ShaderOp, params any) bool {
	ops, ok := currentShaderOps(image)
	if !ok {
		return false
	}
	return ops.Append(op, params)
}

// runHook drives the hook dispatcher for one stage against p's
// renderer, replacing p.image in place and latching disable_hooks on
// any contract violation. Failures are swallowed here; once
// disable_hooks is latched, this and every later runHook call returns
// without running any hook, so hooks for later stages do not run.
func runHook(p *pass, stage hook.Stage, image *img.Image) {
	if p.r.flags.Has(DisableHooks) {
		return
	}
	factory, _ := p.r.shaderFactory()
	finisher, _ := p.r.finisher()
	out, err := p.r.hooks.Run(stage, image, rectToImg(p.refRect), rectToImg(p.dstRect), p.r.fbos, &p.used, factory, finisher)
	if err != nil {
		p.r.flags.Set(DisableHooks, err.Error())
		return
	}
	*image = *out
}
