package vpipe

import (
	"github.com/gogpu/vpipe/internal/hook"
	"github.com/gogpu/vpipe/internal/img"
)

// hookAdapter bridges a public Hook (user-facing, no dependency on
// internal packages) to the internal/hook.Hook interface the
// dispatcher actually walks.
type hookAdapter struct {
	h Hook
}

func newHookAdapter(h Hook) *hookAdapter { return &hookAdapter{h: h} }

func (a *hookAdapter) Stages() hook.Mask {
	var m hook.Mask
	for _, s := range a.h.Stages {
		m |= hook.Of(toInternalStage(s))
	}
	return m
}

func (a *hookAdapter) Signature() hook.Signature {
	return toInternalSignature(a.h.Signature)
}

func (a *hookAdapter) Run(ctx hook.Context) hook.Result {
	out := a.h.Run(HookContext{
		Rect:       rectFromImg(ctx.Rect),
		Components: ctx.Components,
		RefRect:    rectFromImg(ctx.RefRect),
		DstRect:    rectFromImg(ctx.DstRect),
	})

	res := hook.Result{
		Signature:  toInternalSignature(out.Signature),
		Failed:     out.Failed,
		Rect:       rectToImg(out.Rect),
		W:          out.W,
		H:          out.H,
		Repr:       ctx.Repr,
		Space:      ctx.Space,
		Components: ctx.Components,
	}
	return res
}

func toInternalStage(s HookStage) hook.Stage {
	switch s {
	case StageNative:
		return hook.Native
	case StageRGB:
		return hook.RGB
	case StageLumaInput:
		return hook.LumaInput
	case StageChromaInput:
		return hook.ChromaInput
	case StageAlphaInput:
		return hook.AlphaInput
	case StageRGBInput:
		return hook.RGBInput
	case StageXYZInput:
		return hook.XYZInput
	case StageLinear:
		return hook.Linear
	case StageSigmoid:
		return hook.Sigmoid
	case StagePreOverlay:
		return hook.PreOverlay
	case StagePreKernel:
		return hook.PreKernel
	case StagePostKernel:
		return hook.PostKernel
	case StageScaled:
		return hook.Scaled
	default:
		return hook.Output
	}
}

func toInternalSignature(s HookSignature) hook.Signature {
	switch s {
	case SignatureTex:
		return hook.SigTex
	case SignatureColor:
		return hook.SigColor
	default:
		return hook.SigNone
	}
}

func rectFromImg(r img.Rect) Rect {
	return Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
}

func rectToImg(r Rect) img.Rect {
	return img.Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
}
