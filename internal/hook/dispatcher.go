package hook

import (
	"errors"

	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/internal/color"
	"github.com/gogpu/vpipe/internal/fbo"
	"github.com/gogpu/vpipe/internal/img"
)

// ErrContractViolation is returned by Dispatcher.Run when a hook fails
// outright or violates the non-resizable-stage contract. The caller
// (the root renderer) is responsible for setting its disable_hooks
// latch and logging a warning; this package has no notion of the
// renderer's feature-flag state.
var ErrContractViolation = errors.New("hook: contract violation")

// Signature names the in-flight image form a hook requires as input,
// and the form its Result carries as output.
type Signature uint8

const (
	// SigNone means the hook needs no image access; its Result carries
	// no replacement.
	SigNone Signature = iota
	// SigTex means the hook operates on a committed texture (to_tex).
	SigTex
	// SigColor means the hook operates on a shader under construction
	// (to_sh).
	SigColor
)

// Context is everything a hook is invoked with: the current image's
// descriptive metadata, the pass-wide reference and destination
// rectangles, and a callback re-entering the FBO pool so the hook can
// allocate its own intermediate textures.
type Context struct {
	Rect       img.Rect
	Repr       color.Repr
	Space      color.Space
	Components int

	RefRect img.Rect
	DstRect img.Rect

	GetFBO func(w, h int) (*gpu.PooledTexture, bool)
}

// Result is a hook's output.
type Result struct {
	Signature Signature

	// Failed indicates the hook could not run (its own internal
	// failure, distinct from a marshaling failure on the dispatcher's
	// side). Always treated as a contract violation.
	Failed bool

	// The following are meaningful only when Signature != SigNone.
	Tex *gpu.PooledTexture
	Sh  gpu.ShaderBuilder

	Rect       img.Rect
	Repr       color.Repr
	Space      color.Space
	Components int
	W, H       int
}

// Hook is a single registered stage callback.
type Hook interface {
	Stages() Mask
	Signature() Signature
	Run(ctx Context) Result
}

// Dispatcher walks a renderer's registered hooks for one stage at a
// time.
type Dispatcher struct {
	hooks []Hook
}

// NewDispatcher builds a dispatcher over the given hooks, in
// registration order.
func NewDispatcher(hooks []Hook) *Dispatcher {
	return &Dispatcher{hooks: hooks}
}

// Run walks every hook registered for stage, marshaling image to each
// hook's requested signature and replacing it with the hook's output.
// Returns the (possibly replaced) image, or an error wrapping
// ErrContractViolation if any hook fails or violates the
// non-resizable-stage contract; on error the loop stops immediately
// and the caller must disable further hooks for the renderer's
// lifetime.
func (d *Dispatcher) Run(
	stage Stage,
	image *img.Image,
	refRect, dstRect img.Rect,
	pool *fbo.Pool,
	used *fbo.Used,
	factory gpu.ShaderFactory,
	finisher gpu.Finisher,
) (*img.Image, error) {
	for _, h := range d.hooks {
		if !h.Stages().Has(stage) {
			continue
		}

		switch h.Signature() {
		case SigTex:
			if !image.ToTex(pool, used, finisher) {
				return image, ErrContractViolation
			}
		case SigColor:
			if !image.ToSh(factory) {
				return image, ErrContractViolation
			}
		}

		ctx := Context{
			Rect:       image.Rect,
			Repr:       image.Repr,
			Space:      image.Space,
			Components: image.Components,
			RefRect:    refRect,
			DstRect:    dstRect,
			GetFBO: func(w, h int) (*gpu.PooledTexture, bool) {
				return pool.Get(used, w, h)
			},
		}

		res := h.Run(ctx)
		if res.Failed {
			return image, ErrContractViolation
		}

		switch res.Signature {
		case SigNone:
			continue
		case SigTex, SigColor:
			if !stage.Resizable() {
				if res.W != image.W || res.H != image.H || res.Rect != image.Rect {
					return image, ErrContractViolation
				}
			}
			image = replace(res)
		}
	}
	return image, nil
}

func replace(res Result) *img.Image {
	if res.Signature == SigTex {
		return img.FromTexture(res.Tex, res.W, res.H, res.Rect, res.Repr, res.Space, res.Components)
	}
	return img.FromShader(res.Sh, res.W, res.H, res.Rect, res.Repr, res.Space, res.Components)
}
