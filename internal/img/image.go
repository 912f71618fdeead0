// Package img implements the in-flight image: the pipeline's working
// value as it is threaded through read_image, scale_main, and
// output_target. At any point it is either a texture that has already
// been committed to GPU memory, or a shader still under construction
// that has not yet been dispatched — never both, never neither.
//
// Grounded on renderer.c's img_tex/img_sh helpers, which convert
// between a struct pl_shader and a pl_tex on demand. This package
// enforces the "exactly one of {shader, texture}" invariant in the
// type itself: form is an interface field holding exactly one of two
// unexported concrete types, so there is no pair of nullable fields
// for a caller to observe in an inconsistent state.
package img

import (
	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/internal/color"
	"github.com/gogpu/vpipe/internal/fbo"
)

// Rect is a floating-point source rectangle, carried alongside an
// Image so that cropping and padding survive texture/shader
// conversions without being baked into integer pixel coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width and Height report the rectangle's extents, which may be
// negative (a flipped crop).
func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

type form interface{ isForm() }

type texForm struct{ tex *gpu.PooledTexture }

func (texForm) isForm() {}

type shForm struct{ sh gpu.ShaderBuilder }

func (shForm) isForm() {}

// Image is the pipeline's in-flight value: a plane at some stage of
// processing, described by its nominal size, source rectangle, and
// color metadata, backed by exactly one of a texture or a
// shader-under-construction.
type Image struct {
	form form

	W, H       int
	Rect       Rect
	Repr       color.Repr
	Space      color.Space
	Components int
}

// FromTexture wraps an already-committed texture as an in-flight
// image. Used by read_image for a plane that arrives pre-uploaded,
// and by ToTex/ToSh to rebuild the wrapper after a conversion.
func FromTexture(tex *gpu.PooledTexture, w, h int, rect Rect, repr color.Repr, space color.Space, components int) *Image {
	return &Image{
		form:       texForm{tex: tex},
		W:          w,
		H:          h,
		Rect:       rect,
		Repr:       repr,
		Space:      space,
		Components: components,
	}
}

// FromShader wraps a shader under construction as an in-flight image.
// Used whenever a pipeline stage produces its output by appending to
// an existing shader rather than allocating a fresh texture.
func FromShader(sh gpu.ShaderBuilder, w, h int, rect Rect, repr color.Repr, space color.Space, components int) *Image {
	return &Image{
		form:       shForm{sh: sh},
		W:          w,
		H:          h,
		Rect:       rect,
		Repr:       repr,
		Space:      space,
		Components: components,
	}
}

// IsTexture reports whether img currently holds a committed texture.
func (img *Image) IsTexture() bool {
	_, ok := img.form.(texForm)
	return ok
}

// IsShader reports whether img currently holds a shader under
// construction.
func (img *Image) IsShader() bool {
	_, ok := img.form.(shForm)
	return ok
}

// Texture returns the backing texture and true if img is currently in
// texture form.
func (img *Image) Texture() (*gpu.PooledTexture, bool) {
	f, ok := img.form.(texForm)
	if !ok {
		return nil, false
	}
	return f.tex, true
}

// Shader returns the backing shader builder and true if img is
// currently in shader form.
func (img *Image) Shader() (gpu.ShaderBuilder, bool) {
	f, ok := img.form.(shForm)
	if !ok {
		return nil, false
	}
	return f.sh, true
}

// ToTex commits img to a concrete texture, claiming an FBO pool entry
// and dispatching the pending shader onto it. A no-op returning true
// if img is already a texture. Grounded on renderer.c's img_tex.
func (img *Image) ToTex(pool *fbo.Pool, used *fbo.Used, finish gpu.Finisher) bool {
	if img.IsTexture() {
		return true
	}
	sh, ok := img.Shader()
	if !ok {
		return false
	}
	tex, ok := pool.Get(used, img.W, img.H)
	if !ok {
		return false
	}
	if !finish.Finish(sh, tex.Underlying()) {
		return false
	}
	img.form = texForm{tex: tex}
	return true
}

// ToSh begins a new shader sampling from img's committed texture. A
// no-op returning true if img is already a shader. Grounded on
// renderer.c's img_sh.
func (img *Image) ToSh(factory gpu.ShaderFactory) bool {
	if img.IsShader() {
		return true
	}
	tex, ok := img.Texture()
	if !ok {
		return false
	}
	sh := factory.BeginSample(tex.Underlying())
	if sh == nil {
		return false
	}
	img.form = shForm{sh: sh}
	return true
}
