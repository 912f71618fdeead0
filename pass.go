package vpipe

import (
	"github.com/gogpu/vpipe/internal/fbo"
	"github.com/gogpu/vpipe/internal/img"
)

// pass is per-render scratch state: everything read_image, scale_main,
// and output_target thread through a single Render call. It never
// survives past one call to Renderer.Render.
type pass struct {
	r *Renderer

	image *img.Image

	srcFrame *Frame
	dstFrame *Frame

	srcTypes []PlaneType
	dstTypes []PlaneType
	srcRef   int
	dstRef   int

	// refRect is the current mapping of the image crop through the
	// pipeline: it starts as the source crop and is updated as scaling
	// changes the image's logical rectangle.
	refRect Rect

	// dstRect is the integer (rounded, clipped) destination rectangle
	// in the target reference plane's pixel coordinates.
	dstRect Rect

	// dstFlipX, dstFlipY record whether the target frame's crop was
	// flipped along each axis (fixRefsAndRects normalizes it away),
	// so output_target can mirror each plane's destination rect to
	// match.
	dstFlipX, dstFlipY bool

	// used tracks which FBO pool entries are claimed for the remainder
	// of this pass; always kept in lockstep with r.fbos.Len().
	used fbo.Used
}

func newPass(r *Renderer, src, dst *Frame) *pass {
	return &pass{r: r, srcFrame: src, dstFrame: dst}
}

// prepareTarget classifies the target frame's planes and resolves its
// destination rectangle, ahead of scale_main needing it to size the
// main scaler's dispatch. output_target reuses these same fields
// rather than recomputing them.
func (p *pass) prepareTarget() error {
	dst := p.dstFrame
	types, ref, crop, flipX, flipY := fixRefsAndRects(dst)
	if ref < 0 {
		return validationErrorf("target frame has no reference plane")
	}
	p.dstTypes = types
	p.dstRef = ref
	p.dstFlipX = flipX
	p.dstFlipY = flipY
	refTex := dst.Planes[ref].Texture
	p.dstRect = roundRect(clipRect(crop, float64(refTex.Width()), float64(refTex.Height())))
	return nil
}
