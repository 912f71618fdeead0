// Package vpipe implements a configurable GPU image-rendering pipeline:
// the per-frame driver that turns a set of source planes into a set of
// target planes while applying color management, scaling, and an
// extensible stage-hook mechanism.
//
// # Overview
//
// vpipe is built around three operations called in sequence for every
// rendered frame:
//
//	ReadImage    (source planes  -> one merged in-flight image)
//	ScaleMain    (in-flight image -> resized in-flight image)
//	OutputTarget (in-flight image -> target planes)
//
// A [Renderer] owns the GPU-side state shared across frames: the FBO
// pool, persistent shader-object handles, sampler banks, and a
// one-way-latching bitset of disabled features.
//
// # Quick Start
//
//	r, err := vpipe.Create(ctx, device, candidateFormats, vpipe.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	defer r.Destroy()
//
//	ok := r.Render(&image, &target, vpipe.DefaultParams())
//
// # Architecture
//
//   - Public API: [Frame], [Plane], [RenderParams], [Renderer]
//   - Internal: internal/fbo (framebuffer pool), internal/img (in-flight
//     image), internal/sampler (filter selection), internal/hook (user
//     hook dispatch), internal/color (transfer functions, 3D-LUT),
//     internal/blend (overlay blend state)
//   - GPU contract: gpu (device/texture/shader-builder interfaces),
//     gpucore (opaque resource IDs and descriptors)
//
// # Scope
//
// Texture creation, shader dispatch, and the individual shader
// constructors (debander, sampler, color-map, dither, grain, 3D-LUT) are
// GPU-backend collaborators consumed only through the gpu package's
// interfaces — vpipe orchestrates them, it does not implement them.
package vpipe
