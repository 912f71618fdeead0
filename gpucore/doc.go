// Package gpucore defines the opaque, backend-agnostic GPU resource
// vocabulary that vpipe's pipeline and collaborators are described
// against: resource IDs ([BufferID], [TextureID], [ShaderModuleID], ...),
// usage bitflags, and the descriptor types needed to request a compute
// pipeline or bind group ([ComputePipelineDesc], [BindGroupLayoutDesc],
// [BindGroupDesc]).
//
// # Role
//
// Nothing in this package creates a GPU resource. It gives every other
// package in this module (gpu, internal/fbo, internal/sampler, ...) a
// shared, allocation-free way to name "a texture", "a shader module", or
// "a bind-group layout" without importing a concrete backend. A backend
// adapter is free to interpret a [TextureID] however it likes; vpipe
// only ever passes the ID back through the same interface it came from.
//
// # Pixel format selection
//
// [PixelFormat] groups a texture format by the two properties the
// renderer's one-time FBO format cascade actually discriminates on —
// [SampleKind] (float/unorm/snorm) and bit depth — independently of
// which concrete [TextureFormat] a backend maps that combination to.
package gpucore
