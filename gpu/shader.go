// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

// ShaderFactory begins new in-flight shaders. Implemented by
// DeviceHandle-adjacent backends; vpipe calls it whenever a pipeline
// stage needs to start composing a new shader rather than append to an
// existing one.
type ShaderFactory interface {
	// BeginSample starts a new ShaderBuilder whose first operation is a
	// direct sample from tex. Used by internal/img's texture-to-shader
	// conversion (to_sh in spec terms).
	BeginSample(tex Texture) ShaderBuilder

	// BeginEmpty starts a new ShaderBuilder with no initial operation,
	// used when a stage (e.g. the plane merger) composes output from
	// scratch rather than from a single source texture.
	BeginEmpty() ShaderBuilder
}
