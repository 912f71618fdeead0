// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

// ShaderOp names one opaque shader-construction operation a pipeline
// stage appends to an in-flight ShaderBuilder. Every concrete op
// (debanding, color decode, linearization, peak detection, ...) is
// implemented by the shader constructor living on the other side of
// this package — vpipe only names which one to append and with what
// parameters.
type ShaderOp uint16

const (
	OpDeband ShaderOp = iota
	OpGrain
	OpDecodeColor
	OpEncodeColor
	OpLinearize
	OpDelinearize
	OpSigmoidize
	OpUnsigmoidize
	OpPeakDetect
	OpToneMap
	OpColorMap
	OpLUT3D
	OpCone
	OpDither
	OpSwizzle
	OpComponentMask
	OpMerge
	OpClear
	OpSample
)

// ShaderOps is implemented by a ShaderBuilder whose backend supports
// appending named operations. Not every builder need implement every
// op; Append reports false for anything it can't honor, letting the
// caller fall back or set the corresponding disable flag.
type ShaderOps interface {
	ShaderBuilder

	// Append adds op to the shader under construction, parameterized by
	// params (a concrete struct per op, opaque to this package).
	// Returns false if the backend cannot honor this op at all (a
	// capability gap) or the append itself failed (a transient dispatch
	// failure) — the caller cannot distinguish the two from this return
	// value alone and should treat both as "this op did not happen".
	Append(op ShaderOp, params any) bool
}
