// Package blend describes GPU fixed-function alpha-blend state for
// overlay compositing. Unlike a CPU compositor, vpipe never touches
// pixel bytes directly here — it builds the (factor, factor, equation)
// triple a draw call configures its blend unit with, and hands that
// descriptor to the opaque dispatch collaborator.
package blend

// Factor names a blend-equation operand, matching the WebGPU/OpenGL
// fixed-function blend-factor vocabulary.
type Factor uint8

const (
	// Zero contributes nothing.
	Zero Factor = iota
	// One passes the operand through unscaled.
	One
	// SrcAlpha scales by the source fragment's alpha.
	SrcAlpha
	// OneMinusSrcAlpha scales by (1 - source alpha).
	OneMinusSrcAlpha
	// DstAlpha scales by the destination's current alpha.
	DstAlpha
	// OneMinusDstAlpha scales by (1 - destination alpha).
	OneMinusDstAlpha
)

// Equation names the blend combine operator.
type Equation uint8

const (
	// Add combines src and dst by addition (the only equation vpipe's
	// overlay compositor needs).
	Add Equation = iota
)

// State is a GPU blend-state descriptor: independent factor pairs for
// color and alpha channels plus a combine equation. Passed to the
// dispatch collaborator verbatim; vpipe never evaluates it itself.
type State struct {
	SrcColor Factor
	DstColor Factor
	SrcAlpha Factor
	DstAlpha Factor
	Equation Equation
}

// Overlay returns the blend state spec §4.7 prescribes for alpha
// compositing a user overlay onto the in-flight image:
// (SRC_ALPHA, 1-SRC_ALPHA, ONE, 1-SRC_ALPHA).
func Overlay() State {
	return State{
		SrcColor: SrcAlpha,
		DstColor: OneMinusSrcAlpha,
		SrcAlpha: One,
		DstAlpha: OneMinusSrcAlpha,
		Equation: Add,
	}
}

// Replace is the degenerate "no blending" state used when overlay
// blending has been permanently disabled (DisableBlending) but the
// caller still wants a deterministic, fully-opaque composite: the
// source simply replaces the destination.
func Replace() State {
	return State{
		SrcColor: One,
		DstColor: Zero,
		SrcAlpha: One,
		DstAlpha: Zero,
		Equation: Add,
	}
}
