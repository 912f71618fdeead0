package vpipe

import "github.com/gogpu/vpipe/internal/sampler"

// FilterConfig names a configured resampling kernel. A zero value
// (FilterConfig{}) means "no filter configured" (sampler.FilterNone).
type FilterConfig struct {
	Kind sampler.FilterKind

	// PolarCutoff and AntiringingStrength tune the kernel when Kind is
	// polar or otherwise ringing-prone; zero means "use the kernel's
	// own default".
	PolarCutoff         float64
	AntiringingStrength float64
}

// StageConfig is a generic marker for an optional sub-shader stage:
// debanding, peak detection, color mapping, dithering, cone-response,
// or 3D-LUT. A nil *StageConfig disables the stage; a non-nil value
// (even if zero) enables it with default tuning. The concrete tuning
// fields are opaque to vpipe — each stage's shader constructor
// interprets Params itself.
type StageConfig struct {
	Params map[string]float64
}

// ColorAdjustment is an extra matrix applied during color decode, on
// top of the frame's own primaries conversion.
type ColorAdjustment struct {
	Brightness, Contrast, Saturation, Hue float64
}

// Hook is the public shape of a user-registered hook, matching §6's
// "ordered list of user hook objects; each has a stage mask, an input
// signature, an output signature, a hook function, and an optional
// reset callback." The function fields are re-exposed by internal/hook
// via an adapter built when hooks are installed on a Renderer.
type Hook struct {
	Stages    []HookStage
	Signature HookSignature

	// Run is invoked once per matching stage per frame. ctx carries the
	// in-flight image's current metadata and the pass-wide rectangles;
	// the returned HookOutput replaces (or leaves untouched) the
	// in-flight image.
	Run func(ctx HookContext) HookOutput

	// Reset is an optional callback for a hook's own per-renderer state
	// (e.g. a temporal accumulator). No Renderer method calls it;
	// Renderer.FlushCache clears only the peak-detect state.
	Reset func()
}

// HookStage names one of the fixed pipeline stages a hook may bind to.
type HookStage uint8

const (
	StageNative HookStage = iota
	StageRGB
	StageLumaInput
	StageChromaInput
	StageAlphaInput
	StageRGBInput
	StageXYZInput
	StageLinear
	StageSigmoid
	StagePreOverlay
	StagePreKernel
	StagePostKernel
	StageScaled
	StageOutput
)

// HookSignature names the in-flight image form a hook is marshaled to
// before it runs.
type HookSignature uint8

const (
	SignatureNone HookSignature = iota
	SignatureTex
	SignatureColor
)

// HookContext is the public view of internal/hook.Context passed to a
// user hook's Run function.
type HookContext struct {
	Rect       Rect
	Components int
	RefRect    Rect
	DstRect    Rect
}

// HookOutput is a user hook's result.
type HookOutput struct {
	Signature HookSignature
	Failed    bool
	Rect      Rect
	W, H      int
}

// RenderParams configures one Render call. Every field is
// independently optional; a nil *StageConfig disables that stage and a
// zero value leaves the corresponding feature off. Nothing falls back
// to a preset: DefaultParams and HighQualityParams are starting values
// a caller passes explicitly.
type RenderParams struct {
	Upscaler, Downscaler FilterConfig

	// FrameMixer exists for interface parity with the wider ecosystem's
	// temporal-mixing contract but is never consumed by any stage in
	// this core — see DESIGN.md's Open Question decision.
	FrameMixer *FilterConfig

	SigmoidParams    *StageConfig
	PeakDetectParams *StageConfig
	ColorMapParams   *StageConfig
	DitherParams     *StageConfig
	DebandParams     *StageConfig
	ConeParams       *StageConfig
	LUT3DParams      *StageConfig
	BlendParams      *StageConfig

	ColorAdjustment *ColorAdjustment

	LUTEntries          int
	PolarCutoff         float64
	AntiringingStrength float64

	SkipAntiAliasing bool

	DisableLinearScaling   bool
	DisableBuiltinScalers  bool
	DisableFBOs            bool
	DisableOverlaySampling bool
	Force3DLUT             bool
	ForceDither            bool
	AllowDelayedPeakDetect bool

	Hooks []Hook
}

// DefaultParams returns the "default" preset: spline36 upscaler,
// mitchell downscaler, no debander, sigmoid + peak-detect + color-map
// + dither all enabled. A package-level constant per spec §9's "no
// global state... the two preset RenderParams are constants."
func DefaultParams() RenderParams {
	return defaultParams
}

// HighQualityParams returns the "high quality" preset: ewa-lanczos
// upscaler, mitchell downscaler, plus debanding enabled.
func HighQualityParams() RenderParams {
	return highQualityParams
}

var defaultParams = RenderParams{
	Upscaler:         FilterConfig{Kind: sampler.FilterOther}, // spline36
	Downscaler:       FilterConfig{Kind: sampler.FilterOther}, // mitchell
	SigmoidParams:    &StageConfig{},
	PeakDetectParams: &StageConfig{},
	ColorMapParams:   &StageConfig{},
	DitherParams:     &StageConfig{},
}

var highQualityParams = RenderParams{
	Upscaler:         FilterConfig{Kind: sampler.FilterOther}, // ewa-lanczos
	Downscaler:       FilterConfig{Kind: sampler.FilterOther}, // mitchell
	SigmoidParams:    &StageConfig{},
	PeakDetectParams: &StageConfig{},
	ColorMapParams:   &StageConfig{},
	DitherParams:     &StageConfig{},
	DebandParams:     &StageConfig{},
}
