package vpipe

import "testing"

func TestDefaultParamsEnablesCoreStages(t *testing.T) {
	p := DefaultParams()
	if p.SigmoidParams == nil || p.PeakDetectParams == nil || p.ColorMapParams == nil || p.DitherParams == nil {
		t.Errorf("DefaultParams() left a core stage disabled: %+v", p)
	}
	if p.DebandParams != nil {
		t.Error("DefaultParams() unexpectedly enables debanding")
	}
}

func TestHighQualityParamsAddsDebanding(t *testing.T) {
	p := HighQualityParams()
	if p.DebandParams == nil {
		t.Error("HighQualityParams() does not enable debanding")
	}
}

func TestDefaultAndHighQualityAreIndependentValues(t *testing.T) {
	d := DefaultParams()
	d.DebandParams = &StageConfig{}
	hq := HighQualityParams()
	if defaultParams.DebandParams != nil {
		t.Error("mutating a DefaultParams() copy mutated the package-level preset")
	}
	_ = hq
}

func TestHookStageConstantsAreDistinct(t *testing.T) {
	stages := []HookStage{
		StageNative, StageRGB, StageLumaInput, StageChromaInput, StageAlphaInput,
		StageRGBInput, StageXYZInput, StageLinear, StageSigmoid, StagePreOverlay,
		StagePreKernel, StagePostKernel, StageScaled, StageOutput,
	}
	seen := map[HookStage]bool{}
	for _, s := range stages {
		if seen[s] {
			t.Errorf("duplicate HookStage value %d", s)
		}
		seen[s] = true
	}
	if len(seen) != 14 {
		t.Errorf("got %d distinct HookStage values, want 14", len(seen))
	}
}
