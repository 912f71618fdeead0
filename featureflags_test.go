package vpipe

import "testing"

func TestFeatureLatchStartsClear(t *testing.T) {
	var l featureLatch
	if l.Has(DisableCompute) {
		t.Error("fresh featureLatch reports DisableCompute set")
	}
	if l.Snapshot() != 0 {
		t.Errorf("fresh featureLatch.Snapshot() = %d, want 0", l.Snapshot())
	}
}

func TestFeatureLatchSetIsMonotonic(t *testing.T) {
	var l featureLatch
	l.Set(DisableGrain, "test")
	if !l.Has(DisableGrain) {
		t.Fatal("DisableGrain not set after Set")
	}
	l.Set(DisablePeakDetect, "test")
	if !l.Has(DisableGrain) {
		t.Error("DisableGrain cleared after setting an unrelated flag")
	}
	if !l.Has(DisableGrain | DisablePeakDetect) {
		t.Error("Has does not report both previously-set bits together")
	}
}

func TestFeatureLatchHasRequiresAllBits(t *testing.T) {
	var l featureLatch
	l.Set(DisableGrain, "test")
	if l.Has(DisableGrain | DisablePeakDetect) {
		t.Error("Has reports a want-set satisfied when only part of it is set")
	}
}

func TestFeatureLatchSetIsIdempotent(t *testing.T) {
	var l featureLatch
	l.Set(DisableHooks, "first")
	l.Set(DisableHooks, "second")
	if l.Snapshot() != DisableHooks {
		t.Errorf("Snapshot() = %d, want only DisableHooks set", l.Snapshot())
	}
}

func TestFeatureFlagsAreDistinctBits(t *testing.T) {
	flags := []FeatureFlags{
		DisableCompute, DisableSampling, DisableDebanding, DisableLinearHDR,
		DisableLinearSDR, DisableBlending, DisableOverlay, Disable3DLUT,
		DisablePeakDetect, DisableGrain, DisableHooks,
	}
	seen := FeatureFlags(0)
	for _, f := range flags {
		if seen&f != 0 {
			t.Errorf("flag %d overlaps a previously seen flag", f)
		}
		seen |= f
	}
}
