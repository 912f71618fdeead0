package sampler

import "testing"

func TestClassifyDirectionNoop(t *testing.T) {
	if d := ClassifyDirection(1.0000001, 0.9999999); d != NOOP {
		t.Errorf("ClassifyDirection within dead band = %v, want NOOP", d)
	}
}

func TestClassifyDirectionDown(t *testing.T) {
	if d := ClassifyDirection(0.5, 1.0); d != DOWN {
		t.Errorf("ClassifyDirection(0.5, 1.0) = %v, want DOWN", d)
	}
}

func TestClassifyDirectionUp(t *testing.T) {
	if d := ClassifyDirection(2.0, 1.0); d != UP {
		t.Errorf("ClassifyDirection(2.0, 1.0) = %v, want UP", d)
	}
}

func TestSelectNoopIgnoresFilter(t *testing.T) {
	plan := Select(Request{RX: 1, RY: 1, Filter: FilterPolar})
	if plan.Type != NEAREST || plan.Direction != NOOP {
		t.Errorf("Select(noop) = %+v, want {NOOP NEAREST}", plan)
	}
}

func TestSelectDirectWhenIntermediatesDisabled(t *testing.T) {
	plan := Select(Request{RX: 2, RY: 2, Filter: FilterPolar, IntermediateFBOsDisabled: true})
	if plan.Type != DIRECT {
		t.Errorf("Type = %v, want DIRECT", plan.Type)
	}
}

func TestSelectDirectWhenNoFilterConfigured(t *testing.T) {
	plan := Select(Request{RX: 2, RY: 2, Filter: FilterNone})
	if plan.Type != DIRECT {
		t.Errorf("Type = %v, want DIRECT", plan.Type)
	}
}

func TestSelectComplexWithoutFastPath(t *testing.T) {
	// DOWN direction, no anti-aliasing skip, no linear filterable: no
	// fast-path substitution should apply.
	plan := Select(Request{RX: 0.5, RY: 0.5, Filter: FilterBicubic})
	if plan.Type != COMPLEX {
		t.Errorf("Type = %v, want COMPLEX", plan.Type)
	}
}

func TestSelectBicubicFastPathOnUp(t *testing.T) {
	plan := Select(Request{RX: 2, RY: 2, Filter: FilterBicubic, LinearFilterable: true})
	if plan.Type != BICUBIC {
		t.Errorf("Type = %v, want BICUBIC", plan.Type)
	}
}

func TestSelectTriangleFastPathIsDirect(t *testing.T) {
	plan := Select(Request{RX: 2, RY: 2, Filter: FilterTriangle, LinearFilterable: true})
	if plan.Type != DIRECT {
		t.Errorf("Type = %v, want DIRECT", plan.Type)
	}
}

func TestSelectBoxFastPathIsNearest(t *testing.T) {
	plan := Select(Request{RX: 2, RY: 2, Filter: FilterBox, LinearFilterable: true})
	if plan.Type != NEAREST {
		t.Errorf("Type = %v, want NEAREST", plan.Type)
	}
}

func TestSelectFastPathRequiresUpOrAntiAliasingSkip(t *testing.T) {
	// DOWN direction without AntiAliasingSkip: no fast-path even though
	// linear filtering is available.
	plan := Select(Request{RX: 0.5, RY: 0.5, Filter: FilterBicubic, LinearFilterable: true})
	if plan.Type != COMPLEX {
		t.Errorf("Type = %v, want COMPLEX (fast-path should not apply while downscaling without AA skip)", plan.Type)
	}
}

func TestSelectFastPathAppliesOnDownWithAntiAliasingSkip(t *testing.T) {
	plan := Select(Request{RX: 0.5, RY: 0.5, Filter: FilterBicubic, LinearFilterable: true, AntiAliasingSkip: true})
	if plan.Type != BICUBIC {
		t.Errorf("Type = %v, want BICUBIC", plan.Type)
	}
}

func TestDispatchMapsEachType(t *testing.T) {
	cases := []struct {
		plan Plan
		want DispatchKind
	}{
		{Plan{Type: NEAREST}, DispatchNearest},
		{Plan{Type: DIRECT}, DispatchDirect},
		{Plan{Type: BICUBIC}, DispatchBicubic},
		{Plan{Type: COMPLEX, Filter: FilterPolar}, DispatchPolar},
		{Plan{Type: COMPLEX, Filter: FilterOther}, DispatchSeparable},
	}
	for _, c := range cases {
		got, ok := Dispatch(c.plan)
		if !ok || got != c.want {
			t.Errorf("Dispatch(%+v) = (%v, %v), want (%v, true)", c.plan, got, ok, c.want)
		}
	}
}

func TestBankAllocatesOnFirstUse(t *testing.T) {
	b := NewBank()
	if b.Main == nil {
		t.Fatal("NewBank should allocate Main")
	}
	s0 := b.SrcState(0)
	if s0 == nil {
		t.Fatal("SrcState(0) returned nil")
	}
	if b.SrcState(0) != s0 {
		t.Error("SrcState should return the same instance on repeated calls")
	}
}

func TestBankOSDGrows(t *testing.T) {
	b := NewBank()
	s3 := b.OSDState(3)
	if len(b.OSD) != 4 {
		t.Errorf("len(OSD) = %d, want 4 after requesting index 3", len(b.OSD))
	}
	if b.OSDState(3) != s3 {
		t.Error("OSDState should return the same instance on repeated calls")
	}
}
