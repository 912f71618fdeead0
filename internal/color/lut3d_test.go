package color

import "testing"

func TestLUT3DIdentityPassesThrough(t *testing.T) {
	lut := NewLUT3D(9)
	lut.Identity()

	in := ColorF32{R: 0.3, G: 0.6, B: 0.9, A: 1}
	out := lut.Apply(in)

	const eps = 1e-2
	if absf(out.R-in.R) > eps || absf(out.G-in.G) > eps || absf(out.B-in.B) > eps {
		t.Errorf("identity LUT distorted color: got %+v, want ~%+v", out, in)
	}
}

func TestLUT3DClampsOutOfRange(t *testing.T) {
	lut := NewLUT3D(2)
	lut.Identity()

	out := lut.Apply(ColorF32{R: 2, G: -1, B: 0.5, A: 1})
	if out.R > 1.01 || out.G < -0.01 {
		t.Errorf("Apply did not clamp out-of-range input: %+v", out)
	}
}

func TestConeMatrixIdentityForNone(t *testing.T) {
	if ConeMatrix(ConeNone) != identity3 {
		t.Error("ConeMatrix(ConeNone) should be identity")
	}
}

func TestConeParamsZeroStrengthIsIdentity(t *testing.T) {
	p := ConeParams{Deficiency: ConeProtanopia, Strength: 0}
	if p.Matrix() != identity3 {
		t.Error("ConeParams with Strength=0 should be identity")
	}
}

func TestConeParamsFullStrengthMatchesMatrix(t *testing.T) {
	p := ConeParams{Deficiency: ConeDeuteranopia, Strength: 1}
	if p.Matrix() != ConeMatrix(ConeDeuteranopia) {
		t.Error("ConeParams with Strength=1 should equal the raw deficiency matrix")
	}
}
