package color

import "testing"

func TestPrimaryMatrixIdentityForSamePrimaries(t *testing.T) {
	m := PrimaryMatrix(PrimariesBT709, PrimariesBT709)
	if m != identity3 {
		t.Errorf("PrimaryMatrix(BT709, BT709) = %v, want identity", m)
	}
}

func TestPrimaryMatrixRoundTrip(t *testing.T) {
	fwd := PrimaryMatrix(PrimariesBT709, PrimariesBT2020)
	back := PrimaryMatrix(PrimariesBT2020, PrimariesBT709)

	r, g, b := fwd.MulVec3(0.5, 0.25, 0.75)
	r2, g2, b2 := back.MulVec3(r, g, b)

	const eps = 1e-3
	if absf(r2-0.5) > eps || absf(g2-0.25) > eps || absf(b2-0.75) > eps {
		t.Errorf("round trip BT709->BT2020->BT709 = (%v,%v,%v), want (0.5,0.25,0.75)", r2, g2, b2)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestGuessPrimaries(t *testing.T) {
	cases := []struct {
		w, h int
		want Primaries
	}{
		{720, 576, PrimariesBT601625},
		{720, 480, PrimariesBT601525},
		{1920, 1080, PrimariesBT709},
		{3840, 2160, PrimariesBT709},
	}
	for _, c := range cases {
		if got := GuessPrimaries(c.w, c.h); got != c.want {
			t.Errorf("GuessPrimaries(%d,%d) = %v, want %v", c.w, c.h, got, c.want)
		}
	}
}
