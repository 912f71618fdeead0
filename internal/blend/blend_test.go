package blend

import "testing"

func TestOverlayMatchesSpecTuple(t *testing.T) {
	got := Overlay()
	want := State{
		SrcColor: SrcAlpha,
		DstColor: OneMinusSrcAlpha,
		SrcAlpha: One,
		DstAlpha: OneMinusSrcAlpha,
		Equation: Add,
	}
	if got != want {
		t.Errorf("Overlay() = %+v, want %+v", got, want)
	}
}

func TestReplaceIsOpaqueCopy(t *testing.T) {
	got := Replace()
	if got.SrcColor != One || got.DstColor != Zero {
		t.Errorf("Replace() color factors = (%v, %v), want (One, Zero)", got.SrcColor, got.DstColor)
	}
	if got.SrcAlpha != One || got.DstAlpha != Zero {
		t.Errorf("Replace() alpha factors = (%v, %v), want (One, Zero)", got.SrcAlpha, got.DstAlpha)
	}
}
