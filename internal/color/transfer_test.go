package color

import "testing"

func TestTransferIsHDR(t *testing.T) {
	cases := []struct {
		t    Transfer
		want bool
	}{
		{TransferSRGB, false},
		{TransferLinear, false},
		{TransferGamma22, false},
		{TransferPQ, true},
		{TransferHLG, true},
	}
	for _, c := range cases {
		if got := c.t.IsHDR(); got != c.want {
			t.Errorf("Transfer(%v).IsHDR() = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestPQRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.1, 0.5, 0.9, 1.0} {
		linear := DecodeTransfer(TransferPQ, v, pqMaxNits)
		back := EncodeTransfer(TransferPQ, linear, pqMaxNits)
		if diff := back - v; diff > 1e-3 || diff < -1e-3 {
			t.Errorf("PQ round trip for %v: got %v, diff %v", v, back, diff)
		}
	}
}

func TestHLGRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.25, 0.5, 0.75, 1.0} {
		linear := DecodeTransfer(TransferHLG, v, DefaultPeakNits)
		back := EncodeTransfer(TransferHLG, linear, DefaultPeakNits)
		if diff := back - v; diff > 1e-3 || diff < -1e-3 {
			t.Errorf("HLG round trip for %v: got %v, diff %v", v, back, diff)
		}
	}
}

func TestDecodeTransferLinearIsIdentity(t *testing.T) {
	if got := DecodeTransfer(TransferLinear, 0.42, DefaultPeakNits); got != 0.42 {
		t.Errorf("DecodeTransfer(Linear, 0.42) = %v, want 0.42", got)
	}
}
