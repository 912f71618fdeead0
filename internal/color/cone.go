package color

// ConeDeficiency names a type of color vision deficiency to simulate
// via cone-response distortion (spec §4.6's "optional cone-response
// distortion (color-blindness simulation)").
type ConeDeficiency uint8

const (
	// ConeNone applies no distortion (identity matrix).
	ConeNone ConeDeficiency = iota
	// ConeProtanopia simulates missing or non-functioning L-cones (red).
	ConeProtanopia
	// ConeDeuteranopia simulates missing or non-functioning M-cones (green).
	ConeDeuteranopia
	// ConeTritanopia simulates missing or non-functioning S-cones (blue).
	ConeTritanopia
)

// coneMatrices are LMS-space simulation matrices (Brettel-Viénot-style
// confusion-line projections), applied to linear RGB after a one-time
// RGB->LMS basis change folded into each matrix for simplicity.
var coneMatrices = map[ConeDeficiency]Mat3{
	ConeProtanopia: {
		{0.1726, 0.8290, -0.0016},
		{0.0430, 0.9440, -0.0010},
		{0.0030, -0.0010, 0.9980},
	},
	ConeDeuteranopia: {
		{0.4000, 0.6400, 0.0000},
		{0.3900, 0.6100, 0.0000},
		{0.0000, 0.0300, 0.9700},
	},
	ConeTritanopia: {
		{1.0150, -0.0960, 0.0810},
		{-0.0010, 0.9870, 0.0140},
		{0.0060, 0.8440, 0.1500},
	},
}

// ConeMatrix returns the distortion matrix simulating the given
// deficiency, or the identity matrix for ConeNone or an unrecognized
// value.
func ConeMatrix(d ConeDeficiency) Mat3 {
	if m, ok := coneMatrices[d]; ok {
		return m
	}
	return identity3
}

// ConeParams configures the strength of a simulated deficiency; 0
// disables the stage entirely (matching RenderParams.cone_params ==
// None in spec §6), 1 is the full simulation matrix above, and values
// in between linearly blend with the identity matrix.
type ConeParams struct {
	Deficiency ConeDeficiency
	Strength   float32
}

// Matrix returns p's effective distortion matrix, blended toward
// identity by (1 - Strength).
func (p ConeParams) Matrix() Mat3 {
	m := ConeMatrix(p.Deficiency)
	s := p.Strength
	if s >= 1 {
		return m
	}
	if s <= 0 {
		return identity3
	}
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = identity3[i][j] + (m[i][j]-identity3[i][j])*s
		}
	}
	return out
}
