package color

// Primaries names a set of color primaries (the spec's "primaries"
// field of a color space).
type Primaries uint8

const (
	// PrimariesUnknown indicates the primaries have not been determined
	// yet; fix_color_space guesses one from resolution.
	PrimariesUnknown Primaries = iota
	// PrimariesBT601525 is the NTSC/SMPTE-C primary set (BT.601 525-line).
	PrimariesBT601525
	// PrimariesBT601625 is the PAL/SECAM primary set (BT.601 625-line).
	PrimariesBT601625
	// PrimariesBT709 is the standard-definition/HD primary set.
	PrimariesBT709
	// PrimariesBT2020 is the UHD/HDR primary set.
	PrimariesBT2020
	// PrimariesDCIP3 is the digital cinema primary set.
	PrimariesDCIP3
)

// Mat3 is a 3x3 row-major matrix over float32, used for RGB<->XYZ and
// primary-to-primary color conversions.
type Mat3 [3][3]float32

// MulVec3 applies m to the column vector (x, y, z).
func (m Mat3) MulVec3(x, y, z float32) (float32, float32, float32) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// Mul composes two matrices: (a.Mul(b)) applied to v equals a.MulVec3(b.MulVec3(v)).
func (a Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// toXYZ maps each primary set's linear RGB to CIE XYZ (D65 white point
// for all but DCI-P3, which conventionally also uses D65 in the digital
// cinema "P3-D65" variant assumed here).
var toXYZ = map[Primaries]Mat3{
	PrimariesBT709: {
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	},
	PrimariesBT2020: {
		{0.6369580, 0.1446169, 0.1688810},
		{0.2627002, 0.6779981, 0.0593017},
		{0.0000000, 0.0280727, 1.0609851},
	},
	PrimariesDCIP3: {
		{0.4865709, 0.2656677, 0.1982173},
		{0.2289746, 0.6917385, 0.0792869},
		{0.0000000, 0.0451134, 1.0439444},
	},
	PrimariesBT601525: {
		// NTSC/SMPTE-C has its own RGB->XYZ matrix, distinct from
		// BT.709's.
		{0.3935891, 0.3652497, 0.1916313},
		{0.2124132, 0.7010437, 0.0865432},
		{0.0187423, 0.1119313, 0.9583929},
	},
	PrimariesBT601625: {
		{0.4306190, 0.3415419, 0.1783091},
		{0.2220379, 0.7066384, 0.0713236},
		{0.0201853, 0.1295504, 0.9390944},
	},
}

var xyzToRGB = map[Primaries]Mat3{}

func invert3(m Mat3) Mat3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return Mat3{}
	}
	invDet := 1 / det
	return Mat3{
		{(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet},
		{(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet},
		{(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet},
	}
}

func init() {
	for p, m := range toXYZ {
		xyzToRGB[p] = invert3(m)
	}
}

// PrimaryMatrix returns the matrix converting linear RGB under src
// primaries to linear RGB under dst primaries, via a CIE XYZ
// intermediate. Returns the identity matrix if either primary set is
// unrecognized (PrimariesUnknown callers should resolve a concrete
// primary set via fix_color_space first).
func PrimaryMatrix(src, dst Primaries) Mat3 {
	if src == dst {
		return identity3
	}
	toXYZm, ok1 := toXYZ[src]
	fromXYZm, ok2 := xyzToRGB[dst]
	if !ok1 || !ok2 {
		return identity3
	}
	return fromXYZm.Mul(toXYZm)
}

var identity3 = Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// GuessPrimaries infers a default primary set from resolution, matching
// fix_color_space's "if primaries are unknown, guess from resolution":
// SD content defaults to BT.601, HD and above to BT.709. UHD is left on
// BT.709 rather than BT.2020 since resolution alone does not imply wide
// gamut (spec does not require the wide-gamut guess).
func GuessPrimaries(width, height int) Primaries {
	if width <= 0 || height <= 0 {
		return PrimariesBT709
	}
	if width <= 720 && height <= 576 {
		if height == 576 {
			return PrimariesBT601625
		}
		return PrimariesBT601525
	}
	return PrimariesBT709
}
