package color

// LUT3D is a precomputed three-dimensional color-space conversion
// lookup table, conventionally built from an ICC profile. It holds a
// cube of Size^3 output triples sampling the source gamut uniformly;
// Apply performs a trilinear lookup. The cube itself is filled in by
// the optional ICC-profile collaborator (out of scope per the module's
// purpose statement — "optional color-management profile library");
// this type only owns the storage and sampling.
type LUT3D struct {
	Size int
	// Data holds Size*Size*Size RGB triples in row-major (r, g, b)
	// index order: Data[((r*Size+g)*Size+b)] .
	Data []ColorF32
}

// NewLUT3D allocates a zeroed LUT3D of the given cube size (commonly 9,
// 17, 33, or 65, mirroring typical ICC-derived LUT resolutions).
func NewLUT3D(size int) *LUT3D {
	if size < 2 {
		size = 2
	}
	return &LUT3D{
		Size: size,
		Data: make([]ColorF32, size*size*size),
	}
}

func (l *LUT3D) index(r, g, b int) int {
	return (r*l.Size+g)*l.Size + b
}

// Set stores the cube sample at grid coordinate (r, g, b).
func (l *LUT3D) Set(r, g, b int, c ColorF32) {
	l.Data[l.index(r, g, b)] = c
}

// Apply performs a trilinear lookup of in (each component assumed
// already normalized to [0,1]) against the cube, returning the
// converted color. Out-of-range inputs are clamped to the cube edge.
func (l *LUT3D) Apply(in ColorF32) ColorF32 {
	n := float32(l.Size - 1)
	fr, fg, fb := clamp01(in.R)*n, clamp01(in.G)*n, clamp01(in.B)*n

	r0, g0, b0 := int(fr), int(fg), int(fb)
	r1, g1, b1 := minInt(r0+1, l.Size-1), minInt(g0+1, l.Size-1), minInt(b0+1, l.Size-1)
	tr, tg, tb := fr-float32(r0), fg-float32(g0), fb-float32(b0)

	c000 := l.Data[l.index(r0, g0, b0)]
	c100 := l.Data[l.index(r1, g0, b0)]
	c010 := l.Data[l.index(r0, g1, b0)]
	c110 := l.Data[l.index(r1, g1, b0)]
	c001 := l.Data[l.index(r0, g0, b1)]
	c101 := l.Data[l.index(r1, g0, b1)]
	c011 := l.Data[l.index(r0, g1, b1)]
	c111 := l.Data[l.index(r1, g1, b1)]

	c00 := lerpColor(c000, c100, tr)
	c10 := lerpColor(c010, c110, tr)
	c01 := lerpColor(c001, c101, tr)
	c11 := lerpColor(c011, c111, tr)

	c0 := lerpColor(c00, c10, tg)
	c1 := lerpColor(c01, c11, tg)

	return lerpColor(c0, c1, tb)
}

func lerpColor(a, b ColorF32, t float32) ColorF32 {
	return ColorF32{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Identity fills the cube with the identity mapping, useful as a
// fallback when the optional ICC component is not compiled in but a
// caller still wants a well-formed LUT3D to pass through the pipeline
// (spec §9 open question: absent the ICC component, 3D-LUT color
// management is silently skipped, not synthesized — Identity exists
// purely to make that skip representable without a nil check at every
// call site).
func (l *LUT3D) Identity() {
	n := float32(l.Size - 1)
	for r := 0; r < l.Size; r++ {
		for g := 0; g < l.Size; g++ {
			for b := 0; b < l.Size; b++ {
				l.Set(r, g, b, ColorF32{
					R: float32(r) / n,
					G: float32(g) / n,
					B: float32(b) / n,
					A: 1,
				})
			}
		}
	}
}
