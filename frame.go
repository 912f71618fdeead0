package vpipe

import (
	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/internal/color"
)

// Component names a plane's logical channel, i.e. which physical
// component of the frame's color system a texture channel carries.
type Component uint8

const (
	ChannelNone Component = iota
	ChannelY
	ChannelCb
	ChannelCr
	ChannelR
	ChannelG
	ChannelB
	ChannelA
)

// AddressMode selects how a plane's texture is sampled outside its
// [0,1] extent.
type AddressMode uint8

const (
	AddressClamp AddressMode = iota
	AddressRepeat
	AddressMirror
)

// Plane is one texture carrying a subset of a frame's channels.
type Plane struct {
	Texture gpu.Texture

	// Components is the number of texture channels this plane actually
	// carries (1..4).
	Components int

	// ComponentMapping names, for each of the first Components texture
	// channels, which logical channel it holds.
	ComponentMapping [4]Component

	// ShiftX, ShiftY are the plane's sub-pixel offset relative to the
	// frame's reference plane (chroma siting).
	ShiftX, ShiftY float64

	Address AddressMode
}

// PlaneType is the derived role of a plane, ordered by priority:
// ALPHA < CHROMA < LUMA < RGB < XYZ. The highest-priority plane in a
// frame is its reference plane.
type PlaneType uint8

const (
	PlaneAlpha PlaneType = iota
	PlaneChroma
	PlaneLuma
	PlaneRGB
	PlaneXYZ
)

// DetectPlaneType classifies p under the frame's color system sys,
// mirroring renderer.c's detect_plane_type: for YCbCr-like systems the
// type is the highest-priority channel the plane carries (Y > Cb/Cr >
// A); for RGB/XYZ systems a lone exclusive alpha channel still reports
// ALPHA, otherwise the plane's type follows the frame's color system
// directly.
func DetectPlaneType(p Plane, sys color.System) PlaneType {
	if sys == color.SystemYCbCr {
		t := -1
		for i := 0; i < p.Components; i++ {
			switch p.ComponentMapping[i] {
			case ChannelY:
				t = maxInt(t, int(PlaneLuma))
			case ChannelA:
				t = maxInt(t, int(PlaneAlpha))
			case ChannelCb, ChannelCr:
				t = maxInt(t, int(PlaneChroma))
			}
		}
		if t < 0 {
			t = int(PlaneLuma)
		}
		return PlaneType(t)
	}

	if p.Components == 1 && p.ComponentMapping[0] == ChannelA {
		return PlaneAlpha
	}

	switch sys {
	case color.SystemXYZ:
		return PlaneXYZ
	default: // SystemUnknown, SystemRGB
		return PlaneRGB
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Rect is an integer or floating-point axis-aligned rectangle in a
// reference texture's pixel coordinates. x0 > x1 or y0 > y1 signals a
// flipped crop along that axis.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// IsZero reports whether all four components are zero, the sentinel
// default_rect uses to detect "no crop given".
func (r Rect) IsZero() bool {
	return r.X0 == 0 && r.Y0 == 0 && r.X1 == 0 && r.Y1 == 0
}

// Width and Height report the rectangle's signed extents.
func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Normalized returns r with x0<x1 and y0<y1, plus whether each axis
// was flipped to get there.
func (r Rect) Normalized() (n Rect, flipX, flipY bool) {
	n = r
	if n.X0 > n.X1 {
		n.X0, n.X1 = n.X1, n.X0
		flipX = true
	}
	if n.Y0 > n.Y1 {
		n.Y0, n.Y1 = n.Y1, n.Y0
		flipY = true
	}
	return n, flipX, flipY
}

// Overlay places an image-or-target-scope compositing layer at a
// destination rectangle, per §4.7.
type Overlay struct {
	Plane Plane
	Repr  color.Repr
	Space color.Space
	Rect  Rect

	// Mode selects how the overlay's channels are interpreted.
	Mode OverlayMode

	// BaseColor is used for MONOCHROME overlays: the first mapped
	// channel is treated as alpha over this solid color.
	BaseColor [3]float32
}

// OverlayMode selects how Overlay.Plane's channels become a color.
type OverlayMode uint8

const (
	// OverlayNormal treats the overlay's mapped channels as a full
	// color, replacing the destination color outright.
	OverlayNormal OverlayMode = iota
	// OverlayMonochrome treats the first mapped channel as alpha over
	// Overlay.BaseColor.
	OverlayMonochrome
)

// Grain holds AV1 film-grain synthesis parameters for a frame. A nil
// *Grain on Frame means no grain synthesis is requested.
type Grain struct {
	Seed      uint16
	NumPoints int

	// Present marks, per plane index, whether that plane participates
	// in grain synthesis.
	Present [4]bool
}

// Frame is a complete source or target image: planes, color metadata,
// a crop rectangle, and overlays.
type Frame struct {
	Planes []Plane
	Repr   color.Repr
	Space  color.Space

	// Crop is this frame's source-or-target rectangle in the reference
	// plane's pixel coordinates. A zero Rect means "use the full
	// reference texture extent" (default_rect, §4.8).
	Crop Rect

	// ICCProfile is an opaque identifier for an attached ICC profile, or
	// empty if none. Used only to detect whether the image and target
	// profiles differ for 3D-LUT engagement (§4.6) — ICC decoding
	// itself is an out-of-scope collaborator.
	ICCProfile string

	Grain    *Grain
	Overlays []Overlay
}

// FrameRole says which side of a render call a frame plays, so
// Validate can check the capability that side actually needs from its
// planes' textures.
type FrameRole uint8

const (
	// RoleSource frames are read from: every plane's texture must be
	// Sampleable.
	RoleSource FrameRole = iota
	// RoleTarget frames are written to: every plane's texture must be
	// Renderable.
	RoleTarget
)

// Validate checks the structural preconditions §4.9 requires before
// any GPU work is issued. It never attempts repair; a non-nil error
// means Render must fail immediately with no side effects. role
// selects whether each plane's texture is checked for Sampleable
// (RoleSource) or Renderable (RoleTarget).
func (f *Frame) Validate(maxPlanes int, role FrameRole) error {
	if len(f.Planes) == 0 {
		return validationErrorf("frame has no planes")
	}
	if len(f.Planes) > maxPlanes {
		return validationErrorf("frame has %d planes, exceeds maximum %d", len(f.Planes), maxPlanes)
	}
	for i, p := range f.Planes {
		if p.Texture == nil {
			return validationErrorf("plane %d has no texture", i)
		}
		if p.Components < 1 || p.Components > 4 {
			return validationErrorf("plane %d has %d components, want 1..4", i, p.Components)
		}
		for c := 0; c < p.Components; c++ {
			if p.ComponentMapping[c] > ChannelA {
				return validationErrorf("plane %d channel %d has invalid component mapping %d", i, c, p.ComponentMapping[c])
			}
		}
		switch role {
		case RoleSource:
			if !p.Texture.Sampleable() {
				return validationErrorf("plane %d texture is not sampleable, required of a source frame", i)
			}
		case RoleTarget:
			if !p.Texture.Renderable() {
				return validationErrorf("plane %d texture is not renderable, required of a target frame", i)
			}
		}
	}
	if !f.Crop.IsZero() && (f.Crop.X0 == f.Crop.X1 || f.Crop.Y0 == f.Crop.Y1) {
		return validationErrorf("frame crop is degenerate: %+v", f.Crop)
	}
	for i, ov := range f.Overlays {
		if ov.Rect.Width() == 0 || ov.Rect.Height() == 0 {
			return validationErrorf("overlay %d has a degenerate rect: %+v", i, ov.Rect)
		}
	}
	return nil
}
