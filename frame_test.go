package vpipe

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/internal/color"
)

type stubTexture struct{ w, h uint32 }

func (s stubTexture) Width() uint32                          { return s.w }
func (s stubTexture) Height() uint32                         { return s.h }
func (s stubTexture) Format() gputypes.TextureFormat         { return gputypes.TextureFormatRGBA8Unorm }
func (s stubTexture) CreateView() gpu.TextureView            { return nil }
func (s stubTexture) Sampleable() bool                       { return true }
func (s stubTexture) Renderable() bool                       { return true }
func (s stubTexture) Storable() bool                         { return true }
func (s stubTexture) Blendable() bool                        { return true }
func (s stubTexture) LinearFilterable() bool                 { return true }
func (s stubTexture) Destroy()                               {}

var _ gpu.Texture = stubTexture{}

func TestRectWidthHeightNormalized(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 0, Y1: 5}
	n, flipX, flipY := r.Normalized()
	if !flipX || !flipY {
		t.Fatalf("Normalized() flips = (%v, %v), want (true, true)", flipX, flipY)
	}
	if n.Width() != 10 || n.Height() != 15 {
		t.Errorf("normalized width/height = (%v, %v), want (10, 15)", n.Width(), n.Height())
	}
}

func TestRectIsZero(t *testing.T) {
	if !(Rect{}).IsZero() {
		t.Error("zero-value Rect.IsZero() = false, want true")
	}
	if (Rect{X0: 1}).IsZero() {
		t.Error("non-zero Rect.IsZero() = true, want false")
	}
}

func TestDetectPlaneTypeYCbCrPicksHighestPriorityChannel(t *testing.T) {
	luma := Plane{Components: 1, ComponentMapping: [4]Component{ChannelY}}
	if got := DetectPlaneType(luma, color.SystemYCbCr); got != PlaneLuma {
		t.Errorf("luma plane detected as %v, want PlaneLuma", got)
	}

	chroma := Plane{Components: 2, ComponentMapping: [4]Component{ChannelCb, ChannelCr}}
	if got := DetectPlaneType(chroma, color.SystemYCbCr); got != PlaneChroma {
		t.Errorf("chroma plane detected as %v, want PlaneChroma", got)
	}

	lumaWithAlpha := Plane{Components: 2, ComponentMapping: [4]Component{ChannelY, ChannelA}}
	if got := DetectPlaneType(lumaWithAlpha, color.SystemYCbCr); got != PlaneLuma {
		t.Errorf("luma+alpha plane detected as %v, want PlaneLuma (luma outranks alpha)", got)
	}
}

func TestDetectPlaneTypeExclusiveAlphaPlane(t *testing.T) {
	alpha := Plane{Components: 1, ComponentMapping: [4]Component{ChannelA}}
	if got := DetectPlaneType(alpha, color.SystemRGB); got != PlaneAlpha {
		t.Errorf("lone alpha plane under RGB detected as %v, want PlaneAlpha", got)
	}
}

func TestDetectPlaneTypeFollowsSystemDirectly(t *testing.T) {
	rgb := Plane{Components: 3, ComponentMapping: [4]Component{ChannelR, ChannelG, ChannelB}}
	if got := DetectPlaneType(rgb, color.SystemRGB); got != PlaneRGB {
		t.Errorf("RGB plane detected as %v, want PlaneRGB", got)
	}
	if got := DetectPlaneType(rgb, color.SystemXYZ); got != PlaneXYZ {
		t.Errorf("plane under SystemXYZ detected as %v, want PlaneXYZ", got)
	}
}

func TestFrameValidateRejectsEmptyPlanes(t *testing.T) {
	f := &Frame{}
	if err := f.Validate(4, RoleSource); err == nil {
		t.Fatal("Validate() on empty-planes frame = nil, want error")
	}
}

func TestFrameValidateRejectsTooManyPlanes(t *testing.T) {
	f := &Frame{Planes: make([]Plane, 5)}
	if err := f.Validate(4, RoleSource); err == nil {
		t.Fatal("Validate() with 5 planes against maxPlanes=4 = nil, want error")
	}
}

func TestFrameValidateRejectsDegenerateCrop(t *testing.T) {
	f := &Frame{
		Planes: []Plane{{Texture: stubTexture{w: 100, h: 100}, Components: 3}},
		Crop:   Rect{X0: 0, Y0: 5, X1: 0, Y1: 10},
	}
	if err := f.Validate(4, RoleSource); err == nil {
		t.Fatal("Validate() with degenerate (X0==X1) non-zero crop = nil, want error")
	}
}

func TestFrameValidateAllowsZeroCropSentinel(t *testing.T) {
	f := &Frame{
		Planes: []Plane{{Texture: stubTexture{w: 100, h: 100}, Components: 3}},
	}
	if err := f.Validate(4, RoleSource); err != nil {
		t.Errorf("Validate() with no crop given = %v, want nil", err)
	}
}

func TestFrameValidateRejectsDegenerateOverlay(t *testing.T) {
	f := &Frame{
		Planes:   []Plane{{Texture: stubTexture{w: 100, h: 100}, Components: 3}},
		Overlays: []Overlay{{Rect: Rect{X0: 0, Y0: 0, X1: 0, Y1: 10}}},
	}
	if err := f.Validate(4, RoleSource); err == nil {
		t.Fatal("Validate() with a zero-width overlay rect = nil, want error")
	}
}

type nonSampleableTexture struct{ stubTexture }

func (nonSampleableTexture) Sampleable() bool { return false }

type nonRenderableTexture struct{ stubTexture }

func (nonRenderableTexture) Renderable() bool { return false }

func TestFrameValidateRejectsNonSampleableSource(t *testing.T) {
	f := &Frame{Planes: []Plane{{Texture: nonSampleableTexture{stubTexture{w: 100, h: 100}}, Components: 3}}}
	if err := f.Validate(4, RoleSource); err == nil {
		t.Fatal("Validate(RoleSource) with a non-sampleable plane texture = nil, want error")
	}
	if err := f.Validate(4, RoleTarget); err != nil {
		t.Errorf("Validate(RoleTarget) with a non-sampleable-but-renderable plane = %v, want nil", err)
	}
}

func TestFrameValidateRejectsNonRenderableTarget(t *testing.T) {
	f := &Frame{Planes: []Plane{{Texture: nonRenderableTexture{stubTexture{w: 100, h: 100}}, Components: 3}}}
	if err := f.Validate(4, RoleTarget); err == nil {
		t.Fatal("Validate(RoleTarget) with a non-renderable plane texture = nil, want error")
	}
	if err := f.Validate(4, RoleSource); err != nil {
		t.Errorf("Validate(RoleSource) with a non-renderable-but-sampleable plane = %v, want nil", err)
	}
}
