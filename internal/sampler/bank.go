package sampler

import "github.com/gogpu/vpipe/gpu"

// AxisState is one direction's (upscaler or downscaler) persistent
// complex-sampler state: the per-axis intermediate texture the
// separable path renders its vertical pass into, kept across frames
// and only recreated when the axis size changes.
type AxisState struct {
	Intermediate *gpu.PooledTexture
	W, H         int
}

// Destroy releases the axis's intermediate texture, if any.
func (a *AxisState) Destroy() {
	if a.Intermediate != nil {
		a.Intermediate.Destroy()
		a.Intermediate = nil
	}
}

// State is one sampler role's persistent shader-object handle pair,
// split by direction per renderer.c's struct sampler (upscaler_state,
// downscaler_state).
type State struct {
	Up   AxisState
	Down AxisState
}

// Destroy releases both directions' resources.
func (s *State) Destroy() {
	s.Up.Destroy()
	s.Down.Destroy()
}

// Bank is the renderer's full set of persistent sampler states: one
// main sampler, up to four per-plane source samplers, up to four
// per-plane destination samplers, and a growable per-overlay bank —
// the exact shape renderer.c keeps (sampler_main, samplers_src[4],
// samplers_dst[4], samplers_osd).
type Bank struct {
	Main *State
	Src  [4]*State
	Dst  [4]*State
	OSD  []*State
}

// NewBank returns an empty bank with its main sampler state allocated.
func NewBank() *Bank {
	return &Bank{Main: &State{}}
}

// SrcState returns the persistent state for source plane index i
// (0..3), allocating it on first use.
func (b *Bank) SrcState(i int) *State {
	if b.Src[i] == nil {
		b.Src[i] = &State{}
	}
	return b.Src[i]
}

// DstState returns the persistent state for destination plane index i
// (0..3), allocating it on first use.
func (b *Bank) DstState(i int) *State {
	if b.Dst[i] == nil {
		b.Dst[i] = &State{}
	}
	return b.Dst[i]
}

// OSDState returns the persistent state for overlay index i, growing
// the overlay bank as needed. Overlays are user-supplied per frame and
// unbounded in count, unlike the fixed four-plane source/destination
// banks.
func (b *Bank) OSDState(i int) *State {
	for len(b.OSD) <= i {
		b.OSD = append(b.OSD, &State{})
	}
	return b.OSD[i]
}

// Destroy releases every state in the bank.
func (b *Bank) Destroy() {
	if b.Main != nil {
		b.Main.Destroy()
	}
	for _, s := range b.Src {
		if s != nil {
			s.Destroy()
		}
	}
	for _, s := range b.Dst {
		if s != nil {
			s.Destroy()
		}
	}
	for _, s := range b.OSD {
		if s != nil {
			s.Destroy()
		}
	}
}
