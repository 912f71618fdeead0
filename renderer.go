package vpipe

import (
	"context"
	"io"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vpipe/gpu"
	"github.com/gogpu/vpipe/gpucore"
	"github.com/gogpu/vpipe/internal/cache"
	"github.com/gogpu/vpipe/internal/fbo"
	"github.com/gogpu/vpipe/internal/hook"
	"github.com/gogpu/vpipe/internal/sampler"
)

// Renderer owns every piece of state that survives across frames:
// the FBO pool, persistent shader-object handles, sampler banks, and
// the feature-disable latch. A Renderer is single-threaded per §5;
// callers wanting parallelism must maintain one renderer per thread.
type Renderer struct {
	device gpu.DeviceHandle
	flags  featureLatch

	fboFormat gputypes.TextureFormat
	fboCaps   gpu.FormatCaps
	fbos      *fbo.Pool

	samplers *sampler.Bank

	// persistent holds opaque per-concern shader-object handles keyed
	// by a small string tag (peak detector, dither, 3D-LUT, per-plane
	// grain state), surviving across frames until FlushCache or
	// Destroy.
	persistent *cache.Cache[string, any]

	hooks *hook.Dispatcher
}

// Create builds a Renderer over device, running the one-time FBO
// format-selection cascade (§4.1) against the candidate formats
// device's FormatProber supports. ctx is accepted for interface
// parity with the wider gpucontext ecosystem; renderer creation itself
// never blocks or issues GPU work.
func Create(ctx context.Context, device gpu.DeviceHandle, candidates []gputypes.TextureFormat, params RenderParams) (*Renderer, error) {
	_ = ctx
	if device == nil {
		return nil, validationErrorf("device handle is nil")
	}

	r := &Renderer{
		device:     device,
		samplers:   sampler.NewBank(),
		persistent: cache.New[string, any](64),
	}

	format, caps, ok := selectFBOFormat(device, candidates)
	r.fboFormat = format
	r.fboCaps = caps
	if !ok {
		r.flags.Set(
			DisableCompute|DisableSampling|DisableLinearHDR|DisableLinearSDR|
				Disable3DLUT|DisablePeakDetect|DisableGrain|DisableDebanding|DisableOverlay,
			"no candidate FBO format satisfied the renderer's capability cascade",
		)
	} else {
		if !caps.Storable {
			r.flags.Set(DisableCompute, "chosen FBO format lacks STORABLE")
		}
		if caps.Kind != gpucore.SampleFloat {
			r.flags.Set(DisableLinearHDR, "chosen FBO format is not FLOAT")
		}
		if caps.Depth < 16 {
			r.flags.Set(DisableLinearSDR, "chosen FBO format has depth < 16")
		}
	}
	r.fbos = fbo.New(device, format)

	hooks := make([]hook.Hook, 0, len(params.Hooks))
	for _, h := range params.Hooks {
		hooks = append(hooks, newHookAdapter(h))
	}
	r.hooks = hook.NewDispatcher(hooks)

	return r, nil
}

// selectFBOFormat implements §4.1's format-selection cascade: first
// match wins, in priority order FLOAT/16/LINEAR, FLOAT/16/SAMPLEABLE,
// UNORM/16/LINEAR, SNORM/16/LINEAR, UNORM/16/SAMPLEABLE,
// SNORM/16/SAMPLEABLE, UNORM/8/LINEAR, UNORM/8/SAMPLEABLE, all
// requiring RENDERABLE.
func selectFBOFormat(device gpu.DeviceHandle, candidates []gputypes.TextureFormat) (gputypes.TextureFormat, gpu.FormatCaps, bool) {
	prober, ok := device.(gpu.FormatProber)
	if !ok {
		return gputypes.TextureFormatUndefined, gpu.FormatCaps{}, false
	}

	bestRank := -1
	var bestFormat gputypes.TextureFormat
	var bestCaps gpu.FormatCaps
	found := false

	for _, f := range candidates {
		caps, ok := prober.Capabilities(f)
		if !ok || !caps.Renderable {
			continue
		}
		rank, ok := formatRank(caps)
		if !ok {
			continue
		}
		if !found || rank < bestRank {
			bestRank = rank
			bestFormat = f
			bestCaps = caps
			found = true
		}
	}
	return bestFormat, bestCaps, found
}

func formatRank(c gpu.FormatCaps) (int, bool) {
	switch {
	case c.Kind == gpucore.SampleFloat && c.Depth == 16 && c.LinearFilterable:
		return 0, true
	case c.Kind == gpucore.SampleFloat && c.Depth == 16 && c.Sampleable:
		return 1, true
	case c.Kind == gpucore.SampleUnorm && c.Depth == 16 && c.LinearFilterable:
		return 2, true
	case c.Kind == gpucore.SampleSnorm && c.Depth == 16 && c.LinearFilterable:
		return 3, true
	case c.Kind == gpucore.SampleUnorm && c.Depth == 16 && c.Sampleable:
		return 4, true
	case c.Kind == gpucore.SampleSnorm && c.Depth == 16 && c.Sampleable:
		return 5, true
	case c.Kind == gpucore.SampleUnorm && c.Depth == 8 && c.LinearFilterable:
		return 6, true
	case c.Kind == gpucore.SampleUnorm && c.Depth == 8 && c.Sampleable:
		return 7, true
	default:
		return 0, false
	}
}

// Destroy releases all FBOs, all persistent shader-object handles, and
// all sampler-bank resources. The hook dispatcher holds no resources
// and is left as is.
func (r *Renderer) Destroy() {
	if r.fbos != nil {
		r.fbos.Destroy()
	}
	if r.samplers != nil {
		r.samplers.Destroy()
	}
	r.persistent.Clear()
}

// FlushCache clears the peak-detect state specifically — used when a
// scene change invalidates dynamic HDR tone-map history. No other
// persistent state or feature-disable flag is touched.
func (r *Renderer) FlushCache() {
	r.persistent.Delete(peakDetectCacheKey)
}

const peakDetectCacheKey = "peak_detect"

// Save writes the underlying shader dispatch cache (shader binaries
// keyed by source hash) to w. Delegates entirely to the device's own
// persistence mechanism if it implements one; returns 0 otherwise.
func (r *Renderer) Save(w io.Writer) (int64, error) {
	type saver interface {
		SaveShaderCache(io.Writer) (int64, error)
	}
	if s, ok := r.device.(saver); ok {
		return s.SaveShaderCache(w)
	}
	return 0, nil
}

// Load restores the underlying shader dispatch cache from rd, such
// that the renderer's first frame after Load incurs no compile events
// for any shader already present in the cache.
func (r *Renderer) Load(rd io.Reader) error {
	type loader interface {
		LoadShaderCache(io.Reader) error
	}
	if l, ok := r.device.(loader); ok {
		return l.LoadShaderCache(rd)
	}
	return nil
}

// Flags returns a snapshot of the renderer's current feature-disable
// bitset, primarily for tests and diagnostics.
func (r *Renderer) Flags() FeatureFlags {
	return r.flags.Snapshot()
}

// shaderFactory returns the device as a gpu.ShaderFactory, if it
// implements one. A device that doesn't can still drive every stage
// that operates purely on already-committed textures, but any stage
// needing to begin a new shader degrades to a capability gap.
func (r *Renderer) shaderFactory() (gpu.ShaderFactory, bool) {
	f, ok := r.device.(gpu.ShaderFactory)
	return f, ok
}

// finisher returns the device as a gpu.Finisher, if it implements one.
func (r *Renderer) finisher() (gpu.Finisher, bool) {
	f, ok := r.device.(gpu.Finisher)
	return f, ok
}
