// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vpipe/gpucore"
)

// FormatCaps describes what a single texture format supports, as
// reported by the host backend. The renderer's one-time FBO format
// cascade (§4.1) walks a preference list of these.
type FormatCaps struct {
	Kind  gpucore.SampleKind
	Depth uint8

	Renderable       bool
	Sampleable       bool
	Storable         bool
	LinearFilterable bool
}

// FormatProber reports what a DeviceHandle's backend supports for a
// given texture format. Implemented by the host backend; vpipe only
// ever asks, never enumerates formats itself.
type FormatProber interface {
	Capabilities(format gputypes.TextureFormat) (FormatCaps, bool)
}
