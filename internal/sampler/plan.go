// Package sampler implements the sampler-selection policy: given a
// source rectangle and target size, decide whether (and how) to
// filter, and dispatch to the appropriate shader builder.
//
// Grounded on renderer.c's sample_src_info/dispatch_sampler pair.
package sampler

import "math"

// deadband is the ±1e-6 tolerance around a 1.0 scale ratio within
// which a sample is treated as exactly unscaled.
const deadband = 1e-6

// Direction classifies a sample request's overall scale direction.
type Direction uint8

const (
	// NOOP means both axes are within the dead band of 1.0: no
	// resampling is needed at all.
	NOOP Direction = iota
	// DOWN means at least one axis is shrinking (ratio < 1).
	DOWN
	// UP means neither axis shrinks and at least one grows.
	UP
)

// Type classifies how a sample request will actually be filtered.
type Type uint8

const (
	// NEAREST performs no interpolation: used for exact NOOP requests
	// and as a fast-path substitute for a box filter.
	NEAREST Type = iota
	// DIRECT delegates to the GPU's built-in (bilinear) texture sampler.
	DIRECT
	// BICUBIC is the two-tap fast bicubic approximation.
	BICUBIC
	// COMPLEX dispatches a custom polar or separable shader sampler.
	COMPLEX
)

// FilterKind names the configured upscaler/downscaler filter shape.
type FilterKind uint8

const (
	// FilterNone means no filter is configured for this direction; the
	// selector always falls back to DIRECT.
	FilterNone FilterKind = iota
	FilterBicubic
	FilterTriangle
	FilterBox
	FilterPolar
	// FilterOther is any other configured complex (non-fast-pathed)
	// filter kernel (Lanczos, Spline, EWA variants, ...).
	FilterOther
)

// IsPolar reports whether this filter evaluates as a single 2D radial
// kernel rather than a separable pair of 1D passes.
func (f FilterKind) IsPolar() bool { return f == FilterPolar }

// Request holds everything the selector needs to produce a Plan.
type Request struct {
	// RX, RY are target/source size ratios per axis (target / source).
	RX, RY float64

	// Filter is the render-params filter configured for this request's
	// direction (the caller resolves upscaler vs downscaler before
	// building the Request).
	Filter FilterKind

	// IntermediateFBOsDisabled mirrors the renderer's disable_compute or
	// FBO-allocation-failure latch: forces DIRECT regardless of filter.
	IntermediateFBOsDisabled bool

	// AdvancedSamplingDisabled mirrors disable_sampling, set after any
	// runtime dispatch failure; forces DIRECT for the rest of the
	// renderer's lifetime.
	AdvancedSamplingDisabled bool

	// LinearFilterable reports whether the source texture's format
	// supports hardware linear filtering, gating fast-path substitution.
	LinearFilterable bool

	// AntiAliasingSkip mirrors skip_anti_aliasing: permits fast-path
	// substitution for downscalers even without the UP direction.
	AntiAliasingSkip bool
}

// Plan is the selector's decision for one sample request.
type Plan struct {
	Direction Direction
	Type      Type
	Filter    FilterKind
}

// ClassifyDirection buckets a pair of axis ratios into NOOP/DOWN/UP,
// using a ±1e-6 dead band around 1.0 on each axis independently before
// combining.
func ClassifyDirection(rx, ry float64) Direction {
	xNoop := math.Abs(rx-1) <= deadband
	yNoop := math.Abs(ry-1) <= deadband
	if xNoop && yNoop {
		return NOOP
	}
	if rx < 1-deadband || ry < 1-deadband {
		return DOWN
	}
	return UP
}

// Select computes the sampling Plan for req.
func Select(req Request) Plan {
	direction := ClassifyDirection(req.RX, req.RY)
	if direction == NOOP {
		return Plan{Direction: NOOP, Type: NEAREST, Filter: FilterNone}
	}

	typ := selectType(req)
	filter := req.Filter
	if typ != COMPLEX {
		// DIRECT/NEAREST/BICUBIC carry no custom filter kernel; only
		// COMPLEX dispatch needs to know which one to build.
		filter = FilterNone
	}

	fastPathOK := req.LinearFilterable && (direction == UP || req.AntiAliasingSkip)
	if typ == COMPLEX && fastPathOK {
		switch req.Filter {
		case FilterBicubic:
			return Plan{Direction: direction, Type: BICUBIC, Filter: FilterNone}
		case FilterTriangle:
			return Plan{Direction: direction, Type: DIRECT, Filter: FilterNone}
		case FilterBox:
			// fastPathOK already implies LinearFilterable.
			return Plan{Direction: direction, Type: NEAREST, Filter: FilterNone}
		}
	}

	if typ == COMPLEX {
		filter = req.Filter
	}
	return Plan{Direction: direction, Type: typ, Filter: filter}
}

func selectType(req Request) Type {
	if req.IntermediateFBOsDisabled || req.AdvancedSamplingDisabled || req.Filter == FilterNone {
		return DIRECT
	}
	return COMPLEX
}
