package segment

import (
	"fmt"
	"math/rand"
)

// options holds the resolved, validated configuration for a
// MSTSegmenter. Fields are unexported; public code consumes ...Option,
// in the style of this corpus's functional-options packages.
type options struct {
	k        float64
	minSize  int
	adaptive bool
	color    bool
	rng      *rand.Rand
}

// Option configures a MSTSegmenter.
type Option func(*options)

// WithK sets the adaptive-threshold constant k. k must be > 0 — see
// WithK's validation in newOptions.
func WithK(k float64) Option {
	return func(o *options) { o.k = k }
}

// WithMinSize sets the minimum component size enforced by the cleanup
// pass. min_size must be >= 0.
func WithMinSize(minSize int) Option {
	return func(o *options) { o.minSize = minSize }
}

// WithAdaptive toggles the adaptive per-component threshold update. When
// false, tau[root] stays at its initial value k for the whole run.
func WithAdaptive(adaptive bool) Option {
	return func(o *options) { o.adaptive = adaptive }
}

// WithColor toggles the randomly-colorized RGB debug output, returned in
// Result.RGB alongside the integer labels; see Colorize for the standalone equivalent that can be
// reused across frames with a stable colormap.
func WithColor(color bool) Option {
	return func(o *options) { o.color = color }
}

// WithRand injects the random source used to generate per-component
// colors when WithColor(true). Supplying one explicitly (seeded from
// e.g. time.Now().UnixNano()) opts into non-deterministic colors; the
// default is a fixed seed, consistent with this corpus's preference for
// deterministic behavior absent an explicit caller request otherwise.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// defaultOptions returns the zero-value-safe defaults: adaptive merging
// on, color off, min_size 0. k has no sane default (it is data-dependent)
// and must always be supplied via WithK.
func defaultOptions() options {
	return options{
		k:        0,
		minSize:  0,
		adaptive: true,
		color:    false,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// newOptions resolves opts against defaultOptions and validates the
// result. k and minSize are run-time, caller-data-dependent parameters
// rather than programmer-error invariants, so invalid values are
// reported as ErrInvalidParameter rather than panicking.
func newOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.k <= 0 {
		return options{}, fmt.Errorf("segment: k=%v must be > 0: %w", o.k, ErrInvalidParameter)
	}
	if o.minSize < 0 {
		return options{}, fmt.Errorf("segment: min_size=%d must be >= 0: %w", o.minSize, ErrInvalidParameter)
	}

	return o, nil
}
