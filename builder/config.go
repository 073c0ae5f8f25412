// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, and edge weight distribution to keep builder
// implementations DRY and consistent.
//
// builderConfig holds:
//   - rng:      *rand.Rand source for randomness (nil → deterministic).
//   - idFn:     IDFn to produce vertex identifiers from integer indices.
//   - weightFn: WeightFn to produce edge weights given an RNG.
//   - leftPrefix/rightPrefix: bipartite partition label prefixes.
//   - amplitude/frequency/trendK/noiseSigma: sequence-builder knobs.
//
// The BuilderOption type and its constructors (WithIDScheme, WithRand,
// WithSeed, WithWeightFn, WithPartitionPrefix, WithAmplitude, WithFrequency,
// WithTrend, WithNoise) live in options.go.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	idFn     IDFn       // function to generate vertex IDs from indices
	weightFn WeightFn   // function to generate edge weights

	leftPrefix  string // bipartite left-partition label prefix ("" → default "L")
	rightPrefix string // bipartite right-partition label prefix ("" → default "R")

	amplitude  float64 // sequence amplitude A (Pulse/Chirp/OHLC)
	frequency  float64 // sequence base frequency f0
	trendK     float64 // sequence linear trend coefficient
	noiseSigma float64 // sequence Gaussian noise sigma
}

// Default bipartite partition prefixes, resolved when WithPartitionPrefix
// leaves either side empty.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn, "L"/"R" prefixes, and the
// sequence-builder defaults shared with impl_pulse.go/impl_chirp.go.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:      nil,             // no RNG → deterministic ID and weight functions
		idFn:     DefaultIDFn,     // decimal IDs "0","1",…
		weightFn: DefaultWeightFn, // constant DefaultEdgeWeight

		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,

		amplitude:  defAmp,
		frequency:  defBaseFreq,
		trendK:     defTrendSlope,
		noiseSigma: defSigma,
	}

	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}

	// Empty prefixes from WithPartitionPrefix("", "") fall back to defaults.
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
