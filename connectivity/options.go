// SPDX-License-Identifier: MIT
// Package: lvbrain/connectivity
//
// options.go: functional options shared by every constructor.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the
//     constructors themselves never panic and return sentinel errors.
//   • Determinism is explicit: stochastic surrogates need WithSeed or WithRand.
//   • Loaders honour WithLogger and WithSpeed; the surrogate generator honours all.

package connectivity

import (
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Defaults applied when an option is not supplied.
const (
	// DefaultSpeed is the conduction speed (mm/ms) used to derive delays.
	DefaultSpeed = 3.0
	// DefaultMaxRadius bounds surrogate tract lengths (mm).
	DefaultMaxRadius = 42.0
)

// Option customizes a constructor by mutating a config before it runs.
type Option func(*config)

// config is the resolved option set. Zero values mean "use the default".
type config struct {
	log           *zap.Logger
	rng           *rand.Rand
	speed         float64
	motif         Motif
	maxRadius     float64
	probability   float64
	undirected    bool
	randomWeights bool
}

func newConfig(opts []Option) config {
	c := config{
		log:         zap.NewNop(),
		motif:       MotifRing,
		maxRadius:   DefaultMaxRadius,
		probability: 0.5,
	}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithLogger attaches a logger to the constructed Connectivity. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("connectivity: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}

// WithRand provides an explicit RNG for stochastic surrogates. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("connectivity: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG; use it in tests to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpeed sets the conduction speed. Archives that record a speed keep
// their own value. Panics unless speed is finite and > 0.
func WithSpeed(speed float64) Option {
	if !(speed > 0) || math.IsInf(speed, 0) {
		panic("connectivity: WithSpeed requires a finite speed > 0")
	}
	return func(c *config) { c.speed = speed }
}

// WithMotif selects the surrogate topology. Panics on an unknown motif.
func WithMotif(m Motif) Option {
	if _, ok := motifMinRegions[m]; !ok {
		panic("connectivity: WithMotif: unknown motif " + string(m))
	}
	return func(c *config) { c.motif = m }
}

// WithMaxRadius sets the surrogate tract length. Panics unless r is finite and > 0.
func WithMaxRadius(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("connectivity: WithMaxRadius requires a finite radius > 0")
	}
	return func(c *config) { c.maxRadius = r }
}

// WithProbability sets the arc probability of MotifRandom. Panics outside [0,1].
func WithProbability(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic("connectivity: WithProbability requires p in [0,1]")
	}
	return func(c *config) { c.probability = p }
}

// WithUndirected mirrors every surrogate arc and marks the result undirected.
func WithUndirected() Option {
	return func(c *config) { c.undirected = true }
}

// WithRandomWeights draws surrogate weights uniformly from (0,1] instead of 1.
// Requires WithSeed or WithRand.
func WithRandomWeights() Option {
	return func(c *config) { c.randomWeights = true }
}
