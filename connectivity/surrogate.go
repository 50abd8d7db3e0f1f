// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbrain/matrix"
)

// Motif is the arc pattern of a surrogate network.
type Motif string

const (
	// MotifRing links i→i+1 around the ring plus the reciprocal 0→n-1 arc,
	// giving n+1 directed connections.
	MotifRing Motif = "ring"
	// MotifLinear links i→i+1 without wrap-around.
	MotifLinear Motif = "linear"
	// MotifAllToAll links every ordered pair i≠j.
	MotifAllToAll Motif = "all-to-all"
	// MotifRandom draws every ordered pair i≠j with probability p.
	MotifRandom Motif = "random"
)

// motifMinRegions is the smallest network each motif can describe.
var motifMinRegions = map[Motif]int{
	MotifRing:     3,
	MotifLinear:   2,
	MotifAllToAll: 2,
	MotifRandom:   2,
}

// ParseMotif maps a case-insensitive name to a Motif.
func ParseMotif(s string) (Motif, error) {
	m := Motif(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := motifMinRegions[m]; !ok {
		return "", invalidArgf("motif %q: want ring, linear, all-to-all or random", s)
	}

	return m, nil
}

// GenerateSurrogate builds a raw synthetic network of n regions laid out on
// a circle in the z=0 plane, adjacent centres maxRadius apart.
//
// Every arc has tract length maxRadius and weight 1 (or a uniform draw in
// (0,1] with WithRandomWeights). Labels are region_000.., areas are 1, all
// regions are cortical and the first n/2 regions are right hemisphere.
// Orientations point radially outwards. The result is not configured.
//
// Errors: ErrInvalidArgument when n is below the motif minimum or when a
// stochastic choice has no RNG.
func GenerateSurrogate(n int, opts ...Option) (*Connectivity, error) {
	cfg := newConfig(opts)
	if minN := motifMinRegions[cfg.motif]; n < minN {
		return nil, invalidArgf("surrogate %s needs at least %d regions, got %d", cfg.motif, minN, n)
	}
	stochasticArcs := cfg.motif == MotifRandom && cfg.probability > 0 && cfg.probability < 1
	if (stochasticArcs || cfg.randomWeights) && cfg.rng == nil {
		return nil, invalidArgf("stochastic surrogate needs WithSeed or WithRand")
	}

	w, _ := matrix.NewZeros(n, n)
	tl, _ := matrix.NewZeros(n, n)
	link := func(i, j int) {
		weight := 1.0
		if cfg.randomWeights {
			weight = 1 - cfg.rng.Float64()
		}
		_ = w.Set(i, j, weight)
		_ = tl.Set(i, j, cfg.maxRadius)
		if cfg.undirected {
			_ = w.Set(j, i, weight)
			_ = tl.Set(j, i, cfg.maxRadius)
		}
	}

	switch cfg.motif {
	case MotifRing:
		for i := 0; i < n; i++ {
			link(i, (i+1)%n)
		}
		link(0, n-1)
	case MotifLinear:
		for i := 0; i+1 < n; i++ {
			link(i, i+1)
		}
	case MotifAllToAll, MotifRandom:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.motif == MotifRandom && !bernoulli(cfg, cfg.probability) {
					continue
				}
				link(i, j)
			}
		}
	}

	c := newRaw(cfg)
	c.Weights = w
	c.TractLengths = tl
	c.Undirected = cfg.undirected
	c.Centres, c.Orientations = ringLayout(n, cfg.maxRadius)
	c.RegionLabels = make([]string, n)
	c.Areas = make([]float64, n)
	c.Cortical = make([]bool, n)
	c.Hemispheres = make([]bool, n)
	for i := 0; i < n; i++ {
		c.RegionLabels[i] = fmt.Sprintf("region_%03d", i)
		c.Areas[i] = 1
		c.Cortical[i] = true
		c.Hemispheres[i] = i < n/2
	}

	c.logger().Debug("surrogate generated",
		zap.String("gid", c.GID),
		zap.Int("regions", n),
		zap.String("motif", string(cfg.motif)),
		zap.Bool("undirected", cfg.undirected),
	)

	return c, nil
}

func bernoulli(cfg config, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return cfg.rng.Float64() < p
}

// ringLayout places n centres on a circle whose chord between neighbours is
// spacing, together with outward unit orientations.
func ringLayout(n int, spacing float64) (centres, orientations [][3]float64) {
	radius := spacing / (2 * math.Sin(math.Pi/float64(n)))
	centres = make([][3]float64, n)
	orientations = make([][3]float64, n)
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * (float64(i) + 0.5) / float64(n)
		s, co := math.Sincos(phi)
		centres[i] = [3]float64{radius * s, radius * co, 0}
		orientations[i] = [3]float64{s, co, 0}
	}

	return centres, orientations
}
