// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbrain/matrix"
)

// Configure finalizes c in place. On error c is left untouched.
// Calling Configure on an already configured value recomputes the derived
// fields and yields the same result.
func (c *Connectivity) Configure() error {
	cfg, err := Finalize(c)
	if err != nil {
		return err
	}
	*c = *cfg

	return nil
}

// Finalize returns a configured copy of raw. It fills missing tract lengths,
// labels, hemispheres and cortical flags, checks every shape and value
// invariant, then derives delays and the region/connection counts.
//
// Errors: ErrValidation for violated invariants.
func Finalize(raw *Connectivity) (*Connectivity, error) {
	if raw == nil {
		return nil, validationf(nil, "finalize: nil connectivity")
	}
	c := raw.Clone()
	log := c.logger()

	if err := matrix.ValidateSquare(c.Weights); err != nil {
		return nil, validationf(err, "weights")
	}
	if err := matrix.ValidateNonNegative(c.Weights); err != nil {
		return nil, validationf(err, "weights")
	}
	n := c.Weights.Rows()

	if c.TractLengths == nil {
		if len(c.Centres) > 0 {
			if err := c.ComputeTractLengths(); err != nil {
				return nil, err
			}
		} else {
			log.Warn("no tract lengths and no centres, using zero tract lengths",
				zap.String("gid", c.GID), zap.Int("regions", n))
			c.TractLengths, _ = matrix.ZerosLike(c.Weights)
		}
	}
	if err := matrix.ValidateSameShape(c.Weights, c.TractLengths); err != nil {
		return nil, validationf(err, "tract lengths")
	}
	if err := matrix.ValidateNonNegative(c.TractLengths); err != nil {
		return nil, validationf(err, "tract lengths")
	}

	if err := c.checkLengths(n); err != nil {
		return nil, err
	}

	c.ComputeRegionLabels()
	if len(c.Hemispheres) == 0 {
		if _, ok := c.TryComputeHemispheres(); !ok {
			log.Debug("hemispheres could not be inferred", zap.String("gid", c.GID))
		}
	}
	if len(c.Cortical) == 0 {
		c.Cortical = make([]bool, n)
		for i := range c.Cortical {
			c.Cortical[i] = true
		}
	}

	switch {
	case c.Speed == 0:
		c.Speed = DefaultSpeed
	case !(c.Speed > 0) || math.IsInf(c.Speed, 0):
		return nil, validationf(nil, "speed %g must be finite and > 0", c.Speed)
	}

	if c.Undirected {
		if err := matrix.ValidateSymmetric(c.Weights, 0); err != nil {
			return nil, validationf(err, "undirected network with asymmetric weights")
		}
		if err := matrix.ValidateSymmetric(c.TractLengths, 0); err != nil {
			return nil, validationf(err, "undirected network with asymmetric tract lengths")
		}
	}

	delays, err := matrix.Divide(c.TractLengths, c.Speed)
	if err != nil {
		return nil, validationf(err, "delays")
	}
	c.Delays = delays
	c.IDelays = nil
	c.NumberOfRegions = n
	c.NumberOfConnections, _ = matrix.CountPositive(c.Weights)
	c.configured = true

	log.Debug("connectivity configured",
		zap.String("gid", c.GID),
		zap.Int("regions", c.NumberOfRegions),
		zap.Int("connections", c.NumberOfConnections),
		zap.Float64("speed", c.Speed),
	)

	return c, nil
}

// checkLengths enforces that every optional per-region array is empty or has n entries.
func (c *Connectivity) checkLengths(n int) error {
	lengths := []struct {
		name string
		len  int
	}{
		{"centres", len(c.Centres)},
		{"orientations", len(c.Orientations)},
		{"region labels", len(c.RegionLabels)},
		{"cortical", len(c.Cortical)},
		{"hemispheres", len(c.Hemispheres)},
	}
	for _, l := range lengths {
		if l.len != 0 && l.len != n {
			return validationf(nil, "%s has %d entries, want 0 or %d", l.name, l.len, n)
		}
	}
	if len(c.Areas) > 0 {
		if err := matrix.ValidateVecLen(c.Areas, n); err != nil {
			return validationf(err, "areas")
		}
	}

	return nil
}

// ComputeTractLengths fills TractLengths with the Euclidean distances
// between centres. It is a no-op when tract lengths are already present.
//
// Errors: ErrValidation when there are no centres.
func (c *Connectivity) ComputeTractLengths() error {
	if c.TractLengths != nil {
		return nil
	}
	n := len(c.Centres)
	if n == 0 {
		return validationf(nil, "cannot compute tract lengths without centres")
	}
	tl, err := matrix.NewZeros(n, n)
	if err != nil {
		return validationf(err, "tract lengths")
	}
	err = tl.Apply(func(i, j int, _ float64) float64 {
		return distance(c.Centres[i], c.Centres[j])
	})
	if err != nil {
		return validationf(err, "tract lengths from centres")
	}
	c.TractLengths = tl
	c.logger().Debug("tract lengths computed from centres", zap.Int("regions", n))

	return nil
}

func distance(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ComputeRegionLabels assigns region_000, region_001, ... when labels are absent.
func (c *Connectivity) ComputeRegionLabels() {
	if len(c.RegionLabels) > 0 {
		return
	}
	n := c.regionCount()
	if n == 0 {
		return
	}
	c.RegionLabels = make([]string, n)
	for i := range c.RegionLabels {
		c.RegionLabels[i] = fmt.Sprintf("region_%03d", i)
	}
}
