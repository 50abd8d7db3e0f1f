// SPDX-License-Identifier: MIT

package connectivity

import (
	"strings"

	"github.com/katalvlaran/lvbrain/matrix"
)

// ScaleMode selects the normalization applied by ScaledWeights.
type ScaleMode string

const (
	// ScaleNone returns an unmodified copy of the weights.
	ScaleNone ScaleMode = "none"
	// ScaleTract divides every weight by the largest absolute weight.
	ScaleTract ScaleMode = "tract"
	// ScaleRegion divides every weight by the largest absolute column sum.
	ScaleRegion ScaleMode = "region"
)

// ScaleModes lists the supported modes in documentation order.
var ScaleModes = []ScaleMode{ScaleNone, ScaleTract, ScaleRegion}

// ParseScaleMode maps a case-insensitive name to a ScaleMode.
func ParseScaleMode(s string) (ScaleMode, error) {
	m := ScaleMode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ScaleModes {
		if m == known {
			return m, nil
		}
	}

	return "", invalidArgf("scale mode %q: want none, tract or region", s)
}

// ScaledWeights returns a normalized copy of the weights; c is not modified.
// A zero normalizer (all-zero weights) yields an unmodified copy.
//
// Errors: ErrInvalidArgument for an unknown mode, ErrValidation when weights
// are absent.
func (c *Connectivity) ScaledWeights(mode ScaleMode) (*matrix.Dense, error) {
	switch mode {
	case ScaleNone, ScaleTract, ScaleRegion:
	default:
		return nil, invalidArgf("scale mode %q: want none, tract or region", mode)
	}
	if err := matrix.ValidateNotNil(c.Weights); err != nil {
		return nil, validationf(err, "scaled weights")
	}

	var norm float64
	switch mode {
	case ScaleNone:
		return cloneDense(c.Weights), nil
	case ScaleTract:
		norm, _ = matrix.MaxAbs(c.Weights)
	case ScaleRegion:
		abs, err := matrix.Abs(c.Weights)
		if err != nil {
			return nil, validationf(err, "scaled weights")
		}
		sums, _ := matrix.ColSums(abs)
		for _, s := range sums {
			if s > norm {
				norm = s
			}
		}
	}
	if norm == 0 {
		return cloneDense(c.Weights), nil
	}

	out, err := matrix.Divide(c.Weights, norm)
	if err != nil {
		return nil, validationf(err, "scaled weights")
	}

	return out, nil
}
