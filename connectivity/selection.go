// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbrain/matrix"
)

// SaveSelection records a region subset. Indices must be unique and in
// range. A nil slice clears the selection.
func (c *Connectivity) SaveSelection(idx []int) error {
	if idx == nil {
		c.SavedSelection = nil
		return nil
	}
	if err := c.checkSelection(idx); err != nil {
		return err
	}
	c.SavedSelection = append([]int{}, idx...)

	return nil
}

func (c *Connectivity) checkSelection(idx []int) error {
	n := c.regionCount()
	seen := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		if i < 0 || i >= n {
			return invalidArgf("region index %d out of range [0,%d)", i, n)
		}
		if _, dup := seen[i]; dup {
			return invalidArgf("region index %d selected twice", i)
		}
		seen[i] = struct{}{}
	}

	return nil
}

// Branch returns a raw sub-network restricted to idx, in idx order. The
// result has a fresh GID and records c as its parent; call Configure on it.
//
// Errors: ErrInvalidArgument for an empty, duplicated or out-of-range idx,
// ErrValidation when c has no weights.
func (c *Connectivity) Branch(idx []int) (*Connectivity, error) {
	if len(idx) == 0 {
		return nil, invalidArgf("branch needs at least one region")
	}
	if c.Weights == nil {
		return nil, validationf(nil, "branch of a connectivity without weights")
	}
	if err := c.checkSelection(idx); err != nil {
		return nil, err
	}

	w, err := c.Weights.Induced(idx, idx)
	if err != nil {
		return nil, invalidArgf("branch weights: %v", err)
	}
	sub := &Connectivity{
		GID:                uuid.NewString(),
		Weights:            w,
		Undirected:         c.Undirected,
		Speed:              c.Speed,
		ParentConnectivity: c.GID,
		log:                c.log,
	}
	if c.TractLengths != nil {
		if sub.TractLengths, err = c.TractLengths.Induced(idx, idx); err != nil {
			return nil, validationf(err, "branch tract lengths")
		}
	}
	sub.Centres = pick(c.Centres, idx)
	sub.Orientations = pick(c.Orientations, idx)
	sub.RegionLabels = pick(c.RegionLabels, idx)
	sub.Areas = pick(c.Areas, idx)
	sub.Cortical = pick(c.Cortical, idx)
	sub.Hemispheres = pick(c.Hemispheres, idx)

	c.logger().Debug("connectivity branched",
		zap.String("parent", c.GID), zap.String("gid", sub.GID), zap.Int("regions", len(idx)))

	return sub, nil
}

// pick gathers x[idx]. Arrays that do not cover every index stay empty.
func pick[T any](x []T, idx []int) []T {
	if len(x) == 0 {
		return nil
	}
	out := make([]T, len(idx))
	for k, i := range idx {
		if i >= len(x) {
			return nil
		}
		out[k] = x[i]
	}

	return out
}

// RemoveSelfConnections zeroes the weights diagonal and returns how many
// entries changed. The connection count is refreshed on configured values.
func (c *Connectivity) RemoveSelfConnections() int {
	if c.Weights == nil {
		return 0
	}
	removed := 0
	_ = c.Weights.Apply(func(i, j int, v float64) float64 {
		if i != j || v == 0 {
			return v
		}
		removed++
		return 0
	})
	if c.configured {
		c.NumberOfConnections, _ = matrix.CountPositive(c.Weights)
	}

	return removed
}
