// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reductions used for reporting and normalization: extrema, mean,
//     absolute maximum and predicate counts.
//   - Keep every reduction a single deterministic pass (row-major).
//
// Contract:
//   - Inputs must be non-nil; empty inputs (0 elements) yield ErrInvalidDimensions
//     for extrema/mean since they are undefined there.
//   - CountIf on an empty matrix returns 0 without error.
//
// AI-Hints:
//   - number_of_connections of a connectivity is CountPositive(weights).
//   - Summary info reports Describe(weights).Max/Min/Mean.

package matrix

import (
	"math"
)

// Stats collects the extrema and mean of a matrix or vector in one pass.
type Stats struct {
	Min   float64 // smallest entry
	Max   float64 // largest entry
	Mean  float64 // arithmetic mean
	Count int     // number of entries visited
}

// Describe computes Stats over all entries of m.
// Returns ErrNilMatrix for nil input and ErrInvalidDimensions for 0 entries.
// Complexity: O(r*c), Space O(1).
func Describe(m Matrix) (Stats, error) {
	if err := ValidateNotNil(m); err != nil {
		return Stats{}, matrixErrorf("Describe", err)
	}
	r, c := m.Rows(), m.Cols()
	if r*c == 0 {
		return Stats{}, matrixErrorf("Describe", ErrInvalidDimensions)
	}

	if d, ok := m.(*Dense); ok {
		return describeSlice(d.data), nil
	}

	flat := make([]float64, 0, r*c)
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ = m.At(i, j)
			flat = append(flat, v)
		}
	}

	return describeSlice(flat), nil
}

// DescribeVec computes Stats over x. Returns ErrInvalidDimensions when empty.
// Complexity: O(n).
func DescribeVec(x []float64) (Stats, error) {
	if len(x) == 0 {
		return Stats{}, matrixErrorf("DescribeVec", ErrInvalidDimensions)
	}

	return describeSlice(x), nil
}

// describeSlice is the single reduction loop behind Describe/DescribeVec.
// Precondition: len(x) > 0.
func describeSlice(x []float64) Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1), Count: len(x)}
	var sum float64
	for _, v := range x {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Mean = sum / float64(len(x))

	return s
}

// MaxAbs returns max |m[i,j]|; 0 for an empty matrix.
// Complexity: O(r*c).
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("MaxAbs", err)
	}
	var (
		best, v float64
	)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.Abs(v) > best {
				best = math.Abs(v)
			}
		}
	}

	return best, nil
}

// CountIf counts entries for which pred returns true.
// Complexity: O(r*c).
func CountIf(m Matrix, pred func(v float64) bool) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("CountIf", err)
	}
	n := 0
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if pred(v) {
				n++
			}
		}
	}

	return n, nil
}

// CountPositive counts strictly positive entries.
func CountPositive(m Matrix) (int, error) {
	return CountIf(m, func(v float64) bool { return v > 0 })
}
