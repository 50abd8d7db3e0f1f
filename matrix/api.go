// SPDX-License-Identifier: MIT
// Package: matrix (public API facades)
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Delays are Divide(tractLengths, speed); scaled weights are Divide(weights, max).

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf tags an error with the facade/kernel name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ZerosLike returns a zero *Dense with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// ---------- Element-wise ----------

// Transpose returns mᵀ as a new *Dense. Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) { return ewTranspose(m) }

// Divide returns m/d element-wise as a new *Dense.
// A zero or non-finite divisor yields ErrNaNInf. Complexity: O(r*c).
func Divide(m Matrix, d float64) (*Dense, error) {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, matrixErrorf("Divide", ErrNaNInf)
	}

	return ewMap("Divide", m, func(v float64) float64 { return v / d })
}

// Abs returns |m| element-wise. Complexity: O(r*c).
func Abs(m Matrix) (*Dense, error) { return ewMap("Abs", m, math.Abs) }

// AllClose reports whether |a-b| ≤ atol + rtol*|b| for all entries.
// Returns ErrNilMatrix/ErrDimensionMismatch on structural problems.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ---------- Reductions ----------

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	out := make([]float64, m.Rows())
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: Transpose then RowSums, keeping one summation loop.
// Complexity: O(r*c).
//
// AI-Hints: region-mode weight scaling divides by max(ColSums(|W|)).
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return RowSums(mt)
}

// IsSymmetric reports whether m is square and symmetric within tol.
// It is the boolean form of ValidateSymmetric; nil/non-square yield false.
func IsSymmetric(m Matrix, tol float64) bool {
	return ValidateSymmetric(m, tol) == nil
}
