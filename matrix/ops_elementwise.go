// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) to avoid duplicating
//     tight loops across higher-level ops (scaling, transpose, sanitize).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Public API uses these via thin wrappers in api.go.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"math"
)

// ewMap computes out[i,j] = f(X[i,j]) into a fresh Dense.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// AI-Hint: the single loop behind Abs/Divide; f must be pure.
func ewMap(tag string, X Matrix, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	out := &Dense{r: r, c: c, data: make([]float64, r*c), validateNaNInf: DefaultValidateNaNInf}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		for idx, v := range d.data {
			out.data[idx] = f(v)
		}
	} else {
		var v float64
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v, _ = X.At(i, j) // bounds guaranteed by loop limits
				out.data[i*c+j] = f(v)
			}
		}
	}

	if out.validateNaNInf {
		for idx, v := range out.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(tag, denseErrorf(ctxApply, idx/c, idx%c, ErrNaNInf))
			}
		}
	}

	return out, nil
}

// ewTranspose computes out[j,i] = X[i,j].
// Time: O(r*c). Space: O(r*c).
func ewTranspose(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	r, c := X.Rows(), X.Cols()
	out := &Dense{r: c, c: r, data: make([]float64, r*c), validateNaNInf: DefaultValidateNaNInf}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[j*r+i] = d.data[base+j]
			}
		}
		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ = X.At(i, j)
			out.data[j*r+i] = v
		}
	}

	return out, nil
}

// ewAllClose reports whether |a-b| ≤ atol + rtol*|b| element-wise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
