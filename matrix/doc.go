// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage behind connectivity
// weights, tract lengths and delays.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - Centralized validators (square, same shape, symmetric, non-negative)
//     returning sentinel errors matched with errors.Is.
//   - Element-wise facades (Divide, Abs, Transpose) and reductions
//     (RowSums, ColSums, Describe, MaxAbs, CountPositive).
//
// Every exported function is deterministic and never panics on user input.
package matrix
