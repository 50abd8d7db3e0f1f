// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbrain/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustRows(t, [][]float64{{1}})))
}

func TestValidateSquareAndSameShape(t *testing.T) {
	t.Parallel()

	sq := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	rect := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSameShape(sq, sq.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(sq, nil), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := mustRows(t, [][]float64{{0, 2, 3}, {2, 0, 1}, {3, 1, 0}})
	asym := mustRows(t, [][]float64{{0, 2}, {2.5, 0}})

	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, -0.5)) // |tol| is used
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(mustRows(t, [][]float64{{1, 2}}), 0), matrix.ErrNonSquare)

	require.True(t, matrix.IsSymmetric(sym, 0))
	require.False(t, matrix.IsSymmetric(asym, 0))
	require.False(t, matrix.IsSymmetric(nil, 0))
}

func TestValidateNonNegative(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateNonNegative(mustRows(t, [][]float64{{0, 1}, {2, 3}})))
	require.ErrorIs(t, matrix.ValidateNonNegative(mustRows(t, [][]float64{{0, -1}})), matrix.ErrNegative)
	require.ErrorIs(t, matrix.ValidateNonNegative(nil), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
