// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbrain/matrix"
)

func TestDescribe_FastAndFallbackAgree(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{0, 3, 1}, {2, 0, 0}})

	fast, err := matrix.Describe(m)
	require.NoError(t, err)
	slow, err := matrix.Describe(hide{m})
	require.NoError(t, err)

	assert.Equal(t, fast, slow)
	assert.Equal(t, 0.0, fast.Min)
	assert.Equal(t, 3.0, fast.Max)
	assert.InDelta(t, 1.0, fast.Mean, 1e-12)
	assert.Equal(t, 6, fast.Count)
}

func TestDescribe_Empty(t *testing.T) {
	t.Parallel()

	empty, err := mustRows(t, [][]float64{{1}}).Induced(nil, nil)
	require.NoError(t, err)
	_, err = matrix.Describe(empty)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.DescribeVec(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	s, err := matrix.DescribeVec([]float64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, matrix.Stats{Min: 2, Max: 4, Mean: 3, Count: 2}, s)
}

func TestMaxAbsAndCounts(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{0, -5, 1}, {2, 0, 0}})

	ma, err := matrix.MaxAbs(m)
	require.NoError(t, err)
	assert.Equal(t, 5.0, ma)

	pos, err := matrix.CountPositive(m)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	nz, err := matrix.CountIf(m, func(v float64) bool { return v != 0 })
	require.NoError(t, err)
	assert.Equal(t, 3, nz)

	_, err = matrix.CountPositive(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
