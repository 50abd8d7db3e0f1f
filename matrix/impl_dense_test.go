// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbrain/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative", -1, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 4.5))
	assert.Equal(t, 4.5, mustAt(t, m, 1, 2))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m := mustRows(t, rows)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())

	// The input is copied, not aliased.
	rows[0][0] = 99
	assert.Equal(t, 1.0, mustAt(t, m, 0, 0))

	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewDenseFromData(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3.0, mustAt(t, m, 1, 0))

	_, err = matrix.NewDenseFromData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, -7))
	assert.Equal(t, 1.0, mustAt(t, m, 0, 0))
	assert.Equal(t, -7.0, mustAt(t, cp, 0, 0))
}

func TestDense_ToRows(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rows := m.ToRows()
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rows)

	// The rows are copies.
	rows[0][0] = 99
	assert.Equal(t, 1.0, mustAt(t, m, 0, 0))
}

func TestDense_Induced(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})
	sub, err := m.Induced([]int{0, 2}, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 2}, {6, 8}}, sub.ToRows())

	empty, err := m.Induced(nil, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_DoAndApply(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	var visited int
	m.Do(func(i, j int, v float64) bool {
		visited++
		return v < 2 // stop at the second element
	})
	assert.Equal(t, 2, visited)

	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 10 }))
	assert.Equal(t, [][]float64{{10, 20}, {30, 40}}, m.ToRows())

	err := m.Apply(func(_, _ int, _ float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
