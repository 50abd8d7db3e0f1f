// SPDX-License-Identifier: MIT

package connectivity_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbrain/connectivity"
	"github.com/katalvlaran/lvbrain/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func stats(t *testing.T, m *matrix.Dense) matrix.Stats {
	t.Helper()
	s, err := matrix.Describe(m)
	require.NoError(t, err)
	return s
}

func loadTestdata(t *testing.T, name string) *connectivity.Connectivity {
	t.Helper()
	return loadPath(t, filepath.Join("testdata", name))
}

func loadPath(t *testing.T, path string) *connectivity.Connectivity {
	t.Helper()
	c, err := connectivity.FromFile(path)
	require.NoError(t, err)
	return c
}

func configured(t *testing.T, c *connectivity.Connectivity) *connectivity.Connectivity {
	t.Helper()
	require.NoError(t, c.Configure())
	return c
}

// square4 is a small directed network with self-loop free weights.
func square4(t *testing.T) *connectivity.Connectivity {
	t.Helper()
	w := dense(t, [][]float64{
		{0, 1, 0, 2},
		{1, 0, 3, 0},
		{0, 3, 0, 1},
		{4, 0, 1, 0},
	})
	tl := dense(t, [][]float64{
		{0, 10, 20, 30},
		{10, 0, 10, 20},
		{20, 10, 0, 10},
		{30, 20, 10, 0},
	})
	return connectivity.New(w, tl)
}
