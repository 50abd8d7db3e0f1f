// SPDX-License-Identifier: MIT

package connectivity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbrain/connectivity"
)

func TestBranch(t *testing.T) {
	t.Parallel()

	parent, err := connectivity.LoadDefault()
	require.NoError(t, err)
	parent = configured(t, parent)

	sub, err := parent.Branch([]int{40, 2, 7})
	require.NoError(t, err)
	assert.False(t, sub.Configured())
	assert.Equal(t, parent.GID, sub.ParentConnectivity)
	assert.NotEqual(t, parent.GID, sub.GID)
	assert.Equal(t, []string{parent.RegionLabels[40], parent.RegionLabels[2], parent.RegionLabels[7]}, sub.RegionLabels)
	assert.Equal(t, parent.Centres[2], sub.Centres[1])
	assert.Equal(t, []bool{false, true, true}, sub.Hemispheres)

	w, err := sub.Weights.At(0, 2)
	require.NoError(t, err)
	pw, err := parent.Weights.At(40, 7)
	require.NoError(t, err)
	assert.Equal(t, pw, w)

	sub = configured(t, sub)
	assert.Equal(t, 3, sub.NumberOfRegions)
	assert.Equal(t, parent.GID, sub.SummaryInfo()[connectivity.KeyParent])
}

func TestBranch_Errors(t *testing.T) {
	t.Parallel()

	c := square4(t)
	for _, idx := range [][]int{nil, {}, {0, 0}, {4}, {-1}} {
		_, err := c.Branch(idx)
		require.ErrorIs(t, err, connectivity.ErrInvalidArgument, "%v", idx)
	}
	_, err := (&connectivity.Connectivity{}).Branch([]int{0})
	require.ErrorIs(t, err, connectivity.ErrValidation)
}

func TestSaveSelection(t *testing.T) {
	t.Parallel()

	c := square4(t)
	require.NoError(t, c.SaveSelection([]int{3, 1}))
	assert.Equal(t, []int{3, 1}, c.SavedSelection)

	require.ErrorIs(t, c.SaveSelection([]int{1, 1}), connectivity.ErrInvalidArgument)
	require.ErrorIs(t, c.SaveSelection([]int{9}), connectivity.ErrInvalidArgument)
	assert.Equal(t, []int{3, 1}, c.SavedSelection, "rejected selections are not stored")

	require.NoError(t, c.SaveSelection([]int{}))
	assert.Equal(t, []int{}, c.SavedSelection)
	require.NoError(t, c.SaveSelection(nil))
	assert.Nil(t, c.SavedSelection)
}

func TestRemoveSelfConnections(t *testing.T) {
	t.Parallel()

	c := configured(t, square4(t))
	_ = c.Weights.Set(1, 1, 2)
	_ = c.Weights.Set(2, 2, 5)
	assert.Equal(t, 2, c.RemoveSelfConnections())
	assert.Equal(t, 8, c.NumberOfConnections)
	assert.Equal(t, [][]float64{
		{0, 1, 0, 2},
		{1, 0, 3, 0},
		{0, 3, 0, 1},
		{4, 0, 1, 0},
	}, c.Weights.ToRows())
	assert.Equal(t, 0, c.RemoveSelfConnections())
}

func TestCentresSpherical(t *testing.T) {
	t.Parallel()

	c := &connectivity.Connectivity{Centres: [][3]float64{{0, 0, 2}, {0, 3, 0}, {0, 0, 0}}}
	sph := c.CentresSpherical()
	require.Len(t, sph, 3)
	assert.Equal(t, [3]float64{2, 0, 0}, sph[0])
	assert.InDelta(t, 3.0, sph[1][0], 1e-12)
	assert.InDelta(t, math.Pi/2, sph[1][1], 1e-12)
	assert.InDelta(t, math.Pi/2, sph[1][2], 1e-12)
	assert.Equal(t, [3]float64{}, sph[2])
}
