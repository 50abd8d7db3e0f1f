// SPDX-License-Identifier: MIT

package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbrain/connectivity"
	"github.com/katalvlaran/lvbrain/matrix"
)

func TestScaledWeights(t *testing.T) {
	t.Parallel()

	c := configured(t, square4(t))
	orig := c.Weights.ToRows()

	for _, tc := range []struct {
		mode connectivity.ScaleMode
		norm float64 // expected divisor
	}{
		{connectivity.ScaleNone, 1},
		{connectivity.ScaleTract, 4},  // max |w|
		{connectivity.ScaleRegion, 5}, // column sums 5, 4, 4, 3
	} {
		t.Run(string(tc.mode), func(t *testing.T) {
			got, err := c.ScaledWeights(tc.mode)
			require.NoError(t, err)
			want, err := matrix.Divide(c.Weights, tc.norm)
			require.NoError(t, err)
			ok, err := matrix.AllClose(got, want, 0, 1e-15)
			require.NoError(t, err)
			assert.True(t, ok, "got %v", got)
		})
	}
	assert.Equal(t, orig, c.Weights.ToRows(), "weights are never modified")
}

func TestScaledWeights_Errors(t *testing.T) {
	t.Parallel()

	c := square4(t)
	_, err := c.ScaledWeights("log")
	require.ErrorIs(t, err, connectivity.ErrInvalidArgument)

	_, err = (&connectivity.Connectivity{}).ScaledWeights(connectivity.ScaleTract)
	require.ErrorIs(t, err, connectivity.ErrValidation)

	zero, _ := matrix.NewZeros(3, 3)
	got, err := connectivity.New(zero, zero).ScaledWeights(connectivity.ScaleRegion)
	require.NoError(t, err)
	assert.Equal(t, zero.ToRows(), got.ToRows(), "all-zero weights are returned unscaled")
}

func TestParseScaleMode(t *testing.T) {
	t.Parallel()

	m, err := connectivity.ParseScaleMode("Region")
	require.NoError(t, err)
	assert.Equal(t, connectivity.ScaleRegion, m)

	_, err = connectivity.ParseScaleMode("")
	require.ErrorIs(t, err, connectivity.ErrInvalidArgument)
}

func TestSummaryInfo(t *testing.T) {
	t.Parallel()

	raw := square4(t)
	info := raw.SummaryInfo()
	assert.Equal(t, 0, info[connectivity.KeyRegions], "counts are zero before Configure")
	assert.Equal(t, 4.0, info["Weights (max)"])
	assert.NotContains(t, info, "Areas (max)")
	assert.NotContains(t, info, connectivity.KeyParent)

	c := configured(t, raw)
	c.Areas = []float64{1, 2, 3, 6}
	info = c.SummaryInfo()
	assert.Equal(t, 4, info[connectivity.KeyRegions])
	assert.Equal(t, 8, info[connectivity.KeyConnections])
	assert.Equal(t, false, info[connectivity.KeyUndirected])
	assert.Equal(t, 3.0, info[connectivity.KeySpeed])
	assert.Equal(t, 0.0, info["Tract lengths (min)"])
	assert.Equal(t, 30.0, info["Tract lengths (max)"])
	assert.Equal(t, 3.0, info["Areas (mean)"])
	assert.Equal(t, 1.0, info["Weights (mean)"])
}
