// SPDX-License-Identifier: MIT

//go:build hdf5

package connectivity_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbrain/connectivity"
)

// editedH5 writes a 74-region ring whose first self-connection was edited
// to 9, the layout of an HDF5 file saved after manual changes.
func editedH5(t *testing.T) string {
	t.Helper()
	c, err := connectivity.GenerateSurrogate(74)
	require.NoError(t, err)
	require.NoError(t, c.Weights.Set(0, 0, 9))

	path := filepath.Join(t.TempDir(), "edited_connectivity.h5")
	require.NoError(t, c.SaveHDF5(path))
	return path
}

func TestFromFile_HDF5(t *testing.T) {
	t.Parallel()

	c := loadPath(t, editedH5(t))

	// Nothing is derived before configure.
	assert.False(t, c.Configured())
	assert.Zero(t, c.NumberOfRegions)
	assert.Zero(t, c.NumberOfConnections)
	assert.Equal(t, []int{0}, c.DelaysShape())
	assert.Equal(t, []int{0}, c.IDelaysShape())
	assert.Equal(t, []int{74}, c.HemispheresShape())
	assert.Equal(t, []int{74}, c.RegionLabelsShape())
	assert.Nil(t, c.SavedSelection)
	w00, err := c.Weights.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, w00)

	configured(t, c)
	assert.True(t, c.Configured())
	assert.Equal(t, 74, c.NumberOfRegions)
	assert.Equal(t, 76, c.NumberOfConnections)
	assert.Equal(t, []int{74, 74}, c.TractLengthsShape())
	assert.Equal(t, []int{74, 74}, c.DelaysShape())
	assert.Equal(t, "region_000", c.RegionLabels[0])
}
