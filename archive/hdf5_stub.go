// SPDX-License-Identifier: MIT

//go:build !hdf5

package archive

import (
	"os"

	"github.com/cockroachdb/errors"
)

// HDF5Supported reports whether this build can read HDF5 containers.
const HDF5Supported = false

// OpenHDF5 fails with ErrDataFormat: this binary was built without libhdf5.
func OpenHDF5(path string, _ ...Option) (*Arrays, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, dataFormatf(err, "open %s", path)
	}

	return nil, errors.WithHint(
		dataFormatf(nil, "%s: HDF5 support is not compiled in", path),
		"rebuild with -tags hdf5 (requires libhdf5)")
}

// WriteHDF5 fails with ErrDataFormat: this binary was built without libhdf5.
func WriteHDF5(path string, _ *Arrays) error {
	return errors.WithHint(
		dataFormatf(nil, "%s: HDF5 support is not compiled in", path),
		"rebuild with -tags hdf5 (requires libhdf5)")
}
