// SPDX-License-Identifier: MIT

// Package archive reads and writes connectivity archives.
//
// Two containers are supported:
//
//   - zip: one whitespace-delimited text member per array. Members may be
//     stored, deflated, or compressed with bzip2 (method 12), zstd (93) or
//     xz (95); a member's payload may itself be bzip2/gzip/xz/zstd compressed
//     and is decoded transparently.
//   - HDF5: one dataset per array (requires building with -tags hdf5).
//
// Loaders only return raw arrays. Deriving delays, counts or labels is the
// job of the connectivity package.
package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbrain/matrix"
)

// Arrays holds the raw named arrays of one archive. Absent members stay at
// their zero value (nil slices, nil matrices, nil pointers).
type Arrays struct {
	Weights      *matrix.Dense // required
	TractLengths *matrix.Dense // required for zip archives
	Centres      [][3]float64
	Orientations [][3]float64
	RegionLabels []string
	Areas        []float64
	Cortical     []bool
	Hemispheres  []bool
	Undirected   *bool    // nil when the archive does not record it
	Speed        *float64 // nil when the archive does not record it
}

// Option configures a loader.
type Option func(*config)

type config struct {
	log *zap.Logger
}

// WithLogger routes loader diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("archive: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}

func newConfig(opts []Option) config {
	c := config{log: zap.NewNop()}
	for _, o := range opts {
		o(&c)
	}

	return c
}

var zipMagic = []byte("PK\x03\x04")

// Open loads an archive from path. The container is chosen by extension
// (.zip, .h5, .hdf5); unknown extensions are sniffed for the zip signature.
func Open(path string, opts ...Option) (*Arrays, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return OpenZip(path, opts...)
	case ".h5", ".hdf5":
		return OpenHDF5(path, opts...)
	}

	head := make([]byte, len(zipMagic))
	f, err := os.Open(path)
	if err != nil {
		return nil, dataFormatf(err, "open %s", path)
	}
	n, _ := f.Read(head)
	_ = f.Close()
	if n == len(zipMagic) && bytes.Equal(head, zipMagic) {
		return OpenZip(path, opts...)
	}

	return nil, dataFormatf(nil, "%s: unsupported archive type", path)
}
