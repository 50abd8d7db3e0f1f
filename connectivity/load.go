// SPDX-License-Identifier: MIT

package connectivity

import (
	"bytes"
	_ "embed"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbrain/archive"
)

// DefaultDataset is the name of the bundled 76-region archive.
const DefaultDataset = "connectivity_76.zip"

//go:embed data/connectivity_76.zip
var defaultArchive []byte

// LoadDefault returns the bundled 76-region connectivity, not configured.
func LoadDefault(opts ...Option) (*Connectivity, error) {
	cfg := newConfig(opts)
	a, err := archive.ReadZip(bytes.NewReader(defaultArchive), int64(len(defaultArchive)), archive.WithLogger(cfg.log))
	if err != nil {
		return nil, err
	}
	c := fromArrays(a, cfg)
	cfg.log.Debug("default connectivity loaded", zap.String("dataset", DefaultDataset), zap.String("gid", c.GID))

	return c, nil
}

// FromFile loads a zip or HDF5 archive. The result is not configured.
// A speed stored in the archive wins over WithSpeed.
//
// Errors: ErrDataFormat for unreadable or incomplete archives.
func FromFile(path string, opts ...Option) (*Connectivity, error) {
	cfg := newConfig(opts)
	a, err := archive.Open(path, archive.WithLogger(cfg.log))
	if err != nil {
		return nil, err
	}
	c := fromArrays(a, cfg)
	cfg.log.Debug("connectivity loaded", zap.String("path", path), zap.String("gid", c.GID))

	return c, nil
}

// WriteZip exports the primary arrays as a zip archive readable by FromFile.
func (c *Connectivity) WriteZip(w io.Writer, opts ...archive.WriteOption) error {
	if c.Weights == nil {
		return validationf(nil, "export of a connectivity without weights")
	}

	return archive.WriteZip(w, c.ToArrays(), opts...)
}

// SaveZip writes the archive to a file.
func (c *Connectivity) SaveZip(path string, opts ...archive.WriteOption) error {
	if c.Weights == nil {
		return validationf(nil, "export of a connectivity without weights")
	}

	return archive.CreateZip(path, c.ToArrays(), opts...)
}

// SaveHDF5 writes the primary arrays to an HDF5 file readable by FromFile.
// Builds without the hdf5 tag return ErrDataFormat.
func (c *Connectivity) SaveHDF5(path string) error {
	if c.Weights == nil {
		return validationf(nil, "export of a connectivity without weights")
	}

	return archive.WriteHDF5(path, c.ToArrays())
}
