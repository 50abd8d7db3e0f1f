// SPDX-License-Identifier: MIT

//go:build hdf5

package archive

import (
	"bytes"

	"go.uber.org/zap"
	"gonum.org/v1/hdf5"

	"github.com/katalvlaran/lvbrain/matrix"
)

// HDF5Supported reports whether this build can read HDF5 containers.
const HDF5Supported = true

// Dataset names inside a connectivity HDF5 container.
const (
	h5Weights      = "weights"
	h5Tracts       = "tract_lengths"
	h5Centres      = "centres"
	h5Orientations = "orientations"
	h5Labels       = "region_labels"
	h5Areas        = "areas"
	h5Cortical     = "cortical"
	h5Hemispheres  = "hemispheres"
	h5Speed        = "speed"
	h5Undirected   = "undirected" // root attribute
)

// OpenHDF5 loads a connectivity HDF5 container. Weights are required; every
// other dataset is optional, and derived arrays (delays, idelays) are never
// read so the lazy-configure contract holds for edited files too.
//
// Numeric datasets may be stored as float32/float64, 1/2/4/8-byte integers or
// 1-byte enums (booleans); region labels must be fixed-length strings.
func OpenHDF5(path string, opts ...Option) (*Arrays, error) {
	cfg := newConfig(opts)

	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, dataFormatf(err, "open %s", path)
	}
	defer f.Close()

	a := &Arrays{}
	if a.Weights, err = readH5Matrix(f, h5Weights); err != nil {
		return nil, dataFormatf(err, "%s: dataset %s", path, h5Weights)
	}
	if f.LinkExists(h5Tracts) {
		if a.TractLengths, err = readH5Matrix(f, h5Tracts); err != nil {
			return nil, dataFormatf(err, "%s: dataset %s", path, h5Tracts)
		}
	}
	if a.Centres, err = readH5Triples(f, h5Centres); err != nil {
		return nil, dataFormatf(err, "%s: dataset %s", path, h5Centres)
	}
	if a.Orientations, err = readH5Triples(f, h5Orientations); err != nil {
		return nil, dataFormatf(err, "%s: dataset %s", path, h5Orientations)
	}
	if a.Areas, err = readH5Floats(f, h5Areas); err != nil {
		return nil, dataFormatf(err, "%s: dataset %s", path, h5Areas)
	}
	if a.Cortical, err = readH5Bools(f, h5Cortical); err != nil {
		return nil, dataFormatf(err, "%s: dataset %s", path, h5Cortical)
	}
	if a.Hemispheres, err = readH5Bools(f, h5Hemispheres); err != nil {
		return nil, dataFormatf(err, "%s: dataset %s", path, h5Hemispheres)
	}
	speed, err := readH5Floats(f, h5Speed)
	if err != nil {
		return nil, dataFormatf(err, "%s: dataset %s", path, h5Speed)
	}
	if len(speed) == 1 {
		a.Speed = &speed[0]
	}
	if f.LinkExists(h5Labels) {
		// Labels are optional: configure recomputes them when unreadable.
		if labels, err := readH5Strings(f, h5Labels); err == nil {
			a.RegionLabels = labels
		} else {
			cfg.log.Warn("region labels unreadable, leaving empty", zap.String("file", path), zap.Error(err))
		}
	}
	if root, err := f.OpenGroup("/"); err == nil {
		if attr, err := root.OpenAttribute(h5Undirected); err == nil {
			var v int32
			if err := attr.Read(&v, hdf5.T_NATIVE_INT32); err == nil {
				u := v != 0
				a.Undirected = &u
			}
			_ = attr.Close()
		}
		_ = root.Close()
	}

	return a, nil
}

// readH5Floats reads a dataset into a flat vector; a missing dataset yields nil.
func readH5Floats(f *hdf5.File, name string) ([]float64, error) {
	v, _, err := readH5Raw(f, name)
	return v, err
}

func readH5Raw(f *hdf5.File, name string) ([]float64, []uint, error) {
	if !f.LinkExists(name) {
		return nil, nil, nil
	}
	ds, err := f.OpenDataset(name)
	if err != nil {
		return nil, nil, err
	}
	defer ds.Close()

	space := ds.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, nil, err
	}
	n := 1
	for _, d := range dims {
		n *= int(d)
	}
	if n == 0 {
		return nil, dims, nil
	}
	buf, err := readH5Numbers(ds, n)
	if err != nil {
		return nil, nil, err
	}

	return buf, dims, nil
}

// readH5Numbers reads n elements and widens them to float64. Dataset.Read
// uses the file datatype as the memory type, so the Go buffer must match it.
func readH5Numbers(ds *hdf5.Dataset, n int) ([]float64, error) {
	dt, err := ds.Datatype()
	if err != nil {
		return nil, err
	}
	defer dt.Close()

	out := make([]float64, n)
	class, size := dt.Class(), dt.Size()
	switch {
	case class == hdf5.T_FLOAT && size == 8:
		if err := ds.Read(&out); err != nil {
			return nil, err
		}
	case class == hdf5.T_FLOAT && size == 4:
		buf := make([]float32, n)
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	case (class == hdf5.T_INTEGER || class == hdf5.T_ENUM) && size == 1:
		buf := make([]int8, n)
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	case class == hdf5.T_INTEGER && size == 2:
		buf := make([]int16, n)
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	case class == hdf5.T_INTEGER && size == 4:
		buf := make([]int32, n)
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	case class == hdf5.T_INTEGER && size == 8:
		buf := make([]int64, n)
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	default:
		return nil, dataFormatf(nil, "unsupported datatype class %d size %d", class, size)
	}

	return out, nil
}

func readH5Matrix(f *hdf5.File, name string) (*matrix.Dense, error) {
	if !f.LinkExists(name) {
		return nil, ErrDataFormat
	}
	buf, dims, err := readH5Raw(f, name)
	if err != nil {
		return nil, err
	}
	if len(dims) != 2 {
		return nil, dataFormatf(nil, "rank %d, want 2", len(dims))
	}

	return matrix.NewDenseFromData(int(dims[0]), int(dims[1]), buf)
}

func readH5Triples(f *hdf5.File, name string) ([][3]float64, error) {
	buf, dims, err := readH5Raw(f, name)
	if err != nil || buf == nil {
		return nil, err
	}
	if len(dims) != 2 || dims[1] != 3 {
		return nil, dataFormatf(nil, "shape %v, want (n, 3)", dims)
	}
	out := make([][3]float64, dims[0])
	for i := range out {
		copy(out[i][:], buf[3*i:3*i+3])
	}

	return out, nil
}

func readH5Bools(f *hdf5.File, name string) ([]bool, error) {
	buf, err := readH5Floats(f, name)
	if err != nil || buf == nil {
		return nil, err
	}
	out := make([]bool, len(buf))
	for i, v := range buf {
		out[i] = v != 0
	}

	return out, nil
}

// readH5Strings decodes a rank-1 fixed-length string dataset. Padding NULs
// and spaces are trimmed.
func readH5Strings(f *hdf5.File, name string) ([]string, error) {
	ds, err := f.OpenDataset(name)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	dt, err := ds.Datatype()
	if err != nil {
		return nil, err
	}
	defer dt.Close()
	if dt.Class() != hdf5.T_STRING || dt.IsVariableStr() {
		return nil, dataFormatf(nil, "labels must be fixed-length strings (class %d)", dt.Class())
	}
	width := int(dt.Size())

	space := ds.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, err
	}
	if len(dims) != 1 {
		return nil, dataFormatf(nil, "rank %d, want 1", len(dims))
	}
	n := int(dims[0])
	if n == 0 || width == 0 {
		return nil, nil
	}
	raw := make([]byte, n*width)
	if err := ds.Read(&raw); err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		cell := raw[i*width : (i+1)*width]
		if k := bytes.IndexByte(cell, 0); k >= 0 {
			cell = cell[:k]
		}
		out[i] = string(bytes.TrimRight(cell, " "))
	}

	return out, nil
}

// WriteHDF5 writes a to a new HDF5 file at path, one float64 dataset per
// numeric array, labels as a fixed-length string dataset and the undirected
// flag as a root attribute. The file is readable by OpenHDF5.
func WriteHDF5(path string, a *Arrays) error {
	if a == nil || a.Weights == nil {
		return dataFormatf(nil, "write %s: weights are required", path)
	}
	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return dataFormatf(err, "create %s", path)
	}
	defer f.Close()

	put := func(name string, data []float64, dims ...uint) error {
		if len(data) == 0 {
			return nil
		}
		if err := writeH5Floats(f, name, data, dims); err != nil {
			return dataFormatf(err, "%s: dataset %s", path, name)
		}
		return nil
	}
	flat := func(m *matrix.Dense) []float64 {
		out := make([]float64, 0, m.Rows()*m.Cols())
		for _, row := range m.ToRows() {
			out = append(out, row...)
		}
		return out
	}
	triples := func(x [][3]float64) []float64 {
		out := make([]float64, 0, 3*len(x))
		for _, v := range x {
			out = append(out, v[:]...)
		}
		return out
	}
	bools := func(x []bool) []float64 {
		out := make([]float64, len(x))
		for i, v := range x {
			if v {
				out[i] = 1
			}
		}
		return out
	}

	w := a.Weights
	if err := put(h5Weights, flat(w), uint(w.Rows()), uint(w.Cols())); err != nil {
		return err
	}
	if tl := a.TractLengths; tl != nil {
		if err := put(h5Tracts, flat(tl), uint(tl.Rows()), uint(tl.Cols())); err != nil {
			return err
		}
	}
	if err := put(h5Centres, triples(a.Centres), uint(len(a.Centres)), 3); err != nil {
		return err
	}
	if err := put(h5Orientations, triples(a.Orientations), uint(len(a.Orientations)), 3); err != nil {
		return err
	}
	if err := put(h5Areas, a.Areas, uint(len(a.Areas))); err != nil {
		return err
	}
	if err := put(h5Cortical, bools(a.Cortical), uint(len(a.Cortical))); err != nil {
		return err
	}
	if err := put(h5Hemispheres, bools(a.Hemispheres), uint(len(a.Hemispheres))); err != nil {
		return err
	}
	if a.Speed != nil {
		if err := put(h5Speed, []float64{*a.Speed}, 1); err != nil {
			return err
		}
	}
	if len(a.RegionLabels) > 0 {
		if err := writeH5Strings(f, h5Labels, a.RegionLabels); err != nil {
			return dataFormatf(err, "%s: dataset %s", path, h5Labels)
		}
	}
	if a.Undirected != nil {
		if err := writeH5Flag(f, h5Undirected, *a.Undirected); err != nil {
			return dataFormatf(err, "%s: attribute %s", path, h5Undirected)
		}
	}

	return nil
}

func writeH5Floats(f *hdf5.File, name string, data []float64, dims []uint) error {
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return err
	}
	defer space.Close()
	ds, err := f.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		return err
	}
	defer ds.Close()

	return ds.Write(&data)
}

// writeH5Strings stores labels NUL-padded to the longest label.
func writeH5Strings(f *hdf5.File, name string, labels []string) error {
	width := 1
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}
	raw := make([]byte, len(labels)*width)
	for i, l := range labels {
		copy(raw[i*width:], l)
	}

	dt, err := hdf5.T_C_S1.Copy()
	if err != nil {
		return err
	}
	defer dt.Close()
	if err := dt.SetSize(uint(width)); err != nil {
		return err
	}
	space, err := hdf5.CreateSimpleDataspace([]uint{uint(len(labels))}, nil)
	if err != nil {
		return err
	}
	defer space.Close()
	ds, err := f.CreateDataset(name, dt, space)
	if err != nil {
		return err
	}
	defer ds.Close()

	return ds.Write(&raw)
}

func writeH5Flag(f *hdf5.File, name string, v bool) error {
	root, err := f.OpenGroup("/")
	if err != nil {
		return err
	}
	defer root.Close()
	space, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return err
	}
	defer space.Close()
	attr, err := root.CreateAttribute(name, hdf5.T_NATIVE_INT32, space)
	if err != nil {
		return err
	}
	defer attr.Close()
	var x int32
	if v {
		x = 1
	}

	return attr.Write(&x, hdf5.T_NATIVE_INT32)
}
