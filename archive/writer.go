// SPDX-License-Identifier: MIT

package archive

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Codec compresses a member payload before it is stored in the zip, which
// produces the nested layout ReadZip unwraps. bzip2 has no encoder here;
// use MethodBzip2 archives produced elsewhere.
type Codec string

// Member payload codecs.
const (
	CodecNone Codec = ""
	CodecGzip Codec = "gzip"
	CodecXZ   Codec = "xz"
	CodecZstd Codec = "zstd"
)

var codecExt = map[Codec]string{CodecGzip: ".gz", CodecXZ: ".xz", CodecZstd: ".zst"}

// WriteOption configures WriteZip.
type WriteOption func(*writeConfig)

type writeConfig struct {
	method   uint16
	codec    Codec
	modified time.Time
}

// WithMethod selects the zip-level method: zip.Store, zip.Deflate,
// MethodZstd or MethodXZ. Panics on MethodBzip2 or unknown methods.
func WithMethod(method uint16) WriteOption {
	switch method {
	case zip.Store, zip.Deflate, MethodZstd, MethodXZ:
	default:
		panic("archive: WithMethod: unsupported zip method " + strconv.Itoa(int(method)))
	}
	return func(c *writeConfig) { c.method = method }
}

// ParseCodec maps "none" (or ""), "gzip", "xz" and "zstd" to a Codec.
func ParseCodec(s string) (Codec, error) {
	c := Codec(strings.ToLower(strings.TrimSpace(s)))
	if c == "none" || c == CodecNone {
		return CodecNone, nil
	}
	if _, ok := codecExt[c]; !ok {
		return CodecNone, errors.Newf("archive: unknown codec %q", s)
	}

	return c, nil
}

// WithCodec compresses every member payload with c before zipping.
func WithCodec(c Codec) WriteOption {
	if _, ok := codecExt[c]; !ok && c != CodecNone {
		panic("archive: WithCodec: unknown codec " + string(c))
	}
	return func(cfg *writeConfig) { cfg.codec = c }
}

// WithModified stamps every member with t (default: zero time, for
// reproducible archives).
func WithModified(t time.Time) WriteOption {
	return func(c *writeConfig) { c.modified = t }
}

// WriteZip serializes a as a zip archive readable by ReadZip.
func WriteZip(w io.Writer, a *Arrays, opts ...WriteOption) error {
	if a == nil || a.Weights == nil || a.TractLengths == nil {
		return dataFormatf(nil, "write: weights and tract lengths are required")
	}
	cfg := writeConfig{method: zip.Deflate}
	for _, o := range opts {
		o(&cfg)
	}

	zw := zip.NewWriter(w)
	zw.RegisterCompressor(MethodZstd, zstd.ZipCompressor())
	zw.RegisterCompressor(MethodXZ, func(w io.Writer) (io.WriteCloser, error) {
		return &lazyXZ{w: w}, nil
	})

	for _, m := range a.members() {
		payload, err := encodeCodec(cfg.codec, m.data)
		if err != nil {
			return dataFormatf(err, "write %s", m.name)
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     m.name + codecExt[cfg.codec],
			Method:   cfg.method,
			Modified: cfg.modified,
		})
		if err != nil {
			return dataFormatf(err, "write %s", m.name)
		}
		if _, err := fw.Write(payload); err != nil {
			return dataFormatf(err, "write %s", m.name)
		}
	}

	if err := zw.Close(); err != nil {
		return dataFormatf(err, "write zip")
	}

	return nil
}

// CreateZip writes a to a new file at name.
func CreateZip(name string, a *Arrays, opts ...WriteOption) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return dataFormatf(err, "create %s", name)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = dataFormatf(cerr, "close %s", name)
		}
	}()

	return WriteZip(f, a, opts...)
}

// lazyXZ defers xz.NewWriter to the first Write or Close. The zip writer
// builds a member's compressor before it writes the local file header, and
// xz.NewWriter emits the stream header immediately.
type lazyXZ struct {
	w  io.Writer
	xw *xz.Writer
}

func (l *lazyXZ) open() error {
	if l.xw != nil {
		return nil
	}
	xw, err := xz.NewWriter(l.w)
	if err != nil {
		return err
	}
	l.xw = xw

	return nil
}

func (l *lazyXZ) Write(p []byte) (int, error) {
	if err := l.open(); err != nil {
		return 0, err
	}

	return l.xw.Write(p)
}

func (l *lazyXZ) Close() error {
	if err := l.open(); err != nil {
		return err
	}

	return l.xw.Close()
}

type member struct {
	name string
	data []byte
}

// members renders the populated arrays in a fixed order.
func (a *Arrays) members() []member {
	out := []member{
		{"weights.txt", formatMatrix(a.Weights.ToRows())},
		{"tract_lengths.txt", formatMatrix(a.TractLengths.ToRows())},
	}
	if len(a.Centres) > 0 {
		withLabels := len(a.RegionLabels) == len(a.Centres)
		rows := make([][]float64, len(a.Centres))
		for i, c := range a.Centres {
			c := c
			rows[i] = c[:]
		}
		data := formatMatrix(rows)
		if withLabels {
			lines := bytes.Split(bytes.TrimSuffix(data, []byte("\n")), []byte("\n"))
			var b bytes.Buffer
			for i, l := range lines {
				b.WriteString(a.RegionLabels[i])
				b.WriteByte(' ')
				b.Write(l)
				b.WriteByte('\n')
			}
			data = b.Bytes()
		}
		out = append(out, member{"centres.txt", data})
	}
	if len(a.RegionLabels) > 0 && len(a.RegionLabels) != len(a.Centres) {
		var b bytes.Buffer
		for _, l := range a.RegionLabels {
			b.WriteString(l)
			b.WriteByte('\n')
		}
		out = append(out, member{"region_labels.txt", b.Bytes()})
	}
	if len(a.Orientations) > 0 {
		rows := make([][]float64, len(a.Orientations))
		for i, o := range a.Orientations {
			o := o
			rows[i] = o[:]
		}
		out = append(out, member{"average_orientations.txt", formatMatrix(rows)})
	}
	if len(a.Areas) > 0 {
		out = append(out, member{"areas.txt", formatColumn(a.Areas)})
	}
	if len(a.Cortical) > 0 {
		out = append(out, member{"cortical.txt", formatBools(a.Cortical)})
	}
	if len(a.Hemispheres) > 0 {
		out = append(out, member{"hemispheres.txt", formatBools(a.Hemispheres)})
	}
	if a.Undirected != nil {
		out = append(out, member{"undirected.txt", formatBools([]bool{*a.Undirected})})
	}
	if a.Speed != nil {
		out = append(out, member{"speed.txt", formatColumn([]float64{*a.Speed})})
	}

	return out
}

func formatColumn(x []float64) []byte {
	rows := make([][]float64, len(x))
	for i := range x {
		rows[i] = x[i : i+1]
	}

	return formatMatrix(rows)
}

func formatBools(x []bool) []byte {
	var b bytes.Buffer
	for _, v := range x {
		if v {
			b.WriteString("1\n")
		} else {
			b.WriteString("0\n")
		}
	}

	return b.Bytes()
}

// encodeCodec compresses data with c; CodecNone returns data unchanged.
func encodeCodec(c Codec, data []byte) ([]byte, error) {
	var (
		buf bytes.Buffer
		wc  io.WriteCloser
		err error
	)
	switch c {
	case CodecNone:
		return data, nil
	case CodecGzip:
		wc = gzip.NewWriter(&buf)
	case CodecXZ:
		wc, err = xz.NewWriter(&buf)
	case CodecZstd:
		wc, err = zstd.NewWriter(&buf)
	default:
		return nil, errors.Newf("unknown codec %q", string(c))
	}
	if err != nil {
		return nil, err
	}
	if _, err := wc.Write(data); err != nil {
		return nil, err
	}
	if err := wc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
