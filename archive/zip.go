// SPDX-License-Identifier: MIT

package archive

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbrain/matrix"
)

// Zip compression methods understood on top of Store and Deflate.
const (
	MethodBzip2 uint16 = 12
	MethodZstd  uint16 = zstd.ZipMethodWinZip // 93
	MethodXZ    uint16 = 95
)

const (
	maxMemberBytes = 1 << 30 // decoded size cap per member
	maxNesting     = 4       // nested codec layers peeled per member
)

// memberKind identifies which array a zip member carries.
type memberKind int

const (
	kindUnknown memberKind = iota
	kindWeights
	kindTracts
	kindCentres
	kindOrientations
	kindAreas
	kindCortical
	kindHemispheres
	kindLabels
	kindUndirected
	kindSpeed
)

var kindNames = map[memberKind]string{
	kindWeights:      "weights",
	kindTracts:       "tract_lengths",
	kindCentres:      "centres",
	kindOrientations: "orientations",
	kindAreas:        "areas",
	kindCortical:     "cortical",
	kindHemispheres:  "hemispheres",
	kindLabels:       "region_labels",
	kindUndirected:   "undirected",
	kindSpeed:        "speed",
}

func (k memberKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// memberKeywords is scanned in order; the first keyword contained in the
// lower-cased base name wins.
var memberKeywords = []struct {
	keyword string
	kind    memberKind
}{
	{"weight", kindWeights},
	{"tract", kindTracts},
	{"centre", kindCentres},
	{"center", kindCentres},
	{"orientation", kindOrientations},
	{"area", kindAreas},
	{"cortical", kindCortical},
	{"hemisphere", kindHemispheres},
	{"label", kindLabels},
	{"undirected", kindUndirected},
	{"speed", kindSpeed},
}

// codecSuffixes are stripped from member names before keyword matching.
var codecSuffixes = []string{".bz2", ".gz", ".xz", ".zst", ".txt", ".csv", ".dat"}

func classify(name string) memberKind {
	base := strings.ToLower(path.Base(name))
	for trimmed := true; trimmed; {
		trimmed = false
		for _, s := range codecSuffixes {
			if strings.HasSuffix(base, s) {
				base, trimmed = strings.TrimSuffix(base, s), true
			}
		}
	}
	for _, mk := range memberKeywords {
		if strings.Contains(base, mk.keyword) {
			return mk.kind
		}
	}

	return kindUnknown
}

// skipMember filters directories and resource-fork noise.
func skipMember(f *zip.File) bool {
	if f.FileInfo().IsDir() {
		return true
	}
	if strings.HasPrefix(f.Name, "__MACOSX/") {
		return true
	}

	return strings.HasPrefix(path.Base(f.Name), ".")
}

// OpenZip loads a zip archive from disk. The file is closed on every path.
func OpenZip(name string, opts ...Option) (*Arrays, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, dataFormatf(err, "open %s", name)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, dataFormatf(err, "stat %s", name)
	}
	a, err := ReadZip(f, st.Size(), opts...)
	if err != nil {
		return nil, dataFormatf(err, "%s", name)
	}

	return a, nil
}

// ReadZip loads a zip archive from r.
func ReadZip(r io.ReaderAt, size int64, opts ...Option) (*Arrays, error) {
	cfg := newConfig(opts)

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, dataFormatf(err, "read zip")
	}
	registerDecompressors(zr)

	// Deterministic member order regardless of central-directory layout.
	files := make([]*zip.File, 0, len(zr.File))
	for _, f := range zr.File {
		if !skipMember(f) {
			files = append(files, f)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	a := &Arrays{}
	seen := make(map[memberKind]string)
	for _, f := range files {
		kind := classify(f.Name)
		if kind == kindUnknown {
			cfg.log.Debug("skipping unrecognised archive member", zap.String("member", f.Name))
			continue
		}
		if prev, dup := seen[kind]; dup {
			cfg.log.Warn("duplicate archive member ignored",
				zap.String("member", f.Name), zap.String("kept", prev), zap.Stringer("kind", kind))
			continue
		}
		seen[kind] = f.Name

		data, err := readMember(f)
		if err != nil {
			return nil, dataFormatf(err, "member %s", f.Name)
		}
		cfg.log.Debug("archive member",
			zap.String("member", f.Name),
			zap.Stringer("kind", kind),
			zap.Uint16("method", f.Method),
			zap.Int("bytes", len(data)))

		if err := a.assign(kind, data); err != nil {
			return nil, dataFormatf(err, "member %s (%s)", f.Name, kind)
		}
	}

	if a.Weights == nil {
		return nil, dataFormatf(nil, "missing required member %s", kindWeights)
	}
	if a.TractLengths == nil {
		return nil, dataFormatf(nil, "missing required member %s", kindTracts)
	}

	return a, nil
}

// assign parses data as the array named by kind and stores it in a.
func (a *Arrays) assign(kind memberKind, data []byte) error {
	var err error
	switch kind {
	case kindWeights, kindTracts:
		var rows [][]float64
		if rows, err = parseMatrix(data); err != nil {
			return err
		}
		m, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return err
		}
		if kind == kindWeights {
			a.Weights = m
		} else {
			a.TractLengths = m
		}
	case kindCentres:
		var labels []string
		if a.Centres, labels, err = parseTriples(data, true); err != nil {
			return err
		}
		if a.RegionLabels == nil {
			a.RegionLabels = labels
		}
	case kindOrientations:
		a.Orientations, _, err = parseTriples(data, false)
	case kindAreas:
		a.Areas, err = parseVector(data)
	case kindCortical:
		a.Cortical, err = parseBools(data)
	case kindHemispheres:
		a.Hemispheres, err = parseBools(data)
	case kindLabels:
		a.RegionLabels, err = parseLabels(data) // an explicit labels member wins over centres labels
	case kindUndirected:
		var v float64
		if v, err = parseScalar(data); err == nil {
			u := v != 0
			a.Undirected = &u
		}
	case kindSpeed:
		var v float64
		if v, err = parseScalar(data); err == nil {
			a.Speed = &v
		}
	}

	return err
}

// registerDecompressors adds the methods beyond Store/Deflate to one reader.
// Registration is per reader so the package never mutates global zip state.
func registerDecompressors(zr *zip.Reader) {
	zr.RegisterDecompressor(MethodBzip2, func(r io.Reader) io.ReadCloser {
		return io.NopCloser(bzip2.NewReader(r))
	})
	zr.RegisterDecompressor(MethodZstd, zstd.ZipDecompressor())
	zr.RegisterDecompressor(MethodXZ, func(r io.Reader) io.ReadCloser {
		xr, err := xz.NewReader(r)
		if err != nil {
			return errReadCloser{err}
		}
		return io.NopCloser(xr)
	})
}

// errReadCloser defers a decompressor construction error to the first Read.
type errReadCloser struct{ err error }

func (e errReadCloser) Read([]byte) (int, error) { return 0, e.err }
func (e errReadCloser) Close() error             { return nil }

// readMember returns the fully decoded payload of f, peeling nested codecs.
func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r, closeNested, err := unwrapNested(rc)
	if err != nil {
		return nil, err
	}
	defer closeNested()

	data, err := io.ReadAll(io.LimitReader(r, maxMemberBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxMemberBytes {
		return nil, errMemberTooLarge
	}

	return data, nil
}

var errMemberTooLarge = dataFormatf(nil, "member exceeds %d bytes", maxMemberBytes)

// Codec magic numbers.
var (
	magicGzip  = []byte{0x1f, 0x8b}
	magicXZ    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicZstd  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicBzip2 = []byte("BZh")
)

// unwrapNested sniffs r for a compressed payload and returns a reader over
// the innermost plain content. The returned func releases every decoder.
func unwrapNested(r io.Reader) (io.Reader, func(), error) {
	var closers []func()
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	for depth := 0; depth < maxNesting; depth++ {
		br := bufio.NewReader(r)
		head, _ := br.Peek(len(magicXZ)) // short payloads peek fewer bytes
		switch {
		case isBzip2(head):
			r = bzip2.NewReader(br)
		case bytes.HasPrefix(head, magicGzip):
			gr, err := gzip.NewReader(br)
			if err != nil {
				release()
				return nil, nil, err
			}
			closers = append(closers, func() { _ = gr.Close() })
			r = gr
		case bytes.HasPrefix(head, magicXZ):
			xr, err := xz.NewReader(br)
			if err != nil {
				release()
				return nil, nil, err
			}
			r = xr
		case bytes.HasPrefix(head, magicZstd):
			zr, err := zstd.NewReader(br)
			if err != nil {
				release()
				return nil, nil, err
			}
			closers = append(closers, zr.Close)
			r = zr
		default:
			return br, release, nil
		}
	}

	return r, release, nil
}

// isBzip2 checks "BZh" followed by a block-size digit.
func isBzip2(head []byte) bool {
	return len(head) >= 4 && bytes.HasPrefix(head, magicBzip2) && head[3] >= '1' && head[3] <= '9'
}
