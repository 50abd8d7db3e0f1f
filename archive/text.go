// SPDX-License-Identifier: MIT

package archive

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Member payloads are numpy-savetxt style text: one row per line, values
// separated by whitespace (commas are accepted too), '#' starts a comment.

// lines returns the non-empty, comment-stripped lines of data, already split
// into fields.
func lines(data []byte) ([][]string, error) {
	var out [][]string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024) // a 1000-region row is ~20 KiB
	for sc.Scan() {
		line := sc.Text()
		if k := strings.IndexByte(line, '#'); k >= 0 {
			line = line[:k]
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) > 0 {
			out = append(out, fields)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func parseFloats(fields []string, lineNo int) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d, column %d: %w", lineNo+1, i+1, err)
		}
		row[i] = v
	}

	return row, nil
}

// parseMatrix reads a rectangular table of floats.
func parseMatrix(data []byte) ([][]float64, error) {
	ls, err := lines(data)
	if err != nil {
		return nil, err
	}
	if len(ls) == 0 {
		return nil, fmt.Errorf("empty table")
	}
	rows := make([][]float64, len(ls))
	for i, fields := range ls {
		if len(fields) != len(ls[0]) {
			return nil, fmt.Errorf("line %d has %d values, want %d", i+1, len(fields), len(ls[0]))
		}
		if rows[i], err = parseFloats(fields, i); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// parseVector flattens every value of data into one vector, so both
// one-per-line and single-line layouts are accepted.
func parseVector(data []byte) ([]float64, error) {
	ls, err := lines(data)
	if err != nil {
		return nil, err
	}
	var out []float64
	for i, fields := range ls {
		row, err := parseFloats(fields, i)
		if err != nil {
			return nil, err
		}
		out = append(out, row...)
	}

	return out, nil
}

// parseBools accepts 0/1 (any number, non-zero is true) and true/false tokens.
func parseBools(data []byte) ([]bool, error) {
	ls, err := lines(data)
	if err != nil {
		return nil, err
	}
	var out []bool
	for i, fields := range ls {
		for j, f := range fields {
			switch strings.ToLower(f) {
			case "true", "t", "yes":
				out = append(out, true)
				continue
			case "false", "f", "no":
				out = append(out, false)
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", i+1, j+1, err)
			}
			out = append(out, v != 0)
		}
	}

	return out, nil
}

// parseTriples reads n rows of x y z. When withLabels is set a row may carry
// a leading non-numeric label; labels are returned only if every row has one.
func parseTriples(data []byte, withLabels bool) ([][3]float64, []string, error) {
	ls, err := lines(data)
	if err != nil {
		return nil, nil, err
	}
	xyz := make([][3]float64, len(ls))
	var labels []string
	for i, fields := range ls {
		nums := fields
		if withLabels && len(fields) == 4 {
			labels = append(labels, fields[0])
			nums = fields[1:]
		}
		if len(nums) != 3 {
			return nil, nil, fmt.Errorf("line %d has %d values, want 3", i+1, len(nums))
		}
		row, err := parseFloats(nums, i)
		if err != nil {
			return nil, nil, err
		}
		copy(xyz[i][:], row)
	}
	if len(labels) != len(xyz) {
		labels = nil
	}

	return xyz, labels, nil
}

// parseLabels returns one label per line (the first field).
func parseLabels(data []byte) ([]string, error) {
	ls, err := lines(data)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ls))
	for i, fields := range ls {
		out[i] = fields[0]
	}

	return out, nil
}

// parseScalar returns the first value of data.
func parseScalar(data []byte) (float64, error) {
	v, err := parseVector(data)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, fmt.Errorf("empty scalar")
	}

	return v[0], nil
}

// formatMatrix renders rows in the layout parseMatrix reads.
func formatMatrix(rows [][]float64) []byte {
	var b bytes.Buffer
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte('\n')
	}

	return b.Bytes()
}
