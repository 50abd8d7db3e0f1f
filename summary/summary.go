// SPDX-License-Identifier: MIT

// Package summary holds the display-oriented key/value mapping produced by
// connectivity and spectral datatypes, and encodes it for reporting.
//
// Info is not part of any structural data model: it is computed on demand
// and never read back.
package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat and Encode for unsupported formats.
var ErrUnknownFormat = errors.New("summary: unknown output format")

// Format names an Info encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat maps a user-supplied name ("json", "YAML", "yml", ...) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("summary: %q: %w", s, ErrUnknownFormat)
}

// Info maps human-readable field names ("Number of regions") to values.
type Info map[string]any

// Keys returns the keys in lexical order.
func (i Info) Keys() []string {
	keys := make([]string, 0, len(i))
	for k := range i {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Merge copies every entry of other into i, overwriting duplicates, and returns i.
func (i Info) Merge(other Info) Info {
	for k, v := range other {
		i[k] = v
	}

	return i
}

// String renders "key: value" lines in key order.
func (i Info) String() string {
	var b strings.Builder
	for _, k := range i.Keys() {
		fmt.Fprintf(&b, "%s: %v\n", k, i[k])
	}

	return b.String()
}

// Encode writes i to w in the requested format.
// TOML has no null, so nil values are omitted there.
func (i Info) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any(i)) // encoding/json sorts map keys
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(i)); err != nil {
			return fmt.Errorf("summary: yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		clean := make(map[string]any, len(i))
		for k, v := range i {
			if v != nil {
				clean[k] = v
			}
		}
		if err := toml.NewEncoder(w).Encode(clean); err != nil {
			return fmt.Errorf("summary: toml: %w", err)
		}
		return nil
	}

	return fmt.Errorf("summary: %q: %w", f, ErrUnknownFormat)
}
