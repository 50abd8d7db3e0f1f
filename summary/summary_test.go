// SPDX-License-Identifier: MIT

package summary_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbrain/summary"
)

func sample() summary.Info {
	return summary.Info{
		"Number of regions":     76,
		"Undirected":            false,
		"Speed":                 3.0,
		"Spectral type":         "FourierSpectrum",
		"Aggregation functions": nil,
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]summary.Format{
		"json":  summary.FormatJSON,
		"YAML":  summary.FormatYAML,
		"yml":   summary.FormatYAML,
		" toml": summary.FormatTOML,
	} {
		got, err := summary.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := summary.ParseFormat("xml")
	require.ErrorIs(t, err, summary.ErrUnknownFormat)
}

func TestInfo_KeysAndString(t *testing.T) {
	t.Parallel()

	info := sample()
	assert.Equal(t, []string{
		"Aggregation functions", "Number of regions", "Spectral type", "Speed", "Undirected",
	}, info.Keys())
	assert.Contains(t, info.String(), "Number of regions: 76\n")

	info.Merge(summary.Info{"Speed": 4.0, "Source": ""})
	assert.Equal(t, 4.0, info["Speed"])
	assert.Equal(t, "", info["Source"])
}

func TestInfo_EncodeJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, sample().Encode(&buf, summary.FormatJSON))

	var back map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, float64(76), back["Number of regions"])
	assert.Nil(t, back["Aggregation functions"])
}

func TestInfo_EncodeYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, sample().Encode(&buf, summary.FormatYAML))

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, 76, back["Number of regions"])
	assert.Equal(t, "FourierSpectrum", back["Spectral type"])
}

func TestInfo_EncodeTOMLSkipsNil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, sample().Encode(&buf, summary.FormatTOML))

	var back map[string]any
	_, err := toml.Decode(buf.String(), &back)
	require.NoError(t, err)
	assert.Equal(t, int64(76), back["Number of regions"])
	assert.NotContains(t, back, "Aggregation functions")
}

func TestInfo_EncodeUnknown(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, sample().Encode(&bytes.Buffer{}, "csv"), summary.ErrUnknownFormat)
}
