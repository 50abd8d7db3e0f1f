// SPDX-License-Identifier: MIT

package commands_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbrain/cmd/lvbrain/commands"
	"github.com/katalvlaran/lvbrain/connectivity"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func runJSON(t *testing.T, args ...string) map[string]any {
	t.Helper()
	out, err := run(t, append(args, "--format", "json")...)
	require.NoError(t, err, out)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	return got
}

func TestDefaultCmd(t *testing.T) {
	got := runJSON(t, "default")
	assert.Equal(t, 76.0, got[connectivity.KeyRegions])
	assert.Equal(t, 1560.0, got[connectivity.KeyConnections])
	assert.Equal(t, 3.0, got["Weights (max)"])
}

func TestDefaultCmd_Table(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	out, err := run(t, "default")
	require.NoError(t, err)
	assert.Contains(t, out, "Default connectivity")
	assert.Contains(t, out, "Number of connections")
	assert.Contains(t, out, "1,560")
}

func TestSurrogateCmd_WritesArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.zip")

	got := runJSON(t, "surrogate", "74", "--out", path, "--method", "zstd", "--codec", "gzip")
	assert.Equal(t, 74.0, got[connectivity.KeyRegions])
	assert.Equal(t, 75.0, got[connectivity.KeyConnections])

	info := runJSON(t, "info", path)
	assert.Equal(t, 75.0, info[connectivity.KeyConnections])
	assert.Equal(t, 42.0, info["Tract lengths (max)"])

	xzPath := filepath.Join(t.TempDir(), "ring_xz.zip")
	runJSON(t, "surrogate", "10", "--out", xzPath, "--method", "xz")
	info = runJSON(t, "info", xzPath)
	assert.Equal(t, 10.0, info[connectivity.KeyRegions])
	assert.Equal(t, 11.0, info[connectivity.KeyConnections])
}

func TestSurrogateCmd_Options(t *testing.T) {
	got := runJSON(t, "surrogate", "6", "--motif", "all-to-all", "--undirected", "--speed", "6")
	assert.Equal(t, 30.0, got[connectivity.KeyConnections])
	assert.Equal(t, true, got[connectivity.KeyUndirected])
	assert.Equal(t, 6.0, got[connectivity.KeySpeed])

	for _, args := range [][]string{
		{"surrogate", "2"},
		{"surrogate", "x"},
		{"surrogate", "5", "--motif", "star"},
		{"surrogate", "5", "--out", filepath.Join(t.TempDir(), "a.zip"), "--method", "bzip2"},
		{"surrogate", "5", "--out", filepath.Join(t.TempDir(), "a.zip"), "--codec", "lz4"},
	} {
		_, err := run(t, args...)
		require.ErrorIs(t, err, connectivity.ErrInvalidArgument, "%v", args)
	}
}

func TestScaleCmd(t *testing.T) {
	path := filepath.Join("..", "..", "..", "connectivity", "testdata", "connectivity_192.zip")

	got := runJSON(t, "scale", path, "--mode", "tract")
	assert.Equal(t, "tract", got["Scale mode"])
	assert.Equal(t, 1.0, got["Scaled weights (max)"])
	assert.Equal(t, 192.0, got[connectivity.KeyRegions])

	_, err := run(t, "scale", path, "--mode", "log")
	require.ErrorIs(t, err, connectivity.ErrInvalidArgument)
}

func TestInfoCmd_Errors(t *testing.T) {
	_, err := run(t, "info", filepath.Join(t.TempDir(), "absent.zip"))
	require.ErrorIs(t, err, connectivity.ErrDataFormat)
	detail := fmt.Sprintf("%+v", err)
	assert.Contains(t, detail, "secondary error attachment")
	assert.Contains(t, detail, "*fs.PathError")

	_, err = run(t, "info")
	require.Error(t, err)
}

func TestSpectralCmd(t *testing.T) {
	got := runJSON(t, "spectral", "fourier")
	assert.Equal(t, "FourierSpectrum", got["Spectral type"])
	assert.Equal(t, 0.01, got["Frequency step"])
	assert.Equal(t, 0.5, got["Maximum frequency"])

	got = runJSON(t, "spectral", "wavelet", "--sample-period", "7.8125")
	assert.Equal(t, 4.0, got["Number of scales"])
	assert.Equal(t, 0.068, got["Maximum frequency"])

	got = runJSON(t, "spectral", "complex-coherence", "--segment-length", "5")
	assert.Equal(t, 0.2, got["Frequency step"])

	_, err := run(t, "spectral", "bispectrum")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "lvbrain.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  format: yaml\nsurrogate:\n  regions: 5\n  motif: linear\n"), 0o600))

	out, err := run(t, "--config", cfg, "surrogate")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 5, got[connectivity.KeyRegions])
	assert.Equal(t, 4, got[connectivity.KeyConnections])

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "default")
	require.Error(t, err)
}
