// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbrain/matrix"
	"github.com/katalvlaran/lvbrain/spectral"
)

func randomDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(t, err)
	return m
}

func source(t *testing.T) *spectral.TimeSeries {
	t.Helper()
	return spectral.NewTimeSeries(randomDense(t, 10, 10))
}

func TestFourierSpectrum(t *testing.T) {
	t.Parallel()

	fs := &spectral.FourierSpectrum{Source: source(t), SegmentLength: 100}
	require.NoError(t, fs.Configure())

	info := fs.SummaryInfo()
	assert.Equal(t, 0.01, info["Frequency step"])
	assert.Equal(t, 0.5, info["Maximum frequency"])
	assert.Equal(t, 100.0, info["Segment length"])
	assert.Equal(t, "", info["Windowing function"])
	assert.Equal(t, "", info[spectral.KeySource])
	assert.Equal(t, "FourierSpectrum", info[spectral.KeyType])

	assert.Nil(t, fs.AggregationFunctions)
	assert.Empty(t, fs.NormalisedAveragePower)
	assert.Equal(t, []int{0}, fs.Shape())
	assert.NotNil(t, fs.Source)
	require.Len(t, fs.Frequency, 50)
	assert.Equal(t, 0.01, fs.Frequency[0])
	assert.InDelta(t, 0.5, fs.Frequency[49], 1e-12)
}

func TestWaveletCoefficients(t *testing.T) {
	t.Parallel()

	wc := &spectral.WaveletCoefficients{
		Source:        source(t),
		Mother:        "morlet",
		SamplePeriod:  7.8125,
		Frequencies:   []float64{0.008, 0.028, 0.048, 0.068},
		Normalisation: "energy",
		QRatio:        5.0,
		ArrayData:     randomDense(t, 10, 10),
	}
	require.NoError(t, wc.Configure())

	info := wc.SummaryInfo()
	assert.Equal(t, 0.068, info["Maximum frequency"])
	assert.Equal(t, 0.008, info["Minimum frequency"])
	assert.Equal(t, "energy", info["Normalisation"])
	assert.Equal(t, 4, info["Number of scales"])
	assert.Equal(t, 5.0, info["Q-ratio"])
	assert.Equal(t, 7.8125, info["Sample period"])
	assert.Equal(t, "WaveletCoefficients", info[spectral.KeyType])
	assert.Equal(t, "morlet", info["Wavelet type"])
	assert.Equal(t, []int{10, 10}, wc.Shape())
}

func TestCoherenceSpectrum(t *testing.T) {
	t.Parallel()

	cs := &spectral.CoherenceSpectrum{
		Source:    source(t),
		NFFT:      4,
		ArrayData: randomDense(t, 10, 10),
		Frequency: make([]float64, 10),
	}
	// Summary info does not need Configure.
	info := cs.SummaryInfo()
	assert.Equal(t, 10, info["Number of frequencies"])
	assert.Equal(t, "CoherenceSpectrum", info[spectral.KeyType])
	assert.Equal(t, 4, info["FFT length (time-points)"])
	assert.Equal(t, "", info[spectral.KeySource])
	assert.Equal(t, []int{10, 10}, cs.Shape())
	require.NoError(t, cs.Configure())
}

func TestComplexCoherenceSpectrum(t *testing.T) {
	t.Parallel()

	cc := &spectral.ComplexCoherenceSpectrum{
		Source:        source(t),
		ArrayData:     randomDense(t, 10, 10),
		CrossSpectrum: randomDense(t, 10, 10),
		EpochLength:   10,
		SegmentLength: 5,
	}
	info := cc.SummaryInfo()
	assert.Equal(t, 0.2, info["Frequency step"])
	assert.Equal(t, 0.5, info["Maximum frequency"])
	assert.Equal(t, "", info[spectral.KeySource])
	assert.Equal(t, "ComplexCoherenceSpectrum", info[spectral.KeyType])
	assert.Nil(t, cc.AggregationFunctions)
	assert.Equal(t, "", cc.WindowingFunction)
	assert.Equal(t, []int{10, 10}, cc.Shape())
	require.NoError(t, cc.Configure())
}

func TestConfigureErrors(t *testing.T) {
	t.Parallel()

	src := source(t)
	for _, tc := range []struct {
		name string
		dt   spectral.Datatype
		want error
	}{
		{"fourier nil source", &spectral.FourierSpectrum{SegmentLength: 1}, spectral.ErrNilSource},
		{"fourier no segment", &spectral.FourierSpectrum{Source: src}, spectral.ErrBadSegmentLength},
		{"fourier bad period", &spectral.FourierSpectrum{
			Source: &spectral.TimeSeries{SamplePeriod: -1}, SegmentLength: 1,
		}, spectral.ErrBadSamplePeriod},
		{"wavelet no frequencies", &spectral.WaveletCoefficients{Source: src, SamplePeriod: 1}, spectral.ErrNoFrequencies},
		{"wavelet negative frequency", &spectral.WaveletCoefficients{
			Source: src, SamplePeriod: 1, Frequencies: []float64{1, -1},
		}, spectral.ErrNoFrequencies},
		{"wavelet no period", &spectral.WaveletCoefficients{Source: src, Frequencies: []float64{1}}, spectral.ErrBadSamplePeriod},
		{"coherence nfft", &spectral.CoherenceSpectrum{Source: src}, spectral.ErrBadFFTLength},
		{"complex epoch", &spectral.ComplexCoherenceSpectrum{Source: src, SegmentLength: 5}, spectral.ErrBadSegmentLength},
		{"complex shape mismatch", &spectral.ComplexCoherenceSpectrum{
			Source: src, SegmentLength: 5, EpochLength: 10,
			ArrayData: randomDense(t, 2, 2), CrossSpectrum: randomDense(t, 3, 2),
		}, matrix.ErrDimensionMismatch},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.dt.Configure(), tc.want)
		})
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]spectral.Type{
		"fourier":                  spectral.TypeFourier,
		"WaveletCoefficients":      spectral.TypeWavelet,
		"coherence":                spectral.TypeCoherence,
		"complex-coherence":        spectral.TypeComplexCoherence,
		"complexcoherencespectrum": spectral.TypeComplexCoherence,
	} {
		got, err := spectral.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := spectral.ParseType("bispectrum")
	require.ErrorIs(t, err, spectral.ErrUnknownType)
}

func TestTimeSeries(t *testing.T) {
	t.Parallel()

	ts := &spectral.TimeSeries{}
	assert.Equal(t, spectral.DefaultSamplePeriod, ts.Period())
	assert.Equal(t, []int{0}, ts.Shape())

	ts = &spectral.TimeSeries{SamplePeriod: 0.5, Data: randomDense(t, 4, 2)}
	assert.Equal(t, 2.0, ts.SampleRate())
	assert.Equal(t, []int{4, 2}, ts.Shape())
}
