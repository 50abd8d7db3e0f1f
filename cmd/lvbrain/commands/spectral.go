// SPDX-License-Identifier: MIT

package commands

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbrain/logger"
	"github.com/katalvlaran/lvbrain/matrix"
	"github.com/katalvlaran/lvbrain/spectral"
)

// spectralParams are the flag values of the spectral command.
type spectralParams struct {
	samples, signals int
	seed             int64
	samplePeriod     float64
	title            string
	segmentLength    float64
	epochLength      float64
	window           string
	nfft             int
	mother           string
	normalisation    string
	qRatio           float64
	frequencies      []float64
}

func (a *app) newSpectralCmd() *cobra.Command {
	p := spectralParams{}
	cmd := &cobra.Command{
		Use:   "spectral TYPE",
		Short: "Summarize a spectral datatype over a random source time series",
		Long: `Builds one spectral datatype (fourier, wavelet, coherence or
complex-coherence) over a seeded random time series and prints its summary.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"fourier", "wavelet", "coherence", "complex-coherence"},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := spectral.ParseType(args[0])
			if err != nil {
				return err
			}
			dt, err := p.build(t)
			if err != nil {
				return err
			}
			if err := dt.Configure(); err != nil {
				return err
			}
			logger.Logger.Debugw("spectral datatype configured", "type", string(t), "shape", dt.Shape())
			return a.render(cmd.OutOrStdout(), string(t), dt.SummaryInfo())
		},
	}
	f := cmd.Flags()
	f.IntVar(&p.samples, "samples", 10, "time points of the source series")
	f.IntVar(&p.signals, "signals", 10, "signals of the source series")
	f.Int64Var(&p.seed, "seed", 0, "RNG seed of the source series")
	f.Float64Var(&p.samplePeriod, "sample-period", spectral.DefaultSamplePeriod, "source sample period (ms)")
	f.StringVar(&p.title, "title", "", "source title")
	f.Float64Var(&p.segmentLength, "segment-length", 100, "segment length (ms)")
	f.Float64Var(&p.epochLength, "epoch-length", 10, "epoch length (ms), complex coherence only")
	f.StringVar(&p.window, "window", "", "windowing function name")
	f.IntVar(&p.nfft, "nfft", 4, "FFT length, coherence only")
	f.StringVar(&p.mother, "mother", "morlet", "mother wavelet")
	f.StringVar(&p.normalisation, "normalisation", "energy", "wavelet normalisation")
	f.Float64Var(&p.qRatio, "q-ratio", 5, "wavelet Q-ratio")
	f.Float64SliceVar(&p.frequencies, "frequencies", []float64{0.008, 0.028, 0.048, 0.068}, "wavelet frequencies")

	return cmd
}

func (p spectralParams) randomDense(rng *rand.Rand) (*matrix.Dense, error) {
	data := make([]float64, p.samples*p.signals)
	for i := range data {
		data[i] = rng.Float64()
	}
	return matrix.NewDenseFromData(p.samples, p.signals, data)
}

func (p spectralParams) build(t spectral.Type) (spectral.Datatype, error) {
	rng := rand.New(rand.NewSource(p.seed))
	data, err := p.randomDense(rng)
	if err != nil {
		return nil, err
	}
	src := &spectral.TimeSeries{Data: data, SamplePeriod: p.samplePeriod, Title: p.title}
	arr, err := p.randomDense(rng)
	if err != nil {
		return nil, err
	}

	switch t {
	case spectral.TypeFourier:
		return &spectral.FourierSpectrum{
			Source:            src,
			SegmentLength:     p.segmentLength,
			WindowingFunction: p.window,
		}, nil
	case spectral.TypeWavelet:
		return &spectral.WaveletCoefficients{
			Source:        src,
			Mother:        p.mother,
			SamplePeriod:  p.samplePeriod,
			Frequencies:   p.frequencies,
			Normalisation: p.normalisation,
			QRatio:        p.qRatio,
			ArrayData:     arr,
		}, nil
	case spectral.TypeCoherence:
		freq := make([]float64, p.signals)
		for i := range freq {
			freq[i] = rng.Float64()
		}
		return &spectral.CoherenceSpectrum{Source: src, NFFT: p.nfft, ArrayData: arr, Frequency: freq}, nil
	default:
		cross, err := p.randomDense(rng)
		if err != nil {
			return nil, err
		}
		return &spectral.ComplexCoherenceSpectrum{
			Source:            src,
			ArrayData:         arr,
			CrossSpectrum:     cross,
			EpochLength:       p.epochLength,
			SegmentLength:     p.segmentLength,
			WindowingFunction: p.window,
		}, nil
	}
}
