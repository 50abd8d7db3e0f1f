// SPDX-License-Identifier: MIT

package spectral

import (
	"math"

	"github.com/katalvlaran/lvbrain/matrix"
	"github.com/katalvlaran/lvbrain/summary"
)

// FourierSpectrum is the windowed Fourier power spectrum of a time series.
type FourierSpectrum struct {
	Source               *TimeSeries
	SegmentLength        float64 // ms per segment
	WindowingFunction    string  // "" when no window was applied
	ArrayData            *matrix.Dense
	AggregationFunctions []string // nil by default

	// Derived by Configure.
	Frequency              []float64
	NormalisedAveragePower []float64
}

// SpectralType implements Datatype.
func (fs *FourierSpectrum) SpectralType() Type { return TypeFourier }

// FrequencyStep is 1/SegmentLength (0 when the segment length is unset).
func (fs *FourierSpectrum) FrequencyStep() float64 { return frequencyStep(fs.SegmentLength) }

// MaxFrequency is the Nyquist frequency of the source.
func (fs *FourierSpectrum) MaxFrequency() float64 { return nyquist(fs.Source) }

// Shape returns the array-data shape, (0,) when absent.
func (fs *FourierSpectrum) Shape() []int { return denseShape(fs.ArrayData) }

// Configure checks the parameters and fills the frequency axis
// step, 2*step, ... up to MaxFrequency.
func (fs *FourierSpectrum) Configure() error {
	const tag = "FourierSpectrum.Configure"
	if err := fs.Source.validate(tag); err != nil {
		return err
	}
	if !positiveFinite(fs.SegmentLength) {
		return spectralErrorf(tag, ErrBadSegmentLength)
	}
	fs.Frequency = frequencyAxis(fs.FrequencyStep(), fs.MaxFrequency())

	return nil
}

// SummaryInfo reports the spectral type, source and frequency resolution.
func (fs *FourierSpectrum) SummaryInfo() summary.Info {
	info := baseInfo(TypeFourier, fs.Source)
	info["Segment length"] = fs.SegmentLength
	info["Windowing function"] = fs.WindowingFunction
	info["Frequency step"] = fs.FrequencyStep()
	info["Maximum frequency"] = fs.MaxFrequency()

	return info
}

func frequencyStep(segmentLength float64) float64 {
	if !positiveFinite(segmentLength) {
		return 0
	}
	return 1 / segmentLength
}

// frequencyAxis returns k*step for k = 1.. while k*step <= limit (with a small
// relative slack for rounding).
func frequencyAxis(step, limit float64) []float64 {
	if step <= 0 || limit <= 0 {
		return nil
	}
	n := int(math.Floor(limit/step + 1e-9))
	out := make([]float64, n)
	for k := range out {
		out[k] = float64(k+1) * step
	}

	return out
}
