// SPDX-License-Identifier: MIT

package spectral

import (
	"github.com/katalvlaran/lvbrain/matrix"
	"github.com/katalvlaran/lvbrain/summary"
)

// CoherenceSpectrum is the magnitude-squared coherence between signals.
type CoherenceSpectrum struct {
	Source    *TimeSeries
	NFFT      int // FFT length in time points
	ArrayData *matrix.Dense
	Frequency []float64
}

// SpectralType implements Datatype.
func (cs *CoherenceSpectrum) SpectralType() Type { return TypeCoherence }

// Shape returns the array-data shape, (0,) when absent.
func (cs *CoherenceSpectrum) Shape() []int { return denseShape(cs.ArrayData) }

// Configure checks the source and FFT length.
func (cs *CoherenceSpectrum) Configure() error {
	const tag = "CoherenceSpectrum.Configure"
	if err := cs.Source.validate(tag); err != nil {
		return err
	}
	if cs.NFFT < 1 {
		return spectralErrorf(tag, ErrBadFFTLength)
	}

	return nil
}

// SummaryInfo reports the number of frequencies and the FFT length.
func (cs *CoherenceSpectrum) SummaryInfo() summary.Info {
	info := baseInfo(TypeCoherence, cs.Source)
	info["Number of frequencies"] = len(cs.Frequency)
	info["FFT length (time-points)"] = cs.NFFT

	return info
}

// ComplexCoherenceSpectrum keeps the complex coherence and the cross
// spectrum it was computed from.
type ComplexCoherenceSpectrum struct {
	Source               *TimeSeries
	ArrayData            *matrix.Dense
	CrossSpectrum        *matrix.Dense
	EpochLength          float64
	SegmentLength        float64
	WindowingFunction    string
	AggregationFunctions []string
}

// SpectralType implements Datatype.
func (cc *ComplexCoherenceSpectrum) SpectralType() Type { return TypeComplexCoherence }

// Shape returns the array-data shape, (0,) when absent.
func (cc *ComplexCoherenceSpectrum) Shape() []int { return denseShape(cc.ArrayData) }

// FrequencyStep is 1/SegmentLength (0 when unset).
func (cc *ComplexCoherenceSpectrum) FrequencyStep() float64 { return frequencyStep(cc.SegmentLength) }

// MaxFrequency is the Nyquist frequency of the source.
func (cc *ComplexCoherenceSpectrum) MaxFrequency() float64 { return nyquist(cc.Source) }

// Configure checks the source, the segment and epoch lengths and that the
// cross spectrum matches the coherence array.
func (cc *ComplexCoherenceSpectrum) Configure() error {
	const tag = "ComplexCoherenceSpectrum.Configure"
	if err := cc.Source.validate(tag); err != nil {
		return err
	}
	if !positiveFinite(cc.SegmentLength) || !positiveFinite(cc.EpochLength) {
		return spectralErrorf(tag, ErrBadSegmentLength)
	}
	if cc.ArrayData != nil && cc.CrossSpectrum != nil {
		if err := matrix.ValidateSameShape(cc.ArrayData, cc.CrossSpectrum); err != nil {
			return spectralErrorf(tag, err)
		}
	}

	return nil
}

// SummaryInfo reports the frequency resolution.
func (cc *ComplexCoherenceSpectrum) SummaryInfo() summary.Info {
	info := baseInfo(TypeComplexCoherence, cc.Source)
	info["Frequency step"] = cc.FrequencyStep()
	info["Maximum frequency"] = cc.MaxFrequency()

	return info
}
