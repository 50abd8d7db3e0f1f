// SPDX-License-Identifier: MIT

package spectral

import (
	"github.com/katalvlaran/lvbrain/matrix"
	"github.com/katalvlaran/lvbrain/summary"
)

// WaveletCoefficients holds a continuous wavelet transform of a time series.
type WaveletCoefficients struct {
	Source        *TimeSeries
	Mother        string // wavelet family, e.g. "morlet"
	SamplePeriod  float64
	Frequencies   []float64 // one per scale
	Normalisation string
	QRatio        float64
	ArrayData     *matrix.Dense
}

// SpectralType implements Datatype.
func (wc *WaveletCoefficients) SpectralType() Type { return TypeWavelet }

// Shape returns the array-data shape, (0,) when absent.
func (wc *WaveletCoefficients) Shape() []int { return denseShape(wc.ArrayData) }

// NumberOfScales is len(Frequencies).
func (wc *WaveletCoefficients) NumberOfScales() int { return len(wc.Frequencies) }

// Configure checks the source, sample period and frequencies.
func (wc *WaveletCoefficients) Configure() error {
	const tag = "WaveletCoefficients.Configure"
	if err := wc.Source.validate(tag); err != nil {
		return err
	}
	if !positiveFinite(wc.SamplePeriod) {
		return spectralErrorf(tag, ErrBadSamplePeriod)
	}
	if len(wc.Frequencies) == 0 {
		return spectralErrorf(tag, ErrNoFrequencies)
	}
	for _, f := range wc.Frequencies {
		if !positiveFinite(f) {
			return spectralErrorf(tag, ErrNoFrequencies)
		}
	}

	return nil
}

// SummaryInfo reports the wavelet parameters and the frequency range.
// The range keys are omitted without frequencies.
func (wc *WaveletCoefficients) SummaryInfo() summary.Info {
	info := baseInfo(TypeWavelet, wc.Source)
	info["Wavelet type"] = wc.Mother
	info["Normalisation"] = wc.Normalisation
	info["Q-ratio"] = wc.QRatio
	info["Sample period"] = wc.SamplePeriod
	info["Number of scales"] = wc.NumberOfScales()
	if s, err := matrix.DescribeVec(wc.Frequencies); err == nil {
		info["Minimum frequency"] = s.Min
		info["Maximum frequency"] = s.Max
	}

	return info
}
