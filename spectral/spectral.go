// SPDX-License-Identifier: MIT

package spectral

import (
	"strings"

	"github.com/katalvlaran/lvbrain/summary"
)

// Type names a spectral datatype; it is the "Spectral type" summary value.
type Type string

// Supported datatypes.
const (
	TypeFourier          Type = "FourierSpectrum"
	TypeWavelet          Type = "WaveletCoefficients"
	TypeCoherence        Type = "CoherenceSpectrum"
	TypeComplexCoherence Type = "ComplexCoherenceSpectrum"
)

// Types lists every datatype in declaration order.
var Types = []Type{TypeFourier, TypeWavelet, TypeCoherence, TypeComplexCoherence}

// ParseType accepts a Type name or a short alias (fourier, wavelet,
// coherence, complex-coherence), case-insensitively.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types {
		if key == strings.ToLower(string(t)) {
			return t, nil
		}
	}
	switch key {
	case "fourier":
		return TypeFourier, nil
	case "wavelet":
		return TypeWavelet, nil
	case "coherence":
		return TypeCoherence, nil
	case "complex-coherence", "complexcoherence":
		return TypeComplexCoherence, nil
	}

	return "", spectralErrorf("ParseType("+s+")", ErrUnknownType)
}

// Datatype is the behaviour shared by the four spectral datatypes.
type Datatype interface {
	SpectralType() Type
	Configure() error
	Shape() []int
	SummaryInfo() summary.Info
}

// Summary keys shared by every datatype.
const (
	KeyType   = "Spectral type"
	KeySource = "Source"
)

func baseInfo(t Type, src *TimeSeries) summary.Info {
	return summary.Info{
		KeyType:   string(t),
		KeySource: src.title(),
	}
}

// nyquist is half the sample rate of src (default period when src is nil).
func nyquist(src *TimeSeries) float64 {
	if src == nil {
		return 0.5 / DefaultSamplePeriod
	}
	return 0.5 / src.Period()
}
