// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSource is returned when a datatype has no source time series.
	ErrNilSource = errors.New("spectral: nil source time series")

	// ErrBadSegmentLength indicates a segment or epoch length that is not finite and > 0.
	ErrBadSegmentLength = errors.New("spectral: segment length must be finite and > 0")

	// ErrBadSamplePeriod indicates a sample period that is not finite and > 0.
	ErrBadSamplePeriod = errors.New("spectral: sample period must be finite and > 0")

	// ErrNoFrequencies indicates an empty or non-positive frequency vector.
	ErrNoFrequencies = errors.New("spectral: frequencies must be non-empty and > 0")

	// ErrBadFFTLength indicates an FFT length below 1.
	ErrBadFFTLength = errors.New("spectral: FFT length must be >= 1")

	// ErrUnknownType is returned by ParseType for unsupported datatype names.
	ErrUnknownType = errors.New("spectral: unknown spectral type")
)

// spectralErrorf tags err with the datatype name.
func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
