// SPDX-License-Identifier: MIT

package spectral

import (
	"math"

	"github.com/katalvlaran/lvbrain/matrix"
)

// DefaultSamplePeriod is the sample period (ms) of a TimeSeries that does not set one.
const DefaultSamplePeriod = 1.0

// TimeSeries is the source of every spectral datatype.
type TimeSeries struct {
	Data         *matrix.Dense // time × signals
	SamplePeriod float64       // ms between samples; 0 means DefaultSamplePeriod
	Title        string
}

// NewTimeSeries wraps data with the default sample period.
func NewTimeSeries(data *matrix.Dense) *TimeSeries {
	return &TimeSeries{Data: data, SamplePeriod: DefaultSamplePeriod}
}

// Period returns the effective sample period.
func (ts *TimeSeries) Period() float64 {
	if ts.SamplePeriod == 0 {
		return DefaultSamplePeriod
	}
	return ts.SamplePeriod
}

// SampleRate is 1/Period.
func (ts *TimeSeries) SampleRate() float64 { return 1 / ts.Period() }

// Shape returns (time, signals) or (0,) without data.
func (ts *TimeSeries) Shape() []int { return denseShape(ts.Data) }

func (ts *TimeSeries) validate(tag string) error {
	if ts == nil {
		return spectralErrorf(tag, ErrNilSource)
	}
	if p := ts.Period(); !(p > 0) || math.IsInf(p, 0) {
		return spectralErrorf(tag, ErrBadSamplePeriod)
	}
	return nil
}

func (ts *TimeSeries) title() string {
	if ts == nil {
		return ""
	}
	return ts.Title
}

func denseShape(m *matrix.Dense) []int {
	if m == nil || m.Rows()*m.Cols() == 0 {
		return []int{0}
	}
	return []int{m.Rows(), m.Cols()}
}

func positiveFinite(x float64) bool { return x > 0 && !math.IsInf(x, 0) }
