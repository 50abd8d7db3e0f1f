// SPDX-License-Identifier: MIT

package connectivity

import (
	"math"

	"go.uber.org/zap"
)

// SetIDelays discretizes Delays for an integration step dt (ms):
// IDelays[i][j] = round(Delays[i][j] / dt), ties to even.
//
// Errors: ErrInvalidArgument unless dt is finite and > 0, ErrValidation when
// delays have not been derived yet.
func (c *Connectivity) SetIDelays(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return invalidArgf("integration step %g must be finite and > 0", dt)
	}
	if c.Delays == nil {
		return validationf(nil, "idelays need delays; call Configure first")
	}

	out := make([][]int, c.Delays.Rows())
	for i := range out {
		out[i] = make([]int, c.Delays.Cols())
	}
	maxSteps := 0
	c.Delays.Do(func(i, j int, d float64) bool {
		out[i][j] = int(math.RoundToEven(d / dt))
		maxSteps = max(maxSteps, out[i][j])
		return true
	})
	c.IDelays = out
	c.logger().Debug("integer delays set", zap.Float64("dt", dt), zap.Int("max_steps", maxSteps))

	return nil
}
