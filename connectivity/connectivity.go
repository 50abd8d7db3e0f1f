// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbrain/archive"
	"github.com/katalvlaran/lvbrain/matrix"
)

// Connectivity is a parcellated brain network.
//
// Empty arrays are nil (or zero-length); their numpy-style shape is (0,).
// Hemispheres use true for the right hemisphere.
type Connectivity struct {
	GID string // uuid assigned on construction

	Weights      *matrix.Dense // n×n, non-negative
	TractLengths *matrix.Dense // n×n, non-negative
	Centres      [][3]float64
	Orientations [][3]float64
	RegionLabels []string
	Areas        []float64
	Cortical     []bool
	Hemispheres  []bool
	Undirected   bool
	Speed        float64

	// Derived by Configure/Finalize and SetIDelays.
	Delays              *matrix.Dense
	IDelays             [][]int
	NumberOfRegions     int
	NumberOfConnections int

	SavedSelection     []int  // nil when unset
	ParentConnectivity string // GID of the source network, "" when none

	configured bool
	log        *zap.Logger
}

// New builds a raw Connectivity from weights and tract lengths. Either
// matrix may be nil; shapes are checked by Configure. The matrices are
// copied.
func New(weights, tractLengths *matrix.Dense, opts ...Option) *Connectivity {
	cfg := newConfig(opts)
	c := newRaw(cfg)
	c.Weights = cloneDense(weights)
	c.TractLengths = cloneDense(tractLengths)

	return c
}

func newRaw(cfg config) *Connectivity {
	speed := cfg.speed
	if speed == 0 {
		speed = DefaultSpeed
	}

	return &Connectivity{
		GID:   uuid.NewString(),
		Speed: speed,
		log:   cfg.log,
	}
}

// fromArrays adopts the arrays of a loaded archive.
func fromArrays(a *archive.Arrays, cfg config) *Connectivity {
	c := newRaw(cfg)
	c.Weights = a.Weights
	c.TractLengths = a.TractLengths
	c.Centres = a.Centres
	c.Orientations = a.Orientations
	c.RegionLabels = a.RegionLabels
	c.Areas = a.Areas
	c.Cortical = a.Cortical
	c.Hemispheres = a.Hemispheres
	if a.Undirected != nil {
		c.Undirected = *a.Undirected
	}
	if a.Speed != nil {
		c.Speed = *a.Speed
	}

	return c
}

// ToArrays exports the primary arrays in archive form (copies).
func (c *Connectivity) ToArrays() *archive.Arrays {
	undirected := c.Undirected
	speed := c.Speed

	return &archive.Arrays{
		Weights:      cloneDense(c.Weights),
		TractLengths: cloneDense(c.TractLengths),
		Centres:      append([][3]float64(nil), c.Centres...),
		Orientations: append([][3]float64(nil), c.Orientations...),
		RegionLabels: append([]string(nil), c.RegionLabels...),
		Areas:        append([]float64(nil), c.Areas...),
		Cortical:     append([]bool(nil), c.Cortical...),
		Hemispheres:  append([]bool(nil), c.Hemispheres...),
		Undirected:   &undirected,
		Speed:        &speed,
	}
}

// Clone returns a deep copy with the same GID.
func (c *Connectivity) Clone() *Connectivity {
	cp := *c
	cp.Weights = cloneDense(c.Weights)
	cp.TractLengths = cloneDense(c.TractLengths)
	cp.Delays = cloneDense(c.Delays)
	cp.Centres = append([][3]float64(nil), c.Centres...)
	cp.Orientations = append([][3]float64(nil), c.Orientations...)
	cp.RegionLabels = append([]string(nil), c.RegionLabels...)
	cp.Areas = append([]float64(nil), c.Areas...)
	cp.Cortical = append([]bool(nil), c.Cortical...)
	cp.Hemispheres = append([]bool(nil), c.Hemispheres...)
	if c.SavedSelection != nil {
		cp.SavedSelection = append([]int{}, c.SavedSelection...)
	}
	if c.IDelays != nil {
		cp.IDelays = make([][]int, len(c.IDelays))
		for i, row := range c.IDelays {
			cp.IDelays[i] = append([]int(nil), row...)
		}
	}

	return &cp
}

// Configured reports whether Configure/Finalize produced this value.
func (c *Connectivity) Configured() bool { return c.configured }

// logger never returns nil, so zero-value Connectivity literals can log.
func (c *Connectivity) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

// regionCount is the best available n before configure: weights rows, then
// centres, then labels.
func (c *Connectivity) regionCount() int {
	switch {
	case c.Weights != nil:
		return c.Weights.Rows()
	case len(c.Centres) > 0:
		return len(c.Centres)
	default:
		return len(c.RegionLabels)
	}
}

// ---------- numpy-style shapes ----------

func denseShape(m *matrix.Dense) []int {
	if m == nil || m.Rows()*m.Cols() == 0 {
		return []int{0}
	}
	return []int{m.Rows(), m.Cols()}
}

func vecShape(n int) []int { return []int{n} }

func triplesShape(n int) []int {
	if n == 0 {
		return []int{0}
	}
	return []int{n, 3}
}

// WeightsShape returns (n, n), or (0,) when weights are absent.
func (c *Connectivity) WeightsShape() []int { return denseShape(c.Weights) }

// TractLengthsShape returns (n, n), or (0,) when tract lengths are absent.
func (c *Connectivity) TractLengthsShape() []int { return denseShape(c.TractLengths) }

// DelaysShape returns (n, n) after Configure and (0,) before.
func (c *Connectivity) DelaysShape() []int { return denseShape(c.Delays) }

// IDelaysShape returns (n, n) after SetIDelays and (0,) before.
func (c *Connectivity) IDelaysShape() []int {
	if len(c.IDelays) == 0 {
		return []int{0}
	}
	return []int{len(c.IDelays), len(c.IDelays[0])}
}

// CentresShape returns (n, 3) or (0,).
func (c *Connectivity) CentresShape() []int { return triplesShape(len(c.Centres)) }

// OrientationsShape returns (n, 3) or (0,).
func (c *Connectivity) OrientationsShape() []int { return triplesShape(len(c.Orientations)) }

// RegionLabelsShape returns (n,) or (0,).
func (c *Connectivity) RegionLabelsShape() []int { return vecShape(len(c.RegionLabels)) }

// AreasShape returns (n,) or (0,).
func (c *Connectivity) AreasShape() []int { return vecShape(len(c.Areas)) }

// CorticalShape returns (n,) or (0,).
func (c *Connectivity) CorticalShape() []int { return vecShape(len(c.Cortical)) }

// HemispheresShape returns (n,) or (0,).
func (c *Connectivity) HemispheresShape() []int { return vecShape(len(c.Hemispheres)) }

func cloneDense(m *matrix.Dense) *matrix.Dense {
	if m == nil {
		return nil
	}
	return m.Clone().(*matrix.Dense)
}
