// SPDX-License-Identifier: MIT

package connectivity

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvbrain/matrix"
)

// TryComputeHemispheres infers the hemisphere (true = right) of every region
// and stores the result on success. Existing hemispheres are returned as a
// copy. Rules are tried in order:
//
//  1. every label starts with r or l (any case), both sides present;
//  2. every label ends with _r/-r/.r/_l/-l/.l or contains right/left;
//  3. every centre has x != 0 (x > 0 is right), both sides present.
//
// It never fails; ok is false when no rule applies.
func (c *Connectivity) TryComputeHemispheres() ([]bool, bool) {
	if len(c.Hemispheres) > 0 {
		return append([]bool(nil), c.Hemispheres...), true
	}

	for _, rule := range []func() []bool{c.hemispheresByPrefix, c.hemispheresBySuffix, c.hemispheresByCentres} {
		if h := rule(); h != nil {
			c.Hemispheres = h
			return append([]bool(nil), h...), true
		}
	}

	return nil, false
}

func (c *Connectivity) hemispheresByPrefix() []bool {
	return classifyLabels(c.RegionLabels, func(l string) (right, ok bool) {
		if l == "" {
			return false, false
		}
		switch l[0] {
		case 'r':
			return true, true
		case 'l':
			return false, true
		}
		return false, false
	})
}

var (
	rightSuffixes = []string{"_r", "-r", ".r"}
	leftSuffixes  = []string{"_l", "-l", ".l"}
)

func (c *Connectivity) hemispheresBySuffix() []bool {
	return classifyLabels(c.RegionLabels, func(l string) (right, ok bool) {
		for _, s := range rightSuffixes {
			if strings.HasSuffix(l, s) {
				return true, true
			}
		}
		for _, s := range leftSuffixes {
			if strings.HasSuffix(l, s) {
				return false, true
			}
		}
		switch {
		case strings.Contains(l, "right"):
			return true, true
		case strings.Contains(l, "left"):
			return false, true
		}
		return false, false
	})
}

// classifyLabels applies side to lower-cased labels. It returns nil when a
// label is unclassified or when one hemisphere ends up empty.
func classifyLabels(labels []string, side func(string) (bool, bool)) []bool {
	if len(labels) == 0 {
		return nil
	}
	out := make([]bool, len(labels))
	for i, l := range labels {
		right, ok := side(strings.ToLower(strings.TrimSpace(l)))
		if !ok {
			return nil
		}
		out[i] = right
	}
	if !bothSides(out) {
		return nil
	}

	return out
}

func (c *Connectivity) hemispheresByCentres() []bool {
	if len(c.Centres) == 0 {
		return nil
	}
	out := make([]bool, len(c.Centres))
	for i, p := range c.Centres {
		if p[0] == 0 {
			return nil
		}
		out[i] = p[0] > 0
	}
	if !bothSides(out) {
		return nil
	}

	return out
}

func bothSides(h []bool) bool {
	var right, left bool
	for _, v := range h {
		if v {
			right = true
		} else {
			left = true
		}
	}
	return right && left
}

// CentresSpherical converts centres to (r, theta, phi) with theta the polar
// angle from +z and phi the azimuth in the xy plane. A centre at the origin
// maps to (0, 0, 0).
func (c *Connectivity) CentresSpherical() [][3]float64 {
	out := make([][3]float64, len(c.Centres))
	for i, p := range c.Centres {
		r := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		if r == 0 {
			continue
		}
		out[i] = [3]float64{r, math.Acos(p[2] / r), math.Atan2(p[1], p[0])}
	}

	return out
}

// IsSymmetric reports whether weights and tract lengths are both exactly symmetric.
func (c *Connectivity) IsSymmetric() bool {
	return matrix.IsSymmetric(c.Weights, 0) && matrix.IsSymmetric(c.TractLengths, 0)
}
