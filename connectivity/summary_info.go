// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/katalvlaran/lvbrain/matrix"
	"github.com/katalvlaran/lvbrain/summary"
)

// Summary keys reported by SummaryInfo.
const (
	KeyRegions     = "Number of regions"
	KeyConnections = "Number of connections"
	KeyUndirected  = "Undirected"
	KeySpeed       = "Speed"
	KeyParent      = "Parent connectivity"
)

// SummaryInfo reports counts, flags and array statistics. Statistics of
// absent arrays are omitted. The counts are zero until Configure.
func (c *Connectivity) SummaryInfo() summary.Info {
	info := summary.Info{
		KeyRegions:     c.NumberOfRegions,
		KeyConnections: c.NumberOfConnections,
		KeyUndirected:  c.Undirected,
		KeySpeed:       c.Speed,
	}
	if c.ParentConnectivity != "" {
		info[KeyParent] = c.ParentConnectivity
	}
	if c.Weights != nil {
		if s, err := matrix.Describe(c.Weights); err == nil {
			addStats(info, "Weights", s)
		}
	}
	if c.TractLengths != nil {
		if s, err := matrix.Describe(c.TractLengths); err == nil {
			addStats(info, "Tract lengths", s)
		}
	}
	if s, err := matrix.DescribeVec(c.Areas); err == nil {
		addStats(info, "Areas", s)
	}

	return info
}

func addStats(info summary.Info, name string, s matrix.Stats) {
	info[name+" (max)"] = s.Max
	info[name+" (min)"] = s.Min
	info[name+" (mean)"] = s.Mean
}
