// Package suites enumerates the verification cases of every canonical
// charting operation: literal basics, combinatorial argument grids,
// seeded property and fuzz sets, and the special-case edges.
package suites

import (
	"fmt"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

// CombinatorialCap bounds every Cartesian expansion, mirroring the
// scale of the upstream grids.
const CombinatorialCap = 100

type builder func(seed int64) []probe.Case

var table = map[string]builder{
	charts.OpLine:        lineCases,
	charts.OpScatter:     scatterCases,
	charts.OpBar:         barCases,
	charts.OpHist:        histCases,
	charts.OpBox:         boxCases,
	charts.OpErrorBar:    errorbarCases,
	charts.OpFillBetween: fillBetweenCases,
	charts.OpStackedArea: stackedAreaCases,
	charts.OpPie:         pieCases,
	charts.OpContour:     contourCases,
	charts.OpViolin:      violinCases,
}

// ForOperation returns every case of one operation, seeded for the run.
func ForOperation(op string, seed int64) ([]probe.Case, error) {
	b, ok := table[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	return b(seed), nil
}

// Operations lists the ops with registered suites, in canonical order.
func Operations() []string {
	return charts.Ops()
}

// Collect expands a manifest into the run's case list. Category filters
// drop unselected families; a skipped operation keeps its cases as
// recorded skips carrying the manifest reason.
func Collect(m *types.Manifest, seed int64) ([]probe.Case, error) {
	var out []probe.Case
	for _, cfg := range m.Operations {
		cases, err := ForOperation(cfg.Name, seed)
		if err != nil {
			return nil, err
		}
		for _, c := range cases {
			if !cfg.WantsCategory(c.Category) {
				continue
			}
			if cfg.Skip {
				c.SkipReason = cfg.Reason
			}
			out = append(out, c)
		}
	}
	return out, nil
}
