package suites

import (
	"fmt"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func fillBetweenCases(seed int64) []probe.Case {
	op := charts.OpFillBetween
	var out []probe.Case

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "band_between_curves",
		Args: probe.Args{
			"x":  probe.Sequence(0, 1, 2, 3),
			"y1": probe.Sequence(1, 2, 3, 4),
			"y2": probe.Sequence(0, 1, 1, 0),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPolygons(1),
			func(d *probe.Drawing) error {
				if got := len(d.Polygons[0].XY); got != 8 {
					return fmt.Errorf("outline has %d vertices, expected 8", got)
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "baseline_defaults_to_zero",
		Args: probe.Args{
			"x":  probe.Sequence(0, 1, 2),
			"y1": probe.Sequence(2, 3, 2),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPolygons(1),
			probe.EachPolygon(func(i int, p probe.Polygon) error {
				for _, pt := range p.XY[3:] {
					if !probe.CloseTo(pt.Y, 0, probe.Epsilon) {
						return fmt.Errorf("lower edge at %v, expected 0", pt.Y)
					}
				}
				return nil
			}),
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "empty_input_draws_nothing",
		Args: probe.Args{
			"x":  probe.Sequence(),
			"y1": probe.Sequence(),
		},
		Expect: probe.ExpectSuccess(probe.ExpectNoPrimitives()),
	})

	// Integration: the where mask splits the band without shifting x.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "where_mask_splits_band",
		Args: probe.Args{
			"x":     probe.Sequence(0, 1, 2, 3, 4, 5),
			"y1":    probe.Sequence(1, 1, 1, 1, 1, 1),
			"where": probe.Sequence(1, 1, 0, 0, 1, 1),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPolygons(2),
			func(d *probe.Drawing) error {
				if !probe.CloseTo(d.Polygons[1].XY[0].X, 4, probe.Epsilon) {
					return fmt.Errorf("second run starts at %v, expected 4", d.Polygons[1].XY[0].X)
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "single_point_runs_dropped",
		Args: probe.Args{
			"x":     probe.Sequence(0, 1, 2),
			"y1":    probe.Sequence(1, 1, 1),
			"where": probe.Sequence(1, 0, 1),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPolygons(0)),
	})

	// Combinatorial: step mode x alpha grid.
	grid := probe.Combinations([]probe.Domain{
		{Name: "step", Values: []probe.Value{probe.Str(""), probe.Str("pre"), probe.Str("post"), probe.Str("mid")}},
		{Name: "alpha", Values: []probe.Value{probe.Scalar(0.3), probe.Scalar(1)}},
	}, CombinatorialCap)
	for i, args := range grid {
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name: fmt.Sprintf("grid_%02d", i),
			Args: args.
				With("x", probe.Sequence(0, 1, 2, 3)).
				With("y1", probe.Sequence(1, 3, 2, 4)),
			Expect: probe.ExpectSuccess(probe.ExpectPolygons(1)),
		})
	}

	// Property: the outline always starts on the upper curve and ends on
	// the lower one at the same x.
	out = append(out, probe.PropertyCases(op, "closed_outline", seed, 5,
		"sampled curves must align with x",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			n := 2 + r.Intn(10)
			x := make([]float64, n)
			for j := range x {
				x[j] = float64(j)
			}
			y1 := probe.RandSeq(r, n, 1, 10)
			y2 := probe.RandSeq(r, n, -10, 0)
			return probe.Case{
				Name: fmt.Sprintf("closed_outline_%02d", i),
				Args: probe.Args{
					"x":  probe.Sequence(x...),
					"y1": probe.Sequence(y1...),
					"y2": probe.Sequence(y2...),
				},
				Expect: probe.ExpectSuccess(probe.EachPolygon(func(j int, p probe.Polygon) error {
					first, last := p.XY[0], p.XY[len(p.XY)-1]
					if !probe.CloseTo(first.X, last.X, probe.Epsilon) {
						return fmt.Errorf("outline does not close over x: %v vs %v", first.X, last.X)
					}
					if !probe.CloseTo(first.Y, y1[0], probe.Epsilon) || !probe.CloseTo(last.Y, y2[0], probe.Epsilon) {
						return fmt.Errorf("outline endpoints off the curves")
					}
					return nil
				})),
			}, true
		})...)

	// Fuzz: random masks over random curves.
	out = append(out, probe.FuzzCases(op, "random_where_masks", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			n := 2 + r.Intn(12)
			mask := make([]float64, n)
			for j := range mask {
				mask[j] = float64(r.Intn(2))
			}
			x := make([]float64, n)
			for j := range x {
				x[j] = float64(j)
			}
			return probe.Case{
				Name: fmt.Sprintf("random_where_masks_%02d", i),
				Args: probe.Args{
					"x":     probe.Sequence(x...),
					"y1":    probe.Sequence(probe.RandSeq(r, n, -5, 5)...),
					"where": probe.Sequence(mask...),
				},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: the legend label reaches the drawing.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "legend_label_recorded",
		Args: probe.Args{
			"x":     probe.Sequence(0, 1, 2),
			"y1":    probe.Sequence(1, 2, 1),
			"label": probe.Str("forecast band"),
		},
		Expect: probe.ExpectSuccess(probe.ExpectLabelTexts("forecast band")),
	})

	// Performance: a long band must finish inside the run budget.
	longX := make([]float64, 5000)
	longY := make([]float64, 5000)
	for i := range longX {
		longX[i] = float64(i)
		longY[i] = float64(i % 7)
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "five_thousand_point_band",
		Args: probe.Args{
			"x":  probe.Sequence(longX...),
			"y1": probe.Sequence(longY...),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPolygons(1)),
	})

	// Special: rejection contract.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "length_mismatch_rejected",
			Args: probe.Args{
				"x":  probe.Sequence(0, 1, 2),
				"y1": probe.Sequence(1, 2),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "where_mismatch_rejected",
			Args: probe.Args{
				"x":     probe.Sequence(0, 1),
				"y1":    probe.Sequence(1, 2),
				"where": probe.Sequence(1),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "unknown_step_rejected",
			Args: probe.Args{
				"x":    probe.Sequence(0, 1),
				"y1":   probe.Sequence(1, 2),
				"step": probe.Str("diagonal"),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
	)

	return out
}
