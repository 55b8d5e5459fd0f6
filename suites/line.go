package suites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func lineCases(seed int64) []probe.Case {
	op := charts.OpLine
	var out []probe.Case

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "indices_default_x",
		Args: probe.Args{
			"y": probe.Sequence(1, 3, 2, 4),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPaths(1),
			func(d *probe.Drawing) error {
				for i, pt := range d.Paths[0].Points {
					if !probe.CloseTo(pt.X, float64(i), probe.Epsilon) {
						return fmt.Errorf("vertex %d at x=%v, expected %d", i, pt.X, i)
					}
				}
				if !probe.CloseTo(d.Paths[0].Width, charts.DefaultLineWidth, probe.Epsilon) {
					return fmt.Errorf("width %v, expected %v", d.Paths[0].Width, charts.DefaultLineWidth)
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "empty_input_draws_nothing",
		Args: probe.Args{
			"y": probe.Sequence(),
		},
		Expect: probe.ExpectSuccess(probe.ExpectNoPrimitives()),
	})

	// Integration: NaN gaps split the polyline without shifting indices.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "nan_gap_splits_polyline",
		Args: probe.Args{
			"y": probe.Sequence(1, 2, math.NaN(), 3, 4),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPaths(2),
			func(d *probe.Drawing) error {
				if !probe.CloseTo(d.Paths[1].Points[0].X, 3, probe.Epsilon) {
					return fmt.Errorf("second segment starts at %v, expected 3", d.Paths[1].Points[0].X)
				}
				if len(d.Markers) != 1 || !d.Markers[0].Masked {
					return fmt.Errorf("expected one masked marker for the gap")
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "markers_on_every_point",
		Args: probe.Args{
			"x":      probe.Sequence(0, 1, 2),
			"y":      probe.Sequence(2, 4, 6),
			"marker": probe.Flag(true),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPaths(1),
			probe.ExpectMarkers(3),
		),
	})

	// Combinatorial: linewidth x marker x alpha grid.
	grid := probe.Combinations([]probe.Domain{
		{Name: "linewidth", Values: []probe.Value{probe.Scalar(0.5), probe.Scalar(1.5), probe.Scalar(4)}},
		{Name: "marker", Values: []probe.Value{probe.Flag(false), probe.Flag(true)}},
		{Name: "alpha", Values: []probe.Value{probe.Scalar(0.4), probe.Scalar(1)}},
	}, CombinatorialCap)
	for i, args := range grid {
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name: fmt.Sprintf("grid_%02d", i),
			Args: args.
				With("x", probe.Sequence(0, 1, 2, 3)).
				With("y", probe.Sequence(1, 3, 2, 4)),
			Expect: probe.ExpectSuccess(probe.ExpectPaths(1)),
		})
	}

	// Property: the polyline visits every finite point in input order.
	out = append(out, probe.PropertyCases(op, "polyline_visits_points", seed, 5,
		"sampled curve must be finite",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			n := 2 + r.Intn(20)
			y := probe.RandSeq(r, n, -50, 50)
			return probe.Case{
				Name: fmt.Sprintf("polyline_visits_points_%02d", i),
				Args: probe.Args{"y": probe.Sequence(y...)},
				Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
					if len(d.Paths) != 1 {
						return fmt.Errorf("%d segments for a gapless curve", len(d.Paths))
					}
					pts := d.Paths[0].Points
					if len(pts) != n {
						return fmt.Errorf("%d vertices for %d points", len(pts), n)
					}
					for j, pt := range pts {
						if !probe.CloseTo(pt.Y, y[j], probe.Epsilon) {
							return fmt.Errorf("vertex %d at y=%v, expected %v", j, pt.Y, y[j])
						}
					}
					return nil
				}),
			}, true
		})...)

	// Fuzz: random gaps either draw segments or reject.
	out = append(out, probe.FuzzCases(op, "random_gaps", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			n := 2 + r.Intn(15)
			y := probe.RandSeq(r, n, -10, 10)
			for j := range y {
				if r.Intn(4) == 0 {
					y[j] = math.NaN()
				}
			}
			return probe.Case{
				Name:   fmt.Sprintf("random_gaps_%02d", i),
				Args:   probe.Args{"y": probe.Sequence(y...)},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: a thick high-contrast stroke is honored and the
	// legend label reaches the drawing.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "high_contrast_stroke",
		Args: probe.Args{
			"y":         probe.Sequence(1, 2, 3),
			"color":     probe.Color("black"),
			"linewidth": probe.Scalar(3),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			s := d.Paths[0].Stroke
			if s.R != 0 || s.G != 0 || s.B != 0 || s.A != 255 {
				return fmt.Errorf("stroke %v, expected opaque black", s)
			}
			if !probe.CloseTo(d.Paths[0].Width, 3, probe.Epsilon) {
				return fmt.Errorf("width %v, expected 3", d.Paths[0].Width)
			}
			return nil
		}),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "legend_label_recorded",
		Args: probe.Args{
			"y":     probe.Sequence(1, 2),
			"label": probe.Str("trend"),
		},
		Expect: probe.ExpectSuccess(probe.ExpectLabelTexts("trend")),
	})

	// Performance: a long curve must finish inside the run budget.
	long := make([]float64, 10000)
	for i := range long {
		long[i] = math.Cos(float64(i) * 0.02)
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "ten_thousand_vertices",
		Args: probe.Args{
			"y": probe.Sequence(long...),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPaths(1),
			func(d *probe.Drawing) error {
				if got := len(d.Paths[0].Points); got != len(long) {
					return fmt.Errorf("%d vertices, expected %d", got, len(long))
				}
				return nil
			},
		),
	})

	// Special: rejection contract and isolated points.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "length_mismatch_rejected",
			Args: probe.Args{
				"x": probe.Sequence(1, 2),
				"y": probe.Sequence(1, 2, 3),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "negative_linewidth_rejected",
			Args: probe.Args{
				"y":         probe.Sequence(1, 2),
				"linewidth": probe.Scalar(-2),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "isolated_points_draw_no_segment",
			Args: probe.Args{
				"y": probe.Sequence(1, math.NaN(), 2, math.NaN(), 3),
			},
			Expect: probe.ExpectSuccess(probe.ExpectPaths(0)),
		},
	)

	return out
}
