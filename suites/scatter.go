package suites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func scatterCases(seed int64) []probe.Case {
	op := charts.OpScatter
	var out []probe.Case

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "one_marker_per_point",
		Args: probe.Args{
			"x": probe.Sequence(1, 2, 3),
			"y": probe.Sequence(4, 5, 6),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectMarkers(3),
			func(d *probe.Drawing) error {
				for i, m := range d.Markers {
					if !probe.CloseTo(m.Size, charts.DefaultMarkerSize, probe.Epsilon) {
						return fmt.Errorf("marker %d size %v, expected %v", i, m.Size, charts.DefaultMarkerSize)
					}
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "empty_input_draws_nothing",
		Args: probe.Args{
			"x": probe.Sequence(),
			"y": probe.Sequence(),
		},
		Expect: probe.ExpectSuccess(probe.ExpectNoPrimitives()),
	})

	// Integration: per-point sizes and colors resolve independently.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "per_point_sizes_and_colors",
		Args: probe.Args{
			"x":     probe.Sequence(1, 2, 3),
			"y":     probe.Sequence(1, 2, 3),
			"s":     probe.Sequence(10, 40, 90),
			"color": probe.Colors("red", "green", "blue"),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectMarkers(3),
			func(d *probe.Drawing) error {
				want := []float64{10, 40, 90}
				for i, m := range d.Markers {
					if !probe.CloseTo(m.Size, want[i], probe.Epsilon) {
						return fmt.Errorf("marker %d size %v, expected %v", i, m.Size, want[i])
					}
				}
				if d.Markers[0].Face == d.Markers[1].Face {
					return fmt.Errorf("explicit per-point colors collapsed")
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "masked_points_keep_indices",
		Args: probe.Args{
			"x": probe.Sequence(1, 2, 3, 4),
			"y": probe.Sequence(1, math.NaN(), 3, math.NaN()),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectMarkers(2),
			func(d *probe.Drawing) error {
				if len(d.Markers) != 4 {
					return fmt.Errorf("masked points dropped: %d handles", len(d.Markers))
				}
				if !d.Markers[1].Masked || !d.Markers[3].Masked {
					return fmt.Errorf("NaN points not masked in place")
				}
				return nil
			},
		),
	})

	// Combinatorial: size spec x alpha grid.
	grid := probe.Combinations([]probe.Domain{
		{Name: "s", Values: []probe.Value{probe.Scalar(9), probe.Scalar(36), probe.Sequence(10, 20, 30)}},
		{Name: "alpha", Values: []probe.Value{probe.Scalar(0.5), probe.Scalar(1)}},
	}, CombinatorialCap)
	for i, args := range grid {
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name: fmt.Sprintf("grid_%02d", i),
			Args: args.
				With("x", probe.Sequence(1, 2, 3)).
				With("y", probe.Sequence(3, 1, 2)),
			Expect: probe.ExpectSuccess(probe.ExpectMarkers(3)),
		})
	}

	// Property: every visible marker sits exactly on its input point.
	out = append(out, probe.PropertyCases(op, "markers_at_input_points", seed, 5,
		"sampled coordinates must be finite",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			n := 1 + r.Intn(20)
			x := probe.RandSeq(r, n, -100, 100)
			y := probe.RandSeq(r, n, -100, 100)
			return probe.Case{
				Name: fmt.Sprintf("markers_at_input_points_%02d", i),
				Args: probe.Args{
					"x": probe.Sequence(x...),
					"y": probe.Sequence(y...),
				},
				Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
					if len(d.Markers) != n {
						return fmt.Errorf("%d markers for %d points", len(d.Markers), n)
					}
					for j, m := range d.Markers {
						if !probe.CloseTo(m.X, x[j], probe.Epsilon) || !probe.CloseTo(m.Y, y[j], probe.Epsilon) {
							return fmt.Errorf("marker %d at (%v, %v), expected (%v, %v)", j, m.X, m.Y, x[j], y[j])
						}
					}
					return nil
				}),
			}, true
		})...)

	// Fuzz: random sizes, including negatives, either reject or draw.
	out = append(out, probe.FuzzCases(op, "random_sizes", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			n := 1 + r.Intn(8)
			return probe.Case{
				Name: fmt.Sprintf("random_sizes_%02d", i),
				Args: probe.Args{
					"x": probe.Sequence(probe.RandSeq(r, n, -10, 10)...),
					"y": probe.Sequence(probe.RandSeq(r, n, -10, 10)...),
					"s": probe.Sequence(probe.RandSeq(r, n, -20, 100)...),
				},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: explicit colors stay distinguishable and the legend
	// label reaches the drawing.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "explicit_colors_distinct",
		Args: probe.Args{
			"x":     probe.Sequence(1, 2, 3),
			"y":     probe.Sequence(1, 2, 3),
			"color": probe.Colors("black", "orange", "cyan"),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			for i := 1; i < len(d.Markers); i++ {
				if d.Markers[i].Face == d.Markers[i-1].Face {
					return fmt.Errorf("markers %d and %d share face color", i-1, i)
				}
			}
			return nil
		}),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "legend_label_recorded",
		Args: probe.Args{
			"x":     probe.Sequence(1, 2),
			"y":     probe.Sequence(1, 2),
			"label": probe.Str("samples"),
		},
		Expect: probe.ExpectSuccess(probe.ExpectLabelTexts("samples")),
	})

	// Performance: a dense cloud must finish inside the run budget.
	cloud := make([]float64, 10000)
	for i := range cloud {
		cloud[i] = math.Sin(float64(i) * 0.1)
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "ten_thousand_points",
		Args: probe.Args{
			"x": probe.Sequence(cloud...),
			"y": probe.Sequence(cloud...),
		},
		Expect: probe.ExpectSuccess(probe.ExpectMarkers(len(cloud))),
	})

	// Special: rejection contract.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "length_mismatch_rejected",
			Args: probe.Args{
				"x": probe.Sequence(1, 2, 3),
				"y": probe.Sequence(1, 2),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "negative_size_rejected",
			Args: probe.Args{
				"x": probe.Sequence(1),
				"y": probe.Sequence(1),
				"s": probe.Scalar(-1),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "size_length_mismatch_rejected",
			Args: probe.Args{
				"x": probe.Sequence(1, 2, 3),
				"y": probe.Sequence(1, 2, 3),
				"s": probe.Sequence(1, 2),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
	)

	return out
}
