package suites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func barCases(seed int64) []probe.Case {
	op := charts.OpBar
	var out []probe.Case

	// Basic: three bars at default width, anchored half a width left of
	// each x position.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "three_bars_default_width",
		Args: probe.Args{
			"x":      probe.Sequence(1, 2, 3),
			"height": probe.Sequence(4, 5, 6),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectRects(3),
			probe.EachRect(func(i int, r probe.Rect) error {
				if !probe.CloseTo(r.Width, charts.DefaultBarWidth, probe.Epsilon) {
					return fmt.Errorf("width %v, expected %v", r.Width, charts.DefaultBarWidth)
				}
				want := float64(i+1) - charts.DefaultBarWidth/2
				if !probe.CloseTo(r.X, want, probe.Epsilon) {
					return fmt.Errorf("anchor %v, expected %v", r.X, want)
				}
				return nil
			}),
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "edge_alignment",
		Args: probe.Args{
			"x":      probe.Sequence(0, 1, 2),
			"height": probe.Sequence(1, 2, 3),
			"align":  probe.Str("edge"),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectRects(3),
			probe.EachRect(func(i int, r probe.Rect) error {
				if !probe.CloseTo(r.X, float64(i), probe.Epsilon) {
					return fmt.Errorf("edge anchor %v, expected %v", r.X, float64(i))
				}
				return nil
			}),
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "empty_input_draws_nothing",
		Args: probe.Args{
			"x":      probe.Sequence(),
			"height": probe.Sequence(),
		},
		Expect: probe.ExpectSuccess(probe.ExpectNoPrimitives()),
	})

	// Integration: stacked bottoms plus error stems in one call.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "bottom_with_yerr",
		Args: probe.Args{
			"x":      probe.Sequence(1, 2, 3),
			"height": probe.Sequence(2, 2, 2),
			"bottom": probe.Sequence(1, 2, 3),
			"yerr":   probe.Sequence(0.5, 0.5, 0.5),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectRects(3),
			probe.ExpectPaths(3),
			probe.EachRect(func(i int, r probe.Rect) error {
				if !probe.CloseTo(r.Y, float64(i+1), probe.Epsilon) {
					return fmt.Errorf("bottom %v, expected %v", r.Y, float64(i+1))
				}
				return nil
			}),
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "masked_entries_keep_indices",
		Args: probe.Args{
			"x":      probe.Sequence(1, 2, 3, 4),
			"height": probe.Sequence(1, 2, 3, 4),
			"mask":   probe.Sequence(0, 1, 0, 1),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectRects(4),
			probe.ExpectVisibleRects(2),
		),
	})

	// Combinatorial: align x width x alpha grid.
	grid := probe.Combinations([]probe.Domain{
		{Name: "align", Values: []probe.Value{probe.Str("center"), probe.Str("edge")}},
		{Name: "width", Values: []probe.Value{probe.Scalar(0.4), probe.Scalar(0.8), probe.Scalar(1.0)}},
		{Name: "alpha", Values: []probe.Value{probe.Scalar(0.5), probe.Scalar(1.0)}},
	}, CombinatorialCap)
	for i, args := range grid {
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name: fmt.Sprintf("grid_%02d", i),
			Args: args.
				With("x", probe.Sequence(1, 2, 3)).
				With("height", probe.Sequence(3, 1, 2)),
			Expect: probe.ExpectSuccess(probe.ExpectRects(3)),
		})
	}

	// Property: bars never overlap when widths stay under the spacing.
	out = append(out, probe.PropertyCases(op, "disjoint_bars", seed, 5,
		"sampled width must stay under the x spacing",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			n := 3 + r.Intn(5)
			width := probe.RandFloat(r, 0.1, 0.9)
			x := make([]float64, n)
			for j := range x {
				x[j] = float64(j)
			}
			h := probe.RandSeq(r, n, 0.5, 10)
			return probe.Case{
				Name: fmt.Sprintf("disjoint_bars_%02d", i),
				Args: probe.Args{
					"x":      probe.Sequence(x...),
					"height": probe.Sequence(h...),
					"width":  probe.Scalar(width),
				},
				Expect: probe.ExpectSuccess(
					probe.ExpectRects(n),
					probe.EachRect(func(j int, rect probe.Rect) error {
						if rect.X+rect.Width > float64(j)+0.5+probe.Epsilon {
							return fmt.Errorf("bar %d spills into its neighbor", j)
						}
						return nil
					}),
				),
			}, true
		})...)

	// Fuzz: arbitrary strings probe the color contract; both acceptance
	// and a clean rejection are valid outcomes.
	out = append(out, probe.FuzzCases(op, "random_color_strings", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			spec := probe.RandWord(r, 2+r.Intn(8))
			return probe.Case{
				Name: fmt.Sprintf("random_color_strings_%02d", i),
				Args: probe.Args{
					"x":      probe.Sequence(1, 2, 3),
					"height": probe.Sequence(1, 2, 3),
					"color":  probe.Color(spec),
				},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	out = append(out, probe.FuzzCases(op, "random_heights", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			n := 1 + r.Intn(6)
			return probe.Case{
				Name: fmt.Sprintf("random_heights_%02d", i),
				Args: probe.Args{
					"x":      probe.Sequence(probe.RandSeq(r, n, -100, 100)...),
					"height": probe.Sequence(probe.RandSeq(r, n, -100, 100)...),
				},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: default palette keeps adjacent bars distinguishable
	// and legend labels reach the drawing.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "default_palette_distinct",
		Args: probe.Args{
			"x":      probe.Sequence(1, 2, 3, 4),
			"height": probe.Sequence(1, 2, 3, 4),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			for i := 1; i < len(d.Rects); i++ {
				if d.Rects[i].Face == d.Rects[i-1].Face {
					return fmt.Errorf("bars %d and %d share face color", i-1, i)
				}
			}
			return nil
		}),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "legend_label_recorded",
		Args: probe.Args{
			"x":      probe.Sequence(1, 2),
			"height": probe.Sequence(1, 2),
			"label":  probe.Str("revenue"),
		},
		Expect: probe.ExpectSuccess(probe.ExpectLabelTexts("revenue")),
	})

	// Performance: a wide series must finish inside the run budget.
	wide := make([]float64, 2000)
	for i := range wide {
		wide[i] = float64(i)
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "two_thousand_bars",
		Args: probe.Args{
			"x":      probe.Sequence(wide...),
			"height": probe.Sequence(wide...),
		},
		Expect: probe.ExpectSuccess(probe.ExpectRects(len(wide))),
	})

	// Special: contract violations and awkward numerics.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "mismatched_lengths_rejected",
			Args: probe.Args{
				"x":      probe.Sequence(1, 2, 3),
				"height": probe.Sequence(1, 2),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "unknown_align_rejected",
			Args: probe.Args{
				"x":      probe.Sequence(1),
				"height": probe.Sequence(1),
				"align":  probe.Str("left"),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "non_positive_width_rejected",
			Args: probe.Args{
				"x":      probe.Sequence(1),
				"height": probe.Sequence(1),
				"width":  probe.Scalar(0),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "nan_height_preserved",
			Args: probe.Args{
				"x":      probe.Sequence(1, 2),
				"height": probe.Sequence(math.NaN(), 3),
			},
			Expect: probe.ExpectSuccess(
				probe.ExpectRects(2),
				func(d *probe.Drawing) error {
					if !math.IsNaN(d.Rects[0].Height) {
						return fmt.Errorf("NaN height was rewritten to %v", d.Rects[0].Height)
					}
					return nil
				},
			),
		},
	)

	return out
}
