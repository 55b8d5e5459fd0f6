package suites

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func boxCases(seed int64) []probe.Case {
	op := charts.OpBox
	var out []probe.Case

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "single_box_five_stats",
		Args: probe.Args{
			"data": probe.Sequence(1, 2, 3, 4, 5, 6, 7, 8, 9),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectBoxes(1),
			probe.ExpectPaths(2),
			func(d *probe.Drawing) error {
				b := d.Boxes[0]
				if !probe.CloseTo(b.Median, 5, probe.Epsilon) {
					return fmt.Errorf("median %v, expected 5", b.Median)
				}
				if b.Q1 > b.Median || b.Median > b.Q3 {
					return fmt.Errorf("quartiles out of order: %v %v %v", b.Q1, b.Median, b.Q3)
				}
				if b.AdjLow > b.Q1 || b.AdjHigh < b.Q3 {
					return fmt.Errorf("whiskers inside the box")
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "default_positions",
		Args: probe.Args{
			"data": probe.Series(
				[]float64{1, 2, 3},
				[]float64{4, 5, 6},
				[]float64{7, 8, 9},
			),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectBoxes(3),
			func(d *probe.Drawing) error {
				for i, b := range d.Boxes {
					if !probe.CloseTo(b.Location, float64(i+1), probe.Epsilon) {
						return fmt.Errorf("box %d at %v, expected %d", i, b.Location, i+1)
					}
				}
				return nil
			},
		),
	})

	// Integration: outliers flagged and hideable without changing stats.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "outlier_detection",
		Args: probe.Args{
			"data": probe.Sequence(1, 2, 2, 3, 3, 3, 4, 4, 5, 100),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			if len(d.Boxes) != 1 || len(d.Boxes[0].Outliers) == 0 {
				return fmt.Errorf("expected at least one outlier")
			}
			if d.VisibleMarkers() != len(d.Boxes[0].Outliers) {
				return fmt.Errorf("flier markers do not match outliers")
			}
			return nil
		}),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "hidden_fliers_keep_stats",
		Args: probe.Args{
			"data":       probe.Sequence(1, 2, 2, 3, 3, 3, 4, 4, 5, 100),
			"showfliers": probe.Flag(false),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			if d.VisibleMarkers() != 0 {
				return fmt.Errorf("fliers rendered despite showfliers=false")
			}
			if len(d.Boxes[0].Outliers) == 0 {
				return fmt.Errorf("outlier stats dropped with the markers")
			}
			return nil
		}),
	})

	// Combinatorial: widths x positions grid over two datasets.
	grid := probe.Combinations([]probe.Domain{
		{Name: "widths", Values: []probe.Value{probe.Scalar(0.3), probe.Scalar(0.5), probe.Scalar(0.9)}},
		{Name: "positions", Values: []probe.Value{
			probe.Sequence(1, 2),
			probe.Sequence(0, 10),
		}},
	}, CombinatorialCap)
	for i, args := range grid {
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name: fmt.Sprintf("grid_%02d", i),
			Args: args.With("data", probe.Series(
				[]float64{1, 2, 3, 4, 5},
				[]float64{2, 4, 6, 8, 10},
			)),
			Expect: probe.ExpectSuccess(probe.ExpectBoxes(2), probe.ExpectPaths(4)),
		})
	}

	// Property: the five-number summary brackets every finite sample.
	out = append(out, probe.PropertyCases(op, "summary_brackets_data", seed, 5,
		"sampled dataset must have finite values",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			n := 5 + r.Intn(30)
			data := probe.RandSeq(r, n, -100, 100)
			sorted := append([]float64(nil), data...)
			sort.Float64s(sorted)
			return probe.Case{
				Name: fmt.Sprintf("summary_brackets_data_%02d", i),
				Args: probe.Args{"data": probe.Sequence(data...)},
				Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
					b := d.Boxes[0]
					if b.Median < sorted[0]-probe.Epsilon || b.Median > sorted[n-1]+probe.Epsilon {
						return fmt.Errorf("median %v outside the data range", b.Median)
					}
					if b.Q1 > b.Q3 {
						return fmt.Errorf("Q1 %v above Q3 %v", b.Q1, b.Q3)
					}
					return nil
				}),
			}, true
		})...)

	// Fuzz: random datasets of random group counts.
	out = append(out, probe.FuzzCases(op, "random_groups", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			k := 1 + r.Intn(4)
			groups := make([][]float64, k)
			for g := range groups {
				groups[g] = probe.RandSeq(r, 1+r.Intn(20), -50, 50)
			}
			return probe.Case{
				Name:   fmt.Sprintf("random_groups_%02d", i),
				Args:   probe.Args{"data": probe.Series(groups...)},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: tick labels recorded per box.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "tick_labels_recorded",
		Args: probe.Args{
			"data":   probe.Series([]float64{1, 2, 3}, []float64{4, 5, 6}),
			"labels": probe.Strings("control", "treatment"),
		},
		Expect: probe.ExpectSuccess(probe.ExpectLabelTexts("control", "treatment")),
	})

	// Performance: a large group must finish inside the run budget.
	big := make([]float64, 20000)
	for i := range big {
		big[i] = math.Sin(float64(i) * 0.01)
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "twenty_thousand_samples",
		Args: probe.Args{
			"data": probe.Sequence(big...),
		},
		Expect: probe.ExpectSuccess(probe.ExpectBoxes(1)),
	})

	// Special: non-finite handling and rejection contract.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "nan_and_inf_masked",
			Args: probe.Args{
				"data": probe.Sequence(1, 2, math.NaN(), 3, math.Inf(1), 4, 5),
			},
			Expect: probe.ExpectSuccess(
				probe.ExpectBoxes(1),
				func(d *probe.Drawing) error {
					if !probe.CloseTo(d.Boxes[0].Median, 3, probe.Epsilon) {
						return fmt.Errorf("median %v, expected 3 after masking", d.Boxes[0].Median)
					}
					return nil
				},
			),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "all_nan_dataset_rejected",
			Args: probe.Args{
				"data": probe.Sequence(math.NaN(), math.NaN()),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "non_positive_width_rejected",
			Args: probe.Args{
				"data":   probe.Sequence(1, 2, 3),
				"widths": probe.Scalar(-1),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "positions_mismatch_rejected",
			Args: probe.Args{
				"data":      probe.Series([]float64{1, 2}, []float64{3, 4}),
				"positions": probe.Sequence(1),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
	)

	return out
}
