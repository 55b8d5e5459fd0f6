package suites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func errorbarCases(seed int64) []probe.Case {
	op := charts.OpErrorBar
	var out []probe.Case

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "symmetric_vertical_stems",
		Args: probe.Args{
			"x":    probe.Sequence(1, 2, 3),
			"y":    probe.Sequence(4, 5, 6),
			"yerr": probe.Scalar(0.5),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectMarkers(3),
			probe.ExpectPaths(3),
			func(d *probe.Drawing) error {
				stem := d.Paths[0].Points
				if !probe.CloseTo(stem[0].Y, 3.5, probe.Epsilon) || !probe.CloseTo(stem[1].Y, 4.5, probe.Epsilon) {
					return fmt.Errorf("stem spans [%v, %v], expected [3.5, 4.5]", stem[0].Y, stem[1].Y)
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

	// Integration: asymmetric errors plus caps in both directions.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "asymmetric_with_caps",
		Args: probe.Args{
			"x":         probe.Sequence(1),
			"y":         probe.Sequence(10),
			"yerr_low":  probe.Sequence(1),
			"yerr_high": probe.Sequence(3),
			"capsize":   probe.Scalar(4),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPaths(1),
			probe.ExpectMarkers(3),
			func(d *probe.Drawing) error {
				stem := d.Paths[0].Points
				if !probe.CloseTo(stem[0].Y, 9, probe.Epsilon) || !probe.CloseTo(stem[1].Y, 13, probe.Epsilon) {
					return fmt.Errorf("stem spans [%v, %v], expected [9, 13]", stem[0].Y, stem[1].Y)
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "both_directions",
		Args: probe.Args{
			"x":    probe.Sequence(1, 2),
			"y":    probe.Sequence(3, 4),
			"yerr": probe.Scalar(0.5),
			"xerr": probe.Scalar(0.25),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPaths(4)),
	})

	// Combinatorial: error spec x capsize grid.
	grid := probe.Combinations([]probe.Domain{
		{Name: "yerr", Values: []probe.Value{probe.Scalar(0.1), probe.Scalar(1), probe.Sequence(0.1, 0.2, 0.3)}},
		{Name: "capsize", Values: []probe.Value{probe.Scalar(0), probe.Scalar(3)}},
	}, CombinatorialCap)
	for i, args := range grid {
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name: fmt.Sprintf("grid_%02d", i),
			Args: args.
				With("x", probe.Sequence(1, 2, 3)).
				With("y", probe.Sequence(2, 4, 6)),
			Expect: probe.ExpectSuccess(probe.ExpectPaths(3)),
		})
	}

	// Property: stems always bracket their data point.
	out = append(out, probe.PropertyCases(op, "stems_bracket_points", seed, 5,
		"sampled error magnitudes must be non-negative",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			n := 2 + r.Intn(8)
			y := probe.RandSeq(r, n, -20, 20)
			yerr := probe.RandSeq(r, n, 0, 5)
			x := make([]float64, n)
			for j := range x {
				x[j] = float64(j)
			}
			return probe.Case{
				Name: fmt.Sprintf("stems_bracket_points_%02d", i),
				Args: probe.Args{
					"x":    probe.Sequence(x...),
					"y":    probe.Sequence(y...),
					"yerr": probe.Sequence(yerr...),
				},
				Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
					for j, p := range d.Paths {
						lo, hi := p.Points[0].Y, p.Points[1].Y
						if y[j] < lo-probe.Epsilon || y[j] > hi+probe.Epsilon {
							return fmt.Errorf("stem %d [%v, %v] misses point %v", j, lo, hi, y[j])
						}
					}
					return nil
				}),
			}, true
		})...)

	// Fuzz: random magnitudes, including negatives, either reject or draw.
	out = append(out, probe.FuzzCases(op, "random_magnitudes", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			n := 1 + r.Intn(5)
			return probe.Case{
				Name: fmt.Sprintf("random_magnitudes_%02d", i),
				Args: probe.Args{
					"x":    probe.Sequence(probe.RandSeq(r, n, 0, 10)...),
					"y":    probe.Sequence(probe.RandSeq(r, n, -10, 10)...),
					"yerr": probe.Sequence(probe.RandSeq(r, n, -1, 3)...),
				},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: a high-contrast stem color is honored.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "high_contrast_stems",
		Args: probe.Args{
			"x":     probe.Sequence(1, 2, 3),
			"y":     probe.Sequence(4, 5, 6),
			"yerr":  probe.Scalar(1),
			"color": probe.Color("black"),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			for i, p := range d.Paths {
				s := p.Stroke
				if s.R != 0 || s.G != 0 || s.B != 0 || s.A != 255 {
					return fmt.Errorf("stem %d stroke %v, expected opaque black", i, s)
				}
			}
			return nil
		}),
	})

	// Performance: a long series must finish inside the run budget.
	many := make([]float64, 1000)
	for i := range many {
		many[i] = float64(i)
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "thousand_stems",
		Args: probe.Args{
			"x":    probe.Sequence(many...),
			"y":    probe.Sequence(many...),
			"yerr": probe.Scalar(0.5),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPaths(len(many))),
	})

	// Special: rejection contract and NaN masking.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "error_length_mismatch_rejected",
			Args: probe.Args{
				"x":    probe.Sequence(1, 2, 3),
				"y":    probe.Sequence(1, 2, 3),
				"yerr": probe.Sequence(1),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "conflicting_error_specs_rejected",
			Args: probe.Args{
				"x":         probe.Sequence(1),
				"y":         probe.Sequence(1),
				"yerr":      probe.Scalar(1),
				"yerr_low":  probe.Sequence(1),
				"yerr_high": probe.Sequence(1),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "negative_error_rejected",
			Args: probe.Args{
				"x":    probe.Sequence(1),
				"y":    probe.Sequence(1),
				"yerr": probe.Scalar(-0.5),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "nan_point_masked",
			Args: probe.Args{
				"x":    probe.Sequence(1, 2, 3),
				"y":    probe.Sequence(1, math.NaN(), 3),
				"yerr": probe.Scalar(0.5),
			},
			Expect: probe.ExpectSuccess(
				probe.ExpectMarkers(2),
				probe.ExpectPaths(2),
			),
		},
	)

	return out
}
