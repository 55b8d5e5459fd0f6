package suites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func pieCases(seed int64) []probe.Case {
	op := charts.OpPie
	var out []probe.Case

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "shares_sum_to_one",
		Args: probe.Args{
			"values": probe.Sequence(1, 2, 3, 4),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectWedges(4),
			func(d *probe.Drawing) error {
				total := 0.0
				for _, w := range d.Wedges {
					total += w.Frac
				}
				if !probe.CloseTo(total, 1, probe.Epsilon) {
					return fmt.Errorf("slice shares sum to %v", total)
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "full_circle_span",
		Args: probe.Args{
			"values": probe.Sequence(3, 3, 3),
		},
		Expect: probe.ExpectSuccess(probe.EachWedge(func(i int, w probe.Wedge) error {
			if !probe.CloseTo(math.Abs(w.Theta2-w.Theta1), 120, probe.Epsilon) {
				return fmt.Errorf("span %v, expected 120", w.Theta2-w.Theta1)
			}
			return nil
		})),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "empty_input_draws_nothing",
		Args: probe.Args{
			"values": probe.Sequence(),
		},
		Expect: probe.ExpectSuccess(probe.ExpectNoPrimitives()),
	})

	// Integration: explode shifts only the exploded slice off center.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "explode_shifts_one_slice",
		Args: probe.Args{
			"values":  probe.Sequence(1, 1, 1),
			"explode": probe.Sequence(0, 0.2, 0),
			"labels":  probe.Strings("a", "b", "c"),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectWedges(3),
			probe.EachWedge(func(i int, w probe.Wedge) error {
				offset := math.Hypot(w.CX, w.CY)
				want := 0.0
				if i == 1 {
					want = 0.2
				}
				if !probe.CloseTo(offset, want, probe.Epsilon) {
					return fmt.Errorf("offset %v, expected %v", offset, want)
				}
				return nil
			}),
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "autopct_renders_percentages",
		Args: probe.Args{
			"values":  probe.Sequence(1, 3),
			"autopct": probe.Flag(true),
		},
		Expect: probe.ExpectSuccess(probe.ExpectLabelTexts("25.0%", "75.0%")),
	})

	// Combinatorial: startangle x counterclock x radius grid.
	grid := probe.Combinations([]probe.Domain{
		{Name: "startangle", Values: []probe.Value{probe.Scalar(0), probe.Scalar(90), probe.Scalar(180)}},
		{Name: "counterclock", Values: []probe.Value{probe.Flag(true), probe.Flag(false)}},
		{Name: "radius", Values: []probe.Value{probe.Scalar(0.5), probe.Scalar(1), probe.Scalar(2)}},
	}, CombinatorialCap)
	for i, args := range grid {
		radius := args.Float("radius", 1)
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name: fmt.Sprintf("grid_%02d", i),
			Args: args.With("values", probe.Sequence(2, 3, 5)),
			Expect: probe.ExpectSuccess(
				probe.ExpectWedges(3),
				probe.EachWedge(func(j int, w probe.Wedge) error {
					if !probe.CloseTo(w.Radius, radius, probe.Epsilon) {
						return fmt.Errorf("radius %v, expected %v", w.Radius, radius)
					}
					return nil
				}),
			),
		})
	}

	// Property: angular spans stay proportional to the values.
	out = append(out, probe.PropertyCases(op, "span_proportionality", seed, 5,
		"sampled values must be positive",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			n := 2 + r.Intn(5)
			values := probe.RandSeq(r, n, 0.1, 10)
			sum := 0.0
			for _, v := range values {
				sum += v
			}
			return probe.Case{
				Name: fmt.Sprintf("span_proportionality_%02d", i),
				Args: probe.Args{"values": probe.Sequence(values...)},
				Expect: probe.ExpectSuccess(probe.EachWedge(func(j int, w probe.Wedge) error {
					want := values[j] / sum * 360
					if !probe.CloseTo(math.Abs(w.Theta2-w.Theta1), want, 1e-3) {
						return fmt.Errorf("span %v, expected %v", math.Abs(w.Theta2-w.Theta1), want)
					}
					return nil
				})),
			}, true
		})...)

	// Fuzz: arbitrary value vectors either draw a full pie or reject.
	out = append(out, probe.FuzzCases(op, "random_values", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			n := 1 + r.Intn(6)
			return probe.Case{
				Name: fmt.Sprintf("random_values_%02d", i),
				Args: probe.Args{"values": probe.Sequence(probe.RandSeq(r, n, -1, 10)...)},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: slice labels survive into the drawing.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "labels_recorded",
		Args: probe.Args{
			"values": probe.Sequence(1, 2, 3),
			"labels": probe.Strings("apples", "pears", "plums"),
		},
		Expect: probe.ExpectSuccess(probe.ExpectLabelTexts("apples", "pears", "plums")),
	})

	// Performance: many slices must finish inside the run budget.
	many := make([]float64, 500)
	for i := range many {
		many[i] = float64(i + 1)
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "five_hundred_slices",
		Args: probe.Args{
			"values": probe.Sequence(many...),
		},
		Expect: probe.ExpectSuccess(probe.ExpectWedges(len(many))),
	})

	// Special: rejection contract.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "zero_sum_rejected",
			Args:   probe.Args{"values": probe.Sequence(0, 0, 0)},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "negative_value_rejected",
			Args:   probe.Args{"values": probe.Sequence(1, -2, 3)},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "nan_value_rejected",
			Args:   probe.Args{"values": probe.Sequence(1, math.NaN())},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "label_length_mismatch_rejected",
			Args: probe.Args{
				"values": probe.Sequence(1, 2, 3),
				"labels": probe.Strings("only-one"),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
	)

	return out
}
