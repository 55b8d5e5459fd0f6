package suites

import (
	"fmt"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func stackedAreaCases(seed int64) []probe.Case {
	op := charts.OpStackedArea
	var out []probe.Case

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "one_polygon_per_layer",
		Args: probe.Args{
			"x": probe.Sequence(0, 1, 2),
			"ys": probe.Series(
				[]float64{1, 1, 1},
				[]float64{2, 2, 2},
				[]float64{1, 3, 2},
			),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPolygons(3)),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "layers_stack_cumulatively",
		Args: probe.Args{
			"x": probe.Sequence(0, 1),
			"ys": probe.Series(
				[]float64{1, 2},
				[]float64{3, 4},
			),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			top := d.Polygons[1].XY
			if !probe.CloseTo(top[0].Y, 4, probe.Epsilon) || !probe.CloseTo(top[1].Y, 6, probe.Epsilon) {
				return fmt.Errorf("top layer boundary [%v, %v], expected [4, 6]", top[0].Y, top[1].Y)
			}
			return nil
		}),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "empty_input_draws_nothing",
		Args: probe.Args{
			"x":  probe.Sequence(),
			"ys": probe.Series(),
		},
		Expect: probe.ExpectSuccess(probe.ExpectNoPrimitives()),
	})

	// Integration: symmetric baseline centers the total on the axis.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "sym_baseline_centers_total",
		Args: probe.Args{
			"x":        probe.Sequence(0, 1),
			"ys":       probe.Series([]float64{2, 2}, []float64{2, 2}),
			"baseline": probe.Str("sym"),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			bottom := d.Polygons[0].XY[len(d.Polygons[0].XY)-1].Y
			top := d.Polygons[1].XY[0].Y
			if !probe.CloseTo(bottom, -2, probe.Epsilon) || !probe.CloseTo(top, 2, probe.Epsilon) {
				return fmt.Errorf("envelope [%v, %v], expected [-2, 2]", bottom, top)
			}
			return nil
		}),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "negative_values_accepted",
		Args: probe.Args{
			"x":  probe.Sequence(0, 1),
			"ys": probe.Series([]float64{1, -1}, []float64{-2, 2}),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPolygons(2)),
	})

	// Combinatorial: baseline x layer-count grid.
	grid := probe.Combinations([]probe.Domain{
		{Name: "baseline", Values: []probe.Value{probe.Str("zero"), probe.Str("sym"), probe.Str("wiggle")}},
		{Name: "alpha", Values: []probe.Value{probe.Scalar(0.4), probe.Scalar(1)}},
	}, CombinatorialCap)
	for i, args := range grid {
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name: fmt.Sprintf("grid_%02d", i),
			Args: args.
				With("x", probe.Sequence(0, 1, 2, 3)).
				With("ys", probe.Series(
					[]float64{1, 2, 1, 2},
					[]float64{2, 1, 2, 1},
					[]float64{1, 1, 1, 1},
				)),
			Expect: probe.ExpectSuccess(probe.ExpectPolygons(3)),
		})
	}

	// Property: with the zero baseline, layer boundaries never cross for
	// non-negative data.
	out = append(out, probe.PropertyCases(op, "monotone_boundaries", seed, 5,
		"sampled layers must be non-negative",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			n := 2 + r.Intn(8)
			k := 2 + r.Intn(3)
			x := make([]float64, n)
			for j := range x {
				x[j] = float64(j)
			}
			layers := make([][]float64, k)
			for li := range layers {
				layers[li] = probe.RandSeq(r, n, 0, 5)
			}
			return probe.Case{
				Name: fmt.Sprintf("monotone_boundaries_%02d", i),
				Args: probe.Args{
					"x":  probe.Sequence(x...),
					"ys": probe.Series(layers...),
				},
				Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
					for li := 1; li < len(d.Polygons); li++ {
						for j := 0; j < n; j++ {
							below := d.Polygons[li-1].XY[j].Y
							above := d.Polygons[li].XY[j].Y
							if above < below-probe.Epsilon {
								return fmt.Errorf("layer %d dips under layer %d at x=%d", li, li-1, j)
							}
						}
					}
					return nil
				}),
			}, true
		})...)

	// Fuzz: random layer shapes either stack or reject.
	out = append(out, probe.FuzzCases(op, "random_layer_shapes", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			n := 2 + r.Intn(6)
			k := 1 + r.Intn(4)
			layers := make([][]float64, k)
			for li := range layers {
				// Occasionally generate a ragged layer.
				m := n
				if r.Intn(4) == 0 {
					m = 1 + r.Intn(n)
				}
				layers[li] = probe.RandSeq(r, m, -5, 5)
			}
			x := make([]float64, n)
			for j := range x {
				x[j] = float64(j)
			}
			return probe.Case{
				Name: fmt.Sprintf("random_layer_shapes_%02d", i),
				Args: probe.Args{
					"x":  probe.Sequence(x...),
					"ys": probe.Series(layers...),
				},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: per-layer labels recorded in order.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "layer_labels_recorded",
		Args: probe.Args{
			"x":      probe.Sequence(0, 1),
			"ys":     probe.Series([]float64{1, 1}, []float64{2, 2}),
			"labels": probe.Strings("baseline", "delta"),
		},
		Expect: probe.ExpectSuccess(probe.ExpectLabelTexts("baseline", "delta")),
	})

	// Performance: many long layers must finish inside the run budget.
	longX := make([]float64, 2000)
	for i := range longX {
		longX[i] = float64(i)
	}
	layers := make([][]float64, 8)
	for li := range layers {
		layer := make([]float64, len(longX))
		for j := range layer {
			layer[j] = float64((j + li) % 5)
		}
		layers[li] = layer
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "eight_layers_two_thousand_points",
		Args: probe.Args{
			"x":  probe.Sequence(longX...),
			"ys": probe.Series(layers...),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPolygons(len(layers))),
	})

	// Special: rejection contract.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "ragged_layers_rejected",
			Args: probe.Args{
				"x":  probe.Sequence(0, 1, 2),
				"ys": probe.Series([]float64{1, 2, 3}, []float64{1, 2}),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "unknown_baseline_rejected",
			Args: probe.Args{
				"x":        probe.Sequence(0, 1),
				"ys":       probe.Series([]float64{1, 2}),
				"baseline": probe.Str("tilted"),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
	)

	return out
}
