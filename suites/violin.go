package suites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func violinCases(seed int64) []probe.Case {
	op := charts.OpViolin
	var out []probe.Case

	sample := func() probe.Value {
		data := make([]float64, 40)
		for i := range data {
			data[i] = math.Sin(float64(i)) * 3
		}
		return probe.Sequence(data...)
	}

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "single_body_with_extrema",
		Args: probe.Args{
			"data": sample(),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPolygons(1),
			probe.ExpectPaths(2),
			func(d *probe.Drawing) error {
				if got := len(d.Polygons[0].XY); got != 2*charts.DefaultViolinPoints {
					return fmt.Errorf("body has %d vertices, expected %d", got, 2*charts.DefaultViolinPoints)
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "default_positions",
		Args: probe.Args{
			"data": probe.Series(
				[]float64{1, 2, 3, 4},
				[]float64{4, 5, 6, 7},
			),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPolygons(2),
			probe.EachPolygon(func(i int, p probe.Polygon) error {
				pos := float64(i + 1)
				for _, pt := range p.XY {
					if math.Abs(pt.X-pos) > charts.DefaultViolinWidth/2+probe.Epsilon {
						return fmt.Errorf("body %d strays from position %v", i, pos)
					}
				}
				return nil
			}),
		),
	})

	// Integration: stat sticks toggled per flag.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "stat_sticks",
		Args: probe.Args{
			"data":        probe.Sequence(1, 2, 3, 4, 100),
			"showmeans":   probe.Flag(true),
			"showmedians": probe.Flag(true),
			"showextrema": probe.Flag(false),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPaths(2),
			func(d *probe.Drawing) error {
				if !probe.CloseTo(d.Paths[0].Points[0].Y, 22, probe.Epsilon) {
					return fmt.Errorf("mean stick at %v, expected 22", d.Paths[0].Points[0].Y)
				}
				if !probe.CloseTo(d.Paths[1].Points[0].Y, 3, probe.Epsilon) {
					return fmt.Errorf("median stick at %v, expected 3", d.Paths[1].Points[0].Y)
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "bandwidth_scales_body",
		Args: probe.Args{
			"data":      sample(),
			"bw_method": probe.Scalar(0.2),
			"points":    probe.Scalar(40),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPolygons(1),
			func(d *probe.Drawing) error {
				if got := len(d.Polygons[0].XY); got != 80 {
					return fmt.Errorf("body has %d vertices, expected 80", got)
				}
				return nil
			},
		),
	})

	// Combinatorial: widths x stat-flag grid.
	grid := probe.Combinations([]probe.Domain{
		{Name: "widths", Values: []probe.Value{probe.Scalar(0.3), probe.Scalar(1)}},
		{Name: "showextrema", Values: []probe.Value{probe.Flag(true), probe.Flag(false)}},
		{Name: "showmedians", Values: []probe.Value{probe.Flag(true), probe.Flag(false)}},
	}, CombinatorialCap)
	for i, args := range grid {
		sticks := 0
		if b := args.Bool("showextrema", true); b {
			sticks += 2
		}
		if b := args.Bool("showmedians", false); b {
			sticks++
		}
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name: fmt.Sprintf("grid_%02d", i),
			Args: args.With("data", sample()),
			Expect: probe.ExpectSuccess(
				probe.ExpectPolygons(1),
				probe.ExpectPaths(sticks),
			),
		})
	}

	// Property: the body is mirror-symmetric around its position.
	out = append(out, probe.PropertyCases(op, "body_symmetry", seed, 5,
		"sampled dataset must have finite values",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			data := probe.RandSeq(r, 10+r.Intn(30), -20, 20)
			pos := probe.RandFloat(r, -5, 5)
			return probe.Case{
				Name: fmt.Sprintf("body_symmetry_%02d", i),
				Args: probe.Args{
					"data":      probe.Sequence(data...),
					"positions": probe.Sequence(pos),
				},
				Expect: probe.ExpectSuccess(probe.EachPolygon(func(j int, p probe.Polygon) error {
					n := len(p.XY)
					for v := 0; v < n/2; v++ {
						right, left := p.XY[v], p.XY[n-1-v]
						if !probe.CloseTo(right.X-pos, pos-left.X, 1e-3) {
							return fmt.Errorf("vertex %d not mirrored", v)
						}
					}
					return nil
				})),
			}, true
		})...)

	// Fuzz: random group shapes and knobs.
	out = append(out, probe.FuzzCases(op, "random_groups", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			k := 1 + r.Intn(3)
			groups := make([][]float64, k)
			for g := range groups {
				groups[g] = probe.RandSeq(r, 1+r.Intn(25), -10, 10)
			}
			return probe.Case{
				Name: fmt.Sprintf("random_groups_%02d", i),
				Args: probe.Args{
					"data":   probe.Series(groups...),
					"points": probe.Scalar(float64(2 + r.Intn(60))),
				},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: the extrema sticks convey the data range without
	// relying on the body fill.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "extrema_sticks_by_default",
		Args: probe.Args{
			"data": probe.Sequence(1, 2, 3, 4, 10),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPolygons(1),
			probe.ExpectPaths(2),
			func(d *probe.Drawing) error {
				if !probe.CloseTo(d.Paths[0].Points[0].Y, 1, probe.Epsilon) {
					return fmt.Errorf("min stick at %v, expected 1", d.Paths[0].Points[0].Y)
				}
				if !probe.CloseTo(d.Paths[1].Points[0].Y, 10, probe.Epsilon) {
					return fmt.Errorf("max stick at %v, expected 10", d.Paths[1].Points[0].Y)
				}
				return nil
			},
		),
	})

	// Performance: a large sample must finish inside the run budget.
	big := make([]float64, 5000)
	for i := range big {
		big[i] = math.Sin(float64(i) * 0.01)
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "five_thousand_samples",
		Args: probe.Args{
			"data":   probe.Sequence(big...),
			"points": probe.Scalar(100),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPolygons(1)),
	})

	// Special: constant data and rejection contract.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "constant_data_stays_finite",
			Args: probe.Args{
				"data": probe.Sequence(5, 5, 5, 5),
			},
			Expect: probe.ExpectSuccess(
				probe.ExpectPolygons(1),
				probe.EachPolygon(func(i int, p probe.Polygon) error {
					for _, pt := range p.XY {
						if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
							return fmt.Errorf("body vertex went NaN")
						}
					}
					return nil
				}),
			),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "nan_entries_masked",
			Args: probe.Args{
				"data": probe.Sequence(1, math.NaN(), 2, 3, 4),
			},
			Expect: probe.ExpectSuccess(
				probe.ExpectPolygons(1),
				func(d *probe.Drawing) error {
					if len(d.Markers) != 1 || !d.Markers[0].Masked {
						return fmt.Errorf("expected one masked marker")
					}
					return nil
				},
			),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "too_few_points_rejected",
			Args: probe.Args{
				"data":   probe.Sequence(1, 2, 3),
				"points": probe.Scalar(1),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "non_positive_width_rejected",
			Args: probe.Args{
				"data":   probe.Sequence(1, 2, 3),
				"widths": probe.Scalar(0),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "all_nan_dataset_rejected",
			Args: probe.Args{
				"data": probe.Sequence(math.NaN(), math.NaN()),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
	)

	return out
}
