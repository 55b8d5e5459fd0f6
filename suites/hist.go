package suites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func histCases(seed int64) []probe.Case {
	op := charts.OpHist
	var out []probe.Case

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "five_bins_counts",
		Args: probe.Args{
			"data": probe.Sequence(1, 2, 2, 3, 3, 3, 4, 4, 5),
			"bins": probe.Scalar(5),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectBins(5),
			probe.ExpectRects(5),
			func(d *probe.Drawing) error {
				if !probe.CloseTo(d.Bins[2].Weight, 3, probe.Epsilon) {
					return fmt.Errorf("middle bin weight %v, expected 3", d.Bins[2].Weight)
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "default_bin_count",
		Args: probe.Args{
			"data": probe.Sequence(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11),
		},
		Expect: probe.ExpectSuccess(probe.ExpectBins(charts.DefaultHistBins)),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "empty_data_zero_bins",
		Args: probe.Args{
			"data": probe.Sequence(),
		},
		Expect: probe.ExpectSuccess(probe.ExpectNoPrimitives()),
	})

	// Integration: density normalization makes the total area 1.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "density_area_is_one",
		Args: probe.Args{
			"data":    probe.Sequence(1, 1, 2, 2, 3, 3, 4, 4),
			"bins":    probe.Scalar(4),
			"density": probe.Flag(true),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			area := 0.0
			for _, b := range d.Bins {
				area += b.Weight * (b.Max - b.Min)
			}
			if !probe.CloseTo(area, 1, probe.Epsilon) {
				return fmt.Errorf("density area %v, expected 1", area)
			}
			return nil
		}),
	})

	// Combinatorial: bins x density grid over one dataset.
	grid := probe.Combinations([]probe.Domain{
		{Name: "bins", Values: []probe.Value{probe.Scalar(1), probe.Scalar(4), probe.Scalar(16)}},
		{Name: "density", Values: []probe.Value{probe.Flag(false), probe.Flag(true)}},
	}, CombinatorialCap)
	for i, args := range grid {
		bins := int(args.Float("bins", 0))
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name:   fmt.Sprintf("grid_%02d", i),
			Args:   args.With("data", probe.Sequence(0, 1, 1, 2, 3, 5, 8, 13)),
			Expect: probe.ExpectSuccess(probe.ExpectBins(bins)),
		})
	}

	// Property: bin weights always total the finite sample count and the
	// edges tile the range without gaps.
	out = append(out, probe.PropertyCases(op, "weights_total_samples", seed, 5,
		"sampled data must span a nonzero range",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			n := 8 + r.Intn(40)
			data := probe.RandSeq(r, n, -50, 50)
			return probe.Case{
				Name: fmt.Sprintf("weights_total_samples_%02d", i),
				Args: probe.Args{
					"data": probe.Sequence(data...),
					"bins": probe.Scalar(float64(2 + r.Intn(10))),
				},
				Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
					total := 0.0
					for j, b := range d.Bins {
						total += b.Weight
						if j > 0 && !probe.CloseTo(b.Min, d.Bins[j-1].Max, probe.Epsilon) {
							return fmt.Errorf("gap between bins %d and %d", j-1, j)
						}
					}
					if !probe.CloseTo(total, float64(n), probe.Epsilon) {
						return fmt.Errorf("weights total %v, expected %d", total, n)
					}
					return nil
				}),
			}, true
		})...)

	// Fuzz: arbitrary data and bin counts.
	out = append(out, probe.FuzzCases(op, "random_data", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			n := r.Intn(30)
			return probe.Case{
				Name: fmt.Sprintf("random_data_%02d", i),
				Args: probe.Args{
					"data": probe.Sequence(probe.RandSeq(r, n, -1000, 1000)...),
					"bins": probe.Scalar(float64(r.Intn(12))),
				},
				Expect: probe.ExpectEither(probe.KindInvalidArgument),
			}
		})...)

	// Accessibility: a high-contrast patch color override is honored on
	// every bin.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "high_contrast_patches",
		Args: probe.Args{
			"data":  probe.Sequence(1, 2, 2, 3, 3, 4),
			"bins":  probe.Scalar(4),
			"color": probe.Color("black"),
		},
		Expect: probe.ExpectSuccess(probe.EachRect(func(i int, r probe.Rect) error {
			if r.Face.R != 0 || r.Face.G != 0 || r.Face.B != 0 || r.Face.A != 255 {
				return fmt.Errorf("patch %d face %v, expected opaque black", i, r.Face)
			}
			return nil
		})),
	})

	// Performance: a large sample.
	big := make([]float64, 50000)
	for i := range big {
		big[i] = math.Sin(float64(i) * 0.01)
	}
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "fifty_thousand_samples",
		Args: probe.Args{
			"data": probe.Sequence(big...),
			"bins": probe.Scalar(64),
		},
		Expect: probe.ExpectSuccess(probe.ExpectBins(64)),
	})

	// Special: NaN handling, constant data, rejection contract.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "nan_entries_masked",
			Args: probe.Args{
				"data": probe.Sequence(1, math.NaN(), 2, 3),
				"bins": probe.Scalar(2),
			},
			Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
				total := 0.0
				for _, b := range d.Bins {
					total += b.Weight
				}
				if !probe.CloseTo(total, 3, probe.Epsilon) {
					return fmt.Errorf("finite weight %v, expected 3", total)
				}
				if d.VisibleMarkers() != 0 || len(d.Markers) != 1 {
					return fmt.Errorf("expected exactly one masked marker")
				}
				return nil
			}),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "constant_data_single_bin",
			Args: probe.Args{
				"data": probe.Sequence(7, 7, 7, 7),
			},
			Expect: probe.ExpectSuccess(probe.ExpectBins(1)),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "zero_bins_rejected",
			Args: probe.Args{
				"data": probe.Sequence(1, 2, 3),
				"bins": probe.Scalar(0),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "infinite_data_rejected",
			Args: probe.Args{
				"data": probe.Sequence(1, math.Inf(1)),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
	)

	return out
}
