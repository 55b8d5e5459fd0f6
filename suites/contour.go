package suites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

func saddle(r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			x := float64(j)/float64(c-1)*4 - 2
			y := float64(i)/float64(r-1)*4 - 2
			rows[i][j] = x*x - y*y
		}
	}
	return rows
}

func contourCases(seed int64) []probe.Case {
	op := charts.OpContour
	var out []probe.Case

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "default_level_count",
		Args: probe.Args{
			"z": probe.Matrix(saddle(10, 10)),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPaths(charts.DefaultContourLevels),
			func(d *probe.Drawing) error {
				for i := 1; i < len(d.Paths); i++ {
					if d.Paths[i].Level <= d.Paths[i-1].Level {
						return fmt.Errorf("levels not increasing at %d", i)
					}
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "manual_levels_respected",
		Args: probe.Args{
			"z":      probe.Matrix(saddle(8, 8)),
			"levels": probe.Sequence(-2, -1, 0, 1, 2),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPaths(5),
			func(d *probe.Drawing) error {
				want := []float64{-2, -1, 0, 1, 2}
				for i, p := range d.Paths {
					if !probe.CloseTo(p.Level, want[i], probe.Epsilon) {
						return fmt.Errorf("level %d is %v, expected %v", i, p.Level, want[i])
					}
				}
				return nil
			},
		),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryBasic, Name: "filled_bands_tile_range",
		Args: probe.Args{
			"z":      probe.Matrix(saddle(8, 8)),
			"levels": probe.Sequence(-2, 0, 2),
			"filled": probe.Flag(true),
		},
		Expect: probe.ExpectSuccess(
			probe.ExpectPolygons(4),
			func(d *probe.Drawing) error {
				for i := 1; i < len(d.Polygons); i++ {
					if !probe.CloseTo(d.Polygons[i].Low, d.Polygons[i-1].High, probe.Epsilon) {
						return fmt.Errorf("gap between bands %d and %d", i-1, i)
					}
				}
				return nil
			},
		),
	})

	// Integration: coordinate vectors rescale the grid.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryIntegration, Name: "coordinate_vectors",
		Args: probe.Args{
			"z": probe.Matrix(saddle(4, 6)),
			"x": probe.Sequence(0, 10, 20, 30, 40, 50),
			"y": probe.Sequence(0, 5, 10, 15),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPaths(charts.DefaultContourLevels)),
	})

	// Combinatorial: nlevels x explicit colors grid.
	grid := probe.Combinations([]probe.Domain{
		{Name: "nlevels", Values: []probe.Value{probe.Scalar(3), probe.Scalar(7), probe.Scalar(12)}},
	}, CombinatorialCap)
	for i, args := range grid {
		n := int(args.Float("nlevels", 0))
		out = append(out, probe.Case{
			Op: op, Category: types.CategoryCombinatorial,
			Name:   fmt.Sprintf("grid_%02d", i),
			Args:   args.With("z", probe.Matrix(saddle(6, 6))),
			Expect: probe.ExpectSuccess(probe.ExpectPaths(n)),
		})
	}

	// Property: auto levels always sit strictly inside the z range.
	out = append(out, probe.PropertyCases(op, "levels_inside_range", seed, 5,
		"sampled grid must span a nonzero range",
		func(i int, r *rand.Rand) (probe.Case, bool) {
			rows := 2 + r.Intn(6)
			cols := 2 + r.Intn(6)
			z := make([][]float64, rows)
			zmin, zmax := math.Inf(1), math.Inf(-1)
			for ri := range z {
				z[ri] = probe.RandSeq(r, cols, -10, 10)
				for _, v := range z[ri] {
					zmin = math.Min(zmin, v)
					zmax = math.Max(zmax, v)
				}
			}
			if zmax <= zmin {
				return probe.Case{}, false
			}
			return probe.Case{
				Name: fmt.Sprintf("levels_inside_range_%02d", i),
				Args: probe.Args{"z": probe.Matrix(z)},
				Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
					for _, p := range d.Paths {
						if p.Level <= zmin || p.Level >= zmax {
							return fmt.Errorf("level %v outside (%v, %v)", p.Level, zmin, zmax)
						}
					}
					return nil
				}),
			}, true
		})...)

	// Fuzz: random grid shapes probe the shape contract.
	out = append(out, probe.FuzzCases(op, "random_grid_shapes", seed, probe.DefaultFuzzSamples,
		func(i int, r *rand.Rand) probe.Case {
			rows := 1 + r.Intn(5)
			cols := 1 + r.Intn(5)
			z := make([][]float64, rows)
			for ri := range z {
				z[ri] = probe.RandSeq(r, cols, -3, 3)
			}
			return probe.Case{
				Name:   fmt.Sprintf("random_grid_shapes_%02d", i),
				Args:   probe.Args{"z": probe.Matrix(z)},
				Expect: probe.ExpectEither(probe.KindInvalidArgument, probe.KindUnsupportedShape),
			}
		})...)

	// Accessibility: the default palette keeps neighboring levels and
	// bands distinguishable.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "default_palette_distinct_levels",
		Args: probe.Args{
			"z": probe.Matrix(saddle(6, 6)),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			for i := 1; i < len(d.Paths); i++ {
				if d.Paths[i].Stroke == d.Paths[i-1].Stroke {
					return fmt.Errorf("levels %d and %d share stroke color", i-1, i)
				}
			}
			return nil
		}),
	})

	out = append(out, probe.Case{
		Op: op, Category: types.CategoryAccessibility, Name: "filled_bands_distinct_faces",
		Args: probe.Args{
			"z":      probe.Matrix(saddle(6, 6)),
			"filled": probe.Flag(true),
		},
		Expect: probe.ExpectSuccess(func(d *probe.Drawing) error {
			for i := 1; i < len(d.Polygons); i++ {
				if d.Polygons[i].Face == d.Polygons[i-1].Face {
					return fmt.Errorf("bands %d and %d share face color", i-1, i)
				}
			}
			return nil
		}),
	})

	// Performance: a dense grid must finish inside the run budget.
	out = append(out, probe.Case{
		Op: op, Category: types.CategoryPerformance, Name: "dense_grid",
		Args: probe.Args{
			"z":       probe.Matrix(saddle(80, 80)),
			"nlevels": probe.Scalar(10),
		},
		Expect: probe.ExpectSuccess(probe.ExpectPaths(10)),
	})

	// Special: shape and level contract.
	out = append(out,
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "single_row_rejected",
			Args:   probe.Args{"z": probe.Matrix([][]float64{{1, 2, 3}})},
			Expect: probe.ExpectError(probe.KindUnsupportedShape),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "ragged_grid_rejected",
			Args:   probe.Args{"z": probe.Matrix([][]float64{{1, 2, 3}, {4, 5}})},
			Expect: probe.ExpectError(probe.KindUnsupportedShape),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "coordinate_mismatch_rejected",
			Args: probe.Args{
				"z": probe.Matrix(saddle(3, 3)),
				"x": probe.Sequence(0, 1),
			},
			Expect: probe.ExpectError(probe.KindUnsupportedShape),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "descending_levels_rejected",
			Args: probe.Args{
				"z":      probe.Matrix(saddle(3, 3)),
				"levels": probe.Sequence(2, 1, 0),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "constant_grid_draws_nothing",
			Args: probe.Args{
				"z": probe.Matrix([][]float64{{4, 4}, {4, 4}}),
			},
			Expect: probe.ExpectSuccess(probe.ExpectNoPrimitives()),
		},
		probe.Case{
			Op: op, Category: types.CategorySpecial, Name: "nan_grid_rejected",
			Args: probe.Args{
				"z": probe.Matrix([][]float64{{1, 2}, {math.NaN(), 3}}),
			},
			Expect: probe.ExpectError(probe.KindInvalidArgument),
		},
	)

	return out
}
