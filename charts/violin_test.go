package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartprobe/chartprobe/probe"
)

func violinData() []float64 {
	out := make([]float64, 40)
	for i := range out {
		out[i] = math.Sin(float64(i)) * 3
	}
	return out
}

func TestViolinBody(t *testing.T) {
	d, err := run(t, Violin, probe.Args{
		"data":   probe.Sequence(violinData()...),
		"points": probe.Scalar(50),
	})
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	assert.Len(t, d.Polygons[0].XY, 100, "body mirrors the density samples")

	// The body straddles its position symmetrically.
	for i, pt := range d.Polygons[0].XY[:50] {
		mirror := d.Polygons[0].XY[99-i]
		assert.InDelta(t, pt.Y, mirror.Y, probe.Epsilon)
		assert.InDelta(t, pt.X-1, 1-mirror.X, probe.Epsilon)
	}
}

func TestViolinDefaultExtrema(t *testing.T) {
	d, err := run(t, Violin, probe.Args{
		"data": probe.Sequence(1, 2, 3, 4, 5),
	})
	require.NoError(t, err)
	require.Len(t, d.Paths, 2, "extrema sticks shown by default")
	assert.InDelta(t, 1.0, d.Paths[0].Points[0].Y, probe.Epsilon)
	assert.InDelta(t, 5.0, d.Paths[1].Points[0].Y, probe.Epsilon)
}

func TestViolinStatLines(t *testing.T) {
	d, err := run(t, Violin, probe.Args{
		"data":        probe.Sequence(1, 2, 3, 4, 100),
		"showmeans":   probe.Flag(true),
		"showmedians": probe.Flag(true),
		"showextrema": probe.Flag(false),
	})
	require.NoError(t, err)
	require.Len(t, d.Paths, 2, "one mean and one median stick")
	assert.InDelta(t, 22.0, d.Paths[0].Points[0].Y, probe.Epsilon, "mean")
	assert.InDelta(t, 3.0, d.Paths[1].Points[0].Y, probe.Epsilon, "median")
}

func TestViolinMultipleDatasets(t *testing.T) {
	d, err := run(t, Violin, probe.Args{
		"data": probe.Series(
			[]float64{1, 2, 3, 4},
			[]float64{10, 20, 30, 40},
		),
		"positions": probe.Sequence(3, 7),
		"widths":    probe.Scalar(2),
	})
	require.NoError(t, err)
	require.Len(t, d.Polygons, 2)
	assert.Len(t, d.Paths, 4)

	// Bodies never exceed the half-width around their position.
	for vi, pos := range []float64{3, 7} {
		for _, pt := range d.Polygons[vi].XY {
			assert.LessOrEqual(t, math.Abs(pt.X-pos), 1+probe.Epsilon, "violin %d", vi)
		}
	}
}

func TestViolinConstantData(t *testing.T) {
	d, err := run(t, Violin, probe.Args{
		"data": probe.Sequence(5, 5, 5, 5),
	})
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	for _, pt := range d.Polygons[0].XY {
		assert.False(t, math.IsNaN(pt.X) || math.IsNaN(pt.Y), "bandwidth floor keeps the body finite")
	}
}

func TestViolinBandwidthChangesBody(t *testing.T) {
	narrow, err := run(t, Violin, probe.Args{
		"data":      probe.Sequence(violinData()...),
		"bw_method": probe.Scalar(0.2),
	})
	require.NoError(t, err)
	wide, err := run(t, Violin, probe.Args{
		"data":      probe.Sequence(violinData()...),
		"bw_method": probe.Scalar(2),
	})
	require.NoError(t, err)
	assert.NotEqual(t, narrow.Polygons[0].XY, wide.Polygons[0].XY)
}

func TestViolinNaNMasked(t *testing.T) {
	d, err := run(t, Violin, probe.Args{
		"data": probe.Sequence(1, math.NaN(), 2, 3, 4),
	})
	require.NoError(t, err)
	require.Len(t, d.Markers, 1)
	assert.True(t, d.Markers[0].Masked)
	require.Len(t, d.Paths, 2)
	assert.InDelta(t, 1.0, d.Paths[0].Points[0].Y, probe.Epsilon)
}

func TestViolinInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args probe.Args
	}{
		{name: "all-NaN dataset", args: probe.Args{"data": probe.Sequence(math.NaN())}},
		{name: "one point support", args: probe.Args{"data": probe.Sequence(1, 2, 3), "points": probe.Scalar(1)}},
		{name: "fractional points", args: probe.Args{"data": probe.Sequence(1, 2, 3), "points": probe.Scalar(10.5)}},
		{name: "zero width", args: probe.Args{"data": probe.Sequence(1, 2, 3), "widths": probe.Scalar(0)}},
		{name: "zero bandwidth", args: probe.Args{"data": probe.Sequence(1, 2, 3), "bw_method": probe.Scalar(0)}},
		{name: "positions mismatch", args: probe.Args{"data": probe.Sequence(1, 2, 3), "positions": probe.Sequence(1, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, Violin, tt.args)
			require.Error(t, err)
			assert.Equal(t, probe.KindInvalidArgument, probe.KindOf(err))
		})
	}
}
