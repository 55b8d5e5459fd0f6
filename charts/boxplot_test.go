package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartprobe/chartprobe/probe"
)

func TestBoxSingleDataset(t *testing.T) {
	d, err := run(t, Box, probe.Args{
		"data": probe.Sequence(1, 2, 3, 4, 5, 6, 7, 8, 9),
	})
	require.NoError(t, err)
	require.Len(t, d.Boxes, 1)
	require.Len(t, d.Paths, 2, "expected one whisker pair")

	b := d.Boxes[0]
	assert.InDelta(t, 1.0, b.Location, probe.Epsilon, "default position")
	assert.InDelta(t, 5.0, b.Median, probe.Epsilon)
	assert.LessOrEqual(t, b.Q1, b.Median)
	assert.LessOrEqual(t, b.Median, b.Q3)
	assert.LessOrEqual(t, b.AdjLow, b.Q1)
	assert.GreaterOrEqual(t, b.AdjHigh, b.Q3)
}

func TestBoxMultipleDatasets(t *testing.T) {
	d, err := run(t, Box, probe.Args{
		"data": probe.Series(
			[]float64{1, 2, 3, 4, 5},
			[]float64{10, 20, 30, 40, 50},
			[]float64{5, 5, 6, 7, 8},
		),
		"positions": probe.Sequence(2, 4, 6),
	})
	require.NoError(t, err)
	require.Len(t, d.Boxes, 3)
	assert.Len(t, d.Paths, 6)
	assert.Len(t, d.Rects, 3)
	for i, want := range []float64{2, 4, 6} {
		assert.InDelta(t, want, d.Boxes[i].Location, probe.Epsilon, "box %d position", i)
	}
}

func TestBoxOutliers(t *testing.T) {
	d, err := run(t, Box, probe.Args{
		"data": probe.Sequence(1, 2, 2, 3, 3, 3, 4, 4, 5, 100),
	})
	require.NoError(t, err)
	require.Len(t, d.Boxes, 1)
	require.NotEmpty(t, d.Boxes[0].Outliers)
	assert.InDelta(t, 100.0, d.Boxes[0].Outliers[len(d.Boxes[0].Outliers)-1], probe.Epsilon)
	assert.Positive(t, d.VisibleMarkers(), "fliers should render as markers")

	hidden, err := run(t, Box, probe.Args{
		"data":       probe.Sequence(1, 2, 2, 3, 3, 3, 4, 4, 5, 100),
		"showfliers": probe.Flag(false),
	})
	require.NoError(t, err)
	assert.Zero(t, hidden.VisibleMarkers())
	assert.NotEmpty(t, hidden.Boxes[0].Outliers, "stats keep outliers even when hidden")
}

func TestBoxNonFiniteEntriesMasked(t *testing.T) {
	d, err := run(t, Box, probe.Args{
		"data": probe.Sequence(1, 2, math.NaN(), 3, math.Inf(1), 4, 5),
	})
	require.NoError(t, err)
	require.Len(t, d.Boxes, 1)
	assert.InDelta(t, 3.0, d.Boxes[0].Median, probe.Epsilon)

	masked := 0
	for _, m := range d.Markers {
		if m.Masked {
			masked++
		}
	}
	assert.Equal(t, 2, masked)
}

func TestBoxLabels(t *testing.T) {
	d, err := run(t, Box, probe.Args{
		"data":   probe.Series([]float64{1, 2, 3}, []float64{4, 5, 6}),
		"labels": probe.Strings("lo", "hi"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"lo", "hi"}, d.LabelTexts())
}

func TestBoxInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args probe.Args
	}{
		{
			name: "all-NaN dataset",
			args: probe.Args{"data": probe.Sequence(math.NaN(), math.NaN())},
		},
		{
			name: "zero width",
			args: probe.Args{"data": probe.Sequence(1, 2, 3), "widths": probe.Scalar(0)},
		},
		{
			name: "positions mismatch",
			args: probe.Args{"data": probe.Sequence(1, 2, 3), "positions": probe.Sequence(1, 2)},
		},
		{
			name: "labels mismatch",
			args: probe.Args{"data": probe.Sequence(1, 2, 3), "labels": probe.Strings("a", "b")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, Box, tt.args)
			require.Error(t, err)
			assert.Equal(t, probe.KindInvalidArgument, probe.KindOf(err))
		})
	}
}
