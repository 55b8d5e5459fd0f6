package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartprobe/chartprobe/probe"
)

func TestLineDefaults(t *testing.T) {
	d, err := run(t, Line, probe.Args{
		"y": probe.Sequence(1, 3, 2, 4),
	})
	require.NoError(t, err)
	require.Len(t, d.Paths, 1)
	pts := d.Paths[0].Points
	require.Len(t, pts, 4)
	for i, pt := range pts {
		assert.InDelta(t, float64(i), pt.X, probe.Epsilon, "x defaults to indices")
	}
	assert.InDelta(t, DefaultLineWidth, d.Paths[0].Width, probe.Epsilon)
}

func TestLineExplicitX(t *testing.T) {
	d, err := run(t, Line, probe.Args{
		"x": probe.Sequence(10, 20, 30),
		"y": probe.Sequence(1, 2, 3),
	})
	require.NoError(t, err)
	require.Len(t, d.Paths, 1)
	assert.InDelta(t, 10.0, d.Paths[0].Points[0].X, probe.Epsilon)
	assert.InDelta(t, 30.0, d.Paths[0].Points[2].X, probe.Epsilon)
}

func TestLineNaNSplitsSegments(t *testing.T) {
	d, err := run(t, Line, probe.Args{
		"y": probe.Sequence(1, 2, math.NaN(), 3, 4),
	})
	require.NoError(t, err)
	require.Len(t, d.Paths, 2, "NaN breaks the polyline")
	assert.Len(t, d.Paths[0].Points, 2)
	assert.Len(t, d.Paths[1].Points, 2)
	assert.InDelta(t, 3.0, d.Paths[1].Points[0].X, probe.Epsilon)

	require.Len(t, d.Markers, 1)
	assert.True(t, d.Markers[0].Masked)
}

func TestLineSinglePointRunDrawsNothing(t *testing.T) {
	d, err := run(t, Line, probe.Args{
		"y": probe.Sequence(1, math.NaN(), 2, math.NaN(), 3),
	})
	require.NoError(t, err)
	assert.Empty(t, d.Paths, "isolated points have no segment")
}

func TestLineMarkers(t *testing.T) {
	d, err := run(t, Line, probe.Args{
		"y":      probe.Sequence(1, 2, 3),
		"marker": probe.Flag(true),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, d.VisibleMarkers())
	require.Len(t, d.Paths, 1)
}

func TestLineWidthAndLabel(t *testing.T) {
	d, err := run(t, Line, probe.Args{
		"y":         probe.Sequence(1, 2),
		"linewidth": probe.Scalar(3),
		"label":     probe.Str("trend"),
	})
	require.NoError(t, err)
	require.Len(t, d.Paths, 1)
	assert.InDelta(t, 3.0, d.Paths[0].Width, probe.Epsilon)
	assert.Equal(t, []string{"trend"}, d.LabelTexts())
}

func TestLineEmptyInput(t *testing.T) {
	d, err := run(t, Line, probe.Args{
		"y": probe.Sequence(),
	})
	require.NoError(t, err)
	assert.Zero(t, d.PrimitiveCount())
}

func TestLineInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args probe.Args
	}{
		{
			name: "missing y",
			args: probe.Args{"x": probe.Sequence(1, 2)},
		},
		{
			name: "shape mismatch",
			args: probe.Args{"x": probe.Sequence(1, 2), "y": probe.Sequence(1, 2, 3)},
		},
		{
			name: "negative linewidth",
			args: probe.Args{"y": probe.Sequence(1, 2), "linewidth": probe.Scalar(-1)},
		},
		{
			name: "bad color",
			args: probe.Args{"y": probe.Sequence(1, 2), "color": probe.Color("notacolor")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, Line, tt.args)
			require.Error(t, err)
			assert.Equal(t, probe.KindInvalidArgument, probe.KindOf(err))
		})
	}
}
