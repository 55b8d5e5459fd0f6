package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartprobe/chartprobe/probe"
)

func TestScatterDefaults(t *testing.T) {
	d, err := run(t, Scatter, probe.Args{
		"x": probe.Sequence(1, 2, 3),
		"y": probe.Sequence(4, 5, 6),
	})
	require.NoError(t, err)
	require.Len(t, d.Markers, 3)
	for i, m := range d.Markers {
		assert.InDelta(t, float64(i+1), m.X, probe.Epsilon)
		assert.InDelta(t, float64(i+4), m.Y, probe.Epsilon)
		assert.InDelta(t, float64(DefaultMarkerSize), m.Size, probe.Epsilon)
		assert.False(t, m.Masked)
	}
}

func TestScatterPerPointSizes(t *testing.T) {
	d, err := run(t, Scatter, probe.Args{
		"x": probe.Sequence(1, 2, 3),
		"y": probe.Sequence(1, 2, 3),
		"s": probe.Sequence(10, 20, 30),
	})
	require.NoError(t, err)
	require.Len(t, d.Markers, 3)
	for i, want := range []float64{10, 20, 30} {
		assert.InDelta(t, want, d.Markers[i].Size, probe.Epsilon)
	}

	scaled, err := run(t, Scatter, probe.Args{
		"x": probe.Sequence(1, 2),
		"y": probe.Sequence(1, 2),
		"s": probe.Scalar(50),
	})
	require.NoError(t, err)
	for _, m := range scaled.Markers {
		assert.InDelta(t, 50.0, m.Size, probe.Epsilon)
	}
}

func TestScatterPerPointColors(t *testing.T) {
	d, err := run(t, Scatter, probe.Args{
		"x":     probe.Sequence(1, 2, 3),
		"y":     probe.Sequence(1, 2, 3),
		"color": probe.Colors("red", "green", "blue"),
	})
	require.NoError(t, err)
	require.Len(t, d.Markers, 3)
	assert.NotEqual(t, d.Markers[0].Face, d.Markers[1].Face)
	assert.NotEqual(t, d.Markers[1].Face, d.Markers[2].Face)
}

func TestScatterNaNMasked(t *testing.T) {
	d, err := run(t, Scatter, probe.Args{
		"x": probe.Sequence(1, 2, 3),
		"y": probe.Sequence(4, math.NaN(), 6),
	})
	require.NoError(t, err)
	require.Len(t, d.Markers, 3, "masked entries keep their slot")
	assert.True(t, d.Markers[1].Masked)
	assert.Equal(t, 2, d.VisibleMarkers())
}

func TestScatterLabelRecorded(t *testing.T) {
	d, err := run(t, Scatter, probe.Args{
		"x":     probe.Sequence(1, 2),
		"y":     probe.Sequence(1, 2),
		"label": probe.Str("samples"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"samples"}, d.LabelTexts())
}

func TestScatterEmptyInput(t *testing.T) {
	d, err := run(t, Scatter, probe.Args{
		"x": probe.Sequence(),
		"y": probe.Sequence(),
	})
	require.NoError(t, err)
	assert.Zero(t, d.PrimitiveCount())
}

func TestScatterInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args probe.Args
	}{
		{
			name: "shape mismatch",
			args: probe.Args{"x": probe.Sequence(1, 2, 3), "y": probe.Sequence(1, 2)},
		},
		{
			name: "negative size",
			args: probe.Args{"x": probe.Sequence(1), "y": probe.Sequence(1), "s": probe.Scalar(-4)},
		},
		{
			name: "size length mismatch",
			args: probe.Args{"x": probe.Sequence(1, 2), "y": probe.Sequence(1, 2), "s": probe.Sequence(1)},
		},
		{
			name: "bad color",
			args: probe.Args{"x": probe.Sequence(1), "y": probe.Sequence(1), "color": probe.Color("notacolor")},
		},
		{
			name: "alpha out of range",
			args: probe.Args{"x": probe.Sequence(1), "y": probe.Sequence(1), "alpha": probe.Scalar(2)},
		},
		{
			name: "missing y",
			args: probe.Args{"x": probe.Sequence(1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, Scatter, tt.args)
			require.Error(t, err)
			assert.Equal(t, probe.KindInvalidArgument, probe.KindOf(err))
		})
	}
}
