package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartprobe/chartprobe/probe"
)

func TestFillBetweenBasicBand(t *testing.T) {
	d, err := run(t, FillBetween, probe.Args{
		"x":  probe.Sequence(0, 1, 2, 3),
		"y1": probe.Sequence(1, 2, 3, 4),
		"y2": probe.Sequence(0, 1, 1, 0),
	})
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)

	poly := d.Polygons[0]
	assert.Len(t, poly.XY, 8, "forward along y1 plus backward along y2")
	assert.InDelta(t, 0.0, poly.XY[0].X, probe.Epsilon)
	assert.InDelta(t, 1.0, poly.XY[0].Y, probe.Epsilon)
	assert.InDelta(t, 0.0, poly.XY[7].X, probe.Epsilon)
	assert.InDelta(t, 0.0, poly.XY[7].Y, probe.Epsilon)
}

func TestFillBetweenDefaultBaseline(t *testing.T) {
	d, err := run(t, FillBetween, probe.Args{
		"x":  probe.Sequence(0, 1),
		"y1": probe.Sequence(2, 2),
	})
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	for _, pt := range d.Polygons[0].XY[2:] {
		assert.Zero(t, pt.Y, "lower edge defaults to zero")
	}
}

func TestFillBetweenWhereSplitsRuns(t *testing.T) {
	d, err := run(t, FillBetween, probe.Args{
		"x":     probe.Sequence(0, 1, 2, 3, 4, 5),
		"y1":    probe.Sequence(1, 1, 1, 1, 1, 1),
		"where": probe.Sequence(1, 1, 0, 0, 1, 1),
	})
	require.NoError(t, err)
	assert.Len(t, d.Polygons, 2, "mask gap splits the band")
}

func TestFillBetweenSinglePointRunDropped(t *testing.T) {
	d, err := run(t, FillBetween, probe.Args{
		"x":     probe.Sequence(0, 1, 2),
		"y1":    probe.Sequence(1, 1, 1),
		"where": probe.Sequence(1, 0, 1),
	})
	require.NoError(t, err)
	assert.Empty(t, d.Polygons, "runs shorter than two points produce nothing")
}

func TestFillBetweenStepModes(t *testing.T) {
	for _, step := range []string{"pre", "post"} {
		d, err := run(t, FillBetween, probe.Args{
			"x":    probe.Sequence(0, 1, 2),
			"y1":   probe.Sequence(1, 2, 3),
			"step": probe.Str(step),
		})
		require.NoError(t, err, step)
		require.Len(t, d.Polygons, 1, step)
		assert.Len(t, d.Polygons[0].XY, 10, "step %s inserts one riser vertex per segment", step)
	}

	mid, err := run(t, FillBetween, probe.Args{
		"x":    probe.Sequence(0, 1, 2),
		"y1":   probe.Sequence(1, 2, 3),
		"step": probe.Str("mid"),
	})
	require.NoError(t, err)
	assert.Len(t, mid.Polygons[0].XY, 14, "mid inserts two riser vertices per segment")
}

func TestFillBetweenLabel(t *testing.T) {
	d, err := run(t, FillBetween, probe.Args{
		"x":     probe.Sequence(0, 1),
		"y1":    probe.Sequence(1, 1),
		"label": probe.Str("band"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"band"}, d.LabelTexts())
	assert.Equal(t, "band", d.Polygons[0].Label)
}

func TestFillBetweenEmptyInput(t *testing.T) {
	d, err := run(t, FillBetween, probe.Args{
		"x":  probe.Sequence(),
		"y1": probe.Sequence(),
	})
	require.NoError(t, err)
	assert.Zero(t, d.PrimitiveCount())
}

func TestFillBetweenInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args probe.Args
	}{
		{
			name: "shape mismatch",
			args: probe.Args{"x": probe.Sequence(0, 1, 2), "y1": probe.Sequence(1, 2)},
		},
		{
			name: "y2 mismatch",
			args: probe.Args{"x": probe.Sequence(0, 1), "y1": probe.Sequence(1, 2), "y2": probe.Sequence(1, 2, 3)},
		},
		{
			name: "where mismatch",
			args: probe.Args{"x": probe.Sequence(0, 1), "y1": probe.Sequence(1, 2), "where": probe.Sequence(1)},
		},
		{
			name: "unknown step",
			args: probe.Args{"x": probe.Sequence(0, 1), "y1": probe.Sequence(1, 2), "step": probe.Str("diagonal")},
		},
		{
			name: "negative linewidth",
			args: probe.Args{"x": probe.Sequence(0, 1), "y1": probe.Sequence(1, 2), "linewidth": probe.Scalar(-1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, FillBetween, tt.args)
			require.Error(t, err)
			assert.Equal(t, probe.KindInvalidArgument, probe.KindOf(err))
		})
	}
}
