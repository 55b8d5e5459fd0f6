package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartprobe/chartprobe/probe"
)

func TestPieFractions(t *testing.T) {
	d, err := run(t, Pie, probe.Args{
		"values": probe.Sequence(1, 2, 3, 4),
	})
	require.NoError(t, err)
	require.Len(t, d.Wedges, 4)

	total := 0.0
	span := 0.0
	for _, w := range d.Wedges {
		total += w.Frac
		span += math.Abs(w.Theta2 - w.Theta1)
	}
	assert.InDelta(t, 1.0, total, probe.Epsilon)
	assert.InDelta(t, 360.0, span, probe.Epsilon)
	assert.InDelta(t, 0.1, d.Wedges[0].Frac, probe.Epsilon)
	assert.InDelta(t, 0.4, d.Wedges[3].Frac, probe.Epsilon)
}

func TestPieStartAngleAndDirection(t *testing.T) {
	d, err := run(t, Pie, probe.Args{
		"values":     probe.Sequence(1, 1),
		"startangle": probe.Scalar(90),
	})
	require.NoError(t, err)
	require.Len(t, d.Wedges, 2)
	assert.InDelta(t, 90.0, d.Wedges[0].Theta1, probe.Epsilon)
	assert.InDelta(t, 270.0, d.Wedges[0].Theta2, probe.Epsilon)

	cw, err := run(t, Pie, probe.Args{
		"values":       probe.Sequence(1, 1),
		"counterclock": probe.Flag(false),
	})
	require.NoError(t, err)
	assert.Greater(t, cw.Wedges[0].Theta2, cw.Wedges[0].Theta1)
	assert.InDelta(t, -180.0, cw.Wedges[0].Theta1, probe.Epsilon)
}

func TestPieExplode(t *testing.T) {
	d, err := run(t, Pie, probe.Args{
		"values":  probe.Sequence(1, 1, 1),
		"explode": probe.Sequence(0, 0.2, 0),
	})
	require.NoError(t, err)
	require.Len(t, d.Wedges, 3)

	assert.Zero(t, d.Wedges[0].CX)
	assert.Zero(t, d.Wedges[0].CY)
	offset := math.Hypot(d.Wedges[1].CX, d.Wedges[1].CY)
	assert.InDelta(t, 0.2, offset, probe.Epsilon)
}

func TestPieLabelsAndAutopct(t *testing.T) {
	d, err := run(t, Pie, probe.Args{
		"values":  probe.Sequence(1, 3),
		"labels":  probe.Strings("a", "b"),
		"autopct": probe.Flag(true),
	})
	require.NoError(t, err)
	texts := d.LabelTexts()
	assert.Contains(t, texts, "a")
	assert.Contains(t, texts, "b")
	assert.Contains(t, texts, "25.0%")
	assert.Contains(t, texts, "75.0%")
}

func TestPieInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args probe.Args
	}{
		{name: "zero sum", args: probe.Args{"values": probe.Sequence(0, 0)}},
		{name: "negative value", args: probe.Args{"values": probe.Sequence(1, -1)}},
		{name: "NaN value", args: probe.Args{"values": probe.Sequence(1, math.NaN())}},
		{name: "label mismatch", args: probe.Args{"values": probe.Sequence(1, 2), "labels": probe.Strings("a")}},
		{name: "negative explode", args: probe.Args{"values": probe.Sequence(1, 2), "explode": probe.Sequence(0, -0.1)}},
		{name: "zero radius", args: probe.Args{"values": probe.Sequence(1, 2), "radius": probe.Scalar(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, Pie, tt.args)
			require.Error(t, err)
			assert.Equal(t, probe.KindInvalidArgument, probe.KindOf(err))
		})
	}
}

func TestPieEmptyInput(t *testing.T) {
	d, err := run(t, Pie, probe.Args{"values": probe.Sequence()})
	require.NoError(t, err)
	assert.Zero(t, d.PrimitiveCount())
}

func TestPieRenderPassCounts(t *testing.T) {
	d, err := run(t, Pie, probe.Args{"values": probe.Sequence(2, 3, 5)})
	require.NoError(t, err)
	assert.Positive(t, d.Ops.Fills+d.Ops.Arcs, "render pass recorded nothing")
}
