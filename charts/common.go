package charts

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/chartprobe/chartprobe/probe"
)

// defaultSeriesColor is the palette fallback shared by the line-style
// operations.
func defaultSeriesColor(i int) drawing.Color { return chart.GetDefaultColor(i) }

// resolvePerElement expands a scalar-or-sequence argument to n values.
// A scalar broadcasts; a sequence must match n exactly.
func resolvePerElement(op string, args probe.Args, key string, n int, def float64) ([]float64, error) {
	out := make([]float64, n)
	v, ok := args[key]
	if !ok {
		for i := range out {
			out[i] = def
		}
		return out, nil
	}
	if f, isScalar := v.AsScalar(); isScalar {
		for i := range out {
			out[i] = f
		}
		return out, nil
	}
	if seq, isSeq := v.AsSequence(); isSeq {
		if len(seq) != n {
			return nil, probe.InvalidArgument(op, "%s length %d does not match data length %d", key, len(seq), n)
		}
		copy(out, seq)
		return out, nil
	}
	return nil, probe.InvalidArgument(op, "%s must be a scalar or a sequence", key)
}

// resolveColorSeq expands a color-or-color-sequence argument to n
// colors, cycling a shorter sequence the way the default palette does.
// def supplies the per-index fallback when the argument is absent.
func resolveColorSeq(op string, args probe.Args, key string, n int, def func(i int) drawing.Color) ([]drawing.Color, error) {
	out := make([]drawing.Color, n)
	v, ok := args[key]
	if !ok {
		for i := range out {
			out[i] = def(i)
		}
		return out, nil
	}
	specs, perElement, isColor := v.AsColors()
	if !isColor {
		return nil, probe.InvalidArgument(op, "%s must be a color or a color sequence", key)
	}
	parsed := make([]drawing.Color, len(specs))
	for i, spec := range specs {
		c, err := probe.ParseColor(spec)
		if err != nil {
			return nil, probe.InvalidArgument(op, "%s: %v", key, err)
		}
		parsed[i] = c
	}
	for i := range out {
		if perElement {
			out[i] = parsed[i%len(parsed)]
		} else {
			out[i] = parsed[0]
		}
	}
	return out, nil
}

// resolveAlpha validates the transparency argument.
func resolveAlpha(op string, args probe.Args) (float64, error) {
	alpha := args.Float("alpha", 1)
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return 0, probe.InvalidArgument(op, "alpha %v outside [0, 1]", alpha)
	}
	return alpha, nil
}

// resolveMask reads the optional per-element mask: nonzero marks an
// entry as missing. The mask length must match n.
func resolveMask(op string, args probe.Args, n int) ([]bool, error) {
	out := make([]bool, n)
	v, ok := args["mask"]
	if !ok {
		return out, nil
	}
	seq, isSeq := v.AsSequence()
	if !isSeq {
		return nil, probe.InvalidArgument(op, "mask must be a sequence")
	}
	if len(seq) != n {
		return nil, probe.InvalidArgument(op, "mask length %d does not match data length %d", len(seq), n)
	}
	for i, f := range seq {
		out[i] = f != 0
	}
	return out, nil
}

// requireSeq fetches a mandatory sequence argument.
func requireSeq(op string, args probe.Args, key string) ([]float64, error) {
	v, ok := args[key]
	if !ok {
		return nil, probe.InvalidArgument(op, "%s is required", key)
	}
	seq, isSeq := v.AsSequence()
	if !isSeq {
		return nil, probe.InvalidArgument(op, "%s must be a numeric sequence", key)
	}
	return seq, nil
}

// requireSeries fetches a mandatory list-of-sequences argument. A plain
// sequence is accepted as a single-member series.
func requireSeries(op string, args probe.Args, key string) ([][]float64, error) {
	v, ok := args[key]
	if !ok {
		return nil, probe.InvalidArgument(op, "%s is required", key)
	}
	if series, isSeries := v.AsSeries(); isSeries {
		return series, nil
	}
	if seq, isSeq := v.AsSequence(); isSeq {
		return [][]float64{seq}, nil
	}
	return nil, probe.InvalidArgument(op, "%s must be a sequence or a list of sequences", key)
}

// finiteOrZero guards values handed to the raster pass. NaN handles are
// preserved on the probe side; the rendered extent degrades to zero.
func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
