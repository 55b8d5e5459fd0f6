package charts

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/chartprobe/chartprobe/probe"
)

// errPoints feeds gonum's error-bar plotters.
type errPoints struct {
	plotter.XYs
	plotter.XErrors
	plotter.YErrors
}

// ErrorBar probes the errorbar operation. Canonical arguments:
//
//	x, y      mandatory sequences of equal length
//	yerr      scalar or per-point symmetric vertical error
//	yerr_low  with yerr_high, asymmetric vertical error
//	xerr      scalar or per-point symmetric horizontal error
//	color     stem and marker color
//	capsize   cap half-width, default 0, must be non-negative
//
// Every error magnitude must be non-negative. NaN points become masked
// markers; finite points contribute one Marker plus one stem Path per
// error direction, with cap markers when capsize is set.
func ErrorBar(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "errorbar"

	surface, err := asSurface(s)
	if err != nil {
		return nil, err
	}

	x, err := requireSeq(op, args, "x")
	if err != nil {
		return nil, err
	}
	y, err := requireSeq(op, args, "y")
	if err != nil {
		return nil, err
	}
	if len(x) != len(y) {
		return nil, probe.InvalidArgument(op, "shape mismatch: x has %d elements, y has %d", len(x), len(y))
	}
	if len(x) == 0 {
		return &probe.Drawing{}, nil
	}
	n := len(x)

	yLow, yHigh, hasY, err := resolveErrors(op, args, "yerr", n)
	if err != nil {
		return nil, err
	}
	xLow, xHigh, hasX, err := resolveErrors(op, args, "xerr", n)
	if err != nil {
		return nil, err
	}

	capsize := args.Float("capsize", 0)
	if math.IsNaN(capsize) || capsize < 0 {
		return nil, probe.InvalidArgument(op, "capsize %v is negative", capsize)
	}
	stroke, err := resolveColorSeq(op, args, "color", 1, defaultSeriesColor)
	if err != nil {
		return nil, err
	}

	d := &probe.Drawing{}
	pts := errPoints{}
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			d.Markers = append(d.Markers, probe.Marker{X: x[i], Y: y[i], Masked: true})
			continue
		}
		d.Markers = append(d.Markers, probe.Marker{X: x[i], Y: y[i]})

		pts.XYs = append(pts.XYs, plotter.XY{X: x[i], Y: y[i]})
		pts.XErrors = append(pts.XErrors, struct{ Low, High float64 }{xLow[i], xHigh[i]})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{yLow[i], yHigh[i]})

		if hasY {
			d.Paths = append(d.Paths, probe.Path{
				Points: []probe.Point{
					{X: x[i], Y: y[i] - yLow[i]},
					{X: x[i], Y: y[i] + yHigh[i]},
				},
				Stroke: stroke[0],
			})
			if capsize > 0 {
				d.Markers = append(d.Markers,
					probe.Marker{X: x[i], Y: y[i] - yLow[i]},
					probe.Marker{X: x[i], Y: y[i] + yHigh[i]},
				)
			}
		}
		if hasX {
			d.Paths = append(d.Paths, probe.Path{
				Points: []probe.Point{
					{X: x[i] - xLow[i], Y: y[i]},
					{X: x[i] + xHigh[i], Y: y[i]},
				},
				Stroke: stroke[0],
			})
			if capsize > 0 {
				d.Markers = append(d.Markers,
					probe.Marker{X: x[i] - xLow[i], Y: y[i]},
					probe.Marker{X: x[i] + xHigh[i], Y: y[i]},
				)
			}
		}
	}

	if len(pts.XYs) > 0 {
		p := plot.New()
		scatter, err := plotter.NewScatter(pts.XYs)
		if err != nil {
			return nil, err
		}
		p.Add(scatter)
		if hasY {
			ybars, err := plotter.NewYErrorBars(pts)
			if err != nil {
				return nil, err
			}
			p.Add(ybars)
		}
		if hasX {
			xbars, err := plotter.NewXErrorBars(pts)
			if err != nil {
				return nil, err
			}
			p.Add(xbars)
		}
		if err := surface.renderPlot(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// resolveErrors reads one error-direction spec: either a symmetric
// scalar-or-sequence under key, or an asymmetric pair under key_low and
// key_high. Both forms yield per-point low/high magnitudes.
func resolveErrors(op string, args probe.Args, key string, n int) (low, high []float64, present bool, err error) {
	lowKey, highKey := key+"_low", key+"_high"
	symmetric := args.Has(key)
	asymmetric := args.Has(lowKey) || args.Has(highKey)

	switch {
	case symmetric && asymmetric:
		return nil, nil, false, probe.InvalidArgument(op, "%s conflicts with %s/%s", key, lowKey, highKey)
	case asymmetric:
		if !args.Has(lowKey) || !args.Has(highKey) {
			return nil, nil, false, probe.InvalidArgument(op, "%s and %s must be given together", lowKey, highKey)
		}
		low, err = resolvePerElement(op, args, lowKey, n, 0)
		if err != nil {
			return nil, nil, false, err
		}
		high, err = resolvePerElement(op, args, highKey, n, 0)
		if err != nil {
			return nil, nil, false, err
		}
	case symmetric:
		low, err = resolvePerElement(op, args, key, n, 0)
		if err != nil {
			return nil, nil, false, err
		}
		high = make([]float64, n)
		copy(high, low)
	default:
		return make([]float64, n), make([]float64, n), false, nil
	}

	for _, vs := range [][]float64{low, high} {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, nil, false, probe.InvalidArgument(op, "%s magnitude %v is negative or not finite", key, v)
			}
		}
	}
	return low, high, true, nil
}
