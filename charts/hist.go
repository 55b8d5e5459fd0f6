package charts

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/chartprobe/chartprobe/probe"
)

// DefaultHistBins is the documented default bin count.
const DefaultHistBins = 10

// Hist probes the histogram operation. Canonical arguments:
//
//	data     mandatory sequence; NaN entries become masked markers
//	bins     scalar bin count, default 10, must be >= 1
//	density  bool; normalizes total area to 1
//	color    patch face color
//	alpha    transparency in [0, 1]
//	zorder   scalar draw order
//
// Binning and normalization come from gonum's plotter.Histogram; the
// handles expose one Bin and one Rect per bin.
func Hist(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "hist"

	surface, err := asSurface(s)
	if err != nil {
		return nil, err
	}

	data, err := requireSeq(op, args, "data")
	if err != nil {
		return nil, err
	}

	bins := args.Float("bins", DefaultHistBins)
	if math.IsNaN(bins) || bins < 1 || bins != math.Trunc(bins) {
		return nil, probe.InvalidArgument(op, "bins %v is not a positive integer", bins)
	}
	alpha, err := resolveAlpha(op, args)
	if err != nil {
		return nil, err
	}
	faces, err := resolveColorSeq(op, args, "color", 1, chart.GetDefaultColor)
	if err != nil {
		return nil, err
	}
	density := args.Bool("density", false)
	zorder := args.Float("zorder", 0)

	d := &probe.Drawing{}

	// NaN values stay visible as masked markers so indices never
	// shift; only finite values feed the binning.
	pts := make(plotter.XYs, 0, len(data))
	for _, v := range data {
		if math.IsNaN(v) {
			d.Markers = append(d.Markers, probe.Marker{X: v, Masked: true})
			continue
		}
		if math.IsInf(v, 0) {
			return nil, probe.InvalidArgument(op, "infinite value in data")
		}
		pts = append(pts, plotter.XY{X: v, Y: 1})
	}

	if len(pts) == 0 {
		return d, nil
	}

	// Constant data has no range to split; it collapses to one bin.
	if constant(pts) {
		v := pts[0].X
		d.Bins = append(d.Bins, probe.Bin{Min: v - 0.5, Max: v + 0.5, Weight: float64(len(pts))})
		d.Rects = append(d.Rects, probe.Rect{
			X:      v - 0.5,
			Width:  1,
			Height: float64(len(pts)),
			Face:   probe.WithAlpha(faces[0], alpha),
			Alpha:  alpha,
			ZOrder: zorder,
		})
		return d, nil
	}

	h, err := plotter.NewHistogram(pts, int(bins))
	if err != nil {
		return nil, err
	}
	if density {
		h.Normalize(1)
	}
	h.FillColor = probe.WithAlpha(faces[0], alpha)

	for _, bin := range h.Bins {
		d.Bins = append(d.Bins, probe.Bin{Min: bin.Min, Max: bin.Max, Weight: bin.Weight})
		d.Rects = append(d.Rects, probe.Rect{
			X:      bin.Min,
			Width:  bin.Max - bin.Min,
			Height: bin.Weight,
			Face:   probe.WithAlpha(faces[0], alpha),
			Alpha:  alpha,
			ZOrder: zorder,
		})
	}

	p := plot.New()
	p.Add(h)
	if err := surface.renderPlot(p); err != nil {
		return nil, err
	}
	return d, nil
}

func constant(pts plotter.XYs) bool {
	for _, pt := range pts {
		if pt.X != pts[0].X {
			return false
		}
	}
	return true
}
