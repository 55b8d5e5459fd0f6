package charts

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/chartprobe/chartprobe/probe"
)

// DefaultMarkerSize is the documented default scatter glyph area in
// points squared.
const DefaultMarkerSize = 36

// Scatter probes the scatter operation. Canonical arguments:
//
//	x, y   mandatory sequences of equal length
//	s      glyph area, scalar or per-point, default 36, non-negative
//	color  marker color, scalar or per-point
//	alpha  transparency in [0, 1]
//	label  legend label
//
// NaN points become masked markers without shifting sibling indices;
// finite points contribute one visible Marker carrying its resolved
// size and face color.
func Scatter(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "scatter"

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

	sizes, err := resolvePerElement(op, args, "s", n, DefaultMarkerSize)
	if err != nil {
		return nil, err
	}
	for _, sz := range sizes {
		if math.IsNaN(sz) || math.IsInf(sz, 0) || sz < 0 {
			return nil, probe.InvalidArgument(op, "marker size %v is negative or not finite", sz)
		}
	}
	alpha, err := resolveAlpha(op, args)
	if err != nil {
		return nil, err
	}
	faces, err := resolveColorSeq(op, args, "color", n, defaultSeriesColor)
	if err != nil {
		return nil, err
	}
	label := args.Str("label", "")

	d := &probe.Drawing{}
	pts := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			d.Markers = append(d.Markers, probe.Marker{X: x[i], Y: y[i], Masked: true})
			continue
		}
		d.Markers = append(d.Markers, probe.Marker{
			X:    x[i],
			Y:    y[i],
			Size: sizes[i],
			Face: probe.WithAlpha(faces[i], alpha),
		})
		pts = append(pts, plotter.XY{X: finiteOrZero(x[i]), Y: finiteOrZero(y[i])})
	}

	if label != "" && d.VisibleMarkers() > 0 {
		d.Labels = append(d.Labels, probe.TextLabel{Text: label})
	}

	if len(pts) > 0 {
		p := plot.New()
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		p.Add(sc)
		if err := surface.renderPlot(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}
