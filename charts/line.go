package charts

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/chartprobe/chartprobe/probe"
)

// DefaultLineWidth is the documented default stroke width in points.
const DefaultLineWidth = 1.5

// Line probes the line-plot operation. Canonical arguments:
//
//	y         mandatory sequence
//	x         optional sequence of equal length, default indices
//	color     stroke color
//	linewidth stroke width in points, default 1.5, non-negative
//	marker    bool; also draw a glyph at every finite point
//	alpha     transparency in [0, 1]
//	label     legend label
//
// A non-finite coordinate breaks the polyline: each contiguous run of
// finite points with at least two members contributes one Path, and the
// non-finite entries become masked markers so sibling indices never
// shift. Runs of a single point draw nothing on their own.
func Line(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "line"

	surface, err := asSurface(s)
	if err != nil {
		return nil, err
	}

	y, err := requireSeq(op, args, "y")
	if err != nil {
		return nil, err
	}
	n := len(y)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	if v, ok := args["x"]; ok {
		seq, isSeq := v.AsSequence()
		if !isSeq {
			return nil, probe.InvalidArgument(op, "x must be a numeric sequence")
		}
		if len(seq) != n {
			return nil, probe.InvalidArgument(op, "shape mismatch: x has %d elements, y has %d", len(seq), n)
		}
		copy(x, seq)
	}
	if n == 0 {
		return &probe.Drawing{}, nil
	}

	linewidth := args.Float("linewidth", DefaultLineWidth)
	if math.IsNaN(linewidth) || linewidth < 0 {
		return nil, probe.InvalidArgument(op, "linewidth %v is negative", linewidth)
	}
	alpha, err := resolveAlpha(op, args)
	if err != nil {
		return nil, err
	}
	strokes, err := resolveColorSeq(op, args, "color", 1, defaultSeriesColor)
	if err != nil {
		return nil, err
	}
	stroke := probe.WithAlpha(strokes[0], alpha)
	withMarkers := args.Bool("marker", false)
	label := args.Str("label", "")

	finite := func(i int) bool {
		return !math.IsNaN(x[i]) && !math.IsInf(x[i], 0) &&
			!math.IsNaN(y[i]) && !math.IsInf(y[i], 0)
	}

	d := &probe.Drawing{}
	for i := 0; i < n; i++ {
		if !finite(i) {
			d.Markers = append(d.Markers, probe.Marker{X: x[i], Y: y[i], Masked: true})
		} else if withMarkers {
			d.Markers = append(d.Markers, probe.Marker{X: x[i], Y: y[i], Face: stroke})
		}
	}

	p := plot.New()
	rendered := false
	for start := 0; start < n; {
		if !finite(start) {
			start++
			continue
		}
		end := start
		for end < n && finite(end) {
			end++
		}
		if end-start >= 2 {
			pts := make([]probe.Point, end-start)
			xys := make(plotter.XYs, end-start)
			for i := start; i < end; i++ {
				pts[i-start] = probe.Point{X: x[i], Y: y[i]}
				xys[i-start] = plotter.XY{X: x[i], Y: y[i]}
			}
			d.Paths = append(d.Paths, probe.Path{Points: pts, Stroke: stroke, Width: linewidth})

			gl, err := plotter.NewLine(xys)
			if err != nil {
				return nil, err
			}
			gl.LineStyle.Width = vg.Points(linewidth)
			gl.LineStyle.Color = stroke
			p.Add(gl)
			rendered = true
		}
		start = end
	}

	if withMarkers && d.VisibleMarkers() > 0 {
		xys := make(plotter.XYs, 0, n)
		for i := 0; i < n; i++ {
			if finite(i) {
				xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
			}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		p.Add(sc)
		rendered = true
	}

	if label != "" && len(d.Paths) > 0 {
		d.Labels = append(d.Labels, probe.TextLabel{Text: label})
	}
	if rendered {
		if err := surface.renderPlot(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}
