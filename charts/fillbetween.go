package charts

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/chartprobe/chartprobe/probe"
)

// FillBetween probes the fill-between operation. Canonical arguments:
//
//	x, y1     mandatory sequences of equal length
//	y2        scalar baseline or per-point sequence, default 0
//	where     per-point flags; nonzero keeps the point in the fill
//	step      "", "pre", "post" or "mid"
//	color     band face color
//	edgecolor band outline color
//	alpha     transparency in [0, 1]
//	linewidth outline width, must be non-negative
//	zorder    scalar draw order
//	label     legend label
//
// A where mask splits the band into one polygon per contiguous run of
// kept points; runs shorter than two points produce nothing.
func FillBetween(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "fill_between"

	surface, err := asSurface(s)
	if err != nil {
		return nil, err
	}

	x, err := requireSeq(op, args, "x")
	if err != nil {
		return nil, err
	}
	y1, err := requireSeq(op, args, "y1")
	if err != nil {
		return nil, err
	}
	if len(x) != len(y1) {
		return nil, probe.InvalidArgument(op, "shape mismatch: x has %d elements, y1 has %d", len(x), len(y1))
	}
	if len(x) == 0 {
		return &probe.Drawing{}, nil
	}
	n := len(x)

	y2, err := resolvePerElement(op, args, "y2", n, 0)
	if err != nil {
		return nil, err
	}

	where := make([]bool, n)
	for i := range where {
		where[i] = true
	}
	if v, ok := args["where"]; ok {
		seq, isSeq := v.AsSequence()
		if !isSeq {
			return nil, probe.InvalidArgument(op, "where must be a sequence")
		}
		if len(seq) != n {
			return nil, probe.InvalidArgument(op, "where length %d does not match data length %d", len(seq), n)
		}
		for i, f := range seq {
			where[i] = f != 0
		}
	}

	step := args.Str("step", "")
	switch step {
	case "", "pre", "post", "mid":
	default:
		return nil, probe.InvalidArgument(op, "step %q is not one of pre, post, mid", step)
	}

	alpha, err := resolveAlpha(op, args)
	if err != nil {
		return nil, err
	}
	faces, err := resolveColorSeq(op, args, "color", 1, defaultSeriesColor)
	if err != nil {
		return nil, err
	}
	edges, err := resolveColorSeq(op, args, "edgecolor", 1, defaultSeriesColor)
	if err != nil {
		return nil, err
	}
	linewidth := args.Float("linewidth", 1)
	if math.IsNaN(linewidth) || linewidth < 0 {
		return nil, probe.InvalidArgument(op, "linewidth %v is negative", linewidth)
	}
	zorder := args.Float("zorder", 0)
	label := args.Str("label", "")

	d := &probe.Drawing{}
	p := plot.New()
	rendered := false

	for start := 0; start < n; {
		if !where[start] {
			start++
			continue
		}
		end := start
		for end < n && where[end] {
			end++
		}
		if end-start >= 2 {
			poly := bandPolygon(x[start:end], y1[start:end], y2[start:end], step)
			h := probe.Polygon{
				XY:        poly,
				Face:      probe.WithAlpha(faces[0], alpha),
				Edge:      probe.WithAlpha(edges[0], alpha),
				Alpha:     alpha,
				ZOrder:    zorder,
				LineWidth: linewidth,
				Label:     label,
			}
			d.Polygons = append(d.Polygons, h)

			xys := make(plotter.XYs, len(poly))
			finite := true
			for i, pt := range poly {
				if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
					finite = false
					break
				}
				xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
			}
			if finite {
				gp, err := plotter.NewPolygon(xys)
				if err != nil {
					return nil, err
				}
				gp.Color = h.Face
				p.Add(gp)
				rendered = true
			}
		}
		start = end
	}

	if label != "" && len(d.Polygons) > 0 {
		d.Labels = append(d.Labels, probe.TextLabel{Text: label})
	}
	if rendered {
		if err := surface.renderPlot(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// bandPolygon builds the closed outline of one fill run: forward along
// the upper curve, then back along the lower one. Step modes insert the
// riser vertices matching the step placement.
func bandPolygon(x, y1, y2 []float64, step string) []probe.Point {
	upper := stepCurve(x, y1, step)
	lower := stepCurve(x, y2, step)

	out := make([]probe.Point, 0, len(upper)+len(lower))
	out = append(out, upper...)
	for i := len(lower) - 1; i >= 0; i-- {
		out = append(out, lower[i])
	}
	return out
}

func stepCurve(x, y []float64, step string) []probe.Point {
	if step == "" || len(x) < 2 {
		out := make([]probe.Point, len(x))
		for i := range x {
			out[i] = probe.Point{X: x[i], Y: y[i]}
		}
		return out
	}
	out := make([]probe.Point, 0, 2*len(x))
	out = append(out, probe.Point{X: x[0], Y: y[0]})
	for i := 1; i < len(x); i++ {
		switch step {
		case "pre":
			out = append(out, probe.Point{X: x[i-1], Y: y[i]})
		case "post":
			out = append(out, probe.Point{X: x[i], Y: y[i-1]})
		case "mid":
			mid := (x[i-1] + x[i]) / 2
			out = append(out,
				probe.Point{X: mid, Y: y[i-1]},
				probe.Point{X: mid, Y: y[i]},
			)
		}
		out = append(out, probe.Point{X: x[i], Y: y[i]})
	}
	return out
}
