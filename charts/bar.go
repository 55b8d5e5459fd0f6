package charts

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/chartprobe/chartprobe/probe"
)

// DefaultBarWidth is the documented default bar width in data units.
const DefaultBarWidth = 0.8

// Bar probes the bar-chart operation. Canonical arguments:
//
//	x, height  mandatory sequences of equal length
//	width      scalar or per-bar sequence, default 0.8, must be positive
//	align      "center" (default) or "edge"
//	bottom     scalar or per-bar sequence, default 0
//	color      face color or per-bar colors, default palette cycle
//	edgecolor  edge color or per-bar colors
//	alpha      transparency in [0, 1]
//	zorder     scalar draw order
//	label      legend label
//	yerr       optional symmetric error per bar, adds stem paths
//	mask       optional missing-entry flags
//
// Rendering goes through go-chart's BarChart on the surface's recording
// renderer; the returned handles are the data-space rectangles.
func Bar(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "bar"

	surface, err := asSurface(s)
	if err != nil {
		return nil, err
	}

	x, err := requireSeq(op, args, "x")
	if err != nil {
		return nil, err
	}
	height, err := requireSeq(op, args, "height")
	if err != nil {
		return nil, err
	}
	if len(x) != len(height) {
		return nil, probe.InvalidArgument(op, "shape mismatch: x has %d elements, height has %d", len(x), len(height))
	}

	// Empty input short-circuits to an empty drawing, not an error.
	if len(x) == 0 {
		return &probe.Drawing{}, nil
	}
	n := len(x)

	widths, err := resolvePerElement(op, args, "width", n, DefaultBarWidth)
	if err != nil {
		return nil, err
	}
	for _, w := range widths {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return nil, probe.InvalidArgument(op, "width %v is not a positive finite number", w)
		}
	}

	align := args.Str("align", "center")
	if align != "center" && align != "edge" {
		return nil, probe.InvalidArgument(op, "align %q is not one of center, edge", align)
	}

	bottoms, err := resolvePerElement(op, args, "bottom", n, 0)
	if err != nil {
		return nil, err
	}
	alpha, err := resolveAlpha(op, args)
	if err != nil {
		return nil, err
	}
	faces, err := resolveColorSeq(op, args, "color", n, chart.GetDefaultColor)
	if err != nil {
		return nil, err
	}
	edges, err := resolveColorSeq(op, args, "edgecolor", n, chart.GetDefaultColor)
	if err != nil {
		return nil, err
	}
	mask, err := resolveMask(op, args, n)
	if err != nil {
		return nil, err
	}

	var yerr []float64
	if args.Has("yerr") {
		yerr, err = requireSeq(op, args, "yerr")
		if err != nil {
			return nil, err
		}
		if len(yerr) != n {
			return nil, probe.InvalidArgument(op, "yerr length %d does not match data length %d", len(yerr), n)
		}
	}

	zorder := args.Float("zorder", 0)
	label := args.Str("label", "")

	d := &probe.Drawing{}
	bars := make([]chart.Value, 0, n)
	for i := 0; i < n; i++ {
		anchor := x[i]
		if align == "center" {
			anchor = x[i] - widths[i]/2
		}
		r := probe.Rect{
			X:      anchor,
			Y:      bottoms[i],
			Width:  widths[i],
			Height: height[i],
			Face:   probe.WithAlpha(faces[i], alpha),
			Edge:   probe.WithAlpha(edges[i], alpha),
			Alpha:  alpha,
			ZOrder: zorder,
			Label:  label,
			Masked: mask[i],
		}
		d.Rects = append(d.Rects, r)

		if !mask[i] {
			bars = append(bars, chart.Value{
				Value: finiteOrZero(height[i]) + finiteOrZero(bottoms[i]),
				Label: strconv.FormatFloat(x[i], 'g', -1, 64),
				Style: chart.Style{FillColor: r.Face, StrokeColor: r.Edge},
			})
		}

		if yerr != nil && !mask[i] {
			center := x[i]
			d.Paths = append(d.Paths, probe.Path{
				Points: []probe.Point{
					{X: center, Y: bottoms[i] + height[i] - yerr[i]},
					{X: center, Y: bottoms[i] + height[i] + yerr[i]},
				},
				Stroke: r.Edge,
			})
		}
	}

	if label != "" {
		d.Labels = append(d.Labels, probe.TextLabel{Text: label})
	}

	if renderable(bars) {
		// A degenerate value range breaks go-chart's axis math; pad it.
		vmin, vmax := bars[0].Value, bars[0].Value
		for _, b := range bars {
			vmin = math.Min(vmin, b.Value)
			vmax = math.Max(vmax, b.Value)
		}
		if vmin > 0 {
			vmin = 0
		}
		if vmax <= vmin {
			vmax = vmin + 1
		}
		bc := chart.BarChart{
			Width:  surfaceWidth,
			Height: surfaceHeight,
			Bars:   bars,
			YAxis: chart.YAxis{
				Range: &chart.ContinuousRange{Min: vmin, Max: vmax},
			},
		}
		if err := bc.Render(surface.provider(), nil); err != nil {
			return nil, err
		}
		d.Ops = surface.Ops()
	}
	return d, nil
}

// renderable reports whether the bar values span a drawable range;
// go-chart needs at least one bar and a nonzero value range.
func renderable(bars []chart.Value) bool {
	if len(bars) == 0 {
		return false
	}
	for _, b := range bars {
		if b.Value != 0 {
			return true
		}
	}
	return false
}
