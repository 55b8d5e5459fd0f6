package charts

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/chartprobe/chartprobe/probe"
)

// StackedArea probes the stacked-area operation. Canonical arguments:
//
//	x         mandatory sequence
//	ys        mandatory list of layer sequences, each matching x
//	baseline  "zero" (default), "sym" or "wiggle"
//	colors    per-layer colors, default palette cycle
//	labels    per-layer legend labels
//	alpha     transparency in [0, 1]
//	zorder    scalar draw order
//
// Layers stack cumulatively on the chosen baseline; each layer yields
// one band polygon between its lower and upper boundary.
func StackedArea(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "stackedarea"

	surface, err := asSurface(s)
	if err != nil {
		return nil, err
	}

	x, err := requireSeq(op, args, "x")
	if err != nil {
		return nil, err
	}
	layers, err := requireSeries(op, args, "ys")
	if err != nil {
		return nil, err
	}
	if len(layers) == 0 {
		return &probe.Drawing{}, nil
	}
	n := len(x)
	k := len(layers)
	for i, layer := range layers {
		if len(layer) != n {
			return nil, probe.InvalidArgument(op, "layer %d has %d elements, x has %d", i, len(layer), n)
		}
		for _, v := range layer {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, probe.InvalidArgument(op, "layer %d contains a non-finite value", i)
			}
		}
	}
	if n == 0 {
		return &probe.Drawing{}, nil
	}

	baseline := args.Str("baseline", "zero")
	switch baseline {
	case "zero", "sym", "wiggle":
	default:
		return nil, probe.InvalidArgument(op, "baseline %q is not one of zero, sym, wiggle", baseline)
	}

	alpha, err := resolveAlpha(op, args)
	if err != nil {
		return nil, err
	}
	faces, err := resolveColorSeq(op, args, "colors", k, defaultSeriesColor)
	if err != nil {
		return nil, err
	}
	var labels []string
	if v, ok := args["labels"]; ok {
		labels, ok = v.AsStrings()
		if !ok {
			return nil, probe.InvalidArgument(op, "labels must be a string sequence")
		}
		if len(labels) != k {
			return nil, probe.InvalidArgument(op, "labels length %d does not match layer count %d", len(labels), k)
		}
	}
	zorder := args.Float("zorder", 0)

	base := stackBase(layers, baseline, n)

	d := &probe.Drawing{}
	p := plot.New()
	lower := base
	for li, layer := range layers {
		upper := make([]float64, n)
		for i := range layer {
			upper[i] = lower[i] + layer[i]
		}

		poly := bandPolygon(x, upper, lower, "")
		h := probe.Polygon{
			XY:     poly,
			Face:   probe.WithAlpha(faces[li], alpha),
			Alpha:  alpha,
			ZOrder: zorder,
		}
		if labels != nil {
			h.Label = labels[li]
			d.Labels = append(d.Labels, probe.TextLabel{Text: labels[li]})
		}
		d.Polygons = append(d.Polygons, h)

		if n >= 2 {
			xys := make(plotter.XYs, len(poly))
			for i, pt := range poly {
				xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
			}
			gp, err := plotter.NewPolygon(xys)
			if err != nil {
				return nil, err
			}
			gp.Color = h.Face
			p.Add(gp)
		}
		lower = upper
	}

	if n >= 2 {
		if allPositive(layers) {
			// Positive stacks also exercise the stacked-bar raster
			// path; one stack per x position, one segment per layer.
			stacks := make([]chart.StackedBar, n)
			for i := 0; i < n; i++ {
				vals := make([]chart.Value, k)
				for li := range layers {
					vals[li] = chart.Value{
						Value: layers[li][i],
						Label: strconv.Itoa(li),
						Style: chart.Style{FillColor: probe.WithAlpha(faces[li], alpha)},
					}
				}
				stacks[i] = chart.StackedBar{
					Name:   strconv.FormatFloat(x[i], 'g', -1, 64),
					Values: vals,
				}
			}
			sbc := chart.StackedBarChart{
				Width:  surfaceWidth,
				Height: surfaceHeight,
				Bars:   stacks,
			}
			if err := sbc.Render(surface.provider(), nil); err != nil {
				return nil, err
			}
			d.Ops = surface.Ops()
		} else {
			if err := surface.renderPlot(p); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

func allPositive(layers [][]float64) bool {
	for _, layer := range layers {
		for _, v := range layer {
			if v <= 0 {
				return false
			}
		}
	}
	return true
}

// stackBase computes the first layer's lower boundary. "zero" sits on
// the x axis, "sym" centers the total around it, and "wiggle" minimizes
// the summed slope of the layer boundaries.
func stackBase(layers [][]float64, baseline string, n int) []float64 {
	base := make([]float64, n)
	if baseline == "zero" {
		return base
	}

	total := make([]float64, n)
	for _, layer := range layers {
		for i, v := range layer {
			total[i] += v
		}
	}

	switch baseline {
	case "sym":
		for i := range base {
			base[i] = -total[i] / 2
		}
	case "wiggle":
		// Streamgraph weighting: deeper layers pull the baseline down
		// proportionally less.
		k := float64(len(layers))
		for li, layer := range layers {
			w := (k - float64(li) - 0.5) / k
			for i, v := range layer {
				base[i] -= v * w
			}
		}
	}
	return base
}
