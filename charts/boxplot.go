package charts

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/chartprobe/chartprobe/probe"
)

// DefaultBoxWidth is the documented default box width in data units.
const DefaultBoxWidth = 0.5

// Box probes the box-and-whisker operation. Canonical arguments:
//
//	data       mandatory sequence or list of sequences, one per box;
//	           NaN and infinite entries become masked markers
//	positions  per-box x locations, default 1..k
//	widths     scalar or per-box widths, must be positive
//	labels     per-box tick labels
//	showfliers bool, default true; hides outlier markers when false
//
// The five-number summaries come from gonum's plotter.BoxPlot; handles
// are one BoxStat plus two whisker Paths per box, and one Marker per
// outlier when fliers are shown.
func Box(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "box"

	surface, err := asSurface(s)
	if err != nil {
		return nil, err
	}

	datasets, err := requireSeries(op, args, "data")
	if err != nil {
		return nil, err
	}
	if len(datasets) == 0 {
		return &probe.Drawing{}, nil
	}
	k := len(datasets)

	positions, err := resolvePerElement(op, args, "positions", k, 0)
	if err != nil {
		return nil, err
	}
	if !args.Has("positions") {
		for i := range positions {
			positions[i] = float64(i + 1)
		}
	}

	widths, err := resolvePerElement(op, args, "widths", k, DefaultBoxWidth)
	if err != nil {
		return nil, err
	}
	for _, w := range widths {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return nil, probe.InvalidArgument(op, "widths %v is not a positive finite number", w)
		}
	}

	var labels []string
	if v, ok := args["labels"]; ok {
		labels, ok = v.AsStrings()
		if !ok {
			return nil, probe.InvalidArgument(op, "labels must be a string sequence")
		}
		if len(labels) != k {
			return nil, probe.InvalidArgument(op, "labels length %d does not match data length %d", len(labels), k)
		}
	}

	showFliers := args.Bool("showfliers", true)

	d := &probe.Drawing{}
	p := plot.New()

	for i, data := range datasets {
		// Non-finite entries leave masked markers behind and are
		// dropped from the summary statistics.
		vals := make(plotter.Values, 0, len(data))
		for _, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				d.Markers = append(d.Markers, probe.Marker{X: positions[i], Y: v, Masked: true})
				continue
			}
			vals = append(vals, v)
		}
		if len(vals) == 0 {
			return nil, probe.InvalidArgument(op, "dataset %d has no finite values", i)
		}

		b, err := plotter.NewBoxPlot(vg.Points(20), positions[i], vals)
		if err != nil {
			return nil, err
		}
		p.Add(b)

		stat := probe.BoxStat{
			Location: positions[i],
			Median:   b.Median,
			Q1:       b.Quartile1,
			Q3:       b.Quartile3,
			AdjLow:   b.AdjLow,
			AdjHigh:  b.AdjHigh,
		}
		for _, idx := range b.Outside {
			out := vals[idx]
			stat.Outliers = append(stat.Outliers, out)
			if showFliers {
				d.Markers = append(d.Markers, probe.Marker{X: positions[i], Y: out})
			}
		}
		d.Boxes = append(d.Boxes, stat)

		d.Paths = append(d.Paths,
			probe.Path{Points: []probe.Point{
				{X: positions[i], Y: stat.Q1},
				{X: positions[i], Y: stat.AdjLow},
			}},
			probe.Path{Points: []probe.Point{
				{X: positions[i], Y: stat.Q3},
				{X: positions[i], Y: stat.AdjHigh},
			}},
		)
		d.Rects = append(d.Rects, probe.Rect{
			X:      positions[i] - widths[i]/2,
			Y:      stat.Q1,
			Width:  widths[i],
			Height: stat.Q3 - stat.Q1,
		})

		if labels != nil {
			d.Labels = append(d.Labels, probe.TextLabel{Text: labels[i], X: positions[i]})
		}
	}

	if err := surface.renderPlot(p); err != nil {
		return nil, err
	}
	return d, nil
}
