package charts

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/chartprobe/chartprobe/probe"
)

// Pie probes the pie-chart operation. Canonical arguments:
//
//	values       mandatory sequence, all finite and non-negative
//	labels       optional per-slice strings, length must match
//	colors       optional per-slice colors
//	explode      optional per-slice offsets, non-negative
//	startangle   degrees, default 0
//	counterclock bool, default true
//	radius       default 1, must be positive
//	autopct      bool; adds a percentage label per slice
//
// The go-chart PieChart renders on the recording surface; the handles
// are wedges with angular extents proportional to each value's share.
func Pie(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "pie"

	surface, err := asSurface(s)
	if err != nil {
		return nil, err
	}

	values, err := requireSeq(op, args, "values")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return &probe.Drawing{}, nil
	}
	n := len(values)

	sum := 0.0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, probe.InvalidArgument(op, "value %v is not finite", v)
		}
		if v < 0 {
			return nil, probe.InvalidArgument(op, "negative value %v", v)
		}
		sum += v
	}
	if sum == 0 {
		return nil, probe.InvalidArgument(op, "sum of values is zero")
	}

	var labels []string
	if v, ok := args["labels"]; ok {
		labels, ok = v.AsStrings()
		if !ok {
			return nil, probe.InvalidArgument(op, "labels must be a string sequence")
		}
		if len(labels) != n {
			return nil, probe.InvalidArgument(op, "labels length %d does not match values length %d", len(labels), n)
		}
	}

	explode, err := resolvePerElement(op, args, "explode", n, 0)
	if err != nil {
		return nil, err
	}
	for _, e := range explode {
		if e < 0 || math.IsNaN(e) {
			return nil, probe.InvalidArgument(op, "explode offset %v is negative", e)
		}
	}

	radius := args.Float("radius", 1)
	if math.IsNaN(radius) || radius <= 0 {
		return nil, probe.InvalidArgument(op, "radius %v is not positive", radius)
	}

	faces, err := resolveColorSeq(op, args, "colors", n, chart.GetDefaultColor)
	if err != nil {
		return nil, err
	}

	startAngle := args.Float("startangle", 0)
	counterclock := args.Bool("counterclock", true)
	autopct := args.Bool("autopct", false)

	d := &probe.Drawing{}
	theta := startAngle
	chartValues := make([]chart.Value, 0, n)
	for i, v := range values {
		frac := v / sum
		span := frac * 360
		theta1, theta2 := theta, theta+span
		if !counterclock {
			theta1, theta2 = theta-span, theta
			theta -= span
		} else {
			theta += span
		}

		// Exploded slices shift their center along the bisector.
		mid := (theta1 + theta2) / 2 * math.Pi / 180
		cx := explode[i] * math.Cos(mid)
		cy := explode[i] * math.Sin(mid)

		w := probe.Wedge{
			CX:      cx,
			CY:      cy,
			Radius:  radius,
			Theta1:  theta1,
			Theta2:  theta2,
			Frac:    frac,
			Face:    faces[i],
			Explode: explode[i],
		}
		if labels != nil {
			w.Label = labels[i]
			d.Labels = append(d.Labels, probe.TextLabel{Text: labels[i]})
		}
		d.Wedges = append(d.Wedges, w)

		if autopct {
			d.Labels = append(d.Labels, probe.TextLabel{Text: fmt.Sprintf("%.1f%%", frac*100)})
		}

		cv := chart.Value{Value: v, Style: chart.Style{FillColor: faces[i]}}
		if labels != nil {
			cv.Label = labels[i]
		} else {
			cv.Label = fmt.Sprintf("slice-%d", i)
		}
		chartValues = append(chartValues, cv)
	}

	pc := chart.PieChart{
		Width:  surfaceWidth,
		Height: surfaceHeight,
		Values: chartValues,
	}
	if err := pc.Render(surface.provider(), nil); err != nil {
		return nil, err
	}
	d.Ops = surface.Ops()
	return d, nil
}
