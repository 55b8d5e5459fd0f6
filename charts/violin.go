package charts

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/chartprobe/chartprobe/probe"
)

const (
	// DefaultViolinWidth is the documented default body width.
	DefaultViolinWidth = 0.5

	// DefaultViolinPoints is the default density sample count.
	DefaultViolinPoints = 100

	// minBandwidthScale floors the kernel bandwidth so constant data
	// still yields a finite density.
	minBandwidthScale = 1e-3
)

// Violin probes the violin operation. Canonical arguments:
//
//	data        mandatory sequence or list of sequences, one per violin
//	positions   per-violin x locations, default 1..k
//	widths      scalar or per-violin body widths, must be positive
//	points      density sample count, default 100, must be >= 2
//	bw_method   bandwidth scale factor, must be positive
//	showmeans   bool, default false; adds one mean path per violin
//	showmedians bool, default false; adds one median path per violin
//	showextrema bool, default true; adds min and max paths per violin
//
// Each violin body is a kernel-density polygon mirrored around its
// position, estimated with a Gaussian kernel at Silverman's bandwidth.
func Violin(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "violin"

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

	widths, err := resolvePerElement(op, args, "widths", k, DefaultViolinWidth)
	if err != nil {
		return nil, err
	}
	for _, w := range widths {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return nil, probe.InvalidArgument(op, "widths %v is not a positive finite number", w)
		}
	}

	pointsF := args.Float("points", DefaultViolinPoints)
	if math.IsNaN(pointsF) || pointsF < 2 || pointsF != math.Trunc(pointsF) {
		return nil, probe.InvalidArgument(op, "points %v is not an integer >= 2", pointsF)
	}
	points := int(pointsF)

	bwScale := args.Float("bw_method", 1)
	if math.IsNaN(bwScale) || math.IsInf(bwScale, 0) || bwScale <= 0 {
		return nil, probe.InvalidArgument(op, "bw_method %v is not positive", bwScale)
	}

	showMeans := args.Bool("showmeans", false)
	showMedians := args.Bool("showmedians", false)
	showExtrema := args.Bool("showextrema", true)

	alpha, err := resolveAlpha(op, args)
	if err != nil {
		return nil, err
	}
	faces, err := resolveColorSeq(op, args, "colors", k, defaultSeriesColor)
	if err != nil {
		return nil, err
	}

	d := &probe.Drawing{}
	p := plot.New()

	for vi, data := range datasets {
		vals := make([]float64, 0, len(data))
		for _, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				d.Markers = append(d.Markers, probe.Marker{X: positions[vi], Y: v, Masked: true})
				continue
			}
			vals = append(vals, v)
		}
		if len(vals) == 0 {
			return nil, probe.InvalidArgument(op, "dataset %d has no finite values", vi)
		}
		sort.Float64s(vals)

		mean := stat.Mean(vals, nil)
		median := stat.Quantile(0.5, stat.Empirical, vals, nil)
		lo, hi := vals[0], vals[len(vals)-1]
		bw := bwScale * silvermanBandwidth(vals)

		body := violinBody(vals, positions[vi], widths[vi], points, bw)
		h := probe.Polygon{
			XY:    body,
			Face:  probe.WithAlpha(faces[vi], alpha),
			Alpha: alpha,
		}
		d.Polygons = append(d.Polygons, h)

		xys := make(plotter.XYs, len(body))
		for i, pt := range body {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		gp, err := plotter.NewPolygon(xys)
		if err != nil {
			return nil, err
		}
		gp.Color = h.Face
		p.Add(gp)

		half := widths[vi] / 2
		stick := func(y float64) probe.Path {
			return probe.Path{
				Points: []probe.Point{
					{X: positions[vi] - half, Y: y},
					{X: positions[vi] + half, Y: y},
				},
				Stroke: faces[vi],
			}
		}
		if showExtrema {
			d.Paths = append(d.Paths, stick(lo), stick(hi))
		}
		if showMeans {
			d.Paths = append(d.Paths, stick(mean))
		}
		if showMedians {
			d.Paths = append(d.Paths, stick(median))
		}
	}

	if err := surface.renderPlot(p); err != nil {
		return nil, err
	}
	return d, nil
}

// silvermanBandwidth is the rule-of-thumb Gaussian kernel bandwidth,
// floored for constant data.
func silvermanBandwidth(sorted []float64) float64 {
	n := float64(len(sorted))
	sigma := stat.StdDev(sorted, nil)
	if math.IsNaN(sigma) {
		sigma = 0
	}
	bw := 1.06 * sigma * math.Pow(n, -1.0/5.0)
	if bw <= 0 {
		scale := math.Max(math.Abs(sorted[0]), 1)
		bw = minBandwidthScale * scale
	}
	return bw
}

// violinBody samples the kernel density estimate at the given number of
// support points and mirrors it around the position. The returned
// outline walks up the right edge and back down the left, 2*points
// vertices in all.
func violinBody(sorted []float64, pos, width float64, points int, bw float64) []probe.Point {
	lo := sorted[0] - 2*bw
	hi := sorted[len(sorted)-1] + 2*bw

	ys := make([]float64, points)
	dens := make([]float64, points)
	maxDens := 0.0
	for i := range ys {
		y := lo + (hi-lo)*float64(i)/float64(points-1)
		ys[i] = y
		dv := 0.0
		for _, v := range sorted {
			dv += distuv.Normal{Mu: v, Sigma: bw}.Prob(y)
		}
		dv /= float64(len(sorted))
		dens[i] = dv
		maxDens = math.Max(maxDens, dv)
	}
	if maxDens == 0 {
		maxDens = 1
	}

	out := make([]probe.Point, 0, 2*points)
	for i := 0; i < points; i++ {
		half := width / 2 * dens[i] / maxDens
		out = append(out, probe.Point{X: pos + half, Y: ys[i]})
	}
	for i := points - 1; i >= 0; i-- {
		half := width / 2 * dens[i] / maxDens
		out = append(out, probe.Point{X: pos - half, Y: ys[i]})
	}
	return out
}
