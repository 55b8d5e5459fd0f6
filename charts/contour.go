package charts

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/chartprobe/chartprobe/probe"
)

// DefaultContourLevels is the documented default level count.
const DefaultContourLevels = 7

// grid adapts a dense z matrix plus coordinate vectors to the plotter
// GridXYZ interface. Column c maps to x, row r to y.
type grid struct {
	x, y []float64
	z    *mat.Dense
}

func (g grid) Dims() (c, r int)   { r, c = g.z.Dims(); return c, r }
func (g grid) Z(c, r int) float64 { return g.z.At(r, c) }
func (g grid) X(c int) float64    { return g.x[c] }
func (g grid) Y(r int) float64    { return g.y[r] }

// Contour probes the contour operation. Canonical arguments:
//
//	z       mandatory matrix, at least 2x2, rectangular, all finite
//	x, y    optional coordinate vectors matching z's columns and rows
//	levels  explicit strictly increasing level sequence
//	nlevels level count when levels is absent, default 7
//	colors  per-level colors, default rainbow palette
//	filled  bool; fill the bands between levels instead of stroking them
//
// A ragged or sub-2x2 matrix is an unsupported shape; a non-increasing
// explicit level sequence is an invalid argument. Handles are one Path
// per level inside the z range, or, when filled, one Polygon per band
// between consecutive boundaries of [zmin, levels..., zmax]; a constant
// matrix yields none either way.
func Contour(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
	const op = "contour"

	surface, err := asSurface(s)
	if err != nil {
		return nil, err
	}

	v, ok := args["z"]
	if !ok {
		return nil, probe.InvalidArgument(op, "z is required")
	}
	rows, isMatrix := v.AsMatrix()
	if !isMatrix {
		return nil, probe.InvalidArgument(op, "z must be a matrix")
	}
	r := len(rows)
	if r < 2 {
		return nil, probe.UnsupportedShape(op, "z has %d rows, need at least 2", r)
	}
	c := len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, probe.UnsupportedShape(op, "z row %d has %d columns, row 0 has %d", i, len(row), c)
		}
	}
	if c < 2 {
		return nil, probe.UnsupportedShape(op, "z has %d columns, need at least 2", c)
	}

	zmin, zmax := math.Inf(1), math.Inf(-1)
	z := mat.NewDense(r, c, nil)
	for i, row := range rows {
		for j, val := range row {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, probe.InvalidArgument(op, "z[%d][%d] is not finite", i, j)
			}
			z.Set(i, j, val)
			zmin = math.Min(zmin, val)
			zmax = math.Max(zmax, val)
		}
	}

	xs, err := contourAxis(op, args, "x", c)
	if err != nil {
		return nil, err
	}
	ys, err := contourAxis(op, args, "y", r)
	if err != nil {
		return nil, err
	}

	levels, err := contourLevels(op, args, zmin, zmax)
	if err != nil {
		return nil, err
	}
	filled := args.Bool("filled", false)

	// Filled mode paints one band per interval, so it needs one more
	// color than there are boundary levels.
	nColors := maxInt(len(levels), 1)
	if filled {
		nColors = len(levels) + 1
	}
	shades, err := resolveColorSeq(op, args, "colors", nColors, defaultSeriesColor)
	if err != nil {
		return nil, err
	}
	explicitColors := args.Has("colors")

	d := &probe.Drawing{}
	if len(levels) == 0 {
		// Constant data has nothing to contour.
		return d, nil
	}

	pal := palette.Rainbow(nColors, palette.Blue, palette.Red, 1, 1, 1)
	palColors := pal.Colors()
	palColor := func(i int) (c drawing.Color) {
		r8, g8, b8, a8 := palColors[i].RGBA()
		c.R = uint8(r8 >> 8)
		c.G = uint8(g8 >> 8)
		c.B = uint8(b8 >> 8)
		c.A = uint8(a8 >> 8)
		return c
	}

	p := plot.New()
	if filled {
		bounds := make([]float64, 0, len(levels)+2)
		bounds = append(bounds, zmin)
		bounds = append(bounds, levels...)
		bounds = append(bounds, zmax)
		for i := 0; i+1 < len(bounds); i++ {
			h := probe.Polygon{Low: bounds[i], High: bounds[i+1]}
			if explicitColors {
				h.Face = shades[i]
			} else {
				h.Face = palColor(i)
			}
			d.Polygons = append(d.Polygons, h)
		}
		p.Add(plotter.NewHeatMap(grid{x: xs, y: ys, z: z}, pal))
	} else {
		for i, lv := range levels {
			h := probe.Path{Level: lv}
			if explicitColors {
				h.Stroke = shades[i]
			} else {
				h.Stroke = palColor(i)
			}
			d.Paths = append(d.Paths, h)
		}
		p.Add(plotter.NewContour(grid{x: xs, y: ys, z: z}, levels, pal))
	}
	if err := surface.renderPlot(p); err != nil {
		return nil, err
	}
	return d, nil
}

// contourAxis resolves one coordinate vector, defaulting to indices.
// The vector length must match the grid dimension and be strictly
// increasing.
func contourAxis(op string, args probe.Args, key string, n int) ([]float64, error) {
	v, ok := args[key]
	if !ok {
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(i)
		}
		return out, nil
	}
	seq, isSeq := v.AsSequence()
	if !isSeq {
		return nil, probe.InvalidArgument(op, "%s must be a sequence", key)
	}
	if len(seq) != n {
		return nil, probe.UnsupportedShape(op, "%s length %d does not match grid dimension %d", key, len(seq), n)
	}
	for i := 1; i < len(seq); i++ {
		if !(seq[i] > seq[i-1]) {
			return nil, probe.InvalidArgument(op, "%s is not strictly increasing", key)
		}
	}
	return seq, nil
}

// contourLevels resolves the level sequence: explicit levels verbatim
// after validation, otherwise nlevels values evenly spaced strictly
// inside the z range.
func contourLevels(op string, args probe.Args, zmin, zmax float64) ([]float64, error) {
	if v, ok := args["levels"]; ok {
		seq, isSeq := v.AsSequence()
		if !isSeq {
			return nil, probe.InvalidArgument(op, "levels must be a sequence")
		}
		if len(seq) == 0 {
			return nil, probe.InvalidArgument(op, "levels is empty")
		}
		for i, lv := range seq {
			if math.IsNaN(lv) || math.IsInf(lv, 0) {
				return nil, probe.InvalidArgument(op, "level %v is not finite", lv)
			}
			if i > 0 && !(lv > seq[i-1]) {
				return nil, probe.InvalidArgument(op, "levels must be strictly increasing")
			}
		}
		out := make([]float64, len(seq))
		copy(out, seq)
		return out, nil
	}

	nf := args.Float("nlevels", DefaultContourLevels)
	if math.IsNaN(nf) || nf < 1 || nf != math.Trunc(nf) {
		return nil, probe.InvalidArgument(op, "nlevels %v is not a positive integer", nf)
	}
	if zmax <= zmin {
		return nil, nil
	}
	n := int(nf)
	out := make([]float64, n)
	span := zmax - zmin
	for i := range out {
		out[i] = zmin + span*float64(i+1)/float64(n+1)
	}
	return out, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
