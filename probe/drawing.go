package probe

import "github.com/wcharczuk/go-chart/v2/drawing"

// Point is a position in data coordinates.
type Point struct {
	X, Y float64
}

// Rect is one rectangular patch handle (a bar, a histogram patch).
// X and Y anchor the lower-left corner in data coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Face, Edge    drawing.Color
	Alpha         float64
	ZOrder        float64
	Label         string

	// Masked marks an entry excluded from rendering. Masked entries
	// stay in the slice so sibling indices never shift.
	Masked bool
}

// Wedge is one pie slice handle. Angles are in degrees, counterclockwise
// from the positive x axis.
type Wedge struct {
	CX, CY         float64
	Radius         float64
	Theta1, Theta2 float64
	Frac           float64
	Face           drawing.Color
	Label          string
	Explode        float64
}

// Polygon is a filled region handle (fill-between band, stacked layer,
// violin body, filled contour band).
type Polygon struct {
	XY        []Point
	Face      drawing.Color
	Edge      drawing.Color
	Alpha     float64
	ZOrder    float64
	LineWidth float64
	Label     string

	// Low and High bound the z band of a filled contour region.
	// Zero for operations without a value band.
	Low, High float64
}

// Path is a stroked polyline handle (whisker, error bar stem, contour
// segment).
type Path struct {
	Points []Point
	Stroke drawing.Color
	Width  float64
	Level  float64
}

// Bin is one histogram bin handle.
type Bin struct {
	Min, Max float64
	Weight   float64
}

// Marker is a point-glyph handle (scatter point, outlier flier, error
// bar cap center). Size is the glyph area in points squared; zero means
// the operation's default.
type Marker struct {
	X, Y   float64
	Size   float64
	Face   drawing.Color
	Masked bool
}

// BoxStat is the five-number summary handle of one box.
type BoxStat struct {
	Location float64
	Median   float64
	Q1, Q3   float64
	AdjLow   float64
	AdjHigh  float64
	Outliers []float64
}

// TextLabel is a rendered text handle.
type TextLabel struct {
	Text     string
	X, Y     float64
	Color    drawing.Color
	Size     float64
	Rotation float64
}

// RenderOps counts the low-level renderer calls observed while the
// library rasterized the chart. Counts cover visible primitives only.
type RenderOps struct {
	Fills   int
	Strokes int
	Texts   int
	Arcs    int
	Circles int
}

// Drawing is the invocation result: the graphical object handles one
// call to a target operation produced. It is owned by the single case
// that produced it and is discarded after evaluation.
type Drawing struct {
	Rects    []Rect
	Wedges   []Wedge
	Polygons []Polygon
	Paths    []Path
	Bins     []Bin
	Markers  []Marker
	Boxes    []BoxStat
	Labels   []TextLabel
	Ops      RenderOps
}

// PrimitiveCount totals every handle, masked entries included.
func (d *Drawing) PrimitiveCount() int {
	return len(d.Rects) + len(d.Wedges) + len(d.Polygons) + len(d.Paths) +
		len(d.Bins) + len(d.Markers) + len(d.Boxes)
}

// VisibleRects counts the rect handles that actually render.
func (d *Drawing) VisibleRects() int {
	n := 0
	for _, r := range d.Rects {
		if !r.Masked {
			n++
		}
	}
	return n
}

// VisibleMarkers counts the marker handles that actually render.
func (d *Drawing) VisibleMarkers() int {
	n := 0
	for _, m := range d.Markers {
		if !m.Masked {
			n++
		}
	}
	return n
}

// LabelTexts returns the label texts in insertion order.
func (d *Drawing) LabelTexts() []string {
	out := make([]string, len(d.Labels))
	for i, l := range d.Labels {
		out[i] = l.Text
	}
	return out
}
