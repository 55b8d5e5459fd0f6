package charts

import (
	"io"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/chartprobe/chartprobe/probe"
)

// Recorder is a chart.Renderer that records draw calls instead of
// rasterizing. It backs the go-chart render pass of a surface, so the
// library's real layout and drawing path executes while the probe gets
// countable operations.
type Recorder struct {
	width  int
	height int
	dpi    float64

	ops      probe.RenderOps
	fontSize float64
	font     *truetype.Font
	rotation float64
}

// NewRecorder creates a recorder with the given pixel dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height, dpi: chart.DefaultDPI}
}

// Ops returns the operation counts recorded so far.
func (r *Recorder) Ops() probe.RenderOps { return r.ops }

func (r *Recorder) ResetStyle() {
	r.fontSize = 0
	r.rotation = 0
}

func (r *Recorder) GetDPI() float64 { return r.dpi }

func (r *Recorder) SetDPI(dpi float64) { r.dpi = dpi }

func (r *Recorder) SetClassName(string) {}

func (r *Recorder) SetStrokeColor(drawing.Color) {}

func (r *Recorder) SetFillColor(drawing.Color) {}

func (r *Recorder) SetStrokeWidth(float64) {}

func (r *Recorder) SetStrokeDashArray([]float64) {}

func (r *Recorder) MoveTo(x, y int) {}

func (r *Recorder) LineTo(x, y int) {}

func (r *Recorder) QuadCurveTo(cx, cy, x, y int) {}

func (r *Recorder) ArcTo(cx, cy int, rx, ry, startAngle, delta float64) {
	r.ops.Arcs++
}

func (r *Recorder) Close() {}

func (r *Recorder) Stroke() { r.ops.Strokes++ }

func (r *Recorder) Fill() { r.ops.Fills++ }

func (r *Recorder) FillStroke() {
	r.ops.Fills++
	r.ops.Strokes++
}

func (r *Recorder) Circle(radius float64, x, y int) { r.ops.Circles++ }

func (r *Recorder) SetFont(f *truetype.Font) { r.font = f }

func (r *Recorder) SetFontColor(drawing.Color) {}

func (r *Recorder) SetFontSize(size float64) { r.fontSize = size }

func (r *Recorder) Text(body string, x, y int) { r.ops.Texts++ }

// MeasureText approximates glyph boxes from the font size; go-chart only
// needs a sane aspect ratio for label layout.
func (r *Recorder) MeasureText(body string) chart.Box {
	size := r.fontSize
	if size == 0 {
		size = chart.DefaultFontSize
	}
	w := int(float64(len(body)) * size * 0.6)
	return chart.Box{Right: w, Bottom: int(size)}
}

func (r *Recorder) SetTextRotation(radians float64) { r.rotation = radians }

func (r *Recorder) ClearTextRotation() { r.rotation = 0 }

// Save is a no-op; recorders have no raster output.
func (r *Recorder) Save(w io.Writer) error { return nil }
