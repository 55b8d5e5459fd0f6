package charts

import "github.com/chartprobe/chartprobe/probe"

// Canonical operation names. Registry manifests and case names refer to
// operations by these strings.
const (
	OpLine        = "line"
	OpScatter     = "scatter"
	OpBar         = "bar"
	OpHist        = "hist"
	OpBox         = "box"
	OpErrorBar    = "errorbar"
	OpFillBetween = "fill_between"
	OpStackedArea = "stackedarea"
	OpPie         = "pie"
	OpContour     = "contour"
	OpViolin      = "violin"
)

// opTable binds names to target operations in presentation order.
var opTable = []struct {
	name string
	fn   probe.TargetOp
}{
	{OpLine, Line},
	{OpScatter, Scatter},
	{OpBar, Bar},
	{OpHist, Hist},
	{OpBox, Box},
	{OpErrorBar, ErrorBar},
	{OpFillBetween, FillBetween},
	{OpStackedArea, StackedArea},
	{OpPie, Pie},
	{OpContour, Contour},
	{OpViolin, Violin},
}

// Ops returns the canonical operation names in order.
func Ops() []string {
	out := make([]string, len(opTable))
	for i, e := range opTable {
		out[i] = e.name
	}
	return out
}

// Lookup resolves an operation name to its binding.
func Lookup(name string) (probe.TargetOp, bool) {
	for _, e := range opTable {
		if e.name == name {
			return e.fn, true
		}
	}
	return nil, false
}
