package charts

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/chartprobe/chartprobe/probe"
)

const (
	// Surface pixel dimensions. Every case gets its own surface, so
	// these are per-invocation, not process-global.
	surfaceWidth  = 800
	surfaceHeight = 600
)

// Surface is the isolated rendering context of one invocation: a fresh
// go-chart recording renderer plus, when a gonum-bound operation runs, a
// fresh gonum plot drawn onto an image canvas. Nothing on a surface is
// shared; Close releases it and a closed surface refuses further draws.
type Surface struct {
	rec    *Recorder
	closed bool
}

// NewSurface creates an unused surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Factory is the probe.SurfaceFactory for chart bindings.
func Factory() probe.SurfaceFactory {
	return func() (probe.Surface, error) {
		return NewSurface(), nil
	}
}

// Close releases the surface. Safe to call once per surface; the
// invoker guarantees exactly that.
func (s *Surface) Close() error {
	s.closed = true
	s.rec = nil
	return nil
}

// Ops returns the renderer operation counts of the go-chart pass, zero
// when the binding rendered through gonum instead.
func (s *Surface) Ops() probe.RenderOps {
	if s.rec == nil {
		return probe.RenderOps{}
	}
	return s.rec.Ops()
}

// provider hands go-chart a recording renderer bound to this surface.
func (s *Surface) provider() chart.RendererProvider {
	return func(width, height int) (chart.Renderer, error) {
		s.rec = NewRecorder(width, height)
		return s.rec, nil
	}
}

// renderPlot draws a gonum plot onto a fresh image canvas. The canvas
// lives and dies with this call; the plot handles stay inspectable.
func (s *Surface) renderPlot(p *plot.Plot) error {
	if s.closed {
		return fmt.Errorf("surface already closed")
	}
	c := vgimg.New(vg.Points(surfaceWidth), vg.Points(surfaceHeight))
	p.Draw(draw.New(c))
	return nil
}

// asSurface rejects foreign surface implementations; every binding
// starts with this guard.
func asSurface(s probe.Surface) (*Surface, error) {
	cs, ok := s.(*Surface)
	if !ok {
		return nil, fmt.Errorf("unexpected surface type %T", s)
	}
	if cs.closed {
		return nil, fmt.Errorf("surface already closed")
	}
	return cs, nil
}
