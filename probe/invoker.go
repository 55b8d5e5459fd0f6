package probe

import (
	"fmt"
)

// Surface is an isolated rendering context. The invoker creates one per
// case and guarantees its release, so no state leaks between cases.
type Surface interface {
	Close() error
}

// SurfaceFactory produces a fresh surface for one invocation.
type SurfaceFactory func() (Surface, error)

// TargetOp is the external collaborator under probe: a plotting
// operation that accepts the canonical arguments, draws onto the
// surface, and returns the graphical object handles or an error.
type TargetOp func(s Surface, args Args) (*Drawing, error)

// Invocation is what one target call produced: handles on success, an
// error signal otherwise. It belongs to exactly one case.
type Invocation struct {
	Drawing  *Drawing
	Err      error
	Panicked bool
}

// Invoke runs op against a fresh surface from factory. The surface is
// released regardless of outcome, and a panic inside the target is
// captured as a runtime-kind error rather than aborting the run.
func Invoke(op TargetOp, factory SurfaceFactory, args Args) (inv Invocation) {
	surface, err := factory()
	if err != nil {
		inv.Err = &TargetError{Kind: KindRuntime, Op: "surface", Msg: err.Error()}
		return inv
	}

	defer func() {
		if r := recover(); r != nil {
			inv.Panicked = true
			inv.Drawing = nil
			inv.Err = &TargetError{Kind: KindRuntime, Op: "invoke", Msg: fmt.Sprintf("panic: %v", r)}
		}
		_ = surface.Close()
	}()

	inv.Drawing, inv.Err = op(surface, args)
	return inv
}
