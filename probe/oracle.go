package probe

import (
	"fmt"
	"math"

	"github.com/chartprobe/chartprobe/types"
)

// Epsilon is the tolerance for floating-point comparisons. Positions
// and widths travel through float arithmetic in the bindings, so exact
// equality is never asserted.
const Epsilon = 1e-6

// CloseTo reports |got-want| <= eps, treating two NaNs as equal so NaN
// preservation can be asserted.
func CloseTo(got, want, eps float64) bool {
	if math.IsNaN(got) && math.IsNaN(want) {
		return true
	}
	return math.Abs(got-want) <= eps
}

// Evaluate compares an invocation result against the case's expectation
// and produces the outcome record. The comparison is deterministic:
// evaluating the same invocation twice yields equal records.
func Evaluate(c Case, inv Invocation) types.OutcomeRecord {
	rec := types.OutcomeRecord{
		Op:       c.Op,
		Category: c.Category,
		Name:     c.Name,
		Input:    c.Args.String(),
	}

	if c.SkipReason != "" {
		rec.Status = types.CaseStatusSkip
		rec.SkipReason = c.SkipReason
		return rec
	}

	// Environment gaps reported by the target degrade to recorded
	// skips, never to false passes or failures.
	if IsKind(inv.Err, KindEnvironmentMissing) {
		rec.Status = types.CaseStatusSkip
		rec.SkipReason = inv.Err.Error()
		return rec
	}

	if inv.Panicked {
		rec.Status = types.CaseStatusError
		rec.Error = inv.Err
		return rec
	}

	switch {
	case len(c.Expect.AnyErr) > 0:
		return evaluateEither(c, inv, rec)
	case c.Expect.Err != "":
		return evaluateError(c, inv, rec)
	default:
		return evaluateSuccess(c, inv, rec)
	}
}

// evaluateError handles negative cases: the target must fail with the
// expected kind. A success or a mismatched kind is itself a failure.
func evaluateError(c Case, inv Invocation, rec types.OutcomeRecord) types.OutcomeRecord {
	if inv.Err == nil {
		rec.Status = types.CaseStatusFail
		rec.Error = fmt.Errorf("expected %s error, call succeeded with %d primitives",
			c.Expect.Err, inv.Drawing.PrimitiveCount())
		return rec
	}
	if got := KindOf(inv.Err); got != c.Expect.Err {
		rec.Status = types.CaseStatusFail
		rec.Error = fmt.Errorf("expected %s error, got %s: %v", c.Expect.Err, got, inv.Err)
		return rec
	}
	rec.Status = types.CaseStatusPass
	return rec
}

// evaluateEither handles fuzz probes where both acceptance and a listed
// rejection kind are valid; the record notes which outcome occurred.
func evaluateEither(c Case, inv Invocation, rec types.OutcomeRecord) types.OutcomeRecord {
	if inv.Err == nil {
		rec.Note = "accepted"
		return runChecks(c, inv, rec)
	}
	got := KindOf(inv.Err)
	for _, kind := range c.Expect.AnyErr {
		if got == kind {
			rec.Status = types.CaseStatusPass
			rec.Note = fmt.Sprintf("rejected (%s)", got)
			return rec
		}
	}
	rec.Status = types.CaseStatusFail
	rec.Error = fmt.Errorf("unexpected %s error: %v", got, inv.Err)
	return rec
}

func evaluateSuccess(c Case, inv Invocation, rec types.OutcomeRecord) types.OutcomeRecord {
	if inv.Err != nil {
		rec.Status = types.CaseStatusFail
		rec.Error = fmt.Errorf("unexpected error: %w", inv.Err)
		return rec
	}
	return runChecks(c, inv, rec)
}

func runChecks(c Case, inv Invocation, rec types.OutcomeRecord) types.OutcomeRecord {
	for _, check := range c.Expect.Checks {
		if err := check(inv.Drawing); err != nil {
			rec.Status = types.CaseStatusFail
			rec.Error = err
			return rec
		}
	}
	rec.Status = types.CaseStatusPass
	return rec
}

// ExpectRects asserts the total rect handle count, masked included.
func ExpectRects(n int) Check {
	return func(d *Drawing) error {
		if len(d.Rects) != n {
			return fmt.Errorf("expected %d rects, got %d", n, len(d.Rects))
		}
		return nil
	}
}

// ExpectVisibleRects asserts the count of rects that actually render.
func ExpectVisibleRects(n int) Check {
	return func(d *Drawing) error {
		if got := d.VisibleRects(); got != n {
			return fmt.Errorf("expected %d visible rects, got %d", n, got)
		}
		return nil
	}
}

// ExpectWedges asserts the wedge handle count.
func ExpectWedges(n int) Check {
	return func(d *Drawing) error {
		if len(d.Wedges) != n {
			return fmt.Errorf("expected %d wedges, got %d", n, len(d.Wedges))
		}
		return nil
	}
}

// ExpectPolygons asserts the polygon handle count.
func ExpectPolygons(n int) Check {
	return func(d *Drawing) error {
		if len(d.Polygons) != n {
			return fmt.Errorf("expected %d polygons, got %d", n, len(d.Polygons))
		}
		return nil
	}
}

// ExpectPaths asserts the path handle count.
func ExpectPaths(n int) Check {
	return func(d *Drawing) error {
		if len(d.Paths) != n {
			return fmt.Errorf("expected %d paths, got %d", n, len(d.Paths))
		}
		return nil
	}
}

// ExpectBins asserts the histogram bin count.
func ExpectBins(n int) Check {
	return func(d *Drawing) error {
		if len(d.Bins) != n {
			return fmt.Errorf("expected %d bins, got %d", n, len(d.Bins))
		}
		return nil
	}
}

// ExpectBoxes asserts the box-stat handle count.
func ExpectBoxes(n int) Check {
	return func(d *Drawing) error {
		if len(d.Boxes) != n {
			return fmt.Errorf("expected %d boxes, got %d", n, len(d.Boxes))
		}
		return nil
	}
}

// ExpectMarkers asserts the visible marker count.
func ExpectMarkers(n int) Check {
	return func(d *Drawing) error {
		if got := d.VisibleMarkers(); got != n {
			return fmt.Errorf("expected %d markers, got %d", n, got)
		}
		return nil
	}
}

// ExpectNoPrimitives asserts the empty-input short circuit: zero
// handles of any kind.
func ExpectNoPrimitives() Check {
	return func(d *Drawing) error {
		if n := d.PrimitiveCount(); n != 0 {
			return fmt.Errorf("expected no primitives, got %d", n)
		}
		return nil
	}
}

// EachRect applies fn to every rect handle in index order.
func EachRect(fn func(i int, r Rect) error) Check {
	return func(d *Drawing) error {
		for i, r := range d.Rects {
			if err := fn(i, r); err != nil {
				return fmt.Errorf("rect %d: %w", i, err)
			}
		}
		return nil
	}
}

// EachWedge applies fn to every wedge handle in index order.
func EachWedge(fn func(i int, w Wedge) error) Check {
	return func(d *Drawing) error {
		for i, w := range d.Wedges {
			if err := fn(i, w); err != nil {
				return fmt.Errorf("wedge %d: %w", i, err)
			}
		}
		return nil
	}
}

// EachPolygon applies fn to every polygon handle in index order.
func EachPolygon(fn func(i int, p Polygon) error) Check {
	return func(d *Drawing) error {
		for i, p := range d.Polygons {
			if err := fn(i, p); err != nil {
				return fmt.Errorf("polygon %d: %w", i, err)
			}
		}
		return nil
	}
}

// ExpectLabelTexts asserts the rendered label texts in order.
func ExpectLabelTexts(texts ...string) Check {
	return func(d *Drawing) error {
		got := d.LabelTexts()
		if len(got) != len(texts) {
			return fmt.Errorf("expected %d labels, got %d", len(texts), len(got))
		}
		for i, want := range texts {
			if got[i] != want {
				return fmt.Errorf("label %d: expected %q, got %q", i, want, got[i])
			}
		}
		return nil
	}
}
