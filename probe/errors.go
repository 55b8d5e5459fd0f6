package probe

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors raised by a target operation. Cases match
// on kinds, not concrete error values, so bindings over different
// libraries stay comparable.
type ErrorKind string

const (
	// KindInvalidArgument covers mismatched lengths, unknown enum
	// values and out-of-range numeric parameters.
	KindInvalidArgument ErrorKind = "invalid_argument"

	// KindUnsupportedShape covers dimensionality mismatches, e.g. a
	// contour grid whose coordinate vectors disagree with the matrix.
	KindUnsupportedShape ErrorKind = "unsupported_shape"

	// KindEnvironmentMissing marks an optional capability that is not
	// available; it degrades to a recorded skip, never a failure.
	KindEnvironmentMissing ErrorKind = "environment_missing"

	// KindRuntime marks a panic or other unexpected failure inside the
	// target; it surfaces as an errored case.
	KindRuntime ErrorKind = "runtime"
)

// TargetError is the typed error bindings raise for contract violations.
type TargetError struct {
	Kind ErrorKind
	Op   string
	Msg  string
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// InvalidArgument creates an invalid_argument error for op.
func InvalidArgument(op, format string, args ...any) *TargetError {
	return &TargetError{Kind: KindInvalidArgument, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedShape creates an unsupported_shape error for op.
func UnsupportedShape(op, format string, args ...any) *TargetError {
	return &TargetError{Kind: KindUnsupportedShape, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// EnvironmentMissing creates an environment_missing error for op.
func EnvironmentMissing(op, format string, args ...any) *TargetError {
	return &TargetError{Kind: KindEnvironmentMissing, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, or KindRuntime when err is not a
// TargetError (library-internal failures count as runtime).
func KindOf(err error) ErrorKind {
	var te *TargetError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindRuntime
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
