package probe

import (
	"fmt"

	"github.com/chartprobe/chartprobe/types"
)

// Check is one structural assertion over an invocation result.
type Check func(*Drawing) error

// Expectation is the expected-outcome predicate of a case. Exactly one
// of the three shapes is used:
//   - Checks only: the call must succeed and every check must hold.
//   - Err set: the call must fail with that error kind.
//   - AnyErr set: the call may succeed or fail with one of the listed
//     kinds (fuzz probing); the oracle records which outcome occurred.
type Expectation struct {
	Err    ErrorKind
	AnyErr []ErrorKind
	Checks []Check
}

// ExpectError builds an expectation for a negative case.
func ExpectError(kind ErrorKind) Expectation {
	return Expectation{Err: kind}
}

// ExpectSuccess builds an expectation from structural checks.
func ExpectSuccess(checks ...Check) Expectation {
	return Expectation{Checks: checks}
}

// ExpectEither builds the fuzz-style accept-or-reject expectation.
func ExpectEither(kinds ...ErrorKind) Expectation {
	return Expectation{AnyErr: kinds}
}

// Case is one named scenario: a target operation identifier, an input
// argument mapping and an expected-outcome predicate. Cases are built at
// definition time, never mutated, and share no state with each other.
type Case struct {
	Op       string
	Category types.Category
	Name     string
	Args     Args
	Expect   Expectation

	// SkipReason pre-marks the case as skipped; the runner records it
	// without invoking the target. Must be non-empty when used.
	SkipReason string

	// Seed records the randomness source of fuzz and property cases
	// for reproducibility. Zero for deterministic cases.
	Seed int64
}

// FullName returns op/category/name, unique within one run.
func (c Case) FullName() string {
	return fmt.Sprintf("%s/%s/%s", c.Op, c.Category, c.Name)
}

// Defined reports whether the case carries a usable expectation.
// Generators must never emit a case whose predicate is undefined.
func (c Case) Defined() bool {
	if c.SkipReason != "" {
		return true
	}
	return c.Expect.Err != "" || len(c.Expect.AnyErr) > 0 || len(c.Expect.Checks) > 0
}

// Skipped builds a pre-marked skip case. Reason is mandatory.
func Skipped(op string, category types.Category, name, reason string) Case {
	return Case{
		Op:         op,
		Category:   category,
		Name:       name,
		Args:       Args{},
		SkipReason: reason,
	}
}
