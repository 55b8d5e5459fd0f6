package types

import (
	"fmt"
	"strings"
	"time"
)

// CaseStatus represents the possible outcomes of a single case execution.
type CaseStatus string

const (
	CaseStatusPass  CaseStatus = "pass"
	CaseStatusFail  CaseStatus = "fail"
	CaseStatusSkip  CaseStatus = "skip"
	CaseStatusError CaseStatus = "error"
)

// Category identifies which enumeration family a case belongs to.
// Every case carries exactly one category and the reporter aggregates
// per operation and per category.
type Category string

const (
	CategoryBasic         Category = "basic"
	CategoryIntegration   Category = "integration"
	CategoryProperty      Category = "property"
	CategoryFuzz          Category = "fuzz"
	CategoryCombinatorial Category = "combinatorial"
	CategoryAccessibility Category = "accessibility"
	CategoryPerformance   Category = "performance"
	CategorySpecial       Category = "special"
)

// Categories lists every known category in reporting order.
var Categories = []Category{
	CategoryBasic,
	CategoryIntegration,
	CategoryProperty,
	CategoryFuzz,
	CategoryCombinatorial,
	CategoryAccessibility,
	CategoryPerformance,
	CategorySpecial,
}

// KnownCategory reports whether name is one of the defined categories.
func KnownCategory(name string) bool {
	for _, c := range Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

// OutcomeRecord captures the outcome of a single case run.
// Records are append-only: the runner produces them and the reporter
// consumes them, nothing mutates a record after creation.
type OutcomeRecord struct {
	Op       string
	Category Category
	Name     string
	Status   CaseStatus
	Error    error
	Duration time.Duration
	TimedOut bool

	// SkipReason is required whenever Status is skip.
	SkipReason string

	// Note records auxiliary observations, e.g. which of the two
	// acceptable outcomes a fuzz probe took.
	Note string

	// Input holds the literal case arguments, for reproducing failures.
	Input string
}

// String renders a compact one-line description of the record.
func (o *OutcomeRecord) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s/%s: %s", o.Op, o.Category, o.Name, o.Status)
	if o.Status == CaseStatusSkip && o.SkipReason != "" {
		fmt.Fprintf(&b, " (%s)", o.SkipReason)
	}
	if o.Error != nil {
		fmt.Fprintf(&b, ": %v", o.Error)
	}
	return b.String()
}

// Stats accumulates case counts for one aggregation level.
type Stats struct {
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	Errored  int
	Timeouts int
}

// Record adds one case outcome to the counters.
func (s *Stats) Record(status CaseStatus, timedOut bool) {
	s.Total++
	switch status {
	case CaseStatusPass:
		s.Passed++
	case CaseStatusFail:
		s.Failed++
	case CaseStatusSkip:
		s.Skipped++
	case CaseStatusError:
		s.Errored++
	}
	if timedOut {
		s.Timeouts++
	}
}

// Merge folds other into s.
func (s *Stats) Merge(other Stats) {
	s.Total += other.Total
	s.Passed += other.Passed
	s.Failed += other.Failed
	s.Skipped += other.Skipped
	s.Errored += other.Errored
	s.Timeouts += other.Timeouts
}

// Consistent reports whether the accounting invariant holds:
// the total equals the sum of the per-status counters.
func (s Stats) Consistent() bool {
	return s.Total == s.Passed+s.Failed+s.Skipped+s.Errored
}

// PassRate returns the percentage of passed cases, 0 for an empty set.
func (s Stats) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// Verdict is the tri-state summary for a category, an operation, or a
// whole run. A single failing case makes the verdict fail; skips are
// surfaced distinctly rather than averaged away.
type Verdict string

const (
	VerdictPass          Verdict = "pass"
	VerdictPassWithSkips Verdict = "pass-with-skips"
	VerdictFail          Verdict = "fail"
)

// DetermineVerdict derives the verdict for a set of counters.
func DetermineVerdict(s Stats) Verdict {
	if s.Failed > 0 || s.Errored > 0 {
		return VerdictFail
	}
	if s.Skipped > 0 {
		return VerdictPassWithSkips
	}
	return VerdictPass
}

// CaseStatusFromVerdict maps a verdict back onto the status used for
// hierarchy rows in the console table.
func CaseStatusFromVerdict(v Verdict) CaseStatus {
	switch v {
	case VerdictFail:
		return CaseStatusFail
	case VerdictPassWithSkips:
		return CaseStatusSkip
	default:
		return CaseStatusPass
	}
}
