package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsRecordKeepsAccounting(t *testing.T) {
	var s Stats
	s.Record(CaseStatusPass, false)
	s.Record(CaseStatusPass, false)
	s.Record(CaseStatusFail, false)
	s.Record(CaseStatusSkip, false)
	s.Record(CaseStatusError, true)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Errored)
	assert.Equal(t, 1, s.Timeouts)
	assert.True(t, s.Consistent())
	assert.InDelta(t, 40.0, s.PassRate(), 1e-9)
}

func TestStatsMerge(t *testing.T) {
	a := Stats{Total: 3, Passed: 2, Skipped: 1}
	b := Stats{Total: 2, Failed: 1, Errored: 1, Timeouts: 1}
	a.Merge(b)

	assert.Equal(t, Stats{Total: 5, Passed: 2, Failed: 1, Skipped: 1, Errored: 1, Timeouts: 1}, a)
	assert.True(t, a.Consistent())
}

func TestDetermineVerdict(t *testing.T) {
	tests := []struct {
		name string
		s    Stats
		want Verdict
	}{
		{name: "all pass", s: Stats{Total: 3, Passed: 3}, want: VerdictPass},
		{name: "skips only", s: Stats{Total: 3, Passed: 2, Skipped: 1}, want: VerdictPassWithSkips},
		{name: "one failure", s: Stats{Total: 3, Passed: 1, Failed: 1, Skipped: 1}, want: VerdictFail},
		{name: "error counts as failure", s: Stats{Total: 2, Passed: 1, Errored: 1}, want: VerdictFail},
		{name: "empty set passes", s: Stats{}, want: VerdictPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineVerdict(tt.s))
		})
	}
}

func TestCaseStatusFromVerdict(t *testing.T) {
	assert.Equal(t, CaseStatusPass, CaseStatusFromVerdict(VerdictPass))
	assert.Equal(t, CaseStatusSkip, CaseStatusFromVerdict(VerdictPassWithSkips))
	assert.Equal(t, CaseStatusFail, CaseStatusFromVerdict(VerdictFail))
}

func TestKnownCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, KnownCategory(string(c)))
	}
	assert.False(t, KnownCategory("smoke"))
	assert.False(t, KnownCategory(""))
}

func TestOutcomeRecordString(t *testing.T) {
	rec := OutcomeRecord{
		Op:       "bar",
		Category: CategoryBasic,
		Name:     "three_bars",
		Status:   CaseStatusPass,
	}
	assert.Equal(t, "bar/basic/three_bars: pass", rec.String())

	rec.Status = CaseStatusSkip
	rec.SkipReason = "manifest skip"
	assert.Contains(t, rec.String(), "(manifest skip)")

	rec.Status = CaseStatusFail
	rec.Error = errors.New("expected 3 rects, got 2")
	assert.Contains(t, rec.String(), "expected 3 rects")
}
