package metrics

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/chartprobe/chartprobe/types"
)

func TestErrToLabel(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "nil error",
			err:  nil,
		},
		{
			name: "simple error",
			err:  errors.New("test error"),
		},
		{
			name: "error with special chars",
			err:  errors.New("test@error#123"),
		},
		{
			name: "error with multiple spaces",
			err:  errors.New("test   error"),
		},
		{
			name: "error with multiple underscores",
			err:  errors.New("test__error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := errToLabel(tt.err)
			validLabelRegex := regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_]*`)
			if !validLabelRegex.MatchString(result) {
				t.Errorf("errToLabel() = %v, is not a valid Prometheus label", result)
			}
		})
	}
}

func TestRecordError(t *testing.T) {
	// just test that it doesn't panic
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("RecordError panic'd")
		}
	}()

	RecordError("test_error")
}

func TestRecordErrorDetails(t *testing.T) {
	RecordErrorDetails("test", nil)
	RecordErrorDetails("test", errors.New("sample error"))
}

func TestRecordCase(t *testing.T) {
	RecordCase("run1", types.OutcomeRecord{
		Op:       "bar",
		Category: types.CategoryBasic,
		Name:     "three_bars",
		Status:   types.CaseStatusPass,
	})
	RecordCase("run1", types.OutcomeRecord{
		Op:       "pie",
		Category: types.CategoryFuzz,
		Name:     "random_colors",
		Status:   types.CaseStatusFail,
	})
	// Unknown statuses are dropped, not exported.
	RecordCase("run1", types.OutcomeRecord{
		Op:       "bar",
		Category: types.CategoryBasic,
		Name:     "bogus",
		Status:   types.CaseStatus("bogus"),
	})
}

func TestRecordRun(t *testing.T) {
	RecordRun("run1", types.VerdictPass, types.Stats{Total: 2, Passed: 2}, time.Second)
	RecordRun("run2", types.VerdictFail, types.Stats{Total: 2, Passed: 1, Failed: 1}, time.Second)
}
