package suites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

const testSeed = 1234

func TestEveryOperationHasASuite(t *testing.T) {
	for _, op := range charts.Ops() {
		cases, err := ForOperation(op, testSeed)
		require.NoError(t, err, op)
		assert.NotEmpty(t, cases, op)
	}

	_, err := ForOperation("sparkline", testSeed)
	assert.Error(t, err)
}

func TestCasesAreWellFormed(t *testing.T) {
	for _, op := range charts.Ops() {
		cases, err := ForOperation(op, testSeed)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, c := range cases {
			assert.Equal(t, op, c.Op, c.FullName())
			assert.True(t, types.KnownCategory(string(c.Category)), c.FullName())
			assert.True(t, c.Defined(), "%s has no usable predicate", c.FullName())
			assert.False(t, seen[c.FullName()], "duplicate case %s", c.FullName())
			seen[c.FullName()] = true
		}
	}
}

// TestSuitesCoverAllCategories pins the promise that every operation
// enumerates every case family, accessibility and performance included.
func TestSuitesCoverAllCategories(t *testing.T) {
	for _, op := range charts.Ops() {
		cases, err := ForOperation(op, testSeed)
		require.NoError(t, err)

		got := make(map[types.Category]int)
		for _, c := range cases {
			got[c.Category]++
		}
		for _, want := range []types.Category{
			types.CategoryBasic,
			types.CategoryIntegration,
			types.CategoryCombinatorial,
			types.CategoryFuzz,
			types.CategoryProperty,
			types.CategoryAccessibility,
			types.CategoryPerformance,
			types.CategorySpecial,
		} {
			assert.Positive(t, got[want], "%s has no %s cases", op, want)
		}
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	for _, op := range charts.Ops() {
		a, err := ForOperation(op, testSeed)
		require.NoError(t, err)
		b, err := ForOperation(op, testSeed)
		require.NoError(t, err)
		require.Len(t, b, len(a), op)
		for i := range a {
			assert.Equal(t, a[i].FullName(), b[i].FullName())
			assert.Equal(t, a[i].Args.String(), b[i].Args.String(), a[i].FullName())
		}
	}
}

func TestCollectFiltersCategories(t *testing.T) {
	m := &types.Manifest{Operations: []types.OperationConfig{
		{Name: charts.OpBar, Categories: []string{"basic"}},
	}}
	cases, err := Collect(m, testSeed)
	require.NoError(t, err)
	require.NotEmpty(t, cases)
	for _, c := range cases {
		assert.Equal(t, types.CategoryBasic, c.Category)
	}
}

func TestCollectMarksManifestSkips(t *testing.T) {
	m := &types.Manifest{Operations: []types.OperationConfig{
		{Name: charts.OpViolin, Skip: true, Reason: "kde backend under review"},
	}}
	cases, err := Collect(m, testSeed)
	require.NoError(t, err)
	require.NotEmpty(t, cases)
	for _, c := range cases {
		assert.Equal(t, "kde backend under review", c.SkipReason, c.FullName())
	}
}

func TestCollectRejectsUnknownOperation(t *testing.T) {
	m := &types.Manifest{Operations: []types.OperationConfig{{Name: "sparkline"}}}
	_, err := Collect(m, testSeed)
	assert.Error(t, err)
}

// TestAllSuitesPassAgainstBindings is the end-to-end sweep: every
// enumerated case, executed against the real bindings, must land on its
// expected outcome.
func TestAllSuitesPassAgainstBindings(t *testing.T) {
	factory := charts.Factory()
	for _, op := range charts.Ops() {
		op := op
		t.Run(op, func(t *testing.T) {
			target, ok := charts.Lookup(op)
			require.True(t, ok)
			cases, err := ForOperation(op, testSeed)
			require.NoError(t, err)

			for _, c := range cases {
				if c.SkipReason != "" {
					continue
				}
				inv := probe.Invoke(target, factory, c.Args)
				rec := probe.Evaluate(c, inv)
				assert.Contains(t,
					[]types.CaseStatus{types.CaseStatusPass, types.CaseStatusSkip},
					rec.Status,
					"%s: %v (input %s)", c.FullName(), rec.Error, rec.Input)
			}
		})
	}
}
