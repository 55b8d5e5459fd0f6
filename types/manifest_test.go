package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDurationUnmarshalYAML(t *testing.T) {
	var m Manifest
	doc := "perf_budget: 1500ms\noperations:\n  - name: bar\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &m))
	assert.Equal(t, 1500*time.Millisecond, m.PerfBudget.Std())

	var bad Manifest
	assert.Error(t, yaml.Unmarshal([]byte("perf_budget: fast\n"), &bad))
}

func TestManifestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Manifest
		wantErr string
	}{
		{
			name: "valid",
			m: Manifest{Operations: []OperationConfig{
				{Name: "bar"},
				{Name: "pie", Categories: []string{"basic", "fuzz"}},
				{Name: "violin", Skip: true, Reason: "kde backend under review"},
			}},
		},
		{
			name:    "missing name",
			m:       Manifest{Operations: []OperationConfig{{}}},
			wantErr: "has no name",
		},
		{
			name: "duplicate operation",
			m: Manifest{Operations: []OperationConfig{
				{Name: "bar"}, {Name: "bar"},
			}},
			wantErr: "listed twice",
		},
		{
			name: "skip without reason",
			m: Manifest{Operations: []OperationConfig{
				{Name: "bar", Skip: true},
			}},
			wantErr: "without a reason",
		},
		{
			name: "unknown category",
			m: Manifest{Operations: []OperationConfig{
				{Name: "bar", Categories: []string{"smoke"}},
			}},
			wantErr: `unknown category "smoke"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWantsCategory(t *testing.T) {
	all := OperationConfig{Name: "bar"}
	for _, c := range Categories {
		assert.True(t, all.WantsCategory(c))
	}

	some := OperationConfig{Name: "bar", Categories: []string{"basic", "fuzz"}}
	assert.True(t, some.WantsCategory(CategoryBasic))
	assert.True(t, some.WantsCategory(CategoryFuzz))
	assert.False(t, some.WantsCategory(CategoryPerformance))
}
