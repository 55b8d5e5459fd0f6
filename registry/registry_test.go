package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownOps = []string{"bar", "pie", "hist"}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRegistryDefaultManifest(t *testing.T) {
	r, err := NewRegistry(Config{KnownOps: knownOps})
	require.NoError(t, err)

	m := r.Manifest()
	require.Len(t, m.Operations, 3)
	for i, op := range knownOps {
		assert.Equal(t, op, m.Operations[i].Name)
		assert.Empty(t, m.Operations[i].Categories)
	}
}

func TestNewRegistryLoadsYAML(t *testing.T) {
	path := writeManifest(t, `
seed: 42
perf_budget: 2s
operations:
  - name: bar
    categories: [basic, fuzz]
  - name: pie
    skip: true
    reason: renderer under review
`)
	r, err := NewRegistry(Config{ManifestFile: path, KnownOps: knownOps})
	require.NoError(t, err)

	m := r.Manifest()
	assert.Equal(t, int64(42), m.Seed)
	assert.Equal(t, 2*time.Second, m.PerfBudget.Std())
	require.Len(t, m.Operations, 2)
	assert.Equal(t, []string{"basic", "fuzz"}, m.Operations[0].Categories)
	assert.True(t, m.Operations[1].Skip)
	assert.Equal(t, "renderer under review", m.Operations[1].Reason)
}

func TestNewRegistryRejectsBadManifests(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown operation",
			yaml:    "operations:\n  - name: sparkline\n",
			wantErr: "unknown operation",
		},
		{
			name:    "unknown category",
			yaml:    "operations:\n  - name: bar\n    categories: [smoke]\n",
			wantErr: "unknown category",
		},
		{
			name:    "skip without reason",
			yaml:    "operations:\n  - name: bar\n    skip: true\n",
			wantErr: "without a reason",
		},
		{
			name:    "empty selection",
			yaml:    "operations: []\n",
			wantErr: "selects no operations",
		},
		{
			name:    "malformed yaml",
			yaml:    "operations: [\n",
			wantErr: "parse manifest",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.yaml)
			_, err := NewRegistry(Config{ManifestFile: path, KnownOps: knownOps})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewRegistryMissingFile(t *testing.T) {
	_, err := NewRegistry(Config{ManifestFile: "/does/not/exist.yaml", KnownOps: knownOps})
	assert.Error(t, err)
}

func TestNewRegistryRequiresOps(t *testing.T) {
	_, err := NewRegistry(Config{})
	assert.Error(t, err)
}
