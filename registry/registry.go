// Package registry loads and validates the run manifest: which
// operations and categories a run probes, seeded how, under what budget.
package registry

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/chartprobe/chartprobe/types"
)

// Registry holds the validated manifest.
type Registry struct {
	config   Config
	manifest *types.Manifest
	mu       sync.RWMutex
}

// Config contains registry configuration.
type Config struct {
	Log *logrus.Logger

	// ManifestFile is the YAML manifest path. Empty selects the default
	// manifest covering every known operation.
	ManifestFile string

	// KnownOps are the registered operation names; manifest entries
	// referencing anything else are rejected.
	KnownOps []string
}

// NewRegistry creates a registry and loads its manifest.
func NewRegistry(cfg Config) (*Registry, error) {
	if len(cfg.KnownOps) == 0 {
		return nil, fmt.Errorf("no operations registered")
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
		cfg.Log.Error("No logger provided, using default")
	}

	r := &Registry{config: cfg}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	cfg.Log.WithFields(logrus.Fields{
		"operations": len(r.manifest.Operations),
		"seed":       r.manifest.Seed,
	}).Debug("Registry loaded")

	return r, nil
}

// Manifest returns the loaded manifest.
func (r *Registry) Manifest() *types.Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.manifest
}

func (r *Registry) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.readManifest()
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	if err := r.checkOperations(m); err != nil {
		return err
	}

	r.manifest = m
	return nil
}

func (r *Registry) readManifest() (*types.Manifest, error) {
	if r.config.ManifestFile == "" {
		return DefaultManifest(r.config.KnownOps), nil
	}

	data, err := os.ReadFile(r.config.ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	var m types.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}
	if len(m.Operations) == 0 {
		return nil, fmt.Errorf("manifest selects no operations")
	}
	return &m, nil
}

func (r *Registry) checkOperations(m *types.Manifest) error {
	known := make(map[string]bool, len(r.config.KnownOps))
	for _, op := range r.config.KnownOps {
		known[op] = true
	}
	for _, cfg := range m.Operations {
		if !known[cfg.Name] {
			return fmt.Errorf("manifest references unknown operation %q", cfg.Name)
		}
	}
	return nil
}

// DefaultManifest selects every known operation with all categories.
func DefaultManifest(ops []string) *types.Manifest {
	m := &types.Manifest{}
	for _, op := range ops {
		m.Operations = append(m.Operations, types.OperationConfig{Name: op})
	}
	return m
}
