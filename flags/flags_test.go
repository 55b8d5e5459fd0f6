package flags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// TestUniqueFlags asserts that all flag names are unique, to avoid accidental conflicts between the many flags.
func TestUniqueFlags(t *testing.T) {
	seenCLI := make(map[string]struct{})
	for _, flag := range Flags {
		name := flag.Names()[0]
		if _, ok := seenCLI[name]; ok {
			t.Errorf("duplicate flag %s", name)
			continue
		}
		seenCLI[name] = struct{}{}
	}
}

func TestNoFlagIsRequired(t *testing.T) {
	for _, flag := range Flags {
		reqFlag, ok := flag.(cli.RequiredFlag)
		require.True(t, ok)
		require.False(t, reqFlag.IsRequired(), "%q must stay optional", flag.Names()[0])
	}
}

func TestHasEnvVar(t *testing.T) {
	for _, flag := range Flags {
		flagName := flag.Names()[0]

		t.Run(flagName, func(t *testing.T) {
			envFlag, ok := flag.(interface {
				GetEnvVars() []string
			})
			require.True(t, ok)
			envVars := envFlag.GetEnvVars()
			require.Len(t, envVars, 1)
			require.True(t, strings.HasPrefix(envVars[0], EnvVarPrefix+"_"),
				"%q env var must carry the %s prefix", flagName, EnvVarPrefix)
		})
	}
}
