package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath, scenarioPath, reportFormat = "", "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRunsDemo(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Batman uses Batarang: Throwing weapon!")
	assert.Contains(t, out, "Wolverine's energy: 75%")
}

func TestRootScenarioMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: wrong
steps:
  - hero: Wolverine
    action: use_power
expected:
  energy:
    Wolverine: 100
`), 0o644))

	out, err := execute(t, "--scenario", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Wolverine: expected energy 100, got 95")
	assert.Contains(t, out, "Wolverine uses regeneration with mutant efficiency!")
}

func TestRootReport(t *testing.T) {
	out, err := execute(t, "--report", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"scenario": "demo"`)
	assert.Contains(t, out, `"hero": "Wolverine",`)

	_, err = execute(t, "--report", "xml")
	assert.Error(t, err)
}

func TestRosterCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`heroes:
  - name: Storm
    kind: mutant
    secret_identity: Ororo Munroe
    powers: ["weather control", "flight"]
    mutation_level: 8
`), 0o644))

	out, err := execute(t, "roster", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "Storm (Secret Identity: Ororo Munroe) with powers: weather control, flight\nMutation Level: 8/10\n", out)
}

func TestRootBadConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
