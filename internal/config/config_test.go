package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.OutputDir)
	assert.Contains(t, cfg.FDM.APIBase, "OrcaSlicer")
	assert.Contains(t, cfg.SLA.MachineURL, "Machine.cs")
	assert.Contains(t, cfg.FDM.Blacklist, "hotend")
	assert.Contains(t, cfg.SLA.PlaceholderModels, "custom")
	assert.Equal(t, 10.0, cfg.FDM.MinFootprintMM)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	doc := `
output_dir: out
fdm:
  api_base: http://localhost:8080/api
  min_footprint_mm: 50
sla:
  placeholder_models: ["custom", "demo"]
`
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "http://localhost:8080/api", cfg.FDM.APIBase)
	assert.Equal(t, 50.0, cfg.FDM.MinFootprintMM)
	assert.Equal(t, []string{"custom", "demo"}, cfg.SLA.PlaceholderModels)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().FDM.RawBase, cfg.FDM.RawBase)
	assert.Equal(t, Default().SLA.MachineURL, cfg.SLA.MachineURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fdm: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSources(t *testing.T) {
	cfg := Default()
	sources := cfg.Sources()
	assert.Equal(t, cfg.FDM.RepoURL, sources["fdm"])
	assert.Equal(t, cfg.SLA.RepoURL, sources["sla"])
}
