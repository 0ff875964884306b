// Package config holds the build configuration: upstream endpoints,
// keyword lists, and output locations. Defaults match the public
// OrcaSlicer and UVtools repositories; an optional YAML document
// overrides any subset of them. The resulting Config is an explicit
// immutable value passed into each component, never ambient state, so
// tests substitute endpoints and blacklists freely.
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/printdex/printdex/pkg/catalog"
	"github.com/printdex/printdex/pkg/errors"
)

// Config is the full build configuration.
type Config struct {
	// OutputDir receives printers.json and metadata.json.
	OutputDir string `yaml:"output_dir"`

	FDM FDMConfig `yaml:"fdm"`
	SLA SLAConfig `yaml:"sla"`
}

// FDMConfig configures the OrcaSlicer profile-tree extractor.
type FDMConfig struct {
	// APIBase is the GitHub API root of the upstream repository.
	APIBase string `yaml:"api_base"`
	// RawBase is the raw-content root used for image probes.
	RawBase string `yaml:"raw_base"`
	// ProfilesPath is the brand directory tree inside the repository.
	ProfilesPath string `yaml:"profiles_path"`
	// RepoURL is the upstream attribution URL recorded in metadata.
	RepoURL string `yaml:"repo_url"`
	// Blacklist rejects raw names containing any of these substrings
	// (case-insensitive): accessories, hotends, consumables.
	Blacklist []string `yaml:"blacklist"`
	// MinFootprintMM is the plausibility threshold for footprint width.
	MinFootprintMM float64 `yaml:"min_footprint_mm"`
}

// SLAConfig configures the UVtools embedded-literal extractor.
type SLAConfig struct {
	// MachineURL is the raw URL of the source file holding the machine
	// tuple literals.
	MachineURL string `yaml:"machine_url"`
	// RepoURL is the upstream attribution URL recorded in metadata.
	RepoURL string `yaml:"repo_url"`
	// PlaceholderModels are model names excluded as non-products
	// (case-insensitive exact match).
	PlaceholderModels []string `yaml:"placeholder_models"`
}

// Default returns the built-in configuration for the public upstreams.
func Default() Config {
	return Config{
		OutputDir: "data",
		FDM: FDMConfig{
			APIBase:      "https://api.github.com/repos/SoftFever/OrcaSlicer",
			RawBase:      "https://raw.githubusercontent.com/SoftFever/OrcaSlicer/main",
			ProfilesPath: "resources/profiles",
			RepoURL:      "https://github.com/SoftFever/OrcaSlicer",
			Blacklist: []string{
				"hotend", "hot end", "all-metal", "nozzle", "plate", "kit", "extruder",
				"sheet", "smooth", "textured", "satin", "cool", "engineering",
				"high temp", "hardened", "chamber", "auxiliary",
			},
			MinFootprintMM: catalog.MinFootprintMM,
		},
		SLA: SLAConfig{
			MachineURL:        "https://raw.githubusercontent.com/sn4k3/UVtools/master/UVtools.Core/Printer/Machine.cs",
			RepoURL:           "https://github.com/sn4k3/UVtools",
			PlaceholderModels: []string{"custom", "default", "generic", "unknown", "test"},
		},
	}
}

// Load returns the default configuration with overrides applied from
// the YAML document at path. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WrapIO("read", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.NewConfigError("sources", "invalid YAML", err)
	}
	return cfg, nil
}

// Sources returns the technology→upstream attribution map recorded in
// build metadata.
func (c *Config) Sources() map[string]string {
	return map[string]string{
		"fdm": c.FDM.RepoURL,
		"sla": c.SLA.RepoURL,
	}
}
