// C14: the YAML-backed CLI flags struct (spec §6 "Context flags"), kept
// alongside the teacher's built-in-name constants rather than replacing
// them — constants.go still names the iteration method the for-loop
// typer looks up; this file adds the typer-context switches a real
// invocation configures per run.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CLIConfig mirrors the context flags spec §6 lists as "recognized
// options": backend selection plus the inlining/trace switches. Loaded
// from an optional YAML file and overridable by command-line flags.
type CLIConfig struct {
	Backend  string `yaml:"backend"`
	NoInline bool   `yaml:"noInline"`
	NoTraces bool   `yaml:"noTraces"`
}

// DefaultCLIConfig is what a bare invocation (no -config flag, no
// overriding flags) runs with.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{Backend: "js"}
}

// LoadCLIConfig reads path as YAML into a CLIConfig seeded with
// DefaultCLIConfig's values, so a partial file only overrides what it
// sets.
func LoadCLIConfig(path string) (CLIConfig, error) {
	cfg := DefaultCLIConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
