package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for secretsweep.
// Fields are pointers so the CLI can distinguish "unset" from zero values
// when resolving CLI > local > global precedence.
type FileConfig struct {
	Ignore   *string `yaml:"ignore"` // comma-separated glob patterns
	MaxBytes *int64  `yaml:"max_bytes"`
	MaxDepth *int    `yaml:"max_depth"`
	NoColor  *bool   `yaml:"no_color"`
	NoCache  *bool   `yaml:"no_cache"`
	FailOn   *string `yaml:"fail_on"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given scan root. It supports
// .secretsweep.yml/.yaml and secretsweep.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".secretsweep.yml", ".secretsweep.yaml", "secretsweep.yml", "secretsweep.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or
// ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "secretsweep", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
