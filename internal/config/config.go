package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for rfind. Every field
// is optional; nil means "not set" so CLI > local > global precedence works.
type FileConfig struct {
	IgnoreCase *bool     `yaml:"ignore_case"`
	Types      *[]string `yaml:"types"`
	Verbose    *bool     `yaml:"verbose"`
	NoColor    *bool     `yaml:"no_color"`
	Print0     *bool     `yaml:"print0"`
}

var localNames = []string{".rfind.yml", ".rfind.yaml", "rfind.yml", "rfind.yaml"}

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

// LoadLocal searches for a config file in dir.
// It supports .rfind.yml/.yaml and rfind.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range localNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// GlobalPath returns the global config location, or "" when no config
// directory can be determined.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "rfind", "config.yml")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p := GlobalPath()
	if p == "" {
		return cfg, errors.New("no config dir")
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// TypeNames returns the configured type list or nil.
func (fc FileConfig) TypeNames() []string {
	if fc.Types == nil {
		return nil
	}
	return *fc.Types
}

// Marshal renders fc as YAML, used by `rfind config init`.
func (fc FileConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(fc)
}
