package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for neoexport.
type FileConfig struct {
	Format       *string `yaml:"format,omitempty"`
	LF           *bool   `yaml:"lf,omitempty"`
	Audit        *bool   `yaml:"audit,omitempty"`
	MetricsFile  *string `yaml:"metrics_file,omitempty"`
	PreviewLimit *int    `yaml:"preview_limit,omitempty"`
	NoColor      *bool   `yaml:"no_color,omitempty"`

	Log *LogConfig `yaml:"log,omitempty"`
}

// LogConfig holds logging options.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level *string `yaml:"level,omitempty"`
	// JSON switches from console output to one JSON object per line.
	JSON *bool `yaml:"json,omitempty"`
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

// LoadLocal searches for a config file in dir.
// It supports .neoexport.yml/.yaml and neoexport.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".neoexport.yml", ".neoexport.yaml", "neoexport.yml", "neoexport.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
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
	p := filepath.Join(base, "neoexport", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// GetLogConfig returns the log section, empty when absent.
func (fc FileConfig) GetLogConfig() LogConfig {
	if fc.Log == nil {
		return LogConfig{}
	}
	return *fc.Log
}

// GetLevel returns the configured level or "" for the default.
func (lc LogConfig) GetLevel() string {
	if lc.Level == nil {
		return ""
	}
	return *lc.Level
}

// IsJSON reports whether JSON log output is enabled (default: false).
func (lc LogConfig) IsJSON() bool {
	return lc.JSON != nil && *lc.JSON
}
