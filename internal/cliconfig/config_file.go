package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config with optional fields so a file only overrides
// what it names.
type FileConfig struct {
	Format        string   `toml:"format" yaml:"format"`
	ExtendedCount *int     `toml:"extend" yaml:"extend"`
	ShowAll       *bool    `toml:"all" yaml:"all"`
	Hide          []string `toml:"hide" yaml:"hide"`
	DataFile      string   `toml:"data" yaml:"data"`
	NoEmbedded    *bool    `toml:"no_embedded" yaml:"no_embedded"`
	MaxDepth      *int     `toml:"max_depth" yaml:"max_depth"`
	Seed          *int64   `toml:"seed" yaml:"seed"`
	Watch         *bool    `toml:"watch" yaml:"watch"`
	Output        string   `toml:"output" yaml:"output"`
	LogLevel      string   `toml:"log_level" yaml:"log_level"`
}

// LoadFileConfig reads and parses a config file. Files ending in .yaml or
// .yml are YAML; anything else is TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.resume/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".resume", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("format", fc.Format, &cfg.Format)
	s.setInt("extend", fc.ExtendedCount, &cfg.ExtendedCount)
	s.setBool("all", fc.ShowAll, &cfg.ShowAll)
	s.setStrings("hide", fc.Hide, &cfg.Hide)
	s.setString("data", fc.DataFile, &cfg.DataFile)
	s.setBool("no-embedded", fc.NoEmbedded, &cfg.NoEmbedded)
	s.setInt("max-depth", fc.MaxDepth, &cfg.MaxDepth)
	s.setInt64("seed", fc.Seed, &cfg.Seed)
	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
