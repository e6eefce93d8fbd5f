package cliconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig holds raw RESUME_* values. Unset variables leave pointers nil.
type envConfig struct {
	Format        string   `env:"RESUME_FORMAT"`
	ExtendedCount *int     `env:"RESUME_EXTEND"`
	ShowAll       *bool    `env:"RESUME_ALL"`
	Hide          []string `env:"RESUME_HIDE" envSeparator:","`
	DataFile      string   `env:"RESUME_DATA"`
	NoEmbedded    *bool    `env:"RESUME_NO_EMBEDDED"`
	MaxDepth      *int     `env:"RESUME_MAX_DEPTH"`
	Seed          *int64   `env:"RESUME_SEED"`
	Watch         *bool    `env:"RESUME_WATCH"`
	Output        string   `env:"RESUME_OUTPUT"`
	LogLevel      string   `env:"RESUME_LOG_LEVEL"`
}

// ApplyEnvConfig applies configuration from environment variables (RESUME_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	s := newConfigSetter(changed)
	s.setString("format", raw.Format, &cfg.Format)
	s.setInt("extend", raw.ExtendedCount, &cfg.ExtendedCount)
	s.setBool("all", raw.ShowAll, &cfg.ShowAll)
	s.setStrings("hide", raw.Hide, &cfg.Hide)
	s.setString("data", raw.DataFile, &cfg.DataFile)
	s.setBool("no-embedded", raw.NoEmbedded, &cfg.NoEmbedded)
	s.setInt("max-depth", raw.MaxDepth, &cfg.MaxDepth)
	s.setInt64("seed", raw.Seed, &cfg.Seed)
	s.setBool("watch", raw.Watch, &cfg.Watch)
	s.setString("output", raw.Output, &cfg.Output)
	s.setString("log-level", raw.LogLevel, &cfg.LogLevel)
	return nil
}
