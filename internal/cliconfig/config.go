package cliconfig

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sirspot/resume/internal/render"
	"github.com/sirspot/resume/pkg/jsonscan"
	"github.com/sirspot/resume/pkg/resume"
)

// Config holds CLI configuration for resume.
type Config struct {
	Format        string
	ExtendedCount int
	ShowAll       bool
	Hide          []string

	DataFile   string
	NoEmbedded bool
	MaxDepth   int

	// Seed drives random section order. Zero picks a fresh seed per render.
	Seed int64

	Watch    bool
	Output   string
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Format:   string(render.FormatText),
		MaxDepth: jsonscan.DefaultMaxDepth,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Validate checks the configuration for errors and normalizes the format name.
func (c *Config) Validate() error {
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.Format = string(f)

	if c.ExtendedCount < 0 || c.ExtendedCount > resume.MaxExtended {
		return fmt.Errorf("extended count must be between 0 and %d", resume.MaxExtended)
	}
	if len(c.Hide) > resume.MaxHidden {
		return fmt.Errorf("at most %d sections can be hidden", resume.MaxHidden)
	}
	for i, h := range c.Hide {
		c.Hide[i] = strings.TrimSpace(h)
	}

	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive")
	}
	if c.Watch && c.DataFile == "" {
		return fmt.Errorf("watch requires a data file")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Options returns the presentation options for a render.
func (c *Config) Options() resume.Options {
	return resume.Options{
		ExtendedCount: c.ExtendedCount,
		ShowAll:       c.ShowAll,
		Hidden:        c.Hide,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if present and flag not changed.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInt64 sets an int64 value if present and flag not changed.
func (s *configSetter) setInt64(flag string, value *int64, dst *int64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setStrings replaces a list if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}
