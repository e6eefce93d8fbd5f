package cliconfig

import (
	"strings"
	"testing"

	"github.com/sirspot/resume/pkg/jsonscan"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
	if cfg.MaxDepth != jsonscan.DefaultMaxDepth {
		t.Errorf("MaxDepth = %v, want %v", cfg.MaxDepth, jsonscan.DefaultMaxDepth)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func(mod func(*Config)) Config {
		c := DefaultConfig()
		mod(&c)
		return c
	}

	tests := []struct {
		name       string
		config     Config
		wantErr    bool
		wantFormat string
	}{
		{
			name:       "html shorthand",
			config:     valid(func(c *Config) { c.Format = "H" }),
			wantFormat: "html",
		},
		{
			name:    "unknown format",
			config:  valid(func(c *Config) { c.Format = "pdf" }),
			wantErr: true,
		},
		{
			name:   "largest extended count",
			config: valid(func(c *Config) { c.ExtendedCount = 60 }),
		},
		{
			name:    "extended count too large",
			config:  valid(func(c *Config) { c.ExtendedCount = 61 }),
			wantErr: true,
		},
		{
			name:    "negative extended count",
			config:  valid(func(c *Config) { c.ExtendedCount = -1 }),
			wantErr: true,
		},
		{
			name:    "too many hidden sections",
			config:  valid(func(c *Config) { c.Hide = make([]string, 33) }),
			wantErr: true,
		},
		{
			name:    "zero max depth",
			config:  valid(func(c *Config) { c.MaxDepth = 0 }),
			wantErr: true,
		},
		{
			name:    "watch without data file",
			config:  valid(func(c *Config) { c.Watch = true }),
			wantErr: true,
		},
		{
			name: "watch with data file",
			config: valid(func(c *Config) {
				c.Watch = true
				c.DataFile = "resume.json"
			}),
		},
		{
			name:    "bad log level",
			config:  valid(func(c *Config) { c.LogLevel = "loud" }),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.wantFormat != "" && tt.config.Format != tt.wantFormat {
				t.Errorf("Format = %v, want %v", tt.config.Format, tt.wantFormat)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	c := DefaultConfig()
	c.ExtendedCount = 2
	c.ShowAll = true
	c.Hide = []string{" Tools ", "Interests"}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	opts := c.Options()
	if opts.ExtendedCount != 2 || !opts.ShowAll {
		t.Errorf("Options() = %+v", opts)
	}
	if strings.Join(opts.Hidden, ",") != "Tools,Interests" {
		t.Errorf("Hidden = %q, want trimmed titles", opts.Hidden)
	}
}

func TestRenderSeed(t *testing.T) {
	c := Config{Seed: 42}
	seed, err := c.RenderSeed()
	if err != nil || seed != 42 {
		t.Errorf("RenderSeed() = %v, %v, want 42", seed, err)
	}

	c.Seed = 0
	if _, err := c.RenderSeed(); err != nil {
		t.Errorf("RenderSeed() unexpected error: %v", err)
	}
}

func TestSetLogLevel(t *testing.T) {
	if err := SetLogLevel("debug"); err != nil {
		t.Errorf("SetLogLevel(debug) error = %v", err)
	}
	if err := SetLogLevel("nope"); err == nil {
		t.Error("SetLogLevel(nope) expected error")
	}
	_ = SetLogLevel("info")
}
