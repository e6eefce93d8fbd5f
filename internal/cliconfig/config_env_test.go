package cliconfig

import (
	"reflect"
	"testing"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"RESUME_FORMAT":      "html",
				"RESUME_EXTEND":      "4",
				"RESUME_ALL":         "true",
				"RESUME_HIDE":        "Tools,Interests",
				"RESUME_DATA":        "/env/resume.json",
				"RESUME_NO_EMBEDDED": "1",
				"RESUME_MAX_DEPTH":   "16",
				"RESUME_SEED":        "-5",
				"RESUME_WATCH":       "true",
				"RESUME_OUTPUT":      "/env/out.txt",
				"RESUME_LOG_LEVEL":   "warn",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Format:        "html",
				ExtendedCount: 4,
				ShowAll:       true,
				Hide:          []string{"Tools", "Interests"},
				DataFile:      "/env/resume.json",
				NoEmbedded:    true,
				MaxDepth:      16,
				Seed:          -5,
				Watch:         true,
				Output:        "/env/out.txt",
				LogLevel:      "warn",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"RESUME_FORMAT": "html",
				"RESUME_EXTEND": "2",
			},
			changed:  map[string]bool{"format": true},
			initial:  Config{Format: "text"},
			expected: Config{Format: "text", ExtendedCount: 2},
		},
		{
			name: "false overrides a true default",
			envVars: map[string]string{
				"RESUME_ALL": "false",
			},
			changed:  map[string]bool{},
			initial:  Config{ShowAll: true},
			expected: Config{},
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"RESUME_EXTEND": "lots",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid bool",
			envVars: map[string]string{
				"RESUME_WATCH": "sometimes",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	trueVal := true

	fileConf := FileConfig{
		Format:   "html",
		DataFile: "/file/resume.json",
		ShowAll:  &trueVal,
	}

	t.Setenv("RESUME_FORMAT", "text")
	t.Setenv("RESUME_DATA", "/env/resume.json")
	t.Setenv("RESUME_OUTPUT", "/env/out.txt")

	changed := map[string]bool{
		"format": true,
	}

	cfg := Config{
		Format: "h",
	}

	ApplyFileConfig(&cfg, fileConf, changed)
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.Format != "h" {
		t.Errorf("Format = %v, want h (CLI should win)", cfg.Format)
	}
	if cfg.DataFile != "/env/resume.json" {
		t.Errorf("DataFile = %v, want /env/resume.json (env should override file)", cfg.DataFile)
	}
	if cfg.Output != "/env/out.txt" {
		t.Errorf("Output = %v, want /env/out.txt (env should set)", cfg.Output)
	}
	if !cfg.ShowAll {
		t.Errorf("ShowAll = %v, want true (file should set)", cfg.ShowAll)
	}
}
