package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel().
// - applyEnvConfig is pure and tested with literal envConfig values.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-txt2md/internal/config"
)

func boolPtr(v bool) *bool { return &v }

func TestLoadEnvConfig(t *testing.T) {
	t.Run("reads string variables", func(t *testing.T) {
		t.Setenv(envConfigPath, "./txt2md.yaml")
		t.Setenv(envInput, "notes.txt")
		t.Setenv(envOutput, "notes.md")
		t.Setenv(envPreview, "notes.html")
		t.Setenv(envMode, "  Advanced ")

		cfg, err := loadEnvConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ConfigPath != "./txt2md.yaml" {
			t.Errorf("ConfigPath = %q", cfg.ConfigPath)
		}
		if cfg.Input != "notes.txt" || cfg.Output != "notes.md" || cfg.Preview != "notes.html" {
			t.Errorf("paths = %q, %q, %q", cfg.Input, cfg.Output, cfg.Preview)
		}
		if cfg.Mode != "advanced" {
			t.Errorf("Mode = %q, want %q", cfg.Mode, "advanced")
		}
	})

	t.Run("unset booleans are nil", func(t *testing.T) {
		t.Setenv(envPreserveDoubleNewlines, "")
		t.Setenv(envInteractive, "")
		t.Setenv(envInspect, "")

		cfg, err := loadEnvConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.PreserveDoubleNewlines != nil || cfg.Interactive != nil || cfg.Inspect != nil {
			t.Error("expected nil booleans for empty variables")
		}
	})

	t.Run("parses booleans", func(t *testing.T) {
		t.Setenv(envPreserveDoubleNewlines, "1")
		t.Setenv(envInteractive, "false")
		t.Setenv(envInspect, "TRUE")
		t.Setenv(envVerbose, "t")

		cfg, err := loadEnvConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.PreserveDoubleNewlines == nil || !*cfg.PreserveDoubleNewlines {
			t.Error("PreserveDoubleNewlines should be true")
		}
		if cfg.Interactive == nil || *cfg.Interactive {
			t.Error("Interactive should be false")
		}
		if cfg.Inspect == nil || !*cfg.Inspect {
			t.Error("Inspect should be true")
		}
		if !cfg.Verbose {
			t.Error("Verbose should be true")
		}
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv(envInspect, "maybe")

		_, err := loadEnvConfig()
		if !errors.Is(err, ErrInvalidEnv) {
			t.Fatalf("error = %v, want ErrInvalidEnv", err)
		}
		if !strings.Contains(err.Error(), envInspect) {
			t.Errorf("error %q should name the variable", err)
		}
	})
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{" yes ", false},
		{"0", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(envVerbose, tt.value)
			if got := envBool(envVerbose); got != tt.want {
				t.Errorf("envBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("TXT2MD_INPTU", "x")
	t.Setenv(envInput, "input.txt")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "TXT2MD_INPTU") {
		t.Errorf("expected warning for TXT2MD_INPTU, got %q", buf.String())
	}
	if strings.Contains(buf.String(), envInput+" ") {
		t.Errorf("known variable reported: %q", buf.String())
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		env   envConfig
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "empty env keeps config",
			env:  envConfig{},
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if cfg.Input.Path != config.DefaultInputPath || cfg.Conversion.Mode != config.ModeBasic {
					t.Errorf("config changed: %+v", cfg)
				}
			},
		},
		{
			name: "paths override",
			env:  envConfig{Input: "a.txt", Output: "b.md", Preview: "b.html"},
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if cfg.Input.Path != "a.txt" || cfg.Output.Path != "b.md" || cfg.Output.Preview != "b.html" {
					t.Errorf("paths = %+v %+v", cfg.Input, cfg.Output)
				}
			},
		},
		{
			name: "preserve implies advanced",
			env:  envConfig{PreserveDoubleNewlines: boolPtr(true)},
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if !cfg.Advanced() || !cfg.Conversion.PreserveDoubleNewlines {
					t.Errorf("conversion = %+v, want advanced with preserve", cfg.Conversion)
				}
			},
		},
		{
			name: "explicit mode wins over preserve",
			env:  envConfig{Mode: config.ModeBasic, PreserveDoubleNewlines: boolPtr(true)},
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if cfg.Advanced() {
					t.Error("mode should stay basic")
				}
				if err := cfg.Validate(); !errors.Is(err, config.ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
			},
		},
		{
			name: "false preserve keeps mode",
			env:  envConfig{PreserveDoubleNewlines: boolPtr(false)},
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if cfg.Advanced() {
					t.Error("mode should stay basic")
				}
			},
		},
		{
			name: "interactive and inspect",
			env:  envConfig{Interactive: boolPtr(true), Inspect: boolPtr(true)},
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if !cfg.Input.Interactive || !cfg.Conversion.Inspect {
					t.Errorf("flags not applied: %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			applyEnvConfig(&tt.env, cfg)
			tt.check(t, cfg)
		})
	}
}
