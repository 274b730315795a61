package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-txt2md/internal/config"
)

// ErrInvalidEnv indicates an environment variable holds an unusable value.
var ErrInvalidEnv = errors.New("invalid environment variable")

// Recognized environment variables.
const (
	envPrefix                 = "TXT2MD_"
	envConfigPath             = "TXT2MD_CONFIG"
	envInput                  = "TXT2MD_INPUT"
	envOutput                 = "TXT2MD_OUTPUT"
	envMode                   = "TXT2MD_MODE"
	envPreserveDoubleNewlines = "TXT2MD_PRESERVE_DOUBLE_NEWLINES"
	envInteractive            = "TXT2MD_INTERACTIVE"
	envPreview                = "TXT2MD_PREVIEW"
	envInspect                = "TXT2MD_INSPECT"
	envVerbose                = "TXT2MD_VERBOSE"
)

// envConfig holds configuration from environment variables.
// The program takes no arguments: these variables and the config file
// are the only way to change a run. Nil booleans are unset.
type envConfig struct {
	ConfigPath string // TXT2MD_CONFIG: config name or path

	Input   string // TXT2MD_INPUT: source file
	Output  string // TXT2MD_OUTPUT: converted file
	Preview string // TXT2MD_PREVIEW: HTML preview file
	Mode    string // TXT2MD_MODE: basic, advanced

	PreserveDoubleNewlines *bool // TXT2MD_PRESERVE_DOUBLE_NEWLINES
	Interactive            *bool // TXT2MD_INTERACTIVE
	Inspect                *bool // TXT2MD_INSPECT
	Verbose                bool  // TXT2MD_VERBOSE
}

// knownEnvVars lists valid TXT2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigPath:             true,
	envInput:                  true,
	envOutput:                 true,
	envMode:                   true,
	envPreserveDoubleNewlines: true,
	envInteractive:            true,
	envPreview:                true,
	envInspect:                true,
	envVerbose:                true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns ErrInvalidEnv if a boolean variable cannot be parsed.
func loadEnvConfig() (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath: os.Getenv(envConfigPath),
		Input:      os.Getenv(envInput),
		Output:     os.Getenv(envOutput),
		Preview:    os.Getenv(envPreview),
		Mode:       strings.ToLower(strings.TrimSpace(os.Getenv(envMode))),
		Verbose:    envBool(envVerbose),
	}

	var err error
	if cfg.PreserveDoubleNewlines, err = lookupBool(envPreserveDoubleNewlines); err != nil {
		return nil, err
	}
	if cfg.Interactive, err = lookupBool(envInteractive); err != nil {
		return nil, err
	}
	if cfg.Inspect, err = lookupBool(envInspect); err != nil {
		return nil, err
	}

	return cfg, nil
}

// lookupBool parses a boolean variable. Unset or empty returns nil.
func lookupBool(name string) (*bool, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q (use 1/0 or true/false)", ErrInvalidEnv, name, raw)
	}
	return &v, nil
}

// envBool reports whether a boolean variable is set to a true value.
// Unparsable values count as false.
func envBool(name string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(name)))
	return err == nil && v
}

// warnUnknownEnvVars logs warnings for unrecognized TXT2MD_* variables.
// Helps catch typos like TXT2MD_INPTU instead of TXT2MD_INPUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file: env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input.Path = env.Input
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.Preview != "" {
		cfg.Output.Preview = env.Preview
	}
	if env.Mode != "" {
		cfg.Conversion.Mode = env.Mode
	}
	if env.PreserveDoubleNewlines != nil {
		cfg.Conversion.PreserveDoubleNewlines = *env.PreserveDoubleNewlines
		// Paragraph preservation only exists in advanced mode.
		if *env.PreserveDoubleNewlines && env.Mode == "" {
			cfg.Conversion.Mode = config.ModeAdvanced
		}
	}
	if env.Interactive != nil {
		cfg.Input.Interactive = *env.Interactive
	}
	if env.Inspect != nil {
		cfg.Conversion.Inspect = *env.Inspect
	}
}
