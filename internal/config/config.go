package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-txt2md/internal/fileutil"
	"github.com/alnah/go-txt2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// DefaultName is the config name searched when none is given.
const DefaultName = "txt2md"

// userConfigSubdir is the directory under os.UserConfigDir searched for configs.
const userConfigSubdir = "go-txt2md"

// MaxPathLength bounds every path field.
const MaxPathLength = 4096

// Conversion modes.
const (
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"
)

// Default paths.
const (
	DefaultInputPath          = "input.txt"
	DefaultOutputPath         = "output.txt"
	DefaultAdvancedOutputPath = "output_advanced.txt"
)

// Config holds all configuration for a conversion run.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Conversion ConversionConfig `yaml:"conversion"`
}

// InputConfig defines where the source text comes from.
type InputConfig struct {
	Path        string `yaml:"path"`        // Source file (default: input.txt)
	Interactive bool   `yaml:"interactive"` // Prompt for both paths on stdin
}

// OutputConfig defines where converted text goes.
type OutputConfig struct {
	Path    string `yaml:"path"`    // Empty = output.txt, or output_advanced.txt in advanced mode
	Preview string `yaml:"preview"` // Optional HTML preview file
}

// ConversionConfig defines how text is converted.
type ConversionConfig struct {
	Mode                   string `yaml:"mode"` // "basic" or "advanced"
	PreserveDoubleNewlines bool   `yaml:"preserveDoubleNewlines"`
	Inspect                bool   `yaml:"inspect"` // Report Markdown constructs left in the output
}

// Validate checks every section, then checks the preview against the
// resolved output path.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Input),
		validation.Field(&c.Output),
		validation.Field(&c.Conversion),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c.CheckPreviewTarget(c.OutputPath())
}

// CheckPreviewTarget returns ErrInvalidConfig when the preview would be
// written to outputPath. Paths are compared after filepath.Clean. Callers
// that pick the output path after Validate, such as the interactive prompt,
// must call it again with the final path.
func (c *Config) CheckPreviewTarget(outputPath string) error {
	if c.Output.Preview == "" {
		return nil
	}
	err := validation.Validate(filepath.Clean(c.Output.Preview),
		validation.NotIn(filepath.Clean(outputPath)).Error("must differ from output path "+outputPath),
	)
	if err != nil {
		return fmt.Errorf("%w: preview: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks input path length.
func (c InputConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Path, validation.Length(0, MaxPathLength)),
	)
}

// Validate checks output path lengths.
func (c OutputConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Path, validation.Length(0, MaxPathLength)),
		validation.Field(&c.Preview, validation.Length(0, MaxPathLength)),
	)
}

// Validate checks the mode and its options.
func (c ConversionConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Mode, validation.Required, validation.In(ModeBasic, ModeAdvanced)),
		validation.Field(&c.PreserveDoubleNewlines,
			validation.When(c.Mode != ModeAdvanced, validation.Empty.Error("requires advanced mode")),
		),
	)
}

// Advanced reports whether the advanced line break handling is selected.
func (c *Config) Advanced() bool {
	return c.Conversion.Mode == ModeAdvanced
}

// OutputPath returns the configured output path, or the default for the mode.
func (c *Config) OutputPath() string {
	if c.Output.Path != "" {
		return c.Output.Path
	}
	if c.Advanced() {
		return DefaultAdvancedOutputPath
	}
	return DefaultOutputPath
}

// DefaultConfig returns the configuration of a plain run: input.txt
// converted in basic mode.
func DefaultConfig() *Config {
	return &Config{
		Input:      InputConfig{Path: DefaultInputPath},
		Output:     OutputConfig{Path: ""},
		Conversion: ConversionConfig{Mode: ModeBasic},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	return loadFile(configPath)
}

// Discover loads the config named name from the standard locations.
// A missing config is not an error: the defaults are returned with an empty path.
func Discover(name string) (cfg *Config, path string, err error) {
	path, err = resolveConfigPath(name)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), "", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err = loadFile(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// <name>.yaml and <name>.yml in the current directory, then in
// <user config dir>/go-txt2md/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigSubdir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyConfigName
	}

	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
