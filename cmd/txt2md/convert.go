package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/config"
	"github.com/alnah/go-txt2md/internal/fileutil"
	"github.com/alnah/go-txt2md/internal/hints"
)

// ErrWritePreview indicates the HTML preview could not be written.
var ErrWritePreview = errors.New("failed to write preview file")

// previewPermissions is rw-r--r--: previews are meant to be opened in a browser.
const previewPermissions = 0o644

// ConversionError is a conversion failure whose status lines were already
// printed. runMain does not print it again.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string { return e.Err.Error() }

func (e *ConversionError) Unwrap() error { return e.Err }

// runMain runs the program and returns its exit code.
func runMain(ctx context.Context, env *Environment) int {
	err := run(ctx, env)
	if err != nil {
		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			fmt.Fprintln(env.Stderr, err)
		}
	}
	return exitCodeFor(err)
}

// run resolves settings, converts the input and writes optional extras.
func run(ctx context.Context, env *Environment) error {
	start := env.Now()

	warnUnknownEnvVars(env.Stderr)

	envCfg, err := loadEnvConfig()
	if err != nil {
		return err
	}

	cfg, source, err := resolveConfig(envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// Env wins over the config file
	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if envCfg.Verbose {
		if source == "" {
			source = "defaults"
		}
		fmt.Fprintf(env.Stderr, "Config: %s\n", source)
	}

	inputPath, outputPath := cfg.Input.Path, cfg.OutputPath()
	if cfg.Input.Interactive {
		inputPath, outputPath, err = promptPaths(env.Stdin, env.Stdout, inputPath, outputPath)
		if err != nil {
			return err
		}
	}
	if err := cfg.CheckPreviewTarget(outputPath); err != nil {
		return err
	}

	if envCfg.Verbose {
		fmt.Fprintf(env.Stderr, "Mode: %s, line breaks: %s\n", cfg.Conversion.Mode, policyFor(cfg))
	}

	result := convert(ctx, cfg, inputPath, outputPath)
	if !result.OK() {
		printFailure(env, result)
		return &ConversionError{Err: result.Err}
	}

	for _, line := range result.Status() {
		fmt.Fprintln(env.Stdout, line)
	}

	if cfg.Conversion.Inspect {
		reportFindings(env, result.Output)
	}

	if cfg.Output.Preview != "" {
		if err := writePreview(ctx, env, result.Output, cfg.Output.Preview); err != nil {
			return err
		}
		fmt.Fprintf(env.Stdout, "Preview file: %s\n", cfg.Output.Preview)
	}

	if envCfg.Verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	return nil
}

// resolveConfig loads the config named by TXT2MD_CONFIG, or txt2md.yaml
// from the standard locations when present. Returns the file used, or ""
// for defaults.
func resolveConfig(nameOrPath string) (*config.Config, string, error) {
	if nameOrPath != "" {
		cfg, err := config.LoadConfig(nameOrPath)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
				return nil, "", fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
			}
			return nil, "", fmt.Errorf("loading config: %w", err)
		}
		return cfg, nameOrPath, nil
	}

	cfg, path, err := config.Discover(config.DefaultName)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	return cfg, path, nil
}

// policyFor maps the configured mode to a line break policy.
func policyFor(cfg *config.Config) txt2md.LineBreakPolicy {
	if !cfg.Advanced() {
		return txt2md.SingleFeedOnly
	}
	return txt2md.PolicyFor(cfg.Conversion.PreserveDoubleNewlines)
}

// convert runs the basic or advanced file pipeline.
func convert(ctx context.Context, cfg *config.Config, inputPath, outputPath string) txt2md.Result {
	if cfg.Advanced() {
		return txt2md.ConvertFileAdvanced(ctx, inputPath, outputPath, cfg.Conversion.PreserveDoubleNewlines)
	}
	return txt2md.ConvertFile(ctx, inputPath, outputPath)
}

// printFailure writes the status lines of a failed result and a hint.
func printFailure(env *Environment, result txt2md.Result) {
	for _, line := range result.Status() {
		fmt.Fprintln(env.Stderr, line)
	}

	var hint string
	switch {
	case errors.Is(result.Err, txt2md.ErrInputNotFound):
		hint = hints.ForInputNotFound(result.InputPath)
	case errors.Is(result.Err, txt2md.ErrInvalidEncoding):
		hint = hints.ForInvalidEncoding()
	case errors.Is(result.Err, txt2md.ErrWriteOutput):
		hint = hints.ForOutputDirectory()
	}
	if hint != "" {
		fmt.Fprintln(env.Stderr, hint[1:])
	}
}

// reportFindings warns about Markdown constructs left in the output.
func reportFindings(env *Environment, output string) {
	findings := env.Inspector.Inspect(output)
	for _, f := range findings {
		fmt.Fprintf(env.Stderr, "warning: output contains %s at offset %d: %q\n", f.Kind, f.Offset, f.Snippet)
	}
	if hint := hints.ForFragmentFindings(len(findings)); hint != "" {
		fmt.Fprintln(env.Stderr, hint[1:])
	}
}

// writePreview renders output as HTML and writes it to path.
func writePreview(ctx context.Context, env *Environment, output, path string) error {
	html, err := env.Previewer.RenderPreview(ctx, output)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte(html), previewPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWritePreview, err, hints.ForOutputDirectory())
	}
	return nil
}
