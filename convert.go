package txt2md

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/alnah/go-txt2md/internal/fileutil"
)

// outputPermissions is rw-r--r--.
const outputPermissions = 0o644

// Convert escapes s and replaces its line terminators according to p.
func Convert(s string, p LineBreakPolicy) string {
	return NormalizeLineBreaks(Escape(s), p)
}

// ConvertFile converts inputPath to outputPath, replacing only "\n"
// terminators (SingleFeedOnly).
func ConvertFile(ctx context.Context, inputPath, outputPath string) Result {
	return ConvertFileWithPolicy(ctx, inputPath, outputPath, SingleFeedOnly)
}

// ConvertFileAdvanced converts inputPath to outputPath handling "\r\n", "\n"
// and "\r" terminators. With preserveDoubleNewlines, doubled terminators
// become two markers.
func ConvertFileAdvanced(ctx context.Context, inputPath, outputPath string, preserveDoubleNewlines bool) Result {
	return ConvertFileWithPolicy(ctx, inputPath, outputPath, PolicyFor(preserveDoubleNewlines))
}

// ConvertFileWithPolicy reads inputPath as UTF-8, converts it, and writes
// the result to outputPath, replacing any existing content.
//
// Failures are reported through Result.Err. When reading fails the output
// file is neither created nor modified.
func ConvertFileWithPolicy(ctx context.Context, inputPath, outputPath string, p LineBreakPolicy) Result {
	start := time.Now()
	result := Result{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Policy:     p,
	}

	output, err := convertFile(ctx, inputPath, outputPath, p)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}

	result.Output = output
	return result
}

func convertFile(ctx context.Context, inputPath, outputPath string, p LineBreakPolicy) (string, error) {
	if inputPath == "" {
		return "", fmt.Errorf("%w: input", ErrEmptyPath)
	}
	if outputPath == "" {
		return "", fmt.Errorf("%w: output", ErrEmptyPath)
	}
	if !p.Valid() {
		return "", fmt.Errorf("%w: %v", ErrInvalidPolicy, p)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := readText(inputPath)
	if err != nil {
		return "", err
	}

	output := Convert(content, p)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := fileutil.WriteFileAtomic(outputPath, []byte(output), outputPermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return output, nil
}

// readText reads the whole file at path and checks it is valid UTF-8.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is caller-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, fs.ErrNotExist)
		}
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	return string(data), nil
}
