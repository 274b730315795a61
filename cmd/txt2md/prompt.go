package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrPromptAborted indicates stdin closed before both paths were entered.
var ErrPromptAborted = errors.New("input ended before paths were entered")

// Prompts shown in interactive mode.
const (
	promptInput  = "Enter source file path: "
	promptOutput = "Enter output file path: "
)

// promptPaths asks for the source and output paths on in, one line each.
// Surrounding whitespace is trimmed. An empty answer keeps the given default.
func promptPaths(in io.Reader, out io.Writer, defaultInput, defaultOutput string) (inputPath, outputPath string, err error) {
	scanner := bufio.NewScanner(in)

	inputPath, err = promptLine(scanner, out, promptInput, defaultInput)
	if err != nil {
		return "", "", err
	}
	outputPath, err = promptLine(scanner, out, promptOutput, defaultOutput)
	if err != nil {
		return "", "", err
	}
	return inputPath, outputPath, nil
}

func promptLine(scanner *bufio.Scanner, out io.Writer, prompt, fallback string) (string, error) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		fmt.Fprintln(out)
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrPromptAborted, err)
		}
		return "", ErrPromptAborted
	}

	answer := strings.TrimSpace(scanner.Text())
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}
