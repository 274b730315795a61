package txt2md

import (
	"errors"
	"fmt"
	"time"
)

// Result is the outcome of a file conversion. A failed conversion is
// reported through Err, never by panicking.
type Result struct {
	InputPath  string
	OutputPath string
	Policy     LineBreakPolicy
	Output     string // converted text, empty on failure
	Duration   time.Duration
	Err        error
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Advanced reports whether the result comes from an advanced conversion.
func (r Result) Advanced() bool {
	return r.Policy != SingleFeedOnly
}

// Status returns human-readable lines describing the result.
func (r Result) Status() []string {
	if r.Err != nil {
		if errors.Is(r.Err, ErrInputNotFound) {
			return []string{fmt.Sprintf("Error: file not found '%s'", r.InputPath)}
		}
		return []string{fmt.Sprintf("Error: %v", r.Err)}
	}

	headline := "Conversion complete!"
	if r.Advanced() {
		headline = "Advanced conversion complete!"
	}
	return []string{
		headline,
		"Input file: " + r.InputPath,
		"Output file: " + r.OutputPath,
	}
}
