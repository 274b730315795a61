package txt2md

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestResult_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   Result
		expected []string
	}{
		{
			name: "basic success",
			result: Result{
				InputPath:  "input.txt",
				OutputPath: "output.txt",
				Policy:     SingleFeedOnly,
			},
			expected: []string{
				"Conversion complete!",
				"Input file: input.txt",
				"Output file: output.txt",
			},
		},
		{
			name: "advanced success",
			result: Result{
				InputPath:  "input.txt",
				OutputPath: "output_advanced.txt",
				Policy:     PreserveParagraphs,
			},
			expected: []string{
				"Advanced conversion complete!",
				"Input file: input.txt",
				"Output file: output_advanced.txt",
			},
		},
		{
			name: "missing input names the path",
			result: Result{
				InputPath: "input.txt",
				Err:       fmt.Errorf("%w: input.txt", ErrInputNotFound),
			},
			expected: []string{"Error: file not found 'input.txt'"},
		},
		{
			name: "generic failure",
			result: Result{
				InputPath: "input.txt",
				Err:       errors.New("disk full"),
			},
			expected: []string{"Error: disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.result.Status()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Status() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestResult_OK(t *testing.T) {
	t.Parallel()

	if !(Result{}).OK() {
		t.Error("zero Result.OK() = false, want true")
	}
	if (Result{Err: ErrWriteOutput}).OK() {
		t.Error("Result with error OK() = true, want false")
	}
}

func TestResult_Advanced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		policy   LineBreakPolicy
		expected bool
	}{
		{SingleFeedOnly, false},
		{CollapseAll, true},
		{PreserveParagraphs, true},
	}

	for _, tt := range tests {
		if got := (Result{Policy: tt.policy}).Advanced(); got != tt.expected {
			t.Errorf("Result{Policy: %v}.Advanced() = %v, want %v", tt.policy, got, tt.expected)
		}
	}
}
