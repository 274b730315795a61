package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-txt2md/internal/pipeline"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and the fragment inspector and previewer.
type Environment struct {
	Now       func() time.Time
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Inspector pipeline.FragmentInspector
	Previewer pipeline.PreviewRenderer
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Inspector: pipeline.NewGoldmarkInspector(),
		Previewer: pipeline.NewGoldmarkPreview(),
	}
}
