package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Root       string      // site root: sources, config file and output are resolved against it
	IsTerminal func() bool // reports whether Stderr is an interactive terminal
}

// DefaultEnv returns the production environment rooted at the working directory.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Root:   ".",
		IsTerminal: func() bool {
			fd := os.Stderr.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}
