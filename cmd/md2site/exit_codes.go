package main

import (
	"errors"

	"github.com/alnah/go-md2site/internal/config"
)

// Exit codes for the md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // Any build failure
	ExitUsage   = 2 // Invalid flags, arguments or config
)

// ErrUnexpectedArgs indicates positional arguments were given.
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// exitCodeFor returns the appropriate exit code for an error.
// Build failures are not distinguished from each other.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidPath) ||
		errors.Is(err, config.ErrUnknownStyle) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
