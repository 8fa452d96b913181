package main

import (
	"errors"

	"github.com/ivoronin/nvmmatch/internal/nvm"
	"github.com/ivoronin/nvmmatch/internal/resolver"
)

// Process exit codes.
const (
	ExitSuccess    = 0 // Resolved, or informational command succeeded
	ExitNoMatch    = 1 // No installed version satisfies the specifier
	ExitInputError = 2 // Bad arguments, config or version file
	ExitNVMFailure = 3 // nvm exited non-zero or no system runtime exists
)

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	var exitErr *nvm.ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, resolver.ErrNoMatch):
		return ExitNoMatch
	case errors.As(err, &exitErr), errors.Is(err, nvm.ErrSystemUnavailable):
		return ExitNVMFailure
	default:
		return ExitInputError
	}
}
