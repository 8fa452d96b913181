package nvm

import (
	"errors"
	"fmt"
)

// ErrSystemUnavailable is returned when no runtime exists outside nvm.
//
//nolint:staticcheck // ST1005: message is shown to users verbatim
var ErrSystemUnavailable = errors.New("Could not find system version of node.")

// ExitError reports an nvm command that exited with a non-zero status.
type ExitError struct {
	Code   int
	Output string // Trimmed stdout followed by trimmed stderr
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("nvm exited with status: %d\n%s", e.Code, e.Output)
}
