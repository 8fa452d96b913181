// Package testutil provides a scripted nvm runner for tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/ivoronin/nvmmatch/internal/nvm"
)

// FakeRunner answers nvm command lines from a fixed script.
// Unscripted commands fail with exit status 127, like a missing nvm function.
// It is safe for concurrent use.
type FakeRunner struct {
	Responses map[string]nvm.Output
	Err       error // Returned for every call when set

	mu    sync.Mutex
	calls []string
}

// NewFakeRunner returns a runner with no scripted commands.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]nvm.Output)}
}

// Stdout scripts command to succeed with the given stdout.
func (f *FakeRunner) Stdout(command, stdout string) *FakeRunner {
	f.Responses[command] = nvm.Output{Stdout: stdout}
	return f
}

// Fail scripts command to exit with code and stderr.
func (f *FakeRunner) Fail(command string, code int, stderr string) *FakeRunner {
	f.Responses[command] = nvm.Output{ExitCode: code, Stderr: stderr}
	return f
}

// Run implements nvm.Runner.
func (f *FakeRunner) Run(_ context.Context, command string) (nvm.Output, error) {
	f.mu.Lock()
	f.calls = append(f.calls, command)
	f.mu.Unlock()

	if f.Err != nil {
		return nvm.Output{}, f.Err
	}
	out, ok := f.Responses[command]
	if !ok {
		return nvm.Output{ExitCode: 127, Stderr: fmt.Sprintf("nvm: unscripted command %q", command)}, nil
	}
	return out, nil
}

// Calls returns the commands run so far, in call order.
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Called reports whether command was run at least once.
func (f *FakeRunner) Called(command string) bool {
	for _, c := range f.Calls() {
		if c == command {
			return true
		}
	}
	return false
}
