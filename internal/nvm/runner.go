// Package nvm runs nvm commands and exposes the queries the resolver needs.
package nvm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Output is the captured result of one nvm invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Combined returns trimmed stdout followed by trimmed stderr.
func (o Output) Combined() string {
	return strings.TrimSpace(o.Stdout) + strings.TrimSpace(o.Stderr)
}

// Runner executes an nvm command line such as `list` or `version "0.10"`.
// A non-zero exit is reported through Output.ExitCode; the error is reserved
// for failures to start the process at all.
type Runner interface {
	Run(ctx context.Context, command string) (Output, error)
}

// ShellRunner runs nvm through a shell that sources $NVM_DIR/nvm.sh first.
type ShellRunner struct {
	Shell  string      // Shell binary, e.g. "/bin/bash"
	NVMDir string      // Overrides NVM_DIR in the child environment when set
	Logger *log.Logger // Debug logging of invocations; nil disables logging
}

// Run implements Runner.
func (r *ShellRunner) Run(ctx context.Context, command string) (Output, error) {
	script := `. "$NVM_DIR/nvm.sh"; nvm ` + command

	cmd := exec.CommandContext(ctx, r.Shell, "-c", script)
	if r.NVMDir != "" {
		cmd.Env = append(os.Environ(), "NVM_DIR="+r.NVMDir)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.debug("running nvm", "command", command, "shell", r.Shell)

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
	} else if err != nil {
		return Output{}, fmt.Errorf("starting %s: %w", r.Shell, err)
	}

	r.debug("nvm finished", "command", command, "status", out.ExitCode)
	return out, nil
}

func (r *ShellRunner) debug(msg string, keyvals ...interface{}) {
	if r.Logger != nil {
		r.Logger.Debug(msg, keyvals...)
	}
}
