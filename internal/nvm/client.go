package nvm

import (
	"context"
	"strings"
)

// Command lines understood by nvm.
const (
	listCommand   = "list"
	systemCommand = "run --silent system --version;"
)

// NotAvailable is what `nvm version` prints for specifiers it cannot resolve.
const NotAvailable = "N/A"

// notAvailableStatus is the exit status `nvm version` pairs with NotAvailable.
const notAvailableStatus = 3

// Client issues the nvm queries needed for version resolution.
type Client struct {
	runner Runner
}

// NewClient creates a client backed by runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// List returns the raw `nvm list` output.
func (c *Client) List(ctx context.Context) (string, error) {
	out, err := c.run(ctx, listCommand)
	if err != nil {
		return "", err
	}
	return out.Stdout, nil
}

// Version asks nvm to resolve spec to a concrete version.
// The answer is NotAvailable when nvm cannot resolve it, including the
// status 3 exit nvm uses for patterns that match nothing installed.
func (c *Client) Version(ctx context.Context, spec string) (string, error) {
	out, err := c.runner.Run(ctx, VersionCommand(spec))
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(out.Stdout)
	if out.ExitCode == notAvailableStatus && answer == NotAvailable {
		return NotAvailable, nil
	}
	if out.ExitCode != 0 {
		return "", &ExitError{Code: out.ExitCode, Output: out.Combined()}
	}
	return answer, nil
}

// SystemVersion returns the version of the runtime installed outside nvm.
// Any failure is reported as ErrSystemUnavailable.
func (c *Client) SystemVersion(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, systemCommand)
	if err != nil || out.ExitCode != 0 {
		return "", ErrSystemUnavailable
	}
	return strings.TrimSpace(out.Stdout), nil
}

func (c *Client) run(ctx context.Context, command string) (Output, error) {
	out, err := c.runner.Run(ctx, command)
	if err != nil {
		return Output{}, err
	}
	if out.ExitCode != 0 {
		return Output{}, &ExitError{Code: out.ExitCode, Output: out.Combined()}
	}
	return out, nil
}

// VersionCommand builds the `version "<spec>"` command line.
func VersionCommand(spec string) string {
	return `version "` + quoteEscaper.Replace(spec) + `"`
}

// quoteEscaper escapes the characters that stay special inside double quotes.
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "`", "\\`")

// UseCommand returns the shell directive activating target.
func UseCommand(target string) string {
	return "nvm use " + target + " > /dev/null;"
}
