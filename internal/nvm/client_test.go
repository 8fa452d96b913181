package nvm_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/ivoronin/nvmmatch/internal/nvm"
	"github.com/ivoronin/nvmmatch/internal/testutil"
)

func TestClientList(t *testing.T) {
	runner := testutil.NewFakeRunner().Stdout("list", "  v0.10.26\n  v0.12.0\n")
	client := nvm.NewClient(runner)

	got, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "  v0.10.26\n  v0.12.0\n" {
		t.Errorf("List() = %q, want raw stdout", got)
	}
}

func TestClientListFailure(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Responses["list"] = nvm.Output{ExitCode: 3, Stdout: " partial \n", Stderr: " nvm: broken \n"}
	client := nvm.NewClient(runner)

	_, err := client.List(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var exitErr *nvm.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v is not *nvm.ExitError", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("Code = %d, want 3", exitErr.Code)
	}
	if want := "nvm exited with status: 3\npartialnvm: broken"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !regexp.MustCompile(`nvm exited with status: \d+`).MatchString(err.Error()) {
		t.Errorf("Error() = %q does not match status template", err.Error())
	}
}

func TestClientRunnerError(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Err = errors.New("exec: no such file")
	client := nvm.NewClient(runner)

	if _, err := client.List(context.Background()); !errors.Is(err, runner.Err) {
		t.Errorf("List() error = %v, want %v", err, runner.Err)
	}
}

func TestClientVersion(t *testing.T) {
	tests := []struct {
		name   string
		spec   string
		stdout string
		want   string
	}{
		{"alias", "lts/boron", "v6.12.0\n", "v6.12.0"},
		{"not available", "0.9", "N/A\n", nvm.NotAvailable},
		{"system", "system", "system\n", "system"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewFakeRunner().Stdout(nvm.VersionCommand(tt.spec), tt.stdout)
			client := nvm.NewClient(runner)

			got, err := client.Version(context.Background(), tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Version(%q) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}

func TestClientVersionNotAvailableStatus(t *testing.T) {
	tests := []struct {
		name    string
		out     nvm.Output
		want    string
		wantErr bool
	}{
		{"N/A with status 3", nvm.Output{ExitCode: 3, Stdout: "N/A\n"}, nvm.NotAvailable, false},
		{"other output with status 3", nvm.Output{ExitCode: 3, Stdout: "v0.10.28\n"}, "", true},
		{"N/A with other status", nvm.Output{ExitCode: 1, Stdout: "N/A\n"}, "", true},
		{"status 3 without output", nvm.Output{ExitCode: 3, Stderr: "nvm: broken"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewFakeRunner()
			runner.Responses[nvm.VersionCommand(">=0.10 <0.10.29")] = tt.out

			got, err := nvm.NewClient(runner).Version(context.Background(), ">=0.10 <0.10.29")
			if tt.wantErr {
				var exitErr *nvm.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("Version() error = %v, want *nvm.ExitError", err)
				}
				if exitErr.Code != tt.out.ExitCode {
					t.Errorf("Code = %d, want %d", exitErr.Code, tt.out.ExitCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Version() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientSystemVersion(t *testing.T) {
	t.Run("installed", func(t *testing.T) {
		runner := testutil.NewFakeRunner().Stdout("run --silent system --version;", "v8.9.4\n")
		got, err := nvm.NewClient(runner).SystemVersion(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "v8.9.4" {
			t.Errorf("SystemVersion() = %q, want v8.9.4", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		runner := testutil.NewFakeRunner().Fail("run --silent system --version;", 1, "N/A: version \"system\" is not yet installed")
		_, err := nvm.NewClient(runner).SystemVersion(context.Background())
		if !errors.Is(err, nvm.ErrSystemUnavailable) {
			t.Errorf("SystemVersion() error = %v, want ErrSystemUnavailable", err)
		}
		if err.Error() != "Could not find system version of node." {
			t.Errorf("Error() = %q", err.Error())
		}
	})
}

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"0.10", `version "0.10"`},
		{">=0.10 <0.10.29", `version ">=0.10 <0.10.29"`},
		{"lts/*", `version "lts/*"`},
		{`a"b`, `version "a\"b"`},
		{"$(rm -rf ~)", `version "\$(rm -rf ~)"`},
		{"`id`", "version \"\\`id\\`\""},
		{`back\slash`, `version "back\\slash"`},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if got := nvm.VersionCommand(tt.spec); got != tt.want {
				t.Errorf("VersionCommand(%q) = %s, want %s", tt.spec, got, tt.want)
			}
		})
	}
}

func TestUseCommand(t *testing.T) {
	if got := nvm.UseCommand("v0.10.28"); got != "nvm use v0.10.28 > /dev/null;" {
		t.Errorf("UseCommand() = %q", got)
	}
	if got := nvm.UseCommand("system"); got != "nvm use system > /dev/null;" {
		t.Errorf("UseCommand() = %q", got)
	}
}
