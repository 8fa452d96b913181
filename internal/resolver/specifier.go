package resolver

import (
	"context"

	"github.com/ivoronin/nvmmatch/internal/nvm"
	"github.com/ivoronin/nvmmatch/internal/version"
)

// Kind tells how a specifier is matched against installed versions.
type Kind int

const (
	KindDirect   Kind = iota // Specifier used verbatim as a semver expression
	KindResolved             // nvm resolved the specifier to a concrete version
	KindSystem               // Runtime installed outside nvm
)

// Target is a normalized specifier.
type Target struct {
	Kind    Kind
	Version string // Expression for the matcher; empty for KindSystem
}

// systemTarget selects the runtime installed outside nvm.
var systemTarget = Target{Kind: KindSystem}

// versionQuerier is the part of nvm.Client the specifier resolution needs.
type versionQuerier interface {
	Version(ctx context.Context, spec string) (string, error)
}

// resolveSpecifier normalizes spec, asking nvm to resolve aliases and partial versions.
// The literal "system" never reaches nvm.
func resolveSpecifier(ctx context.Context, q versionQuerier, spec string) (Target, error) {
	if spec == version.System {
		return systemTarget, nil
	}

	answer, err := q.Version(ctx, spec)
	if err != nil {
		return Target{}, err
	}
	return classify(spec, answer), nil
}

// classify turns nvm's answer for spec into a Target.
// Only an exact "system" answer selects the system runtime.
func classify(spec, answer string) Target {
	switch answer {
	case version.System:
		return systemTarget
	case nvm.NotAvailable, "":
		return Target{Kind: KindDirect, Version: spec}
	default:
		return Target{Kind: KindResolved, Version: answer}
	}
}
