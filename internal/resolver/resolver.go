// Package resolver resolves a version specifier to an installed runtime and the
// shell directive that activates it.
//
// Resolution runs in a fixed sequence:
//
//  1. The literal "system" goes straight to the system lookup.
//  2. Otherwise `nvm version` and `nvm list` are queried concurrently.
//  3. An answer of exactly "system" switches to the system lookup; anything else
//     is matched against the parsed listing.
//
// The resolver keeps no state between calls and performs no logging.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ivoronin/nvmmatch/internal/listing"
	"github.com/ivoronin/nvmmatch/internal/matcher"
	"github.com/ivoronin/nvmmatch/internal/nvm"
	"github.com/ivoronin/nvmmatch/internal/version"
)

// ErrNoMatch is returned when no installed version satisfies the specifier.
var ErrNoMatch = errors.New("no version matching")

// systemLabelPrefix prefixes the label of a system runtime match.
const systemLabelPrefix = version.System + ": "

// Result is a successful resolution.
type Result struct {
	Version string `json:"version"` // Matched token, or "system: <version>"
	Command string `json:"command"` // Shell directive activating the match
}

// Source is the set of nvm queries the resolver depends on.
// *nvm.Client implements it.
type Source interface {
	List(ctx context.Context) (string, error)
	Version(ctx context.Context, spec string) (string, error)
	SystemVersion(ctx context.Context) (string, error)
}

// Resolver matches specifiers against the versions installed through nvm.
type Resolver struct {
	source Source
}

// New creates a resolver backed by source.
func New(source Source) *Resolver {
	return &Resolver{source: source}
}

// Match resolves spec to an installed version.
//
// Errors are *nvm.ExitError when an nvm query fails, nvm.ErrSystemUnavailable when
// the system runtime is requested but missing, and ErrNoMatch (wrapped with the
// original spec) when nothing installed satisfies it.
func (r *Resolver) Match(ctx context.Context, spec string) (*Result, error) {
	if spec == version.System {
		return r.matchSystem(ctx)
	}

	var (
		target     Target
		candidates []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		target, err = resolveSpecifier(gctx, r.source, spec)
		return err
	})
	g.Go(func() error {
		raw, err := r.source.List(gctx)
		if err != nil {
			return err
		}
		candidates = listing.Parse(raw)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if target.Kind == KindSystem {
		return r.matchSystem(ctx)
	}

	use, ok := matcher.FindBest(candidates, target.Version)
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNoMatch, spec)
	}
	return &Result{Version: use, Command: nvm.UseCommand(use)}, nil
}

// matchSystem looks up the runtime installed outside nvm.
func (r *Resolver) matchSystem(ctx context.Context) (*Result, error) {
	v, err := r.source.SystemVersion(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{
		Version: systemLabelPrefix + v,
		Command: nvm.UseCommand(version.System),
	}, nil
}
