// Package matcher selects the installed version that best satisfies a target.
package matcher

import (
	"github.com/Masterminds/semver/v3"

	"github.com/ivoronin/nvmmatch/internal/version"
)

// FindBest returns the candidate with the greatest version that satisfies target.
//
// Candidate and target are split into distribution name and number first; a candidate
// is eligible only when its name equals the target's (both empty counts as equal) and
// its number is a full version satisfying the target's semver range or exact version.
// Partial candidates such as "0.10" are never eligible. Ties keep the earliest
// candidate. The second result is false when nothing is eligible.
func FindBest(candidates []string, target string) (string, bool) {
	want := version.Split(target)

	var best string
	var bestVersion *semver.Version

	for _, c := range candidates {
		tok := version.Split(c)
		if tok.Name != want.Name {
			continue
		}
		v, ok := version.Satisfies(tok.Number, want.Number)
		if !ok {
			continue
		}
		if bestVersion == nil || v.GreaterThan(bestVersion) {
			best, bestVersion = c, v
		}
	}

	return best, bestVersion != nil
}
