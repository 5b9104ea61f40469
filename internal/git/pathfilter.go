package git

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// matchesAnyPath checks if any of the touched paths matches one of the
// glob patterns. An empty pattern list accepts everything.
func matchesAnyPath(patterns, paths []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range paths {
		// Normalize path separators
		p = strings.ReplaceAll(p, "\\", "/")
		for _, pattern := range patterns {
			matched, _ := doublestar.Match(pattern, p)
			if matched {
				return true
			}
		}
	}
	return false
}

// filterChain drops interior commits whose touched paths match no pattern.
// The first and last commits are the chain endpoints and always survive.
func filterChain(chain []Commit, touched map[string][]string, patterns []string) []Commit {
	if len(patterns) == 0 || len(chain) <= 2 {
		return chain
	}
	filtered := make([]Commit, 0, len(chain))
	for i, c := range chain {
		if i == 0 || i == len(chain)-1 || matchesAnyPath(patterns, touched[c.Hash]) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
