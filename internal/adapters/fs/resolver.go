package fs

import (
	"os"
	"strings"

	"github.com/gaecom/arco-cli/internal/core/ports"
)

var _ ports.GlobResolver = (*Resolver)(nil)

// Resolver implements ports.GlobResolver by walking the static prefix of each
// pattern and matching with gobwas/glob.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// Resolve returns the files under base matching patterns.
//
// Order is discovery order: include patterns are visited in the order given
// and each pattern's root is walked lexically. A file matched by several
// patterns is reported once, at its first discovery. "!" patterns apply to
// every include pattern.
func (r *Resolver) Resolve(base string, patterns []string) ([]string, error) {
	var includes, excludes []string
	for _, p := range patterns {
		if strings.HasPrefix(p, "!") {
			excludes = append(excludes, p)
			continue
		}
		includes = append(includes, p)
	}

	matchers := make([]*Matcher, 0, len(includes))
	for _, p := range includes {
		m, err := NewMatcher(base, append([]string{p}, excludes...))
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}

	seen := make(map[string]bool)
	var matches []string
	for _, m := range matchers {
		root := m.Roots()[0]
		if _, err := os.Stat(root); err != nil {
			continue
		}
		for path := range r.walker.WalkFiles(root) {
			if seen[path] || !m.Match(path) {
				continue
			}
			seen[path] = true
			matches = append(matches, path)
		}
	}
	return matches, nil
}
