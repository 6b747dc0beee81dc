package fs

import (
	"path/filepath"
	"strings"

	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gobwas/glob"
	"go.trai.ch/zerr"
)

// Matcher matches slash-separated paths relative to a base directory against
// a list of glob patterns. Patterns prefixed with "!" exclude matches.
//
// "**" spans any number of directories, including none, so
// "components/**/style/index.css" matches "components/style/index.css".
type Matcher struct {
	base     string
	include  []compiled
	excludes []glob.Glob
}

type compiled struct {
	pattern string
	globs   []glob.Glob
}

// NewMatcher compiles patterns relative to base.
func NewMatcher(base string, patterns []string) (*Matcher, error) {
	m := &Matcher{base: filepath.Clean(base)}
	for _, p := range patterns {
		exclude := strings.HasPrefix(p, "!")
		p = normalizePattern(strings.TrimPrefix(p, "!"))

		var globs []glob.Glob
		for _, variant := range globstarVariants(p) {
			g, err := glob.Compile(variant, '/')
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidGlob.Error()), "pattern", p)
			}
			globs = append(globs, g)
		}

		if exclude {
			m.excludes = append(m.excludes, globs...)
			continue
		}
		m.include = append(m.include, compiled{pattern: p, globs: globs})
	}
	return m, nil
}

// Base returns the directory patterns are relative to.
func (m *Matcher) Base() string {
	return m.base
}

// Match reports whether the absolute path matches any include pattern and no exclude pattern.
func (m *Matcher) Match(path string) bool {
	rel, ok := m.rel(path)
	if !ok {
		return false
	}
	return m.matchIndex(rel) >= 0
}

// Roots returns the directories that must be walked to find every match:
// the static prefix of each include pattern, joined to the base.
func (m *Matcher) Roots() []string {
	seen := make(map[string]bool, len(m.include))
	roots := make([]string, 0, len(m.include))
	for _, c := range m.include {
		root := filepath.Join(m.base, filepath.FromSlash(StaticPrefix(c.pattern)))
		if seen[root] {
			continue
		}
		seen[root] = true
		roots = append(roots, root)
	}
	return roots
}

// matchIndex returns the index of the first include pattern matching rel, or -1.
func (m *Matcher) matchIndex(rel string) int {
	for _, g := range m.excludes {
		if g.Match(rel) {
			return -1
		}
	}
	for i, c := range m.include {
		for _, g := range c.globs {
			if g.Match(rel) {
				return i
			}
		}
	}
	return -1
}

func (m *Matcher) rel(path string) (string, bool) {
	rel, err := filepath.Rel(m.base, path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// StaticPrefix returns the leading directories of pattern that contain no
// glob metacharacters. It returns "." when the first segment is already a glob.
func StaticPrefix(pattern string) string {
	segments := strings.Split(normalizePattern(pattern), "/")
	static := make([]string, 0, len(segments))
	for _, s := range segments[:len(segments)-1] {
		if strings.ContainsAny(s, "*?[{") {
			break
		}
		static = append(static, s)
	}
	if len(static) == 0 {
		return "."
	}
	return strings.Join(static, "/")
}

func normalizePattern(p string) string {
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

// globstarVariants expands every "**/" segment into the variant that keeps it
// and the variant that drops it, so that "**" may also match zero directories.
func globstarVariants(p string) []string {
	idx := strings.Index(p, "**/")
	if idx < 0 || (idx > 0 && p[idx-1] != '/') {
		return []string{p}
	}
	head, tail := p[:idx], p[idx+len("**/"):]
	var out []string
	for _, rest := range globstarVariants(tail) {
		out = append(out, head+"**/"+rest, head+rest)
	}
	return out
}
