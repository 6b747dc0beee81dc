package domain

import (
	"fmt"
	"strings"
)

// ImportIndex is the ordered list of import directives consumed by the
// distributable compile step.
//
// Style-namespace entries always precede the rest. Within each group the
// insertion order is kept, which is glob discovery order.
type ImportIndex struct {
	namespace []string
	rest      []string
}

// Add appends an import of path. Entries flagged as namespaced go to the
// namespace group, all others to the trailing group.
func (x *ImportIndex) Add(path string, namespaced bool) {
	if namespaced {
		x.namespace = append(x.namespace, path)
		return
	}
	x.rest = append(x.rest, path)
}

// Len returns the number of entries.
func (x *ImportIndex) Len() int {
	return len(x.namespace) + len(x.rest)
}

// Paths returns the imported paths in index order.
func (x *ImportIndex) Paths() []string {
	paths := make([]string, 0, x.Len())
	paths = append(paths, x.namespace...)
	return append(paths, x.rest...)
}

// Directives returns one import directive per entry, in index order.
func (x *ImportIndex) Directives() []string {
	paths := x.Paths()
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = ImportDirective(p)
	}
	return out
}

// String renders the index as newline-joined directives.
func (x *ImportIndex) String() string {
	return strings.Join(x.Directives(), "\n")
}

// ImportDirective renders a stylesheet import of path.
func ImportDirective(path string) string {
	return fmt.Sprintf("@import %q;", path)
}
