package ports

// GlobResolver enumerates files matching glob patterns.
//
//go:generate mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks
type GlobResolver interface {
	// Resolve returns the absolute paths of regular files under base matching
	// any of patterns. Paths are returned in discovery order, each once.
	// No match is not an error.
	Resolve(base string, patterns []string) ([]string, error)
}

// FileCopier copies a single file, creating parent directories as needed.
type FileCopier interface {
	// Copy writes the content of src to dst, replacing dst if it exists.
	Copy(src, dst string) error
}

// OutputWriter writes generated files into output trees.
type OutputWriter interface {
	// WriteFile writes data to path, creating parent directories as needed.
	WriteFile(path string, data []byte) error
}
