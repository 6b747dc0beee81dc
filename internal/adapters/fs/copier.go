package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.FileCopier   = (*Copier)(nil)
	_ ports.OutputWriter = (*Copier)(nil)
)

// Copier copies and writes files into output trees.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Copy writes src to dst, creating dst's parent directories.
// When dst already holds identical content the write is skipped, so copying
// into a watched tree does not produce spurious change events.
func (c *Copier) Copy(src, dst string) error {
	data, err := os.ReadFile(src) //nolint:gosec // Path comes from resolved globs
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "src", src)
	}
	return WriteFile(dst, data)
}

// WriteFile implements ports.OutputWriter.
func (c *Copier) WriteFile(path string, data []byte) error {
	return WriteFile(path, data)
}

// WriteFile writes data to path unless path already holds the same content.
func WriteFile(path string, data []byte) error {
	if sameContent(path, data) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}

// sameContent reports whether the file at path has the size and xxhash digest of data.
func sameContent(path string, data []byte) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() != int64(len(data)) {
		return false
	}

	f, err := os.Open(path) //nolint:gosec // Path is an output path
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return false
	}
	return digest.Sum64() == xxhash.Sum64(data)
}
