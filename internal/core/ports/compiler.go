// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/gaecom/arco-cli/internal/core/domain"
)

// CompileRequest describes one stylesheet to compile.
type CompileRequest struct {
	// Path is the absolute path of the source file. Relative imports are
	// resolved against its directory.
	Path string
	// Options are the project's compiler options.
	Options domain.CompileOptions
}

// Compiler turns a stylesheet source into its target form.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile reads and compiles the source at req.Path and returns the output.
	// Formatting of the output is preserved; minification is a separate step.
	Compile(ctx context.Context, req CompileRequest) ([]byte, error)
}

// Minifier reduces a compiled stylesheet to its smallest equivalent form.
type Minifier interface {
	// Minify returns the minified form of src. path is used for diagnostics only.
	Minify(ctx context.Context, path string, src []byte) ([]byte, error)
}

// StyleEntryHandler prepares per-component style entries before a full compile.
type StyleEntryHandler interface {
	// Prepare runs once per full build, before sources are compiled.
	Prepare(ctx context.Context, project *domain.Project) error
}
