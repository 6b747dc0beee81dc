// Package esbuild implements the stylesheet compiler and minifier ports with
// the esbuild Go API.
package esbuild

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Compiler = (*Compiler)(nil)
	_ ports.Minifier = (*Compiler)(nil)
)

// DefaultExternal are the url() targets left untouched when bundling.
var DefaultExternal = []string{
	"*.png", "*.jpg", "*.jpeg", "*.gif", "*.svg", "*.webp",
	"*.woff", "*.woff2", "*.ttf", "*.eot",
}

var engineTarget = regexp.MustCompile(`^([a-z]+)(\d[\d.]*)$`)

var engineNames = map[string]api.EngineName{
	"chrome":  api.EngineChrome,
	"edge":    api.EngineEdge,
	"firefox": api.EngineFirefox,
	"ie":      api.EngineIE,
	"ios":     api.EngineIOS,
	"opera":   api.EngineOpera,
	"safari":  api.EngineSafari,
}

// Compiler bundles a stylesheet and its relative imports into one CSS file.
type Compiler struct{}

// New creates a new Compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile bundles the stylesheet at req.Path.
func (c *Compiler) Compile(ctx context.Context, req ports.CompileRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	engines, err := parseEngines(req.Options.Target)
	if err != nil {
		return nil, err
	}

	external := req.Options.External
	if len(external) == 0 {
		external = DefaultExternal
	}

	result := api.Build(api.BuildOptions{
		EntryPoints: []string{req.Path},
		Bundle:      true,
		Write:       false,
		LogLevel:    api.LogLevelSilent,
		External:    external,
		Engines:     engines,
		Loader:      map[string]api.Loader{".css": api.LoaderCSS},
	})
	if len(result.Errors) > 0 {
		return nil, zerr.With(messagesError(result.Errors), "path", req.Path)
	}

	for _, f := range result.OutputFiles {
		if strings.HasSuffix(f.Path, ".css") || len(result.OutputFiles) == 1 {
			return f.Contents, nil
		}
	}
	return nil, zerr.With(domain.ErrCompileFailed, "path", req.Path)
}

// Minify returns src with whitespace removed and syntax shortened.
func (c *Compiler) Minify(ctx context.Context, path string, src []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader:           api.LoaderCSS,
		Sourcefile:       path,
		LogLevel:         api.LogLevelSilent,
		MinifyWhitespace: true,
		MinifySyntax:     true,
	})
	if len(result.Errors) > 0 {
		return nil, zerr.With(messagesError(result.Errors), "path", path)
	}
	return result.Code, nil
}

// parseEngines turns targets such as "chrome80" or "safari13.1" into engines.
func parseEngines(targets []string) ([]api.Engine, error) {
	engines := make([]api.Engine, 0, len(targets))
	for _, t := range targets {
		m := engineTarget.FindStringSubmatch(strings.ToLower(strings.TrimSpace(t)))
		if m == nil {
			return nil, zerr.With(domain.ErrConfigInvalid, "target", t)
		}
		name, ok := engineNames[m[1]]
		if !ok {
			return nil, zerr.With(domain.ErrConfigInvalid, "target", t)
		}
		engines = append(engines, api.Engine{Name: name, Version: m[2]})
	}
	return engines, nil
}

func messagesError(msgs []api.Message) error {
	formatted := api.FormatMessages(msgs, api.FormatMessagesOptions{Kind: api.ErrorMessage})
	errs := make([]error, 0, len(formatted))
	for _, f := range formatted {
		errs = append(errs, errors.New(strings.TrimSpace(f)))
	}
	return zerr.Wrap(errors.Join(errs...), "esbuild reported errors")
}
