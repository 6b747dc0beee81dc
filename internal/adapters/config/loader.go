// Package config provides the configuration loader for arco.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gaecom/arco-cli/internal/adapters/fs" //nolint:depguard // Glob validation shares the resolver's matcher
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path, or the nearest arco.yaml found by
// walking up from cwd when path is empty, and returns the resolved project.
func (l *Loader) Load(cwd, path string) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd, path)
	if err != nil {
		return nil, err
	}

	var file Arcofile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != supportedVersion {
		return nil, zerr.With(domain.ErrConfigInvalid, "version", file.Version)
	}

	project := l.buildProject(configPath, &file)
	if err := l.validate(project); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return project, nil
}

func (l *Loader) findConfiguration(cwd, path string) (string, error) {
	if path != "" {
		configPath := resolvePath(cwd, path)
		if _, err := os.Stat(configPath); err != nil {
			return "", zerr.With(domain.ErrConfigNotFound, "path", configPath)
		}
		return configPath, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildProject(configPath string, file *Arcofile) *domain.Project {
	root := resolveRoot(configPath, file.Root)
	s := file.Style

	styleBase := resolvePath(root, s.Base)

	namespace := domain.DefaultStyleNamespace
	if s.Namespace != nil {
		namespace = strings.Trim(filepath.ToSlash(*s.Namespace), "/")
	}

	outputExt := s.OutputExt
	if outputExt == "" {
		outputExt = domain.DefaultOutputExt
	}
	if !strings.HasPrefix(outputExt, ".") {
		outputExt = "." + outputExt
	}

	watch := make([]domain.WatchGlob, 0, len(s.Watch))
	for _, w := range s.Watch {
		base := styleBase
		if w.Base != "" {
			base = resolvePath(root, w.Base)
		}
		watch = append(watch, domain.WatchGlob{Pattern: w.Pattern, Base: base})
	}

	project := &domain.Project{
		Root: root,
		Style: domain.StyleConfig{
			Base:      styleBase,
			Entries:   s.Entries,
			Namespace: namespace,
			OutputExt: outputExt,
			Watch:     watch,
			Output: domain.StyleOutput{
				ESDir:  resolveOptionalPath(root, s.Output.ES),
				CJSDir: resolveOptionalPath(root, s.Output.CJS),
				Dist:   buildDist(root, s.Output.Dist),
			},
			Compiler: domain.CompileOptions{
				Target:   s.Compiler.Target,
				External: s.Compiler.External,
			},
		},
	}

	if a := file.Assets; a != nil {
		project.Assets = domain.AssetConfig{
			Base:    resolvePath(root, a.Base),
			Entries: a.Entries,
			Output:  resolveOptionalPath(root, a.Output),
		}
	} else {
		project.Assets.Base = root
	}

	return project
}

func buildDist(root string, dto *DistDTO) domain.DistOutput {
	if dto == nil || dto.Dir == "" {
		return domain.DistOutput{}
	}

	dist := domain.DistOutput{
		Dir:              resolvePath(root, dto.Dir),
		IndexFileName:    dto.Index,
		ArtifactFileName: dto.Artifact,
	}
	if dist.IndexFileName == "" {
		dist.IndexFileName = domain.DefaultIndexFileName
	}
	if dist.ArtifactFileName == "" {
		dist.ArtifactFileName = domain.DefaultArtifactFileName
	}
	return dist
}

func (l *Loader) validate(p *domain.Project) error {
	out := p.Style.Output
	if out.ESDir == "" && out.CJSDir == "" && out.Dist.Dir == "" {
		return zerr.With(domain.ErrConfigInvalid, "reason", "no style output configured")
	}

	if out.Dist.Dir != "" && out.ESDir == "" {
		l.Logger.Warn("style.output.dist is set without style.output.es; no import index will be built")
	}

	if len(p.Assets.Entries) > 0 && p.Assets.Output == "" {
		return zerr.With(domain.ErrConfigInvalid, "reason", "assets.entries requires assets.output")
	}

	if err := validateGlobs(p.Style.Base, p.Style.Entries); err != nil {
		return zerr.With(err, "section", "style.entries")
	}
	for _, w := range p.Style.Watch {
		if w.Pattern == "" {
			return zerr.With(domain.ErrConfigInvalid, "reason", "empty watch pattern")
		}
		if err := validateGlobs(w.Base, []string{w.Pattern}); err != nil {
			return zerr.With(err, "section", "style.watch")
		}
	}
	if err := validateGlobs(p.Assets.Base, p.Assets.Entries); err != nil {
		return zerr.With(err, "section", "assets.entries")
	}
	return nil
}

func validateGlobs(base string, patterns []string) error {
	if len(patterns) == 0 {
		return nil
	}
	_, err := fs.NewMatcher(base, patterns)
	return err
}

func resolveRoot(configPath, configuredRoot string) string {
	return resolvePath(filepath.Dir(configPath), configuredRoot)
}

// resolvePath returns path made absolute against base. An empty path is base.
func resolvePath(base, path string) string {
	if path == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// resolveOptionalPath is resolvePath except that an empty path stays empty.
func resolveOptionalPath(base, path string) string {
	if path == "" {
		return ""
	}
	return resolvePath(base, path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or passed explicitly by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
