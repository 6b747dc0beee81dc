// Package app implements the application layer for arco.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gaecom/arco-cli/internal/adapters/config" //nolint:depguard // Build mode comes from the environment
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/gaecom/arco-cli/internal/engine/pipeline"
	"github.com/gaecom/arco-cli/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	watcher      ports.Watcher
	logger       ports.Logger
	deps         pipeline.Deps
	workDir      string
}

// New creates a new App instance. deps.Logger defaults to log.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	watcher ports.Watcher,
	log ports.Logger,
	deps pipeline.Deps,
) *App {
	if deps.Logger == nil {
		deps.Logger = log
	}
	return &App{
		configLoader: loader,
		scheduler:    sched,
		watcher:      watcher,
		logger:       log,
		deps:         deps,
	}
}

// WithWorkDir sets the directory configuration discovery starts from.
// By default the process working directory is used.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// BuildOptions configures a one-shot build.
type BuildOptions struct {
	// ConfigPath is an explicit arco.yaml path. Empty means discovery.
	ConfigPath string
	// Dev skips minification of the distributable. ARCO_ENV=development has the same effect.
	Dev bool
	// Strict makes Build return ErrBuildFailed when any stage failed.
	Strict bool
}

// Build runs the full build graph once. Stage failures are reported through
// the logger and, unless opts.Strict is set, do not fail the build.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	project, err := a.loadProject(opts.ConfigPath)
	if err != nil {
		return err
	}

	devMode := opts.Dev || config.DevModeFromEnv()
	run := domain.NewBuildRun(domain.RunBuild, devMode)
	a.logger.Info(fmt.Sprintf("build %s started (dev=%t)", run.ShortID(), devMode))

	runErr := a.scheduler.Run(ctx, a.pipeline(project).FullGraph(devMode))
	if runErr != nil {
		a.logger.Error(zerr.With(zerr.Wrap(runErr, "build finished with errors"), "run", run.ShortID()))
		if opts.Strict {
			return errors.Join(domain.ErrBuildFailed, runErr)
		}
		return nil
	}

	a.logger.Info(fmt.Sprintf("build %s finished in %v", run.ShortID(), elapsed(run)))
	return nil
}

func (a *App) loadProject(configPath string) (*domain.Project, error) {
	cwd := a.workDir
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return nil, zerr.Wrap(err, "failed to get current working directory")
		}
	}

	project, err := a.configLoader.Load(cwd, configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if err := config.LoadEnvFile(project.Root); err != nil {
		return nil, err
	}

	return project, nil
}

func (a *App) pipeline(project *domain.Project) *pipeline.Pipeline {
	return pipeline.New(project, a.deps, pipeline.WithMinifyDisabled(config.MinifyDisabledFromEnv()))
}

func elapsed(run domain.BuildRun) time.Duration {
	return time.Since(run.StartedAt).Round(time.Millisecond)
}
