package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gaecom/arco-cli/internal/adapters/fs"      //nolint:depguard // Watch globs share the fs matcher
	"github.com/gaecom/arco-cli/internal/adapters/watcher" //nolint:depguard // Events are batched by the debouncer
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/gaecom/arco-cli/internal/engine/pipeline"
	"github.com/gaecom/arco-cli/internal/engine/scheduler"
)

// WatchOptions configures watch mode.
type WatchOptions struct {
	// ConfigPath is an explicit arco.yaml path. Empty means discovery.
	ConfigPath string
	// Debounce is the batching window. Zero means domain.DefaultDebounceWindow.
	Debounce time.Duration
}

// Watch runs the fast graph once, then re-runs it for every debounced batch
// of changes to the watched sources until ctx is cancelled.
//
// Rebuilds are never queued or cancelled: a batch arriving while another
// rebuild is in flight starts a second one. Rebuild errors are discarded.
// On shutdown Watch stops the subscription and waits for in-flight rebuilds.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	project, err := a.loadProject(opts.ConfigPath)
	if err != nil {
		return err
	}

	matchers, roots, err := watchMatchers(project.Style.Watch)
	if err != nil {
		return err
	}

	s := &watchSession{
		logger:    a.logger,
		scheduler: a.scheduler,
		pipeline:  a.pipeline(project),
		matchers:  matchers,
	}
	s.rebuild(ctx, nil)

	if err := a.watcher.Start(ctx, roots); err != nil {
		return errors.Join(domain.ErrWatchStartFailed, err)
	}
	a.logger.Info(fmt.Sprintf("watching %d director(ies) for changes", len(roots)))

	window := opts.Debounce
	if window <= 0 {
		window = domain.DefaultDebounceWindow
	}

	runCtx := context.WithoutCancel(ctx)
	debouncer := watcher.NewDebouncer(window, func(batch []ports.WatchEvent) {
		s.runs.Go(func() { s.rebuild(runCtx, batch) })
	})

	for ev := range a.watcher.Events() {
		rel, ok := s.match(ev.Path)
		if !ok {
			continue
		}
		a.logger.Info(fmt.Sprintf("[%s] %s", ev.Operation, rel))
		debouncer.Add(ev)
	}

	debouncer.Flush()
	debouncer.Stop()
	if err := a.watcher.Stop(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to stop watcher: %v", err))
	}
	s.runs.Wait()

	return nil
}

// watchSession is the state of one Watch call, shared by every rebuild it triggers.
type watchSession struct {
	logger    ports.Logger
	scheduler *scheduler.Scheduler
	pipeline  *pipeline.Pipeline
	matchers  []*fs.Matcher

	// inFlight counts running rebuilds. It is advisory and never delays a trigger.
	inFlight atomic.Int32
	runs     runGroup
}

// rebuild runs the fast graph once. Errors and panics are logged and discarded.
func (s *watchSession) rebuild(ctx context.Context, batch []ports.WatchEvent) {
	run := domain.NewBuildRun(domain.RunFast, true)
	overlapping := s.inFlight.Add(1) - 1
	defer s.inFlight.Add(-1)
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn(fmt.Sprintf("rebuild %s panicked: %v", run.ShortID(), r))
		}
	}()

	if batch != nil {
		msg := fmt.Sprintf("rebuild %s triggered by %d change(s)", run.ShortID(), len(batch))
		if overlapping > 0 {
			msg += fmt.Sprintf(", %d rebuild(s) still running", overlapping)
		}
		s.logger.Info(msg)
	}

	if err := s.scheduler.Run(ctx, s.pipeline.FastGraph()); err != nil {
		s.logger.Warn(fmt.Sprintf("rebuild %s failed: %v", run.ShortID(), err))
		return
	}
	s.logger.Info(fmt.Sprintf("rebuild %s finished in %v", run.ShortID(), elapsed(run)))
}

// match returns path relative to the base of the first matching watch glob.
func (s *watchSession) match(path string) (string, bool) {
	for _, m := range s.matchers {
		if !m.Match(path) {
			continue
		}
		rel, err := filepath.Rel(m.Base(), path)
		if err != nil {
			return "", false
		}
		return filepath.ToSlash(rel), true
	}
	return "", false
}

func watchMatchers(globs []domain.WatchGlob) ([]*fs.Matcher, []string, error) {
	matchers := make([]*fs.Matcher, 0, len(globs))
	var roots []string
	for _, g := range globs {
		m, err := fs.NewMatcher(g.Base, []string{g.Pattern})
		if err != nil {
			return nil, nil, err
		}
		matchers = append(matchers, m)
		roots = append(roots, m.Roots()...)
	}
	return matchers, roots, nil
}

// runGroup tracks in-flight rebuilds. Once Wait was called no new rebuild starts.
type runGroup struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

func (g *runGroup) Go(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.wg.Go(fn)
}

func (g *runGroup) Wait() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.wg.Wait()
}
