// Package scheduler executes task graphs built from leaves, parallel groups
// and series.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scheduler runs domain.Task graphs. It holds no per-run state, so one
// Scheduler may run several graphs at the same time.
type Scheduler struct {
	tracer ports.Tracer
}

// NewScheduler creates a new Scheduler reporting spans to tracer.
func NewScheduler(tracer ports.Tracer) *Scheduler {
	return &Scheduler{tracer: tracer}
}

// Run executes root and returns once every started node has settled.
// The returned error joins all failures; it is nil on success.
func (s *Scheduler) Run(ctx context.Context, root domain.Task) error {
	if root == nil {
		return nil
	}

	s.tracer.EmitPlan(ctx, LeafNames(root))
	return s.run(ctx, root)
}

func (s *Scheduler) run(ctx context.Context, t domain.Task) error {
	ctx, span := s.tracer.Start(ctx, t.TaskName())
	defer span.End()

	var err error
	switch node := t.(type) {
	case domain.Leaf:
		err = s.runLeaf(ctx, node)
	case domain.Parallel:
		span.SetAttribute("arco.children", len(node.Children))
		err = s.runParallel(ctx, node.Children)
	case domain.Series:
		span.SetAttribute("arco.children", len(node.Children))
		err = s.runSeries(ctx, node.Children)
	default:
		err = zerr.With(domain.ErrUnknownTask, "task", t.TaskName())
	}

	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (s *Scheduler) runLeaf(ctx context.Context, l domain.Leaf) (err error) {
	if l.Op == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(
				zerr.Wrap(fmt.Errorf("%w: %v", domain.ErrTaskPanicked, r), domain.ErrTaskFailed.Error()),
				"task", l.Name,
			)
		}
	}()

	if opErr := l.Op(ctx); opErr != nil {
		return zerr.With(zerr.Wrap(opErr, domain.ErrTaskFailed.Error()), "task", l.Name)
	}
	return nil
}

// runParallel starts every child and waits for all of them. A failing child
// does not cancel its siblings, so no derived context is used.
func (s *Scheduler) runParallel(ctx context.Context, children []domain.Task) error {
	errs := make([]error, len(children))

	var g errgroup.Group
	for i, child := range children {
		g.Go(func() error {
			errs[i] = s.run(ctx, child)
			return nil
		})
	}
	_ = g.Wait()

	return joinPreservingRecoverable(errs)
}

func (s *Scheduler) runSeries(ctx context.Context, children []domain.Task) error {
	var errs []error
	for _, child := range children {
		err := s.run(ctx, child)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		if !domain.IsRecoverable(err) {
			break
		}
	}
	return joinPreservingRecoverable(errs)
}

// joinPreservingRecoverable joins errs. The result stays recoverable only
// when every member is.
func joinPreservingRecoverable(errs []error) error {
	joined := errors.Join(errs...)
	if joined == nil {
		return nil
	}
	if domain.IsRecoverable(joined) {
		return domain.Recoverable(joined)
	}
	return joined
}

// LeafNames returns the leaf names of t in declaration order.
func LeafNames(t domain.Task) []string {
	var names []string
	var walk func(domain.Task)
	walk = func(t domain.Task) {
		switch node := t.(type) {
		case domain.Leaf:
			names = append(names, node.Name)
		case domain.Parallel:
			for _, c := range node.Children {
				walk(c)
			}
		case domain.Series:
			for _, c := range node.Children {
				walk(c)
			}
		}
	}
	walk(t)
	return names
}
