// Package linear provides a synchronous, line-oriented progress renderer.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/gaecom/arco-cli/internal/ui/output"
	"github.com/gaecom/arco-cli/internal/ui/style"
	"github.com/muesli/termenv"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by printing one line per task event.
// Nested tasks are indented below their parent.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu      sync.Mutex
	tasks   map[string]*taskState // spanID -> task state
	stopped bool
}

type taskState struct {
	name      string
	depth     int
	startTime time.Time
}

// NewRenderer creates a Renderer writing to w, or stderr when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		w:      w,
		output: output.New(w),
		tasks:  make(map[string]*taskState),
	}
}

// Start is a no-op: the renderer prints synchronously.
func (r *Renderer) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = false
	return nil
}

// Stop drops unfinished tasks and ignores later events until the next Start.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.tasks)
	r.stopped = true
	return nil
}

// OnPlanEmit prints the leaf tasks a run is about to execute.
func (r *Renderer) OnPlanEmit(tasks []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}

	plan := r.output.String(
		fmt.Sprintf("%s Planning %d task(s): %s", style.Dot, len(tasks), strings.Join(tasks, ", ")),
	).Foreground(r.color(style.Iris))
	_, _ = fmt.Fprintln(r.w, plan.String())
}

// OnTaskStart prints a task start line.
func (r *Renderer) OnTaskStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}

	depth := 0
	if parent, ok := r.tasks[parentID]; ok {
		depth = parent.depth + 1
	}

	r.tasks[spanID] = &taskState{
		name:      name,
		depth:     depth,
		startTime: startTime,
	}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s%s Starting...\n", indent(depth), prefix)
}

// OnTaskComplete prints the outcome and duration of a started task.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	delete(r.tasks, spanID)

	duration := endTime.Sub(task.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("%s[%s]", indent(task.depth), task.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(r.color(style.Red)).String()
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}

	symbol := r.output.String(style.Check).Foreground(r.color(style.Green)).String()
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v\n", prefix, symbol, duration)
}

func (r *Renderer) color(c lipgloss.Color) termenv.Color {
	return termenv.RGBColor(string(c))
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
