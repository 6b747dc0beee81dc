package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gaecom/arco-cli/internal/adapters/watcher"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/gaecom/arco-cli/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// collect drains w's events into a channel.
func collect(w *watcher.Watcher) <-chan ports.WatchEvent {
	out := make(chan ports.WatchEvent, 100)
	go func() {
		defer close(out)
		for ev := range w.Events() {
			out <- ev
		}
	}()
	return out
}

// waitFor returns the first event for path, failing after a timeout.
func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed before %s", path)
			if ev.Path == path {
				return ev
			}
		case <-timeout:
			t.Fatalf("no event for %s", path)
		}
	}
}

func newWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func TestWatcher_ReportsChanges(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "components", "style", "index.css")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o750))
	require.NoError(t, os.WriteFile(existing, []byte("a"), 0o600))

	w := newWatcher(t)
	require.NoError(t, w.Start(context.Background(), []string{root}))
	events := collect(w)

	require.NoError(t, os.WriteFile(existing, []byte("b"), 0o600))
	assert.Equal(t, ports.OpWrite, waitFor(t, events, existing).Operation)

	require.NoError(t, os.Remove(existing))
	assert.Equal(t, ports.OpRemove, waitFor(t, events, existing).Operation)
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()

	w := newWatcher(t)
	require.NoError(t, w.Start(context.Background(), []string{root}))
	events := collect(w)

	dir := filepath.Join(root, "components", "card")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "components"), 0o750))
	waitFor(t, events, filepath.Join(root, "components"))
	require.NoError(t, os.Mkdir(dir, 0o750))
	waitFor(t, events, dir)

	file := filepath.Join(dir, "index.css")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	waitFor(t, events, file)
}

func TestWatcher_MissingRootIsSkipped(t *testing.T) {
	w := newWatcher(t)
	require.NoError(t, w.Start(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}))
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	w := newWatcher(t)
	require.NoError(t, w.Start(context.Background(), []string{t.TempDir()}))
	events := collect(w)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events not closed after Stop")
	}
}

func TestWatcher_ContextCancelEndsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := newWatcher(t)
	require.NoError(t, w.Start(ctx, []string{t.TempDir()}))
	events := collect(w)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events not closed after cancel")
	}
}
