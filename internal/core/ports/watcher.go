package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed away.
	OpRename
)

// String returns the event kind as shown in watch log lines.
func (op WatchOp) String() string {
	switch op {
	case OpCreate:
		return "add"
	case OpWrite:
		return "change"
	case OpRemove, OpRename:
		return "remove"
	default:
		return "unknown"
	}
}

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file or directory that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher defines the interface for watching file system changes.
type Watcher interface {
	// Start begins watching the given directories recursively. Existing files
	// produce no events; only changes after Start are reported.
	Start(ctx context.Context, roots []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events. It ends when the
	// watcher stops or the context passed to Start is cancelled.
	Events() iter.Seq[WatchEvent]
}
