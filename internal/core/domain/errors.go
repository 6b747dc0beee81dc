package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no arco.yaml can be found from the working directory upwards.
	ErrConfigNotFound = zerr.New("could not find arco.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file parses but fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrEnvFileLoadFailed is returned when an existing .env file cannot be loaded.
	ErrEnvFileLoadFailed = zerr.New("failed to load .env file")

	// ErrInvalidGlob is returned when a glob pattern cannot be compiled.
	ErrInvalidGlob = zerr.New("invalid glob pattern")

	// ErrGlobWalkFailed is returned when walking a glob base directory fails.
	ErrGlobWalkFailed = zerr.New("failed to walk glob base directory")

	// ErrCopyFailed is returned when copying a file into an output tree fails.
	ErrCopyFailed = zerr.New("failed to copy file")

	// ErrCompileFailed is returned when the stylesheet compiler rejects a source.
	ErrCompileFailed = zerr.New("failed to compile stylesheet")

	// ErrMinifyFailed is returned when the minifier rejects its input.
	ErrMinifyFailed = zerr.New("failed to minify stylesheet")

	// ErrOutputWriteFailed is returned when a generated file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrIndexReadFailed is returned when an existing index file cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read import index")

	// ErrIndexPathFailed is returned when an entry cannot be expressed as an
	// import path relative to the dist directory.
	ErrIndexPathFailed = zerr.New("failed to resolve import path")

	// ErrStyleEntryFailed is returned when the style entry handler fails.
	ErrStyleEntryFailed = zerr.New("style entry handler failed")

	// ErrTaskFailed is returned when a task in a graph fails.
	ErrTaskFailed = zerr.New("task failed")

	// ErrTaskPanicked is returned when a leaf operation panics.
	ErrTaskPanicked = zerr.New("task panicked")

	// ErrUnknownTask is returned when the scheduler is given a task variant it does not know.
	ErrUnknownTask = zerr.New("unknown task variant")

	// ErrBuildFailed is returned by strict builds when any stage failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrWatchStartFailed is returned when the file watcher cannot subscribe.
	ErrWatchStartFailed = zerr.New("failed to start watcher")
)

// recoverableError marks an error that must not abort the rest of a series.
type recoverableError struct {
	err error
}

func (e *recoverableError) Error() string { return e.err.Error() }

func (e *recoverableError) Unwrap() error { return e.err }

// Recoverable marks err so that a Series keeps running the remaining children
// after it. A nil err stays nil.
func Recoverable(err error) error {
	if err == nil {
		return nil
	}
	return &recoverableError{err: err}
}

// IsRecoverable reports whether err was marked with Recoverable. For joined
// errors every member must be recoverable.
func IsRecoverable(err error) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *recoverableError:
		return true
	case interface{ Unwrap() []error }:
		errs := e.Unwrap()
		if len(errs) == 0 {
			return false
		}
		for _, member := range errs {
			if !IsRecoverable(member) {
				return false
			}
		}
		return true
	case interface{ Unwrap() error }:
		return IsRecoverable(e.Unwrap())
	default:
		return false
	}
}
