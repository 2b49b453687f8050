// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "context"

// ChangeFunc receives the root-relative path of an admitted change.
// The empty string is the watch-started signal, delivered exactly once
// per Watch call before any traversal.
type ChangeFunc func(relPath string)

// Watcher monitors a directory tree by polling modification times and
// invokes onChange for each admitted change. Invocation is synchronous:
// the next traversal step does not begin until onChange returns. The
// watcher installs no recover — a panic inside onChange unwinds through
// Watch, and failure policy belongs to the caller.
type Watcher interface {
	// Watch blocks, polling root until ctx is cancelled. root must be an
	// absolute path; the empty string resolves to the working directory
	// at call time. Configuration problems are reported before the first
	// traversal. An unreadable directory aborts the run with an error.
	Watch(ctx context.Context, root string, onChange ChangeFunc) error
}
