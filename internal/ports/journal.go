package ports

import "time"

// Event is one admitted change as recorded in the journal.
// Path is root-relative; it is empty for the watch-started signal.
type Event struct {
	Path string    `json:"path"`
	Time time.Time `json:"time"`
}

// Journal persists admitted change events to durable storage.
// The backing store (bbolt) is root-scoped: each watch root gets its own
// namespace. Writes are transactional — a crash mid-append must not
// corrupt previously committed events.
type Journal interface {
	// Append records one event under the given watch root.
	Append(root string, ev Event) error

	// Recent returns up to n events for a root, newest first.
	// Returns an empty slice if the root has no history.
	Recent(root string, n int) ([]Event, error)

	// Close releases the underlying store. Append and Recent must not be
	// called after Close.
	Close() error
}
