package watch

import "time"

// Session is the mutable state of one watch run: the root being watched,
// the modification-time watermark, and the time of the last callback.
// The watermark is a single value shared across all files in the session:
// once any file's mtime exceeds it, later files in the same pass are
// compared against the newer value. A session belongs to exactly one
// watch; concurrent watches each own their own Session.
type Session struct {
	Root string

	watermark time.Time
	lastFire  time.Time
}

// NewSession creates session state for a watch of root starting at start.
// Files modified before start are considered already seen.
func NewSession(root string, start time.Time) *Session {
	return &Session{Root: root, watermark: start}
}

// Watermark returns the latest modification time seen so far.
func (s *Session) Watermark() time.Time {
	return s.watermark
}
