package watch

import (
	"os"
	"time"

	"go.uber.org/zap"
)

// Detector compares file modification times against the session watermark.
type Detector struct {
	log *zap.Logger
}

// NewDetector creates a detector logging through log.
func NewDetector(log *zap.Logger) *Detector {
	return &Detector{log: log}
}

// Changed stats absPath and reports whether its modification time is past
// the session watermark, advancing the watermark when it is. A file that
// cannot be statted (vanished mid-pass, permissions) is a logged skip,
// never an error. The watermark only moves forward.
func (d *Detector) Changed(s *Session, absPath string) bool {
	info, err := os.Stat(absPath)
	if err != nil {
		d.log.Debug("skipping unreadable file",
			zap.String("path", absPath),
			zap.Error(err))
		return false
	}
	return d.Advance(s, info.ModTime())
}

// Advance applies a known modification time against the watermark.
// Split out from Changed so the watermark rule is testable without a
// filesystem.
func (d *Detector) Advance(s *Session, mod time.Time) bool {
	if !mod.After(s.watermark) {
		return false
	}
	s.watermark = mod
	return true
}
