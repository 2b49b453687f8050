package watch

import "time"

// Gate debounces callback invocations. It only drops: a change consumed
// inside the window is gone for good, because the watermark has already
// advanced past it.
type Gate struct {
	delay time.Duration
}

// NewGate creates a gate with the given debounce window.
func NewGate(delay time.Duration) Gate {
	return Gate{delay: delay}
}

// Admit reports whether a candidate change may fire the callback, and
// records now as the last invocation when it may. The first Admit of a
// fresh session always succeeds: lastFire is zero, so the first detected
// change fires regardless of the window.
func (g Gate) Admit(s *Session, now time.Time) bool {
	if now.Sub(s.lastFire) < g.delay {
		return false
	}
	s.lastFire = now
	return true
}
