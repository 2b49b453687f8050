// Package watch holds the polling watch pipeline: path filtering, watermark
// change detection, debounce gating, and tree traversal. The pipeline is
// fully synchronous; all mutable state lives in a per-session struct, so
// watches of different roots never share anything.
package watch

import (
	"errors"
	"time"
)

// Defaults applied by WithDefaults.
const (
	DefaultDelay    = 2 * time.Second
	DefaultInterval = 500 * time.Millisecond
)

// Configuration errors, all raised before the first traversal.
var (
	ErrBothTypeLists    = errors.New("include_file_types and exclude_file_types are mutually exclusive")
	ErrRootNotAbsolute  = errors.New("watch root must be an absolute path")
	ErrNegativeDelay    = errors.New("delay must not be negative")
	ErrNegativeInterval = errors.New("interval must not be negative")
)

// Config is the read-only configuration for one watch session.
type Config struct {
	// IncludeTypes accepts only matching files. Mutually exclusive with
	// ExcludeTypes. A pattern is either a bare extension ("log" matches
	// "app.log") or an underscore-prefixed filename suffix ("_Makefile"
	// matches "build/Makefile").
	IncludeTypes []string

	// ExcludeTypes rejects matching files. Same pattern forms as
	// IncludeTypes.
	ExcludeTypes []string

	// ExcludeDirs skips whole subtrees. Entries are root-relative,
	// slash-separated directory paths ("vendor", "src/gen").
	ExcludeDirs []string

	// Recursive controls descent into subdirectories. When false, the
	// root's entries are still listed but no directory is entered.
	Recursive bool

	// Delay is the debounce window: a change detected less than Delay
	// after the previous callback is dropped, not queued.
	Delay time.Duration

	// Interval is the pause between traversal passes.
	Interval time.Duration
}

// DefaultConfig returns the configuration used when nothing is specified:
// recursive, 2s debounce, 500ms between passes, no filters.
func DefaultConfig() Config {
	return Config{
		Recursive: true,
		Delay:     DefaultDelay,
		Interval:  DefaultInterval,
	}
}

// Validate reports configuration errors. It must pass before a session is
// created; violations are fatal and never retried.
func (c Config) Validate() error {
	if len(c.IncludeTypes) > 0 && len(c.ExcludeTypes) > 0 {
		return ErrBothTypeLists
	}
	if c.Delay < 0 {
		return ErrNegativeDelay
	}
	if c.Interval < 0 {
		return ErrNegativeInterval
	}
	return nil
}

// WithDefaults fills zero-valued Delay and Interval.
func (c Config) WithDefaults() Config {
	if c.Delay == 0 {
		c.Delay = DefaultDelay
	}
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	return c
}
