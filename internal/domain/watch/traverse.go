package watch

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Traverser walks a watched tree, routing each file through
// Filter → Detector → Gate → callback. One Traverser serves one session;
// it is not safe for concurrent use.
type Traverser struct {
	cfg      Config
	filter   *Filter
	det      *Detector
	gate     Gate
	excluded map[string]bool
}

// NewTraverser builds the pipeline for cfg. cfg must already be validated
// and defaulted.
func NewTraverser(cfg Config, log *zap.Logger) *Traverser {
	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, d := range cfg.ExcludeDirs {
		excluded[path.Clean(filepath.ToSlash(d))] = true
	}
	return &Traverser{
		cfg:      cfg,
		filter:   NewFilter(cfg),
		det:      NewDetector(log),
		gate:     NewGate(cfg.Delay),
		excluded: excluded,
	}
}

// Start fires the watch-started signal: exactly one callback with an
// empty path, before any traversal. It bypasses the gate — the debounce
// clock starts with the first admitted file change, so a change landing
// right after startup is not swallowed by the signal.
func (t *Traverser) Start(s *Session, onChange func(relPath string)) {
	onChange("")
}

// Pass runs one complete traversal of the session root. Files whose mtime
// advanced past the watermark and that clear the gate invoke onChange
// synchronously with their root-relative path. A directory that cannot be
// read aborts the pass with an error; there is no partial continuation.
//
// Traversal uses an explicit stack of pending directories instead of
// recursion, so arbitrarily deep trees cannot overflow. Entries come back
// in directory-listing order (File.ReadDir does not sort, and "." / ".."
// are never returned), so event order within a pass is
// listing-order-dependent — not sorted by name or by mtime.
func (t *Traverser) Pass(s *Session, onChange func(relPath string)) error {
	// Relative paths of directories still to expand; "" is the root.
	stack := []string{""}

	for len(stack) > 0 {
		rel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		abs := filepath.Join(s.Root, filepath.FromSlash(rel))
		entries, err := readDirUnsorted(abs)
		if err != nil {
			return fmt.Errorf("read dir %s: %w", abs, err)
		}

		for _, e := range entries {
			childRel := e.Name()
			if rel != "" {
				childRel = rel + "/" + e.Name()
			}

			if e.IsDir() {
				if t.excluded[childRel] {
					continue // no descent, nothing beneath is visited
				}
				if !t.cfg.Recursive {
					continue // listed, never entered
				}
				stack = append(stack, childRel)
				continue
			}

			if !t.filter.Accept(childRel) {
				continue
			}
			if !t.det.Changed(s, filepath.Join(abs, e.Name())) {
				continue
			}
			if !t.gate.Admit(s, time.Now()) {
				continue // dropped; the watermark has already moved
			}
			onChange(childRel)
		}
	}
	return nil
}

// readDirUnsorted lists dir without the name sort os.ReadDir applies.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}
