// Package poll implements the ports.Watcher interface by repeatedly
// traversing the watched tree and comparing modification times against a
// session watermark. No OS-level notification mechanism is involved; a
// pass begins after the previous one plus the configured interval, so
// detection latency is bounded by interval plus tree size.
package poll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/corey/lookout/internal/domain/watch"
	"github.com/corey/lookout/internal/ports"
	"go.uber.org/zap"
)

// Watcher implements ports.Watcher by polling.
type Watcher struct {
	cfg watch.Config
	log *zap.Logger
}

// New creates a polling watcher. Configuration errors surface from Watch,
// before any traversal.
func New(cfg watch.Config, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{cfg: cfg, log: log}
}

// Watch blocks, polling root until ctx is cancelled. The callback fires
// once immediately with an empty path (the watch-started signal), then
// with the root-relative path of each admitted change. An unreadable
// directory aborts the run.
func (w *Watcher) Watch(ctx context.Context, root string, onChange ports.ChangeFunc) error {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		root = cwd
	}
	if !filepath.IsAbs(root) {
		return fmt.Errorf("%w: %q", watch.ErrRootNotAbsolute, root)
	}
	if err := w.cfg.Validate(); err != nil {
		return err
	}
	cfg := w.cfg.WithDefaults()

	s := watch.NewSession(root, time.Now())
	tr := watch.NewTraverser(cfg, w.log)

	w.log.Info("watching",
		zap.String("root", root),
		zap.Duration("delay", cfg.Delay),
		zap.Duration("interval", cfg.Interval),
		zap.Bool("recursive", cfg.Recursive))

	if err := ctx.Err(); err != nil {
		return err // cancelled before the startup signal
	}
	tr.Start(s, onChange)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := tr.Pass(s, onChange); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.Interval):
		}
	}
}
