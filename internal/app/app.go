// Package app wires the watcher, journal, and exec hook together and
// provides lifecycle management for a watch run.
package app

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	jnl "github.com/corey/lookout/internal/adapters/bbolt"
	"github.com/corey/lookout/internal/adapters/poll"
	"github.com/corey/lookout/internal/domain/watch"
	"github.com/corey/lookout/internal/ports"
	"go.uber.org/zap"
)

// Config collects everything needed to build an App.
type Config struct {
	// Root is the directory to watch. Empty resolves to the current
	// working directory; a relative path is a configuration error.
	Root string

	// Watch is the validated watch configuration.
	Watch watch.Config

	// Exec, when set, is a shell command run after every admitted file
	// change (not the startup signal).
	Exec string

	Logger *zap.Logger
}

// App is the top-level container for one watch run.
type App struct {
	Root    string
	Paths   *Paths
	Watcher ports.Watcher
	Journal ports.Journal

	execCmd string
	log     *zap.Logger
}

// New resolves the root, validates configuration, and wires the watcher.
// All configuration errors surface here, before any traversal.
func New(cfg Config) (*App, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	root := cfg.Root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		root = cwd
	}
	if !filepath.IsAbs(root) {
		return nil, fmt.Errorf("%w: %q", watch.ErrRootNotAbsolute, root)
	}
	if err := cfg.Watch.Validate(); err != nil {
		return nil, err
	}

	// The state directory must never feed back into the watch.
	wc := cfg.Watch
	wc.ExcludeDirs = append(append([]string{}, wc.ExcludeDirs...), lookoutDir)

	return &App{
		Root:    root,
		Paths:   NewPaths(root),
		Watcher: poll.New(wc, log),
		execCmd: cfg.Exec,
		log:     log,
	}, nil
}

// Run opens the journal and blocks in the watch loop until ctx is
// cancelled or a directory read fails. Journal unavailability is
// non-fatal: watching proceeds without history.
func (a *App) Run(ctx context.Context) error {
	if err := os.MkdirAll(a.Paths.StateDir, 0755); err != nil {
		a.log.Warn("journal unavailable", zap.Error(err))
	} else if j, err := jnl.NewJournal(a.Paths.DB); err != nil {
		a.log.Warn("journal unavailable", zap.Error(err))
	} else {
		a.Journal = j
		defer j.Close()
	}

	return a.Watcher.Watch(ctx, a.Root, a.onChange)
}

// onChange handles one admitted event: log it, journal it, run the exec
// hook. Runs on the watch loop; the next traversal step waits for it.
func (a *App) onChange(relPath string) {
	if relPath == "" {
		a.log.Info("watch started", zap.String("root", a.Root))
	} else {
		a.log.Info("changed", zap.String("path", relPath))
	}

	if a.Journal != nil {
		ev := ports.Event{Path: relPath, Time: time.Now()}
		if err := a.Journal.Append(a.Root, ev); err != nil {
			a.log.Warn("journal append failed", zap.Error(err))
		}
	}

	if a.execCmd != "" && relPath != "" {
		a.runExec(relPath)
	}
}

// runExec runs the configured shell command with the changed path in
// LOOKOUT_PATH. A failing command is reported, not fatal.
func (a *App) runExec(relPath string) {
	cmd := exec.Command("sh", "-c", a.execCmd)
	cmd.Dir = a.Root
	cmd.Env = append(os.Environ(), "LOOKOUT_PATH="+relPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		a.log.Error("exec failed",
			zap.String("command", a.execCmd),
			zap.Error(err))
	}
}
