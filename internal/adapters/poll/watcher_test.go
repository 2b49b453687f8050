package poll

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/corey/lookout/internal/domain/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fastConfig returns a config tuned for tests: tight polling, tiny
// debounce window.
func fastConfig() watch.Config {
	cfg := watch.DefaultConfig()
	cfg.Delay = 10 * time.Millisecond
	cfg.Interval = 10 * time.Millisecond
	return cfg
}

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func TestWatch_RelativeRootRejected(t *testing.T) {
	// A non-absolute root is a configuration error, raised before any
	// traversal or callback.
	w := New(fastConfig(), zap.NewNop())

	err := w.Watch(context.Background(), "relative/path", func(string) {
		t.Fatal("callback must not fire for invalid configuration")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, watch.ErrRootNotAbsolute)
}

func TestWatch_BothTypeListsRejected(t *testing.T) {
	cfg := fastConfig()
	cfg.IncludeTypes = []string{"go"}
	cfg.ExcludeTypes = []string{"log"}
	w := New(cfg, zap.NewNop())

	err := w.Watch(context.Background(), t.TempDir(), func(string) {
		t.Fatal("callback must not fire for invalid configuration")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, watch.ErrBothTypeLists)
}

func TestWatch_StartupSignalThenChange(t *testing.T) {
	// The first callback of a session carries an empty path; a file
	// modified after watch start is reported by a later pass with its
	// root-relative path.
	dir := t.TempDir()
	w := New(fastConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, dir, func(relPath string) {
			changed <- relPath
		})
	}()

	first, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected the watch-started signal")
	assert.Equal(t, "", first)

	// Give the first pass time to set the watermark, then modify.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0644))

	path, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected callback for file change")
	assert.Equal(t, "b.txt", path)

	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatch_CancelStopsTheLoop(t *testing.T) {
	dir := t.TempDir()
	w := New(fastConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, dir, func(string) {})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatch_PreCancelledContextFiresNothing(t *testing.T) {
	// A context cancelled before Watch is called must not produce the
	// startup signal or any traversal.
	w := New(fastConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Watch(ctx, t.TempDir(), func(string) {
		t.Fatal("callback must not fire after cancellation")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatch_MissingRootAborts(t *testing.T) {
	// The first pass hits a directory read failure and the run ends with
	// an error — no retry, no partial continuation.
	w := New(fastConfig(), zap.NewNop())

	changed := make(chan string, 10)
	err := w.Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), func(relPath string) {
		changed <- relPath
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))

	// Only the startup signal made it out.
	assert.Equal(t, "", <-changed)
	assert.Empty(t, changed)
}

func TestWatch_ExcludedTypesNeverReported(t *testing.T) {
	dir := t.TempDir()
	cfg := fastConfig()
	cfg.ExcludeTypes = []string{"log"}
	w := New(cfg, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 10)
	go func() { _ = w.Watch(ctx, dir, func(p string) { changed <- p }) }()

	_, ok := waitForCallback(changed, 2*time.Second) // startup signal
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.log"), []byte("x"), 0644))

	_, ok = waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "excluded file type must not trigger the callback")
}
