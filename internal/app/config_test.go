package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/corey/lookout/internal/domain/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a .lookout.yml under root.
func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".lookout.yml"), []byte(content), 0644))
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, watch.DefaultConfig(), cfg)
}

func TestLoadConfig_MergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
exclude_file_types: [log, tmp]
exclude_dirs: [vendor, src/gen]
recursive: false
delay: 4s
interval: 250ms
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"log", "tmp"}, cfg.ExcludeTypes)
	assert.Equal(t, []string{"vendor", "src/gen"}, cfg.ExcludeDirs)
	assert.False(t, cfg.Recursive)
	assert.Equal(t, 4*time.Second, cfg.Delay)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
}

func TestLoadConfig_AbsentRecursiveStaysTrue(t *testing.T) {
	// recursive defaults to true; only an explicit false turns it off.
	dir := t.TempDir()
	writeConfig(t, dir, `delay: 1s`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Recursive)
}

func TestLoadConfig_BadDelayIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `delay: fast`)

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse delay")
}

func TestLoadConfig_BadRecursiveIsFatal(t *testing.T) {
	// A non-boolean recursive is a configuration error, not a silent
	// default.
	dir := t.TempDir()
	writeConfig(t, dir, `recursive: sometimes`)

	_, err := LoadConfig(dir)
	require.Error(t, err)
}

func TestLoadConfig_BothTypeListsFatal(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
include_file_types: [go]
exclude_file_types: [log]
`)

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, watch.ErrBothTypeLists)
}

func TestLoadConfig_MalformedYAMLIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "\t{not yaml")

	_, err := LoadConfig(dir)
	require.Error(t, err)
}
