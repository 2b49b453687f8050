package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/corey/lookout/internal/app"
	"github.com/corey/lookout/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagInclude     []string
	flagExclude     []string
	flagExcludeDirs []string
	flagRecursive   bool
	flagDelay       time.Duration
	flagInterval    time.Duration
	flagExec        string
	flagVerbose     bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a directory tree for changes",
	Long: "Polls path (absolute; defaults to the current directory) and reports files whose\n" +
		"modification time advances. Flags override .lookout.yml at the watch root.",
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.StringSliceVar(&flagInclude, "include", nil, "only report these file types (extension or _suffix)")
	f.StringSliceVar(&flagExclude, "exclude", nil, "never report these file types (extension or _suffix)")
	f.StringSliceVar(&flagExcludeDirs, "exclude-dir", nil, "skip these root-relative directories entirely")
	f.BoolVar(&flagRecursive, "recursive", true, "descend into subdirectories")
	f.DurationVar(&flagDelay, "delay", 0, "debounce window between callbacks (default 2s)")
	f.DurationVar(&flagInterval, "interval", 0, "pause between traversal passes (default 500ms)")
	f.StringVar(&flagExec, "exec", "", "shell command to run on each change (path in $LOOKOUT_PATH)")
	f.BoolVar(&flagVerbose, "verbose", false, "log skipped files and debounce drops")
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := watchRoot(args)

	cfg, err := app.LoadConfig(root)
	if err != nil {
		return err
	}

	// Flags that were set override the config file.
	if cmd.Flags().Changed("include") {
		cfg.IncludeTypes = flagInclude
	}
	if cmd.Flags().Changed("exclude") {
		cfg.ExcludeTypes = flagExclude
	}
	if cmd.Flags().Changed("exclude-dir") {
		cfg.ExcludeDirs = flagExcludeDirs
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Recursive = flagRecursive
	}
	if cmd.Flags().Changed("delay") {
		cfg.Delay = flagDelay
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = flagInterval
	}

	logger := logging.New(flagVerbose)
	defer logger.Sync()

	a, err := app.New(app.Config{
		Root:   root,
		Watch:  cfg,
		Exec:   flagExec,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = a.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil // clean shutdown on signal
	}
	return err
}
