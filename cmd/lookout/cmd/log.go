package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	jnl "github.com/corey/lookout/internal/adapters/bbolt"
	"github.com/corey/lookout/internal/app"
	"github.com/spf13/cobra"
)

var flagLimit int

var logCmd = &cobra.Command{
	Use:   "log [path]",
	Short: "Show recent change events",
	Long:  "Lists the most recent admitted changes recorded for a watch root, newest first.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "maximum events to show")
}

func runLog(cmd *cobra.Command, args []string) error {
	root := watchRoot(args)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	paths := app.NewPaths(root)

	if _, err := os.Stat(paths.DB); err != nil {
		fmt.Printf("👀 no history for %s\n", root)
		return nil
	}

	j, err := jnl.NewJournal(paths.DB)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	events, err := j.Recent(root, flagLimit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Printf("👀 no history for %s\n", root)
		return nil
	}

	fmt.Printf("%s👀 %d event(s)%s\n", colorBold, len(events), colorReset)
	for _, ev := range events {
		path := ev.Path
		if path == "" {
			path = fmt.Sprintf("%s(watch started)%s", colorGray, colorReset)
		}
		fmt.Printf("  %s%s%s  %s\n",
			colorGray, ev.Time.Format("2006-01-02 15:04:05"), colorReset, path)
	}
	return nil
}
