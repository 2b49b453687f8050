package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/corey/lookout/internal/app"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Show effective configuration",
	Long:  "Shows the watch root, config file, filters, and timing after merging .lookout.yml over defaults.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := watchRoot(args)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	cfg, err := app.LoadConfig(root)
	if err != nil {
		return err
	}
	paths := app.NewPaths(root)

	configStatus := fmt.Sprintf("%snot present (defaults)%s", colorYellow, colorReset)
	if _, err := os.Stat(paths.ConfigFile); err == nil {
		configStatus = fmt.Sprintf("%s✓ %s%s", colorGreen, paths.ConfigFile, colorReset)
	}

	fmt.Printf("%s👀 lookout config%s\n", colorBold, colorReset)
	fmt.Printf("  Root:         %s\n", root)
	fmt.Printf("  Config:       %s\n", configStatus)
	fmt.Printf("  DB:           %s\n", paths.DB)
	fmt.Printf("  Recursive:    %v\n", cfg.Recursive)
	fmt.Printf("  Delay:        %s\n", cfg.Delay)
	fmt.Printf("  Interval:     %s\n", cfg.Interval)
	fmt.Printf("  Include:      %s\n", orNone(cfg.IncludeTypes))
	fmt.Printf("  Exclude:      %s\n", orNone(cfg.ExcludeTypes))
	fmt.Printf("  Exclude dirs: %s\n", orNone(cfg.ExcludeDirs))

	return nil
}

func orNone(items []string) string {
	if len(items) == 0 {
		return fmt.Sprintf("%s(none)%s", colorGray, colorReset)
	}
	return strings.Join(items, ", ")
}
