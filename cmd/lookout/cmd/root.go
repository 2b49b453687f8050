package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

var rootCmd = &cobra.Command{
	Use:   "lookout",
	Short: "lookout — polling directory watcher",
	Long:  "Watches a directory tree by polling modification times and runs a command when files change.",
}

// watchRoot returns the directory to watch: the first positional argument
// if present, otherwise the current working directory. Relative arguments
// are rejected later, before watching starts.
func watchRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(configCmd)
}
