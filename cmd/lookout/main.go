// lookout is a polling directory watcher for build tools and hot reload.
// Single binary — walk the tree, compare mtimes, fire a command on change.
package main

import (
	"os"

	"github.com/corey/lookout/cmd/lookout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
