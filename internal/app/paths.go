package app

import "path/filepath"

// lookoutDir is the tool's state directory, created under the watch root.
// It is always excluded from traversal so journal writes cannot feed back
// into the watch as change events.
const lookoutDir = ".lookout"

// Paths holds the resolved filesystem paths for a watch root.
// All fields are pre-computed strings.
type Paths struct {
	StateDir   string // <root>/.lookout/
	DB         string // <root>/.lookout/lookout.db
	ConfigFile string // <root>/.lookout.yml
}

// NewPaths constructs all resolved paths from a watch root.
func NewPaths(root string) *Paths {
	state := filepath.Join(root, lookoutDir)
	return &Paths{
		StateDir:   state,
		DB:         filepath.Join(state, "lookout.db"),
		ConfigFile: filepath.Join(root, ".lookout.yml"),
	}
}
