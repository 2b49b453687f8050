package watch

import "strings"

// backupExt is the reserved backup-file extension, rejected regardless of
// configuration.
const backupExt = ".bak"

// Filter decides whether a file path is evaluated for changes at all.
// Directory exclusion is handled by the Traverser, not here.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter builds a filter from the configured type lists.
func NewFilter(cfg Config) *Filter {
	return &Filter{include: cfg.IncludeTypes, exclude: cfg.ExcludeTypes}
}

// Accept reports whether relPath should reach change detection.
// relPath is the slash-separated root-relative path of a file.
func (f *Filter) Accept(relPath string) bool {
	if strings.HasSuffix(relPath, backupExt) {
		return false
	}
	if len(f.exclude) > 0 {
		return !matchAny(relPath, f.exclude)
	}
	if len(f.include) > 0 {
		return matchAny(relPath, f.include)
	}
	return true
}

func matchAny(relPath string, patterns []string) bool {
	for _, p := range patterns {
		if matchType(relPath, p) {
			return true
		}
	}
	return false
}

// matchType tries both pattern forms: a bare extension ("log" matches
// "app.log") and an underscore-prefixed literal filename suffix
// ("_Makefile" matches "build/Makefile" and a root-level "Makefile").
// Either form matching succeeds.
func matchType(relPath, pattern string) bool {
	if strings.HasSuffix(relPath, "."+pattern) {
		return true
	}
	if rest, ok := strings.CutPrefix(pattern, "_"); ok {
		// Root-relative paths have no leading separator, so a file
		// directly under the root is the bare remainder.
		if relPath == rest || strings.HasSuffix(relPath, "/"+rest) {
			return true
		}
	}
	return false
}
