package workspace

import (
	"path/filepath"
	"strings"
)

// Directory names pruned from the walk before descending. Excluded
// subtrees are never visited, which keeps scan cost bounded on trees with
// huge dependency or build directories.
var ignoredDirectories = map[string]struct{}{
	".git":         {},
	".svn":         {},
	".hg":          {},
	".idea":        {},
	".vscode":      {},
	".cache":       {},
	"__pycache__":  {},
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"out":          {},
	"bin":          {},
	"obj":          {},
	"target":       {},
	".venv":        {},
	"venv":         {},
}

// File extensions skipped without reading content: lock files and
// compiled bytecode.
var ignoredExtensions = map[string]struct{}{
	".lock":  {},
	".pyc":   {},
	".pyo":   {},
	".class": {},
}

// File names skipped regardless of extension.
var ignoredFileNames = map[string]struct{}{
	"package-lock.json": {},
	"go.sum":            {},
}

// IsIgnoredDir reports whether a directory name is on the fixed denylist.
func IsIgnoredDir(name string) bool {
	_, ok := ignoredDirectories[strings.ToLower(name)]
	return ok
}

// IsIgnoredFile reports whether a file name is on the fixed denylist.
func IsIgnoredFile(name string) bool {
	lower := strings.ToLower(name)
	if _, ok := ignoredFileNames[lower]; ok {
		return true
	}
	_, ok := ignoredExtensions[filepath.Ext(lower)]
	return ok
}
