package sync

import (
	"os"
	"path/filepath"

	"github.com/openlab-tools/labsync/internal/project"
)

// DefaultLocalPath returns the starting directory for the local path dialog
// as a prioritized lookup: an explicit path wins, then the project's current
// root, then empty (the dialog opens wherever the platform defaults to).
func DefaultLocalPath(explicit string, proj *project.Project) string {
	if explicit != "" {
		return explicit
	}
	if proj != nil && proj.LocalRoot != "" {
		return proj.LocalRoot
	}
	return ""
}

// ResolveLocalPath normalizes the user's selection against the original
// default. A selection naming a file falls back to its containing directory.
// Returns the effective path and whether it differs from orig; an empty
// selection means the dialog was cancelled and resolves to no change.
func ResolveLocalPath(chosen, orig string) (string, bool) {
	if chosen == "" {
		return "", false
	}
	if info, err := os.Stat(chosen); err == nil && !info.IsDir() {
		chosen = filepath.Dir(chosen)
	}
	return chosen, chosen != orig
}

// SetLocalPath applies a path selection to a project. The project's root is
// only mutated when a project is supplied and the resolved path actually
// changed; the returned path is empty for cancel and no-change outcomes, so
// callers can treat any non-empty return as "the root moved here".
func SetLocalPath(proj *project.Project, chosen, orig string) string {
	newPath, changed := ResolveLocalPath(chosen, orig)
	if !changed {
		return ""
	}
	if proj != nil {
		proj.SetLocalRoot(newPath)
	}
	return newPath
}
