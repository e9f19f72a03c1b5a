// Package project models a locally-cloned project linked to a remote on the
// hub. The project owns its local root path; change detection, staging and
// committing are delegated to the git service.
package project

import (
	"context"

	"github.com/openlab-tools/labsync/internal/config"
	"github.com/openlab-tools/labsync/internal/git"
	"github.com/openlab-tools/labsync/internal/logger"
)

// Project is a local working copy tracked on the hub.
type Project struct {
	ID        string
	Name      string
	RemoteURL string

	// LocalRoot is the root of the synced working copy. Mutable: the local
	// path selector may re-home a project.
	LocalRoot string

	git *git.Service
}

// New builds a Project from its config record.
func New(rec config.Project, gitSvc *git.Service) *Project {
	return &Project{
		ID:        rec.ID,
		Name:      rec.Name,
		RemoteURL: rec.RemoteURL,
		LocalRoot: rec.LocalRoot,
		git:       gitSvc,
	}
}

// GetChanges queries the pending changes of the working copy, returning both
// the categorized change set and the flat file list.
func (p *Project) GetChanges(ctx context.Context) (git.ChangeSet, []string, error) {
	cs, err := p.git.Changes(ctx, p.LocalRoot)
	if err != nil {
		return git.ChangeSet{}, nil, err
	}
	return cs, cs.Files(), nil
}

// StageFiles stages the given files in the working copy.
func (p *Project) StageFiles(ctx context.Context, files []string) error {
	return p.git.StageFiles(ctx, p.LocalRoot, files)
}

// Commit commits the staged files with the given message.
func (p *Project) Commit(ctx context.Context, message string) error {
	return p.git.Commit(ctx, p.LocalRoot, message)
}

// SetLocalRoot re-homes the project to a new local directory.
func (p *Project) SetLocalRoot(path string) {
	logger.Info("Project: %s local root %s -> %s", p.Name, p.LocalRoot, path)
	p.LocalRoot = path
}

// HasRemote reports whether the working copy has an origin remote.
func (p *Project) HasRemote(ctx context.Context) bool {
	return p.git.HasRemoteOrigin(ctx, p.LocalRoot)
}

// Branch returns the checked-out branch of the working copy, or "" when
// detached or unavailable.
func (p *Project) Branch(ctx context.Context) string {
	return p.git.CurrentBranch(ctx, p.LocalRoot)
}
