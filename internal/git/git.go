// Package git wraps the git command line for the change detection, staging
// and committing that project sync needs. Nothing here shells out without a
// context; all user-facing failures are returned, never printed.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/openlab-tools/labsync/internal/errors"
	"github.com/openlab-tools/labsync/internal/logger"
)

// DownloadURL is where users can obtain git if it is not installed.
const DownloadURL = "https://git-scm.com/"

// Service runs git commands. The zero value is not usable; use NewService.
type Service struct{}

// NewService creates a new git Service
func NewService() *Service {
	return &Service{}
}

// IsInstalled reports whether a git executable is available on PATH.
func (s *Service) IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo reports whether path is inside a git working tree.
func (s *Service) IsRepo(ctx context.Context, path string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = path
	return cmd.Run() == nil
}

// HasRemoteOrigin checks if the repository has a remote named "origin"
func (s *Service) HasRemoteOrigin(ctx context.Context, repoPath string) bool {
	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", "origin")
	cmd.Dir = repoPath
	return cmd.Run() == nil
}

// CurrentBranch returns the checked-out branch name, or "" when detached.
func (s *Service) CurrentBranch(ctx context.Context, repoPath string) string {
	cmd := exec.CommandContext(ctx, "git", "branch", "--show-current")
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// ChangeSet categorizes pending modifications between the working tree and
// the last commit. It is recomputed on every query and never cached here.
type ChangeSet struct {
	Untracked []string
	Changed   []string
	Deleted   []string
	Renamed   []string
}

// IsEmpty reports whether no category holds any file.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Untracked) == 0 && len(c.Changed) == 0 &&
		len(c.Deleted) == 0 && len(c.Renamed) == 0
}

// Files returns the flat list of affected paths, category order preserved.
func (c ChangeSet) Files() []string {
	files := make([]string, 0, len(c.Untracked)+len(c.Changed)+len(c.Deleted)+len(c.Renamed))
	files = append(files, c.Untracked...)
	files = append(files, c.Changed...)
	files = append(files, c.Deleted...)
	files = append(files, c.Renamed...)
	return files
}

// Changes queries the repository's pending changes via `git status
// --porcelain` and partitions them into untracked/changed/deleted/renamed.
func (s *Service) Changes(ctx context.Context, repoPath string) (ChangeSet, error) {
	var cs ChangeSet

	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return cs, errors.E(errors.Op("git.Changes"), errors.KindGit,
			fmt.Sprintf("git status failed in %s", repoPath),
			fmt.Errorf("%v: %s", err, strings.TrimSpace(string(output))))
	}

	for _, line := range strings.Split(string(output), "\n") {
		if len(line) < 4 {
			continue
		}
		index, worktree := line[0], line[1]
		path := unquotePath(line[3:])

		switch {
		case index == '?' && worktree == '?':
			cs.Untracked = append(cs.Untracked, path)
		case index == 'R' || worktree == 'R':
			// porcelain renames read "R  old -> new"; keep the new name
			if idx := strings.Index(path, " -> "); idx >= 0 {
				path = unquotePath(path[idx+4:])
			}
			cs.Renamed = append(cs.Renamed, path)
		case index == 'D' || worktree == 'D':
			cs.Deleted = append(cs.Deleted, path)
		default:
			cs.Changed = append(cs.Changed, path)
		}
	}

	logger.Debug("Git: %d untracked, %d changed, %d deleted, %d renamed in %s",
		len(cs.Untracked), len(cs.Changed), len(cs.Deleted), len(cs.Renamed), repoPath)
	return cs, nil
}

// unquotePath strips the quoting git applies to paths with special characters
func unquotePath(p string) string {
	p = strings.TrimSpace(p)
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		p = p[1 : len(p)-1]
	}
	return p
}

// StageFiles stages exactly the given files. Deleted files are staged too
// because `git add` records removals since git 2.0.
func (s *Service) StageFiles(ctx context.Context, repoPath string, files []string) error {
	if len(files) == 0 {
		return nil
	}

	args := append([]string{"add", "--"}, files...)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.GitStageFailed(repoPath, fmt.Errorf("%v: %s", err, strings.TrimSpace(string(output))))
	}
	logger.Debug("Git: staged %d files in %s", len(files), repoPath)
	return nil
}

// Commit creates a commit from the staged files with the given message.
func (s *Service) Commit(ctx context.Context, repoPath, message string) error {
	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.GitCommitFailed(repoPath, fmt.Errorf("%v: %s", err, strings.TrimSpace(string(output))))
	}
	logger.Info("Git: committed in %s: %s", repoPath, firstLine(message))
	return nil
}

// firstLine returns the first line of a commit message for logging
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
