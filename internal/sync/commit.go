// Package sync holds the project synchronization workflows as plain logic:
// change detection, commit message assembly, and local path resolution. The
// UI renders the view-models produced here and feeds user input back through
// the Prompter interface, so every workflow is testable without a terminal.
package sync

import (
	"context"
	"fmt"

	"github.com/openlab-tools/labsync/internal/git"
	"github.com/openlab-tools/labsync/internal/locale"
	"github.com/openlab-tools/labsync/internal/logger"
)

// Status is the tri-state outcome of the commit workflow. Callers must
// branch on it explicitly.
type Status int

const (
	// StatusNothing means the change set was empty; no dialog was shown.
	StatusNothing Status = 0
	// StatusCommitted means files were staged and committed.
	StatusCommitted Status = 1
	// StatusCancelled means the user dismissed the dialog; the project was
	// not modified.
	StatusCancelled Status = -1
)

func (s Status) String() string {
	switch s {
	case StatusNothing:
		return "nothing to commit"
	case StatusCommitted:
		return "committed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Project is what the commit workflow needs from a project. The concrete
// implementation lives in internal/project; tests substitute fakes.
type Project interface {
	GetChanges(ctx context.Context) (git.ChangeSet, []string, error)
	StageFiles(ctx context.Context, files []string) error
	Commit(ctx context.Context, message string) error
}

// CommitPrompt is the view-model for the commit dialog: everything the view
// layer needs to render it, with no widget types.
type CommitPrompt struct {
	// Summary holds one line per non-empty change category.
	Summary []string
	// InitialTitle pre-fills the one-line summary input.
	InitialTitle string
}

// CommitInput is what the dialog hands back.
type CommitInput struct {
	// Title is the required one-line summary of the changes.
	Title string
	// Body is the optional multi-line detail text.
	Body string
	// Confirmed is false when the user cancelled the dialog.
	Confirmed bool
}

// Prompter presents the commit dialog and blocks until the user confirms or
// cancels. The app implements this on top of the modal UI.
type Prompter interface {
	PromptCommit(ctx context.Context, prompt CommitPrompt) (CommitInput, error)
}

// categoryLabel maps a change category to its display label. Untracked files
// read better as "New" to experiment authors who never heard of tracking.
func categoryLabel(category string) string {
	switch category {
	case "untracked":
		return "New"
	case "changed":
		return "Changed"
	case "deleted":
		return "Deleted"
	case "renamed":
		return "Renamed"
	default:
		return category
	}
}

// SummaryLines builds the human-readable change summary, one line per
// non-empty category in fixed order.
func SummaryLines(cs git.ChangeSet) []string {
	var lines []string
	for _, c := range []struct {
		name  string
		files []string
	}{
		{"untracked", cs.Untracked},
		{"changed", cs.Changed},
		{"deleted", cs.Deleted},
		{"renamed", cs.Renamed},
	} {
		if len(c.files) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %d %s",
			locale.T(categoryLabel(c.name)), len(c.files), locale.T("files")))
	}
	return lines
}

// Message assembles the final commit message: the detail body is appended to
// the title, separated by a blank line, only when non-empty. Inputs are used
// as-is; the dialog layer trims the title before confirming.
func Message(title, body string) string {
	if body == "" {
		return title
	}
	return title + "\n\n" + body
}

// Commit runs the commit workflow against a project: query changes, prompt
// the user when there is anything to commit, then stage and commit.
//
// Returns StatusNothing when the change set is empty (no dialog shown),
// StatusCancelled when the user dismissed the dialog, StatusCommitted on
// success. A stage or commit failure is returned as an error alongside
// StatusCancelled; the project may have files staged but nothing committed.
func Commit(ctx context.Context, p Project, prompter Prompter, initialTitle string) (Status, error) {
	changes, files, err := p.GetChanges(ctx)
	if err != nil {
		return StatusCancelled, err
	}
	if len(files) == 0 {
		return StatusNothing, nil
	}

	input, err := prompter.PromptCommit(ctx, CommitPrompt{
		Summary:      SummaryLines(changes),
		InitialTitle: initialTitle,
	})
	if err != nil {
		return StatusCancelled, err
	}
	if !input.Confirmed {
		logger.Debug("Sync: commit cancelled by user")
		return StatusCancelled, nil
	}

	message := Message(input.Title, input.Body)
	if err := p.StageFiles(ctx, files); err != nil {
		return StatusCancelled, err
	}
	if err := p.Commit(ctx, message); err != nil {
		return StatusCancelled, err
	}

	logger.Info("Sync: committed %d files", len(files))
	return StatusCommitted, nil
}
