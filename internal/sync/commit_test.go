package sync

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/openlab-tools/labsync/internal/git"
)

// fakeProject records the staging/commit calls the workflow makes.
type fakeProject struct {
	changes git.ChangeSet
	err     error

	staged    [][]string
	committed []string
	stageErr  error
	commitErr error
}

func (f *fakeProject) GetChanges(ctx context.Context) (git.ChangeSet, []string, error) {
	if f.err != nil {
		return git.ChangeSet{}, nil, f.err
	}
	return f.changes, f.changes.Files(), nil
}

func (f *fakeProject) StageFiles(ctx context.Context, files []string) error {
	if f.stageErr != nil {
		return f.stageErr
	}
	f.staged = append(f.staged, files)
	return nil
}

func (f *fakeProject) Commit(ctx context.Context, message string) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = append(f.committed, message)
	return nil
}

// fakePrompter answers the commit dialog without a UI.
type fakePrompter struct {
	input  CommitInput
	err    error
	prompt CommitPrompt
	called bool
}

func (f *fakePrompter) PromptCommit(ctx context.Context, prompt CommitPrompt) (CommitInput, error) {
	f.called = true
	f.prompt = prompt
	return f.input, f.err
}

func TestCommit_NothingToCommit(t *testing.T) {
	p := &fakeProject{}
	prompter := &fakePrompter{}

	status, err := Commit(context.Background(), p, prompter, "")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if status != StatusNothing {
		t.Errorf("status = %v, want StatusNothing", status)
	}
	if prompter.called {
		t.Error("no dialog should be shown for an empty change set")
	}
	if len(p.staged) != 0 || len(p.committed) != 0 {
		t.Error("no staging or commit calls expected")
	}
}

func TestCommit_UserCancels(t *testing.T) {
	p := &fakeProject{changes: git.ChangeSet{Changed: []string{"experiment.psyexp"}}}
	prompter := &fakePrompter{input: CommitInput{Confirmed: false}}

	status, err := Commit(context.Background(), p, prompter, "")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if status != StatusCancelled {
		t.Errorf("status = %v, want StatusCancelled", status)
	}
	if len(p.staged) != 0 || len(p.committed) != 0 {
		t.Error("cancel must leave the project untouched")
	}
}

func TestCommit_Confirmed(t *testing.T) {
	p := &fakeProject{changes: git.ChangeSet{Untracked: []string{"a.txt"}}}
	prompter := &fakePrompter{input: CommitInput{Title: "Add file", Confirmed: true}}

	status, err := Commit(context.Background(), p, prompter, "")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if status != StatusCommitted {
		t.Errorf("status = %v, want StatusCommitted", status)
	}

	// Summary line per the display contract: untracked shows as "New"
	if len(prompter.prompt.Summary) != 1 || prompter.prompt.Summary[0] != "New: 1 files" {
		t.Errorf("Summary = %v, want [New: 1 files]", prompter.prompt.Summary)
	}
	if len(p.staged) != 1 || len(p.staged[0]) != 1 || p.staged[0][0] != "a.txt" {
		t.Errorf("staged = %v, want [[a.txt]]", p.staged)
	}
	if len(p.committed) != 1 || p.committed[0] != "Add file" {
		t.Errorf("committed = %v, want [Add file]", p.committed)
	}
}

func TestCommit_InitialTitlePassedThrough(t *testing.T) {
	p := &fakeProject{changes: git.ChangeSet{Changed: []string{"x"}}}
	prompter := &fakePrompter{input: CommitInput{Confirmed: false}}

	if _, err := Commit(context.Background(), p, prompter, "WIP"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if prompter.prompt.InitialTitle != "WIP" {
		t.Errorf("InitialTitle = %q, want WIP", prompter.prompt.InitialTitle)
	}
}

func TestCommit_GetChangesError(t *testing.T) {
	p := &fakeProject{err: errors.New("not a repo")}
	prompter := &fakePrompter{}

	if _, err := Commit(context.Background(), p, prompter, ""); err == nil {
		t.Error("change detection errors must propagate")
	}
	if prompter.called {
		t.Error("no dialog on change detection failure")
	}
}

func TestCommit_CommitError(t *testing.T) {
	p := &fakeProject{
		changes:   git.ChangeSet{Changed: []string{"x"}},
		commitErr: errors.New("boom"),
	}
	prompter := &fakePrompter{input: CommitInput{Title: "t", Confirmed: true}}

	status, err := Commit(context.Background(), p, prompter, "")
	if err == nil {
		t.Error("commit errors must propagate")
	}
	if status == StatusCommitted {
		t.Error("status must not report success on failure")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name, title, body, want string
	}{
		{"title only", "Add file", "", "Add file"},
		{"title and body", "Add file", "details here", "Add file\n\ndetails here"},
		{"title used verbatim", "  Add file ", "", "  Add file "},
		{"multiline body", "s", "line1\nline2", "s\n\nline1\nline2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.title, tt.body); got != tt.want {
				t.Errorf("Message(%q, %q) = %q, want %q", tt.title, tt.body, got, tt.want)
			}
		})
	}
}

func TestSummaryLines_AllCategories(t *testing.T) {
	cs := git.ChangeSet{
		Untracked: []string{"a", "b"},
		Changed:   []string{"c"},
		Deleted:   []string{"d"},
		Renamed:   []string{"e"},
	}
	lines := SummaryLines(cs)
	want := []string{"New: 2 files", "Changed: 1 files", "Deleted: 1 files", "Renamed: 1 files"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSummaryLines_SkipsEmptyCategories(t *testing.T) {
	lines := SummaryLines(git.ChangeSet{Deleted: []string{"gone.txt"}})
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "Deleted:") {
		t.Errorf("lines = %v, want a single Deleted line", lines)
	}
}

func TestStatus_String(t *testing.T) {
	if StatusNothing.String() != "nothing to commit" {
		t.Error("StatusNothing string")
	}
	if StatusCommitted.String() != "committed" {
		t.Error("StatusCommitted string")
	}
	if StatusCancelled.String() != "cancelled" {
		t.Error("StatusCancelled string")
	}
}
