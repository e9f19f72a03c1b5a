package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openlab-tools/labsync/internal/git"
	"github.com/openlab-tools/labsync/internal/locale"
)

// =============================================================================
// GitWarningState - State for the missing-git warning modal
// =============================================================================

type GitWarningState struct{}

func (*GitWarningState) modalState() {}

func (s *GitWarningState) Title() string { return locale.T("Git not found") }

func (s *GitWarningState) Help() string {
	return "Press Enter or Esc to continue"
}

func (s *GitWarningState) Render() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWarning).
		MarginBottom(1).
		Render(s.Title())

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(ModalInputWidth).
		Render(locale.T("Git is not installed or not on the system path. You will need it to sync projects with the hub."))

	downloadLabel := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1).
		Render(locale.T("Download it from:"))

	downloadLink := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Render("  " + git.DownloadURL)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, message, downloadLabel, downloadLink, help)
}

func (s *GitWarningState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewGitWarningState creates a new GitWarningState
func NewGitWarningState() *GitWarningState {
	return &GitWarningState{}
}
