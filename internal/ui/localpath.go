package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/openlab-tools/labsync/internal/locale"
)

// =============================================================================
// LocalPathState - State for the project local folder modal
// =============================================================================

type LocalPathState struct {
	ProjectName  string
	OriginalPath string // Path before editing, empty when unset

	form *huh.Form
	path string
}

func (*LocalPathState) modalState() {}

func (s *LocalPathState) Title() string { return locale.T("Project local folder") }

func (s *LocalPathState) Help() string {
	return "Enter: save  Esc: cancel"
}

func (s *LocalPathState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	projectLabel := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(s.ProjectName)

	var current string
	if s.OriginalPath != "" {
		current = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginBottom(1).
			Render(locale.T("Current:") + " " + truncatePath(s.OriginalPath, ModalInputWidth))
	} else {
		current = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginBottom(1).
			Render(locale.T("No local folder set yet."))
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, projectLabel, current, s.form.View(), help)
}

func (s *LocalPathState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetPath returns the entered path, trimmed
func (s *LocalPathState) GetPath() string {
	return strings.TrimSpace(s.path)
}

// NewLocalPathState creates a new LocalPathState. suggested pre-fills
// the input, typically the project's current root or a sensible default.
func NewLocalPathState(projectName, originalPath, suggested string) *LocalPathState {
	s := &LocalPathState{
		ProjectName:  projectName,
		OriginalPath: originalPath,
		path:         suggested,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(locale.T("Folder")).
				Placeholder("/path/to/project").
				CharLimit(ModalInputCharLimit).
				Value(&s.path),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	return s
}
