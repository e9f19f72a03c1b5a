package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openlab-tools/labsync/internal/keys"
	"github.com/openlab-tools/labsync/internal/locale"
)

// =============================================================================
// CommitState - State for the Commit Changes modal
// =============================================================================

type CommitState struct {
	ProjectName string
	Summary     []string // One line per change category, e.g. "New: 2 files"
	TitleInput  textinput.Model
	DetailInput textarea.Model
	Focus       int // 0=title input, 1=detail textarea
}

func (*CommitState) modalState() {}

func (s *CommitState) Title() string { return locale.T("Committing changes") }

func (s *CommitState) Help() string {
	return "Tab: switch field  Ctrl+s: commit  Esc: cancel"
}

func (s *CommitState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	projectLabel := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(s.ProjectName)

	// Change summary section
	summaryLabel := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render(locale.T("Changes:"))

	var summaryLines string
	for _, line := range s.Summary {
		summaryLines += lipgloss.NewStyle().
			Foreground(ColorText).
			Render("  "+line) + "\n"
	}

	titleLabel := s.fieldLabel(locale.T("Summary of changes"), s.Focus == 0)
	titleView := s.fieldStyle(s.Focus == 0).Render(s.TitleInput.View())

	detailLabel := s.fieldLabel(locale.T("Details of changes (optional)"), s.Focus == 1)
	detailView := s.fieldStyle(s.Focus == 1).Render(s.DetailInput.View())

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		projectLabel,
		summaryLabel,
		summaryLines,
		titleLabel,
		titleView,
		detailLabel,
		detailView,
		help,
	)
}

func (s *CommitState) fieldLabel(label string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(ColorTextMuted).MarginTop(1)
	if focused {
		style = style.Foreground(ColorPrimary)
	}
	return style.Render(label)
}

func (s *CommitState) fieldStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorPrimary).
			PaddingLeft(1)
	}
	return lipgloss.NewStyle().PaddingLeft(2)
}

func (s *CommitState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Tab:
			if s.Focus == 0 {
				s.Focus = 1
				s.TitleInput.Blur()
				s.DetailInput.Focus()
			} else {
				s.Focus = 0
				s.DetailInput.Blur()
				s.TitleInput.Focus()
			}
			return s, nil
		case keys.ShiftTab:
			if s.Focus == 1 {
				s.Focus = 0
				s.DetailInput.Blur()
				s.TitleInput.Focus()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	if s.Focus == 0 {
		s.TitleInput, cmd = s.TitleInput.Update(msg)
	} else {
		s.DetailInput, cmd = s.DetailInput.Update(msg)
	}
	return s, cmd
}

// GetTitle returns the commit summary line, trimmed
func (s *CommitState) GetTitle() string {
	return strings.TrimSpace(s.TitleInput.Value())
}

// GetDetail returns the extended commit description
func (s *CommitState) GetDetail() string {
	return s.DetailInput.Value()
}

// NewCommitState creates a new CommitState.
// summary holds one display line per change category; initialTitle
// pre-fills the commit summary input.
func NewCommitState(projectName string, summary []string, initialTitle string) *CommitState {
	ti := textinput.New()
	ti.Placeholder = locale.T("Short summary of the commit")
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.SetValue(initialTitle)
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = locale.T("Longer description (optional)")
	ta.CharLimit = 0
	ta.SetHeight(CommitBodyHeight)
	ta.SetWidth(ModalInputWidth)
	ta.ShowLineNumbers = false
	ta.Prompt = ""

	return &CommitState{
		ProjectName: projectName,
		Summary:     summary,
		TitleInput:  ti,
		DetailInput: ta,
		Focus:       0,
	}
}
