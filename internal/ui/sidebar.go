package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openlab-tools/labsync/internal/config"
	"github.com/openlab-tools/labsync/internal/keys"
	"github.com/openlab-tools/labsync/internal/locale"
)

// Sidebar represents the left panel with the project list
type Sidebar struct {
	projects    []config.Project
	selectedIdx int
	width       int
	height      int
	focused     bool
	dirty       map[string]bool // project ID -> has uncommitted changes
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{
		dirty: make(map[string]bool),
	}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused sets whether the sidebar has keyboard focus
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// SetProjects replaces the project list, clamping the selection
func (s *Sidebar) SetProjects(projects []config.Project) {
	s.projects = projects
	if s.selectedIdx >= len(projects) {
		s.selectedIdx = len(projects) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// SetDirty marks whether a project has uncommitted changes
func (s *Sidebar) SetDirty(projectID string, dirty bool) {
	s.dirty[projectID] = dirty
}

// SelectedProject returns the currently selected project, or nil
func (s *Sidebar) SelectedProject() *config.Project {
	if len(s.projects) == 0 || s.selectedIdx >= len(s.projects) {
		return nil
	}
	p := s.projects[s.selectedIdx]
	return &p
}

// Update handles navigation keys
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.selectedIdx > 0 {
				s.selectedIdx--
			}
		case keys.Down, "j":
			if s.selectedIdx < len(s.projects)-1 {
				s.selectedIdx++
			}
		}
	}
	return s, nil
}

// View renders the sidebar
func (s *Sidebar) View() string {
	var b strings.Builder

	title := PanelTitleStyle.Render(locale.T("Projects"))
	b.WriteString(title + "\n")

	if len(s.projects) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Padding(0, 1).
			Render(locale.T("No projects yet."))
		b.WriteString(empty + "\n")
	}

	for i, p := range s.projects {
		style := SidebarItemStyle
		prefix := "  "
		if s.focused && i == s.selectedIdx {
			style = SidebarSelectedStyle
			prefix = "> "
		} else if i == s.selectedIdx {
			prefix = "● "
		}

		label := p.Name
		if s.dirty[p.ID] {
			label += " *"
		}
		b.WriteString(style.Render(prefix+label) + "\n")

		path := p.LocalRoot
		if path == "" {
			path = locale.T("(no local folder)")
		}
		b.WriteString(SidebarPathStyle.Render("    "+truncatePath(path, s.width-6)) + "\n")
	}

	borderStyle := PanelStyle
	if s.focused {
		borderStyle = borderStyle.BorderForeground(ColorBorderFocus)
	}

	return borderStyle.
		Width(s.width - 2).
		Height(s.height - 2).
		Render(b.String())
}
