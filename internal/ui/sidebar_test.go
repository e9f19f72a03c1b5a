package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/openlab-tools/labsync/internal/config"
)

func testProjects() []config.Project {
	return []config.Project{
		{ID: "a", Name: "stroop", LocalRoot: "/home/lab/stroop"},
		{ID: "b", Name: "memory-task"},
		{ID: "c", Name: "posner", LocalRoot: "/home/lab/posner"},
	}
}

func TestSidebar_Navigation(t *testing.T) {
	s := NewSidebar()
	s.SetProjects(testProjects())

	if got := s.SelectedProject(); got == nil || got.ID != "a" {
		t.Fatal("Expected first project selected initially")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := s.SelectedProject(); got == nil || got.ID != "c" {
		t.Error("Expected last project after moving down twice")
	}

	// Clamped at the end
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := s.SelectedProject(); got == nil || got.ID != "c" {
		t.Error("Selection should not run past the last project")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if got := s.SelectedProject(); got == nil || got.ID != "b" {
		t.Error("Expected second project after moving up")
	}
}

func TestSidebar_VimKeys(t *testing.T) {
	s := NewSidebar()
	s.SetProjects(testProjects())

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if got := s.SelectedProject(); got == nil || got.ID != "b" {
		t.Error("Expected j to move down")
	}

	s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if got := s.SelectedProject(); got == nil || got.ID != "a" {
		t.Error("Expected k to move up")
	}
}

func TestSidebar_EmptyList(t *testing.T) {
	s := NewSidebar()
	s.SetSize(40, 20)

	if s.SelectedProject() != nil {
		t.Error("Expected nil selection with no projects")
	}

	if !strings.Contains(s.View(), "No projects") {
		t.Error("Expected empty placeholder in view")
	}
}

func TestSidebar_SelectionClampedOnShrink(t *testing.T) {
	s := NewSidebar()
	s.SetProjects(testProjects())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	s.SetProjects(testProjects()[:1])
	if got := s.SelectedProject(); got == nil || got.ID != "a" {
		t.Error("Selection should clamp when the list shrinks")
	}
}

func TestSidebar_View(t *testing.T) {
	s := NewSidebar()
	s.SetSize(40, 20)
	s.SetFocused(true)
	s.SetProjects(testProjects())
	s.SetDirty("a", true)

	view := s.View()
	if !strings.Contains(view, "stroop *") {
		t.Error("Expected dirty marker on project with changes")
	}
	if !strings.Contains(view, "memory-task") {
		t.Error("Expected all project names in view")
	}
	if !strings.Contains(view, "no local folder") {
		t.Error("Expected placeholder for project without a local root")
	}
}
