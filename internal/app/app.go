// Package app contains the main Bubble Tea model wiring the project
// sidebar, the hub session, git sync and the modal dialogs together.
package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openlab-tools/labsync/internal/config"
	"github.com/openlab-tools/labsync/internal/git"
	"github.com/openlab-tools/labsync/internal/hub"
	"github.com/openlab-tools/labsync/internal/joystick"
	"github.com/openlab-tools/labsync/internal/locale"
	"github.com/openlab-tools/labsync/internal/logger"
	"github.com/openlab-tools/labsync/internal/sync"
	"github.com/openlab-tools/labsync/internal/ui"
)

// SidebarWidth is the fixed width of the project list panel
const SidebarWidth = 32

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	modal   *ui.Modal

	gitSvc  *git.Service
	hub     *hub.Client
	session *hub.Session

	// Keyboard-driven joystick emulation
	keypad   *joystick.EventKeyboard
	emulator *joystick.Joystick
	buttons  []bool

	width  int
	height int

	// Project currently targeted by an open modal
	pendingProjectID string

	// Working-copy state per project ID, refreshed after commits
	status map[string]ProjectStatus
}

// StartupMsg triggers the git availability check and stored-token login
type StartupMsg struct{}

// LoginResultMsg carries the outcome of a hub login attempt
type LoginResultMsg struct {
	Session  *hub.Session
	Remember bool
	Err      error
}

// ChangesMsg carries the change summary collected before a commit prompt
type ChangesMsg struct {
	ProjectID string
	Summary   []string
	FileCount int
	Err       error
}

// CommitResultMsg carries the outcome of a commit workflow
type CommitResultMsg struct {
	ProjectID string
	Status    sync.Status
	FileCount int
	Err       error
}

// ProjectStatus is the working-copy state shown for a project.
type ProjectStatus struct {
	Dirty     bool
	Branch    string
	HasRemote bool
}

// ProjectStatesMsg carries refreshed working-copy states per project
type ProjectStatesMsg struct {
	States map[string]ProjectStatus
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	keypad := joystick.NewEventKeyboard()

	m := &Model{
		config:   cfg,
		version:  version,
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		sidebar:  ui.NewSidebar(),
		modal:    ui.NewModal(),
		gitSvc:   git.NewService(),
		hub:      hub.NewClient(hub.DefaultBaseURL),
		keypad:   keypad,
		emulator: joystick.New(keypad),
		status:   make(map[string]ProjectStatus),
	}
	m.buttons = make([]bool, m.emulator.NumButtons())

	m.sidebar.SetProjects(cfg.GetProjects())
	m.sidebar.SetFocused(true)
	m.footer.SetContext(len(cfg.GetProjects()) > 0, false)

	return m
}

// Session returns the active hub session, nil when logged out
func (m *Model) Session() *hub.Session {
	return m.session
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return StartupMsg{}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case StartupMsg:
		var cmds []tea.Cmd
		if !m.gitSvc.IsInstalled() {
			logger.Warn("App: git not found on PATH")
			m.modal.Show(ui.NewGitWarningState())
		} else {
			cmds = append(cmds, m.refreshStatusCmd())
		}
		if token := m.config.GetToken(); token != "" {
			cmds = append(cmds, m.loginCmd(token, true))
		}
		return m, tea.Batch(cmds...)

	case LoginResultMsg:
		return m.handleLoginResult(msg)

	case ChangesMsg:
		return m.handleChanges(msg)

	case CommitResultMsg:
		return m.handleCommitResult(msg)

	case ProjectStatesMsg:
		m.status = msg.States
		for id, st := range msg.States {
			m.sidebar.SetDirty(id, st.Dirty)
		}

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses to the joystick emulator, the modal, or
// the global keymap, in that order.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Ctrl+alt+digit chords feed the joystick emulator regardless of
	// what else is on screen.
	if code, mods, ok := joystick.FromKeyPress(msg); ok {
		m.keypad.KeyDown(code, mods)
		m.buttons = m.emulator.Buttons()
		return m, nil
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "c":
		return m.startCommit()
	case "p":
		return m.startSetLocalPath()
	case "l":
		return m.startLogin()
	case "o":
		return m.startLogout()
	case "n":
		return m.toggleNotifications()
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return m, cmd
}

func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.sidebar.SetSize(SidebarWidth, m.contentHeight())
}

func (m *Model) contentHeight() int {
	h := m.height - ui.HeaderHeight - ui.FooterHeight
	if h < 0 {
		h = 0
	}
	return h
}

// selectedProject returns the sidebar selection, nil when empty
func (m *Model) selectedProject() *config.Project {
	return m.sidebar.SelectedProject()
}

// flash shows a transient message in the footer
func (m *Model) flash(text string, flashType ui.FlashType) {
	m.footer.SetFlash(text, flashType)
}

// View renders the application
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	m.footer.SetContext(len(m.config.GetProjects()) > 0, m.session != nil && m.session.Active())

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		m.detailView(),
	)

	if m.modal.IsVisible() {
		body = m.modal.View(m.width, m.contentHeight())
	}

	v.SetContent(lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	))
	return v
}

// detailView renders the right panel for the selected project
func (m *Model) detailView() string {
	width := m.width - SidebarWidth
	if width < 0 {
		width = 0
	}

	var b strings.Builder

	p := m.selectedProject()
	if p == nil {
		b.WriteString(lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted).
			Italic(true).
			Render(locale.T("Select a project to sync.")))
	} else {
		label := lipgloss.NewStyle().Foreground(ui.ColorTextMuted)
		value := lipgloss.NewStyle().Foreground(ui.ColorText)

		b.WriteString(ui.PanelTitleStyle.Render(p.Name) + "\n\n")
		b.WriteString(label.Render(locale.T("Remote:")+" ") + value.Render(p.RemoteURL) + "\n")

		local := p.LocalRoot
		if local == "" {
			local = locale.T("(not set, press 'p')")
		}
		b.WriteString(label.Render(locale.T("Local folder:")+" ") + value.Render(local) + "\n")

		st := m.status[p.ID]
		if st.Branch != "" {
			b.WriteString(label.Render(locale.T("Branch:")+" ") + value.Render(st.Branch) + "\n")
		}
		if p.LocalRoot != "" && !st.HasRemote {
			b.WriteString(label.Render(locale.T("Origin:")+" ") +
				ui.StatusErrorStyle.Render(locale.T("no origin remote configured")) + "\n")
		}
		if st.Dirty {
			b.WriteString(label.Render(locale.T("Status:")+" ") +
				ui.StatusErrorStyle.Render(locale.T("uncommitted changes")) + "\n")
		} else {
			b.WriteString(label.Render(locale.T("Status:")+" ") +
				ui.StatusSuccessStyle.Render(locale.T("clean")) + "\n")
		}
	}

	b.WriteString("\n" + m.sessionLine())
	b.WriteString("\n" + m.buttonsLine())

	return ui.PanelStyle.
		Width(width - 2).
		Height(m.contentHeight() - 2).
		Padding(0, 1).
		Render(b.String())
}

// sessionLine describes the hub session for the detail panel
func (m *Model) sessionLine() string {
	label := lipgloss.NewStyle().Foreground(ui.ColorTextMuted)
	if m.session == nil || !m.session.Active() {
		return label.Render(locale.T("Hub:")+" ") +
			lipgloss.NewStyle().Foreground(ui.ColorTextMuted).Italic(true).Render(locale.T("not logged in"))
	}
	return label.Render(locale.T("Hub:")+" ") +
		lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(m.session.User().Username)
}

// buttonsLine renders the emulated joystick button vector
func (m *Model) buttonsLine() string {
	var bits strings.Builder
	for _, pressed := range m.buttons {
		if pressed {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}
	return lipgloss.NewStyle().Foreground(ui.ColorTextMuted).
		Render(fmt.Sprintf("%s %s", locale.T("Buttons:"), bits.String()))
}
