package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/openlab-tools/labsync/internal/keys"
	"github.com/openlab-tools/labsync/internal/locale"
)

// =============================================================================
// LoginState - State for the hub login modal
// =============================================================================

type LoginState struct {
	TokenURL string // Where the user can create a personal access token

	form     *huh.Form
	token    string
	remember bool
	copied   bool // Token URL was copied to the clipboard
	busy     bool // Login request in flight
}

func (*LoginState) modalState() {}

func (s *LoginState) Title() string { return locale.T("Log in to OpenLab Hub") }

func (s *LoginState) Help() string {
	if s.busy {
		return locale.T("Logging in...")
	}
	return "Tab: next field  Ctrl+y: copy token URL  Enter: log in  Esc: cancel"
}

func (s *LoginState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	intro := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Width(ModalInputWidth).
		Render(locale.T("Paste a personal access token. You can create one at:"))

	urlLine := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		MarginBottom(1).
		Render("  " + s.TokenURL)
	if s.copied {
		urlLine += lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Render("  " + locale.T("(copied)"))
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, intro, urlLine, s.form.View(), help)
}

func (s *LoginState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if s.busy {
		return s, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.CtrlY {
		// App layer performs the clipboard write and calls SetCopied
		return s, nil
	}

	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetToken returns the entered token, trimmed
func (s *LoginState) GetToken() string {
	return strings.TrimSpace(s.token)
}

// RememberMe returns whether the token should be stored in the config
func (s *LoginState) RememberMe() bool {
	return s.remember
}

// TokenInfo returns the login fields keyed by name
func (s *LoginState) TokenInfo() map[string]string {
	info := map[string]string{"token": s.GetToken()}
	if s.remember {
		info["remember"] = "true"
	}
	return info
}

// SetCopied marks the token URL as copied to the clipboard
func (s *LoginState) SetCopied() {
	s.copied = true
}

// SetBusy toggles the in-flight indicator while the login request runs
func (s *LoginState) SetBusy(busy bool) {
	s.busy = busy
}

// NewLoginState creates a new LoginState
func NewLoginState(tokenURL string) *LoginState {
	s := &LoginState{
		TokenURL: tokenURL,
		remember: true,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(locale.T("Personal access token")).
				Placeholder("olh_...").
				EchoMode(huh.EchoModePassword).
				CharLimit(ModalInputCharLimit).
				Value(&s.token),
			huh.NewConfirm().
				Title(locale.T("Remember me")).
				Affirmative(locale.T("Yes")).
				Negative(locale.T("No")).
				Value(&s.remember),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	return s
}

// =============================================================================
// LogoutState - State for the logout confirmation modal
// =============================================================================

type LogoutState struct {
	Username      string
	Options       []string
	SelectedIndex int
}

func (*LogoutState) modalState() {}

func (s *LogoutState) Title() string { return locale.T("Log out?") }

func (s *LogoutState) Help() string {
	return "↑/↓ to select, Enter to confirm, Esc to cancel"
}

func (s *LogoutState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	userLabel := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(s.Username)

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render(locale.T("This ends the hub session and forgets the stored token."))

	var optionList string
	for i, opt := range s.Options {
		style := SidebarItemStyle
		prefix := "  "
		if i == s.SelectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}
		optionList += style.Render(prefix+opt) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, userLabel, message, optionList, help)
}

func (s *LogoutState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// ShouldLogout returns true if the user selected to log out
func (s *LogoutState) ShouldLogout() bool {
	return s.SelectedIndex == 1 // "Log out" is index 1
}

// NewLogoutState creates a new LogoutState
func NewLogoutState(username string) *LogoutState {
	return &LogoutState{
		Username:      username,
		Options:       []string{locale.T("Stay logged in"), locale.T("Log out")},
		SelectedIndex: 0,
	}
}
