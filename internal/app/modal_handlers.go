package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/openlab-tools/labsync/internal/clipboard"
	"github.com/openlab-tools/labsync/internal/keys"
	"github.com/openlab-tools/labsync/internal/locale"
	"github.com/openlab-tools/labsync/internal/logger"
	"github.com/openlab-tools/labsync/internal/sync"
	"github.com/openlab-tools/labsync/internal/ui"
)

// handleModalKey routes modal key events to the appropriate handler based on
// modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *ui.GitWarningState:
		return m.handleGitWarningModal(key)
	case *ui.LoginState:
		return m.handleLoginModal(key, msg, s)
	case *ui.LogoutState:
		return m.handleLogoutModal(key, msg, s)
	case *ui.LocalPathState:
		return m.handleLocalPathModal(key, msg, s)
	case *ui.CommitState:
		return m.handleCommitModal(key, msg, s)
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func (m *Model) handleGitWarningModal(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter, keys.Escape:
		m.modal.Hide()
	}
	return m, nil
}

func (m *Model) handleLoginModal(key string, msg tea.KeyPressMsg, s *ui.LoginState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.CtrlY:
		if err := clipboard.WriteText(s.TokenURL); err == nil {
			s.SetCopied()
		}
		return m, nil

	case keys.Enter:
		token := s.GetToken()
		if token == "" {
			m.modal.SetError(locale.T("A token is required."))
			return m, nil
		}
		s.SetBusy(true)
		return m, m.loginCmd(token, s.RememberMe())
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func (m *Model) handleLogoutModal(key string, msg tea.KeyPressMsg, s *ui.LogoutState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		m.modal.Hide()
		if !s.ShouldLogout() {
			return m, nil
		}
		m.session.Logout()
		m.session = nil
		m.config.ClearToken()
		if err := m.config.Save(); err != nil {
			logger.Error("App: failed to save config: %v", err)
		}
		m.header.SetUsername("")
		m.flash(locale.T("Logged out."), ui.FlashInfo)
		return m, nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func (m *Model) handleLocalPathModal(key string, msg tea.KeyPressMsg, s *ui.LocalPathState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		m.pendingProjectID = ""
		return m, nil

	case keys.Enter:
		rec := m.findProject(m.pendingProjectID)
		m.modal.Hide()
		m.pendingProjectID = ""
		if rec == nil {
			return m, nil
		}

		proj := m.newProject(*rec)
		newPath := sync.SetLocalPath(proj, s.GetPath(), s.OriginalPath)
		if newPath == "" {
			// Cancelled or unchanged
			return m, nil
		}

		m.config.SetProjectLocalRoot(rec.ID, newPath)
		if err := m.config.Save(); err != nil {
			logger.Error("App: failed to save config: %v", err)
			m.flash(err.Error(), ui.FlashError)
			return m, nil
		}
		m.sidebar.SetProjects(m.config.GetProjects())
		m.flash(locale.T("Local folder updated."), ui.FlashSuccess)
		return m, m.refreshStatusCmd()
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func (m *Model) handleCommitModal(key string, msg tea.KeyPressMsg, s *ui.CommitState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		logger.Debug("App: commit %s", sync.StatusCancelled)
		m.modal.Hide()
		m.pendingProjectID = ""
		return m, nil

	case keys.CtrlS:
		title := s.GetTitle()
		if title == "" {
			m.modal.SetError(locale.T("A summary is required."))
			return m, nil
		}
		rec := m.findProject(m.pendingProjectID)
		if rec == nil {
			m.modal.Hide()
			return m, nil
		}
		input := sync.CommitInput{
			Title:     title,
			Body:      s.GetDetail(),
			Confirmed: true,
		}
		return m, m.commitCmd(*rec, input)
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}
