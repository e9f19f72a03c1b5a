package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/openlab-tools/labsync/internal/config"
	"github.com/openlab-tools/labsync/internal/locale"
	"github.com/openlab-tools/labsync/internal/logger"
	"github.com/openlab-tools/labsync/internal/notification"
	"github.com/openlab-tools/labsync/internal/project"
	"github.com/openlab-tools/labsync/internal/sync"
	"github.com/openlab-tools/labsync/internal/ui"
)

// staticPrompter feeds a commit input that was already collected through the
// modal back into the commit workflow.
type staticPrompter struct {
	input sync.CommitInput
}

func (p staticPrompter) PromptCommit(ctx context.Context, prompt sync.CommitPrompt) (sync.CommitInput, error) {
	return p.input, nil
}

// newProject builds the domain project for a config record
func (m *Model) newProject(rec config.Project) *project.Project {
	return project.New(rec, m.gitSvc)
}

// =============================================================================
// Workflow starters (key handlers)
// =============================================================================

// startCommit kicks off the commit workflow for the selected project
func (m *Model) startCommit() (tea.Model, tea.Cmd) {
	p := m.selectedProject()
	if p == nil {
		m.flash(locale.T("No project selected."), ui.FlashInfo)
		return m, nil
	}
	if p.LocalRoot == "" {
		m.flash(locale.T("Set a local folder first (press 'p')."), ui.FlashInfo)
		return m, nil
	}
	return m, m.collectChangesCmd(*p)
}

// startSetLocalPath opens the local folder modal for the selected project
func (m *Model) startSetLocalPath() (tea.Model, tea.Cmd) {
	p := m.selectedProject()
	if p == nil {
		m.flash(locale.T("No project selected."), ui.FlashInfo)
		return m, nil
	}
	suggested := sync.DefaultLocalPath("", m.newProject(*p))
	m.pendingProjectID = p.ID
	m.modal.Show(ui.NewLocalPathState(p.Name, p.LocalRoot, suggested))
	return m, nil
}

// startLogin opens the login modal
func (m *Model) startLogin() (tea.Model, tea.Cmd) {
	if m.session != nil && m.session.Active() {
		m.flash(locale.T("Already logged in."), ui.FlashInfo)
		return m, nil
	}
	m.modal.Show(ui.NewLoginState(m.hub.TokenPageURL()))
	return m, nil
}

// toggleNotifications flips the desktop notification setting
func (m *Model) toggleNotifications() (tea.Model, tea.Cmd) {
	enabled := !m.config.GetNotificationsEnabled()
	m.config.SetNotificationsEnabled(enabled)
	if err := m.config.Save(); err != nil {
		logger.Error("App: failed to save config: %v", err)
	}
	if enabled {
		m.flash(locale.T("Desktop notifications on."), ui.FlashInfo)
	} else {
		m.flash(locale.T("Desktop notifications off."), ui.FlashInfo)
	}
	return m, nil
}

// startLogout opens the logout confirmation modal
func (m *Model) startLogout() (tea.Model, tea.Cmd) {
	if m.session == nil || !m.session.Active() {
		m.flash(locale.T("Not logged in."), ui.FlashInfo)
		return m, nil
	}
	m.modal.Show(ui.NewLogoutState(m.session.User().Username))
	return m, nil
}

// =============================================================================
// Commands
// =============================================================================

// collectChangesCmd queries the project's pending changes off the UI thread
func (m *Model) collectChangesCmd(rec config.Project) tea.Cmd {
	proj := m.newProject(rec)
	return func() tea.Msg {
		changes, files, err := proj.GetChanges(context.Background())
		if err != nil {
			return ChangesMsg{ProjectID: rec.ID, Err: err}
		}
		return ChangesMsg{
			ProjectID: rec.ID,
			Summary:   sync.SummaryLines(changes),
			FileCount: len(files),
		}
	}
}

// commitCmd runs the commit workflow with the confirmed dialog input
func (m *Model) commitCmd(rec config.Project, input sync.CommitInput) tea.Cmd {
	proj := m.newProject(rec)
	return func() tea.Msg {
		_, files, err := proj.GetChanges(context.Background())
		if err != nil {
			return CommitResultMsg{ProjectID: rec.ID, Status: sync.StatusCancelled, Err: err}
		}
		status, err := sync.Commit(context.Background(), proj, staticPrompter{input: input}, input.Title)
		return CommitResultMsg{
			ProjectID: rec.ID,
			Status:    status,
			FileCount: len(files),
			Err:       err,
		}
	}
}

// loginCmd performs the hub login request
func (m *Model) loginCmd(token string, remember bool) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.hub.Login(context.Background(), token, remember)
		return LoginResultMsg{Session: sess, Remember: remember, Err: err}
	}
}

// refreshStatusCmd recomputes the working-copy state for all projects
func (m *Model) refreshStatusCmd() tea.Cmd {
	projects := m.config.GetProjects()
	svc := m.gitSvc
	return func() tea.Msg {
		ctx := context.Background()
		states := make(map[string]ProjectStatus, len(projects))
		for _, rec := range projects {
			if rec.LocalRoot == "" {
				continue
			}
			proj := project.New(rec, svc)
			cs, _, err := proj.GetChanges(ctx)
			if err != nil {
				logger.Debug("App: status check failed for %s: %v", rec.Name, err)
				continue
			}
			states[rec.ID] = ProjectStatus{
				Dirty:     !cs.IsEmpty(),
				Branch:    proj.Branch(ctx),
				HasRemote: proj.HasRemote(ctx),
			}
		}
		return ProjectStatesMsg{States: states}
	}
}

// =============================================================================
// Result handlers
// =============================================================================

func (m *Model) handleLoginResult(msg LoginResultMsg) (tea.Model, tea.Cmd) {
	loginModal, interactive := m.modal.State.(*ui.LoginState)

	if msg.Err != nil {
		logger.Warn("App: login failed: %v", msg.Err)
		if interactive {
			loginModal.SetBusy(false)
			m.modal.SetError(locale.T("Login failed. Check the token and try again."))
		} else {
			m.flash(locale.T("Stored token was rejected, please log in again."), ui.FlashError)
			m.config.ClearToken()
			if err := m.config.Save(); err != nil {
				logger.Error("App: failed to save config: %v", err)
			}
		}
		return m, nil
	}

	m.session = msg.Session
	m.header.SetUsername(m.session.User().Username)

	if msg.Remember {
		m.config.SetToken(m.session.Token())
		if err := m.config.Save(); err != nil {
			logger.Error("App: failed to save config: %v", err)
		}
	}

	if interactive {
		m.modal.Hide()
		m.flash(locale.T("Logged in as")+" "+m.session.User().Username, ui.FlashSuccess)
		if m.config.GetNotificationsEnabled() {
			notification.LoggedIn(m.session.User().Username)
		}
	}
	return m, nil
}

func (m *Model) handleChanges(msg ChangesMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.flash(msg.Err.Error(), ui.FlashError)
		return m, nil
	}
	if msg.FileCount == 0 {
		m.flash(locale.T("Nothing to commit."), ui.FlashInfo)
		return m, nil
	}

	p := m.findProject(msg.ProjectID)
	if p == nil {
		return m, nil
	}
	m.pendingProjectID = msg.ProjectID
	m.modal.Show(ui.NewCommitState(p.Name, msg.Summary, ""))
	return m, nil
}

func (m *Model) handleCommitResult(msg CommitResultMsg) (tea.Model, tea.Cmd) {
	m.modal.Hide()
	m.pendingProjectID = ""

	if msg.Err != nil {
		logger.Warn("App: commit failed: %v", msg.Err)
		m.flash(msg.Err.Error(), ui.FlashError)
		return m, nil
	}

	switch msg.Status {
	case sync.StatusCommitted:
		m.flash(locale.T("Changes committed."), ui.FlashSuccess)
		if p := m.findProject(msg.ProjectID); p != nil && m.config.GetNotificationsEnabled() {
			notification.CommitCompleted(p.Name, msg.FileCount)
		}
	case sync.StatusNothing:
		m.flash(locale.T("Nothing to commit."), ui.FlashInfo)
	}
	return m, m.refreshStatusCmd()
}

// findProject looks up a config project by ID
func (m *Model) findProject(id string) *config.Project {
	return m.config.GetProject(id)
}
