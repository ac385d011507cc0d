package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/usina-ipiranga/caldo-console/internal/access"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/internal/logger"
	"github.com/usina-ipiranga/caldo-console/internal/session"
)

// RootModel is the TUI router and route guard:
//  1. keeps the active page
//  2. handles global hotkeys (quit, navigation, notifications, logout)
//  3. resolves every NavigateTo through the access policy
//  4. delegates all other messages to the active page
//
// Navigation resolution has four outcomes: while the session is restoring a
// neutral wait view is shown and navigation is ignored; an unauthenticated
// user always lands on the login page; a page the role may not open falls
// back to the dashboard; otherwise the requested page renders inside the
// shell. The login page is the symmetric public route — an authenticated
// user asking for it is bounced to the dashboard.
type RootModel struct {
	ctx     context.Context
	session *session.Store
	logger  *logger.Logger

	pages   map[access.Page]tea.Model
	current access.Page

	// ready flips once session restore finished; until then every view is
	// the wait view and navigation is ignored.
	ready bool

	notifCount int
	notifPanel *notificationsModel
	showNotif  bool

	version string
}

// NewRootModel registers all pages and opens the wait view until the
// session is restored.
func NewRootModel(ctx context.Context, sess *session.Store, backend adapter.BackendAdapter, pages map[access.Page]tea.Model, version string, log *logger.Logger) RootModel {
	return RootModel{
		ctx:        ctx,
		session:    sess,
		logger:     log,
		pages:      pages,
		current:    access.PageLogin,
		notifPanel: newNotificationsModel(ctx, backend),
		version:    version,
	}
}

// Init implements [tea.Model]. It kicks off the session restore; the
// sessionReadyMsg it produces moves the router out of the loading state.
func (r RootModel) Init() tea.Cmd {
	ctx := r.ctx
	sess := r.session
	log := r.logger

	return func() tea.Msg {
		if err := sess.Initialize(ctx); err != nil {
			log.Warn().Err(err).Msg("session restore failed")
		}
		return sessionReadyMsg{}
	}
}

// Update implements [tea.Model].
func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := r.handleGlobalKey(key); handled {
			return r, cmd
		}
		if r.showNotif {
			updated, cmd := r.notifPanel.Update(msg)
			r.notifPanel = updated.(*notificationsModel)
			return r, cmd
		}
	}

	switch m := msg.(type) {
	case sessionReadyMsg:
		r.ready = true
		return r.navigate(NavigateTo{Page: access.PageDashboard})

	case NavigateTo:
		if !r.ready {
			return r, nil
		}
		r.showNotif = false
		return r.navigate(m)

	case logoutMsg:
		r.session.Logout()
		r.showNotif = false
		r.notifCount = 0
		return r.navigate(NavigateTo{Page: access.PageLogin})

	case notifCountMsg:
		r.notifCount = m.count
		return r, nil

	case notificationsLoadedMsg, notificationActionMsg:
		updated, cmd := r.notifPanel.Update(msg)
		r.notifPanel = updated.(*notificationsModel)
		return r, cmd
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

// View implements [tea.Model].
func (r RootModel) View() string {
	snap := r.session.Snapshot()
	if !r.ready || snap.Loading {
		wait := "Caldo Console"
		if r.version != "" {
			wait += " v" + r.version
		}
		wait += "\n\nRestaurando sessão...\n\n" + helpStyle.Render("ctrl+c: sair")
		return appStyle.Render(wait)
	}

	page, ok := r.pages[r.current]
	if !ok {
		return appStyle.Render("página não encontrada")
	}

	if r.current == access.PageLogin {
		return appStyle.Render(page.View())
	}

	content := page.View()
	if r.showNotif {
		content = r.notifPanel.View()
	}

	shell := lipgloss.JoinHorizontal(lipgloss.Top, r.sidebarView(), content)
	return appStyle.Render(shell)
}

// handleGlobalKey processes hotkeys that work on every page. Function keys
// are used for navigation so typing into forms never triggers a jump.
func (r *RootModel) handleGlobalKey(key tea.KeyMsg) (tea.Cmd, bool) {
	switch key.String() {
	case "ctrl+c":
		return tea.Quit, true

	case "ctrl+l":
		if r.session.IsAuthenticated() {
			return func() tea.Msg { return logoutMsg{} }, true
		}
		return nil, false

	case "ctrl+n":
		if !r.session.IsAuthenticated() {
			return nil, false
		}
		r.showNotif = !r.showNotif
		if r.showNotif {
			return r.notifPanel.load(), true
		}
		return nil, true

	case "esc":
		if r.showNotif {
			r.showNotif = false
			return nil, true
		}
		return nil, false
	}

	if page, ok := r.navKeyTarget(key.String()); ok {
		return func() tea.Msg { return NavigateTo{Page: page} }, true
	}

	return nil, false
}

// navKeyTarget maps f1..f9 to the role's visible navigation entries.
func (r *RootModel) navKeyTarget(key string) (access.Page, bool) {
	if len(key) < 2 || key[0] != 'f' {
		return "", false
	}
	snap := r.session.Snapshot()
	if !snap.Authenticated {
		return "", false
	}

	entries := access.NavigationFor(snap.User.Role)
	for i, entry := range entries {
		if key == fmt.Sprintf("f%d", i+1) {
			return entry.Page, true
		}
	}
	return "", false
}

// navigate resolves the requested page through the guard and switches to
// the result.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	target := r.resolve(nav.Page)

	page, ok := r.pages[target]
	if !ok {
		return r, nil
	}
	r.current = target

	if nav.Payload != nil && target == nav.Page {
		payload := nav.Payload
		return r, tea.Batch(page.Init(), func() tea.Msg { return payload })
	}
	return r, page.Init()
}

func (r RootModel) resolve(page access.Page) access.Page {
	snap := r.session.Snapshot()

	if !snap.Authenticated {
		return access.PageLogin
	}
	if page == access.PageLogin {
		return access.PageDashboard
	}
	if !access.Allowed(page, snap.User.Role) {
		r.logger.Debug().Str("page", string(page)).Str("role", string(snap.User.Role)).Msg("navigation denied")
		return access.PageDashboard
	}
	return page
}

func (r RootModel) sidebarView() string {
	snap := r.session.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Caldo Console"))
	b.WriteString("\n\n")

	for i, entry := range access.NavigationFor(snap.User.Role) {
		line := fmt.Sprintf("f%d %c %s", i+1, entry.Icon, entry.Label)
		if entry.Page == r.current {
			line = activeNavStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if r.notifCount > 0 {
		b.WriteString(badgeStyle.Render(fmt.Sprintf("✉ %d não lidas", r.notifCount)))
	} else {
		b.WriteString(helpStyle.Render("✉ sem novidades"))
	}
	b.WriteString("\n\n")

	b.WriteString(fitText(snap.User.Name, 22))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(snap.User.Role.Label()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+n: avisos"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+l: sair"))

	return sidebarStyle.Render(b.String())
}
