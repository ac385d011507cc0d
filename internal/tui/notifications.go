package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/access"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/models"
)

const notificationsShown = 10

// notificationsModel is the overlay panel toggled with ctrl+n. Opening a
// notification marks it read and jumps to the screen it refers to: work
// order assignments go to the work orders screen, occurrence alerts to the
// occurrences screen.
type notificationsModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter

	loading bool
	items   []models.Notification
	idx     int
	errMsg  string
}

func newNotificationsModel(ctx context.Context, backend adapter.BackendAdapter) *notificationsModel {
	return &notificationsModel{ctx: ctx, backend: backend}
}

// load fetches the latest notifications. Called every time the panel opens.
func (m *notificationsModel) load() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		items, err := backend.Notifications(ctx)
		return notificationsLoadedMsg{items: items, err: err}
	}
}

// Init implements [tea.Model]. The panel is loaded via [notificationsModel.load]
// when it opens, so there is nothing to do here.
func (m *notificationsModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
func (m *notificationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if len(m.items) > notificationsShown {
			m.items = m.items[:notificationsShown]
		}
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil

	case notificationActionMsg:
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.markAll):
			return m, m.cmdMarkAllRead()
		case key.Matches(msg, keys.enter):
			if len(m.items) == 0 {
				return m, nil
			}
			return m, m.cmdOpen(m.items[m.idx])
		}
	}
	return m, nil
}

// View implements [tea.Model].
func (m *notificationsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AVISOS"))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Carregando...\n")
	case len(m.items) == 0:
		b.WriteString("Nenhum aviso.\n")
	default:
		for i, n := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			marker := " "
			if !n.Read {
				marker = "●"
			}
			line := fmt.Sprintf("%s%s %s  %s", cursor, marker, formatDate(n.CreatedAt), fitText(n.Title, 36))
			if !n.Read {
				line = badgeStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			if i == m.idx {
				b.WriteString("     " + helpStyle.Render(fitText(n.Message, 46)))
				b.WriteString("\n")
			}
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: abrir │ a: marcar todas lidas │ esc: fechar"))

	return overlayBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// cmdOpen marks the notification read and emits the navigation that the
// notification type points to.
func (m *notificationsModel) cmdOpen(n models.Notification) tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		if !n.Read {
			if err := backend.MarkNotificationRead(ctx, n.ID); err != nil {
				return notificationActionMsg{err: err}
			}
		}
		if n.Type == models.NotificationWorkOrderAssigned {
			return NavigateTo{Page: access.PageWorkOrders}
		}
		if n.OccurrenceID != "" {
			return NavigateTo{Page: access.PageOccurrences}
		}
		return notificationActionMsg{}
	}
}

func (m *notificationsModel) cmdMarkAllRead() tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		err := backend.MarkAllNotificationsRead(ctx)
		return notificationActionMsg{err: err}
	}
}
