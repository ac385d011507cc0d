package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/models"
)

// SupervisorModel is the management view: treatment efficiency, open
// critical occurrences, per-shift deviation counts, the failure ranking and
// the weekly parameter trends. Refreshes on a timer while focused, same
// re-arm pattern as the dashboard.
type SupervisorModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter
	refresh time.Duration

	loading   bool
	dashboard models.SupervisorDashboard
	trends    []models.WeeklyTrend
	loaded    bool
	errMsg    string
}

func NewSupervisorModel(ctx context.Context, backend adapter.BackendAdapter, refresh time.Duration) *SupervisorModel {
	return &SupervisorModel{ctx: ctx, backend: backend, refresh: refresh}
}

// Init implements [tea.Model].
func (m *SupervisorModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.cmdLoad(), m.cmdTick())
}

// Update implements [tea.Model].
func (m *SupervisorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case supervisorLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.dashboard = msg.dashboard
		m.trends = msg.trends
		m.loaded = true
		return m, nil

	case supervisorTickMsg:
		return m, tea.Batch(m.cmdLoad(), m.cmdTick())

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.cmdLoad()
		}
	}
	return m, nil
}

// View implements [tea.Model].
func (m *SupervisorModel) View() string {
	var b strings.Builder

	if m.loading && !m.loaded {
		b.WriteString("Carregando...\n")
	} else {
		b.WriteString(fmt.Sprintf("Eficiência do tratamento: %.1f%%\n\n", m.dashboard.Efficiency))

		b.WriteString("Desvios por turno: ")
		for i, shift := range models.Shifts {
			if i > 0 {
				b.WriteString(" │ ")
			}
			b.WriteString(fmt.Sprintf("T%s %d", shift, m.dashboard.Shifts[string(shift)]))
		}
		b.WriteString("\n\n")

		if len(m.dashboard.CriticalOccurrences) > 0 {
			b.WriteString("Ocorrências críticas abertas:\n")
			for _, occ := range m.dashboard.CriticalOccurrences {
				b.WriteString(fmt.Sprintf("  %s %-10s %-20s %s\n",
					statusCritStyle.Render("●"), occ.Protocol, fitText(occ.Equipment, 20), formatDate(occ.Timestamp)))
			}
			b.WriteString("\n")
		} else {
			b.WriteString("Nenhuma ocorrência crítica aberta.\n\n")
		}

		if len(m.dashboard.TopFailures) > 0 {
			b.WriteString("Falhas mais frequentes:\n")
			for i, f := range m.dashboard.TopFailures {
				if i >= 5 {
					break
				}
				b.WriteString(fmt.Sprintf("  %d. %-24s %d\n", i+1, fitText(f.Type, 24), f.Count))
			}
			b.WriteString("\n")
		}

		if len(m.trends) > 0 {
			b.WriteString("Tendência semanal:\n")
			b.WriteString(fmt.Sprintf("  %-12s %6s %6s %8s %6s\n", "Data", "pH", "Brix", "Turbidez", "Ocorr."))
			for _, t := range m.trends {
				b.WriteString(fmt.Sprintf("  %-12s %6.2f %6.1f %8.0f %6d\n",
					t.Date, t.AvgPh, t.AvgBrix, t.AvgTurbidity, t.Occurrences))
			}
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("GESTÃO — VISÃO DO SUPERVISOR", strings.TrimRight(b.String(), "\n"),
		"r: atualizar")
}

func (m *SupervisorModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		dashboard, err := backend.SupervisorDashboard(ctx)
		if err != nil {
			return supervisorLoadedMsg{err: err}
		}
		trends, err := backend.WeeklyTrends(ctx)
		if err != nil {
			return supervisorLoadedMsg{err: err}
		}
		return supervisorLoadedMsg{dashboard: dashboard, trends: trends}
	}
}

func (m *SupervisorModel) cmdTick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return supervisorTickMsg(t)
	})
}
