package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/models"
)

// ReportsModel turns a logged occurrence into a formatted incident report.
// The screen opens as a picker over recent occurrences; it also accepts a
// preselected occurrence via the deep link from the occurrences screen, in
// which case the report renders immediately.
type ReportsModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter

	loading bool
	items   []models.Occurrence
	idx     int
	errMsg  string

	selected *models.Occurrence
}

func NewReportsModel(ctx context.Context, backend adapter.BackendAdapter) *ReportsModel {
	return &ReportsModel{ctx: ctx, backend: backend}
}

// Init implements [tea.Model].
func (m *ReportsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.selected = nil
	return m.cmdLoad()
}

// Update implements [tea.Model].
func (m *ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportContextMsg:
		occ := msg.occurrence
		m.selected = &occ
		return m, nil

	case occurrencesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.selected != nil {
			if msg.String() == "esc" || msg.String() == "backspace" {
				m.selected = nil
			}
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.idx > 0 {
				m.idx--
			}
		case "down", "j":
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case "r":
			m.loading = true
			return m, m.cmdLoad()
		case "enter":
			if len(m.items) > 0 && m.idx < len(m.items) {
				occ := m.items[m.idx]
				m.selected = &occ
			}
		}
	}
	return m, nil
}

// View implements [tea.Model].
func (m *ReportsModel) View() string {
	if m.selected != nil {
		return m.reportView(*m.selected)
	}

	var b strings.Builder
	if m.loading && len(m.items) == 0 {
		b.WriteString("Carregando...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Nenhuma ocorrência para relatar.\n")
	} else {
		b.WriteString("Selecione a ocorrência:\n\n")
		for i, occ := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-10s %-20s %s %s\n",
				cursor, occ.Protocol, fitText(occ.Equipment, 20),
				formatDate(occ.Timestamp), urgencyLabel(occ.Urgency)))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("RELATÓRIOS", strings.TrimRight(b.String(), "\n"),
		"enter: gerar relatório │ r: atualizar │ ↑↓: navegar")
}

func (m *ReportsModel) reportView(occ models.Occurrence) string {
	var b strings.Builder
	b.WriteString("RELATÓRIO DE OCORRÊNCIA\n")
	b.WriteString(uiDivider + "\n\n")
	b.WriteString(fmt.Sprintf("%-14s %s\n", "Protocolo:", occ.Protocol))
	b.WriteString(fmt.Sprintf("%-14s %s\n", "Data/Hora:", formatDateFull(occ.Timestamp)))
	b.WriteString(fmt.Sprintf("%-14s %s\n", "Equipamento:", valueOrDash(occ.Equipment)))
	b.WriteString(fmt.Sprintf("%-14s %s\n", "Tipo:", valueOrDash(occ.OccurrenceType)))
	b.WriteString(fmt.Sprintf("%-14s %s\n", "Urgência:", urgencyLabel(occ.Urgency)))
	b.WriteString(fmt.Sprintf("%-14s %s\n", "Situação:", occurrenceStatusLabel(occ.Status)))
	b.WriteString(fmt.Sprintf("%-14s %s\n", "Operador:", valueOrDash(occ.OperatorName)))
	b.WriteString("\nDescrição:\n")
	for _, line := range wrapText(occ.Description, 60) {
		b.WriteString("  " + line + "\n")
	}
	if occ.PhotoBase64 != nil {
		b.WriteString("\n(registro fotográfico anexado no backend)\n")
	}

	return renderPage("RELATÓRIOS — "+occ.Protocol, strings.TrimRight(b.String(), "\n"),
		"esc: voltar à lista")
}

// wrapText breaks s into lines of at most width characters on word
// boundaries.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{"-"}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func (m *ReportsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		items, err := backend.Occurrences(ctx)
		return occurrencesLoadedMsg{items: items, err: err}
	}
}
