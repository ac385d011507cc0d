package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/models"
)

// entityFilters is the cycle order of the 'f' key; empty means all types.
var entityFilters = []string{"", models.EntityOccurrence, models.EntityParameter, models.EntityDosage}

// HistoryModel is the audit trail: every occurrence, parameter reading and
// dosage entry in one chronological list. The entity-type filter goes to
// the backend; the free-text search is applied on the loaded page.
type HistoryModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter

	loading bool
	items   []models.AuditLog
	filter  int
	errMsg  string

	searching   bool
	searchInput textinput.Model
	query       string
}

func NewHistoryModel(ctx context.Context, backend adapter.BackendAdapter) *HistoryModel {
	search := textinput.New()
	search.Placeholder = "buscar"
	search.CharLimit = 60
	search.Width = 30

	return &HistoryModel{ctx: ctx, backend: backend, searchInput: search}
}

// Init implements [tea.Model].
func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

// Update implements [tea.Model].
func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case auditLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.query = strings.TrimSpace(m.searchInput.Value())
				m.searchInput.Blur()
				return m, nil
			case "esc":
				m.searching = false
				m.query = ""
				m.searchInput.SetValue("")
				m.searchInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "f":
			m.filter = (m.filter + 1) % len(entityFilters)
			m.loading = true
			return m, m.cmdLoad()
		case "/":
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink
		case "esc":
			if m.query != "" {
				m.query = ""
				m.searchInput.SetValue("")
			}
			return m, nil
		case "r":
			m.loading = true
			return m, m.cmdLoad()
		}
	}
	return m, nil
}

// View implements [tea.Model].
func (m *HistoryModel) View() string {
	var b strings.Builder
	b.WriteString("Filtro: " + m.filterLabel())
	if m.searching {
		b.WriteString("   Busca: [" + m.searchInput.View() + "]")
	} else if m.query != "" {
		b.WriteString("   Busca: " + m.query + " (esc limpa)")
	}
	b.WriteString("\n\n")

	visible := m.visibleItems()
	if m.loading && len(m.items) == 0 {
		b.WriteString("Carregando...\n")
	} else if len(visible) == 0 {
		b.WriteString("Nenhum registro encontrado.\n")
	} else {
		for i, log := range visible {
			if i >= 20 {
				b.WriteString(helpStyle.Render(fmt.Sprintf("... e mais %d registros", len(visible)-20)))
				b.WriteString("\n")
				break
			}
			b.WriteString("  " + m.entryLine(log) + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("HISTÓRICO", strings.TrimRight(b.String(), "\n"),
		"f: tipo │ /: buscar │ r: atualizar")
}

func (m *HistoryModel) filterLabel() string {
	switch entityFilters[m.filter] {
	case models.EntityOccurrence:
		return "ocorrências"
	case models.EntityParameter:
		return "parâmetros"
	case models.EntityDosage:
		return "dosagens"
	default:
		return "todos"
	}
}

func (m *HistoryModel) entryLine(log models.AuditLog) string {
	prefix := fmt.Sprintf("%s  %-16s", formatDate(log.Timestamp), fitText(log.OperatorName, 16))

	switch log.EntityType {
	case models.EntityOccurrence:
		return fmt.Sprintf("%s OCORRÊNCIA %-10s %-18s %s",
			prefix, log.Protocol, fitText(log.Equipment, 18), urgencyLabel(log.Urgency))
	case models.EntityParameter:
		detail := ""
		if log.Ph != nil {
			detail += fmt.Sprintf(" pH %.2f", *log.Ph)
		}
		if log.Brix != nil {
			detail += fmt.Sprintf(" Brix %.1f", *log.Brix)
		}
		if log.Turbidity != nil {
			detail += fmt.Sprintf(" Turb %.0f", *log.Turbidity)
		}
		return prefix + " LEITURA   " + strings.TrimSpace(detail)
	case models.EntityDosage:
		detail := fitText(log.ChemicalType, 18)
		if log.Quantity != nil {
			detail += fmt.Sprintf(" %.1f %s", *log.Quantity, log.Unit)
		}
		if log.TotalCost != nil {
			detail += " " + formatCurrency(*log.TotalCost)
		}
		return prefix + " DOSAGEM   " + detail
	default:
		return prefix + " " + log.EntityType
	}
}

// visibleItems applies the free-text search over the loaded entries.
func (m *HistoryModel) visibleItems() []models.AuditLog {
	if m.query == "" {
		return m.items
	}

	q := strings.ToLower(m.query)
	var out []models.AuditLog
	for _, log := range m.items {
		haystack := strings.ToLower(strings.Join([]string{
			log.Protocol, log.Equipment, log.OperatorName, log.ChemicalType, log.Description,
		}, " "))
		if strings.Contains(haystack, q) {
			out = append(out, log)
		}
	}
	return out
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	backend := m.backend
	filter := models.AuditFilter{EntityType: entityFilters[m.filter]}

	return func() tea.Msg {
		items, err := backend.AuditLogs(ctx, filter)
		return auditLoadedMsg{items: items, err: err}
	}
}
