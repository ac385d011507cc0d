package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/models"
)

const (
	doseFieldChemical = iota
	doseFieldQuantity
	doseFieldUnit
	doseFieldCost
	doseFieldShift
	doseFieldNotes
	doseFieldCount
)

// ChemicalsModel tracks chemical dosage: the application log, per-chemical
// consumption totals and the daily cost series, plus the entry form.
type ChemicalsModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter

	loading bool
	items   []models.Dosage
	stats   models.DosageStats
	daily   []models.DailyDosage
	errMsg  string
	status  string

	formOpen   bool
	submitting bool
	inputs     []textinput.Model
	focus      int
	shift      int
}

func NewChemicalsModel(ctx context.Context, backend adapter.BackendAdapter) *ChemicalsModel {
	specs := []struct {
		placeholder string
		limit       int
		width       int
	}{
		{"produto químico", 40, 30},
		{"quantidade", 10, 12},
		{"unidade (kg, L)", 10, 12},
		{"custo unitário", 10, 12},
		{"observações", 200, 40},
	}

	inputs := make([]textinput.Model, 0, len(specs))
	for _, s := range specs {
		in := textinput.New()
		in.Placeholder = s.placeholder
		in.CharLimit = s.limit
		in.Width = s.width
		inputs = append(inputs, in)
	}

	return &ChemicalsModel{ctx: ctx, backend: backend, inputs: inputs}
}

// Init implements [tea.Model].
func (m *ChemicalsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

// Update implements [tea.Model].
func (m *ChemicalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dosagesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.stats = msg.stats
		m.daily = msg.daily
		return m, nil

	case dosageSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.closeForm()
		m.status = "Dosagem registrada"
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.formOpen && m.focus != doseFieldShift {
		var cmd tea.Cmd
		m.inputs[m.inputIndex()], cmd = m.inputs[m.inputIndex()].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ChemicalsModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.formOpen {
		switch key.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "tab", "down":
			m.focusField((m.focus + 1) % doseFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focus - 1 + doseFieldCount) % doseFieldCount)
			return m, nil
		case "left", "right":
			if m.focus == doseFieldShift {
				m.shift = (m.shift + 1) % len(models.Shifts)
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}

		if m.focus == doseFieldShift {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.inputIndex()], cmd = m.inputs[m.inputIndex()].Update(key)
		return m, cmd
	}

	switch key.String() {
	case "n":
		m.formOpen = true
		m.errMsg = ""
		m.focusField(doseFieldChemical)
		return m, textinput.Blink
	case "r":
		m.loading = true
		return m, m.cmdLoad()
	}
	return m, nil
}

func (m *ChemicalsModel) submit() (tea.Model, tea.Cmd) {
	chemical := strings.TrimSpace(m.inputs[0].Value())
	unit := strings.TrimSpace(m.inputs[2].Value())
	if chemical == "" || unit == "" {
		m.errMsg = "Produto e unidade são obrigatórios"
		return m, nil
	}

	quantity, err := parseDecimal(m.inputs[1].Value())
	if err != nil || quantity <= 0 {
		m.errMsg = "Quantidade inválida"
		return m, nil
	}
	cost, err := parseDecimal(m.inputs[3].Value())
	if err != nil || cost < 0 {
		m.errMsg = "Custo unitário inválido"
		return m, nil
	}

	req := models.NewDosage{
		ChemicalType: chemical,
		Quantity:     quantity,
		Unit:         unit,
		CostPerUnit:  cost,
		Shift:        models.Shifts[m.shift],
		Notes:        strings.TrimSpace(m.inputs[4].Value()),
	}

	m.errMsg = ""
	m.submitting = true
	ctx := m.ctx
	backend := m.backend
	return m, func() tea.Msg {
		_, err := backend.CreateDosage(ctx, req)
		return dosageSavedMsg{err: err}
	}
}

// View implements [tea.Model].
func (m *ChemicalsModel) View() string {
	if m.formOpen {
		return m.formView()
	}

	var b strings.Builder
	if m.loading && len(m.items) == 0 {
		b.WriteString("Carregando...\n")
	} else {
		if len(m.stats) > 0 {
			b.WriteString("Consumo por produto:\n")
			for _, name := range sortedChemicals(m.stats) {
				t := m.stats[name]
				b.WriteString(fmt.Sprintf("  %-24s %8.1f  %s  (%d aplicações)\n",
					fitText(name, 24), t.TotalQuantity, formatCurrency(t.TotalCost), t.Count))
			}
			b.WriteString("\n")
		}

		if len(m.daily) > 0 {
			b.WriteString("Últimos dias:\n")
			for i, d := range m.daily {
				if i >= 7 {
					break
				}
				b.WriteString(fmt.Sprintf("  %-12s %8.1f  %s\n", d.Date, d.TotalQuantity, formatCurrency(d.TotalCost)))
			}
			b.WriteString("\n")
		}

		if len(m.items) == 0 {
			b.WriteString("Nenhuma dosagem registrada.\n")
		} else {
			b.WriteString("Aplicações recentes:\n")
			for i, d := range m.items {
				if i >= 8 {
					break
				}
				b.WriteString(fmt.Sprintf("  %s  T%s  %-20s %6.1f %-4s %s  %s\n",
					formatDate(d.Timestamp), d.Shift, fitText(d.ChemicalType, 20),
					d.Quantity, d.Unit, formatCurrency(d.TotalCost), fitText(d.OperatorName, 16)))
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusOKStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("DOSAGEM QUÍMICA", strings.TrimRight(b.String(), "\n"),
		"n: nova dosagem │ r: atualizar")
}

func (m *ChemicalsModel) formView() string {
	rows := []struct {
		label string
		field int
	}{
		{"Produto", doseFieldChemical},
		{"Quantidade", doseFieldQuantity},
		{"Unidade", doseFieldUnit},
		{"Custo unit.", doseFieldCost},
		{"Turno", doseFieldShift},
		{"Observações", doseFieldNotes},
	}

	var b strings.Builder
	for _, row := range rows {
		marker := "  "
		if m.focus == row.field {
			marker = "> "
		}
		if row.field == doseFieldShift {
			b.WriteString(fmt.Sprintf("%s%-12s ◀ %s ▶\n", marker, row.label, models.Shifts[m.shift]))
			continue
		}
		b.WriteString(fmt.Sprintf("%s%-12s [%s]\n", marker, row.label, m.inputs[m.fieldInput(row.field)].View()))
	}

	if m.submitting {
		b.WriteString("\n[Registrando...]")
	} else {
		b.WriteString("\n[Registrar]")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("NOVA DOSAGEM", strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ ◀▶: turno │ enter: registrar │ esc: cancelar")
}

func (m *ChemicalsModel) fieldInput(field int) int {
	switch field {
	case doseFieldChemical:
		return 0
	case doseFieldQuantity:
		return 1
	case doseFieldUnit:
		return 2
	case doseFieldCost:
		return 3
	default:
		return 4
	}
}

func (m *ChemicalsModel) inputIndex() int {
	return m.fieldInput(m.focus)
}

func (m *ChemicalsModel) focusField(idx int) {
	if m.focus != doseFieldShift {
		m.inputs[m.inputIndex()].Blur()
	}
	m.focus = idx
	if m.focus != doseFieldShift {
		m.inputs[m.inputIndex()].Focus()
	}
}

func (m *ChemicalsModel) closeForm() {
	m.formOpen = false
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.shift = 0
	m.focus = doseFieldChemical
}

func (m *ChemicalsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		items, err := backend.Dosages(ctx)
		if err != nil {
			return dosagesLoadedMsg{err: err}
		}
		stats, err := backend.DosageStats(ctx)
		if err != nil {
			return dosagesLoadedMsg{err: err}
		}
		daily, err := backend.DailyDosages(ctx)
		if err != nil {
			return dosagesLoadedMsg{err: err}
		}
		return dosagesLoadedMsg{items: items, stats: stats, daily: daily}
	}
}

func sortedChemicals(stats models.DosageStats) []string {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseDecimal accepts the decimal comma operators type on pt-BR keyboards.
func parseDecimal(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
}
