package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/models"
)

// dashboard form rows: six numeric inputs, the shift selector, then notes.
const (
	dashFieldPh = iota
	dashFieldBrix
	dashFieldPol
	dashFieldTurbidity
	dashFieldTemperature
	dashFieldFlow
	dashFieldShift
	dashFieldNotes
	dashFieldCount
)

// DashboardModel shows the latest juice treatment readings with their
// operating-range status, the rolling averages, and a submission form for
// new readings. While the screen is open it refreshes on a timer; a tick
// that arrives after the user left the screen is simply never re-armed.
type DashboardModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter
	refresh time.Duration

	loading  bool
	readings []models.ParameterReading
	stats    models.ParameterStats
	errMsg   string
	status   string

	formOpen   bool
	submitting bool
	inputs     []textinput.Model
	focus      int
	shift      int
}

// NewDashboardModel creates the dashboard. refresh is the auto-refresh
// interval while the screen is focused.
func NewDashboardModel(ctx context.Context, backend adapter.BackendAdapter, refresh time.Duration) *DashboardModel {
	labels := []string{"pH", "Brix", "Pol", "Turbidez", "Temperatura", "Vazão"}
	inputs := make([]textinput.Model, 0, dashFieldCount-1)
	for _, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 10
		in.Width = 12
		inputs = append(inputs, in)
	}
	notes := textinput.New()
	notes.Placeholder = "observações"
	notes.CharLimit = 200
	notes.Width = 40
	inputs = append(inputs, notes)

	return &DashboardModel{ctx: ctx, backend: backend, refresh: refresh, inputs: inputs}
}

// Init implements [tea.Model].
func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.cmdLoad(), m.cmdTick())
}

// Update implements [tea.Model].
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.readings = msg.readings
		m.stats = msg.stats
		return m, nil

	case readingSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.closeForm()
		m.status = "Leitura registrada"
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case dashboardTickMsg:
		// Re-arm only while this screen is receiving messages, i.e. while
		// it is the active page.
		return m, tea.Batch(m.cmdLoad(), m.cmdTick())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.formOpen {
		var cmd tea.Cmd
		m.inputs[m.inputIndex()], cmd = m.inputs[m.inputIndex()].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.formOpen {
		switch key.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "tab", "down":
			m.focusField((m.focus + 1) % dashFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focus - 1 + dashFieldCount) % dashFieldCount)
			return m, nil
		case "left", "right":
			if m.focus == dashFieldShift {
				m.shift = (m.shift + 1) % len(models.Shifts)
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submitReading()
		}

		if m.focus == dashFieldShift {
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
		m.focusField(dashFieldPh)
		return m, textinput.Blink
	case "r":
		m.loading = true
		return m, m.cmdLoad()
	}
	return m, nil
}

func (m *DashboardModel) submitReading() (tea.Model, tea.Cmd) {
	values := make([]float64, 6)
	labels := []string{"pH", "Brix", "Pol", "Turbidez", "Temperatura", "Vazão"}
	for i := 0; i < 6; i++ {
		raw := strings.TrimSpace(m.inputs[i].Value())
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			m.errMsg = labels[i] + " inválido"
			return m, nil
		}
		values[i] = v
	}

	req := models.NewParameterReading{
		Ph:          values[0],
		Brix:        values[1],
		Pol:         values[2],
		Turbidity:   values[3],
		Temperature: values[4],
		Flow:        values[5],
		Shift:       models.Shifts[m.shift],
		Notes:       strings.TrimSpace(m.inputs[6].Value()),
	}

	m.errMsg = ""
	m.submitting = true
	ctx := m.ctx
	backend := m.backend
	return m, func() tea.Msg {
		_, err := backend.CreateParameter(ctx, req)
		return readingSavedMsg{err: err}
	}
}

// View implements [tea.Model].
func (m *DashboardModel) View() string {
	if m.formOpen {
		return m.formView()
	}

	var b strings.Builder
	if m.loading && len(m.readings) == 0 {
		b.WriteString("Carregando...\n")
	} else if len(m.readings) == 0 {
		b.WriteString("Nenhuma leitura registrada.\n")
	} else {
		latest := m.readings[0]
		b.WriteString(m.cardsView(latest))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Médias (%d leituras): pH %.2f │ Brix %.1f │ Pol %.1f │ Turb %.0f │ Temp %.1f │ Vazão %.0f\n",
			m.stats.Count, m.stats.AvgPh, m.stats.AvgBrix, m.stats.AvgPol,
			m.stats.AvgTurbidity, m.stats.AvgTemperature, m.stats.AvgFlow))
		b.WriteString("\n")
		b.WriteString("Últimas leituras:\n")
		for i, r := range m.readings {
			if i >= 8 {
				break
			}
			b.WriteString(fmt.Sprintf("  %s  T%s  pH %.2f  Brix %.1f  Turb %.0f  %s\n",
				formatDate(r.Timestamp), r.Shift, r.Ph, r.Brix, r.Turbidity, fitText(r.OperatorName, 18)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusOKStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("DASHBOARD — TRATAMENTO DE CALDO", strings.TrimRight(b.String(), "\n"),
		"n: nova leitura │ r: atualizar")
}

func (m *DashboardModel) cardsView(latest models.ParameterReading) string {
	type card struct {
		label string
		name  string
		value float64
		unit  string
	}
	cards := []card{
		{"pH", "ph", latest.Ph, ""},
		{"Brix", "brix", latest.Brix, "°Bx"},
		{"Pol", "pol", latest.Pol, "%"},
		{"Turbidez", "turbidity", latest.Turbidity, "NTU"},
		{"Temperatura", "temperature", latest.Temperature, "°C"},
		{"Vazão", "flow", latest.Flow, "m³/h"},
	}

	var b strings.Builder
	for _, c := range cards {
		status := models.StatusFor(c.name, c.value)
		b.WriteString(fmt.Sprintf("%-12s %8.2f %-5s %s\n", c.label, c.value, c.unit, statusBadge(status)))
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("turno %s · %s · %s",
		latest.Shift, latest.OperatorName, formatDateFull(latest.Timestamp))))
	b.WriteString("\n")
	return b.String()
}

func (m *DashboardModel) formView() string {
	labels := []string{"pH", "Brix", "Pol", "Turbidez", "Temperatura", "Vazão"}

	var b strings.Builder
	for i, label := range labels {
		marker := "  "
		if m.focus == i {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-12s [%s]\n", marker, label, m.inputs[i].View()))
	}

	marker := "  "
	if m.focus == dashFieldShift {
		marker = "> "
	}
	b.WriteString(fmt.Sprintf("%sTurno        ◀ %s ▶\n", marker, models.Shifts[m.shift]))

	marker = "  "
	if m.focus == dashFieldNotes {
		marker = "> "
	}
	b.WriteString(fmt.Sprintf("%sObservações  [%s]\n", marker, m.inputs[6].View()))

	if m.submitting {
		b.WriteString("\n[Registrando...]")
	} else {
		b.WriteString("\n[Registrar]")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("NOVA LEITURA", strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ ◀▶: turno │ enter: registrar │ esc: cancelar")
}

func (m *DashboardModel) inputIndex() int {
	if m.focus == dashFieldNotes {
		return 6
	}
	return m.focus
}

func (m *DashboardModel) focusField(idx int) {
	if m.focus != dashFieldShift {
		m.inputs[m.inputIndex()].Blur()
	}
	m.focus = idx
	if m.focus != dashFieldShift {
		m.inputs[m.inputIndex()].Focus()
	}
}

func (m *DashboardModel) closeForm() {
	m.formOpen = false
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.shift = 0
	m.focus = dashFieldPh
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		readings, err := backend.LatestParameters(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		stats, err := backend.ParameterStats(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{readings: readings, stats: stats}
	}
}

func (m *DashboardModel) cmdTick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return dashboardTickMsg(t)
	})
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
