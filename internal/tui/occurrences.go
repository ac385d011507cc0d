package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/access"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/models"
)

const (
	occFieldEquipment = iota
	occFieldType
	occFieldUrgency
	occFieldDescription
	occFieldCount
)

// OccurrencesModel lists operational incidents and registers new ones. The
// selected occurrence can be sent to the reports screen with 'r', which is
// the console's one cross-screen deep link.
type OccurrencesModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter

	loading bool
	items   []models.Occurrence
	idx     int
	errMsg  string
	status  string

	formOpen   bool
	submitting bool
	inputs     []textinput.Model
	focus      int
	urgency    int
}

func NewOccurrencesModel(ctx context.Context, backend adapter.BackendAdapter) *OccurrencesModel {
	equipment := textinput.New()
	equipment.Placeholder = "equipamento"
	equipment.CharLimit = 60
	equipment.Width = 40

	occType := textinput.New()
	occType.Placeholder = "tipo de ocorrência"
	occType.CharLimit = 60
	occType.Width = 40

	description := textinput.New()
	description.Placeholder = "descrição"
	description.CharLimit = 300
	description.Width = 60

	return &OccurrencesModel{
		ctx:     ctx,
		backend: backend,
		inputs:  []textinput.Model{equipment, occType, description},
	}
}

// Init implements [tea.Model].
func (m *OccurrencesModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

// Update implements [tea.Model].
func (m *OccurrencesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
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

	case occurrenceSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.closeForm()
		m.status = "Ocorrência registrada: " + msg.created.Protocol
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.formOpen && m.focus != occFieldUrgency {
		var cmd tea.Cmd
		m.inputs[m.inputIndex()], cmd = m.inputs[m.inputIndex()].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *OccurrencesModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.formOpen {
		switch key.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "tab", "down":
			m.focusField((m.focus + 1) % occFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focus - 1 + occFieldCount) % occFieldCount)
			return m, nil
		case "left", "right":
			if m.focus == occFieldUrgency {
				m.urgency = (m.urgency + 1) % len(models.Urgencies)
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}

		if m.focus == occFieldUrgency {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.inputIndex()], cmd = m.inputs[m.inputIndex()].Update(key)
		return m, cmd
	}

	switch key.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "n":
		m.formOpen = true
		m.errMsg = ""
		m.focusField(occFieldEquipment)
		return m, textinput.Blink
	case "r":
		if occ, ok := m.current(); ok {
			return m, func() tea.Msg {
				return NavigateTo{Page: access.PageReports, Payload: reportContextMsg{occurrence: occ}}
			}
		}
	}
	return m, nil
}

func (m *OccurrencesModel) current() (models.Occurrence, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Occurrence{}, false
	}
	return m.items[m.idx], true
}

func (m *OccurrencesModel) submit() (tea.Model, tea.Cmd) {
	equipment := strings.TrimSpace(m.inputs[0].Value())
	occType := strings.TrimSpace(m.inputs[1].Value())
	description := strings.TrimSpace(m.inputs[2].Value())

	if equipment == "" || occType == "" || description == "" {
		m.errMsg = "Equipamento, tipo e descrição são obrigatórios"
		return m, nil
	}

	req := models.NewOccurrence{
		Equipment:      equipment,
		OccurrenceType: occType,
		Urgency:        models.Urgencies[m.urgency],
		Description:    description,
	}

	m.errMsg = ""
	m.submitting = true
	ctx := m.ctx
	backend := m.backend
	return m, func() tea.Msg {
		created, err := backend.CreateOccurrence(ctx, req)
		return occurrenceSavedMsg{created: created, err: err}
	}
}

// View implements [tea.Model].
func (m *OccurrencesModel) View() string {
	if m.formOpen {
		return m.formView()
	}

	var b strings.Builder
	if m.loading && len(m.items) == 0 {
		b.WriteString("Carregando...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Nenhuma ocorrência registrada.\n")
	} else {
		for i, occ := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-10s %-20s %-16s %s %s\n",
				cursor, occ.Protocol, fitText(occ.Equipment, 20), fitText(occ.OccurrenceType, 16),
				urgencyLabel(occ.Urgency), occurrenceStatusLabel(occ.Status)))
		}

		if occ, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(fmt.Sprintf("%s · %s · %s",
				occ.OperatorName, formatDateFull(occ.Timestamp), fitText(occ.Description, 60))))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusOKStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("OCORRÊNCIAS", strings.TrimRight(b.String(), "\n"),
		"n: nova │ r: relatório │ ↑↓: navegar")
}

func (m *OccurrencesModel) formView() string {
	rows := []struct {
		label string
		field int
	}{
		{"Equipamento", occFieldEquipment},
		{"Tipo", occFieldType},
		{"Urgência", occFieldUrgency},
		{"Descrição", occFieldDescription},
	}

	var b strings.Builder
	for _, row := range rows {
		marker := "  "
		if m.focus == row.field {
			marker = "> "
		}
		if row.field == occFieldUrgency {
			b.WriteString(fmt.Sprintf("%s%-12s ◀ %s ▶\n", marker, row.label, urgencyLabel(models.Urgencies[m.urgency])))
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

	return renderPage("NOVA OCORRÊNCIA", strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ ◀▶: urgência │ enter: registrar │ esc: cancelar")
}

func (m *OccurrencesModel) fieldInput(field int) int {
	switch field {
	case occFieldEquipment:
		return 0
	case occFieldType:
		return 1
	default:
		return 2
	}
}

func (m *OccurrencesModel) inputIndex() int {
	return m.fieldInput(m.focus)
}

func (m *OccurrencesModel) focusField(idx int) {
	if m.focus != occFieldUrgency {
		m.inputs[m.inputIndex()].Blur()
	}
	m.focus = idx
	if m.focus != occFieldUrgency {
		m.inputs[m.inputIndex()].Focus()
	}
}

func (m *OccurrencesModel) closeForm() {
	m.formOpen = false
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.urgency = 0
	m.focus = occFieldEquipment
}

func (m *OccurrencesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		items, err := backend.Occurrences(ctx)
		return occurrencesLoadedMsg{items: items, err: err}
	}
}
