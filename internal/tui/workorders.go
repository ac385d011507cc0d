package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/models"
)

const (
	woFieldTitle = iota
	woFieldDescription
	woFieldEquipment
	woFieldPriority
	woFieldAssignee
	woFieldDueDate
	woFieldCount
)

// statusFilters is the cycle order of the 'f' key; the empty string means
// no filter.
var statusFilters = []string{"", models.WorkOrderPending, models.WorkOrderInProgress, models.WorkOrderCompleted}

// WorkOrdersModel manages maintenance work orders: the filtered list with
// the status summary, order creation with an assignee picker, and the
// start/complete lifecycle actions.
type WorkOrdersModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter

	loading   bool
	items     []models.WorkOrder
	stats     models.WorkOrderStats
	operators []models.OperatorRef
	idx       int
	filter    int
	errMsg    string
	status    string

	formOpen   bool
	submitting bool
	inputs     []textinput.Model
	focus      int
	priority   int
	assignee   int

	completing bool
	notesInput textinput.Model
}

func NewWorkOrdersModel(ctx context.Context, backend adapter.BackendAdapter) *WorkOrdersModel {
	specs := []struct {
		placeholder string
		limit       int
		width       int
	}{
		{"título", 80, 40},
		{"descrição", 300, 50},
		{"equipamento", 60, 30},
		{"prazo (AAAA-MM-DD)", 10, 14},
	}

	inputs := make([]textinput.Model, 0, len(specs))
	for _, s := range specs {
		in := textinput.New()
		in.Placeholder = s.placeholder
		in.CharLimit = s.limit
		in.Width = s.width
		inputs = append(inputs, in)
	}

	notes := textinput.New()
	notes.Placeholder = "notas de conclusão"
	notes.CharLimit = 300
	notes.Width = 50

	return &WorkOrdersModel{ctx: ctx, backend: backend, inputs: inputs, notesInput: notes}
}

// Init implements [tea.Model].
func (m *WorkOrdersModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

// Update implements [tea.Model].
func (m *WorkOrdersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workOrdersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.stats = msg.stats
		if msg.operators != nil {
			m.operators = msg.operators
		}
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil

	case workOrderActionMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.closeForm()
		m.closeCompletePrompt()
		m.status = "Ordem de serviço atualizada"
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.completing {
		var cmd tea.Cmd
		m.notesInput, cmd = m.notesInput.Update(msg)
		return m, cmd
	}
	if m.formOpen && m.hasInput(m.focus) {
		var cmd tea.Cmd
		m.inputs[m.inputIndex()], cmd = m.inputs[m.inputIndex()].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *WorkOrdersModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.completing {
		switch key.String() {
		case "esc":
			m.closeCompletePrompt()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			if wo, ok := m.current(); ok {
				m.submitting = true
				return m, m.cmdComplete(wo.ID, strings.TrimSpace(m.notesInput.Value()))
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.notesInput, cmd = m.notesInput.Update(key)
		return m, cmd
	}

	if m.formOpen {
		switch key.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "tab", "down":
			m.focusField((m.focus + 1) % woFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focus - 1 + woFieldCount) % woFieldCount)
			return m, nil
		case "left", "right":
			switch m.focus {
			case woFieldPriority:
				m.priority = (m.priority + 1) % len(models.Priorities)
				return m, nil
			case woFieldAssignee:
				if len(m.operators) > 0 {
					m.assignee = (m.assignee + 1) % len(m.operators)
				}
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}

		if !m.hasInput(m.focus) {
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
	case "f":
		m.filter = (m.filter + 1) % len(statusFilters)
		m.loading = true
		m.idx = 0
		return m, m.cmdLoad()
	case "n":
		m.formOpen = true
		m.errMsg = ""
		m.focusField(woFieldTitle)
		return m, textinput.Blink
	case "s":
		if wo, ok := m.current(); ok && wo.Status == models.WorkOrderPending {
			m.submitting = true
			return m, m.cmdStart(wo.ID)
		}
	case "c":
		if wo, ok := m.current(); ok && wo.Status == models.WorkOrderInProgress {
			m.completing = true
			m.errMsg = ""
			m.notesInput.SetValue("")
			m.notesInput.Focus()
			return m, textinput.Blink
		}
	case "r":
		m.loading = true
		return m, m.cmdLoad()
	}
	return m, nil
}

func (m *WorkOrdersModel) current() (models.WorkOrder, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.WorkOrder{}, false
	}
	return m.items[m.idx], true
}

func (m *WorkOrdersModel) submit() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.inputs[0].Value())
	description := strings.TrimSpace(m.inputs[1].Value())
	equipment := strings.TrimSpace(m.inputs[2].Value())
	dueRaw := strings.TrimSpace(m.inputs[3].Value())

	if title == "" || equipment == "" {
		m.errMsg = "Título e equipamento são obrigatórios"
		return m, nil
	}
	if len(m.operators) == 0 {
		m.errMsg = "Nenhum operador disponível para atribuição"
		return m, nil
	}
	if dueRaw != "" {
		if _, err := time.Parse("2006-01-02", dueRaw); err != nil {
			m.errMsg = "Prazo inválido, use AAAA-MM-DD"
			return m, nil
		}
	}

	req := models.NewWorkOrder{
		Title:       title,
		Description: description,
		Equipment:   equipment,
		Priority:    models.Priorities[m.priority],
		AssignedTo:  m.operators[m.assignee].ID,
		DueDate:     dueRaw,
	}

	m.errMsg = ""
	m.submitting = true
	ctx := m.ctx
	backend := m.backend
	return m, func() tea.Msg {
		_, err := backend.CreateWorkOrder(ctx, req)
		return workOrderActionMsg{err: err}
	}
}

// View implements [tea.Model].
func (m *WorkOrdersModel) View() string {
	if m.formOpen {
		return m.formView()
	}
	if m.completing {
		return m.completeView()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total %d │ Pendentes %d │ Em execução %d │ Concluídas %d\n",
		m.stats.Total, m.stats.Pending, m.stats.InProgress, m.stats.Completed))
	b.WriteString("Filtro: " + m.filterLabel() + "\n\n")

	if m.loading && len(m.items) == 0 {
		b.WriteString("Carregando...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Nenhuma ordem de serviço.\n")
	} else {
		for i, wo := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-10s %-26s %s %-14s %s\n",
				cursor, wo.OSNumber, fitText(wo.Title, 26), priorityLabel(wo.Priority),
				workOrderStatusLabel(wo.Status), fitText(wo.AssignedToName, 18)))
		}

		if wo, ok := m.current(); ok {
			b.WriteString("\n")
			detail := fmt.Sprintf("%s · aberta por %s", valueOrDash(wo.Equipment), wo.CreatedByName)
			if wo.DueDate != nil {
				detail += " · prazo " + wo.DueDate.Format("02/01/2006")
			}
			if wo.CompletionNotes != "" {
				detail += " · " + fitText(wo.CompletionNotes, 40)
			}
			b.WriteString(helpStyle.Render(detail))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusOKStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("ORDENS DE SERVIÇO", strings.TrimRight(b.String(), "\n"),
		"n: nova │ s: iniciar │ c: concluir │ f: filtro │ r: atualizar")
}

func (m *WorkOrdersModel) filterLabel() string {
	if statusFilters[m.filter] == "" {
		return "todas"
	}
	return workOrderStatusLabel(statusFilters[m.filter])
}

func (m *WorkOrdersModel) formView() string {
	rows := []struct {
		label string
		field int
	}{
		{"Título", woFieldTitle},
		{"Descrição", woFieldDescription},
		{"Equipamento", woFieldEquipment},
		{"Prioridade", woFieldPriority},
		{"Responsável", woFieldAssignee},
		{"Prazo", woFieldDueDate},
	}

	var b strings.Builder
	for _, row := range rows {
		marker := "  "
		if m.focus == row.field {
			marker = "> "
		}
		switch row.field {
		case woFieldPriority:
			b.WriteString(fmt.Sprintf("%s%-12s ◀ %s ▶\n", marker, row.label, priorityLabel(models.Priorities[m.priority])))
		case woFieldAssignee:
			b.WriteString(fmt.Sprintf("%s%-12s ◀ %s ▶\n", marker, row.label, m.assigneeLabel()))
		default:
			b.WriteString(fmt.Sprintf("%s%-12s [%s]\n", marker, row.label, m.inputs[m.fieldInput(row.field)].View()))
		}
	}

	if m.submitting {
		b.WriteString("\n[Criando...]")
	} else {
		b.WriteString("\n[Criar ordem]")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("NOVA ORDEM DE SERVIÇO", strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ ◀▶: prioridade/responsável │ enter: criar │ esc: cancelar")
}

func (m *WorkOrdersModel) completeView() string {
	wo, _ := m.current()

	var b strings.Builder
	b.WriteString("Concluir " + wo.OSNumber + " — " + fitText(wo.Title, 40) + "\n\n")
	b.WriteString("Notas: [" + m.notesInput.View() + "]\n")
	if m.submitting {
		b.WriteString("\n[Concluindo...]")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("CONCLUIR ORDEM", strings.TrimRight(b.String(), "\n"),
		"enter: concluir │ esc: cancelar")
}

func (m *WorkOrdersModel) assigneeLabel() string {
	if len(m.operators) == 0 {
		return "nenhum operador"
	}
	op := m.operators[m.assignee]
	return op.Name + " (" + op.Matricula + ")"
}

func (m *WorkOrdersModel) hasInput(field int) bool {
	return field != woFieldPriority && field != woFieldAssignee
}

func (m *WorkOrdersModel) fieldInput(field int) int {
	switch field {
	case woFieldTitle:
		return 0
	case woFieldDescription:
		return 1
	case woFieldEquipment:
		return 2
	default:
		return 3
	}
}

func (m *WorkOrdersModel) inputIndex() int {
	return m.fieldInput(m.focus)
}

func (m *WorkOrdersModel) focusField(idx int) {
	if m.hasInput(m.focus) {
		m.inputs[m.inputIndex()].Blur()
	}
	m.focus = idx
	if m.hasInput(m.focus) {
		m.inputs[m.inputIndex()].Focus()
	}
}

func (m *WorkOrdersModel) closeForm() {
	m.formOpen = false
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.priority = 0
	m.assignee = 0
	m.focus = woFieldTitle
}

func (m *WorkOrdersModel) closeCompletePrompt() {
	m.completing = false
	m.notesInput.SetValue("")
	m.notesInput.Blur()
}

func (m *WorkOrdersModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	backend := m.backend
	filter := statusFilters[m.filter]

	return func() tea.Msg {
		items, err := backend.WorkOrders(ctx, filter)
		if err != nil {
			return workOrdersLoadedMsg{err: err}
		}
		stats, err := backend.WorkOrderStats(ctx)
		if err != nil {
			return workOrdersLoadedMsg{err: err}
		}
		operators, err := backend.Operators(ctx)
		if err != nil {
			return workOrdersLoadedMsg{err: err}
		}
		return workOrdersLoadedMsg{items: items, stats: stats, operators: operators}
	}
}

func (m *WorkOrdersModel) cmdStart(id string) tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		_, err := backend.StartWorkOrder(ctx, id)
		return workOrderActionMsg{err: err}
	}
}

func (m *WorkOrdersModel) cmdComplete(id, notes string) tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		_, err := backend.CompleteWorkOrder(ctx, id, notes)
		return workOrderActionMsg{err: err}
	}
}
