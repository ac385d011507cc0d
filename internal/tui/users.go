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

const (
	userFieldName = iota
	userFieldMatricula
	userFieldSector
	userFieldFunction
	userFieldPassword
	userFieldRole
	userFieldCount
)

const minPasswordLen = 6

// creatableRoles are the roles offered in the creation form.
var creatableRoles = []models.Role{models.RoleOperator, models.RoleSupervisor, models.RoleAdmin}

// UsersModel is the account management screen, reachable by supervisors and
// admins only (the router enforces it). Accounts are never deleted, only
// deactivated, so the audit history stays attributable.
type UsersModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter

	loading bool
	items   []models.User
	idx     int
	errMsg  string
	status  string

	formOpen   bool
	submitting bool
	inputs     []textinput.Model
	focus      int
	role       int

	resetting     bool
	passwordInput textinput.Model
}

func NewUsersModel(ctx context.Context, backend adapter.BackendAdapter) *UsersModel {
	specs := []struct {
		placeholder string
		limit       int
		width       int
		masked      bool
	}{
		{"nome completo", 80, 40, false},
		{"matrícula", 20, 20, false},
		{"setor", 60, 30, false},
		{"função", 60, 30, false},
		{"senha inicial", 256, 30, true},
	}

	inputs := make([]textinput.Model, 0, len(specs))
	for _, s := range specs {
		in := textinput.New()
		in.Placeholder = s.placeholder
		in.CharLimit = s.limit
		in.Width = s.width
		if s.masked {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs = append(inputs, in)
	}

	reset := textinput.New()
	reset.Placeholder = "nova senha"
	reset.CharLimit = 256
	reset.Width = 30
	reset.EchoMode = textinput.EchoPassword
	reset.EchoCharacter = '*'

	return &UsersModel{ctx: ctx, backend: backend, inputs: inputs, passwordInput: reset}
}

// Init implements [tea.Model].
func (m *UsersModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

// Update implements [tea.Model].
func (m *UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
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

	case userActionMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.closeForm()
		m.closeResetPrompt()
		m.status = "Usuário atualizado"
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.resetting {
		var cmd tea.Cmd
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		return m, cmd
	}
	if m.formOpen && m.focus != userFieldRole {
		var cmd tea.Cmd
		m.inputs[m.inputIndex()], cmd = m.inputs[m.inputIndex()].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *UsersModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.resetting {
		switch key.String() {
		case "esc":
			m.closeResetPrompt()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			password := m.passwordInput.Value()
			if len(password) < minPasswordLen {
				m.errMsg = fmt.Sprintf("Senha deve ter ao menos %d caracteres", minPasswordLen)
				return m, nil
			}
			if u, ok := m.current(); ok {
				m.errMsg = ""
				m.submitting = true
				return m, m.cmdResetPassword(u.ID, password)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.passwordInput, cmd = m.passwordInput.Update(key)
		return m, cmd
	}

	if m.formOpen {
		switch key.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "tab", "down":
			m.focusField((m.focus + 1) % userFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focus - 1 + userFieldCount) % userFieldCount)
			return m, nil
		case "left", "right":
			if m.focus == userFieldRole {
				m.role = (m.role + 1) % len(creatableRoles)
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}

		if m.focus == userFieldRole {
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
		m.focusField(userFieldName)
		return m, textinput.Blink
	case "a":
		if u, ok := m.current(); ok {
			m.submitting = true
			return m, m.cmdToggleActive(u)
		}
	case "p":
		if _, ok := m.current(); ok {
			m.resetting = true
			m.errMsg = ""
			m.passwordInput.SetValue("")
			m.passwordInput.Focus()
			return m, textinput.Blink
		}
	case "r":
		m.loading = true
		return m, m.cmdLoad()
	}
	return m, nil
}

func (m *UsersModel) current() (models.User, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.User{}, false
	}
	return m.items[m.idx], true
}

func (m *UsersModel) submit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[0].Value())
	matricula := strings.TrimSpace(m.inputs[1].Value())
	sector := strings.TrimSpace(m.inputs[2].Value())
	function := strings.TrimSpace(m.inputs[3].Value())
	password := m.inputs[4].Value()

	if name == "" || matricula == "" {
		m.errMsg = "Nome e matrícula são obrigatórios"
		return m, nil
	}
	if len(password) < minPasswordLen {
		m.errMsg = fmt.Sprintf("Senha deve ter ao menos %d caracteres", minPasswordLen)
		return m, nil
	}

	req := models.CreateUserRequest{
		Name:      name,
		Matricula: matricula,
		Sector:    sector,
		Function:  function,
		Password:  password,
		Role:      creatableRoles[m.role],
	}

	m.errMsg = ""
	m.submitting = true
	ctx := m.ctx
	backend := m.backend
	return m, func() tea.Msg {
		_, err := backend.CreateUser(ctx, req)
		return userActionMsg{err: err}
	}
}

// View implements [tea.Model].
func (m *UsersModel) View() string {
	if m.formOpen {
		return m.formView()
	}
	if m.resetting {
		return m.resetView()
	}

	var b strings.Builder
	if m.loading && len(m.items) == 0 {
		b.WriteString("Carregando...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Nenhum usuário cadastrado.\n")
	} else {
		for i, u := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			active := statusOKStyle.Render("ativo")
			if !u.Active {
				active = errorStyle.Render("inativo")
			}
			b.WriteString(fmt.Sprintf("%s%-24s %-10s %-14s %s\n",
				cursor, fitText(u.Name, 24), u.Matricula, u.Role.Label(), active))
		}

		if u, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(fmt.Sprintf("%s · %s · desde %s",
				valueOrDash(u.Sector), valueOrDash(u.Function), formatDateFull(u.CreatedAt))))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusOKStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("USUÁRIOS", strings.TrimRight(b.String(), "\n"),
		"n: novo │ a: ativar/desativar │ p: redefinir senha │ r: atualizar")
}

func (m *UsersModel) formView() string {
	rows := []struct {
		label string
		field int
	}{
		{"Nome", userFieldName},
		{"Matrícula", userFieldMatricula},
		{"Setor", userFieldSector},
		{"Função", userFieldFunction},
		{"Senha", userFieldPassword},
		{"Perfil", userFieldRole},
	}

	var b strings.Builder
	for _, row := range rows {
		marker := "  "
		if m.focus == row.field {
			marker = "> "
		}
		if row.field == userFieldRole {
			b.WriteString(fmt.Sprintf("%s%-12s ◀ %s ▶\n", marker, row.label, creatableRoles[m.role].Label()))
			continue
		}
		b.WriteString(fmt.Sprintf("%s%-12s [%s]\n", marker, row.label, m.inputs[m.fieldInput(row.field)].View()))
	}

	if m.submitting {
		b.WriteString("\n[Criando...]")
	} else {
		b.WriteString("\n[Criar usuário]")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("NOVO USUÁRIO", strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ ◀▶: perfil │ enter: criar │ esc: cancelar")
}

func (m *UsersModel) resetView() string {
	u, _ := m.current()

	var b strings.Builder
	b.WriteString("Redefinir senha de " + u.Name + " (" + u.Matricula + ")\n\n")
	b.WriteString("Nova senha: [" + m.passwordInput.View() + "]\n")
	if m.submitting {
		b.WriteString("\n[Redefinindo...]")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("REDEFINIR SENHA", strings.TrimRight(b.String(), "\n"),
		"enter: redefinir │ esc: cancelar")
}

func (m *UsersModel) fieldInput(field int) int {
	if field >= userFieldRole {
		return 4
	}
	return field
}

func (m *UsersModel) inputIndex() int {
	return m.fieldInput(m.focus)
}

func (m *UsersModel) focusField(idx int) {
	if m.focus != userFieldRole {
		m.inputs[m.inputIndex()].Blur()
	}
	m.focus = idx
	if m.focus != userFieldRole {
		m.inputs[m.inputIndex()].Focus()
	}
}

func (m *UsersModel) closeForm() {
	m.formOpen = false
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.role = 0
	m.focus = userFieldName
}

func (m *UsersModel) closeResetPrompt() {
	m.resetting = false
	m.passwordInput.SetValue("")
	m.passwordInput.Blur()
}

func (m *UsersModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		items, err := backend.Users(ctx)
		return usersLoadedMsg{items: items, err: err}
	}
}

func (m *UsersModel) cmdToggleActive(u models.User) tea.Cmd {
	ctx := m.ctx
	backend := m.backend
	active := !u.Active

	return func() tea.Msg {
		_, err := backend.UpdateUser(ctx, u.ID, models.UpdateUserRequest{Active: &active})
		return userActionMsg{err: err}
	}
}

func (m *UsersModel) cmdResetPassword(id, password string) tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	return func() tea.Msg {
		err := backend.ResetUserPassword(ctx, id, password)
		return userActionMsg{err: err}
	}
}
