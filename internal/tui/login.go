package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/access"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/internal/session"
	"github.com/usina-ipiranga/caldo-console/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (matricula and password) and dispatches an async login
// command on submission. While the backend reports needsSetup the screen
// offers the first-run administrator bootstrap; the generated credentials
// are shown in a card with a copy-to-clipboard action.
type LoginModel struct {
	ctx     context.Context
	session *session.Store
	version string

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	bootstrapping bool
	creds         *models.BootstrapCredentials
	copied        bool
}

// NewLoginModel creates a [LoginModel] with pre-configured matricula and
// password inputs. The matricula field receives focus immediately; the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, sess *session.Store, version string) *LoginModel {
	matriculaInput := textinput.New()
	matriculaInput.Placeholder = "matrícula"
	matriculaInput.CharLimit = 20
	matriculaInput.Width = 40
	matriculaInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "senha"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: sess,
		version: version,
		inputs:  []textinput.Model{matriculaInput, passwordInput},
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = loginErrorText(result.err)
			return m, nil
		}
		m.inputs[1].SetValue("")
		m.creds = nil
		return m, func() tea.Msg { return NavigateTo{Page: access.PageDashboard} }

	case setupResultMsg:
		m.bootstrapping = false
		if result.err != nil {
			m.errMsg = adapter.Reason(result.err)
			return m, nil
		}
		creds := result.creds
		m.creds = &creds
		m.copied = false
		return m, nil

	case copiedMsg:
		m.copied = true
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "ctrl+s":
			if m.session.NeedsSetup() && !m.bootstrapping {
				m.errMsg = ""
				m.bootstrapping = true
				return m, m.cmdSetupAdmin()
			}
			return m, nil
		case "ctrl+y":
			if m.creds != nil {
				return m, m.cmdCopyCredentials()
			}
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			matricula := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if matricula == "" || password == "" {
				m.errMsg = "Matrícula e senha são obrigatórias"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(matricula, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString("Matrícula │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Senha     │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Entrando...]\n")
	} else {
		b.WriteString("\n[Entrar]\n")
	}

	if m.session.NeedsSetup() && m.creds == nil {
		b.WriteString("\n")
		if m.bootstrapping {
			b.WriteString("Criando administrador inicial...\n")
		} else {
			b.WriteString("Primeiro acesso: nenhum usuário cadastrado.\n")
			b.WriteString("ctrl+s: criar administrador inicial\n")
		}
	}

	if m.creds != nil {
		b.WriteString("\n")
		b.WriteString(credentialBoxStyle.Render(m.credentialCard()))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Erro: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "TRATAMENTO DE CALDO — ACESSO"
	if m.version != "" {
		title += "  " + helpStyle.Render("v"+m.version)
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ enter: entrar │ ctrl+c: sair")
}

func (m *LoginModel) credentialCard() string {
	var b strings.Builder
	b.WriteString("Administrador criado\n\n")
	b.WriteString("Matrícula: " + m.creds.Matricula + "\n")
	b.WriteString("Senha:     " + m.creds.SenhaInicial + "\n\n")
	b.WriteString(m.creds.Aviso)
	b.WriteString("\n\n")
	if m.copied {
		b.WriteString("copiado ✓")
	} else {
		b.WriteString("ctrl+y: copiar credenciais")
	}
	return b.String()
}

func (m *LoginModel) cmdLogin(matricula, password string) tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		user, err := sess.Login(ctx, matricula, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (m *LoginModel) cmdSetupAdmin() tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		creds, err := sess.SetupAdmin(ctx)
		return setupResultMsg{creds: creds, err: err}
	}
}

func (m *LoginModel) cmdCopyCredentials() tea.Cmd {
	creds := *m.creds
	return func() tea.Msg {
		_ = clipboard.WriteAll(creds.Matricula + " / " + creds.SenhaInicial)
		return copiedMsg{}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func loginErrorText(err error) string {
	if strings.Contains(err.Error(), "connection refused") {
		return "Servidor indisponível. Tente novamente."
	}
	return adapter.Reason(err)
}
