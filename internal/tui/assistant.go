package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/models"
)

// quickPrompts are one-key starter questions for common operational doubts.
var quickPrompts = []string{
	"O pH do caldo está em 6,3. O que devo fazer?",
	"A turbidez subiu acima de 600 NTU. Quais as causas prováveis?",
	"Qual a dosagem recomendada de cal para correção de pH?",
}

type chatEntry struct {
	id       string
	fromUser bool
	text     string
	rendered string
	risk     string
	escalate bool
}

// AssistantModel is the operator chat with the AI assistant. Replies come
// back in markdown and are rendered with glamour; each carries a risk level
// and may ask for supervisor escalation. The backend session id is echoed
// on every message so the conversation keeps its context.
type AssistantModel struct {
	ctx     context.Context
	backend adapter.BackendAdapter

	input     textinput.Model
	entries   []chatEntry
	sessionID string
	waiting   bool
	errMsg    string
}

func NewAssistantModel(ctx context.Context, backend adapter.BackendAdapter) *AssistantModel {
	input := textinput.New()
	input.Placeholder = "pergunte ao assistente"
	input.CharLimit = 500
	input.Width = 60

	return &AssistantModel{ctx: ctx, backend: backend, input: input}
}

// Init implements [tea.Model].
func (m *AssistantModel) Init() tea.Cmd {
	m.errMsg = ""
	m.input.Focus()
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *AssistantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.waiting = false
		if msg.err != nil {
			m.errMsg = adapter.Reason(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.sessionID = msg.reply.SessionID
		m.entries = append(m.entries, chatEntry{
			id:       uuid.NewString(),
			text:     msg.reply.Response,
			rendered: renderMarkdown(msg.reply.Response),
			risk:     msg.reply.RiskLevel,
			escalate: msg.reply.Escalate,
		})
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.send(strings.TrimSpace(m.input.Value()))
		case "ctrl+r":
			m.entries = nil
			m.sessionID = ""
			m.errMsg = ""
			return m, nil
		case "1", "2", "3":
			if m.input.Value() == "" {
				i := int(msg.String()[0] - '1')
				return m.send(quickPrompts[i])
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AssistantModel) send(text string) (tea.Model, tea.Cmd) {
	if text == "" || m.waiting {
		return m, nil
	}

	m.entries = append(m.entries, chatEntry{id: uuid.NewString(), fromUser: true, text: text})
	m.input.SetValue("")
	m.errMsg = ""
	m.waiting = true

	ctx := m.ctx
	backend := m.backend
	sessionID := m.sessionID
	return m, func() tea.Msg {
		reply, err := backend.Chat(ctx, models.ChatRequest{Message: text, SessionID: sessionID})
		return chatReplyMsg{reply: reply, err: err}
	}
}

// View implements [tea.Model].
func (m *AssistantModel) View() string {
	var b strings.Builder

	if len(m.entries) == 0 {
		b.WriteString("Assistente de tratamento de caldo. Perguntas rápidas:\n")
		for i, p := range quickPrompts {
			b.WriteString(helpStyle.Render("  " + string(rune('1'+i)) + ". " + p))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	start := 0
	if len(m.entries) > 8 {
		start = len(m.entries) - 8
	}
	for _, e := range m.entries[start:] {
		if e.fromUser {
			b.WriteString("Você: " + e.text + "\n")
			continue
		}
		b.WriteString("Assistente")
		if e.risk != "" {
			b.WriteString(" [" + riskBadge(e.risk) + "]")
		}
		b.WriteString(":\n")
		b.WriteString(strings.TrimRight(e.rendered, "\n"))
		b.WriteString("\n")
		if e.escalate {
			b.WriteString(riskEscalateStyle.Render("⚠ Acione o supervisor de turno."))
			b.WriteString("\n")
		}
	}

	if m.waiting {
		b.WriteString("\nAssistente está digitando...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n> [" + m.input.View() + "]")

	return renderPage("ASSISTENTE IA", strings.TrimRight(b.String(), "\n"),
		"enter: enviar │ 1-3: pergunta rápida │ ctrl+r: nova conversa")
}

func riskBadge(risk string) string {
	switch strings.ToUpper(risk) {
	case "CRÍTICO", "CRITICO":
		return statusCritStyle.Render(strings.ToUpper(risk))
	case "ALTO":
		return statusWarnStyle.Render("ALTO")
	default:
		return strings.ToUpper(risk)
	}
}

// renderMarkdown pretty-prints an assistant reply. On renderer failure the
// raw markdown is shown instead.
func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return out
}
