package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/usina-ipiranga/caldo-console/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// formatDate renders timestamps the way the plant reads them: dd/mm hh:mm.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01 15:04")
}

func formatDateFull(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04")
}

// formatCurrency renders a value in BRL with the decimal comma.
func formatCurrency(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	return "R$ " + strings.Replace(s, ".", ",", 1)
}

func statusBadge(status models.ParameterStatus) string {
	switch status {
	case models.ParameterCritical:
		return statusCritStyle.Render("CRÍTICO")
	case models.ParameterWarning:
		return statusWarnStyle.Render("ATENÇÃO")
	default:
		return statusOKStyle.Render("OK")
	}
}

func urgencyLabel(urgency string) string {
	switch urgency {
	case models.UrgencyCritica:
		return statusCritStyle.Render("CRÍTICA")
	case models.UrgencyAlta:
		return statusWarnStyle.Render("ALTA")
	case models.UrgencyMedia:
		return "MÉDIA"
	case models.UrgencyBaixa:
		return "BAIXA"
	default:
		return strings.ToUpper(urgency)
	}
}

func occurrenceStatusLabel(status string) string {
	switch status {
	case models.StatusAberta:
		return "Aberta"
	case models.StatusAndamento:
		return "Em andamento"
	case models.StatusResolvida:
		return "Resolvida"
	default:
		return status
	}
}

func workOrderStatusLabel(status string) string {
	switch status {
	case models.WorkOrderPending:
		return "Pendente"
	case models.WorkOrderInProgress:
		return "Em execução"
	case models.WorkOrderCompleted:
		return "Concluída"
	default:
		return status
	}
}

func priorityLabel(priority string) string {
	switch priority {
	case models.PriorityUrgente:
		return statusCritStyle.Render("URGENTE")
	case models.PriorityAlta:
		return statusWarnStyle.Render("Alta")
	case models.PriorityMedia:
		return "Média"
	case models.PriorityBaixa:
		return "Baixa"
	default:
		return priority
	}
}
