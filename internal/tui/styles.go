package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	sidebarStyle       = lipgloss.NewStyle().Width(24).PaddingRight(2)
	activeNavStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	badgeStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statusOKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statusCritStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	riskEscalateStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	credentialBoxStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 2)
)
