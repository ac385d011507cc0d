package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/access"
	"github.com/usina-ipiranga/caldo-console/models"
)

// NavigateTo asks the router to open another page. The optional Payload is
// delivered to the target page right after the switch, which is how the
// occurrence → report deep link travels.
type NavigateTo struct {
	Page    access.Page
	Payload tea.Msg
}

// sessionReadyMsg signals that Initialize finished and the router may leave
// the loading state.
type sessionReadyMsg struct{}

// loginResultMsg carries the outcome of an async login attempt.
type loginResultMsg struct {
	user models.User
	err  error
}

// setupResultMsg carries the outcome of the first-run bootstrap.
type setupResultMsg struct {
	creds models.BootstrapCredentials
	err   error
}

// logoutMsg asks the router to tear the session down and return to login.
type logoutMsg struct{}

type dashboardLoadedMsg struct {
	readings []models.ParameterReading
	stats    models.ParameterStats
	err      error
}

type readingSavedMsg struct {
	err error
}

type dashboardTickMsg time.Time

type occurrencesLoadedMsg struct {
	items []models.Occurrence
	err   error
}

type occurrenceSavedMsg struct {
	created models.Occurrence
	err     error
}

// reportContextMsg preselects an occurrence on the reports page. Sent as a
// NavigateTo payload from the occurrences screen.
type reportContextMsg struct {
	occurrence models.Occurrence
}

type dosagesLoadedMsg struct {
	items []models.Dosage
	stats models.DosageStats
	daily []models.DailyDosage
	err   error
}

type dosageSavedMsg struct {
	err error
}

type workOrdersLoadedMsg struct {
	items     []models.WorkOrder
	stats     models.WorkOrderStats
	operators []models.OperatorRef
	err       error
}

type workOrderActionMsg struct {
	err error
}

type usersLoadedMsg struct {
	items []models.User
	err   error
}

type userActionMsg struct {
	err error
}

type auditLoadedMsg struct {
	items []models.AuditLog
	err   error
}

type supervisorLoadedMsg struct {
	dashboard models.SupervisorDashboard
	trends    []models.WeeklyTrend
	err       error
}

type supervisorTickMsg time.Time

type chatReplyMsg struct {
	reply models.ChatResponse
	err   error
}

type notifCountMsg struct {
	count int
}

// NotificationCount wraps an unread counter for injection into the running
// program, used by the background notification poller.
func NotificationCount(count int) tea.Msg {
	return notifCountMsg{count: count}
}

type notificationsLoadedMsg struct {
	items []models.Notification
	err   error
}

type notificationActionMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
