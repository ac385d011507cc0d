// Package adapter provides the transport layer for communicating with the
// juice treatment backend.
//
// The primary abstraction is [BackendAdapter], which decouples the session
// and view layers from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPBackendAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
// The backend's {"detail": ...} payload is surfaced as the human-readable
// reason via [Reason].
package adapter

import (
	"context"

	"github.com/usina-ipiranga/caldo-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the juice
// treatment backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
//
// Calls are single-shot: no retries, no caching. Every method except
// SetupStatus, SetupAdmin and Login requires a bearer token to have been set.
type BackendAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty string clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SetupStatus reports whether the backend has zero users and is waiting
	// for the first-run administrator bootstrap.
	SetupStatus(ctx context.Context) (models.SetupStatus, error)

	// SetupAdmin creates the bootstrap administrator account and returns its
	// generated matricula and one-time password. The backend rejects the
	// call once any user exists.
	SetupAdmin(ctx context.Context) (models.BootstrapCredentials, error)

	// Login authenticates with matricula and password. On success the
	// returned bearer token is stored via SetToken and the authenticated
	// profile is returned alongside it.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the profile of the account owning the current bearer token.
	Me(ctx context.Context) (models.User, error)

	// Notifications returns the caller's notifications, newest first.
	Notifications(ctx context.Context) ([]models.Notification, error)

	// NotificationCount returns the caller's unread notification count.
	NotificationCount(ctx context.Context) (models.NotificationCount, error)

	// MarkNotificationRead marks a single notification as read.
	MarkNotificationRead(ctx context.Context, id string) error

	// MarkAllNotificationsRead marks every notification of the caller read.
	MarkAllNotificationsRead(ctx context.Context) error

	// LatestParameters returns the most recent parameter readings.
	LatestParameters(ctx context.Context) ([]models.ParameterReading, error)

	// ParameterStats returns the rolling parameter averages.
	ParameterStats(ctx context.Context) (models.ParameterStats, error)

	// CreateParameter submits a new parameter reading.
	CreateParameter(ctx context.Context, req models.NewParameterReading) (models.ParameterReading, error)

	// Occurrences returns the logged occurrences, newest first.
	Occurrences(ctx context.Context) ([]models.Occurrence, error)

	// CreateOccurrence registers a new occurrence; the backend assigns the
	// protocol number.
	CreateOccurrence(ctx context.Context, req models.NewOccurrence) (models.Occurrence, error)

	// Dosages returns the chemical dosage log, newest first.
	Dosages(ctx context.Context) ([]models.Dosage, error)

	// DosageStats returns per-chemical consumption totals.
	DosageStats(ctx context.Context) (models.DosageStats, error)

	// DailyDosages returns day-bucketed dosage totals.
	DailyDosages(ctx context.Context) ([]models.DailyDosage, error)

	// CreateDosage logs a chemical application; the backend computes the
	// total cost.
	CreateDosage(ctx context.Context, req models.NewDosage) (models.Dosage, error)

	// WorkOrders returns work orders, optionally filtered by status
	// (pending/in_progress/completed). An empty status returns all.
	WorkOrders(ctx context.Context, status string) ([]models.WorkOrder, error)

	// WorkOrderStats returns the work order counters by status.
	WorkOrderStats(ctx context.Context) (models.WorkOrderStats, error)

	// CreateWorkOrder opens a new work order; the backend assigns the OS
	// number.
	CreateWorkOrder(ctx context.Context, req models.NewWorkOrder) (models.WorkOrder, error)

	// StartWorkOrder moves a pending work order to in_progress.
	StartWorkOrder(ctx context.Context, id string) (models.WorkOrder, error)

	// CompleteWorkOrder closes an in-progress work order with the given
	// completion notes.
	CompleteWorkOrder(ctx context.Context, id, notes string) (models.WorkOrder, error)

	// Operators returns the operator accounts available as work order
	// assignees.
	Operators(ctx context.Context) ([]models.OperatorRef, error)

	// Users returns all user accounts. Supervisor-gated on the backend.
	Users(ctx context.Context) ([]models.User, error)

	// CreateUser registers a new account. Supervisor-gated on the backend.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// UpdateUser applies a partial update (currently activation state).
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error)

	// ResetUserPassword overwrites an account's password.
	ResetUserPassword(ctx context.Context, id, newPassword string) error

	// AuditLogs returns audit entries matching the filter.
	AuditLogs(ctx context.Context, filter models.AuditFilter) ([]models.AuditLog, error)

	// SupervisorDashboard returns the supervisor KPI payload.
	SupervisorDashboard(ctx context.Context) (models.SupervisorDashboard, error)

	// WeeklyTrends returns the last week of daily parameter trends.
	WeeklyTrends(ctx context.Context) ([]models.WeeklyTrend, error)

	// Chat sends one assistant message and returns the AI reply. Pass the
	// session id from the previous response to keep conversation context.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}
