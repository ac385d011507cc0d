package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/usina-ipiranga/caldo-console/internal/config"
	"github.com/usina-ipiranga/caldo-console/internal/logger"
	"github.com/usina-ipiranga/caldo-console/models"
)

type httpBackendAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// backendCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if backendCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(backendCfg config.ConsoleBackend, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(backendCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(backendCfg.RequestTimeout)

	return &httpBackendAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BackendAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [BackendAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SetupStatus implements [BackendAdapter]. It GETs /api/setup/status, which
// is the only unauthenticated read the backend exposes.
func (h *httpBackendAdapter) SetupStatus(ctx context.Context) (models.SetupStatus, error) {
	var status models.SetupStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/setup/status")
	if err != nil {
		return models.SetupStatus{}, fmt.Errorf("setup status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SetupStatus{}, err
	}

	return status, nil
}

// SetupAdmin implements [BackendAdapter]. It POSTs /api/setup/admin and
// returns the generated bootstrap credentials. The backend answers 403 once
// any user exists.
func (h *httpBackendAdapter) SetupAdmin(ctx context.Context) (models.BootstrapCredentials, error) {
	var creds models.BootstrapCredentials

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&creds).
		Post("/api/setup/admin")
	if err != nil {
		return models.BootstrapCredentials{}, fmt.Errorf("setup admin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BootstrapCredentials{}, err
	}

	return creds, nil
}

// Login implements [BackendAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token from the response body
// is stored via SetToken. Returns [ErrUnauthorized] (wrapped) on bad
// credentials.
func (h *httpBackendAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&loginResp).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(loginResp.Token)
	return loginResp, nil
}

// Me implements [BackendAdapter]. It GETs /api/auth/me and returns the
// profile owning the current bearer token. Returns [ErrUnauthorized]
// (wrapped) when the token is missing, expired or revoked.
func (h *httpBackendAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpBackendAdapter) Notifications(ctx context.Context) ([]models.Notification, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notifications")
	if err != nil {
		return nil, fmt.Errorf("notifications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Notification
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode notifications response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) NotificationCount(ctx context.Context) (models.NotificationCount, error) {
	var count models.NotificationCount

	resp, err := h.authedRequest(ctx).
		SetResult(&count).
		Get("/api/notifications/count")
	if err != nil {
		return models.NotificationCount{}, fmt.Errorf("notification count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NotificationCount{}, err
	}

	return count, nil
}

func (h *httpBackendAdapter) MarkNotificationRead(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Patch("/api/notifications/" + url.PathEscape(id) + "/read")
	if err != nil {
		return fmt.Errorf("mark notification read request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) MarkAllNotificationsRead(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/notifications/mark-all-read")
	if err != nil {
		return fmt.Errorf("mark all notifications read request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) LatestParameters(ctx context.Context) ([]models.ParameterReading, error) {
	resp, err := h.authedRequest(ctx).Get("/api/parameters/latest")
	if err != nil {
		return nil, fmt.Errorf("latest parameters request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.ParameterReading
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode latest parameters response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) ParameterStats(ctx context.Context) (models.ParameterStats, error) {
	var stats models.ParameterStats

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/parameters/stats")
	if err != nil {
		return models.ParameterStats{}, fmt.Errorf("parameter stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ParameterStats{}, err
	}

	return stats, nil
}

func (h *httpBackendAdapter) CreateParameter(ctx context.Context, req models.NewParameterReading) (models.ParameterReading, error) {
	var created models.ParameterReading

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/parameters")
	if err != nil {
		return models.ParameterReading{}, fmt.Errorf("create parameter request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ParameterReading{}, err
	}

	return created, nil
}

func (h *httpBackendAdapter) Occurrences(ctx context.Context) ([]models.Occurrence, error) {
	resp, err := h.authedRequest(ctx).Get("/api/occurrences")
	if err != nil {
		return nil, fmt.Errorf("occurrences request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Occurrence
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode occurrences response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) CreateOccurrence(ctx context.Context, req models.NewOccurrence) (models.Occurrence, error) {
	var created models.Occurrence

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/occurrences")
	if err != nil {
		return models.Occurrence{}, fmt.Errorf("create occurrence request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Occurrence{}, err
	}

	return created, nil
}

func (h *httpBackendAdapter) Dosages(ctx context.Context) ([]models.Dosage, error) {
	resp, err := h.authedRequest(ctx).Get("/api/dosage")
	if err != nil {
		return nil, fmt.Errorf("dosages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Dosage
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode dosages response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) DosageStats(ctx context.Context) (models.DosageStats, error) {
	resp, err := h.authedRequest(ctx).Get("/api/dosage/stats")
	if err != nil {
		return nil, fmt.Errorf("dosage stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var stats models.DosageStats
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return nil, fmt.Errorf("decode dosage stats response: %w", err)
	}
	return stats, nil
}

func (h *httpBackendAdapter) DailyDosages(ctx context.Context) ([]models.DailyDosage, error) {
	resp, err := h.authedRequest(ctx).Get("/api/dosage/daily")
	if err != nil {
		return nil, fmt.Errorf("daily dosages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.DailyDosage
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode daily dosages response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) CreateDosage(ctx context.Context, req models.NewDosage) (models.Dosage, error) {
	var created models.Dosage

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/dosage")
	if err != nil {
		return models.Dosage{}, fmt.Errorf("create dosage request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dosage{}, err
	}

	return created, nil
}

func (h *httpBackendAdapter) WorkOrders(ctx context.Context, status string) ([]models.WorkOrder, error) {
	req := h.authedRequest(ctx)
	if status != "" {
		req.SetQueryParam("status", status)
	}

	resp, err := req.Get("/api/work-orders")
	if err != nil {
		return nil, fmt.Errorf("work orders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.WorkOrder
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode work orders response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) WorkOrderStats(ctx context.Context) (models.WorkOrderStats, error) {
	var stats models.WorkOrderStats

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/work-orders/stats/summary")
	if err != nil {
		return models.WorkOrderStats{}, fmt.Errorf("work order stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkOrderStats{}, err
	}

	return stats, nil
}

func (h *httpBackendAdapter) CreateWorkOrder(ctx context.Context, req models.NewWorkOrder) (models.WorkOrder, error) {
	var created models.WorkOrder

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/work-orders")
	if err != nil {
		return models.WorkOrder{}, fmt.Errorf("create work order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkOrder{}, err
	}

	return created, nil
}

func (h *httpBackendAdapter) StartWorkOrder(ctx context.Context, id string) (models.WorkOrder, error) {
	var updated models.WorkOrder

	resp, err := h.authedRequest(ctx).
		SetResult(&updated).
		Patch("/api/work-orders/" + url.PathEscape(id) + "/start")
	if err != nil {
		return models.WorkOrder{}, fmt.Errorf("start work order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkOrder{}, err
	}

	return updated, nil
}

func (h *httpBackendAdapter) CompleteWorkOrder(ctx context.Context, id, notes string) (models.WorkOrder, error) {
	var updated models.WorkOrder

	resp, err := h.authedRequest(ctx).
		SetQueryParam("completion_notes", notes).
		SetResult(&updated).
		Patch("/api/work-orders/" + url.PathEscape(id) + "/complete")
	if err != nil {
		return models.WorkOrder{}, fmt.Errorf("complete work order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkOrder{}, err
	}

	return updated, nil
}

func (h *httpBackendAdapter) Operators(ctx context.Context) ([]models.OperatorRef, error) {
	resp, err := h.authedRequest(ctx).Get("/api/operators/list")
	if err != nil {
		return nil, fmt.Errorf("operators request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.OperatorRef
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode operators response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) Users(ctx context.Context) ([]models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.User
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var created models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

func (h *httpBackendAdapter) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	var updated models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&updated).
		Patch("/api/users/" + url.PathEscape(id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

func (h *httpBackendAdapter) ResetUserPassword(ctx context.Context, id, newPassword string) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("new_password", newPassword).
		Post("/api/users/" + url.PathEscape(id) + "/reset-password")
	if err != nil {
		return fmt.Errorf("reset user password request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) AuditLogs(ctx context.Context, filter models.AuditFilter) ([]models.AuditLog, error) {
	req := h.authedRequest(ctx)
	if filter.EntityType != "" {
		req.SetQueryParam("entity_type", filter.EntityType)
	}
	if filter.StartDate != nil {
		req.SetQueryParam("start_date", filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		req.SetQueryParam("end_date", filter.EndDate.Format("2006-01-02"))
	}

	resp, err := req.Get("/api/audit/logs")
	if err != nil {
		return nil, fmt.Errorf("audit logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.AuditLog
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode audit logs response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) SupervisorDashboard(ctx context.Context) (models.SupervisorDashboard, error) {
	var dashboard models.SupervisorDashboard

	resp, err := h.authedRequest(ctx).
		SetResult(&dashboard).
		Get("/api/supervisor/dashboard")
	if err != nil {
		return models.SupervisorDashboard{}, fmt.Errorf("supervisor dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SupervisorDashboard{}, err
	}

	return dashboard, nil
}

func (h *httpBackendAdapter) WeeklyTrends(ctx context.Context) ([]models.WeeklyTrend, error) {
	resp, err := h.authedRequest(ctx).Get("/api/supervisor/weekly-trends")
	if err != nil {
		return nil, fmt.Errorf("weekly trends request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.WeeklyTrend
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode weekly trends response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	var reply models.ChatResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&reply).
		Post("/api/chat")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	return reply, nil
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
