package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usina-ipiranga/caldo-console/internal/config"
	"github.com/usina-ipiranga/caldo-console/internal/logger"
	"github.com/usina-ipiranga/caldo-console/models"
)

// newTestAdapter creates an httpBackendAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	backendCfg := config.ConsoleBackend{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPBackendAdapter(backendCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPBackendAdapter_EmptyBaseURL(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.ConsoleBackend{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full url", input: "http://mill.local:8000", want: "http://mill.local:8000"},
		{name: "trailing slash stripped", input: "http://mill.local:8000/", want: "http://mill.local:8000"},
		{name: "scheme added", input: "mill.local:8000", want: "http://mill.local:8000"},
		{name: "whitespace trimmed", input: "  http://mill.local:8000  ", want: "http://mill.local:8000"},
		{name: "empty", input: "", wantErr: true},
		{name: "scheme only", input: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── SetupStatus / SetupAdmin ─────────────────────────────────────────────────

func TestSetupStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/setup/status", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SetupStatus{NeedsSetup: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SetupStatus(context.Background())

	require.NoError(t, err)
	assert.True(t, got.NeedsSetup)
}

func TestSetupAdmin_Success(t *testing.T) {
	want := models.BootstrapCredentials{
		Matricula:    "ADM001",
		SenhaInicial: "troque-me-123",
		Aviso:        "Altere a senha no primeiro acesso",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/setup/admin", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SetupAdmin(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSetupAdmin_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail": "Sistema já configurado"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SetupAdmin(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "Sistema já configurado", Reason(err))
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	want := models.LoginResponse{
		Token: "opaque-token",
		User:  models.User{ID: "u1", Name: "Maria", Matricula: "OP100", Role: models.RoleOperator, Active: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "OP100", req.Matricula)
		assert.Equal(t, "secret", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Matricula: "OP100", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "opaque-token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Matrícula ou senha inválida"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Matricula: "OP100", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Matrícula ou senha inválida", Reason(err))
	assert.Empty(t, a.Token())
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestMe_SendsBearerToken(t *testing.T) {
	want := models.User{ID: "u1", Name: "Maria", Role: models.RoleSupervisor, Active: true}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque-token")

	got, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMe_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Token inválido"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stale-token")

	_, err := a.Me(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Notifications ────────────────────────────────────────────────────────────

func TestNotificationCount_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/count", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"unread_count": 7}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	got, err := a.NotificationCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, got.UnreadCount)
}

func TestMarkNotificationRead_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/notifications/n42/read", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	require.NoError(t, a.MarkNotificationRead(context.Background(), "n42"))
}

// ── Parameters ───────────────────────────────────────────────────────────────

func TestCreateParameter_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/parameters", r.URL.Path)

		var req models.NewParameterReading
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.ShiftB, req.Shift)
		assert.InDelta(t, 7.0, req.Ph, 1e-9)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ParameterReading{ID: "p1", Ph: req.Ph, Shift: req.Shift})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	got, err := a.CreateParameter(context.Background(), models.NewParameterReading{Ph: 7.0, Shift: models.ShiftB})
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}

// ── Work orders ──────────────────────────────────────────────────────────────

func TestWorkOrders_StatusFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/work-orders", r.URL.Path)
		assert.Equal(t, models.WorkOrderPending, r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.WorkOrder{{ID: "wo1", Status: models.WorkOrderPending}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	got, err := a.WorkOrders(context.Background(), models.WorkOrderPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "wo1", got[0].ID)
}

func TestWorkOrders_NoFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("status"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.WorkOrder{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	_, err := a.WorkOrders(context.Background(), "")
	require.NoError(t, err)
}

func TestCompleteWorkOrder_NotesQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/work-orders/wo7/complete", r.URL.Path)
		assert.Equal(t, "bomba substituída", r.URL.Query().Get("completion_notes"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.WorkOrder{ID: "wo7", Status: models.WorkOrderCompleted})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	got, err := a.CompleteWorkOrder(context.Background(), "wo7", "bomba substituída")
	require.NoError(t, err)
	assert.Equal(t, models.WorkOrderCompleted, got.Status)
}

// ── Users ────────────────────────────────────────────────────────────────────

func TestUpdateUser_PartialBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/users/u9", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"active": false}, body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: "u9", Active: false})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	active := false
	got, err := a.UpdateUser(context.Background(), "u9", models.UpdateUserRequest{Active: &active})
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestResetUserPassword_QueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/u9/reset-password", r.URL.Path)
		assert.Equal(t, "nova-senha", r.URL.Query().Get("new_password"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	require.NoError(t, a.ResetUserPassword(context.Background(), "u9", "nova-senha"))
}

func TestCreateUser_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail": "Acesso restrito a supervisores"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	_, err := a.CreateUser(context.Background(), models.CreateUserRequest{Name: "Novo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Audit ────────────────────────────────────────────────────────────────────

func TestAuditLogs_EntityTypeFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/audit/logs", r.URL.Path)
		assert.Equal(t, models.EntityDosage, r.URL.Query().Get("entity_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.AuditLog{{ID: "a1", EntityType: models.EntityDosage}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	got, err := a.AuditLogs(context.Background(), models.AuditFilter{EntityType: models.EntityDosage})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.EntityDosage, got[0].EntityType)
}

// ── Chat ─────────────────────────────────────────────────────────────────────

func TestChat_SessionContinuity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "s-123", req.SessionID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ChatResponse{
			Response:  "Verifique a dosagem de cal.",
			SessionID: "s-123",
			RiskLevel: "ALTO",
			Escalate:  true,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t")

	got, err := a.Chat(context.Background(), models.ChatRequest{Message: "pH caiu para 5.9", SessionID: "s-123"})
	require.NoError(t, err)
	assert.True(t, got.Escalate)
	assert.Equal(t, "s-123", got.SessionID)
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SetupStatus(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, "boom", Reason(err))
}

func TestMapHTTPError_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SetupStatus(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetToken_Trimmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  spaced-token \n")
	assert.Equal(t, "spaced-token", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}
