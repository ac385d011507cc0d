package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usina-ipiranga/caldo-console/internal/access"
	"github.com/usina-ipiranga/caldo-console/internal/logger"
	"github.com/usina-ipiranga/caldo-console/internal/mock"
	"github.com/usina-ipiranga/caldo-console/internal/session"
	"github.com/usina-ipiranga/caldo-console/internal/store"
	"github.com/usina-ipiranga/caldo-console/models"
	"go.uber.org/mock/gomock"
)

// stubPage is a minimal page for router tests: rendering and message
// handling are irrelevant, only which page the guard lands on matters.
type stubPage struct{ name string }

func (p stubPage) Init() tea.Cmd                       { return nil }
func (p stubPage) Update(tea.Msg) (tea.Model, tea.Cmd) { return p, nil }
func (p stubPage) View() string                        { return p.name }

type rootFixture struct {
	adapter *mock.MockBackendAdapter
	session *session.Store
	root    RootModel
}

func newRootFixture(t *testing.T) *rootFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	backendAdapter := mock.NewMockBackendAdapter(ctrl)
	tokens := store.NewTokenStore(filepath.Join(t.TempDir(), "token.json"))
	log := logger.NewLogger("test")
	sess := session.NewStore(backendAdapter, tokens, log)

	pages := map[access.Page]tea.Model{
		access.PageLogin:      stubPage{name: "login"},
		access.PageDashboard:  stubPage{name: "dashboard"},
		access.PageSupervisor: stubPage{name: "supervisor"},
		access.PageUsers:      stubPage{name: "users"},
	}

	return &rootFixture{
		adapter: backendAdapter,
		session: sess,
		root:    NewRootModel(context.Background(), sess, backendAdapter, pages, "test", log),
	}
}

// login authenticates the fixture session directly through the store.
func (f *rootFixture) login(t *testing.T, role models.Role) {
	t.Helper()

	f.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{
		Token: "tok-1",
		User:  models.User{ID: "u1", Name: "Teste", Matricula: "12345", Role: role, Active: true},
	}, nil)

	_, err := f.session.Login(context.Background(), "12345", "secret")
	require.NoError(t, err)
}

// ready marks the session restore as finished without a stored token.
func (f *rootFixture) ready(t *testing.T) {
	t.Helper()

	f.adapter.EXPECT().SetupStatus(gomock.Any()).Return(models.SetupStatus{}, nil)
	require.NoError(t, f.session.Initialize(context.Background()))

	updated, _ := f.root.Update(sessionReadyMsg{})
	f.root = updated.(RootModel)
}

func TestRootModel_LoadingViewUntilReady(t *testing.T) {
	f := newRootFixture(t)

	assert.Contains(t, f.root.View(), "Restaurando sessão")

	// Navigation is ignored while the session restore is in flight.
	updated, _ := f.root.Update(NavigateTo{Page: access.PageDashboard})
	f.root = updated.(RootModel)
	assert.Contains(t, f.root.View(), "Restaurando sessão")
}

func TestRootModel_UnauthenticatedLandsOnLogin(t *testing.T) {
	f := newRootFixture(t)
	f.ready(t)

	assert.Equal(t, access.PageLogin, f.root.current)

	// Any page request without a session resolves to login.
	updated, _ := f.root.Update(NavigateTo{Page: access.PageUsers})
	f.root = updated.(RootModel)
	assert.Equal(t, access.PageLogin, f.root.current)
}

func TestRootModel_OperatorDeniedSupervisorPage(t *testing.T) {
	f := newRootFixture(t)
	f.ready(t)
	f.login(t, models.RoleOperator)

	updated, _ := f.root.Update(NavigateTo{Page: access.PageSupervisor})
	f.root = updated.(RootModel)

	assert.Equal(t, access.PageDashboard, f.root.current)
}

func TestRootModel_SupervisorAllowedEverywhere(t *testing.T) {
	f := newRootFixture(t)
	f.ready(t)
	f.login(t, models.RoleSupervisor)

	for _, page := range []access.Page{access.PageSupervisor, access.PageUsers, access.PageDashboard} {
		updated, _ := f.root.Update(NavigateTo{Page: page})
		f.root = updated.(RootModel)
		assert.Equal(t, page, f.root.current)
	}
}

func TestRootModel_AuthenticatedBouncedFromLogin(t *testing.T) {
	f := newRootFixture(t)
	f.ready(t)
	f.login(t, models.RoleOperator)

	updated, _ := f.root.Update(NavigateTo{Page: access.PageLogin})
	f.root = updated.(RootModel)

	assert.Equal(t, access.PageDashboard, f.root.current)
}

func TestRootModel_LogoutReturnsToLogin(t *testing.T) {
	f := newRootFixture(t)
	f.ready(t)
	f.login(t, models.RoleSupervisor)

	f.adapter.EXPECT().SetToken("")
	updated, _ := f.root.Update(logoutMsg{})
	f.root = updated.(RootModel)

	assert.Equal(t, access.PageLogin, f.root.current)
	assert.False(t, f.session.IsAuthenticated())
}

func TestRootModel_UnreadBadgeCount(t *testing.T) {
	f := newRootFixture(t)
	f.ready(t)
	f.login(t, models.RoleOperator)

	updated, _ := f.root.Update(notifCountMsg{count: 3})
	f.root = updated.(RootModel)

	assert.Contains(t, f.root.sidebarView(), "3 não lidas")
}
