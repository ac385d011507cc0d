package client

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/usina-ipiranga/caldo-console/internal/access"
	"github.com/usina-ipiranga/caldo-console/internal/adapter"
	"github.com/usina-ipiranga/caldo-console/internal/config"
	"github.com/usina-ipiranga/caldo-console/internal/logger"
	"github.com/usina-ipiranga/caldo-console/internal/session"
	"github.com/usina-ipiranga/caldo-console/internal/store"
	"github.com/usina-ipiranga/caldo-console/internal/tui"
	"github.com/usina-ipiranga/caldo-console/internal/workers"
)

// App assembles the console: backend adapter, session store, screens and the
// background notification poller.
type App struct {
	cfg     *config.ConsoleConfig
	logger  *logger.Logger
	backend adapter.BackendAdapter
	session *session.Store
	poller  *workers.Poller
}

// NewApp wires all console components from the resolved configuration.
func NewApp(cfg *config.ConsoleConfig, log *logger.Logger) (*App, error) {
	backend, err := adapter.NewHTTPBackendAdapter(cfg.Backend, log)
	if err != nil {
		return nil, fmt.Errorf("create backend adapter: %w", err)
	}

	tokens := store.NewTokenStore(cfg.Storage.TokenFile)
	sess := session.NewStore(backend, tokens, log)

	return &App{
		cfg:     cfg,
		logger:  log,
		backend: backend,
		session: sess,
	}, nil
}

// Run starts the terminal UI and blocks until the user quits. The unread
// notification poller runs for the whole program lifetime; its updates are
// injected into the running program and simply show zero when logged out.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := tui.NewRootModel(ctx, a.session, a.backend, a.buildPages(ctx), a.cfg.App.Version, a.logger)
	program := tea.NewProgram(root, tea.WithAltScreen())

	a.poller = workers.NewPoller(func(pollCtx context.Context) error {
		if !a.session.IsAuthenticated() {
			program.Send(tui.NotificationCount(0))
			return nil
		}
		count, err := a.backend.NotificationCount(pollCtx)
		if err != nil {
			return fmt.Errorf("poll notification count: %w", err)
		}
		program.Send(tui.NotificationCount(count.UnreadCount))
		return nil
	})
	a.poller.Start(ctx, a.cfg.Workers.NotificationInterval)
	defer a.poller.Stop()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}

	a.logger.Info().Msg("console exited")
	return nil
}

// buildPages constructs every screen the router can navigate to.
func (a *App) buildPages(ctx context.Context) map[access.Page]tea.Model {
	return map[access.Page]tea.Model{
		access.PageLogin:       tui.NewLoginModel(ctx, a.session, a.cfg.App.Version),
		access.PageDashboard:   tui.NewDashboardModel(ctx, a.backend, a.cfg.Workers.DashboardInterval),
		access.PageWorkOrders:  tui.NewWorkOrdersModel(ctx, a.backend),
		access.PageAssistant:   tui.NewAssistantModel(ctx, a.backend),
		access.PageOccurrences: tui.NewOccurrencesModel(ctx, a.backend),
		access.PageReports:     tui.NewReportsModel(ctx, a.backend),
		access.PageChemicals:   tui.NewChemicalsModel(ctx, a.backend),
		access.PageSupervisor:  tui.NewSupervisorModel(ctx, a.backend, a.cfg.Workers.DashboardInterval),
		access.PageUsers:       tui.NewUsersModel(ctx, a.backend),
		access.PageHistory:     tui.NewHistoryModel(ctx, a.backend),
	}
}
