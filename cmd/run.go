package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hajira/edumood/internal/app"
	"github.com/hajira/edumood/internal/config"
	"github.com/hajira/edumood/internal/fetcher"
	"github.com/hajira/edumood/internal/flow"
	"github.com/hajira/edumood/internal/identity"
	"github.com/hajira/edumood/internal/journal"
	"github.com/hajira/edumood/internal/nav"
	"github.com/hajira/edumood/internal/observability"
	"github.com/hajira/edumood/internal/progress"
	"github.com/hajira/edumood/internal/store"
)

// repositories is what both storage backends provide.
type repositories interface {
	MoodEvents() store.MoodEventRepo
	Progress() store.ProgressRepo
	Profiles() store.ProfileRepo
}

// services bundles everything the commands and the TUI need.
type services struct {
	cfg      *config.Config
	logger   *zap.Logger
	ident    *identity.Service
	journal  *journal.Service
	progress *progress.Service
	orch     *flow.Orchestrator
}

// buildServices loads config, opens storage, and wires the service
// graph. The returned cleanup closes the store and flushes logs.
func buildServices(cmd *cobra.Command) (*services, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("set up logging: %w", err)
	}

	var repos repositories
	cleanup := func() { _ = logger.Sync() }

	switch cfg.Backend {
	case config.BackendMemory:
		repos = store.NewMemory()
	default:
		dbPath := cfg.DBPath
		if dbPath == "" {
			dbPath, err = resolveDBPath(cmd)
			if err != nil {
				return nil, nil, fmt.Errorf("resolve DB path: %w", err)
			}
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		repos = st
		cleanup = func() {
			st.Close()
			_ = logger.Sync()
		}
	}

	ident := identity.NewService(repos.Profiles(), logger)
	if err := ident.Restore(context.Background()); err != nil {
		logger.Warn("session restore failed", zap.Error(err))
	}

	jrnl := journal.NewService(repos.MoodEvents(), ident, logger)
	prog := progress.NewService(repos.Progress(), ident, logger)
	f := fetcher.New(cfg.FetcherConfig(), logger)
	orch := flow.New(f, jrnl, prog, nav.Browser{}, logger)

	return &services{
		cfg:      cfg,
		logger:   logger,
		ident:    ident,
		journal:  jrnl,
		progress: prog,
		orch:     orch,
	}, cleanup, nil
}

// runApp builds the service graph and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svcs, cleanup, err := buildServices(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(app.Options{
		Orchestrator: svcs.orch,
		Identity:     svcs.ident,
		Journal:      svcs.journal,
		Progress:     svcs.progress,
		Logger:       svcs.logger,
	})
}
