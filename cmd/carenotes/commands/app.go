// ABOUTME: Per-command application bootstrap: .env, config, logging, storage, and controller
// ABOUTME: Every data command opens an app, acts on the controller, and closes it
package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/carenotes/internal/config"
	"github.com/harper/carenotes/internal/core"
	"github.com/harper/carenotes/internal/logging"
	"github.com/harper/carenotes/internal/models"
	"github.com/harper/carenotes/internal/storage"
)

type app struct {
	cfg        *config.Config
	logger     *log.Logger
	store      *storage.Storage
	controller *core.Controller
}

// openApp loads configuration, opens storage, and hydrates the controller.
// When --profile is set that profile becomes active.
func openApp(cmd *cobra.Command) (*app, error) {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(logging.LevelFromFlags(cfg.LogLevel, verbose, quiet), cmd.ErrOrStderr())

	store, err := storage.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	controller := core.NewController(store, core.WithLogger(logger))
	if err := controller.Load(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("loading state: %w", err)
	}

	if profileID != "" {
		if err := controller.SelectProfile(profileID); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	return &app{cfg: cfg, logger: logger, store: store, controller: controller}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("error closing storage", "err", err)
	}
}

// requireActive returns the active profile or explains how to pick one
func (a *app) requireActive() (*models.Profile, error) {
	if p := a.controller.ActiveProfile(); p != nil {
		return p, nil
	}
	if len(a.controller.Profiles()) == 0 {
		return nil, fmt.Errorf("no profiles yet; create one with: carenotes profile create")
	}
	return nil, fmt.Errorf("several profiles exist; choose one with --profile <id> (see: carenotes profile list)")
}

func (a *app) newChat() *core.Chat {
	responder := core.NewResponder(a.controller, nil, a.cfg.ReplyDelay, a.logger)
	return core.NewChat(a.controller, responder)
}
