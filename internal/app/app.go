package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/handlers"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/registry"
	"github.com/ternarybob/atelier/internal/services/assistant"
	"github.com/ternarybob/atelier/internal/services/events"
	"github.com/ternarybob/atelier/internal/services/inference"
	"github.com/ternarybob/atelier/internal/services/scheduler"
	"github.com/ternarybob/atelier/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager
	Registry       *registry.Registry

	EventService     interfaces.EventService
	InferenceService interfaces.InferenceService
	AssistantService interfaces.AssistantService
	SchedulerService *scheduler.Service

	ProjectHandler   *handlers.ProjectHandler
	ScreenHandler    *handlers.ScreenHandler
	ComponentHandler *handlers.ComponentHandler
	AnalysisHandler  *handlers.AnalysisHandler
	AssistantHandler *handlers.AssistantHandler
	WSHandler        *handlers.WebSocketHandler
}

// New wires the application in dependency order: storage, registry,
// services, then handlers.
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	storageManager, err := badger.NewManager(logger, &cfg.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	app.StorageManager = storageManager

	app.Registry = registry.Default()

	app.EventService = events.NewService(logger)
	app.InferenceService = inference.NewService(app.StorageManager, app.Registry, logger)
	app.AssistantService = assistant.NewService(app.StorageManager, app.InferenceService, app.EventService, app.Registry, logger)
	app.SchedulerService = scheduler.NewService(app.StorageManager, app.InferenceService, app.EventService, cfg.Analysis, logger)

	app.ProjectHandler = handlers.NewProjectHandler(app.StorageManager, logger)
	app.ScreenHandler = handlers.NewScreenHandler(app.StorageManager, app.EventService, logger)
	app.ComponentHandler = handlers.NewComponentHandler(app.StorageManager, app.EventService, app.Registry, logger)
	app.AnalysisHandler = handlers.NewAnalysisHandler(app.StorageManager, app.InferenceService, app.EventService, logger)
	app.AssistantHandler = handlers.NewAssistantHandler(app.AssistantService, logger)
	app.WSHandler = handlers.NewWebSocketHandler(app.EventService, cfg.WebSocket, logger)

	if err := app.SchedulerService.Start(); err != nil {
		app.StorageManager.Close()
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}

	logger.Info().
		Int("component_types", len(app.Registry.Types())).
		Msg("Application initialized")

	return app, nil
}

// Close shuts components down in reverse dependency order
func (a *App) Close() error {
	if a.SchedulerService != nil {
		a.SchedulerService.Stop()
	}

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		a.Logger.Info().Msg("Storage closed")
	}

	return nil
}
