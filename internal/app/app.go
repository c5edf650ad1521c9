package app

import (
	"context"
	"fmt"

	"github.com/veloguard/veloguard-backend/internal/adapter/directory"
	"github.com/veloguard/veloguard-backend/internal/adapter/gemini"
	"github.com/veloguard/veloguard-backend/internal/adapter/handler/http"
	"github.com/veloguard/veloguard-backend/internal/adapter/logger"
	"github.com/veloguard/veloguard-backend/internal/adapter/memory"
	"github.com/veloguard/veloguard-backend/internal/adapter/pdf"
	"github.com/veloguard/veloguard-backend/internal/adapter/prometheus"
	"github.com/veloguard/veloguard-backend/internal/config"
	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"
	"github.com/veloguard/veloguard-backend/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type App struct {
	Config     *config.Container
	Logger     ports.LoggerPort
	Store      *memory.Store
	HTTPRouter *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// In-memory registry store
	store := memory.NewStore()
	bikeRepo := memory.NewBikeRepository(store)
	accessoryRepo := memory.NewAccessoryRepository(store)
	documentRepo := memory.NewDocumentRepository(store)
	reportRepo := memory.NewReportRepository(store)
	workflowRepo := memory.NewWorkflowRepository(store)
	ownerRepo := memory.NewOwnerRepository(store, &domain.OwnerProfile{
		OwnerID:     uuid.New(),
		Name:        cfg.Owner.Name,
		DateOfBirth: cfg.Owner.DateOfBirth,
		Address:     cfg.Owner.Address,
		Email:       cfg.Owner.Email,
	})

	// External collaborators
	generator, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, loggerAdapter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}
	renderer := pdf.NewRenderer()
	jurisdictions := directory.New()

	// Services
	bikeService := services.NewBikeService(bikeRepo, loggerAdapter, validate)
	accessoryService := services.NewAccessoryService(accessoryRepo, loggerAdapter, validate)
	documentService := services.NewDocumentService(documentRepo, loggerAdapter, validate)
	draftService := services.NewDraftService(generator, loggerAdapter,
		cfg.Gemini.DescriptionModel, cfg.Gemini.ReportModel)
	workflowService := services.NewWorkflowService(workflowRepo, reportRepo,
		bikeService, draftService, renderer, jurisdictions, ownerRepo, loggerAdapter)

	// HTTP Handlers
	bikeHandler := http.NewBikeHandler(bikeService, loggerAdapter, metrics)
	accessoryHandler := http.NewAccessoryHandler(accessoryService, bikeService, loggerAdapter, metrics)
	documentHandler := http.NewDocumentHandler(documentService, bikeService, loggerAdapter, metrics)
	draftHandler := http.NewDraftHandler(draftService, loggerAdapter, metrics)
	workflowHandler := http.NewWorkflowHandler(workflowService, loggerAdapter, metrics)
	directoryHandler := http.NewDirectoryHandler(jurisdictions, ownerRepo, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		bikeHandler,
		accessoryHandler,
		documentHandler,
		draftHandler,
		workflowHandler,
		directoryHandler,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:     cfg,
		Logger:     loggerAdapter,
		Store:      store,
		HTTPRouter: router,
	}, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)
	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
