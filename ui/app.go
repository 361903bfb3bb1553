package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"queryinsights/app"
	"queryinsights/internal"
)

// App is the HTTP surface over the insight service
type App struct {
	router  *chi.Mux
	service *app.InsightService
	logger  *internal.Logger
}

// Config holds HTTP application configuration
type Config struct {
	Port string
}

// NewApp creates the HTTP application
func NewApp(service *app.InsightService) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		logger:  internal.DefaultLogger,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)

	a.router.Post("/api/insights/compute", a.handleCompute)
	a.router.Post("/api/insights/batch", a.handleBatch)
	a.router.Post("/api/insights/query", a.handleQuery)
	a.router.Post("/api/insights/distribution", a.handleDistribution)
	a.router.Get("/api/insights/{id}", a.handleGetReport)
	a.router.Get("/api/insights", a.handleListReports)
}

// Router exposes the underlying handler, mainly for tests
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start(config Config) error {
	addr := ":" + config.Port
	a.logger.Info("Starting query insights server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
