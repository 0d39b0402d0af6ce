package main

import (
	"log/slog"

	"firewatch/internal/config"
	"firewatch/internal/location"
	"firewatch/internal/prediction"
	"firewatch/internal/providers/firecast"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	locationService  location.Service
	forecastProvider prediction.ForecastProvider
	cfg              *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:           router,
		logger:           logger,
		locationService:  location.NewLocationService(cfg, logger),
		forecastProvider: firecast.NewClient(cfg.Firecast.BaseURL, logger),
		cfg:              cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
