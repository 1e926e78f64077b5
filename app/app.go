// Package app owns the process-wide resources: the store handle, the
// notification gateway and the HTTP router. Create one with New, reuse it
// for every request and release it with Close.
package app

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"homefix/config"
	"homefix/database"
	"homefix/database/repository"
	"homefix/handlers"
	"homefix/metrics"
	"homefix/middleware"
	"homefix/routes"
	"homefix/services/booking"
	"homefix/services/notification"
	"homefix/services/technician"
	"homefix/utils"
)

// App is the explicitly constructed context handed to every handler.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	DB       *sql.DB
	Store    *repository.Store
	Notifier notification.Gateway
	Router   *gin.Engine
}

// New opens the store and assembles services, handlers and routes.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, errors.Annotate(err, "opening store")
	}
	logger.Info("store ready", zap.String("path", cfg.DBPath))

	metrics.Register()

	store := repository.NewStore(db)
	notifier := notification.NewGateway(cfg, logger)

	bookingService := booking.NewDefaultBookingService(store, notifier, booking.Options{
		AdminWhatsApp:      cfg.AdminWhatsApp,
		DefaultCountryCode: cfg.DefaultCountryCode,
		IDPrefix:           cfg.BookingIDPrefix,
		BrandImageURL:      cfg.BrandImageURL,
	}, logger)
	technicianService := technician.NewDefaultTechnicianService(store, logger)

	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(bookingService, technicianService)

	handlerBundle := &handlers.HandlerBundle{
		AdminToken:        cfg.AdminToken,
		StaticDir:         cfg.StaticDir,
		AllowedOrigins:    cfg.Origins(),
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,

		GetServices:   bookingHandler.GetServices,
		CreateBooking: bookingHandler.CreateBooking,

		AdminHandler: adminHandler,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler(logger))
	routes.RegisterRoutes(router, handlerBundle)

	if cfg.AdminToken == "" {
		logger.Warn("ADMIN_TOKEN is not set; admin endpoints will reject every request")
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Store:    store,
		Notifier: notifier,
		Router:   router,
	}, nil
}

// Close releases the store handle.
func (a *App) Close() error {
	return errors.Annotate(a.DB.Close(), "closing store")
}
