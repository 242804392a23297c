package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	mwecho "github.com/labstack/echo/v4/middleware"
	mwsvc "winsbygroup.com/lunchly/internal/middleware"

	"winsbygroup.com/lunchly/internal/backup"
	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/customer"
	"winsbygroup.com/lunchly/internal/database"
	"winsbygroup.com/lunchly/internal/demodata"
	"winsbygroup.com/lunchly/internal/metrics"
	"winsbygroup.com/lunchly/internal/reservation"

	adminhttp "winsbygroup.com/lunchly/internal/http/admin"
	webhttp "winsbygroup.com/lunchly/internal/http/web"
)

type Server struct {
	Echo *echo.Echo
	HTTP *http.Server
	DB   *sqlx.DB
}

func Build(cfg *config.Config) (*Server, error) {
	//
	// Database
	//
	db, isNewDB, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}

	// Load demo data if requested and database is new
	if cfg.DemoMode && isNewDB {
		if err := demodata.Load(db.DB); err != nil {
			db.Close()
			return nil, errors.New("failed to load demo data: " + err.Error())
		}
		log.Info().Msg("Demo data loaded")
	}

	if cfg.AdminAPIKey == "" {
		log.Warn().Msg("ADMIN_API_KEY not set, admin API will reject every request")
	}

	//
	// Domain services
	//
	reservationSvc := reservation.NewService(db)
	customerSvc := customer.NewService(db, reservationSvc)

	//
	// Handlers
	//
	adminSvc := adminhttp.NewService(customerSvc, reservationSvc)
	adminHandler := adminhttp.NewHandler(adminSvc, backup.NewService(db, backupPath(cfg)))
	webHandler := webhttp.NewHandler(adminSvc)

	//
	// Echo
	//
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpMetrics := metrics.NewHTTPMetrics()

	// Health and metrics endpoints
	e.GET("/livez", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/readyz", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, "DB not ready")
		}
		return c.String(http.StatusOK, "Ready")
	})

	e.GET("/metrics", echo.WrapHandler(httpMetrics.Handler()))

	// Middleware
	e.Pre(mwecho.RemoveTrailingSlash())
	e.Use(mwecho.RequestIDWithConfig(mwecho.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(httpMetrics.Middleware())
	e.Use(mwsvc.RequestLogger(log.Logger))
	e.Use(mwecho.Recover())

	// Admin API
	adminGroup := e.Group("/api")
	adminGroup.Use(mwsvc.AdminAPIKeyAuth(cfg.AdminAPIKey))
	adminhttp.RegisterRoutes(adminGroup, adminHandler)

	// Web UI
	webGroup := e.Group("")
	webGroup.Use(mwsvc.Version()) // Add app version to context
	webGroup.Use(mwecho.CSRFWithConfig(mwecho.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
	}))
	webGroup.Use(mwsvc.CSRF()) // Copy CSRF token to request context for templates
	webhttp.RegisterRoutes(webGroup, webHandler)

	//
	// HTTP server
	//
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		Echo: e,
		HTTP: srv,
		DB:   db,
	}, nil
}

// backupPath is the database file to snapshot, or empty when the store is
// not a local SQLite file.
func backupPath(cfg *config.Config) string {
	if cfg.DBDriver != config.DriverSQLite {
		return ""
	}
	return cfg.DBPath
}
