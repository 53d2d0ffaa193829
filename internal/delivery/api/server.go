// Package api is the guard-facing REST API.
package api

import (
	"log/slog"

	"patrol/config"
	"patrol/internal/delivery"
	apimiddleware "patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/router"
	"patrol/internal/delivery/api/validator"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := delivery.NewEchoServer(params.Lc, params.Cfg, params.Logger, "API", params.Cfg.HTTP.Port)

	e := srv.Echo()
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.CORS())
	// Must exceed storage.maxPhotoBytes plus multipart overhead.
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv.EnableH2C(&http2.Server{
		IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
	})

	return srv, nil
}
