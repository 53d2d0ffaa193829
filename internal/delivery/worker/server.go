// Package worker is the sync worker: a Pub/Sub push endpoint plus a periodic sync loop.
package worker

import (
	"log/slog"
	"net/http"

	"patrol/config"
	"patrol/internal/delivery"
	"patrol/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the sync worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := delivery.NewEchoServer(params.Lc, params.Cfg, params.Logger, "Worker", params.Cfg.Worker.Port)

	e := srv.Echo()
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	return srv, nil
}
