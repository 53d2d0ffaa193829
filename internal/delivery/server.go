package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"patrol/config"
	"patrol/internal/delivery/middleware"
	"patrol/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer serves an echo instance and shuts it down when the fx app stops.
type EchoServer struct {
	name   string
	port   int
	h2c    *http2.Server
	logger *slog.Logger
	echo   *echo.Echo
}

// NewEchoServer builds an echo instance with recover, request id and access log
// middlewares already installed, in that order.
func NewEchoServer(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, name string, port int) *EchoServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	srv := &EchoServer{
		name:   name,
		port:   port,
		logger: logger,
		echo:   e,
	}

	lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

// Echo exposes the instance for routes and further middleware.
func (s *EchoServer) Echo() *echo.Echo {
	return s.echo
}

// EnableH2C serves cleartext HTTP/2 alongside HTTP/1.1.
func (s *EchoServer) EnableH2C(h2 *http2.Server) {
	s.h2c = h2
}

func (s *EchoServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting "+s.name+" HTTP server",
		slog.String("host_port", hostPort),
		slog.Bool("h2c", s.h2c != nil),
	)

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(hostPort, s.h2c)
	} else {
		err = s.echo.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down " + s.name + " HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
