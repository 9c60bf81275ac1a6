package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"alvaqth/config"
	"alvaqth/internal/delivery"
	apimiddleware "alvaqth/internal/delivery/api/middleware"
	"alvaqth/internal/delivery/api/router"
	"alvaqth/internal/delivery/api/validator"
	"alvaqth/internal/delivery/middleware"
	"alvaqth/internal/domain/lifecycle"
	"alvaqth/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the companion API on echo and registers its shutdown with fx
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Request ID must run before the access logger so log lines carry it
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	// The board is read by a browser UI served from another origin
	echoServer.Use(echomiddleware.CORS())
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	echoServer.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve listens with h2c so local clients can use HTTP/2 without TLS
func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort(s.host(), strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting companion API server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down companion API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

// host binds to loopback unless the server is explicitly exposed
func (s *apiServer) host() string {
	if s.cfg.HTTP.Host != "" {
		return s.cfg.HTTP.Host
	}

	return "127.0.0.1"
}
