// Package http serves the doctor registry REST API.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"voll/config"
	"voll/internal/delivery"
	httpmiddleware "voll/internal/delivery/http/middleware"
	"voll/internal/delivery/http/router"
	"voll/internal/delivery/http/validator"
	"voll/internal/delivery/middleware"
	"voll/internal/domain/lifecycle"
	"voll/internal/errors"
	"voll/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type httpServer struct {
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
	Metrics      *metrics.Metrics
	RouterParams router.RouterParams
}

// NewServer builds the echo instance with its middleware chain and routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer, err := NewEcho(params.Cfg, params.Logger, params.Metrics)
	if err != nil {
		return nil, err
	}

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho returns an echo instance with the middleware chain in place and no routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*echo.Echo, error) {
	ipExtractor, err := newIPExtractor(cfg.HTTP.TrustedProxies)
	if err != nil {
		return nil, err
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.IPExtractor = ipExtractor
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover first to catch panics early
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID before anything that logs
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Metrics wraps the logger so it sees the rendered status
	if m != nil {
		skipPath := ""
		if cfg.Metrics != nil {
			skipPath = cfg.Metrics.Path
		}
		metricsMiddleware := httpmiddleware.NewMetricsMiddleware(m, skipPath)
		echoServer.Use(metricsMiddleware.Handle)
	}

	// 4. Logger renders handler errors
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 5. CORS
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		ExposeHeaders: []string{echo.HeaderLocation, echo.HeaderRetryAfter, echo.HeaderXRequestID},
	}))

	// 6. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	errorMiddleware := httpmiddleware.NewErrorMiddleware(logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	return echoServer, nil
}

// newIPExtractor trusts X-Forwarded-For only when the hop that sent it is one of
// the configured proxy ranges. Without any, the peer address is the client IP.
func newIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid trusted proxy range %q", cidr)
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(options...), nil
}

func (s *httpServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
