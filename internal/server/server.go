package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/app/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/config"
	domaingames "github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
	httpserver "github.com/preston-bernstein/nhl-shot-chart-service/internal/http"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/http/handlers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/http/middleware"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/logging"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/metrics"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	gamesService  *games.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server wired to the configured NHL sources.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	sources := newSourceFactory(logger, recorder).build(cfg)
	return newServerWithSources(cfg, logger, recorder, sources, metricsSrv, metricsShutdown)
}

func newServerWithSources(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, sources sourceSet, metricsSrv httpServer, metricsShutdown func(context.Context) error) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	gameSvc := buildService(cfg, sources, logger, recorder)
	httpSrv := buildHTTPServer(cfg, gameSvc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		gamesService:  gameSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, gameSvc *games.Service, httpSrv httpServer) *Server {
	return &Server{
		cfg:          cfg,
		logger:       logger,
		gamesService: gameSvc,
		httpServer:   httpSrv,
	}
}

func buildService(cfg config.Config, sources sourceSet, logger *slog.Logger, recorder *metrics.Recorder) *games.Service {
	return games.NewService(games.Options{
		Legacy:           sources.legacy,
		Edge:             sources.edge,
		Schedule:         sources.schedule,
		Dumper:           buildDumper(cfg, sources, logger),
		Recorder:         recorder,
		Logger:           logger,
		ShowShotAttempts: cfg.Chart.ShowShotAttempts,
	})
}

func buildHTTPServer(cfg config.Config, gameSvc *games.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	source, ok := domaingames.ParseSource(cfg.Chart.DefaultSource)
	if !ok {
		source = domaingames.SourceLegacy
	}
	handler := handlers.NewHandler(gameSvc, handlers.Config{
		DefaultSource:     source,
		DefaultGameID:     cfg.Chart.DefaultGameID,
		DefaultEdgeGameID: cfg.Chart.DefaultEdgeGameID,
		DefaultTeamID:     cfg.Chart.DefaultTeamID,
		DefaultSeasonID:   cfg.Chart.DefaultSeasonID,
		DefaultTimezone:   cfg.Chart.DefaultTimezone,
		StaticDir:         cfg.StaticDir,
		QRDir:             cfg.Chart.QRDir,
		PublicBaseURL:     cfg.PublicBaseURL,
	}, logger)
	router := httpserver.NewRouter(handler, logger)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return shutdownTimeout
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
