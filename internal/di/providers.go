package di

import (
	"QuoteBoard/internal/domain/repository"
	"QuoteBoard/internal/service/sim"
	"QuoteBoard/internal/usecase"
	"QuoteBoard/pkg/config"
	xhttp "QuoteBoard/pkg/http"
	applogger "QuoteBoard/pkg/logger"
	"QuoteBoard/pkg/metrics"
	"QuoteBoard/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideQuoteSource creates the simulated quote source.
func ProvideQuoteSource(cfg *config.Config, l *applogger.Logger) repository.QuoteSource {
	return sim.New(
		sim.WithLatency(cfg.Source.LatencyMin, cfg.Source.LatencyMax),
		sim.WithFailureRate(cfg.Source.FailureRate),
		sim.WithLogger(l),
	)
}

// ProvideEngine creates the view-state engine.
func ProvideEngine(source repository.QuoteSource, m repository.Metrics, l *applogger.Logger) *usecase.Engine {
	return usecase.New(source, usecase.WithMetrics(m), usecase.WithLogger(l))
}

// ProvideMetricsServer creates the metrics HTTP server, or nil when disabled.
func ProvideMetricsServer(cfg *config.Config, l *applogger.Logger) *xhttp.Server {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return xhttp.NewServer(l, nil,
		xhttp.WithHost(cfg.Metrics.Host),
		xhttp.WithPort(cfg.Metrics.Port),
		xhttp.WithTimeouts(cfg.Metrics.ReadTimeout, cfg.Metrics.WriteTimeout, cfg.Metrics.ShutdownTimeout),
	)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, engine *usecase.Engine, httpServer *xhttp.Server, l *applogger.Logger) *server.App {
	return server.New(cfg, engine, httpServer, l)
}
