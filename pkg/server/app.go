package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"QuoteBoard/internal/handler/tui"
	"QuoteBoard/internal/usecase"
	"QuoteBoard/pkg/config"
	xhttp "QuoteBoard/pkg/http"
	applogger "QuoteBoard/pkg/logger"
)

// App encapsulates the entire application lifecycle: the view-state engine,
// the terminal UI program, and the optional metrics endpoint.
type App struct {
	cfg        *config.Config
	engine     *usecase.Engine
	httpServer *xhttp.Server // nil when metrics are disabled
	log        *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, engine *usecase.Engine, httpServer *xhttp.Server, log *applogger.Logger) *App {
	return &App{
		cfg:        cfg,
		engine:     engine,
		httpServer: httpServer,
		log:        log,
	}
}

// Run starts the application and blocks until the UI exits or a signal
// arrives.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Start(); err != nil {
			return err
		}
	}

	program := tea.NewProgram(tui.New(ctx, a.engine, a.log), tea.WithAltScreen())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			program.Quit()
		case <-ctx.Done():
		}
	}()

	a.log.Info("dashboard started",
		applogger.String("env", a.cfg.Environment),
		applogger.Bool("metrics", a.httpServer != nil),
	)

	_, err := program.Run()
	cancel()

	if a.httpServer != nil {
		shutdownCtx, stop := context.WithTimeout(context.Background(), a.cfg.Metrics.ShutdownTimeout)
		defer stop()
		if serr := a.httpServer.Stop(shutdownCtx); serr != nil {
			a.log.Warn("http shutdown error", applogger.Error(serr))
		}
	}

	a.log.Info("shutdown complete")
	return err
}
