package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/formulagraph/internal/engine"
	"github.com/specialistvlad/formulagraph/internal/workbook"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader workbook.Loader
	engine *engine.Engine
	result *engine.Result
}

// NewApp is the constructor for the main application. Reports go to outW
// unless the config names an output file; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader workbook.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		engine: engine.New(engine.Options{
			KeepUnparsed:  cfg.KeepUnparsed,
			CommentMarker: cfg.CommentMarker,
		}),
	}
}

// Result returns the outcome of the last Run. This is primarily for testing.
func (a *App) Result() *engine.Result {
	return a.result
}
