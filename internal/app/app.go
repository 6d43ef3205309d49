package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/psetforge/internal/config"
	"github.com/specialistvlad/psetforge/internal/ctxlog"
	"github.com/specialistvlad/psetforge/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. Records are written to
// outW and logs to logW. Modules run first; when none are given the core
// modules run unless cfg.NoBuiltin is set. Catalogs from cfg.Paths are then
// loaded, so they may derive from module records. The returned App holds a
// validated, sealed registry.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 && !cfg.NoBuiltin {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(ctx, reg); err != nil {
			return nil, fmt.Errorf("failed to register module: %w", err)
		}
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if len(cfg.Paths) > 0 {
		model, err := loader.Load(ctx, cfg.Paths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logger.Debug("Configuration loaded.", "records", len(model.Records), "derivations", len(model.Derivations))

		if err := reg.PopulateFromModel(ctx, model); err != nil {
			return nil, fmt.Errorf("failed to populate registry: %w", err)
		}
	}

	if err := reg.Validate(ctx); err != nil {
		return nil, err
	}
	reg.Seal()
	logger.Debug("Registry validated and sealed.", "records", len(reg.Names()))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
