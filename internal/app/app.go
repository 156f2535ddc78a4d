package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/host"
	"github.com/specialistvlad/aarpublish/internal/javadoc"
	"github.com/specialistvlad/aarpublish/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	config   *Config
}

// NewApp is the constructor for the main application. It loads the project
// files, registers the built-in plugins and validates the requested plugin
// IDs against them. Logs go to logW; describe output goes to outW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	applyOverrides(model, appConfig)
	logger.Debug("Project loaded and translated into unified model.", "project", model.Project.Name)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All plugin modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx, model.Project.Plugins); err != nil {
		return nil, err
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		config:   appConfig,
	}, nil
}

// applyOverrides lets command-line flags win over the publishing block.
func applyOverrides(model *config.Model, cfg *Config) {
	if cfg.Repository == "" && cfg.Component == "" {
		return
	}
	if model.Publishing == nil {
		model.Publishing = &config.Publishing{}
	}
	if cfg.Repository != "" {
		model.Publishing.Repository = cfg.Repository
	}
	if cfg.Component != "" {
		model.Publishing.Component = cfg.Component
	}
}

// Model returns the loaded project model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

func (a *App) toolchain() host.Toolchain {
	if a.config.Javadoc != nil {
		return host.Toolchain{Javadoc: a.config.Javadoc}
	}
	return host.Toolchain{Javadoc: javadoc.NewTool(a.config.JavadocTool)}
}
