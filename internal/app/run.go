package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/executor"
	"github.com/specialistvlad/aarpublish/internal/hcl"
	"github.com/specialistvlad/aarpublish/internal/host"
	"github.com/specialistvlad/aarpublish/internal/plugin/mavenpublish"
)

// Configure runs the configuration phase: plugins are applied in declared
// order, the project is evaluated and the publication graph finalized.
func (a *App) Configure(ctx context.Context) (*host.Project, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	project := host.New(a.model, a.toolchain())
	for _, id := range a.model.Project.Plugins {
		plugin, ok := a.registry.Plugin(id)
		if !ok {
			return nil, fmt.Errorf("unknown plugin '%s'", id)
		}
		if err := project.Apply(ctx, plugin); err != nil {
			return nil, err
		}
	}

	if err := project.Evaluate(ctx); err != nil {
		return nil, fmt.Errorf("failed to evaluate project '%s': %w", project.Name, err)
	}
	graph, err := project.Finalize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize project '%s': %w", project.Name, err)
	}

	a.logger.Info("Project configured.",
		"project", project.Name,
		"variants", project.Variants.Len(),
		"components", graph.ComponentNames(),
		"tasks", project.Tasks.Len(),
	)
	return project, nil
}

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	project, err := a.Configure(ctx)
	if err != nil {
		return err
	}

	taskGraph, err := project.Tasks.Graph()
	if err != nil {
		return fmt.Errorf("failed to build task graph: %w", err)
	}
	a.logger.Debug("Task graph built.", "node_count", taskGraph.Len())

	if a.config.Describe {
		order, err := taskGraph.TopologicalOrder()
		if err != nil {
			return err
		}
		out, err := hcl.Render(project.Graph(), project.Tasks, order)
		if err != nil {
			return fmt.Errorf("failed to render project description: %w", err)
		}
		_, err = a.outW.Write(out)
		return err
	}

	goals := []string{mavenpublish.TaskName}
	if _, ok := project.Tasks.Get(mavenpublish.TaskName); !ok {
		goals = project.Tasks.Names()
	}
	if len(goals) == 0 {
		a.logger.Warn("No tasks registered, execution not required.")
		return nil
	}

	a.logger.Info("🚀 Starting concurrent execution...", "goals", goals)
	exec := executor.New(project.Tasks, taskGraph, a.config.WorkerCount)
	if err := exec.Run(ctx, goals...); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Execution finished.")
	return nil
}
