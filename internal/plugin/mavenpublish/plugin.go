// Package mavenpublish registers the publish task, which writes one
// component of the publication graph into a Maven repository.
package mavenpublish

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/aarpublish/internal/builder"
	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/host"
	"github.com/specialistvlad/aarpublish/internal/maven"
	"github.com/specialistvlad/aarpublish/internal/publication"
	"github.com/specialistvlad/aarpublish/internal/registry"
	"github.com/specialistvlad/aarpublish/internal/task"
)

// ID is the plugin ID used in project files.
const ID = config.MavenPublishPluginID

// ExtensionName is the name the *Extension is registered under.
const ExtensionName = "publishing"

// TaskName is the name of the publish task.
const TaskName = "publish"

// Module registers the plugin.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.RegisterPlugin(ID, func() host.Plugin { return &Plugin{} })
}

// Extension selects what is published where.
type Extension struct {
	Component  string
	Repository string
}

// Plugin implements host.Plugin.
type Plugin struct {
	ext *Extension
}

func (*Plugin) ID() string { return ID }

// Apply implements host.Plugin.
func (pl *Plugin) Apply(_ context.Context, p *host.Project) error {
	pl.ext = &Extension{
		Component:  publication.DefaultComponent,
		Repository: p.Output("repo"),
	}
	if cfg := p.Model.Publishing; cfg != nil {
		if cfg.Component != "" {
			pl.ext.Component = cfg.Component
		}
		if cfg.Repository != "" {
			pl.ext.Repository = cfg.Repository
		}
	}
	if err := p.AddExtension(ExtensionName, pl.ext); err != nil {
		return err
	}

	p.OnFinalize(func(_ context.Context, g *builder.Graph) error {
		return pl.registerPublishTask(p, g)
	})
	return nil
}

func (pl *Plugin) registerPublishTask(p *host.Project, g *builder.Graph) error {
	component, ok := g.Component(pl.ext.Component)
	if !ok {
		available := g.ComponentNames()
		if len(available) == 0 {
			return fmt.Errorf("cannot publish component '%s': the project has no components", pl.ext.Component)
		}
		return fmt.Errorf("cannot publish component '%s': available components are %s",
			pl.ext.Component, strings.Join(available, ", "))
	}

	var deps []string
	seen := make(map[string]bool)
	for _, a := range component.Artifacts() {
		if a.Task != "" && !seen[a.Task] {
			seen[a.Task] = true
			deps = append(deps, a.Task)
		}
	}

	spec := &task.PublishSpec{
		Component:  component.Name,
		Repository: filepath.Clean(pl.ext.Repository),
		GroupID:    p.Group,
		ArtifactID: p.Name,
		Version:    p.Version,
	}
	repo := maven.NewRepository(spec.Repository)
	coords := maven.Coordinates{GroupID: spec.GroupID, ArtifactID: spec.ArtifactID, Version: spec.Version}

	return p.Tasks.Register(&task.Task{
		Name:        TaskName,
		Group:       task.GroupPublishing,
		Description: fmt.Sprintf("Publishes component '%s' to %s.", component.Name, spec.Repository),
		DependsOn:   deps,
		Spec:        spec,
		Action: func(ctx context.Context) error {
			_, err := repo.Publish(ctx, coords, component)
			return err
		},
	})
}
