package aarpublish

import (
	"context"
	"fmt"

	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/host"
	"github.com/specialistvlad/aarpublish/internal/plugin/android"
	"github.com/specialistvlad/aarpublish/internal/publication"
	"github.com/specialistvlad/aarpublish/internal/registry"
	"github.com/specialistvlad/aarpublish/internal/variant"
)

// ID is the plugin ID used in project files.
const ID = config.AarPublishPluginID

// ExtensionName is the name the *Extension is registered under.
const ExtensionName = "aarPublishing"

// Module registers the plugin.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.RegisterPlugin(ID, func() host.Plugin { return New() })
}

// Plugin implements host.Plugin.
type Plugin struct {
	ext       *Extension
	processed map[*variant.Variant]bool
	shared    map[string]bool
}

// New creates the plugin with default settings.
func New() *Plugin {
	return &Plugin{
		ext:       NewExtension(),
		processed: make(map[*variant.Variant]bool),
		shared:    make(map[string]bool),
	}
}

func (*Plugin) ID() string { return ID }

// Extension returns the plugin settings.
func (pl *Plugin) Extension() *Extension { return pl.ext }

// Apply implements host.Plugin.
func (pl *Plugin) Apply(ctx context.Context, p *host.Project) error {
	if err := pl.ext.Configure(p.Model.AarPublishing); err != nil {
		return err
	}
	if err := p.AddExtension(ExtensionName, pl.ext); err != nil {
		return err
	}

	p.AfterEvaluate(func(ctx context.Context) error {
		if !p.Plugins.HasPlugin(android.ID) {
			ctxlog.FromContext(ctx).Debug("Android library plugin not applied; nothing to publish.", "plugin", ID)
		}
		return nil
	})

	return p.Plugins.WithID(ctx, android.ID, func(ctx context.Context) error {
		ext, ok := p.Extension(android.ExtensionName)
		if !ok {
			return fmt.Errorf("plugin '%s' did not register the '%s' extension", android.ID, android.ExtensionName)
		}
		androidExt := ext.(*android.Extension)
		if err := p.Components.AddComponent(ctx, publication.DefaultComponent, ""); err != nil {
			return err
		}
		return p.Variants.All(func(v *variant.Variant) error {
			return pl.onVariant(ctx, p, androidExt, v)
		})
	})
}

// onVariant is invoked exactly once per finalized variant.
func (pl *Plugin) onVariant(ctx context.Context, p *host.Project, androidExt *android.Extension, v *variant.Variant) error {
	if pl.processed[v] {
		return nil
	}
	pl.processed[v] = true
	pl.ext.freeze()

	logger := ctxlog.FromContext(ctx).With("variant", v.Name)
	toggles := pl.ext.Toggles()

	artifacts := []publication.Artifact{
		publication.NewArtifact(publication.KindBinary, v, androidExt.AarOutput(v), android.BundleTaskName(v)),
	}
	for _, kind := range publication.Select(toggles) {
		switch kind {
		case publication.KindJavadoc:
			jar, err := pl.registerJavadocTasks(p, v, androidExt.BootClasspath())
			if err != nil {
				return err
			}
			artifacts = append(artifacts, publication.NewArtifact(kind, v, jar, JavadocJarTaskName(v)))
		case publication.KindSources:
			jar, err := pl.registerSourcesTask(p, v)
			if err != nil {
				return err
			}
			artifacts = append(artifacts, publication.NewArtifact(kind, v, jar, SourcesJarTaskName(v)))
		}
	}

	isDefault := v.Name == androidExt.DefaultPublishConfig()
	if pl.ext.Aggregate() {
		if err := pl.addShared(ctx, p, publication.AggregateComponent); err != nil {
			return err
		}
	}
	if err := p.Components.AddComponent(ctx, publication.VariantComponentName(v.Name), v.Name); err != nil {
		return err
	}

	strategy := pl.ext.Strategy()
	contributions := strategy.Contributions(publication.Input{
		Variant:   v,
		Artifacts: artifacts,
		Default:   isDefault,
		Aggregate: pl.ext.Aggregate(),
	})
	for _, c := range contributions {
		if err := p.Components.Contribute(ctx, c); err != nil {
			return err
		}
	}

	logger.Debug("Variant mapped to publications.",
		"strategy", strategy.Name(),
		"artifacts", len(artifacts),
		"contributions", len(contributions),
		"default", isDefault,
	)
	return nil
}

// addShared registers a project-owned component on first use.
func (pl *Plugin) addShared(ctx context.Context, p *host.Project, name string) error {
	if pl.shared[name] {
		return nil
	}
	pl.shared[name] = true
	return p.Components.AddComponent(ctx, name, "")
}
