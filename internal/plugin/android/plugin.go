package android

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/aarpublish/internal/archive"
	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/host"
	"github.com/specialistvlad/aarpublish/internal/registry"
	"github.com/specialistvlad/aarpublish/internal/task"
	"github.com/specialistvlad/aarpublish/internal/variant"
)

// ID is the plugin ID used in project files.
const ID = config.AndroidLibraryPluginID

// ExtensionName is the name the *Extension is registered under.
const ExtensionName = "android"

// Module registers the plugin.
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.RegisterPlugin(ID, func() host.Plugin { return &Plugin{} })
}

// Extension exposes the android block to other plugins.
type Extension struct {
	config *config.Android
	dir    string
	build  string
	name   string
}

// BootClasspath returns the platform classpath, resolved against the
// project directory.
func (e *Extension) BootClasspath() []string {
	return resolve(e.dir, e.config.BootClasspath)
}

// DefaultReleaseVariant is the default publish variant when none is set.
const DefaultReleaseVariant = "release"

// DefaultPublishConfig names the variant published as the default component,
// DefaultReleaseVariant unless the android block sets one.
func (e *Extension) DefaultPublishConfig() string {
	if e.config.DefaultPublishConfig == "" {
		return DefaultReleaseVariant
	}
	return e.config.DefaultPublishConfig
}

// BundleTaskName is bundle<Variant>Aar.
func BundleTaskName(v *variant.Variant) string {
	return "bundle" + variant.Capitalize(v.Name) + "Aar"
}

// AarOutput is where the variant's aar is written.
func (e *Extension) AarOutput(v *variant.Variant) string {
	return filepath.Join(e.build, "outputs", "aar", e.name+"-"+v.Name+".aar")
}

// Plugin implements host.Plugin.
type Plugin struct {
	ext *Extension
}

func (*Plugin) ID() string { return ID }

// Apply implements host.Plugin.
func (pl *Plugin) Apply(ctx context.Context, p *host.Project) error {
	android := p.Model.Android
	if android == nil {
		ctxlog.FromContext(ctx).Debug("No android block; using default build types.")
		android = &config.Android{BuildTypes: []*config.BuildType{{Name: "debug"}, {Name: "release"}}}
	}
	pl.ext = &Extension{config: android, dir: p.Dir, build: p.BuildDir, name: p.Name}
	if err := p.AddExtension(ExtensionName, pl.ext); err != nil {
		return err
	}

	if err := p.Variants.All(func(v *variant.Variant) error {
		return pl.registerBundleTask(p, v)
	}); err != nil {
		return err
	}

	p.AfterEvaluate(func(ctx context.Context) error {
		return pl.createVariants(ctx, p)
	})
	return nil
}

func (pl *Plugin) createVariants(ctx context.Context, p *host.Project) error {
	logger := ctxlog.FromContext(ctx)

	variants, err := variant.Enumerate(pl.ext.config, p.Dir)
	if err != nil {
		return fmt.Errorf("failed to compute variants: %w", err)
	}

	// Only an explicit setting must name an existing variant.
	if def := pl.ext.config.DefaultPublishConfig; def != "" {
		found := false
		for _, v := range variants {
			if v.Name == def {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("default_publish_config '%s' does not name a variant", def)
		}
	}

	for _, v := range variants {
		logger.Debug("Variant created.", "variant", v.Name, "build_type", v.BuildType, "flavors", v.FlavorNames())
		if err := p.Variants.Add(v); err != nil {
			return err
		}
	}
	logger.Info("Variants created.", "count", len(variants))
	return nil
}

func (pl *Plugin) registerBundleTask(p *host.Project, v *variant.Variant) error {
	spec := &task.AarSpec{
		Namespace:   pl.ext.config.Namespace,
		ClassesDirs: resolve(p.Dir, pl.ext.config.ClassesDirs),
		Output:      pl.ext.AarOutput(v),
	}
	for _, provider := range v.Sources {
		for _, dir := range provider.JavaDirectories() {
			// res/ sits next to each java/ root of a source set.
			spec.SourceDirs = append(spec.SourceDirs, filepath.Dir(dir))
		}
	}

	return p.Tasks.Register(&task.Task{
		Name:        BundleTaskName(v),
		Group:       task.GroupBuild,
		Description: fmt.Sprintf("Assembles the %s variant's Android archive.", v.Name),
		Spec:        spec,
		Action: func(ctx context.Context) error {
			// The first entry wins, so the highest priority source set goes first.
			var res, assets []string
			for i := len(spec.SourceDirs) - 1; i >= 0; i-- {
				dir := spec.SourceDirs[i]
				res = append(res, filepath.Join(dir, "res"))
				assets = append(assets, filepath.Join(dir, "assets"))
			}
			_, err := archive.WriteAar(ctx, spec.Output, archive.Aar{
				Namespace:    spec.Namespace,
				ClassesDirs:  spec.ClassesDirs,
				ResourceDirs: res,
				AssetDirs:    assets,
			})
			return err
		},
	})
}

func resolve(base string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if filepath.IsAbs(p) {
			out = append(out, p)
		} else {
			out = append(out, filepath.Join(base, p))
		}
	}
	return out
}
