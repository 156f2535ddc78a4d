package host

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/specialistvlad/aarpublish/internal/builder"
	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/javadoc"
	"github.com/specialistvlad/aarpublish/internal/task"
	"github.com/specialistvlad/aarpublish/internal/variant"
)

// ErrDuplicateExtension is returned when an extension name is taken.
var ErrDuplicateExtension = errors.New("duplicate extension")

type phase int

const (
	phaseConfiguring phase = iota
	phaseEvaluated
	phaseFinalized
)

// Toolchain holds the external tools tasks may call.
type Toolchain struct {
	Javadoc javadoc.Generator
}

// Project is a single library project.
type Project struct {
	Name     string
	Group    string
	Version  string
	Dir      string
	BuildDir string

	// Model is the loaded project file.
	Model *config.Model

	Plugins    *PluginContainer
	Tasks      *task.Container
	Variants   *variant.Collection
	Components *builder.Builder
	Toolchain  Toolchain

	extensions    map[string]any
	afterEvaluate []func(context.Context) error
	onFinalize    []func(context.Context, *builder.Graph) error
	graph         *builder.Graph
	phase         phase
}

// New creates a project from a loaded model.
func New(model *config.Model, toolchain Toolchain) *Project {
	return &Project{
		Name:       model.Project.Name,
		Group:      model.Project.Group,
		Version:    model.Project.Version,
		Dir:        model.Project.Dir,
		BuildDir:   model.Project.BuildDir,
		Model:      model,
		Plugins:    newPluginContainer(),
		Tasks:      task.NewContainer(),
		Variants:   variant.NewCollection(),
		Components: builder.New(),
		Toolchain:  toolchain,
		extensions: make(map[string]any),
	}
}

// Apply applies a plugin. Plugins may only be applied while configuring.
func (p *Project) Apply(ctx context.Context, plugin Plugin) error {
	if p.phase != phaseConfiguring {
		return fmt.Errorf("cannot apply plugin '%s' after the project is evaluated", plugin.ID())
	}
	ctxlog.FromContext(ctx).Debug("Applying plugin.", "plugin", plugin.ID())
	return p.Plugins.apply(ctx, p, plugin)
}

// AddExtension registers a named configuration object.
func (p *Project) AddExtension(name string, ext any) error {
	if _, exists := p.extensions[name]; exists {
		return fmt.Errorf("%w: '%s'", ErrDuplicateExtension, name)
	}
	p.extensions[name] = ext
	return nil
}

// Extension returns a registered extension.
func (p *Project) Extension(name string) (any, bool) {
	ext, ok := p.extensions[name]
	return ext, ok
}

// AfterEvaluate registers a hook run by Evaluate in registration order.
func (p *Project) AfterEvaluate(fn func(context.Context) error) {
	p.afterEvaluate = append(p.afterEvaluate, fn)
}

// OnFinalize registers a hook run once the publication graph is valid.
func (p *Project) OnFinalize(fn func(context.Context, *builder.Graph) error) {
	p.onFinalize = append(p.onFinalize, fn)
}

// Evaluate ends plugin application and runs the after-evaluate hooks.
func (p *Project) Evaluate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if p.phase != phaseConfiguring {
		return fmt.Errorf("project '%s' is already evaluated", p.Name)
	}
	p.phase = phaseEvaluated

	for _, fn := range p.afterEvaluate {
		if err := fn(ctx); err != nil {
			return err
		}
	}

	unresolved := p.Plugins.unresolved()
	sort.Strings(unresolved)
	for _, id := range unresolved {
		logger.Debug("Plugin was never applied; its callbacks did not run.", "plugin", id)
	}

	logger.Debug("Project evaluated.", "plugins", p.Plugins.IDs(), "variants", p.Variants.Names())
	return nil
}

// Finalize validates the publication graph and runs the finalize hooks.
func (p *Project) Finalize(ctx context.Context) (*builder.Graph, error) {
	if p.phase != phaseEvaluated {
		return nil, fmt.Errorf("project '%s' must be evaluated exactly once before it is finalized", p.Name)
	}
	graph, err := p.Components.Finalize(ctx)
	if err != nil {
		return nil, err
	}
	p.graph = graph
	p.phase = phaseFinalized

	for _, fn := range p.onFinalize {
		if err := fn(ctx, graph); err != nil {
			return nil, err
		}
	}
	return graph, nil
}

// Graph returns the finalized publication graph, nil before Finalize.
func (p *Project) Graph() *builder.Graph {
	return p.graph
}

// Output resolves a path below the build directory.
func (p *Project) Output(elem ...string) string {
	return filepath.Join(append([]string{p.BuildDir}, elem...)...)
}
