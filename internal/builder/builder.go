package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/publication"
)

var (
	// ErrDuplicateComponent is returned when two owners register the same
	// component name.
	ErrDuplicateComponent = errors.New("duplicate component")
	// ErrUnknownComponent is returned for contributions to unregistered components.
	ErrUnknownComponent = errors.New("unknown component")
	// ErrArtifactCollision marks two artifacts sharing an extension and
	// classifier within one component.
	ErrArtifactCollision = errors.New("artifact collision")
	// ErrAmbiguousAttributes marks two variants exposing the same attribute set.
	ErrAmbiguousAttributes = errors.New("ambiguous attributes")
	// ErrFinalized is returned for any mutation after Finalize.
	ErrFinalized = errors.New("publication graph already finalized")
)

// Builder collects component contributions during configuration.
type Builder struct {
	components map[string]*componentNode
	finalized  bool
}

type componentNode struct {
	name           string
	owner          string
	configurations map[string]*Configuration
	// artifacts maps an artifact key to the first artifact that claimed it.
	artifacts  map[string]publication.Artifact
	collisions []string
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{components: make(map[string]*componentNode)}
}

// AddComponent registers a component. owner is the name of the variant the
// component belongs to, or "" for shared components. Registering again with
// the same owner is a no-op.
func (b *Builder) AddComponent(ctx context.Context, name, owner string) error {
	if b.finalized {
		return ErrFinalized
	}
	logger := ctxlog.FromContext(ctx)

	if existing, ok := b.components[name]; ok {
		if existing.owner != owner {
			return fmt.Errorf("%w: '%s' is registered by %s and cannot be registered by %s",
				ErrDuplicateComponent, name, describeOwner(existing.owner), describeOwner(owner))
		}
		logger.Debug("Component already registered.", "component", name)
		return nil
	}

	b.components[name] = &componentNode{
		name:           name,
		owner:          owner,
		configurations: make(map[string]*Configuration),
		artifacts:      make(map[string]publication.Artifact),
	}
	logger.Debug("Registered component.", "component", name, "owner", owner)
	return nil
}

func describeOwner(owner string) string {
	if owner == "" {
		return "the project"
	}
	return "variant '" + owner + "'"
}

// HasComponent reports whether a component is registered.
func (b *Builder) HasComponent(name string) bool {
	_, ok := b.components[name]
	return ok
}

// Contribute merges a contribution into its component.
func (b *Builder) Contribute(ctx context.Context, c publication.Contribution) error {
	if b.finalized {
		return ErrFinalized
	}
	comp, ok := b.components[c.Component]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownComponent, c.Component)
	}

	cfg, ok := comp.configurations[c.Configuration]
	if !ok {
		cfg = &Configuration{
			Name:       c.Configuration,
			Variant:    c.Variant,
			Attributes: c.Attributes,
			Scope:      c.Scope,
		}
		comp.configurations[c.Configuration] = cfg
	}
	cfg.Dependencies = append(cfg.Dependencies, c.Dependencies...)
	cfg.Secondary = append(cfg.Secondary, c.Secondary...)

	for _, a := range c.Artifacts {
		key := a.Key()
		if first, taken := comp.artifacts[key]; taken {
			comp.collisions = append(comp.collisions, fmt.Sprintf(
				"component '%s': artifact '%s' from variant '%s' (task %s) collides with variant '%s' (task %s)",
				comp.name, key, a.Variant, a.Task, first.Variant, first.Task))
			continue
		}
		comp.artifacts[key] = a
		cfg.Artifacts = append(cfg.Artifacts, a)
	}

	ctxlog.FromContext(ctx).Debug("Contribution added.",
		"component", c.Component,
		"configuration", c.Configuration,
		"artifacts", len(c.Artifacts),
		"dependencies", len(c.Dependencies),
	)
	return nil
}
