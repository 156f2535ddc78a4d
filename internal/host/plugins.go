package host

import (
	"context"
	"fmt"
)

// Plugin extends a project.
type Plugin interface {
	ID() string
	Apply(ctx context.Context, p *Project) error
}

// PluginContainer tracks applied plugins and deferred per-plugin callbacks.
type PluginContainer struct {
	applied []string
	byID    map[string]Plugin
	pending map[string][]func(context.Context) error
}

func newPluginContainer() *PluginContainer {
	return &PluginContainer{
		byID:    make(map[string]Plugin),
		pending: make(map[string][]func(context.Context) error),
	}
}

// HasPlugin reports whether the plugin is applied.
func (c *PluginContainer) HasPlugin(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// IDs returns the applied plugin IDs in application order.
func (c *PluginContainer) IDs() []string {
	return append([]string(nil), c.applied...)
}

// WithID runs fn once the plugin with the given id is applied, immediately
// if it already is. If the plugin is never applied fn never runs.
func (c *PluginContainer) WithID(ctx context.Context, id string, fn func(context.Context) error) error {
	if c.HasPlugin(id) {
		return fn(ctx)
	}
	c.pending[id] = append(c.pending[id], fn)
	return nil
}

// apply runs the plugin and then the callbacks waiting for it. Applying the
// same id twice is a no-op.
func (c *PluginContainer) apply(ctx context.Context, p *Project, plugin Plugin) error {
	id := plugin.ID()
	if c.HasPlugin(id) {
		return nil
	}
	c.byID[id] = plugin
	c.applied = append(c.applied, id)

	if err := plugin.Apply(ctx, p); err != nil {
		return fmt.Errorf("failed to apply plugin '%s': %w", id, err)
	}

	callbacks := c.pending[id]
	delete(c.pending, id)
	for _, fn := range callbacks {
		if err := fn(ctx); err != nil {
			return fmt.Errorf("plugin '%s' callback: %w", id, err)
		}
	}
	return nil
}

// unresolved returns the IDs that callbacks wait for but were never applied.
func (c *PluginContainer) unresolved() []string {
	var ids []string
	for id := range c.pending {
		ids = append(ids, id)
	}
	return ids
}
