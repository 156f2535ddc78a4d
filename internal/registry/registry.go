package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/aarpublish/internal/host"
)

// Module is the interface that all built-in plugin packages implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Factory creates a fresh plugin instance for one project.
type Factory func() host.Plugin

// Registry holds the plugin factories of one application instance.
type Registry struct {
	plugins map[string]Factory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{plugins: make(map[string]Factory)}
}

// RegisterPlugin registers a plugin factory. Registering an ID twice is a
// programming error and panics.
func (r *Registry) RegisterPlugin(id string, factory Factory) {
	if _, exists := r.plugins[id]; exists {
		panic(fmt.Sprintf("plugin with id '%s' already registered", id))
	}
	slog.Debug("Registering plugin.", "id", id)
	r.plugins[id] = factory
}

// Plugin creates the plugin registered under id.
func (r *Registry) Plugin(id string) (host.Plugin, bool) {
	factory, ok := r.plugins[id]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// IDs returns every registered ID, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.plugins))
	for id := range r.plugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
