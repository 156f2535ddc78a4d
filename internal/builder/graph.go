package builder

import (
	"sort"

	"github.com/specialistvlad/aarpublish/internal/publication"
	"github.com/specialistvlad/aarpublish/internal/variant"
)

// Graph is the finalized publication graph. Components, configurations and
// artifacts are sorted, so two graphs built from the same inputs are equal.
type Graph struct {
	Components []*Component
}

// Component is a named, publishable bundle of configurations.
type Component struct {
	Name           string
	Configurations []*Configuration
}

// Configuration is one attribute-tagged set of artifacts and dependencies.
type Configuration struct {
	Name string
	// Variant is the variant the configuration was contributed by; the
	// aggregate configuration records the first contributor.
	Variant      string
	Attributes   publication.Attributes
	Scope        string
	Dependencies []variant.Dependency
	Secondary    []publication.VariantMapping
	Artifacts    []publication.Artifact
}

// Component returns the named component.
func (g *Graph) Component(name string) (*Component, bool) {
	i := sort.Search(len(g.Components), func(i int) bool { return g.Components[i].Name >= name })
	if i < len(g.Components) && g.Components[i].Name == name {
		return g.Components[i], true
	}
	return nil, false
}

// ComponentNames lists the component names in order.
func (g *Graph) ComponentNames() []string {
	names := make([]string, len(g.Components))
	for i, c := range g.Components {
		names[i] = c.Name
	}
	return names
}

// Artifacts returns every artifact of the component ordered by key.
func (c *Component) Artifacts() []publication.Artifact {
	var out []publication.Artifact
	for _, cfg := range c.Configurations {
		out = append(out, cfg.Artifacts...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Configuration returns the named configuration.
func (c *Component) Configuration(name string) (*Configuration, bool) {
	for _, cfg := range c.Configurations {
		if cfg.Name == name {
			return cfg, true
		}
	}
	return nil, false
}

// snapshot copies the builder state into a sorted Graph.
func (b *Builder) snapshot() *Graph {
	g := &Graph{}
	for _, name := range sortedKeys(b.components) {
		node := b.components[name]
		comp := &Component{Name: name}
		for _, cfgName := range sortedKeys(node.configurations) {
			src := node.configurations[cfgName]
			cfg := *src
			cfg.Artifacts = append([]publication.Artifact(nil), src.Artifacts...)
			sort.SliceStable(cfg.Artifacts, func(i, j int) bool { return cfg.Artifacts[i].Key() < cfg.Artifacts[j].Key() })
			cfg.Dependencies = append([]variant.Dependency(nil), src.Dependencies...)
			cfg.Secondary = append([]publication.VariantMapping(nil), src.Secondary...)
			comp.Configurations = append(comp.Configurations, &cfg)
		}
		g.Components = append(g.Components, comp)
	}
	return g
}
