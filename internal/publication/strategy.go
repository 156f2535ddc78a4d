package publication

import (
	"github.com/specialistvlad/aarpublish/internal/variant"
)

// Component names.
const (
	// DefaultComponent receives the default publish variant so consumers
	// that do not ask for a variant still resolve one.
	DefaultComponent = "android"
	// AggregateComponent collects every variant's javadoc and sources.
	AggregateComponent = "all"
	// AggregateConfiguration is the single configuration of the aggregate.
	AggregateConfiguration = "archives"
)

// VariantComponentName names the per-variant component, e.g. androidRelease.
func VariantComponentName(variantName string) string {
	return DefaultComponent + variant.Capitalize(variantName)
}

// ArchivesConfigurationName names the configuration holding a variant's
// artifacts.
func ArchivesConfigurationName(variantName string) string {
	return variantName + "Archives"
}

// VariantMapping records how one configuration variant is published.
type VariantMapping struct {
	Name    string
	Scope   string
	Skipped bool
}

// Contribution adds one configuration's worth of content to a component.
// Contributions naming the same component and configuration merge.
type Contribution struct {
	Component     string
	Configuration string
	// Variant is the variant the content comes from.
	Variant      string
	Attributes   Attributes
	Scope        string
	Dependencies []variant.Dependency
	Secondary    []VariantMapping
	Artifacts    []Artifact
}

// Input is everything a strategy may look at for one variant.
type Input struct {
	Variant *variant.Variant
	// Artifacts are the variant's artifacts with per-variant classifiers.
	Artifacts []Artifact
	// Default marks the default publish variant.
	Default bool
	// Aggregate enables the aggregate component.
	Aggregate bool
}

// Strategy decides the placement of a variant's artifacts.
type Strategy interface {
	Name() string
	Contributions(in Input) []Contribution
}

// ClassifierStrategy publishes attribute-free archives configurations and
// relies on classifiers to disambiguate. It works with and without flavors
// and needs no attribute matching in the consumer.
type ClassifierStrategy struct{}

func (ClassifierStrategy) Name() string { return "classifier" }

// Contributions implements Strategy.
func (ClassifierStrategy) Contributions(in Input) []Contribution {
	return place(in, nil)
}

// AttributeStrategy tags each archives configuration with the variant's
// attribute identity plus usage and bundling, so consumers select by
// attribute matching.
type AttributeStrategy struct{}

func (AttributeStrategy) Name() string { return "attributes" }

// Contributions implements Strategy.
func (AttributeStrategy) Contributions(in Input) []Contribution {
	attrs := VariantAttributes(in.Variant)
	attrs[UsageAttribute] = UsageJavadocAndSources
	attrs[BundlingAttribute] = BundlingExternal
	return place(in, attrs)
}

// place builds the per-variant set, mirrors it into the default component
// for the default variant, and adds the aggregate contribution.
func place(in Input, archivesAttrs Attributes) []Contribution {
	v := in.Variant
	variantSet := variantContributions(v, in.Artifacts, archivesAttrs)

	out := withComponent(variantSet, VariantComponentName(v.Name))
	if in.Default {
		out = append(out, withComponent(variantSet, DefaultComponent)...)
	}

	if in.Aggregate {
		var aggregated []Artifact
		for _, a := range in.Artifacts {
			if a.Kind == KindBinary {
				continue
			}
			aggregated = append(aggregated, a.ForAggregate())
		}
		if len(aggregated) > 0 {
			out = append(out, Contribution{
				Component:     AggregateComponent,
				Configuration: AggregateConfiguration,
				Variant:       v.Name,
				Artifacts:     aggregated,
			})
		}
	}
	return out
}

func variantContributions(v *variant.Variant, artifacts []Artifact, archivesAttrs Attributes) []Contribution {
	set := []Contribution{{
		Configuration: ArchivesConfigurationName(v.Name),
		Variant:       v.Name,
		Attributes:    archivesAttrs,
		Artifacts:     artifacts,
	}}

	for _, o := range v.Outgoing {
		scope := MavenScope(o.Name)
		secondary := make([]VariantMapping, 0, len(o.Secondary))
		for _, s := range o.Secondary {
			m := VariantMapping{Name: s.Name}
			if IsRedundantVariant(s.ArtifactTypes) {
				m.Skipped = true
			} else {
				m.Scope = scope
			}
			secondary = append(secondary, m)
		}
		set = append(set, Contribution{
			Configuration: o.Name,
			Variant:       v.Name,
			Scope:         scope,
			Dependencies:  o.Dependencies,
			Secondary:     secondary,
		})
	}
	return set
}

func withComponent(set []Contribution, component string) []Contribution {
	out := make([]Contribution, len(set))
	for i, c := range set {
		c.Component = component
		out[i] = c
	}
	return out
}

// StrategyByName returns the strategy registered under name.
func StrategyByName(name string) (Strategy, bool) {
	switch name {
	case "", ClassifierStrategy{}.Name():
		return ClassifierStrategy{}, true
	case AttributeStrategy{}.Name():
		return AttributeStrategy{}, true
	default:
		return nil, false
	}
}
