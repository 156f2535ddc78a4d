package builder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/aarpublish/internal/ctxlog"
)

// Finalize validates the collected graph and freezes the builder. All
// problems are reported together; a non-nil error means no graph.
func (b *Builder) Finalize(ctx context.Context) (*Graph, error) {
	if b.finalized {
		return nil, ErrFinalized
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Finalize: validating publication graph.", "component_count", len(b.components))

	graph := b.snapshot()

	var errs []string
	var sentinels []error
	for _, name := range sortedKeys(b.components) {
		if c := b.components[name].collisions; len(c) > 0 {
			errs = append(errs, c...)
			sentinels = append(sentinels, ErrArtifactCollision)
		}
	}
	if ambiguous := ambiguousAttributeSets(graph); len(ambiguous) > 0 {
		errs = append(errs, ambiguous...)
		sentinels = append(sentinels, ErrAmbiguousAttributes)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Problems: errs, kinds: sentinels}
	}

	b.finalized = true
	logger.Info("Finalize: publication graph is valid.", "components", graph.ComponentNames())
	return graph, nil
}

// ValidationError lists every problem Finalize found.
type ValidationError struct {
	Problems []string
	kinds    []error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("publication graph validation failed:\n- %s", strings.Join(e.Problems, "\n- "))
}

// Is matches the sentinel errors for the kinds of problems found.
func (e *ValidationError) Is(target error) bool {
	for _, k := range e.kinds {
		if k == target {
			return true
		}
	}
	return false
}

// ambiguousAttributeSets finds configurations from different variants with
// the same non-empty attribute set.
func ambiguousAttributeSets(g *Graph) []string {
	type seen struct {
		component, configuration, variant string
	}
	first := make(map[string]seen)
	var problems []string
	for _, comp := range g.Components {
		for _, cfg := range comp.Configurations {
			if len(cfg.Attributes) == 0 {
				continue
			}
			key := cfg.Attributes.String()
			prev, ok := first[key]
			if !ok {
				first[key] = seen{comp.Name, cfg.Name, cfg.Variant}
				continue
			}
			if prev.variant != cfg.Variant {
				problems = append(problems, fmt.Sprintf(
					"configurations '%s.%s' (variant '%s') and '%s.%s' (variant '%s') share attributes %s",
					prev.component, prev.configuration, prev.variant, comp.Name, cfg.Name, cfg.Variant, key))
			}
		}
	}
	return problems
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
