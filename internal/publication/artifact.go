package publication

import (
	"fmt"

	"github.com/specialistvlad/aarpublish/internal/variant"
)

// Kind identifies what an artifact contains.
type Kind int

const (
	KindBinary Kind = iota
	KindJavadoc
	KindSources
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindJavadoc:
		return "javadoc"
	case KindSources:
		return "sources"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Extension returns the file extension artifacts of this kind use.
func (k Kind) Extension() string {
	if k == KindBinary {
		return "aar"
	}
	return "jar"
}

// Toggles are the process-wide publication switches. A single value applies
// to every variant.
type Toggles struct {
	PublishJavadoc bool
	PublishSources bool
}

// DefaultToggles publishes both javadoc and sources.
func DefaultToggles() Toggles {
	return Toggles{PublishJavadoc: true, PublishSources: true}
}

// Select returns the kinds to materialize for a variant. The binary archive
// is always first.
func Select(t Toggles) []Kind {
	kinds := []Kind{KindBinary}
	if t.PublishJavadoc {
		kinds = append(kinds, KindJavadoc)
	}
	if t.PublishSources {
		kinds = append(kinds, KindSources)
	}
	return kinds
}

// Artifact is one produced file plus its publication metadata.
type Artifact struct {
	Kind       Kind
	Extension  string
	Classifier string
	// Variant is the name of the variant the artifact was built from.
	Variant string
	// File is where the producing task writes the artifact.
	File string
	// Task is the name of the producing task.
	Task string
}

// NewArtifact creates an artifact classified for the per-variant component.
func NewArtifact(kind Kind, v *variant.Variant, file, task string) Artifact {
	return Artifact{
		Kind:       kind,
		Extension:  kind.Extension(),
		Classifier: VariantClassifier(kind),
		Variant:    v.Name,
		File:       file,
		Task:       task,
	}
}

// ForAggregate returns a copy classified for the aggregate component.
func (a Artifact) ForAggregate() Artifact {
	a.Classifier = AggregateClassifier(a.Variant, a.Kind)
	return a
}

// Key is the (extension, classifier) pair that must be unique within a
// component.
func (a Artifact) Key() string {
	if a.Classifier == "" {
		return a.Extension
	}
	return a.Classifier + "." + a.Extension
}

// VariantClassifier is the classifier inside a per-variant component: none
// for the binary, the kind name otherwise.
func VariantClassifier(kind Kind) string {
	if kind == KindBinary {
		return ""
	}
	return kind.String()
}

// AggregateClassifier prefixes the kind with the variant name so that every
// variant's javadoc and sources can share one component.
func AggregateClassifier(variantName string, kind Kind) string {
	if kind == KindBinary {
		return variantName
	}
	return variantName + "-" + kind.String()
}
