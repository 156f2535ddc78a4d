package variant

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/specialistvlad/aarpublish/internal/fsutil"
)

// Flavor is one product flavor selected along a dimension.
type Flavor struct {
	Dimension string
	Name      string
}

// Variant is one finalized build-type × flavor configuration.
type Variant struct {
	Name      string
	BuildType string
	// Flavors are ordered by flavor dimension declaration order.
	Flavors []Flavor
	// Sources are ordered from lowest to highest priority: main, flavors,
	// multi-flavor, build type, variant.
	Sources          []SourceProvider
	CompileClasspath []string
	// Outgoing holds the <variant>ApiElements and <variant>RuntimeElements
	// configurations the host exposes for dependency resolution.
	Outgoing []*OutgoingConfiguration
}

// Dependency is a resolved library coordinate on an outgoing configuration.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// OutgoingConfiguration is a consumable configuration of a variant. Besides
// its primary variant it carries secondary variants, each offering the
// variant's output under other artifact types.
type OutgoingConfiguration struct {
	Name         string
	Dependencies []Dependency
	Secondary    []SecondaryVariant
}

// SecondaryVariant is an alternative representation of an outgoing
// configuration, e.g. the compiled classes directory.
type SecondaryVariant struct {
	Name          string
	ArtifactTypes []string
}

// SourceProvider is a named contributor of Java source folders.
type SourceProvider interface {
	Name() string
	JavaDirectories() []string
}

// SourceDirectorySet is implemented by providers that expose their Java and
// Kotlin directory trees. Only these take part in Kotlin source filtering.
type SourceDirectorySet interface {
	SourceProvider
	SourceDirectoryTrees() []fsutil.FileTree
}

// SourceSet is a conventional src/<name> source set.
type SourceSet struct {
	SetName    string
	JavaDirs   []string
	KotlinDirs []string
}

func (s *SourceSet) Name() string { return s.SetName }

// JavaDirectories returns the Java source roots.
func (s *SourceSet) JavaDirectories() []string { return s.JavaDirs }

// SourceDirectoryTrees returns unfiltered trees for every Java and Kotlin
// root; the Kotlin roots are registered with the Java sources as the Kotlin
// Android plugin does.
func (s *SourceSet) SourceDirectoryTrees() []fsutil.FileTree {
	trees := make([]fsutil.FileTree, 0, len(s.JavaDirs)+len(s.KotlinDirs))
	for _, d := range s.JavaDirs {
		trees = append(trees, fsutil.NewFileTree(d))
	}
	for _, d := range s.KotlinDirs {
		trees = append(trees, fsutil.NewFileTree(d))
	}
	return trees
}

// JavaSourceFolders returns the Java source roots of every provider, in
// provider order.
func (v *Variant) JavaSourceFolders() []fsutil.FileTree {
	var trees []fsutil.FileTree
	for _, p := range v.Sources {
		for _, d := range p.JavaDirectories() {
			trees = append(trees, fsutil.NewFileTree(d))
		}
	}
	return trees
}

// FlavorNames returns the flavor names in dimension order.
func (v *Variant) FlavorNames() []string {
	names := make([]string, len(v.Flavors))
	for i, f := range v.Flavors {
		names[i] = f.Name
	}
	return names
}

// ComputeName derives a variant name from its build type and flavors:
// flavors in camel case followed by the capitalized build type, e.g.
// developmentDebug. Without flavors the name is the build type.
func ComputeName(buildType string, flavors []Flavor) string {
	if len(flavors) == 0 {
		return buildType
	}
	return combineFlavors(flavors) + Capitalize(buildType)
}

func combineFlavors(flavors []Flavor) string {
	var sb strings.Builder
	for i, f := range flavors {
		if i == 0 {
			sb.WriteString(f.Name)
		} else {
			sb.WriteString(Capitalize(f.Name))
		}
	}
	return sb.String()
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
