package publication

import (
	"sort"
	"strings"

	"github.com/specialistvlad/aarpublish/internal/variant"
)

// Attribute names used on archives configurations.
const (
	UsageAttribute     = "org.gradle.usage"
	BundlingAttribute  = "org.gradle.dependency.bundling"
	BuildTypeAttribute = "com.android.build.api.attributes.BuildTypeAttr"

	UsageJavadocAndSources = "javadocAndSources"
	BundlingExternal       = "external"
)

// Attributes is an attribute set keyed by attribute name.
type Attributes map[string]string

// Names returns the attribute names in sorted order.
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for n := range a {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// String renders the set deterministically as name=value pairs.
func (a Attributes) String() string {
	parts := make([]string, 0, len(a))
	for _, n := range a.Names() {
		parts = append(parts, n+"="+a[n])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Equal reports whether both sets hold the same pairs.
func (a Attributes) Equal(other Attributes) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// VariantAttributes derives the attribute identity of a variant: its build
// type plus one attribute per flavor dimension.
func VariantAttributes(v *variant.Variant) Attributes {
	attrs := Attributes{BuildTypeAttribute: v.BuildType}
	for _, f := range v.Flavors {
		attrs[f.Dimension] = f.Name
	}
	return attrs
}

// Maven scopes.
const (
	ScopeCompile = "compile"
	ScopeRuntime = "runtime"
)

// MavenScope maps an outgoing configuration name onto a Maven scope. Names
// that are neither API nor runtime elements have no scope.
func MavenScope(configuration string) string {
	switch {
	case strings.HasSuffix(configuration, "ApiElements"):
		return ScopeCompile
	case strings.HasSuffix(configuration, "RuntimeElements"):
		return ScopeRuntime
	default:
		return ""
	}
}

// IsRedundantVariant reports whether a configuration variant only offers an
// alternative form of the binary artifact and must be skipped.
func IsRedundantVariant(artifactTypes []string) bool {
	for _, t := range artifactTypes {
		if strings.Contains(t, "android-") || t == "jar" {
			return true
		}
	}
	return false
}
