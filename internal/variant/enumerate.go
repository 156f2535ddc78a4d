package variant

import (
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/aarpublish/internal/config"
)

// Enumerate computes the variants of an Android library in host order:
// every flavor combination (dimensions in declaration order, flavors in
// declaration order within a dimension) and, inside each combination, every
// build type in declaration order. Relative paths are resolved against
// projectDir.
func Enumerate(android *config.Android, projectDir string) ([]*Variant, error) {
	combinations, err := flavorCombinations(android)
	if err != nil {
		return nil, err
	}

	classpath := resolveAll(projectDir, android.Classpath)

	var variants []*Variant
	for _, flavors := range combinations {
		for _, bt := range android.BuildTypes {
			name := ComputeName(bt.Name, flavors)
			variants = append(variants, &Variant{
				Name:             name,
				BuildType:        bt.Name,
				Flavors:          flavors,
				Sources:          sourceProviders(android, projectDir, name, bt.Name, flavors),
				CompileClasspath: classpath,
				Outgoing:         outgoingConfigurations(name, android.Dependencies),
			})
		}
	}
	return variants, nil
}

// flavorCombinations returns the cartesian product of flavors over the
// declared dimensions. Without flavors there is one empty combination.
func flavorCombinations(android *config.Android) ([][]Flavor, error) {
	if len(android.ProductFlavors) == 0 {
		return [][]Flavor{nil}, nil
	}
	if len(android.FlavorDimensions) == 0 {
		return nil, fmt.Errorf("product flavors are declared but no flavor dimensions are")
	}

	byDimension := make(map[string][]Flavor, len(android.FlavorDimensions))
	for _, d := range android.FlavorDimensions {
		byDimension[d] = nil
	}
	for _, pf := range android.ProductFlavors {
		if _, ok := byDimension[pf.Dimension]; !ok {
			return nil, fmt.Errorf("product flavor '%s' has unknown dimension '%s'", pf.Name, pf.Dimension)
		}
		byDimension[pf.Dimension] = append(byDimension[pf.Dimension], Flavor{Dimension: pf.Dimension, Name: pf.Name})
	}

	combinations := [][]Flavor{nil}
	for _, d := range android.FlavorDimensions {
		flavors := byDimension[d]
		if len(flavors) == 0 {
			return nil, fmt.Errorf("no product flavors declared for dimension '%s'", d)
		}
		next := make([][]Flavor, 0, len(combinations)*len(flavors))
		for _, prefix := range combinations {
			for _, f := range flavors {
				combo := make([]Flavor, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, f))
			}
		}
		combinations = next
	}
	return combinations, nil
}

// sourceProviders lists the variant's source sets from lowest to highest
// priority.
func sourceProviders(android *config.Android, projectDir, variantName, buildType string, flavors []Flavor) []SourceProvider {
	names := []string{"main"}
	for _, f := range flavors {
		names = append(names, f.Name)
	}
	if len(flavors) > 1 {
		names = append(names, combineFlavors(flavors))
	}
	names = append(names, buildType)
	if variantName != buildType {
		names = append(names, variantName)
	}

	providers := make([]SourceProvider, 0, len(names))
	for _, n := range names {
		providers = append(providers, sourceSetFor(android, projectDir, n))
	}
	return providers
}

func sourceSetFor(android *config.Android, projectDir, name string) *SourceSet {
	if declared, ok := android.SourceSets[name]; ok {
		return &SourceSet{
			SetName:    name,
			JavaDirs:   resolveAll(projectDir, declared.JavaDirs),
			KotlinDirs: resolveAll(projectDir, declared.KotlinDirs),
		}
	}
	return &SourceSet{
		SetName:    name,
		JavaDirs:   []string{filepath.Join(projectDir, "src", name, "java")},
		KotlinDirs: []string{filepath.Join(projectDir, "src", name, "kotlin")},
	}
}

func resolveAll(base string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(base, p)
		}
	}
	return out
}

// Configurations feeding each outgoing configuration, as in the Android
// Gradle plugin: api is exported at compile time, implementation and
// runtimeOnly only at runtime.
var (
	apiConfigurations     = map[string]bool{"api": true}
	runtimeConfigurations = map[string]bool{"api": true, "implementation": true, "runtimeOnly": true}
)

func outgoingConfigurations(variantName string, deps []*config.Dependency) []*OutgoingConfiguration {
	api := &OutgoingConfiguration{
		Name: variantName + "ApiElements",
		Secondary: []SecondaryVariant{
			{Name: "aidl", ArtifactTypes: []string{"android-aidl"}},
			{Name: "classes", ArtifactTypes: []string{"android-classes"}},
			{Name: "renderscript", ArtifactTypes: []string{"android-renderscript"}},
		},
	}
	runtime := &OutgoingConfiguration{
		Name: variantName + "RuntimeElements",
		Secondary: []SecondaryVariant{
			{Name: "classes", ArtifactTypes: []string{"android-classes"}},
			{Name: "jar", ArtifactTypes: []string{"jar"}},
			{Name: "lint", ArtifactTypes: []string{"android-lint"}},
		},
	}

	for _, d := range deps {
		dep := Dependency{GroupID: d.GroupID, ArtifactID: d.ArtifactID, Version: d.Version}
		if apiConfigurations[d.Configuration] {
			api.Dependencies = append(api.Dependencies, dep)
		}
		if runtimeConfigurations[d.Configuration] {
			runtime.Dependencies = append(runtime.Dependencies, dep)
		}
	}
	return []*OutgoingConfiguration{api, runtime}
}
