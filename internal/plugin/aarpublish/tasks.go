package aarpublish

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/aarpublish/internal/archive"
	"github.com/specialistvlad/aarpublish/internal/fsutil"
	"github.com/specialistvlad/aarpublish/internal/host"
	"github.com/specialistvlad/aarpublish/internal/task"
	"github.com/specialistvlad/aarpublish/internal/variant"
)

// Include patterns.
const (
	JavaPattern   = "**/*.java"
	KotlinPattern = "**/*.kt"
)

func JavadocTaskName(v *variant.Variant) string {
	return "javadoc" + variant.Capitalize(v.Name)
}

func JavadocJarTaskName(v *variant.Variant) string {
	return "package" + variant.Capitalize(v.Name) + "Javadoc"
}

func SourcesJarTaskName(v *variant.Variant) string {
	return "package" + variant.Capitalize(v.Name) + "Sources"
}

// JavadocSources returns the variant's Java source folders narrowed to
// Java files.
func JavadocSources(v *variant.Variant) []fsutil.FileTree {
	folders := v.JavaSourceFolders()
	out := make([]fsutil.FileTree, len(folders))
	for i, f := range folders {
		out[i] = f.WithIncludes(JavaPattern)
	}
	return out
}

// SourcesJarInputs returns the unfiltered Java folders followed by a Kotlin
// view of every directory tree of the providers that expose them. Trees
// the providers hand out are never narrowed in place.
func SourcesJarInputs(v *variant.Variant) []fsutil.FileTree {
	inputs := v.JavaSourceFolders()
	for _, provider := range v.Sources {
		set, ok := provider.(variant.SourceDirectorySet)
		if !ok {
			continue
		}
		for _, tree := range set.SourceDirectoryTrees() {
			inputs = append(inputs, tree.WithIncludes(KotlinPattern))
		}
	}
	return inputs
}

func (pl *Plugin) jarName(p *host.Project, v *variant.Variant, classifier string) string {
	return filepath.Join(p.Output("libs"), p.Name+"-"+v.Name+"-"+classifier+".jar")
}

// registerJavadocTasks registers javadoc<V> and package<V>Javadoc and
// returns the jar path.
func (pl *Plugin) registerJavadocTasks(p *host.Project, v *variant.Variant, bootClasspath []string) (string, error) {
	spec := &task.JavadocSpec{
		Sources:   JavadocSources(v),
		Classpath: append(append([]string(nil), bootClasspath...), v.CompileClasspath...),
		OutputDir: p.Output("docs", "javadoc", v.Name),
		HTML5:     true,
	}
	err := p.Tasks.Register(&task.Task{
		Name:        JavadocTaskName(v),
		Group:       task.GroupDocumentation,
		Description: fmt.Sprintf("Generates Javadoc for the %s variant.", v.Name),
		Spec:        spec,
		Action: func(ctx context.Context) error {
			if p.Toolchain.Javadoc == nil {
				return fmt.Errorf("no javadoc generator configured")
			}
			return p.Toolchain.Javadoc.Generate(ctx, spec)
		},
	})
	if err != nil {
		return "", err
	}

	jar := &task.JarSpec{
		Inputs:     []fsutil.FileTree{fsutil.NewFileTree(spec.OutputDir)},
		Output:     pl.jarName(p, v, "javadoc"),
		Classifier: "javadoc",
	}
	err = p.Tasks.Register(&task.Task{
		Name:        JavadocJarTaskName(v),
		Group:       task.GroupBuild,
		Description: fmt.Sprintf("Packages the Javadoc of the %s variant.", v.Name),
		DependsOn:   []string{JavadocTaskName(v)},
		Spec:        jar,
		Action:      writeJar(jar),
	})
	return jar.Output, err
}

// registerSourcesTask registers package<V>Sources and returns the jar path.
func (pl *Plugin) registerSourcesTask(p *host.Project, v *variant.Variant) (string, error) {
	jar := &task.JarSpec{
		Inputs:     SourcesJarInputs(v),
		Output:     pl.jarName(p, v, "sources"),
		Classifier: "sources",
	}
	err := p.Tasks.Register(&task.Task{
		Name:        SourcesJarTaskName(v),
		Group:       task.GroupBuild,
		Description: fmt.Sprintf("Packages the sources of the %s variant.", v.Name),
		Spec:        jar,
		Action:      writeJar(jar),
	})
	return jar.Output, err
}

func writeJar(spec *task.JarSpec) task.Action {
	return func(ctx context.Context) error {
		_, err := archive.WriteJar(ctx, spec.Output, spec.Inputs)
		return err
	}
}
