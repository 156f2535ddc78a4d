package task

import (
	"context"

	"github.com/specialistvlad/aarpublish/internal/fsutil"
)

// Task groups.
const (
	GroupBuild         = "build"
	GroupDocumentation = "documentation"
	GroupPublishing    = "publishing"
)

// Action is the work a task performs when executed.
type Action func(ctx context.Context) error

// Task is a registered, named unit of work.
type Task struct {
	Name        string
	Group       string
	Description string
	// DependsOn lists the names of tasks that must complete first.
	DependsOn []string
	// Spec is the task's declarative input; one of the *Spec types of this
	// package.
	Spec   any
	Action Action
}

// Outputs returns the files or directories the task writes, as declared by
// its spec.
func (t *Task) Outputs() []string {
	switch s := t.Spec.(type) {
	case *JavadocSpec:
		return []string{s.OutputDir}
	case *JarSpec:
		return []string{s.Output}
	case *AarSpec:
		return []string{s.Output}
	case *PublishSpec:
		return []string{s.Repository}
	default:
		return nil
	}
}

// JavadocSpec configures documentation generation.
type JavadocSpec struct {
	// Sources are the source trees, already narrowed to **/*.java.
	Sources []fsutil.FileTree
	// Classpath is the boot classpath followed by the compile classpath.
	Classpath []string
	OutputDir string
	HTML5     bool
}

// JarSpec configures a jar archive built from file trees.
type JarSpec struct {
	Inputs     []fsutil.FileTree
	Output     string
	Classifier string
}

// AarSpec configures the binary Android archive.
type AarSpec struct {
	Namespace   string
	ClassesDirs []string
	// SourceDirs hold Android resources and assets next to each source
	// set's java folder.
	SourceDirs []string
	Output     string
}

// PublishSpec configures writing a component into a Maven repository.
type PublishSpec struct {
	Component  string
	Repository string
	GroupID    string
	ArtifactID string
	Version    string
}
