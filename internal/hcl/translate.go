package hcl

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/aarpublish/internal/config"
)

// translate converts the decoded HCL blocks into the agnostic model and
// applies every default.
func translate(all *decoded, projectDir string) (*config.Model, error) {
	if len(all.projects) != 1 {
		return nil, fmt.Errorf("expected exactly one 'project' block, found %d", len(all.projects))
	}
	singletons := []struct {
		name  string
		count int
	}{
		{"android", len(all.androids)},
		{"aar_publishing", len(all.aarPublishing)},
		{"publishing", len(all.publishing)},
	}
	for _, s := range singletons {
		if s.count > 1 {
			return nil, fmt.Errorf("block '%s' may appear at most once, found %d", s.name, s.count)
		}
	}

	model := &config.Model{
		Project: translateProject(all.projects[0], projectDir),
	}

	if len(all.androids) == 1 {
		android, err := translateAndroid(all.androids[0])
		if err != nil {
			return nil, err
		}
		model.Android = android
	}

	if len(all.aarPublishing) == 1 {
		aar, err := translateAarPublishing(all.aarPublishing[0])
		if err != nil {
			return nil, err
		}
		model.AarPublishing = aar
	}

	if len(all.publishing) == 1 {
		model.Publishing = translatePublishing(all.publishing[0], model.Project)
	}

	return model, nil
}

func translateProject(b *projectBlock, projectDir string) *config.Project {
	buildDir := b.BuildDir
	if buildDir == "" {
		buildDir = "build"
	}
	if !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(projectDir, buildDir)
	}
	version := b.Version
	if version == "" {
		version = "unspecified"
	}
	return &config.Project{
		Name:     b.Name,
		Group:    b.Group,
		Version:  version,
		Plugins:  b.Plugins,
		Dir:      projectDir,
		BuildDir: buildDir,
	}
}

func translateAndroid(b *androidBlock) (*config.Android, error) {
	a := &config.Android{
		Namespace:            b.Namespace,
		BootClasspath:        b.BootClasspath,
		Classpath:            b.Classpath,
		ClassesDirs:          b.ClassesDirs,
		DefaultPublishConfig: b.DefaultPublishConfig,
		FlavorDimensions:     b.FlavorDimensions,
		SourceSets:           make(map[string]*config.SourceSet),
	}

	seenBuildTypes := make(map[string]bool)
	for _, bt := range b.BuildTypes {
		if seenBuildTypes[bt.Name] {
			return nil, fmt.Errorf("build type '%s' declared more than once", bt.Name)
		}
		seenBuildTypes[bt.Name] = true
		a.BuildTypes = append(a.BuildTypes, &config.BuildType{Name: bt.Name})
	}
	if len(a.BuildTypes) == 0 {
		a.BuildTypes = []*config.BuildType{{Name: "debug"}, {Name: "release"}}
	}

	seenFlavors := make(map[string]bool)
	for _, pf := range b.ProductFlavors {
		if seenFlavors[pf.Name] {
			return nil, fmt.Errorf("product flavor '%s' declared more than once", pf.Name)
		}
		seenFlavors[pf.Name] = true
		dimension := pf.Dimension
		// A single declared dimension is implied, as in the Android DSL.
		if dimension == "" && len(b.FlavorDimensions) == 1 {
			dimension = b.FlavorDimensions[0]
		}
		a.ProductFlavors = append(a.ProductFlavors, &config.ProductFlavor{Name: pf.Name, Dimension: dimension})
	}

	for _, ss := range b.SourceSets {
		if _, exists := a.SourceSets[ss.Name]; exists {
			return nil, fmt.Errorf("source set '%s' declared more than once", ss.Name)
		}
		a.SourceSets[ss.Name] = &config.SourceSet{Name: ss.Name, JavaDirs: ss.JavaDirs, KotlinDirs: ss.KotlinDirs}
	}

	for _, d := range b.Dependencies {
		dep, err := parseDependency(d.Configuration, d.Coordinates)
		if err != nil {
			return nil, err
		}
		a.Dependencies = append(a.Dependencies, dep)
	}

	return a, nil
}

// parseDependency splits "group:artifact:version".
func parseDependency(configuration, coordinates string) (*config.Dependency, error) {
	parts := strings.Split(coordinates, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, fmt.Errorf("dependency %q in configuration '%s' must have the form group:artifact:version", coordinates, configuration)
	}
	return &config.Dependency{
		Configuration: configuration,
		GroupID:       parts[0],
		ArtifactID:    parts[1],
		Version:       parts[2],
	}, nil
}

func translateAarPublishing(b *aarPublishingBlock) (*config.AarPublishing, error) {
	a := config.DefaultAarPublishing()
	if b.PublishJavadoc != nil {
		a.PublishJavadoc = *b.PublishJavadoc
	}
	if b.PublishSources != nil {
		a.PublishSources = *b.PublishSources
	}
	if b.Aggregate != nil {
		a.Aggregate = *b.Aggregate
	}
	if b.Strategy != nil {
		switch *b.Strategy {
		case config.StrategyClassifier, config.StrategyAttributes:
			a.Strategy = *b.Strategy
		default:
			return nil, fmt.Errorf("invalid aar_publishing strategy %q: must be '%s' or '%s'", *b.Strategy, config.StrategyClassifier, config.StrategyAttributes)
		}
	}
	return a, nil
}

func translatePublishing(b *publishingBlock, project *config.Project) *config.Publishing {
	p := &config.Publishing{Component: b.Component, Repository: b.Repository}
	if p.Component == "" {
		p.Component = "android"
	}
	if p.Repository == "" {
		p.Repository = filepath.Join(project.BuildDir, "repo")
	} else if !filepath.IsAbs(p.Repository) {
		p.Repository = filepath.Join(project.Dir, p.Repository)
	}
	return p
}
