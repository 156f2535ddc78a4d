package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks a project file may contain.
type fileRoot struct {
	Projects      []*projectBlock       `hcl:"project,block"`
	Androids      []*androidBlock       `hcl:"android,block"`
	AarPublishing []*aarPublishingBlock `hcl:"aar_publishing,block"`
	Publishing    []*publishingBlock    `hcl:"publishing,block"`
	Remain        hcl.Body              `hcl:",remain"`
}

type projectBlock struct {
	Name     string   `hcl:"name"`
	Group    string   `hcl:"group,optional"`
	Version  string   `hcl:"version,optional"`
	Plugins  []string `hcl:"plugins,optional"`
	BuildDir string   `hcl:"build_dir,optional"`
}

type androidBlock struct {
	Namespace            string                `hcl:"namespace,optional"`
	BootClasspath        []string              `hcl:"boot_classpath,optional"`
	Classpath            []string              `hcl:"classpath,optional"`
	ClassesDirs          []string              `hcl:"classes_dirs,optional"`
	DefaultPublishConfig string                `hcl:"default_publish_config,optional"`
	FlavorDimensions     []string              `hcl:"flavor_dimensions,optional"`
	BuildTypes           []*buildTypeBlock     `hcl:"build_type,block"`
	ProductFlavors       []*productFlavorBlock `hcl:"product_flavor,block"`
	SourceSets           []*sourceSetBlock     `hcl:"source_set,block"`
	Dependencies         []*dependencyBlock    `hcl:"dependency,block"`
}

type buildTypeBlock struct {
	Name string `hcl:"name,label"`
}

type productFlavorBlock struct {
	Name      string `hcl:"name,label"`
	Dimension string `hcl:"dimension,optional"`
}

type sourceSetBlock struct {
	Name       string   `hcl:"name,label"`
	JavaDirs   []string `hcl:"java_dirs,optional"`
	KotlinDirs []string `hcl:"kotlin_dirs,optional"`
}

type dependencyBlock struct {
	Configuration string `hcl:"configuration,label"`
	Coordinates   string `hcl:"coordinates,label"`
}

// Booleans are pointers so an omitted attribute keeps the plugin default.
type aarPublishingBlock struct {
	PublishJavadoc *bool   `hcl:"publish_javadoc,optional"`
	PublishSources *bool   `hcl:"publish_sources,optional"`
	Aggregate      *bool   `hcl:"aggregate,optional"`
	Strategy       *string `hcl:"strategy,optional"`
}

type publishingBlock struct {
	Component  string `hcl:"component,optional"`
	Repository string `hcl:"repository,optional"`
}
