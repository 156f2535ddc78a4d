package config

// Well-known plugin identifiers.
const (
	AndroidLibraryPluginID = "com.android.library"
	AarPublishPluginID     = "aar-publish"
	MavenPublishPluginID   = "maven-publish"
)

// Strategy names accepted by the aar_publishing block.
const (
	StrategyClassifier = "classifier"
	StrategyAttributes = "attributes"
)

// Model is the unified representation of one library project.
type Model struct {
	Project    *Project
	Android    *Android
	Publishing *Publishing
	// AarPublishing is nil when the project does not configure the plugin,
	// in which case the plugin defaults apply.
	AarPublishing *AarPublishing
}

// Project holds the coordinates and the ordered list of applied plugins.
type Project struct {
	Name    string
	Group   string
	Version string
	Plugins []string
	// Dir is the project root all relative paths are resolved against.
	Dir string
	// BuildDir defaults to <Dir>/build.
	BuildDir string
}

// HasPlugin reports whether id is among the applied plugins.
func (p *Project) HasPlugin(id string) bool {
	for _, applied := range p.Plugins {
		if applied == id {
			return true
		}
	}
	return false
}

// Android is the library extension the variant model is derived from.
type Android struct {
	Namespace            string
	BootClasspath        []string
	Classpath            []string
	ClassesDirs          []string
	DefaultPublishConfig string
	FlavorDimensions     []string
	BuildTypes           []*BuildType
	ProductFlavors       []*ProductFlavor
	SourceSets           map[string]*SourceSet
	Dependencies         []*Dependency
}

// BuildType is a `build_type` block.
type BuildType struct {
	Name string
}

// ProductFlavor is a `product_flavor` block.
type ProductFlavor struct {
	Name      string
	Dimension string
}

// SourceSet overrides the conventional directories of a named source set.
// Source sets that are not declared use src/<name>/java and src/<name>/kotlin.
type SourceSet struct {
	Name       string
	JavaDirs   []string
	KotlinDirs []string
}

// Dependency is a library dependency declared in a named configuration such
// as "api" or "implementation".
type Dependency struct {
	Configuration string
	GroupID       string
	ArtifactID    string
	Version       string
}

// Coordinates returns group:artifact:version.
func (d *Dependency) Coordinates() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Version
}

// AarPublishing holds the aar-publish toggles.
type AarPublishing struct {
	PublishJavadoc bool
	PublishSources bool
	Aggregate      bool
	Strategy       string
}

// DefaultAarPublishing returns the plugin defaults.
func DefaultAarPublishing() *AarPublishing {
	return &AarPublishing{
		PublishJavadoc: true,
		PublishSources: true,
		Strategy:       StrategyClassifier,
	}
}

// Publishing selects the component written to the Maven repository.
type Publishing struct {
	Component  string
	Repository string
}
