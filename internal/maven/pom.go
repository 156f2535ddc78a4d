package maven

import (
	"encoding/xml"
	"fmt"

	"github.com/specialistvlad/aarpublish/internal/builder"
	"github.com/specialistvlad/aarpublish/internal/publication"
)

// PackagingPom is used when a component has no unclassified artifact.
const PackagingPom = "pom"

type Dependency struct {
	XMLName xml.Name `xml:"dependency"`

	GroupId    string `xml:"groupId"`
	ArtifactId string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
}

type Pom struct {
	XMLName xml.Name `xml:"http://maven.apache.org/POM/4.0.0 project"`

	ModelVersion string `xml:"modelVersion"`
	GroupId      string `xml:"groupId"`
	ArtifactId   string `xml:"artifactId"`
	Version      string `xml:"version"`
	Packaging    string `xml:"packaging"`

	Dependencies []*Dependency `xml:"dependencies>dependency,omitempty"`
}

// NewPom describes a component. Packaging is the extension of the
// unclassified artifact. Dependencies come from every scoped configuration;
// a library reachable in more than one scope keeps compile.
func NewPom(coords Coordinates, component *builder.Component) *Pom {
	p := &Pom{
		ModelVersion: "4.0.0",
		GroupId:      coords.GroupID,
		ArtifactId:   coords.ArtifactID,
		Version:      coords.Version,
		Packaging:    PackagingPom,
	}
	for _, a := range component.Artifacts() {
		if a.Classifier == "" {
			p.Packaging = a.Extension
			break
		}
	}

	byKey := make(map[string]*Dependency)
	for _, cfg := range component.Configurations {
		if cfg.Scope == "" {
			continue
		}
		for _, d := range cfg.Dependencies {
			key := d.GroupID + ":" + d.ArtifactID
			if existing, ok := byKey[key]; ok {
				if cfg.Scope == publication.ScopeCompile {
					existing.Scope = publication.ScopeCompile
				}
				continue
			}
			dep := &Dependency{GroupId: d.GroupID, ArtifactId: d.ArtifactID, Version: d.Version, Scope: cfg.Scope}
			byKey[key] = dep
			p.Dependencies = append(p.Dependencies, dep)
		}
	}
	return p
}

// Marshal renders the POM document.
func (p *Pom) Marshal() ([]byte, error) {
	data, err := xml.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render POM for %s:%s: %w", p.GroupId, p.ArtifactId, err)
	}
	return append(append([]byte(xml.Header), data...), '\n'), nil
}

// Metadata is the artifact-level maven-metadata.xml.
type Metadata struct {
	XMLName    xml.Name `xml:"metadata"`
	GroupId    string   `xml:"groupId"`
	ArtifactId string   `xml:"artifactId"`
	Versioning struct {
		Latest      string   `xml:"latest"`
		Release     string   `xml:"release"`
		Versions    []string `xml:"versions>version"`
		LastUpdated string   `xml:"lastUpdated"`
	} `xml:"versioning"`
}
