package maven

import (
	"path/filepath"
	"strings"
)

// Coordinates identify a published module.
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
}

func (c Coordinates) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// ArtifactDir is the module's directory relative to the repository root,
// <group as dirs>/<artifactId>.
func (c Coordinates) ArtifactDir() string {
	parts := append(strings.Split(c.GroupID, "."), c.ArtifactID)
	return filepath.Join(parts...)
}

// VersionDir is ArtifactDir/<version>.
func (c Coordinates) VersionDir() string {
	return filepath.Join(c.ArtifactDir(), c.Version)
}

// FileName is <artifactId>-<version>[-<classifier>].<extension>.
func (c Coordinates) FileName(classifier, extension string) string {
	name := c.ArtifactID + "-" + c.Version
	if classifier != "" {
		name += "-" + classifier
	}
	return name + "." + extension
}

// Path joins the repository root, VersionDir and FileName.
func (c Coordinates) Path(repo, classifier, extension string) string {
	return filepath.Join(repo, c.VersionDir(), c.FileName(classifier, extension))
}
