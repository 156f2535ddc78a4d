package maven

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/specialistvlad/aarpublish/internal/builder"
	"github.com/specialistvlad/aarpublish/internal/ctxlog"
)

// Repository is a file-system Maven repository.
type Repository struct {
	Root string
	// Now stamps lastUpdated in the metadata; time.Now when nil.
	Now func() time.Time
}

// NewRepository returns a repository rooted at root.
func NewRepository(root string) *Repository {
	return &Repository{Root: root, Now: time.Now}
}

// Publish copies every artifact of the component into the repository next
// to its POM and updates the module metadata. It returns the written
// artifact and POM paths in order.
func (r *Repository) Publish(ctx context.Context, coords Coordinates, component *builder.Component) ([]string, error) {
	logger := ctxlog.FromContext(ctx).With("coordinates", coords.String(), "component", component.Name)
	if coords.GroupID == "" || coords.ArtifactID == "" || coords.Version == "" {
		return nil, fmt.Errorf("cannot publish component '%s': incomplete coordinates %q", component.Name, coords.String())
	}

	var written []string
	for _, a := range component.Artifacts() {
		dst := coords.Path(r.Root, a.Classifier, a.Extension)
		if err := copyFile(a.File, dst); err != nil {
			return written, fmt.Errorf("failed to publish artifact '%s' of variant '%s': %w", a.Key(), a.Variant, err)
		}
		logger.Debug("Published artifact.", "file", dst)
		written = append(written, dst)
	}

	pom, err := NewPom(coords, component).Marshal()
	if err != nil {
		return written, err
	}
	pomPath := coords.Path(r.Root, "", "pom")
	if err := writeFile(pomPath, pom); err != nil {
		return written, err
	}
	written = append(written, pomPath)

	if err := r.updateMetadata(coords); err != nil {
		return written, err
	}

	logger.Info("Component published.", "repository", r.Root, "files", len(written))
	return written, nil
}

func (r *Repository) updateMetadata(coords Coordinates) error {
	path := filepath.Join(r.Root, coords.ArtifactDir(), "maven-metadata.xml")

	var md Metadata
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := xml.Unmarshal(data, &md); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	md.GroupId = coords.GroupID
	md.ArtifactId = coords.ArtifactID
	if !slices.Contains(md.Versioning.Versions, coords.Version) {
		md.Versioning.Versions = append(md.Versioning.Versions, coords.Version)
	}
	md.Versioning.Latest = coords.Version
	md.Versioning.Release = coords.Version
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	md.Versioning.LastUpdated = now().UTC().Format("20060102150405")

	out, err := xml.MarshalIndent(&md, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return writeFile(path, append(append([]byte(xml.Header), out...), '\n'))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
