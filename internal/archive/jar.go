package archive

import (
	"context"
	"fmt"

	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/fsutil"
)

// CreatedBy is written to every manifest.
const CreatedBy = "aarpublish"

// Manifest returns a minimal jar manifest.
func Manifest() []byte {
	return []byte("Manifest-Version: 1.0\r\nCreated-By: " + CreatedBy + "\r\n\r\n")
}

// AddTrees queues every file of the trees, keyed by its path relative to
// its tree root. Missing roots contribute nothing.
func (w *Writer) AddTrees(trees []fsutil.FileTree) error {
	for _, tree := range trees {
		files, err := tree.Files()
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", tree, err)
		}
		for _, f := range files {
			w.AddFile(f.Rel, f.Path)
		}
	}
	return nil
}

// WriteJar writes a jar holding the manifest and the files of every tree.
// An empty input still yields a valid jar with just the manifest.
func WriteJar(ctx context.Context, output string, trees []fsutil.FileTree) (*Writer, error) {
	logger := ctxlog.FromContext(ctx).With("output", output)

	w := NewWriter()
	w.AddBytes(ManifestName, Manifest())
	if err := w.AddTrees(trees); err != nil {
		return nil, err
	}
	if dups := w.Duplicates(); len(dups) > 0 {
		logger.Debug("Skipped duplicate jar entries.", "count", len(dups), "entries", dups)
	}
	if err := w.WriteFile(output); err != nil {
		return nil, err
	}
	logger.Debug("Jar written.", "entries", len(w.entries))
	return w, nil
}
