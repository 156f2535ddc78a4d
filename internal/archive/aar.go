package archive

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/fsutil"
)

// Entry names inside an aar.
const (
	AndroidManifestName = "AndroidManifest.xml"
	ClassesJarName      = "classes.jar"
	RTxtName            = "R.txt"
)

// Aar describes the contents of an Android archive.
type Aar struct {
	Namespace string
	// ClassesDirs are packed into classes.jar.
	ClassesDirs []string
	// ResourceDirs are copied under res/.
	ResourceDirs []string
	// AssetDirs are copied under assets/.
	AssetDirs []string
}

type androidManifest struct {
	XMLName xml.Name `xml:"manifest"`
	XMLNS   string   `xml:"xmlns:android,attr"`
	Package string   `xml:"package,attr"`
}

// WriteAar writes the aar to output.
func WriteAar(ctx context.Context, output string, aar Aar) (*Writer, error) {
	logger := ctxlog.FromContext(ctx).With("output", output)

	manifest, err := xml.MarshalIndent(androidManifest{
		XMLNS:   "http://schemas.android.com/apk/res/android",
		Package: aar.Namespace,
	}, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to render AndroidManifest.xml: %w", err)
	}

	classes := NewWriter()
	classes.AddBytes(ManifestName, Manifest())
	if err := classes.AddTrees(trees(aar.ClassesDirs)); err != nil {
		return nil, err
	}
	classesJar, err := classes.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", ClassesJarName, err)
	}

	w := NewWriter()
	w.AddBytes(AndroidManifestName, append([]byte(xml.Header), manifest...))
	w.AddBytes(ClassesJarName, classesJar)
	w.AddBytes(RTxtName, nil)
	if err := addPrefixed(w, "res/", aar.ResourceDirs); err != nil {
		return nil, err
	}
	if err := addPrefixed(w, "assets/", aar.AssetDirs); err != nil {
		return nil, err
	}

	if err := w.WriteFile(output); err != nil {
		return nil, err
	}
	logger.Debug("Aar written.", "entries", len(w.entries))
	return w, nil
}

func trees(dirs []string) []fsutil.FileTree {
	out := make([]fsutil.FileTree, len(dirs))
	for i, d := range dirs {
		out[i] = fsutil.NewFileTree(d)
	}
	return out
}

func addPrefixed(w *Writer, prefix string, dirs []string) error {
	for _, tree := range trees(dirs) {
		files, err := tree.Files()
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", tree, err)
		}
		for _, f := range files {
			w.AddFile(prefix+f.Rel, f.Path)
		}
	}
	return nil
}
