package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultTime is the modification time stamped on every entry.
var DefaultTime = time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC)

// ManifestName is the path of the jar manifest.
const ManifestName = "META-INF/MANIFEST.MF"

type entry struct {
	name string
	// Exactly one of path and data is set.
	path string
	data []byte
}

// Writer collects entries and writes them as one zip archive. The first
// entry added under a name wins; later ones are recorded as duplicates.
type Writer struct {
	entries    []entry
	seen       map[string]bool
	duplicates []string
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{seen: make(map[string]bool)}
}

// AddFile queues the file at path under the entry name. It reports whether
// the entry was taken.
func (w *Writer) AddFile(name, path string) bool {
	return w.add(entry{name: name, path: path})
}

// AddBytes queues in-memory content under the entry name.
func (w *Writer) AddBytes(name string, data []byte) bool {
	return w.add(entry{name: name, data: data})
}

func (w *Writer) add(e entry) bool {
	if w.seen[e.name] {
		w.duplicates = append(w.duplicates, e.name)
		return false
	}
	w.seen[e.name] = true
	w.entries = append(w.entries, e)
	return true
}

// Names returns the entry names in archive order.
func (w *Writer) Names() []string {
	names := make([]string, len(w.entries))
	for i, e := range w.sorted() {
		names[i] = e.name
	}
	return names
}

// Duplicates returns the names that were skipped because they were already
// taken, in the order they were offered.
func (w *Writer) Duplicates() []string {
	return append([]string(nil), w.duplicates...)
}

func (w *Writer) sorted() []entry {
	out := append([]entry(nil), w.entries...)
	sort.SliceStable(out, func(i, j int) bool { return EntryNamesLess(out[i].name, out[j].name) })
	return out
}

// Bytes renders the archive in memory.
func (w *Writer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders the archive to path, creating parent directories. The
// file is replaced atomically.
func (w *Writer) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := w.write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move archive into place at %s: %w", path, err)
	}
	return nil
}

func (w *Writer) write(out io.Writer) error {
	zw := zip.NewWriter(out)
	for _, e := range w.sorted() {
		header := &zip.FileHeader{
			Name:     e.name,
			Method:   zip.Deflate,
			Modified: DefaultTime,
		}
		header.SetMode(0644)
		fw, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		if err := copyEntry(fw, e); err != nil {
			return fmt.Errorf("entry %s: %w", e.name, err)
		}
	}
	return zw.Close()
}

func copyEntry(dst io.Writer, e entry) error {
	if e.path == "" {
		_, err := dst.Write(e.data)
		return err
	}
	f, err := os.Open(e.path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(dst, f)
	return err
}
