package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/specialistvlad/aarpublish/internal/task"
)

// FakeJavadoc is a javadoc.Generator that writes one .html page per Java
// source file instead of running the JDK tool.
type FakeJavadoc struct {
	// Err, when set, is returned by every call.
	Err error

	mu    sync.Mutex
	specs []*task.JavadocSpec
}

// Generate implements javadoc.Generator.
func (f *FakeJavadoc) Generate(_ context.Context, spec *task.JavadocSpec) error {
	f.mu.Lock()
	f.specs = append(f.specs, spec)
	f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	if err := os.MkdirAll(spec.OutputDir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(spec.OutputDir, "index.html"), []byte("<html></html>"), 0644); err != nil {
		return err
	}
	for _, tree := range spec.Sources {
		files, err := tree.Files()
		if err != nil {
			return err
		}
		for _, file := range files {
			page := filepath.Join(spec.OutputDir, filepath.FromSlash(strings.TrimSuffix(file.Rel, ".java")+".html"))
			if err := os.MkdirAll(filepath.Dir(page), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(page, []byte(file.Rel), 0644); err != nil {
				return err
			}
		}
	}
	return nil
}

// Specs returns every spec passed to Generate.
func (f *FakeJavadoc) Specs() []*task.JavadocSpec {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*task.JavadocSpec(nil), f.specs...)
}
