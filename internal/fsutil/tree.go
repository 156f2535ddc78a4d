package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// FileTree is a directory root plus an optional set of include patterns.
// Patterns use slash-separated relative paths where "**" matches any number
// of directories and the remaining segments follow path.Match. A tree without
// patterns includes every regular file below Root.
type FileTree struct {
	Root     string
	Includes []string
}

// NewFileTree returns an unfiltered tree rooted at root.
func NewFileTree(root string) FileTree {
	return FileTree{Root: root}
}

// WithIncludes returns a view of the tree restricted to the given patterns.
// The receiver is left unchanged.
func (t FileTree) WithIncludes(patterns ...string) FileTree {
	includes := make([]string, len(patterns))
	copy(includes, patterns)
	return FileTree{Root: t.Root, Includes: includes}
}

// String renders the tree as root or root[pattern,...].
func (t FileTree) String() string {
	if len(t.Includes) == 0 {
		return t.Root
	}
	return t.Root + "[" + strings.Join(t.Includes, ",") + "]"
}

// File is one regular file inside a tree.
type File struct {
	// Path is the file's location on disk.
	Path string
	// Rel is the slash-separated path relative to the tree root.
	Rel string
}

// Files lists the included files sorted by Rel. A missing root yields no
// files and no error.
func (t FileTree) Files() ([]File, error) {
	if _, err := os.Stat(t.Root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var files []File
	err := filepath.WalkDir(t.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(t.Root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if t.includes(rel) {
			files = append(files, File{Path: p, Rel: rel})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
	return files, nil
}

func (t FileTree) includes(rel string) bool {
	if len(t.Includes) == 0 {
		return true
	}
	for _, pattern := range t.Includes {
		if Match(pattern, rel) {
			return true
		}
	}
	return false
}

// Match reports whether the slash-separated relative path matches pattern.
// Malformed segments never match.
func Match(pattern, rel string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(rel, "/"))
}

func matchSegments(pattern, name []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			if len(rest) == 0 {
				return true
			}
			for i := 0; i <= len(name); i++ {
				if matchSegments(rest, name[i:]) {
					return true
				}
			}
			return false
		}
		if len(name) == 0 {
			return false
		}
		ok, err := path.Match(pattern[0], name[0])
		if err != nil || !ok {
			return false
		}
		pattern, name = pattern[1:], name[1:]
	}
	return len(name) == 0
}
