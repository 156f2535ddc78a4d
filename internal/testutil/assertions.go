package testutil

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertTaskRan checks the log output to confirm that a task was executed.
func AssertTaskRan(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	attr := fmt.Sprintf("task=%s", name)
	require.True(t,
		strings.Contains(result.LogOutput, attr+" ") || strings.Contains(result.LogOutput, attr+"\n"),
		"expected task '%s' to run; it was not found in logs", name,
	)
}

// DirNames returns the sorted file names in dir.
func DirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// JarEntries returns the entry names of a zip archive in archive order.
func JarEntries(t *testing.T, path string) []string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

// VersionDir is the repository directory of group:artifact:version.
func VersionDir(repo, group, artifact, version string) string {
	return filepath.Join(append(append([]string{repo}, strings.Split(group, ".")...), artifact, version)...)
}
