package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

func readZip(t *testing.T, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return readZipBytes(t, data)
}

func readZipBytes(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		out[f.Name] = string(b)
		assert.True(t, f.Modified.Equal(DefaultTime), "entry %s has time %v", f.Name, f.Modified)
	}
	return out
}

func zipNames(t *testing.T, path string) []string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestEntryNamesLess(t *testing.T) {
	assert.True(t, EntryNamesLess("META-INF/", ManifestName))
	assert.True(t, EntryNamesLess(ManifestName, "META-INF/LICENSE"))
	assert.True(t, EntryNamesLess("META-INF/LICENSE", "AndroidManifest.xml"))
	assert.True(t, EntryNamesLess("a/B.java", "b/A.java"))
	assert.False(t, EntryNamesLess("b", "a"))
}

func TestWriteJar_ManifestFirstAndDuplicatesKeepFirst(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	java := filepath.Join(dir, "java")
	kotlin := filepath.Join(dir, "kotlin")
	writeFiles(t, java, map[string]string{"com/test/Foo.java": "java-foo", "com/test/Shared.kt": "from-java-dir"})
	writeFiles(t, kotlin, map[string]string{"com/test/Shared.kt": "from-kotlin-dir", "com/test/Bar.kt": "bar"})

	out := filepath.Join(dir, "out", "lib-sources.jar")
	w, err := WriteJar(ctx, out, []fsutil.FileTree{fsutil.NewFileTree(java), fsutil.NewFileTree(kotlin)})
	require.NoError(t, err)
	assert.Equal(t, []string{"com/test/Shared.kt"}, w.Duplicates())

	assert.Equal(t, []string{ManifestName, "com/test/Bar.kt", "com/test/Foo.java", "com/test/Shared.kt"}, zipNames(t, out))
	contents := readZip(t, out)
	assert.Equal(t, "from-java-dir", contents["com/test/Shared.kt"])
	assert.Contains(t, contents[ManifestName], "Manifest-Version: 1.0")
}

func TestWriteJar_EmptyInputsStillHaveManifest(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	out := filepath.Join(dir, "empty.jar")

	_, err := WriteJar(ctx, out, []fsutil.FileTree{fsutil.NewFileTree(filepath.Join(dir, "missing"))})
	require.NoError(t, err)
	assert.Equal(t, []string{ManifestName}, zipNames(t, out))
}

func TestWriteJar_Reproducible(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFiles(t, src, map[string]string{"a/A.java": "a", "b/B.java": "b"})

	first := filepath.Join(dir, "first.jar")
	second := filepath.Join(dir, "second.jar")
	_, err := WriteJar(ctx, first, []fsutil.FileTree{fsutil.NewFileTree(src)})
	require.NoError(t, err)
	_, err = WriteJar(ctx, second, []fsutil.FileTree{fsutil.NewFileTree(src)})
	require.NoError(t, err)

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteAar(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	classes := filepath.Join(dir, "classes")
	res := filepath.Join(dir, "res")
	writeFiles(t, classes, map[string]string{"com/test/Foo.class": "bytecode"})
	writeFiles(t, res, map[string]string{"values/strings.xml": "<resources/>"})

	out := filepath.Join(dir, "mylib-release.aar")
	_, err := WriteAar(ctx, out, Aar{Namespace: "com.test.mylib", ClassesDirs: []string{classes}, ResourceDirs: []string{res}})
	require.NoError(t, err)

	contents := readZip(t, out)
	assert.Contains(t, contents[AndroidManifestName], `package="com.test.mylib"`)
	assert.Contains(t, contents, RTxtName)
	assert.Equal(t, "<resources/>", contents["res/values/strings.xml"])

	inner := readZipBytes(t, []byte(contents[ClassesJarName]))
	assert.Equal(t, "bytecode", inner["com/test/Foo.class"])
	assert.Contains(t, inner, ManifestName)
}
