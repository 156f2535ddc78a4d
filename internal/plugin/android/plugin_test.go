package android_test

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/host"
	"github.com/specialistvlad/aarpublish/internal/plugin/android"
	"github.com/specialistvlad/aarpublish/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(dir string, a *config.Android) *host.Project {
	return host.New(&config.Model{
		Project: &config.Project{Name: "mylib", Version: "1.0.0", Dir: dir, BuildDir: filepath.Join(dir, "build")},
		Android: a,
	}, host.Toolchain{})
}

func TestApply_DefaultBuildTypes(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	p := newProject("/p", nil)

	require.NoError(t, p.Apply(ctx, &android.Plugin{}))
	assert.Equal(t, 0, p.Variants.Len(), "variants are created after evaluation")

	require.NoError(t, p.Evaluate(ctx))
	assert.Equal(t, []string{"debug", "release"}, p.Variants.Names())
	assert.Equal(t, []string{"bundleDebugAar", "bundleReleaseAar"}, p.Tasks.Names())

	bundle, ok := p.Tasks.Get("bundleReleaseAar")
	require.True(t, ok)
	assert.Equal(t, task.GroupBuild, bundle.Group)
	assert.Equal(t, []string{filepath.Join("/p", "build", "outputs", "aar", "mylib-release.aar")}, bundle.Outputs())

	ext, ok := p.Extension(android.ExtensionName)
	require.True(t, ok)
	assert.Equal(t, android.DefaultReleaseVariant, ext.(*android.Extension).DefaultPublishConfig())
}

func TestApply_ImplicitDefaultNeedNotExist(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	p := newProject("/p", &config.Android{BuildTypes: []*config.BuildType{{Name: "debug"}}})

	require.NoError(t, p.Apply(ctx, &android.Plugin{}))
	require.NoError(t, p.Evaluate(ctx), "only an explicit default_publish_config must name a variant")
	assert.Equal(t, []string{"debug"}, p.Variants.Names())
}

func TestApply_UnknownDefaultPublishConfig(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	p := newProject("/p", &config.Android{
		BuildTypes:           []*config.BuildType{{Name: "debug"}, {Name: "release"}},
		DefaultPublishConfig: "staging",
	})

	require.NoError(t, p.Apply(ctx, &android.Plugin{}))
	err := p.Evaluate(ctx)
	assert.ErrorContains(t, err, "default_publish_config 'staging' does not name a variant")
}

func TestApply_FlavorErrorsSurfaceOnEvaluate(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	p := newProject("/p", &config.Android{
		BuildTypes:     []*config.BuildType{{Name: "release"}},
		ProductFlavors: []*config.ProductFlavor{{Name: "free"}},
	})

	require.NoError(t, p.Apply(ctx, &android.Plugin{}))
	assert.ErrorContains(t, p.Evaluate(ctx), "failed to compute variants")
}

func TestExtension_BootClasspathIsResolved(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	p := newProject("/p", &config.Android{
		BuildTypes:    []*config.BuildType{{Name: "release"}},
		BootClasspath: []string{"sdk/android.jar", "/abs/core.jar"},
	})
	require.NoError(t, p.Apply(ctx, &android.Plugin{}))

	ext, _ := p.Extension(android.ExtensionName)
	assert.Equal(t, []string{filepath.Join("/p", "sdk", "android.jar"), "/abs/core.jar"}, ext.(*android.Extension).BootClasspath())
}

func TestBundleTask_WritesAar(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	for rel, content := range map[string]string{
		"classes/com/test/Foo.class":         "class",
		"src/main/res/values/strings.xml":    "main",
		"src/release/res/values/strings.xml": "release",
		"src/main/assets/data.txt":           "asset",
	} {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	p := newProject(dir, &config.Android{
		Namespace:   "com.test.mylib",
		BuildTypes:  []*config.BuildType{{Name: "release"}},
		ClassesDirs: []string{"classes"},
	})
	require.NoError(t, p.Apply(ctx, &android.Plugin{}))
	require.NoError(t, p.Evaluate(ctx))

	bundle, ok := p.Tasks.Get("bundleReleaseAar")
	require.True(t, ok)
	require.NoError(t, bundle.Action(ctx))

	zr, err := zip.OpenReader(bundle.Outputs()[0])
	require.NoError(t, err)
	defer zr.Close()

	contents := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b := make([]byte, f.UncompressedSize64)
		_, _ = io.ReadFull(rc, b)
		rc.Close()
		contents[f.Name] = string(b)
	}

	assert.Contains(t, contents, "AndroidManifest.xml")
	assert.Contains(t, contents["AndroidManifest.xml"], `package="com.test.mylib"`)
	assert.Contains(t, contents, "classes.jar")
	assert.Contains(t, contents, "R.txt")
	assert.Equal(t, "asset", contents["assets/data.txt"])
	assert.Equal(t, "release", contents["res/values/strings.xml"], "build type resources override main")
}
