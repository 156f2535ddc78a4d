package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

func load(t *testing.T, l *Loader, dir string) (*config.Model, error) {
	t.Helper()
	return l.Load(ctxlog.Discard(context.Background()), dir)
}

const fullProject = `
project {
  name    = "mylib"
  group   = "com.test"
  version = "1.0.0"
  plugins = ["com.android.library", "aar-publish", "maven-publish"]
}

android {
  namespace              = "com.test.mylib"
  boot_classpath         = ["/sdk/platforms/android-30/android.jar"]
  default_publish_config = "productionRelease"
  flavor_dimensions      = ["environment"]

  build_type "debug" {}
  build_type "release" {}

  product_flavor "development" {}
  product_flavor "production" { dimension = "environment" }

  source_set "main" {
    java_dirs   = ["src/main/java"]
    kotlin_dirs = ["src/main/kotlin"]
  }

  dependency "api" "org.apache.commons:commons-collections4:4.3" {}
  dependency "implementation" "commons-io:commons-io:2.6" {}
}

aar_publishing {
  publish_sources = false
  aggregate       = true
}

publishing {
  repository = "out/repo"
}
`

func TestLoad_FullProject(t *testing.T) {
	dir := writeProject(t, map[string]string{"build.hcl": fullProject})

	model, err := load(t, NewLoader(), dir)
	require.NoError(t, err)

	assert.Equal(t, "mylib", model.Project.Name)
	assert.Equal(t, "com.test", model.Project.Group)
	assert.Equal(t, filepath.Join(dir, "build"), model.Project.BuildDir)
	assert.True(t, model.Project.HasPlugin(config.AarPublishPluginID))

	a := model.Android
	require.NotNil(t, a)
	assert.Equal(t, []string{"debug", "release"}, []string{a.BuildTypes[0].Name, a.BuildTypes[1].Name})
	assert.Equal(t, "environment", a.ProductFlavors[0].Dimension, "single dimension is implied")
	assert.Equal(t, []string{"src/main/java"}, a.SourceSets["main"].JavaDirs)
	require.Len(t, a.Dependencies, 2)
	assert.Equal(t, "org.apache.commons:commons-collections4:4.3", a.Dependencies[0].Coordinates())
	assert.Equal(t, "implementation", a.Dependencies[1].Configuration)

	assert.Equal(t, &config.AarPublishing{
		PublishJavadoc: true,
		PublishSources: false,
		Aggregate:      true,
		Strategy:       config.StrategyClassifier,
	}, model.AarPublishing)

	assert.Equal(t, "android", model.Publishing.Component)
	assert.Equal(t, filepath.Join(dir, "out", "repo"), model.Publishing.Repository)
}

func TestLoad_Defaults(t *testing.T) {
	dir := writeProject(t, map[string]string{"build.hcl": `
project {
  name    = "mylib"
  plugins = ["com.android.library"]
}
android {}
publishing {}
`})

	model, err := load(t, NewLoader(), dir)
	require.NoError(t, err)
	assert.Equal(t, "unspecified", model.Project.Version)
	assert.Len(t, model.Android.BuildTypes, 2)
	assert.Nil(t, model.AarPublishing)
	assert.Equal(t, filepath.Join(dir, "build", "repo"), model.Publishing.Repository)
}

func TestLoad_MultipleFilesAndBuildDirSkipped(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"project.hcl":         `project { name = "mylib" }`,
		"android/android.hcl": "android {\n  build_type \"release\" {}\n}\n",
		"build/generated.hcl": `project { name = "ignored" }`,
	})

	model, err := load(t, NewLoader(), dir)
	require.NoError(t, err)
	assert.Equal(t, "mylib", model.Project.Name)
	require.Len(t, model.Android.BuildTypes, 1)
}

func TestLoad_EnvFunction(t *testing.T) {
	dir := writeProject(t, map[string]string{"build.hcl": `
project {
  name    = "mylib"
  version = env("LIB_VERSION")
}
`})
	l := &Loader{LookupEnv: func(name string) (string, bool) {
		if name == "LIB_VERSION" {
			return "2.0.0", true
		}
		return "", false
	}}

	model, err := load(t, l, dir)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", model.Project.Version)

	_, err = load(t, &Loader{LookupEnv: func(string) (string, bool) { return "", false }}, dir)
	assert.ErrorContains(t, err, `environment variable "LIB_VERSION" is not set`)
}

func TestLoad_Errors(t *testing.T) {
	testCases := map[string]struct {
		files map[string]string
		want  string
	}{
		"no files": {
			files: map[string]string{"README.md": "hi"},
			want:  "no .hcl project files found",
		},
		"no project block": {
			files: map[string]string{"build.hcl": `android {}`},
			want:  "expected exactly one 'project' block, found 0",
		},
		"two android blocks": {
			files: map[string]string{"a.hcl": `project { name = "x" }
android {}`, "b.hcl": `android {}`},
			want: "block 'android' may appear at most once, found 2",
		},
		"bad coordinates": {
			files: map[string]string{"build.hcl": `project { name = "x" }
android {
  dependency "api" "commons-io:commons-io" {}
}`},
			want: "must have the form group:artifact:version",
		},
		"bad strategy": {
			files: map[string]string{"build.hcl": `project { name = "x" }
aar_publishing { strategy = "both" }`},
			want: `invalid aar_publishing strategy "both"`,
		},
		"duplicate build type": {
			files: map[string]string{"build.hcl": `project { name = "x" }
android {
  build_type "release" {}
  build_type "release" {}
}`},
			want: "build type 'release' declared more than once",
		},
		"syntax error": {
			files: map[string]string{"build.hcl": `project {`},
			want:  "failed to parse HCL file",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := load(t, NewLoader(), writeProject(t, tc.files))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
