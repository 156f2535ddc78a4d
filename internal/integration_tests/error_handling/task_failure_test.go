package integration_tests

import (
	"errors"
	"testing"

	"github.com/specialistvlad/aarpublish/internal/app"
	"github.com/specialistvlad/aarpublish/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: a failing javadoc run fails the build and skips publishing
func TestErrorHandling_JavadocFailureSkipsPublish(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"build.hcl": `
project {
  name    = "mylib"
  group   = "com.test"
  version = "1.0.0"
  plugins = ["com.android.library", "aar-publish", "maven-publish"]
}

android {
  default_publish_config = "release"
  build_type "release" {}
}
`,
		"src/main/java/com/test/Api.java": "class Api {}",
	}
	boom := errors.New("javadoc: error - invalid flag")

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, func(cfg *app.Config) {
		cfg.Javadoc.(*testutil.FakeJavadoc).Err = boom
	})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, boom)
	assert.Contains(t, result.Err.Error(), "task 'javadocRelease' failed")
	assert.NotContains(t, result.LogOutput, "task=publish")
	assert.NoDirExists(t, result.Repo())
}
