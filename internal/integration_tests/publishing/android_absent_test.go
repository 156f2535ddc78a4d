package integration_tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/aarpublish/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: applying aar-publish without the Android library plugin does nothing
func TestPublishing_AndroidAbsentIsNoop(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"build.hcl": `
project {
  name    = "mylib"
  plugins = ["aar-publish"]
}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err, "run failed; logs:\n%s", result.LogOutput)
	assert.Contains(t, result.LogOutput, "No tasks registered")
	_, err := os.Stat(filepath.Join(result.Dir, "build"))
	assert.True(t, os.IsNotExist(err), "nothing must be written")
}
