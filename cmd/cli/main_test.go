package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_StartupError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error fails while the project is loaded in app.NewApp().
	invalidHCL := `
		project {
			name = "mylib"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "build.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, out, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "application startup failed")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(context.Background(), out, out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Describe(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "build.hcl"), []byte(`
		project {
			name    = "mylib"
			group   = "com.test"
			version = "1.0.0"
			plugins = ["com.android.library", "aar-publish", "maven-publish"]
		}
		android {
			default_publish_config = "release"
		}
	`), 0600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, logs, []string{"-describe", tempDir}))

	require.Contains(t, out.String(), `component "androidRelease"`)
	require.Contains(t, out.String(), `task "publish"`)
	require.NotContains(t, out.String(), "level=")
}
