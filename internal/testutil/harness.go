package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/aarpublish/internal/app"
	"github.com/specialistvlad/aarpublish/internal/hcl"
	"github.com/specialistvlad/aarpublish/internal/host"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Dir is the project directory.
	Dir       string
	LogOutput string
	// Output is what the app wrote to its output writer, e.g. -describe.
	Output  string
	Err     error
	App     *app.App
	Javadoc *FakeJavadoc

	logs *SafeBuffer
	out  *SafeBuffer
}

func (r *HarnessResult) refresh() {
	r.LogOutput = r.logs.String()
	r.Output = r.out.String()
}

// Repo returns the default repository directory of the project.
func (r *HarnessResult) Repo() string {
	return filepath.Join(r.Dir, "build", "repo")
}

// WriteFiles writes files relative to dir, creating directories.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

// newApp writes the project and constructs the app with a fake javadoc
// generator. A construction error is returned in the result.
func newApp(t *testing.T, files map[string]string, configure ...func(*app.Config)) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	WriteFiles(t, dir, files)

	fake := &FakeJavadoc{}
	cfg := &app.Config{
		ProjectPath: dir,
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
		Javadoc:     fake,
	}
	for _, fn := range configure {
		fn(cfg)
	}

	logBuffer := &SafeBuffer{}
	outBuffer := &SafeBuffer{}
	testApp, err := app.NewApp(outBuffer, logBuffer, cfg, hcl.NewLoader())

	t.Cleanup(func() {
		if os.Getenv("AARPUBLISH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	result := &HarnessResult{
		Dir:     dir,
		Err:     err,
		App:     testApp,
		Javadoc: fake,
		logs:    logBuffer,
		out:     outBuffer,
	}
	result.refresh()
	return result
}

// RunIntegrationTest writes the project files into a temporary directory and
// runs the full application against it.
func RunIntegrationTest(t *testing.T, files map[string]string, configure ...func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, configure...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, configure ...func(*app.Config)) *HarnessResult {
	t.Helper()
	result := newApp(t, files, configure...)
	if result.Err == nil {
		result.Err = result.App.Run(ctx)
	}
	result.refresh()
	return result
}

// ConfigureProject runs only the configuration phase and returns the
// configured project for inspection.
func ConfigureProject(t *testing.T, files map[string]string, configure ...func(*app.Config)) (*HarnessResult, *host.Project) {
	t.Helper()
	result := newApp(t, files, configure...)
	var project *host.Project
	if result.Err == nil {
		project, result.Err = result.App.Configure(context.Background())
	}
	result.refresh()
	return result, project
}
