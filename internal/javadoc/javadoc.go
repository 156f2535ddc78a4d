package javadoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/task"
)

// ErrToolNotFound is returned when the javadoc binary cannot be located.
var ErrToolNotFound = errors.New("javadoc tool not found")

// DefaultTool is the binary looked up on PATH when none is configured.
const DefaultTool = "javadoc"

// Generator produces documentation into spec.OutputDir.
type Generator interface {
	Generate(ctx context.Context, spec *task.JavadocSpec) error
}

// Tool runs an external javadoc binary.
type Tool struct {
	// Path is a binary name looked up on PATH, or a path to it.
	Path string
	// LookPath resolves Path; exec.LookPath when nil.
	LookPath func(string) (string, error)
}

// NewTool returns a Tool for the given binary, DefaultTool when empty.
func NewTool(path string) *Tool {
	if path == "" {
		path = DefaultTool
	}
	return &Tool{Path: path, LookPath: exec.LookPath}
}

// Args builds the command line for spec. The second return value is false
// when there are no Java files to document.
func Args(spec *task.JavadocSpec) ([]string, bool, error) {
	var sourcepath, files []string
	for _, tree := range spec.Sources {
		listed, err := tree.Files()
		if err != nil {
			return nil, false, fmt.Errorf("failed to list sources in %s: %w", tree, err)
		}
		if len(listed) == 0 {
			continue
		}
		sourcepath = append(sourcepath, tree.Root)
		for _, f := range listed {
			files = append(files, f.Path)
		}
	}
	if len(files) == 0 {
		return nil, false, nil
	}

	args := []string{"-d", spec.OutputDir, "-encoding", "UTF-8", "-quiet", "-Xdoclint:none"}
	if spec.HTML5 {
		args = append(args, "-html5")
	}
	args = append(args, "-sourcepath", strings.Join(sourcepath, string(filepath.ListSeparator)))
	if len(spec.Classpath) > 0 {
		args = append(args, "-classpath", strings.Join(spec.Classpath, string(filepath.ListSeparator)))
	}
	args = append(args, files...)
	return args, true, nil
}

// Generate implements Generator. A variant without Java files gets an empty
// output directory and the tool is not run.
func (t *Tool) Generate(ctx context.Context, spec *task.JavadocSpec) error {
	logger := ctxlog.FromContext(ctx).With("output", spec.OutputDir)

	if err := os.RemoveAll(spec.OutputDir); err != nil {
		return fmt.Errorf("failed to clean %s: %w", spec.OutputDir, err)
	}
	if err := os.MkdirAll(spec.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", spec.OutputDir, err)
	}

	args, ok, err := Args(spec)
	if err != nil {
		return err
	}
	if !ok {
		logger.Debug("No Java sources to document.")
		return nil
	}

	lookPath := t.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	bin, err := lookPath(t.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrToolNotFound, t.Path, err)
	}

	logger.Debug("Running javadoc.", "tool", bin, "arg_count", len(args))
	cmd := exec.CommandContext(ctx, bin, args...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		diagnostic := strings.TrimSpace(output.String())
		if diagnostic == "" {
			return fmt.Errorf("javadoc failed: %w", err)
		}
		return fmt.Errorf("javadoc failed: %w\n%s", err, diagnostic)
	}
	return nil
}
