package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/ctxlog"
	"github.com/specialistvlad/aarpublish/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// LookupEnv backs the env() function available in project files.
	LookupEnv func(string) (string, bool)
}

// NewLoader creates a new HCL project loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{LookupEnv: os.LookupEnv}
}

// decoded collects the blocks of every file before translation, so that
// singleton blocks can be checked across files.
type decoded struct {
	projects      []*projectBlock
	androids      []*androidBlock
	aarPublishing []*aarPublishingBlock
	publishing    []*publishingBlock
}

// Load implements config.Loader. The first path is the project directory
// relative paths in the model are resolved against.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	if len(paths) == 0 {
		return nil, fmt.Errorf("no project path given")
	}

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl project files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := l.evalContext()
	var all decoded

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		// Unknown top-level content is tolerated so project files can carry
		// settings for other tools. Attributes are reported, blocks are not.
		if attrs, _ := root.Remain.JustAttributes(); len(attrs) > 0 {
			for name := range attrs {
				logger.Warn("Ignoring unknown top-level attribute.", "file", file, "attribute", name)
			}
		}

		all.projects = append(all.projects, root.Projects...)
		all.androids = append(all.androids, root.Androids...)
		all.aarPublishing = append(all.aarPublishing, root.AarPublishing...)
		all.publishing = append(all.publishing, root.Publishing...)
	}

	projectDir, err := filepath.Abs(projectDirOf(paths[0]))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory %s: %w", paths[0], err)
	}

	model, err := translate(&all, projectDir)
	if err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"project", model.Project.Name,
		"plugins", model.Project.Plugins,
		"android", model.Android != nil,
	)
	return model, nil
}

// evalContext exposes the functions project files may call.
func (l *Loader) evalContext() *hcl.EvalContext {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{{Name: "name", Type: cty.String}},
				Type:   function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					name := args[0].AsString()
					val, ok := lookup(name)
					if !ok {
						return cty.NilVal, fmt.Errorf("environment variable %q is not set", name)
					}
					return cty.StringVal(val), nil
				},
			}),
		},
	}
}

// findAllHCLFiles walks all given paths and returns a sorted, de-duplicated
// list of .hcl files. Directories named "build" are not descended into.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var allFiles []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, ".hcl", "build")
			if err != nil {
				return nil, err
			}
		} else if filepath.Ext(path) == ".hcl" {
			found = []string{path}
		}

		for _, f := range found {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			allFiles = append(allFiles, f)
		}
	}

	sort.Strings(allFiles)
	return allFiles, nil
}

func projectDirOf(path string) string {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}
