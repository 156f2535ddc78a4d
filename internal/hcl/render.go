package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/aarpublish/internal/builder"
	"github.com/specialistvlad/aarpublish/internal/task"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Render describes the publication graph and the tasks, in the given order,
// as an HCL document.
func Render(g *builder.Graph, tasks *task.Container, order []string) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for i, c := range g.Components {
		if i > 0 {
			root.AppendNewline()
		}
		if err := renderComponent(root, c); err != nil {
			return nil, err
		}
	}

	for _, name := range order {
		t, ok := tasks.Get(name)
		if !ok {
			return nil, fmt.Errorf("task '%s' is not registered", name)
		}
		root.AppendNewline()
		if err := renderTask(root, t); err != nil {
			return nil, err
		}
	}
	return f.Bytes(), nil
}

func renderComponent(parent *hclwrite.Body, c *builder.Component) error {
	body := parent.AppendNewBlock("component", []string{c.Name}).Body()
	for _, cfg := range c.Configurations {
		cb := body.AppendNewBlock("configuration", []string{cfg.Name}).Body()
		cb.SetAttributeValue("variant", cty.StringVal(cfg.Variant))
		if cfg.Scope != "" {
			cb.SetAttributeValue("scope", cty.StringVal(cfg.Scope))
		}
		if len(cfg.Attributes) > 0 {
			attrs, err := gocty.ToCtyValue(map[string]string(cfg.Attributes), cty.Map(cty.String))
			if err != nil {
				return fmt.Errorf("configuration '%s': %w", cfg.Name, err)
			}
			cb.SetAttributeValue("attributes", attrs)
		}
		for _, d := range cfg.Dependencies {
			cb.AppendNewBlock("dependency", []string{d.GroupID + ":" + d.ArtifactID + ":" + d.Version})
		}
		for _, s := range cfg.Secondary {
			sb := cb.AppendNewBlock("secondary", []string{s.Name}).Body()
			if s.Skipped {
				sb.SetAttributeValue("skipped", cty.True)
			} else {
				sb.SetAttributeValue("scope", cty.StringVal(s.Scope))
			}
		}
		for _, a := range cfg.Artifacts {
			ab := cb.AppendNewBlock("artifact", []string{a.Key()}).Body()
			ab.SetAttributeValue("kind", cty.StringVal(a.Kind.String()))
			ab.SetAttributeValue("extension", cty.StringVal(a.Extension))
			if a.Classifier != "" {
				ab.SetAttributeValue("classifier", cty.StringVal(a.Classifier))
			}
			ab.SetAttributeValue("file", cty.StringVal(a.File))
			ab.SetAttributeValue("task", cty.StringVal(a.Task))
		}
	}
	return nil
}

func renderTask(parent *hclwrite.Body, t *task.Task) error {
	body := parent.AppendNewBlock("task", []string{t.Name}).Body()
	if t.Group != "" {
		body.SetAttributeValue("group", cty.StringVal(t.Group))
	}
	if t.Description != "" {
		body.SetAttributeValue("description", cty.StringVal(t.Description))
	}
	if len(t.DependsOn) > 0 {
		if err := setStrings(body, "depends_on", t.DependsOn); err != nil {
			return err
		}
	}
	if outputs := t.Outputs(); len(outputs) > 0 {
		if err := setStrings(body, "outputs", outputs); err != nil {
			return err
		}
	}
	return nil
}

func setStrings(body *hclwrite.Body, name string, values []string) error {
	v, err := gocty.ToCtyValue(values, cty.List(cty.String))
	if err != nil {
		return fmt.Errorf("attribute '%s': %w", name, err)
	}
	body.SetAttributeValue(name, v)
	return nil
}
