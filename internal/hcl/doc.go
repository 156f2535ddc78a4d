// Package hcl provides the HCL implementation of config.Loader. It discovers
// the project's .hcl files, decodes them with gohcl into the schema types in
// this package, translates them into the format-agnostic config.Model and
// applies defaults. It also renders a finalized publication graph back into
// HCL for the `-describe` output.
package hcl
