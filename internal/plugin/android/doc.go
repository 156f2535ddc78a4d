// Package android is a minimal Android library plugin. It exposes the
// android extension, creates the project's variants once the project is
// evaluated, and registers the bundle<Variant>Aar task of every variant.
package android
