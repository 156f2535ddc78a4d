// Package archive writes jar and aar files. Output is reproducible: entries
// are ordered the way the jar tool expects (META-INF first, the manifest
// before anything else inside it, then by name) and every entry carries the
// same fixed modification time.
package archive
