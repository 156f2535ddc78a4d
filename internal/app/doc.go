// Package app wires a loaded project to the built-in plugins and drives one
// build: configuration, task graph construction, then either the -describe
// rendering or concurrent execution of the publish goal.
package app
