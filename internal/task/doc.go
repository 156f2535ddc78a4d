// Package task defines the host's registered units of work and the
// container that holds them. Tasks are registered during configuration and
// only run later, when the executor walks the dependency graph the
// container builds.
package task
