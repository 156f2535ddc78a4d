// Package host is the minimal build model plugins run against: a project
// with a plugin container, extensions, a task container, the live variant
// collection and the publication graph builder.
//
// A project goes through three phases. Plugins are applied in declaration
// order; each may register callbacks for other plugins (WithID) and hooks
// for the later phases. Evaluate runs the after-evaluate hooks, which is
// when variants are created. Finalize validates the publication graph and
// runs the finalize hooks, which may still register tasks. Nothing executes
// until the executor is handed the frozen task graph.
package host
