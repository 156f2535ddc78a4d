/*
Package builder assembles the publication graph: the set of named software
components, each a set of named configurations holding artifacts, attributes,
dependencies and Maven scope mappings. It sits between the aar-publish plugin,
which produces per-variant contributions during configuration, and the
publishing side, which consumes a finalized *Graph.

Graph construction is a three-phase process:

 1. Component registration: AddComponent creates a component node. A
    component owned by a variant may only be registered again by that same
    variant; a second owner fails immediately with ErrDuplicateComponent.
    Shared components (the default and the aggregate) have no owner and are
    created idempotently.

 2. Contribution: Contribute merges a publication.Contribution into its
    component's configuration. Nothing is rejected here except contributions
    to unknown components; artifact collisions are recorded.

 3. Finalization: Finalize validates the whole graph at once. It reports
    every (extension, classifier) collision inside a component and every
    pair of configurations from different variants that carry an identical
    attribute set, then freezes the builder and returns a deterministic,
    sorted *Graph.

The builder is not safe for concurrent use. Configuration runs on a single
goroutine, as the host's configuration phase does.
*/
package builder
