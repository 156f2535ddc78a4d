// Package publication holds the decision logic that maps a variant onto the
// publication graph: which artifacts are built (Select), how each artifact is
// classified at the per-variant and the aggregate component, which attribute
// identity a variant carries, and where every artifact is placed (Strategy).
//
// Everything here is pure: the same variant and toggles always yield the same
// contributions, and nothing in this package touches the file system or the
// task graph. The aar-publish plugin feeds the contributions into a
// builder.Builder.
package publication
