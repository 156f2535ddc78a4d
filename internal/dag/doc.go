// Package dag holds the task dependency graph. Nodes are task names and an
// edge from A to B means B depends on A. The graph answers the questions the
// executor needs: is it acyclic, which tasks does a goal need, and in which
// order can they run.
package dag
