package dag

import "sync"

// Graph holds tasks as nodes and their ordering constraints as edges.
// It is safe for concurrent use.
type Graph struct {
	mutex sync.RWMutex
	nodes map[string]*node
	// order is the insertion order; every traversal follows it.
	order []string
}

// node is unexported so callers address nodes by ID only.
type node struct {
	id string
	// deps must complete before this node.
	deps map[string]*node
	// dependents wait for this node.
	dependents map[string]*node
}
