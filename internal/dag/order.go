package dag

import (
	"fmt"
	"sort"
)

// Closure returns the given goals plus everything they transitively depend
// on, in insertion order.
func (g *Graph) Closure(goals ...string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	want := make(map[string]bool)
	var walk func(n *node)
	walk = func(n *node) {
		if want[n.id] {
			return
		}
		want[n.id] = true
		for _, dep := range n.deps {
			walk(dep)
		}
	}
	for _, id := range goals {
		n, ok := g.nodes[id]
		if !ok {
			return nil, fmt.Errorf("node not found: %s", id)
		}
		walk(n)
	}

	out := make([]string, 0, len(want))
	for _, id := range g.order {
		if want[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

// TopologicalOrder returns every node with each node after all of its
// dependencies. Ties are broken by insertion order, so the result is stable.
func (g *Graph) TopologicalOrder() ([]string, error) {
	if err := g.DetectCycles(); err != nil {
		return nil, err
	}

	g.mutex.RLock()
	defer g.mutex.RUnlock()

	position := make(map[string]int, len(g.order))
	for i, id := range g.order {
		position[id] = i
	}
	remaining := make(map[string]int, len(g.nodes))
	var ready []string
	for _, id := range g.order {
		remaining[id] = len(g.nodes[id].deps)
		if remaining[id] == 0 {
			ready = append(ready, id)
		}
	}

	out := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		out = append(out, id)

		var unlocked []string
		for depID := range g.nodes[id].dependents {
			remaining[depID]--
			if remaining[depID] == 0 {
				unlocked = append(unlocked, depID)
			}
		}
		ready = append(ready, unlocked...)
		sort.SliceStable(ready, func(i, j int) bool { return position[ready[i]] < position[ready[j]] })
	}
	return out, nil
}
