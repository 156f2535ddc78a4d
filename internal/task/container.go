package task

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/aarpublish/internal/dag"
)

// ErrDuplicateTask is returned when a task name is registered twice.
var ErrDuplicateTask = errors.New("duplicate task")

// Container holds a project's tasks in registration order.
type Container struct {
	tasks  map[string]*Task
	order  []string
	frozen bool
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{tasks: make(map[string]*Task)}
}

// Register adds a task. Names are unique within a project.
func (c *Container) Register(t *Task) error {
	if c.frozen {
		return fmt.Errorf("cannot register task '%s': task graph is already built", t.Name)
	}
	if t.Name == "" {
		return fmt.Errorf("task name must not be empty")
	}
	if _, exists := c.tasks[t.Name]; exists {
		return fmt.Errorf("%w: '%s'", ErrDuplicateTask, t.Name)
	}
	c.tasks[t.Name] = t
	c.order = append(c.order, t.Name)
	return nil
}

// Get returns the named task.
func (c *Container) Get(name string) (*Task, bool) {
	t, ok := c.tasks[name]
	return t, ok
}

// Names returns every task name in registration order.
func (c *Container) Names() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of registered tasks.
func (c *Container) Len() int {
	return len(c.order)
}

// Graph builds the dependency graph of the registered tasks and freezes the
// container. Every unknown dependency is reported.
func (c *Container) Graph() (*dag.Graph, error) {
	g := dag.New()
	for _, name := range c.order {
		g.AddNode(name)
	}

	var errs []string
	for _, name := range c.order {
		for _, dep := range c.tasks[name].DependsOn {
			if _, ok := c.tasks[dep]; !ok {
				errs = append(errs, fmt.Sprintf("task '%s' depends on unknown task '%s'", name, dep))
				continue
			}
			if err := g.AddEdge(dep, name); err != nil {
				errs = append(errs, fmt.Sprintf("task '%s': %v", name, err))
			}
		}
	}
	if len(errs) > 0 {
		sort.Strings(errs)
		return nil, fmt.Errorf("task graph is invalid:\n- %s", strings.Join(errs, "\n- "))
	}
	if err := g.DetectCycles(); err != nil {
		return nil, fmt.Errorf("task graph is invalid: %w", err)
	}

	c.frozen = true
	return g, nil
}
