package variant

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateVariant is returned when a different variant is added under a
// name that is already registered.
var ErrDuplicateVariant = errors.New("duplicate variant name")

// Collection is a live, append-only set of variants keyed by name.
type Collection struct {
	variants []*Variant
	byName   map[string]*Variant
	handlers []func(*Variant) error
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{byName: make(map[string]*Variant)}
}

// All invokes fn for every variant already in the collection and registers
// it for every variant added later. The first error stops the replay and is
// returned; fn stays registered only when the replay succeeds.
func (c *Collection) All(fn func(*Variant) error) error {
	for _, v := range c.variants {
		if err := fn(v); err != nil {
			return fmt.Errorf("variant '%s': %w", v.Name, err)
		}
	}
	c.handlers = append(c.handlers, fn)
	return nil
}

// Add registers a finalized variant and notifies every handler in
// registration order. Adding the same variant twice is a no-op; adding a
// different variant under a taken name fails with ErrDuplicateVariant.
func (c *Collection) Add(v *Variant) error {
	if existing, ok := c.byName[v.Name]; ok {
		if existing == v {
			return nil
		}
		return fmt.Errorf("%w: '%s'", ErrDuplicateVariant, v.Name)
	}

	c.variants = append(c.variants, v)
	c.byName[v.Name] = v

	for _, fn := range c.handlers {
		if err := fn(v); err != nil {
			return fmt.Errorf("variant '%s': %w", v.Name, err)
		}
	}
	return nil
}

// Get returns the variant with the given name.
func (c *Collection) Get(name string) (*Variant, bool) {
	v, ok := c.byName[name]
	return v, ok
}

// Len returns the number of variants.
func (c *Collection) Len() int {
	return len(c.variants)
}

// Names returns the variant names sorted alphabetically.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.variants))
	for _, v := range c.variants {
		names = append(names, v.Name)
	}
	sort.Strings(names)
	return names
}
