package config

import "context"

// Loader is the interface for a format-specific project loader.
type Loader interface {
	// Load reads every project file found under the given paths and returns
	// the merged, defaulted model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
