package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/aarpublish/internal/ctxlog"
)

// ValidateRegistry checks that every requested plugin ID is registered and
// requested only once. All problems are reported together.
func (r *Registry) ValidateRegistry(ctx context.Context, requested []string) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]bool, len(requested))
	for _, id := range requested {
		if seen[id] {
			errs = append(errs, fmt.Sprintf("plugin '%s' is listed more than once", id))
			continue
		}
		seen[id] = true
		if _, ok := r.plugins[id]; !ok {
			errs = append(errs, fmt.Sprintf("unknown plugin '%s' (available: %s)", id, strings.Join(r.IDs(), ", ")))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "plugins", requested)
	return nil
}
