package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/psetforge/internal/ctxlog"
)

// Validate checks that every derived record still has exactly the schema
// and type label of its base. Overrides cannot change a schema, but a
// record handed out by Lookup before sealing can still be extended.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []string
	for _, name := range r.order {
		e := r.entries[name]
		if e.base == "" {
			continue
		}

		base := r.entries[e.base]
		if base == nil {
			errs = append(errs, fmt.Sprintf("record '%s': base record '%s' is not registered", name, e.base))
			continue
		}
		if base.record.Type() != e.record.Type() {
			errs = append(errs, fmt.Sprintf("record '%s': type '%s' differs from type '%s' of base record '%s'", name, e.record.Type(), base.record.Type(), e.base))
		}
		if !base.record.SameSchema(e.record) {
			errs = append(errs, fmt.Sprintf("record '%s': schema differs from base record '%s'", name, e.base))
		}
		logger.Debug("Validated derived record.", "name", name, "base", e.base)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
