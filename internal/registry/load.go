package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/psetforge/internal/config"
	"github.com/specialistvlad/psetforge/internal/ctxlog"
	"github.com/specialistvlad/psetforge/internal/dag"
)

// PopulateFromModel registers the records declared in model, then applies
// its derivations in dependency order. A derivation may name as its base a
// record declared in the model, another derivation of the model, or a record
// already present in the registry.
func (r *Registry) PopulateFromModel(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Populating registry from model.", "records", len(model.Records), "derivations", len(model.Derivations))

	for _, decl := range model.Records {
		if err := r.add(decl.Name, &entry{record: decl.Record, source: decl.Source}); err != nil {
			return fmt.Errorf("%s: %w", decl.Source, err)
		}
		logger.Debug("Registered record.", "name", decl.Name, "source", decl.Source)
	}

	graph := dag.New()
	derivations := make(map[string]*config.Derivation, len(model.Derivations))
	for _, d := range model.Derivations {
		if prev, exists := derivations[d.Name]; exists {
			return fmt.Errorf("%s: register %q: %w (first declared at %s)", d.Source, d.Name, ErrDuplicate, prev.Source)
		}
		derivations[d.Name] = d
		graph.AddNode(d.Name)
	}

	for _, d := range model.Derivations {
		if graph.HasNode(d.Base) {
			if err := graph.AddEdge(d.Base, d.Name); err != nil {
				return fmt.Errorf("%s: derivation %q: %w", d.Source, d.Name, err)
			}
			continue
		}
		if !r.Has(d.Base) {
			return fmt.Errorf("%s: derivation %q: %w %q", d.Source, d.Name, ErrUnknownRecord, d.Base)
		}
	}

	order, err := graph.TopologicalOrder()
	if err != nil {
		return fmt.Errorf("invalid derivation chain: %w", err)
	}
	logger.Debug("Derivation order resolved.", "order", order)

	for _, name := range order {
		d := derivations[name]
		if _, err := r.derive(d.Name, d.Base, d.Source, d.Overrides); err != nil {
			return fmt.Errorf("%s: %w", d.Source, err)
		}
		logger.Debug("Registered derived record.", "name", d.Name, "from", d.Base, "overrides", len(d.Overrides))
	}

	logger.Debug("Registry populated.", "total", len(r.Names()))
	return nil
}
