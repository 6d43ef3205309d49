package testutil

import (
	"context"

	"github.com/specialistvlad/psetforge/internal/pset"
	"github.com/specialistvlad/psetforge/internal/registry"
)

// RecordModule registers Records[i] under Names[i], in order.
type RecordModule struct {
	Names   []string
	Records []*pset.Record
}

// Register implements registry.Module.
func (m *RecordModule) Register(_ context.Context, reg *registry.Registry) error {
	for i, name := range m.Names {
		if err := reg.Register(name, m.Records[i]); err != nil {
			return err
		}
	}
	return nil
}

// NoOpModule registers nothing. Passing it keeps the built-in modules out of
// a run.
type NoOpModule struct{}

// Register implements registry.Module.
func (NoOpModule) Register(context.Context, *registry.Registry) error { return nil }
