package config

import (
	"github.com/specialistvlad/psetforge/internal/pset"
)

// Model is the unified, format-agnostic representation of one or more
// catalogs. Records and derivations keep their source order.
type Model struct {
	Records     []*RecordDecl
	Derivations []*Derivation
}

// RecordDecl declares a complete record under a name.
type RecordDecl struct {
	Name   string
	Record *pset.Record
	// Source is a human-readable location, e.g. "catalog/base.hcl:3,1-40".
	Source string
}

// Derivation declares a record built by cloning Base and applying
// Overrides in order.
type Derivation struct {
	Name      string
	Base      string
	Overrides []pset.Override
	Source    string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Merge appends the records and derivations of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Records = append(m.Records, other.Records...)
	m.Derivations = append(m.Derivations, other.Derivations...)
}

// Len returns the number of named entries in the model.
func (m *Model) Len() int {
	return len(m.Records) + len(m.Derivations)
}
