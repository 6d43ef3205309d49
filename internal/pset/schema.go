package pset

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/psetforge/internal/paramid"
	"github.com/zclconf/go-cty/cty"
)

// ErrSchemaMismatch is returned when comparing records of different schemas.
var ErrSchemaMismatch = errors.New("records do not share a schema")

// Field describes one entry of a record's schema.
type Field struct {
	Path    string
	Kind    Kind
	Tracked bool
}

// Schema returns the schema descriptor of the record: every parameter path,
// nested PSets before their fields, in declaration order.
func (r *Record) Schema() []Field {
	var out []Field
	r.walk("", func(path string, p *Parameter) {
		out = append(out, Field{Path: path, Kind: p.kind, Tracked: p.tracked})
	})
	return out
}

// SameSchema reports whether both records declare the same paths, kinds and
// tracked flags in the same order.
func (r *Record) SameSchema(other *Record) bool {
	a, b := r.Schema(), other.Schema()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Equal reports whether both records have the same type label, schema and
// values.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.typ != other.typ || len(r.names) != len(other.names) {
		return false
	}
	for i, name := range r.names {
		if other.names[i] != name {
			return false
		}
		if !r.params[name].equal(other.params[name]) {
			return false
		}
	}
	return true
}

// Change is one value that differs between a base and a derived record.
type Change struct {
	Path string
	From cty.Value
	To   cty.Value
}

// Diff lists the leaf values of derived that differ from base. Both records
// must share a schema.
func Diff(base, derived *Record) ([]Change, error) {
	if !base.SameSchema(derived) {
		return nil, fmt.Errorf("diff: %w", ErrSchemaMismatch)
	}

	var changes []Change
	derived.walk("", func(path string, p *Parameter) {
		if p.kind == KindPSet {
			return
		}
		// Same schema, so the lookup cannot fail.
		bp, _ := base.lookup(paramid.MustParse(path))
		if !valuesEqual(bp.value, p.value) {
			changes = append(changes, Change{Path: path, From: bp.value, To: p.value})
		}
	})
	return changes, nil
}

// walk visits every parameter depth-first in declaration order.
func (r *Record) walk(prefix string, fn func(path string, p *Parameter)) {
	for _, name := range r.names {
		p := r.params[name]
		path := paramid.Join(prefix, name)
		fn(path, p)
		if p.kind == KindPSet {
			p.nested.walk(path, fn)
		}
	}
}
