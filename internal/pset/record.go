package pset

import (
	"fmt"

	"github.com/specialistvlad/psetforge/internal/paramid"
	"github.com/zclconf/go-cty/cty"
)

// Record is a parameter set: an ordered collection of named parameters.
type Record struct {
	typ    string
	names  []string
	params map[string]*Parameter
	frozen bool
}

// New creates an empty record. typ is the optional plugin type label of the
// record, e.g. "SecondaryVertexProducer"; nested records leave it empty.
func New(typ string) *Record {
	return &Record{
		typ:    typ,
		params: make(map[string]*Parameter),
	}
}

// Add declares a new parameter. Declaration is how a schema is built; it is
// not available as an override. The record stores its own copy of p, so
// later changes to p (or to a record wrapped by Nested) do not reach it.
func (r *Record) Add(name string, p *Parameter) error {
	if r.frozen {
		return fmt.Errorf("declare %q: %w", name, ErrFrozen)
	}
	if p == nil {
		return fmt.Errorf("declare %q: parameter is nil", name)
	}
	path, err := paramid.Parse(name)
	if err != nil || len(path.Segments) != 1 || path.Last().HasIndex() {
		return fmt.Errorf("declare %q: not a valid parameter name", name)
	}
	if _, exists := r.params[name]; exists {
		return fmt.Errorf("declare %q: %w", name, ErrDuplicateParameter)
	}
	r.names = append(r.names, name)
	r.params[name] = p.clone()
	return nil
}

// MustAdd is like Add but panics on error. It is meant for records built in
// code from literals.
func (r *Record) MustAdd(name string, p *Parameter) *Record {
	if err := r.Add(name, p); err != nil {
		panic(err)
	}
	return r
}

// Type returns the plugin type label.
func (r *Record) Type() string { return r.typ }

// Len returns the number of top-level parameters.
func (r *Record) Len() int { return len(r.names) }

// Names returns the top-level parameter names in declaration order.
func (r *Record) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Param returns the top-level parameter with the given name.
func (r *Record) Param(name string) (*Parameter, bool) {
	p, ok := r.params[name]
	return p, ok
}

// Clone returns a deep, independent copy of the record. The copy is never
// frozen, even if r is.
func (r *Record) Clone() *Record {
	c := &Record{
		typ:    r.typ,
		names:  make([]string, len(r.names)),
		params: make(map[string]*Parameter, len(r.params)),
	}
	copy(c.names, r.names)
	for name, p := range r.params {
		c.params[name] = p.clone()
	}
	return c
}

// Freeze makes the record and all nested records read-only.
func (r *Record) Freeze() {
	r.frozen = true
	for _, p := range r.params {
		if p.nested != nil {
			p.nested.Freeze()
		}
	}
}

// Frozen reports whether the record has been frozen.
func (r *Record) Frozen() bool { return r.frozen }

// AsValue returns the record as a cty object value.
func (r *Record) AsValue() cty.Value {
	if len(r.params) == 0 {
		return cty.EmptyObjectVal
	}
	attrs := make(map[string]cty.Value, len(r.params))
	for name, p := range r.params {
		attrs[name] = p.Value()
	}
	return cty.ObjectVal(attrs)
}

// checkWritable fails with ErrFrozen when r or any record on the way to the
// target of path is frozen. path must resolve.
func (r *Record) checkWritable(path *paramid.Path) error {
	if r.frozen {
		return ErrFrozen
	}
	parent := path.Parent()
	if parent == nil {
		return nil
	}
	cur := r
	for _, seg := range parent.Segments {
		cur = cur.params[seg.Name].nested
		if cur.frozen {
			return ErrFrozen
		}
	}
	return nil
}

// lookup resolves every segment of path to a parameter, ignoring a trailing
// index.
func (r *Record) lookup(path *paramid.Path) (*Parameter, error) {
	cur := r
	for i, seg := range path.Segments {
		p, ok := cur.params[seg.Name]
		if !ok {
			where := "record"
			if i > 0 {
				where = fmt.Sprintf("%q", (&paramid.Path{Segments: path.Segments[:i]}).String())
			}
			return nil, &SchemaError{Path: path.String(), Reason: fmt.Sprintf("no parameter %q in %s", seg.Name, where)}
		}
		if i == len(path.Segments)-1 {
			return p, nil
		}
		if p.kind != KindPSet {
			return nil, &SchemaError{Path: path.String(), Reason: fmt.Sprintf("%q is a %s, not a PSet", seg.Name, p.kind)}
		}
		cur = p.nested
	}
	return nil, &SchemaError{Path: path.String(), Reason: "empty path"}
}
