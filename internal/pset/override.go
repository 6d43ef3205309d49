package pset

import (
	"fmt"

	"github.com/specialistvlad/psetforge/internal/paramid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Override is one value assignment applied to a cloned record.
type Override struct {
	Path  string
	Value cty.Value
	// Kind, when set, must match the declared kind of the target. It is left
	// as KindInvalid to inherit the declared kind.
	Kind Kind
}

// Assign builds an override from a Go literal. A value that has no cty
// equivalent is carried as null and rejected when applied.
func Assign(path string, v any) Override {
	return Override{Path: path, Value: toCty(v)}
}

// Declare builds a typed override from a parameter, the equivalent of
// re-declaring the field with its type.
func Declare(path string, p *Parameter) Override {
	return Override{Path: path, Value: p.Value(), Kind: p.Kind()}
}

func toCty(v any) cty.Value {
	switch tv := v.(type) {
	case nil:
		return cty.NilVal
	case cty.Value:
		return tv
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal
	}
	val, err := gocty.ToCtyValue(v, ty)
	if err != nil {
		return cty.NilVal
	}
	return val
}

// Set replaces the value at path. The path must exist and v must fit the
// declared kind; otherwise the record is left unchanged.
func (r *Record) Set(path string, v cty.Value) error {
	return r.set(path, v, KindInvalid)
}

// SetValue is Set for a Go value.
func (r *Record) SetValue(path string, v any) error {
	return r.set(path, toCty(v), KindInvalid)
}

// Apply applies all overrides or none: they are validated against a scratch
// clone before the record itself is touched.
func (r *Record) Apply(overrides ...Override) error {
	if r.frozen {
		return fmt.Errorf("apply overrides: %w", ErrFrozen)
	}

	scratch := r.Clone()
	for _, o := range overrides {
		if err := scratch.set(o.Path, o.Value, o.Kind); err != nil {
			return err
		}
	}

	for _, o := range overrides {
		if err := r.set(o.Path, o.Value, o.Kind); err != nil {
			// Unreachable: the same sequence succeeded on the scratch copy.
			return fmt.Errorf("apply override %q after validation: %w", o.Path, err)
		}
	}
	return nil
}

func (r *Record) set(raw string, v cty.Value, declared Kind) error {
	if r.frozen {
		return fmt.Errorf("set %q: %w", raw, ErrFrozen)
	}

	path, err := paramid.Parse(raw)
	if err != nil {
		return &SchemaError{Path: raw, Reason: err.Error()}
	}
	p, err := r.lookup(path)
	if err != nil {
		return err
	}
	if err := r.checkWritable(path); err != nil {
		return fmt.Errorf("set %q: %w", raw, err)
	}

	last := path.Last()
	if !last.HasIndex() {
		if declared != KindInvalid && declared != p.kind {
			return &TypeMismatchError{Path: raw, Want: p.kind, Got: declared.String(), Reason: "declared kind differs from the schema"}
		}
		cv, err := coerce(p.kind, v)
		if err != nil {
			return &TypeMismatchError{Path: raw, Want: p.kind, Got: typeName(v), Reason: err.Error()}
		}
		p.value = cv
		return nil
	}

	if !p.kind.IsVector() {
		return &SchemaError{Path: raw, Reason: fmt.Sprintf("%s parameter %q cannot be indexed", p.kind, last.Name)}
	}
	if n := p.value.LengthInt(); last.Index >= n {
		return &SchemaError{Path: raw, Reason: fmt.Sprintf("index %d out of range for %q of length %d", last.Index, last.Name, n)}
	}

	elemKind := p.kind.Elem()
	if declared != KindInvalid && declared != elemKind {
		return &TypeMismatchError{Path: raw, Want: elemKind, Got: declared.String(), Reason: "declared kind differs from the schema"}
	}
	cv, err := coerce(elemKind, v)
	if err != nil {
		return &TypeMismatchError{Path: raw, Want: elemKind, Got: typeName(v), Reason: err.Error()}
	}

	elems := p.value.AsValueSlice()
	elems[last.Index] = cv
	p.value = listOf(elemKind, elems)
	return nil
}
