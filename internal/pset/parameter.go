package pset

import (
	"github.com/zclconf/go-cty/cty"
)

// Parameter is a single typed entry of a Record.
type Parameter struct {
	kind    Kind
	value   cty.Value
	nested  *Record
	tracked bool
}

// NewParameter builds a tracked parameter of kind k from a cty value. It
// fails with a *TypeMismatchError when v does not fit k. PSet parameters are
// built with Nested instead.
func NewParameter(k Kind, v cty.Value) (*Parameter, error) {
	cv, err := coerce(k, v)
	if err != nil {
		return nil, &TypeMismatchError{Want: k, Got: typeName(v), Reason: err.Error()}
	}
	return &Parameter{kind: k, value: cv, tracked: true}, nil
}

func scalar(k Kind, v cty.Value) *Parameter {
	return &Parameter{kind: k, value: v, tracked: true}
}

// Double returns a tracked double parameter.
func Double(v float64) *Parameter { return scalar(KindDouble, cty.NumberFloatVal(v)) }

// Int32 returns a tracked int32 parameter.
func Int32(v int32) *Parameter { return scalar(KindInt32, cty.NumberIntVal(int64(v))) }

// UInt32 returns a tracked uint32 parameter.
func UInt32(v uint32) *Parameter { return scalar(KindUInt32, cty.NumberUIntVal(uint64(v))) }

// Int64 returns a tracked int64 parameter.
func Int64(v int64) *Parameter { return scalar(KindInt64, cty.NumberIntVal(v)) }

// UInt64 returns a tracked uint64 parameter.
func UInt64(v uint64) *Parameter { return scalar(KindUInt64, cty.NumberUIntVal(v)) }

// Bool returns a tracked bool parameter.
func Bool(v bool) *Parameter { return scalar(KindBool, cty.BoolVal(v)) }

// String returns a tracked string parameter.
func String(v string) *Parameter { return scalar(KindString, cty.StringVal(v)) }

// InputTag returns a tracked InputTag parameter, e.g. "inclusiveSecondaryVertices".
func InputTag(v string) *Parameter { return scalar(KindInputTag, cty.StringVal(v)) }

// VDouble returns a tracked vdouble parameter.
func VDouble(vs ...float64) *Parameter {
	elems := make([]cty.Value, len(vs))
	for i, v := range vs {
		elems[i] = cty.NumberFloatVal(v)
	}
	return scalar(KindVDouble, listOf(KindDouble, elems))
}

// VInt32 returns a tracked vint32 parameter.
func VInt32(vs ...int32) *Parameter {
	elems := make([]cty.Value, len(vs))
	for i, v := range vs {
		elems[i] = cty.NumberIntVal(int64(v))
	}
	return scalar(KindVInt32, listOf(KindInt32, elems))
}

// VString returns a tracked vstring parameter.
func VString(vs ...string) *Parameter {
	elems := make([]cty.Value, len(vs))
	for i, v := range vs {
		elems[i] = cty.StringVal(v)
	}
	return scalar(KindVString, listOf(KindString, elems))
}

// Nested wraps a record as a tracked PSet parameter. The record is owned by
// the parameter from then on.
func Nested(r *Record) *Parameter {
	if r == nil {
		r = New("")
	}
	return &Parameter{kind: KindPSet, nested: r, tracked: true}
}

// Untracked returns a copy of p marked as untracked.
func (p *Parameter) Untracked() *Parameter {
	c := p.clone()
	c.tracked = false
	return c
}

// Kind returns the declared kind.
func (p *Parameter) Kind() Kind { return p.kind }

// Tracked reports whether the parameter is tracked.
func (p *Parameter) Tracked() bool { return p.tracked }

// Value returns the parameter value. For a PSet it is the object form of the
// nested record.
func (p *Parameter) Value() cty.Value {
	if p.kind == KindPSet {
		return p.nested.AsValue()
	}
	return p.value
}

// Record returns the nested record of a PSet parameter, or nil.
func (p *Parameter) Record() *Record {
	return p.nested
}

func (p *Parameter) clone() *Parameter {
	c := *p
	if p.nested != nil {
		c.nested = p.nested.Clone()
	}
	return &c
}

func (p *Parameter) equal(o *Parameter) bool {
	if p.kind != o.kind || p.tracked != o.tracked {
		return false
	}
	if p.kind == KindPSet {
		return p.nested.Equal(o.nested)
	}
	return valuesEqual(p.value, o.value)
}

// valuesEqual compares parameter values. Numbers are compared at double
// precision so that a literal parsed from HCL equals the same literal built
// from a float64; integers are compared exactly.
func valuesEqual(a, b cty.Value) bool {
	if !a.Type().Equals(b.Type()) {
		return false
	}
	switch {
	case a.Type().Equals(cty.Number):
		af, bf := a.AsBigFloat(), b.AsBigFloat()
		if af.IsInt() && bf.IsInt() {
			return af.Cmp(bf) == 0
		}
		x, _ := af.Float64()
		y, _ := bf.Float64()
		return x == y
	case a.Type().IsListType():
		if a.LengthInt() != b.LengthInt() {
			return false
		}
		as, bs := a.AsValueSlice(), b.AsValueSlice()
		for i := range as {
			if !valuesEqual(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	return a.RawEquals(b)
}
