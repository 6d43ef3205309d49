package pset

import (
	"fmt"

	"github.com/specialistvlad/psetforge/internal/paramid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Exists reports whether path addresses a parameter, or a vector element
// when the path ends with an index.
func (r *Record) Exists(path string) bool {
	_, err := r.Value(path)
	return err == nil
}

// Get returns the parameter at path. Indexed paths are not parameters; use
// Value for those.
func (r *Record) Get(raw string) (*Parameter, error) {
	path, err := paramid.Parse(raw)
	if err != nil {
		return nil, &SchemaError{Path: raw, Reason: err.Error()}
	}
	if path.Last().HasIndex() {
		return nil, &SchemaError{Path: raw, Reason: "an indexed path addresses a value, not a parameter"}
	}
	return r.lookup(path)
}

// Value returns the value at path, including single vector elements.
func (r *Record) Value(raw string) (cty.Value, error) {
	path, err := paramid.Parse(raw)
	if err != nil {
		return cty.NilVal, &SchemaError{Path: raw, Reason: err.Error()}
	}
	p, err := r.lookup(path)
	if err != nil {
		return cty.NilVal, err
	}

	last := path.Last()
	if !last.HasIndex() {
		return p.Value(), nil
	}
	if !p.kind.IsVector() {
		return cty.NilVal, &SchemaError{Path: raw, Reason: fmt.Sprintf("%s parameter %q cannot be indexed", p.kind, last.Name)}
	}
	if n := p.value.LengthInt(); last.Index >= n {
		return cty.NilVal, &SchemaError{Path: raw, Reason: fmt.Sprintf("index %d out of range for %q of length %d", last.Index, last.Name, n)}
	}
	return p.value.Index(cty.NumberIntVal(int64(last.Index))), nil
}

// getKind returns the parameter at path after checking its kind is one of want.
func (r *Record) getKind(raw string, want ...Kind) (*Parameter, error) {
	p, err := r.Get(raw)
	if err != nil {
		return nil, err
	}
	for _, k := range want {
		if p.kind == k {
			return p, nil
		}
	}
	return nil, &TypeMismatchError{Path: raw, Want: want[0], Got: p.kind.String()}
}

// GetDouble returns a double parameter.
func (r *Record) GetDouble(path string) (float64, error) {
	p, err := r.getKind(path, KindDouble)
	if err != nil {
		return 0, err
	}
	var out float64
	if err := gocty.FromCtyValue(p.value, &out); err != nil {
		return out, fmt.Errorf("get %q: %w", path, err)
	}
	return out, nil
}

// GetInt64 returns a signed integer parameter (int32 or int64).
func (r *Record) GetInt64(path string) (int64, error) {
	p, err := r.getKind(path, KindInt64, KindInt32)
	if err != nil {
		return 0, err
	}
	var out int64
	if err := gocty.FromCtyValue(p.value, &out); err != nil {
		return out, fmt.Errorf("get %q: %w", path, err)
	}
	return out, nil
}

// GetUint64 returns an unsigned integer parameter (uint32 or uint64).
func (r *Record) GetUint64(path string) (uint64, error) {
	p, err := r.getKind(path, KindUInt64, KindUInt32)
	if err != nil {
		return 0, err
	}
	var out uint64
	if err := gocty.FromCtyValue(p.value, &out); err != nil {
		return out, fmt.Errorf("get %q: %w", path, err)
	}
	return out, nil
}

// GetBool returns a bool parameter.
func (r *Record) GetBool(path string) (bool, error) {
	p, err := r.getKind(path, KindBool)
	if err != nil {
		return false, err
	}
	return p.value.True(), nil
}

// GetString returns a string or InputTag parameter.
func (r *Record) GetString(path string) (string, error) {
	p, err := r.getKind(path, KindString, KindInputTag)
	if err != nil {
		return "", err
	}
	return p.value.AsString(), nil
}

// GetVDouble returns a vdouble parameter.
func (r *Record) GetVDouble(path string) ([]float64, error) {
	p, err := r.getKind(path, KindVDouble)
	if err != nil {
		return nil, err
	}
	out := []float64{}
	if err := gocty.FromCtyValue(p.value, &out); err != nil {
		return out, fmt.Errorf("get %q: %w", path, err)
	}
	return out, nil
}

// GetPSet returns a nested record.
func (r *Record) GetPSet(path string) (*Record, error) {
	p, err := r.getKind(path, KindPSet)
	if err != nil {
		return nil, err
	}
	return p.nested, nil
}

// GetDoubleOr returns the double at path, or def when the path is absent.
// A present parameter of another kind is still an error.
func (r *Record) GetDoubleOr(path string, def float64) (float64, error) {
	if !r.Exists(path) {
		return def, nil
	}
	return r.GetDouble(path)
}
