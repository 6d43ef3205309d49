package pset

import (
	"fmt"
	"math"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

var (
	minInt32  = big.NewFloat(math.MinInt32)
	maxInt32  = big.NewFloat(math.MaxInt32)
	maxUInt32 = big.NewFloat(math.MaxUint32)
)

// typeName describes the type of v for error messages.
func typeName(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	if !v.IsKnown() {
		return "unknown value"
	}
	return v.Type().FriendlyName()
}

// coerce checks that v is acceptable for a parameter of kind k and returns
// its normalized representation. No implicit conversions between strings,
// numbers and bools are performed.
func coerce(k Kind, v cty.Value) (cty.Value, error) {
	if v.IsNull() {
		return cty.NilVal, fmt.Errorf("value is null")
	}
	if !v.IsKnown() {
		return cty.NilVal, fmt.Errorf("value is not known")
	}

	switch k {
	case KindDouble:
		if !v.Type().Equals(cty.Number) {
			return cty.NilVal, fmt.Errorf("expected a number")
		}
		if f, _ := v.AsBigFloat().Float64(); math.IsInf(f, 0) {
			return cty.NilVal, fmt.Errorf("%s is out of range for %s", v.AsBigFloat().Text('g', 10), k)
		}
		return v, nil

	case KindInt32, KindUInt32, KindInt64, KindUInt64:
		if !v.Type().Equals(cty.Number) {
			return cty.NilVal, fmt.Errorf("expected a number")
		}
		if err := checkInteger(k, v.AsBigFloat()); err != nil {
			return cty.NilVal, err
		}
		return v, nil

	case KindBool:
		if !v.Type().Equals(cty.Bool) {
			return cty.NilVal, fmt.Errorf("expected a bool")
		}
		return v, nil

	case KindString, KindInputTag:
		if !v.Type().Equals(cty.String) {
			return cty.NilVal, fmt.Errorf("expected a string")
		}
		return v, nil

	case KindVDouble, KindVInt32, KindVString:
		return coerceVector(k, v)

	case KindPSet:
		return cty.NilVal, fmt.Errorf("a PSet cannot be assigned as a whole, override its fields instead")
	}

	return cty.NilVal, fmt.Errorf("unsupported kind %s", k)
}

func checkInteger(k Kind, bf *big.Float) error {
	if bf.IsInf() || !bf.IsInt() {
		return fmt.Errorf("%s is not an integer", bf.Text('g', -1))
	}

	outOfRange := false
	switch k {
	case KindInt32:
		outOfRange = bf.Cmp(minInt32) < 0 || bf.Cmp(maxInt32) > 0
	case KindUInt32:
		outOfRange = bf.Sign() < 0 || bf.Cmp(maxUInt32) > 0
	case KindInt64:
		_, acc := bf.Int64()
		outOfRange = acc != big.Exact
	case KindUInt64:
		_, acc := bf.Uint64()
		outOfRange = acc != big.Exact
	}
	if outOfRange {
		return fmt.Errorf("%s is out of range for %s", bf.Text('g', -1), k)
	}
	return nil
}

func coerceVector(k Kind, v cty.Value) (cty.Value, error) {
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return cty.NilVal, fmt.Errorf("expected a list")
	}

	elemKind := k.Elem()
	elems := make([]cty.Value, 0, v.LengthInt())
	it := v.ElementIterator()
	for i := 0; it.Next(); i++ {
		_, ev := it.Element()
		cv, err := coerce(elemKind, ev)
		if err != nil {
			return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
		}
		elems = append(elems, cv)
	}
	return listOf(elemKind, elems), nil
}

// listOf builds a list value, handling the empty case cty.ListVal rejects.
func listOf(elemKind Kind, elems []cty.Value) cty.Value {
	if len(elems) == 0 {
		if elemKind == KindString {
			return cty.ListValEmpty(cty.String)
		}
		return cty.ListValEmpty(cty.Number)
	}
	return cty.ListVal(elems)
}
