package render

import (
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// formatNumber prints a number with the shortest decimal representation
// that reads back to the same value.
func formatNumber(v cty.Value) string {
	return v.AsBigFloat().Text('f', -1)
}

// formatDouble is formatNumber with a guaranteed fractional part, so that
// integral doubles are not read back as integers.
func formatDouble(v cty.Value) string {
	s := formatNumber(v)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatValue prints a parameter value for humans.
func formatValue(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}

	ty := v.Type()
	switch {
	case ty == cty.Number:
		return formatNumber(v)
	case ty == cty.Bool:
		return strconv.FormatBool(v.True())
	case ty == cty.String:
		return strconv.Quote(v.AsString())
	case ty.IsListType() || ty.IsTupleType():
		elems := make([]string, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			elems = append(elems, formatValue(ev))
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}
	return ty.FriendlyName()
}
