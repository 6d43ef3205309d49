package hcl

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/psetforge/internal/pset"
	"github.com/zclconf/go-cty/cty"
)

// untrackedFunc wraps a typed constructor to declare an untracked parameter.
const untrackedFunc = "untracked"

// constructors maps the typed constructor functions usable in catalogs to
// the parameter kind they declare.
var constructors = map[string]pset.Kind{
	"double":    pset.KindDouble,
	"int32":     pset.KindInt32,
	"uint32":    pset.KindUInt32,
	"int64":     pset.KindInt64,
	"uint64":    pset.KindUInt64,
	"bool":      pset.KindBool,
	"string":    pset.KindString,
	"input_tag": pset.KindInputTag,
	"vdouble":   pset.KindVDouble,
	"vint32":    pset.KindVInt32,
	"vstring":   pset.KindVString,
}

// ConstructorName returns the catalog constructor for a kind, e.g.
// "input_tag" for pset.KindInputTag. PSets have no constructor.
func ConstructorName(k pset.Kind) (string, bool) {
	for name, kind := range constructors {
		if kind == k {
			return name, true
		}
	}
	return "", false
}

// decodeDeclaration decodes a parameter declaration inside a record block.
// Only typed constructors, optionally wrapped in untracked(), are accepted.
func decodeDeclaration(expr hclsyntax.Expression) (*pset.Parameter, hcl.Diagnostics) {
	call, ok := expr.(*hclsyntax.FunctionCallExpr)
	if !ok {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Untyped parameter declaration",
			Detail:   "Parameters of a record must be declared with a typed constructor, such as double(0.5) or vstring(\"a\", \"b\").",
			Subject:  expr.Range().Ptr(),
		}}
	}

	if call.Name == untrackedFunc {
		if len(call.Args) != 1 {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid untracked declaration",
				Detail:   "untracked() takes exactly one typed constructor, such as untracked(string(\"label\")).",
				Subject:  call.Range().Ptr(),
			}}
		}
		p, diags := decodeDeclaration(call.Args[0])
		if diags.HasErrors() {
			return nil, diags
		}
		return p.Untracked(), diags
	}

	p, found, diags := decodeConstructor(call)
	if !found {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unknown parameter type",
			Detail:   fmt.Sprintf("%q is not a parameter type. Supported types are double, int32, uint32, int64, uint64, bool, string, input_tag, vdouble, vint32 and vstring.", call.Name),
			Subject:  call.NameRange.Ptr(),
		}}
	}
	return p, diags
}

// decodeConstructor builds a parameter from a typed constructor call. The
// boolean result is false when the call is not a known constructor.
func decodeConstructor(call *hclsyntax.FunctionCallExpr) (*pset.Parameter, bool, hcl.Diagnostics) {
	kind, ok := constructors[call.Name]
	if !ok {
		return nil, false, nil
	}

	val, diags := constructorValue(call, kind)
	if diags.HasErrors() {
		return nil, true, diags
	}

	p, err := pset.NewParameter(kind, val)
	if err != nil {
		detail := err.Error()
		var mismatch *pset.TypeMismatchError
		if errors.As(err, &mismatch) {
			detail = fmt.Sprintf("Cannot use %s as %s: %s.", mismatch.Got, mismatch.Want, mismatch.Reason)
		}
		return nil, true, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid %s value", call.Name),
			Detail:   detail,
			Subject:  call.Range().Ptr(),
		})
	}
	return p, true, diags
}

// constructorValue evaluates the arguments of a constructor call. Scalar
// constructors take exactly one argument. Vector constructors take their
// elements either as arguments or as a single list.
func constructorValue(call *hclsyntax.FunctionCallExpr, kind pset.Kind) (cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	if call.ExpandFinal {
		return cty.NilVal, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported argument expansion",
			Detail:   "Constructor arguments cannot be expanded with \"...\".",
			Subject:  call.Range().Ptr(),
		})
	}

	args := make([]cty.Value, 0, len(call.Args))
	for _, arg := range call.Args {
		v, argDiags := arg.Value(nil)
		diags = append(diags, argDiags...)
		if argDiags.HasErrors() {
			return cty.NilVal, diags
		}
		args = append(args, v)
	}

	if !kind.IsVector() {
		if len(args) != 1 {
			return cty.NilVal, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid number of arguments",
				Detail:   fmt.Sprintf("%s() takes exactly one argument, got %d.", call.Name, len(args)),
				Subject:  call.Range().Ptr(),
			})
		}
		return args[0], diags
	}

	if len(args) == 1 {
		if ty := args[0].Type(); ty.IsTupleType() || ty.IsListType() {
			return args[0], diags
		}
	}
	return cty.TupleVal(args), diags
}
