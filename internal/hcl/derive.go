package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/psetforge/internal/config"
	"github.com/specialistvlad/psetforge/internal/paramid"
	"github.com/specialistvlad/psetforge/internal/pset"
)

// decodeDerivation translates a `derive "<name>"` block. Overrides from the
// `set` block come first, then `override` blocks, each in source order.
func decodeDerivation(block *hcl.Block) (*config.Derivation, hcl.Diagnostics) {
	content, diags := block.Body.Content(deriveSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	var from string
	fromAttr := content.Attributes["from"]
	diags = append(diags, gohcl.DecodeExpression(fromAttr.Expr, nil, &from)...)
	if diags.HasErrors() {
		return nil, diags
	}
	if from == "" {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid base record",
			Detail:   "The \"from\" attribute must name the record to derive from.",
			Subject:  fromAttr.Expr.Range().Ptr(),
		})
	}

	var overrides []pset.Override

	setBlock, setDiags := findUniqueBlock(content.Blocks, "set")
	diags = append(diags, setDiags...)
	if setBlock != nil {
		body, bodyDiags := syntaxBody(setBlock.Body, setBlock.DefRange)
		diags = append(diags, bodyDiags...)
		if body != nil {
			flat, flatDiags := flattenSet(body, "")
			diags = append(diags, flatDiags...)
			overrides = append(overrides, flat...)
		}
	}

	for _, b := range content.Blocks {
		if b.Type != "override" {
			continue
		}
		o, oDiags := decodeOverrideBlock(b)
		diags = append(diags, oDiags...)
		if !oDiags.HasErrors() {
			overrides = append(overrides, o)
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return &config.Derivation{
		Name:      block.Labels[0],
		Base:      from,
		Overrides: overrides,
		Source:    block.DefRange.String(),
	}, diags
}

// flattenSet turns a nested `set` body into overrides addressed by dotted
// paths.
func flattenSet(body *hclsyntax.Body, prefix string) ([]pset.Override, hcl.Diagnostics) {
	var (
		out   []pset.Override
		diags hcl.Diagnostics
	)

	for _, item := range bodyItems(body) {
		if item.attr != nil {
			o, d := decodeOverrideValue(paramid.Join(prefix, item.attr.Name), item.attr.Expr)
			diags = append(diags, d...)
			if !d.HasErrors() {
				out = append(out, o)
			}
			continue
		}

		block := item.block
		if len(block.Labels) > 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unexpected block labels",
				Detail:   "Nested blocks inside \"set\" address parameter sets and do not take labels.",
				Subject:  block.LabelRanges[0].Ptr(),
			})
			continue
		}
		nested, d := flattenSet(block.Body, paramid.Join(prefix, block.Type))
		diags = append(diags, d...)
		out = append(out, nested...)
	}

	return out, diags
}

// decodeOverrideBlock translates an `override "<path>" { value = ... }` block.
func decodeOverrideBlock(block *hcl.Block) (pset.Override, hcl.Diagnostics) {
	path := block.Labels[0]
	if _, err := paramid.Parse(path); err != nil {
		return pset.Override{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid parameter path",
			Detail:   err.Error(),
			Subject:  block.LabelRanges[0].Ptr(),
		}}
	}

	content, diags := block.Body.Content(overrideSchema)
	if diags.HasErrors() {
		return pset.Override{}, diags
	}
	return decodeOverrideValue(path, content.Attributes["value"].Expr)
}

// decodeOverrideValue evaluates an override value. A typed constructor
// yields a typed override whose kind is checked against the declaration; any
// other expression must be a literal and takes the declared kind.
func decodeOverrideValue(path string, expr hcl.Expression) (pset.Override, hcl.Diagnostics) {
	if call, ok := expr.(*hclsyntax.FunctionCallExpr); ok {
		if call.Name == untrackedFunc {
			return pset.Override{}, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid override",
				Detail:   "Whether a parameter is tracked is fixed by its declaration and cannot be overridden.",
				Subject:  call.NameRange.Ptr(),
			}}
		}
		p, found, diags := decodeConstructor(call)
		if found {
			if diags.HasErrors() {
				return pset.Override{}, diags
			}
			return pset.Declare(path, p), diags
		}
	}

	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return pset.Override{}, diags
	}
	return pset.Override{Path: path, Value: v}, diags
}
