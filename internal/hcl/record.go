package hcl

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/psetforge/internal/config"
	"github.com/specialistvlad/psetforge/internal/pset"
)

// decodeRecord translates a `record "<type>" "<name>"` block.
func decodeRecord(block *hcl.Block) (*config.RecordDecl, hcl.Diagnostics) {
	body, diags := syntaxBody(block.Body, block.DefRange)
	if diags.HasErrors() {
		return nil, diags
	}

	name := block.Labels[1]
	if name == "" {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid record name",
			Detail:   "A record must have a non-empty name.",
			Subject:  block.LabelRanges[1].Ptr(),
		}}
	}

	rec, diags := decodeRecordBody(body, block.Labels[0])
	if diags.HasErrors() {
		return nil, diags
	}

	return &config.RecordDecl{
		Name:   name,
		Record: rec,
		Source: block.DefRange.String(),
	}, diags
}

// decodeRecordBody declares one parameter per attribute and one nested
// record per block, in source order.
func decodeRecordBody(body *hclsyntax.Body, typ string) (*pset.Record, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	rec := pset.New(typ)

	for _, item := range bodyItems(body) {
		var (
			name    string
			p       *pset.Parameter
			subject hcl.Range
		)

		switch {
		case item.attr != nil:
			name, subject = item.attr.Name, item.attr.NameRange
			decoded, attrDiags := decodeDeclaration(item.attr.Expr)
			diags = append(diags, attrDiags...)
			if attrDiags.HasErrors() {
				continue
			}
			p = decoded

		default:
			block := item.block
			name, subject = block.Type, block.TypeRange
			if len(block.Labels) > 0 {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unexpected block labels",
					Detail:   fmt.Sprintf("The nested parameter set %q does not take labels.", block.Type),
					Subject:  block.LabelRanges[0].Ptr(),
				})
				continue
			}
			nested, nestedDiags := decodeRecordBody(block.Body, "")
			diags = append(diags, nestedDiags...)
			if nestedDiags.HasErrors() {
				continue
			}
			p = pset.Nested(nested)
		}

		if err := rec.Add(name, p); err != nil {
			summary := "Invalid parameter"
			if errors.Is(err, pset.ErrDuplicateParameter) {
				summary = "Duplicate parameter"
			}
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  summary,
				Detail:   err.Error(),
				Subject:  subject.Ptr(),
			})
		}
	}

	return rec, diags
}
