package hcl

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "record", LabelNames: []string{"type", "name"}},
		{Type: "derive", LabelNames: []string{"name"}},
	},
}

var deriveSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "from", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "set"},
		{Type: "override", LabelNames: []string{"path"}},
	},
}

var overrideSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "value", Required: true},
	},
}

// findUniqueBlock searches a slice of blocks for all blocks of a given name.
// It returns a diagnostic error if more than one block of that name is found.
// If no block is found, it returns nil.
func findUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type == name {
			if found != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate \"" + name + "\" block",
					Detail:   "Only one \"" + name + "\" block is allowed.",
					Subject:  &block.DefRange,
				})
			}
			found = block
		}
	}

	return found, diags
}

// bodyItem is either an attribute or a nested block of a syntax body.
type bodyItem struct {
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func (i bodyItem) start() int {
	if i.attr != nil {
		return i.attr.SrcRange.Start.Byte
	}
	return i.block.TypeRange.Start.Byte
}

// bodyItems returns the attributes and blocks of body in source order.
// hclsyntax keeps attributes in a map, so their declaration order is
// recovered from their source ranges.
func bodyItems(body *hclsyntax.Body) []bodyItem {
	items := make([]bodyItem, 0, len(body.Attributes)+len(body.Blocks))
	for _, attr := range body.Attributes {
		items = append(items, bodyItem{attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, bodyItem{block: block})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].start() < items[j].start() })
	return items
}

// syntaxBody returns the native syntax body behind an hcl.Body.
func syntaxBody(body hcl.Body, subject hcl.Range) (*hclsyntax.Body, hcl.Diagnostics) {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported syntax",
			Detail:   "Catalogs must be written in native HCL syntax.",
			Subject:  subject.Ptr(),
		}}
	}
	return sb, nil
}
