package render

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	catalog "github.com/specialistvlad/psetforge/internal/hcl"
	"github.com/specialistvlad/psetforge/internal/pset"
)

// hclEncoder writes a `record` block that the catalog loader reads back to
// an equal record.
type hclEncoder struct{}

func (hclEncoder) Encode(w io.Writer, name string, rec *pset.Record) error {
	f := hclwrite.NewEmptyFile()
	block := f.Body().AppendNewBlock("record", []string{rec.Type(), name})
	if err := writeHCLBody(block.Body(), rec); err != nil {
		return fmt.Errorf("render %q as hcl: %w", name, err)
	}

	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}

func writeHCLBody(body *hclwrite.Body, rec *pset.Record) error {
	for i, name := range rec.Names() {
		p, _ := rec.Param(name)

		if p.Kind() == pset.KindPSet {
			if i > 0 {
				body.AppendNewline()
			}
			nested := body.AppendNewBlock(name, nil)
			if err := writeHCLBody(nested.Body(), p.Record()); err != nil {
				return err
			}
			continue
		}

		toks, err := declarationTokens(p)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", name, err)
		}
		body.SetAttributeRaw(name, toks)
	}
	return nil
}

// declarationTokens renders a parameter as its typed constructor call.
func declarationTokens(p *pset.Parameter) (hclwrite.Tokens, error) {
	ctor, ok := catalog.ConstructorName(p.Kind())
	if !ok {
		return nil, fmt.Errorf("no constructor for kind %s", p.Kind())
	}

	var args []hclwrite.Tokens
	if p.Kind().IsVector() {
		for it := p.Value().ElementIterator(); it.Next(); {
			_, ev := it.Element()
			args = append(args, hclwrite.TokensForValue(ev))
		}
	} else {
		args = append(args, hclwrite.TokensForValue(p.Value()))
	}

	toks := hclwrite.TokensForFunctionCall(ctor, args...)
	if !p.Tracked() {
		toks = hclwrite.TokensForFunctionCall("untracked", toks)
	}
	return toks, nil
}
