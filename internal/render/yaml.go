package render

import (
	"fmt"
	"io"

	"github.com/specialistvlad/psetforge/internal/pset"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// yamlEncoder writes the record as a YAML mapping in declaration order.
// Untracked parameters carry an `untracked` comment.
type yamlEncoder struct{}

func (yamlEncoder) Encode(w io.Writer, name string, rec *pset.Record) error {
	doc := mappingNode()
	if rec.Type() != "" {
		appendPair(doc, "type", stringNode(rec.Type()))
	}
	appendPair(doc, "parameters", recordNode(rec))

	root := mappingNode()
	appendPair(root, name, doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("render %q as yaml: %w", name, err)
	}
	return enc.Close()
}

func recordNode(rec *pset.Record) *yaml.Node {
	n := mappingNode()
	for _, name := range rec.Names() {
		p, _ := rec.Param(name)

		var value *yaml.Node
		if p.Kind() == pset.KindPSet {
			value = recordNode(p.Record())
		} else {
			value = valueNode(p.Kind(), p.Value())
		}
		if !p.Tracked() {
			value.LineComment = "untracked"
		}
		appendPair(n, name, value)
	}
	return n
}

func valueNode(k pset.Kind, v cty.Value) *yaml.Node {
	if k.IsVector() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			seq.Content = append(seq.Content, valueNode(k.Elem(), ev))
		}
		return seq
	}

	switch {
	case k == pset.KindDouble:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatDouble(v)}
	case k.IsInteger():
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: formatNumber(v)}
	case k == pset.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: formatValue(v)}
	}
	return stringNode(v.AsString())
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, stringNode(key), value)
}
