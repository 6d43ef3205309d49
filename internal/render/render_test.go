package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/specialistvlad/psetforge/internal/btag"
	"github.com/specialistvlad/psetforge/internal/hcl"
	"github.com/specialistvlad/psetforge/internal/pset"
	"github.com/specialistvlad/psetforge/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func smallRecord() *pset.Record {
	sub := pset.New("").MustAdd("on", pset.Bool(true))
	return pset.New("Producer").
		MustAdd("cut", pset.Double(-0.5)).
		MustAdd("whole", pset.Double(2)).
		MustAdd("tag", pset.InputTag("x")).
		MustAdd("n", pset.UInt32(2)).
		MustAdd("w", pset.VDouble(1, 0.25)).
		MustAdd("none", pset.VString()).
		MustAdd("label", pset.String("a").Untracked()).
		MustAdd("sub", pset.Nested(sub))
}

func encode(t *testing.T, format, name string, rec *pset.Record) string {
	t.Helper()
	enc, err := New(format)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, name, rec))
	return buf.String()
}

func reload(t *testing.T, src string) *pset.Record {
	t.Helper()
	fsys := fstest.MapFS{"out/rendered.hcl": {Data: []byte(src)}}
	model, err := hcl.NewLoader().LoadFS(context.Background(), fsys, "out")
	require.NoError(t, err, src)
	require.Len(t, model.Records, 1)
	return model.Records[0].Record
}

func TestNew(t *testing.T) {
	for _, f := range Formats {
		enc, err := New(f)
		require.NoError(t, err, f)
		assert.NotNil(t, enc)
	}

	_, err := New("toml")
	assert.ErrorContains(t, err, `unsupported format "toml": must be one of hcl, json, yaml`)
}

func TestHCL(t *testing.T) {
	out := encode(t, FormatHCL, "small", smallRecord())

	assert.True(t, strings.HasPrefix(out, `record "Producer" "small" {`), out)
	for _, want := range []string{
		"double(-0.5)",
		"double(2)",
		`input_tag("x")`,
		"uint32(2)",
		"vdouble(1, 0.25)",
		"vstring()",
		`untracked(string("a"))`,
		"sub {",
		"bool(true)",
	} {
		assert.Contains(t, out, want)
	}

	assert.True(t, smallRecord().Equal(reload(t, out)), "rendered HCL must load back to an equal record")
}

func TestHCL_RoundTripNegativeTagInfos(t *testing.T) {
	reg := registry.New()
	require.NoError(t, (&btag.Module{}).Register(context.Background(), reg))

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			rec, err := reg.Lookup(name)
			require.NoError(t, err)

			out := encode(t, FormatHCL, name, rec)
			assert.True(t, rec.Equal(reload(t, out)))
		})
	}
}

func TestJSON(t *testing.T) {
	out := encode(t, FormatJSON, "small", smallRecord())

	var doc struct {
		Name       string         `json:"name"`
		Type       string         `json:"type"`
		Parameters map[string]any `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "small", doc.Name)
	assert.Equal(t, "Producer", doc.Type)
	assert.Equal(t, -0.5, doc.Parameters["cut"])
	assert.Equal(t, "x", doc.Parameters["tag"])
	assert.Equal(t, []any{1.0, 0.25}, doc.Parameters["w"])
	assert.Equal(t, []any{}, doc.Parameters["none"])
	assert.Equal(t, map[string]any{"on": true}, doc.Parameters["sub"])
	assert.Contains(t, out, "\n  \"name\": \"small\"", "output is indented")
}

func TestYAML(t *testing.T) {
	out := encode(t, FormatYAML, "small", smallRecord())

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(out), &root))
	doc := root.Content[0]
	require.Equal(t, "small", doc.Content[0].Value)

	body := doc.Content[1]
	assert.Equal(t, "type", body.Content[0].Value)
	assert.Equal(t, "Producer", body.Content[1].Value)

	params := body.Content[3]
	var keys []string
	for i := 0; i < len(params.Content); i += 2 {
		keys = append(keys, params.Content[i].Value)
	}
	assert.Equal(t, []string{"cut", "whole", "tag", "n", "w", "none", "label", "sub"}, keys, "declaration order is kept")

	assert.Contains(t, out, "whole: 2.0\n", "integral doubles keep a fractional part")
	assert.Contains(t, out, "w: [1.0, 0.25]\n")
	assert.Contains(t, out, "label: a # untracked\n")

	var decoded map[string]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	params2 := decoded["small"]["parameters"].(map[string]any)
	assert.Equal(t, -0.5, params2["cut"])
	assert.Equal(t, 2, params2["n"])
}

func TestWriteDiff(t *testing.T) {
	base := smallRecord()
	derived := base.Clone()
	require.NoError(t, derived.Apply(
		pset.Assign("cut", 0.5),
		pset.Assign("w[0]", 3.0),
		pset.Assign("tag", "y"),
	))

	changes, err := pset.Diff(base, derived)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDiff(&buf, changes))
	assert.Equal(t, strings.Join([]string{
		"cut: -0.5 -> 0.5",
		`tag: "x" -> "y"`,
		"w: [1, 0.25] -> [3, 0.25]",
		"",
	}, "\n"), buf.String())
}
