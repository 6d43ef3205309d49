package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/psetforge/internal/pset"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

type jsonDocument struct {
	Name       string          `json:"name"`
	Type       string          `json:"type,omitempty"`
	Parameters json.RawMessage `json:"parameters"`
}

// jsonEncoder writes the record as an object. Parameter names are sorted,
// as in any cty object.
type jsonEncoder struct{}

func (jsonEncoder) Encode(w io.Writer, name string, rec *pset.Record) error {
	v := rec.AsValue()
	params, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return fmt.Errorf("render %q as json: %w", name, err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonDocument{
		Name:       name,
		Type:       rec.Type(),
		Parameters: params,
	})
}
