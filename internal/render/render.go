package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/psetforge/internal/pset"
)

// Output formats.
const (
	FormatHCL  = "hcl"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatHCL, FormatJSON, FormatYAML}

// Encoder writes one named record.
type Encoder interface {
	Encode(w io.Writer, name string, rec *pset.Record) error
}

// New returns the encoder for format.
func New(format string) (Encoder, error) {
	switch strings.ToLower(format) {
	case FormatHCL:
		return hclEncoder{}, nil
	case FormatJSON:
		return jsonEncoder{}, nil
	case FormatYAML:
		return yamlEncoder{}, nil
	}
	return nil, fmt.Errorf("unsupported format %q: must be one of %s", format, strings.Join(Formats, ", "))
}

// WriteDiff prints one `path: old -> new` line per change.
func WriteDiff(w io.Writer, changes []pset.Change) error {
	for _, c := range changes {
		if _, err := fmt.Fprintf(w, "%s: %s -> %s\n", c.Path, formatValue(c.From), formatValue(c.To)); err != nil {
			return err
		}
	}
	return nil
}
