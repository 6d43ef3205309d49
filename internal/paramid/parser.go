// internal/paramid/parser.go
package paramid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches a single segment: an identifier with an optional `[n]` suffix.
var segmentRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)(?:\[(\d+)\])?$`)

// Parse builds a Path from its canonical string representation.
func Parse(raw string) (*Path, error) {
	if raw == "" {
		return nil, fmt.Errorf("parameter path cannot be empty")
	}

	parts := strings.Split(raw, ".")
	p := &Path{Segments: make([]Segment, 0, len(parts))}
	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("parameter path %q contains an empty segment", raw)
		}

		matches := segmentRegex.FindStringSubmatch(part)
		if matches == nil {
			return nil, fmt.Errorf("invalid path segment %q in %q", part, raw)
		}

		seg := NewSegment(matches[1])
		if matches[2] != "" {
			if i != len(parts)-1 {
				return nil, fmt.Errorf("index is only allowed on the last segment of %q", raw)
			}
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				return nil, fmt.Errorf("invalid index in segment %q: %w", part, err)
			}
			seg = NewSegmentWithIndex(matches[1], index)
		}
		p.Segments = append(p.Segments, seg)
	}

	return p, nil
}

// MustParse is like Parse but panics on error. It is meant for literal paths
// compiled into the binary.
func MustParse(raw string) *Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}
