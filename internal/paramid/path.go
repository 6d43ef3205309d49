// internal/paramid/path.go
package paramid

import (
	"reflect"
	"strconv"
	"strings"
)

// String serializes the Path into its canonical dotted form.
func (p *Path) String() string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(seg.Name)
		if seg.HasIndex() {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(seg.Index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// Equal checks for deep equality between two paths.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	return reflect.DeepEqual(p.Segments, other.Segments)
}

// Last returns the final segment of the path.
func (p *Path) Last() Segment {
	return p.Segments[len(p.Segments)-1]
}

// Parent returns the path without its last segment, or nil for a
// single-segment path.
func (p *Path) Parent() *Path {
	if p == nil || len(p.Segments) < 2 {
		return nil
	}
	segs := make([]Segment, len(p.Segments)-1)
	copy(segs, p.Segments)
	return &Path{Segments: segs}
}

// Join renders name appended to a dotted prefix. An empty prefix yields name.
func Join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
