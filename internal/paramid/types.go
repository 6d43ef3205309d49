// internal/paramid/types.go
package paramid

// Segment is a single component of a parameter path, e.g. `name` or `name[index]`.
type Segment struct {
	Name  string
	Index int // -1 indicates no index is present.
}

// NewSegment creates a path segment without an index.
func NewSegment(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// NewSegmentWithIndex creates a path segment addressing one vector element.
func NewSegmentWithIndex(name string, index int) Segment {
	return Segment{Name: name, Index: index}
}

// HasIndex returns true if the segment has an explicit element index.
func (s Segment) HasIndex() bool {
	return s.Index != -1
}

// Path is the structured form of a dotted parameter path.
type Path struct {
	Segments []Segment
}
