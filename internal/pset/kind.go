package pset

import "fmt"

// Kind is the declared type of a parameter.
type Kind int

const (
	KindInvalid Kind = iota
	KindDouble
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindBool
	KindString
	KindInputTag
	KindVDouble
	KindVInt32
	KindVString
	KindPSet
)

var kindNames = map[Kind]string{
	KindInvalid:  "invalid",
	KindDouble:   "double",
	KindInt32:    "int32",
	KindUInt32:   "uint32",
	KindInt64:    "int64",
	KindUInt64:   "uint64",
	KindBool:     "bool",
	KindString:   "string",
	KindInputTag: "InputTag",
	KindVDouble:  "vdouble",
	KindVInt32:   "vint32",
	KindVString:  "vstring",
	KindPSet:     "PSet",
}

// String returns the framework spelling of the kind, e.g. "double" or "PSet".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a kind from its framework spelling.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if k != KindInvalid && n == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown parameter kind %q", name)
}

// IsVector reports whether the kind holds a list of elements.
func (k Kind) IsVector() bool {
	switch k {
	case KindVDouble, KindVInt32, KindVString:
		return true
	}
	return false
}

// Elem returns the element kind of a vector kind, or KindInvalid.
func (k Kind) Elem() Kind {
	switch k {
	case KindVDouble:
		return KindDouble
	case KindVInt32:
		return KindInt32
	case KindVString:
		return KindString
	}
	return KindInvalid
}

// IsInteger reports whether the kind is one of the integer kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case KindInt32, KindUInt32, KindInt64, KindUInt64:
		return true
	}
	return false
}
