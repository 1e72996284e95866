package types

import (
	"fmt"
	"strings"
)

// displayLimit is how many members of records and enums are listed before "...".
const displayLimit = 3

// SetOf is a set with elements of Elem.
type SetOf struct {
	Elem Type
}

func NewSet(elem Type) *SetOf { return &SetOf{Elem: elem} }

func (s *SetOf) Kind() Kind     { return KindSet }
func (s *SetOf) String() string { return "Set of " + typeString(s.Elem) }
func (s *SetOf) sealed()        {}

func (s *SetOf) Equal(other Type) bool {
	o, ok := other.(*SetOf)
	return ok && Equal(s.Elem, o.Elem)
}

// Bounds is an inclusive integer index range of one array dimension.
type Bounds struct {
	Lo, Hi int64
}

func (b Bounds) String() string { return fmt.Sprintf("%d..%d", b.Lo, b.Hi) }

// Len returns the number of indexes in the range, zero when Lo > Hi.
func (b Bounds) Len() int64 {
	if b.Hi < b.Lo {
		return 0
	}
	return b.Hi - b.Lo + 1
}

// ArrayOf is a possibly multi-dimensional array.
type ArrayOf struct {
	Dims []Bounds
	Elem Type
}

func NewArray(elem Type, dims ...Bounds) *ArrayOf {
	return &ArrayOf{Dims: dims, Elem: elem}
}

func (a *ArrayOf) Kind() Kind { return KindArray }
func (a *ArrayOf) sealed()    {}

func (a *ArrayOf) String() string {
	dims := make([]string, len(a.Dims))
	for i, d := range a.Dims {
		dims[i] = d.String()
	}
	return fmt.Sprintf("Array of %s [%s]", typeString(a.Elem), strings.Join(dims, ";"))
}

func (a *ArrayOf) Equal(other Type) bool {
	o, ok := other.(*ArrayOf)
	if !ok || len(a.Dims) != len(o.Dims) || !Equal(a.Elem, o.Elem) {
		return false
	}
	for i := range a.Dims {
		if a.Dims[i] != o.Dims[i] {
			return false
		}
	}
	return true
}

// Field is one named member of a record.
type Field struct {
	Name string
	Type Type
}

// Record is a mapping from field names to types. Field order is kept
// for display only and does not affect equality.
type Record struct {
	Fields []Field
}

func NewRecord(fields ...Field) *Record { return &Record{Fields: fields} }

func (r *Record) Kind() Kind { return KindRecord }
func (r *Record) sealed()    {}

// Field looks up a member by name.
func (r *Record) Field(name string) (Type, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("Record ")
	for i, f := range r.Fields {
		if i == displayLimit {
			sb.WriteString("... ")
			break
		}
		fmt.Fprintf(&sb, "%s: %s; ", f.Name, typeString(f.Type))
	}
	sb.WriteString("end")
	return sb.String()
}

func (r *Record) Equal(other Type) bool {
	o, ok := other.(*Record)
	if !ok || len(r.Fields) != len(o.Fields) {
		return false
	}
	for _, f := range r.Fields {
		t, ok := o.Field(f.Name)
		if !ok || !Equal(f.Type, t) {
			return false
		}
	}
	return true
}

// Enum is an ordered list of variant names.
type Enum struct {
	Variants []string
}

func NewEnum(variants ...string) *Enum { return &Enum{Variants: variants} }

func (e *Enum) Kind() Kind { return KindEnum }
func (e *Enum) sealed()    {}

// Ordinal returns the zero-based index of a variant.
func (e *Enum) Ordinal(name string) (int, bool) {
	for i, v := range e.Variants {
		if v == name {
			return i, true
		}
	}
	return 0, false
}

func (e *Enum) String() string {
	shown := e.Variants
	more := ""
	if len(shown) > displayLimit {
		shown, more = shown[:displayLimit], "..."
	}
	return "(" + strings.Join(shown, ",") + more + ")"
}

func (e *Enum) Equal(other Type) bool {
	o, ok := other.(*Enum)
	if !ok || len(e.Variants) != len(o.Variants) {
		return false
	}
	for i := range e.Variants {
		if e.Variants[i] != o.Variants[i] {
			return false
		}
	}
	return true
}

// Range is an integer subrange lo..hi.
type Range struct {
	Lo, Hi int64
}

func NewRange(lo, hi int64) *Range { return &Range{Lo: lo, Hi: hi} }

func (r *Range) Kind() Kind     { return KindRange }
func (r *Range) String() string { return fmt.Sprintf("%d..%d", r.Lo, r.Hi) }
func (r *Range) sealed()        {}

func (r *Range) Equal(other Type) bool {
	o, ok := other.(*Range)
	return ok && o.Lo == r.Lo && o.Hi == r.Hi
}

func typeString(t Type) string {
	if t == nil {
		return Invalid.String()
	}
	return t.String()
}
