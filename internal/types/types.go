package types

// Type is a value type of the language. The set of implementations is closed:
// Basic, *SetOf, *ArrayOf, *Record, *Enum and *Range.
type Type interface {
	Kind() Kind
	String() string
	// Equal reports structural equality. Invalid equals only Invalid.
	Equal(other Type) bool
	sealed()
}

// Basic is one of the scalar types or Invalid.
type Basic struct {
	kind Kind
	name string
}

var (
	Integer Type = &Basic{kind: KindInteger, name: "Integer"}
	Real    Type = &Basic{kind: KindReal, name: "Real"}
	Boolean Type = &Basic{kind: KindBoolean, name: "Boolean"}
	Char    Type = &Basic{kind: KindChar, name: "Character"}
	// Invalid is the type of every expression that failed validation.
	Invalid Type = &Basic{kind: KindInvalid, name: "<???>"}
)

// Primitive lists the types arithmetic and comparison accept, in display order.
var Primitive = []Type{Integer, Real, Char, Boolean}

func (b *Basic) Kind() Kind     { return b.kind }
func (b *Basic) String() string { return b.name }
func (b *Basic) sealed()        {}

func (b *Basic) Equal(other Type) bool {
	o, ok := other.(*Basic)
	return ok && o.kind == b.kind
}

// IsPrimitive reports whether t is Integer, Real, Char or Boolean.
func IsPrimitive(t Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case KindInteger, KindReal, KindChar, KindBoolean:
		return true
	}
	return false
}

// IsInvalid reports whether t is missing or Invalid.
func IsInvalid(t Type) bool {
	return t == nil || t.Kind() == KindInvalid
}

// Equal compares two possibly nil types.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
