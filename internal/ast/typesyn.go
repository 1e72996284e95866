package ast

import (
	"pasc/internal/expr"
	"pasc/internal/source"
)

type TypeExprKind uint8

const (
	TypeExprName TypeExprKind = iota
	TypeExprSet
	TypeExprArray
	TypeExprRecord
	TypeExprEnum
	TypeExprRange
)

func (k TypeExprKind) String() string {
	switch k {
	case TypeExprName:
		return "name"
	case TypeExprSet:
		return "set"
	case TypeExprArray:
		return "array"
	case TypeExprRecord:
		return "record"
	case TypeExprEnum:
		return "enum"
	case TypeExprRange:
		return "range"
	default:
		return "unknown"
	}
}

type TypeExpr struct {
	Kind    TypeExprKind
	Span    source.Span
	Payload PayloadID
}

// TypeName refers to a builtin or declared type.
type TypeName struct{ Name Ident }

// TypeSet is `set of Elem`.
type TypeSet struct{ Elem TypeID }

// TypeArray is `array [d1, d2] of Elem`; every dimension is a TypeExprRange.
type TypeArray struct {
	Dims []TypeID
	Elem TypeID
}

// TypeField is one `a, b: T` group of a record.
type TypeField struct {
	Names []Ident
	Type  TypeID
	Span  source.Span
}

// TypeRecord is `record fields end`.
type TypeRecord struct{ Fields []TypeField }

// TypeEnum is `(a, b, c)`.
type TypeEnum struct{ Variants []Ident }

// TypeRange is `lo..hi` with both bounds constant expressions.
type TypeRange struct{ Lo, Hi expr.Node }

type TypeExprs struct {
	Arena   *Arena[TypeExpr]
	Names   *Arena[TypeName]
	Sets    *Arena[TypeSet]
	Arrays  *Arena[TypeArray]
	Records *Arena[TypeRecord]
	Enums   *Arena[TypeEnum]
	Ranges  *Arena[TypeRange]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &TypeExprs{
		Arena:   NewArena[TypeExpr](capHint),
		Names:   NewArena[TypeName](capHint),
		Sets:    NewArena[TypeSet](0),
		Arrays:  NewArena[TypeArray](0),
		Records: NewArena[TypeRecord](0),
		Enums:   NewArena[TypeEnum](0),
		Ranges:  NewArena[TypeRange](0),
	}
}

func (t *TypeExprs) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

func (t *TypeExprs) new(kind TypeExprKind, span source.Span, payload uint32) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

func (t *TypeExprs) NewName(name Ident) TypeID {
	return t.new(TypeExprName, name.Span, t.Names.Allocate(TypeName{Name: name}))
}

func (t *TypeExprs) NewSet(span source.Span, elem TypeID) TypeID {
	return t.new(TypeExprSet, span, t.Sets.Allocate(TypeSet{Elem: elem}))
}

func (t *TypeExprs) NewArray(span source.Span, dims []TypeID, elem TypeID) TypeID {
	return t.new(TypeExprArray, span, t.Arrays.Allocate(TypeArray{Dims: dims, Elem: elem}))
}

func (t *TypeExprs) NewRecord(span source.Span, fields []TypeField) TypeID {
	return t.new(TypeExprRecord, span, t.Records.Allocate(TypeRecord{Fields: fields}))
}

func (t *TypeExprs) NewEnum(span source.Span, variants []Ident) TypeID {
	return t.new(TypeExprEnum, span, t.Enums.Allocate(TypeEnum{Variants: variants}))
}

func (t *TypeExprs) NewRange(span source.Span, lo, hi expr.Node) TypeID {
	return t.new(TypeExprRange, span, t.Ranges.Allocate(TypeRange{Lo: lo, Hi: hi}))
}

func (t *TypeExprs) Name(id TypeID) (*TypeName, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeExprName {
		return nil, false
	}
	return t.Names.Get(uint32(te.Payload)), true
}

func (t *TypeExprs) Set(id TypeID) (*TypeSet, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeExprSet {
		return nil, false
	}
	return t.Sets.Get(uint32(te.Payload)), true
}

func (t *TypeExprs) Array(id TypeID) (*TypeArray, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeExprArray {
		return nil, false
	}
	return t.Arrays.Get(uint32(te.Payload)), true
}

func (t *TypeExprs) Record(id TypeID) (*TypeRecord, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeExprRecord {
		return nil, false
	}
	return t.Records.Get(uint32(te.Payload)), true
}

func (t *TypeExprs) Enum(id TypeID) (*TypeEnum, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeExprEnum {
		return nil, false
	}
	return t.Enums.Get(uint32(te.Payload)), true
}

func (t *TypeExprs) Range(id TypeID) (*TypeRange, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeExprRange {
		return nil, false
	}
	return t.Ranges.Get(uint32(te.Payload)), true
}
