package ast

import "pasc/internal/source"

// TypeItem is `name = typeExpr;` inside a type section.
type TypeItem struct {
	Name Ident
	Type TypeID
	Span source.Span
}

func (i *Items) Type(id ItemID) (*TypeItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemType {
		return nil, false
	}
	return i.Types.Get(uint32(item.Payload)), true
}

func (i *Items) NewType(name Ident, typ TypeID, span source.Span) ItemID {
	payload := PayloadID(i.Types.Allocate(TypeItem{Name: name, Type: typ, Span: span}))
	return i.New(ItemType, span, payload)
}
