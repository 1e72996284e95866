package ast

import "pasc/internal/source"

// VarItem is `a, b: typeExpr;` inside a var section.
type VarItem struct {
	Names []Ident
	Type  TypeID
	Span  source.Span
}

func (i *Items) Var(id ItemID) (*VarItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemVar {
		return nil, false
	}
	return i.Vars.Get(uint32(item.Payload)), true
}

func (i *Items) NewVar(names []Ident, typ TypeID, span source.Span) ItemID {
	payload := PayloadID(i.Vars.Allocate(VarItem{Names: names, Type: typ, Span: span}))
	return i.New(ItemVar, span, payload)
}
