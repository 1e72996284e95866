package ast

import (
	"pasc/internal/expr"
	"pasc/internal/source"
)

// ConstItem is `name = value;` inside a const section.
type ConstItem struct {
	Name  Ident
	Value expr.Node // обёрнут в *expr.Spanned
	Span  source.Span
}

func (i *Items) Const(id ItemID) (*ConstItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemConst {
		return nil, false
	}
	return i.Consts.Get(uint32(item.Payload)), true
}

func (i *Items) NewConst(name Ident, value expr.Node, span source.Span) ItemID {
	payload := PayloadID(i.Consts.Allocate(ConstItem{Name: name, Value: value, Span: span}))
	return i.New(ItemConst, span, payload)
}
