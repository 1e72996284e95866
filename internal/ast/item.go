package ast

import "pasc/internal/source"

type ItemKind uint8

const (
	ItemConst ItemKind = iota
	ItemType
	ItemVar
)

func (k ItemKind) String() string {
	switch k {
	case ItemConst:
		return "const"
	case ItemType:
		return "type"
	case ItemVar:
		return "var"
	default:
		return "unknown"
	}
}

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

type Items struct {
	Arena  *Arena[Item]
	Consts *Arena[ConstItem]
	Types  *Arena[TypeItem]
	Vars   *Arena[VarItem]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Items{
		Arena:  NewArena[Item](capHint),
		Consts: NewArena[ConstItem](capHint),
		Types:  NewArena[TypeItem](capHint),
		Vars:   NewArena[VarItem](capHint),
	}
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

func (i *Items) New(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{Kind: kind, Span: span, Payload: payload}))
}
