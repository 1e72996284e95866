package ast

import "pasc/internal/source"

type Hints struct{ Files, Items, Types uint }

type Builder struct {
	Files *Files
	Items *Items
	Types *TypeExprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 3
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Items: NewItems(hints.Items),
		Types: NewTypeExprs(hints.Types),
	}
}

func (b *Builder) NewFile(sp source.Span, name Ident) FileID {
	return b.Files.New(sp, name)
}

// PushItem appends an item to the file in declaration order.
func (b *Builder) PushItem(file FileID, item ItemID) {
	if f := b.Files.Get(file); f != nil {
		f.Items = append(f.Items, item)
	}
}
