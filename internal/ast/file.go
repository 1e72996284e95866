package ast

import "pasc/internal/source"

// File is one parsed program: `program name;` followed by its sections.
type File struct {
	Span  source.Span
	Name  Ident // пустое имя, если заголовок не распарсился
	Items []ItemID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(sp source.Span, name Ident) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:  sp,
		Name:  name,
		Items: make([]ItemID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
