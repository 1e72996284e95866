package ast

import (
	"testing"

	"pasc/internal/source"
)

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatal("index 0 is reserved")
	}
	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 {
		t.Fatalf("indices = %d, %d; want 1, 2", first, second)
	}
	if got := *a.Get(second); got != 20 {
		t.Errorf("Get(2) = %d", got)
	}
	if a.Get(3) != nil {
		t.Error("out of range index must return nil")
	}
	if a.Len() != 2 || len(a.Slice()) != 2 {
		t.Errorf("Len = %d", a.Len())
	}
}

func TestItemsTypedAccess(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{File: 1, Start: 0, End: 8}
	file := b.NewFile(sp, Ident{Name: "p"})

	typ := b.Types.NewName(Ident{Name: "integer", Span: source.Span{File: 1, Start: 5, End: 12}})
	constID := b.Items.NewConst(Ident{Name: "n"}, nil, sp)
	varID := b.Items.NewVar([]Ident{{Name: "a"}, {Name: "b"}}, typ, sp)
	b.PushItem(file, constID)
	b.PushItem(file, varID)

	f := b.Files.Get(file)
	if len(f.Items) != 2 || f.Items[0] != constID {
		t.Fatalf("items = %v", f.Items)
	}
	if _, ok := b.Items.Var(constID); ok {
		t.Error("const item must not be readable as var")
	}
	v, ok := b.Items.Var(varID)
	if !ok || len(v.Names) != 2 || v.Type != typ {
		t.Fatalf("var item = %+v, %v", v, ok)
	}
	if c, ok := b.Items.Const(constID); !ok || c.Name.Name != "n" {
		t.Errorf("const item = %+v, %v", c, ok)
	}
	if got := b.Items.Get(varID).Kind.String(); got != "var" {
		t.Errorf("kind = %q", got)
	}
}

func TestTypeExprPayloads(t *testing.T) {
	types := NewTypeExprs(0)
	sp := source.Span{File: 1, Start: 0, End: 4}
	elem := types.NewName(Ident{Name: "char", Span: sp})
	set := types.NewSet(sp, elem)
	enum := types.NewEnum(sp, []Ident{{Name: "red"}, {Name: "green"}})
	arr := types.NewArray(sp, []TypeID{enum}, set)
	rec := types.NewRecord(sp, []TypeField{{Names: []Ident{{Name: "x"}}, Type: elem}})

	if s, ok := types.Set(set); !ok || s.Elem != elem {
		t.Errorf("set payload = %+v, %v", s, ok)
	}
	if _, ok := types.Record(set); ok {
		t.Error("set must not be readable as record")
	}
	if a, ok := types.Array(arr); !ok || len(a.Dims) != 1 || a.Dims[0] != enum || a.Elem != set {
		t.Errorf("array payload = %+v, %v", a, ok)
	}
	if e, ok := types.Enum(enum); !ok || len(e.Variants) != 2 {
		t.Errorf("enum payload = %+v, %v", e, ok)
	}
	if r, ok := types.Record(rec); !ok || r.Fields[0].Type != elem {
		t.Errorf("record payload = %+v, %v", r, ok)
	}
	if n, ok := types.Name(elem); !ok || n.Name.Name != "char" {
		t.Errorf("name payload = %+v, %v", n, ok)
	}
	if got := types.Get(arr).Kind; got != TypeExprArray {
		t.Errorf("kind = %v", got)
	}
	if _, ok := types.Range(NoTypeID); ok {
		t.Error("NoTypeID must not resolve")
	}
}
