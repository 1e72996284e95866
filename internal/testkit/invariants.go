package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pasc/internal/ast"
	"pasc/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span is non-empty and within file content bounds
// 2) every item span is non-empty and fully contained in file.Span
// 3) type expressions of type and var items lie inside their item
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	// 1) file span sanity
	if f.Span.Empty() {
		return fmt.Errorf("file span is empty: %v", f.Span)
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	// 2) item spans within file span
	for _, it := range f.Items {
		item := b.Items.Get(it)
		if item == nil {
			return fmt.Errorf("nil item for id=%d", it)
		}
		sp := item.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty %s item span: %v", item.Kind, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("item span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if !within(sp, f.Span) {
			return fmt.Errorf("item span %v is outside file span %v", sp, f.Span)
		}
		// 3) type expression inside its declaration
		if typ := declaredType(b, it); typ.IsValid() {
			te := b.Types.Get(typ)
			if te == nil {
				return fmt.Errorf("nil type expression for id=%d", typ)
			}
			if !within(te.Span, sp) {
				return fmt.Errorf("%s type span %v is outside item span %v", te.Kind, te.Span, sp)
			}
		}
	}
	return nil
}

func declaredType(b *ast.Builder, id ast.ItemID) ast.TypeID {
	if t, ok := b.Items.Type(id); ok {
		return t.Type
	}
	if v, ok := b.Items.Var(id); ok {
		return v.Type
	}
	return ast.NoTypeID
}

func within(inner, outer source.Span) bool {
	return inner.File == outer.File && inner.Start >= outer.Start && inner.End <= outer.End
}
