package sema

import (
	"fmt"

	"pasc/internal/ast"
	"pasc/internal/diag"
	"pasc/internal/expr"
	"pasc/internal/source"
	"pasc/internal/types"
)

// resolveType turns a type expression into a types.Type. ok is false when
// any part of it was reported.
func (c *checker) resolveType(id ast.TypeID) (types.Type, bool) {
	te := c.builder.Types.Get(id)
	if te == nil {
		return types.Invalid, false
	}
	switch te.Kind {
	case ast.TypeExprName:
		name, _ := c.builder.Types.Name(id)
		return c.resolveName(name.Name)
	case ast.TypeExprSet:
		set, _ := c.builder.Types.Set(id)
		elem, ok := c.resolveType(set.Elem)
		if !ok {
			return types.Invalid, false
		}
		return types.NewSet(elem), true
	case ast.TypeExprArray:
		arr, _ := c.builder.Types.Array(id)
		return c.resolveArray(arr)
	case ast.TypeExprRecord:
		rec, _ := c.builder.Types.Record(id)
		return c.resolveRecord(rec)
	case ast.TypeExprEnum:
		enum, _ := c.builder.Types.Enum(id)
		return c.resolveEnum(enum)
	case ast.TypeExprRange:
		r, _ := c.builder.Types.Range(id)
		b, ok := c.rangeBounds(r, te.Span)
		if !ok {
			return types.Invalid, false
		}
		return types.NewRange(b.Lo, b.Hi), true
	}
	return types.Invalid, false
}

func (c *checker) resolveName(name ast.Ident) (types.Type, bool) {
	t, ok := c.prog.LookupType(name.Name)
	if !ok {
		c.report(diag.SemaUnknownType, name.Span, fmt.Sprintf("unknown type `%s`", name.Name)).Emit()
		return types.Invalid, false
	}
	return t, !types.IsInvalid(t)
}

func (c *checker) resolveArray(arr *ast.TypeArray) (types.Type, bool) {
	dims := make([]types.Bounds, 0, len(arr.Dims))
	ok := true
	for _, dim := range arr.Dims {
		b, dimOK := c.dimension(dim)
		ok = ok && dimOK
		dims = append(dims, b)
	}
	elem, elemOK := c.resolveType(arr.Elem)
	if !ok || !elemOK {
		return types.Invalid, false
	}
	return types.NewArray(elem, dims...), true
}

// dimension accepts lo..hi or the name of a range, enumeration or Boolean type.
func (c *checker) dimension(id ast.TypeID) (types.Bounds, bool) {
	te := c.builder.Types.Get(id)
	if te == nil {
		return types.Bounds{}, false
	}
	if r, ok := c.builder.Types.Range(id); ok {
		return c.rangeBounds(r, te.Span)
	}
	name, ok := c.builder.Types.Name(id)
	if !ok {
		return types.Bounds{}, false
	}
	t, ok := c.resolveName(name.Name)
	if !ok {
		return types.Bounds{}, false
	}
	switch t := t.(type) {
	case *types.Range:
		return types.Bounds{Lo: t.Lo, Hi: t.Hi}, true
	case *types.Enum:
		return types.Bounds{Lo: 0, Hi: int64(len(t.Variants)) - 1}, true
	}
	if types.Equal(t, types.Boolean) {
		return types.Bounds{Lo: 0, Hi: 1}, true
	}
	c.report(diag.SemaInvalidLimit, te.Span, fmt.Sprintf("type %s cannot be used as an array dimension", t)).Emit()
	return types.Bounds{}, false
}

func (c *checker) rangeBounds(r *ast.TypeRange, span source.Span) (types.Bounds, bool) {
	lo, loOK := c.foldBound(r.Lo, span)
	hi, hiOK := c.foldBound(r.Hi, span)
	if !loOK || !hiOK {
		return types.Bounds{}, false
	}
	if lo > hi {
		c.report(diag.SemaEmptyRange, span, fmt.Sprintf("range %d..%d is empty", lo, hi)).Emit()
		return types.Bounds{}, false
	}
	return types.Bounds{Lo: lo, Hi: hi}, true
}

// foldBound validates n first so type errors win over the generic limit error.
func (c *checker) foldBound(n expr.Node, fallback source.Span) (int64, bool) {
	if errs := expr.Validate(c.prog, n); len(errs) > 0 {
		c.reportExprErrors(errs, fallback)
		return 0, false
	}
	v, err := expr.AsNumber(c.prog, n)
	if err != nil {
		c.reportExprError(err, fallback)
		return 0, false
	}
	return v, true
}

func (c *checker) resolveRecord(rec *ast.TypeRecord) (types.Type, bool) {
	seen := make(map[string]source.Span)
	var fields []types.Field
	ok := true
	for _, group := range rec.Fields {
		t, typeOK := c.resolveType(group.Type)
		ok = ok && typeOK
		for _, name := range group.Names {
			if prev, dup := seen[name.Name]; dup {
				c.report(diag.SemaDuplicateSymbol, name.Span, "duplicate field `"+name.Name+"`").
					WithNote(prev, "first declared here").
					Emit()
				ok = false
				continue
			}
			seen[name.Name] = name.Span
			fields = append(fields, types.Field{Name: name.Name, Type: t})
		}
	}
	if !ok {
		return types.Invalid, false
	}
	return types.NewRecord(fields...), true
}

func (c *checker) resolveEnum(enum *ast.TypeEnum) (types.Type, bool) {
	seen := make(map[string]source.Span)
	variants := make([]string, 0, len(enum.Variants))
	ok := true
	for _, v := range enum.Variants {
		if prev, dup := seen[v.Name]; dup {
			c.report(diag.SemaDuplicateSymbol, v.Span, "duplicate variant `"+v.Name+"`").
				WithNote(prev, "first declared here").
				Emit()
			ok = false
			continue
		}
		seen[v.Name] = v.Span
		variants = append(variants, v.Name)
	}
	if !ok {
		return types.Invalid, false
	}
	return types.NewEnum(variants...), true
}
