package expr

import "pasc/internal/types"

// TypeOf infers the type of n. It returns types.Invalid whenever
// Validate(prog, n) would report anything.
func TypeOf(prog Context, n Node) types.Type {
	t, errs := check(orEmpty(prog), n)
	if len(errs) > 0 {
		return types.Invalid
	}
	return t
}

// Validate returns every error in n, operand errors first.
func Validate(prog Context, n Node) []Error {
	_, errs := check(orEmpty(prog), n)
	return errs
}

// IsValid reports whether Validate(prog, n) is empty.
func IsValid(prog Context, n Node) bool {
	return len(Validate(prog, n)) == 0
}

// ordinal are the types accepted by div and as array indexes.
var ordinal = []types.Type{types.Integer, types.Char, types.Boolean}

// check computes type and errors in one pass. The type is Invalid whenever
// errs is non-empty.
func check(prog Context, n Node) (types.Type, []Error) {
	switch n := n.(type) {
	case IntLit:
		return types.Integer, nil
	case RealLit:
		return types.Real, nil
	case CharLit:
		return types.Char, nil
	case BoolLit:
		return types.Boolean, nil
	case *Spanned:
		t, errs := check(prog, n.Node)
		for i, err := range errs {
			errs[i] = Tag(err, n.Span)
		}
		return t, errs
	case *In:
		return checkIn(prog, n)
	case *Comparison:
		_, _, errs := checkPrimitives(prog, n.Left, n.Right)
		if len(errs) > 0 {
			return types.Invalid, errs
		}
		return types.Boolean, nil
	case *Sum:
		lt, rt, errs := checkPrimitives(prog, n.Left, n.Right)
		if len(errs) > 0 {
			return types.Invalid, errs
		}
		return promote(lt, rt), nil
	case *Product:
		return checkProduct(prog, n)
	case *Not:
		t, errs := check(prog, n.Operand)
		if len(errs) > 0 {
			return types.Invalid, errs
		}
		if !t.Equal(types.Boolean) {
			return types.Invalid, []Error{&TypeError{Expected: []types.Type{types.Boolean}, Got: t}}
		}
		return types.Boolean, nil
	case *Logic:
		lt, rt, errs := checkOperands(prog, n.Left, n.Right)
		if len(errs) > 0 {
			return types.Invalid, errs
		}
		for _, t := range []types.Type{lt, rt} {
			if !t.Equal(types.Boolean) {
				errs = append(errs, &TypeError{Expected: []types.Type{types.Boolean}, Got: t})
			}
		}
		if len(errs) > 0 {
			return types.Invalid, errs
		}
		return types.Boolean, nil
	case *Call:
		var errs []Error
		for _, arg := range n.Args {
			_, argErrs := check(prog, arg)
			errs = append(errs, argErrs...)
		}
		if len(errs) > 0 {
			return types.Invalid, errs
		}
		return types.Invalid, []Error{&UnresolvedError{Name: n.Name}}
	case *VarRef:
		return checkRef(prog, n)
	case Seq:
		return checkSeq(prog, n)
	case nil:
		return types.Invalid, []Error{&UnresolvedError{Name: "<nil>"}}
	default:
		panic("expr: unknown node type")
	}
}

// checkOperands validates both sides; sibling errors are all collected.
func checkOperands(prog Context, left, right Node) (lt, rt types.Type, errs []Error) {
	lt, lerrs := check(prog, left)
	rt, rerrs := check(prog, right)
	return lt, rt, append(lerrs, rerrs...)
}

func checkPrimitives(prog Context, left, right Node) (lt, rt types.Type, errs []Error) {
	lt, rt, errs = checkOperands(prog, left, right)
	if len(errs) > 0 {
		return lt, rt, errs
	}
	for _, t := range []types.Type{lt, rt} {
		if !types.IsPrimitive(t) {
			errs = append(errs, &TypeError{Expected: types.Primitive, Got: t})
		}
	}
	return lt, rt, errs
}

// promote keeps equal operand types and widens anything else to Real.
func promote(lt, rt types.Type) types.Type {
	if lt.Equal(rt) {
		return lt
	}
	return types.Real
}

func checkProduct(prog Context, n *Product) (types.Type, []Error) {
	lt, rt, errs := checkPrimitives(prog, n.Left, n.Right)
	if len(errs) > 0 {
		return types.Invalid, errs
	}
	if n.Op == Div {
		for _, t := range []types.Type{lt, rt} {
			if t.Equal(types.Real) {
				errs = append(errs, &TypeError{Expected: ordinal, Got: t})
			}
		}
		if len(errs) > 0 {
			return types.Invalid, errs
		}
	}
	if n.Op == RDiv {
		return types.Real, nil
	}
	return promote(lt, rt), nil
}

func checkIn(prog Context, n *In) (types.Type, []Error) {
	st, tt, errs := checkOperands(prog, n.Sample, n.Set)
	if len(errs) > 0 {
		return types.Invalid, errs
	}
	set, ok := tt.(*types.SetOf)
	if !ok {
		return types.Invalid, []Error{&TypeError{Expected: []types.Type{types.NewSet(st)}, Got: tt}}
	}
	// пустое множество [] совместимо с любым элементом
	if types.IsInvalid(set.Elem) {
		return types.Boolean, nil
	}
	if !st.Equal(set.Elem) {
		return types.Invalid, []Error{&TypeError{Expected: []types.Type{set.Elem}, Got: st}}
	}
	return types.Boolean, nil
}

func checkSeq(prog Context, seq Seq) (types.Type, []Error) {
	if len(seq) == 0 {
		return types.NewSet(types.Invalid), nil
	}
	elems := make([]types.Type, len(seq))
	var errs []Error
	for i, el := range seq {
		var elErrs []Error
		elems[i], elErrs = check(prog, el)
		errs = append(errs, elErrs...)
	}
	if len(errs) > 0 {
		return types.Invalid, errs
	}
	first := elems[0]
	for _, t := range elems[1:] {
		if !t.Equal(first) {
			errs = append(errs, &TypeError{Expected: []types.Type{first}, Got: t})
		}
	}
	if len(errs) > 0 {
		return types.Invalid, errs
	}
	return types.NewSet(first), nil
}

func checkRef(prog Context, ref *VarRef) (types.Type, []Error) {
	switch ref.Kind {
	case RefImmediate:
		if t, ok := prog.LookupGlobal(ref.Name); ok {
			return t, nil
		}
		if c, ok := prog.LookupConst(ref.Name); ok {
			return check(prog, c)
		}
		return types.Invalid, []Error{&UnresolvedError{Name: ref.Name}}

	case RefField:
		bt, errs := check(prog, ref.Base)
		if len(errs) > 0 {
			return types.Invalid, errs
		}
		if rec, ok := bt.(*types.Record); ok {
			if ft, ok := rec.Field(ref.Name); ok {
				return ft, nil
			}
		}
		return types.Invalid, []Error{&UnresolvedError{Name: Format(ref)}}

	case RefIndex:
		bt, errs := check(prog, ref.Base)
		for _, ix := range ref.Index {
			it, ixErrs := check(prog, ix)
			errs = append(errs, ixErrs...)
			if len(ixErrs) == 0 && !isOrdinal(it) {
				errs = append(errs, &TypeError{Expected: ordinal, Got: it})
			}
		}
		if len(errs) > 0 {
			return types.Invalid, errs
		}
		arr, ok := bt.(*types.ArrayOf)
		if !ok || len(ref.Index) == 0 || len(ref.Index) > len(arr.Dims) {
			return types.Invalid, []Error{&UnresolvedError{Name: Format(ref)}}
		}
		if rest := arr.Dims[len(ref.Index):]; len(rest) > 0 {
			return types.NewArray(arr.Elem, rest...), nil
		}
		return arr.Elem, nil
	}
	return types.Invalid, []Error{&UnresolvedError{Name: ref.Name}}
}

func isOrdinal(t types.Type) bool {
	for _, o := range ordinal {
		if t.Equal(o) {
			return true
		}
	}
	return false
}
