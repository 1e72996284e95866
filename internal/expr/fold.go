package expr

import (
	"math"

	"pasc/internal/types"
)

// AsNumber folds n to an integer constant. Real-typed, invalid and
// non-scalar expressions fail with ErrInvalidLimit, as does integer
// overflow; a constant div or mod by zero fails with ErrDivisionByZero.
// Errors that passed through a *Spanned come back as *SemanticError.
func AsNumber(prog Context, n Node) (int64, error) {
	v, _, err := fold(orEmpty(prog), n)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// fold returns the value together with its static type. Operands that fold
// are always Integer, Char or Boolean, so each operator only has to apply
// its own typing rule to the operand types instead of checking the subtree.
func fold(prog Context, n Node) (int64, types.Type, Error) {
	switch n := n.(type) {
	case IntLit:
		return int64(n), types.Integer, nil
	case CharLit:
		return int64(n), types.Char, nil
	case BoolLit:
		return boolInt(bool(n)), types.Boolean, nil
	case RealLit:
		return 0, nil, ErrInvalidLimit
	case *Spanned:
		v, t, err := fold(prog, n.Node)
		if err != nil {
			return 0, nil, Tag(err, n.Span)
		}
		return v, t, nil
	case *Comparison:
		l, _, r, _, err := foldOperands(prog, n.Left, n.Right)
		if err != nil {
			return 0, nil, err
		}
		return boolInt(compare(n.Op, l, r)), types.Boolean, nil
	case *Sum:
		l, lt, r, rt, err := foldOperands(prog, n.Left, n.Right)
		if err != nil {
			return 0, nil, err
		}
		t, err := integral(promote(lt, rt))
		if err != nil {
			return 0, nil, err
		}
		v, ok := addInt(l, r)
		if n.Op == Sub {
			v, ok = subInt(l, r)
		}
		if !ok {
			return 0, nil, ErrInvalidLimit
		}
		return v, t, nil
	case *Product:
		if n.Op == RDiv {
			return 0, nil, ErrInvalidLimit
		}
		l, lt, r, rt, err := foldOperands(prog, n.Left, n.Right)
		if err != nil {
			return 0, nil, err
		}
		t, err := integral(promote(lt, rt))
		if err != nil {
			return 0, nil, err
		}
		v, err := multiply(n.Op, l, r)
		if err != nil {
			return 0, nil, err
		}
		return v, t, nil
	case *Not:
		v, t, err := fold(prog, n.Operand)
		if err != nil {
			return 0, nil, err
		}
		if !t.Equal(types.Boolean) {
			return 0, nil, ErrInvalidLimit
		}
		return boolInt(v == 0), types.Boolean, nil
	case *Logic:
		// обе стороны вычисляются всегда, без короткого замыкания
		l, lt, r, rt, err := foldOperands(prog, n.Left, n.Right)
		if err != nil {
			return 0, nil, err
		}
		if !lt.Equal(types.Boolean) || !rt.Equal(types.Boolean) {
			return 0, nil, ErrInvalidLimit
		}
		if n.Op == Or {
			return boolInt(l > 0 || r > 0), types.Boolean, nil
		}
		return boolInt(l > 0 && r > 0), types.Boolean, nil
	case *VarRef:
		if n.Kind == RefImmediate {
			if _, isVar := prog.LookupGlobal(n.Name); !isVar {
				if c, ok := prog.LookupConst(n.Name); ok {
					return fold(prog, c)
				}
			}
		}
		return 0, nil, ErrInvalidLimit
	default:
		// In, Seq, Call
		return 0, nil, ErrInvalidLimit
	}
}

// foldOperands folds left then right.
func foldOperands(prog Context, left, right Node) (l int64, lt types.Type, r int64, rt types.Type, err Error) {
	if l, lt, err = fold(prog, left); err != nil {
		return 0, nil, 0, nil, err
	}
	if r, rt, err = fold(prog, right); err != nil {
		return 0, nil, 0, nil, err
	}
	return l, lt, r, rt, nil
}

// integral rejects the Real that promote yields for mixed operands.
func integral(t types.Type) (types.Type, Error) {
	if t.Equal(types.Real) {
		return nil, ErrInvalidLimit
	}
	return t, nil
}

func multiply(op ProductOp, l, r int64) (int64, Error) {
	switch op {
	case Div, Mod:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		if op == Mod {
			// MinInt64 mod -1 is 0 and does not trap
			return l % r, nil
		}
		if l == math.MinInt64 && r == -1 {
			return 0, ErrInvalidLimit
		}
		return l / r, nil
	default:
		v, ok := mulInt(l, r)
		if !ok {
			return 0, ErrInvalidLimit
		}
		return v, nil
	}
}

func addInt(l, r int64) (int64, bool) {
	s := l + r
	return s, (s > l) == (r > 0)
}

func subInt(l, r int64) (int64, bool) {
	d := l - r
	return d, (d < l) == (r > 0)
}

func mulInt(l, r int64) (int64, bool) {
	if l == 0 || r == 0 {
		return 0, true
	}
	p := l * r
	if (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) || p/r != l {
		return 0, false
	}
	return p, true
}

func compare(op CompOp, l, r int64) bool {
	switch op {
	case CompGt:
		return l > r
	case CompLt:
		return l < r
	case CompGe:
		return l >= r
	case CompLe:
		return l <= r
	case CompNe:
		return l != r
	default:
		return l == r
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
