package expr

// Node is any expression. The set of implementations is closed.
type Node interface {
	node()
}

type (
	// IntLit is a signed integer literal.
	IntLit int64
	// RealLit is a floating point literal.
	RealLit float64
	// CharLit is a single character literal.
	CharLit rune
	// BoolLit is true or false.
	BoolLit bool
)

// In tests membership of Sample in Set.
type In struct {
	Sample Node
	Set    Node
}

// CompOp enumerates relational operators.
type CompOp uint8

const (
	CompGt CompOp = iota // >
	CompLt               // <
	CompGe               // >=
	CompLe               // <=
	CompNe               // <>
	CompEq               // =
)

// Comparison applies a relational operator.
type Comparison struct {
	Left, Right Node
	Op          CompOp
}

// SumOp enumerates additive operators.
type SumOp uint8

const (
	Add SumOp = iota
	Sub
)

// Sum applies + or -.
type Sum struct {
	Left, Right Node
	Op          SumOp
}

// ProductOp enumerates multiplicative operators.
type ProductOp uint8

const (
	Mul  ProductOp = iota // *
	RDiv                  // / always yields Real
	Div                   // div, integer division
	Mod                   // mod
)

// Product applies *, /, div or mod.
type Product struct {
	Left, Right Node
	Op          ProductOp
}

// Not negates a Boolean operand.
type Not struct {
	Operand Node
}

// LogicOp enumerates boolean connectives.
type LogicOp uint8

const (
	And LogicOp = iota
	Or
)

// Logic combines two Boolean operands. Both sides are always evaluated.
type Logic struct {
	Left, Right Node
	Op          LogicOp
}

// Call is a named invocation.
type Call struct {
	Name string
	Args Seq
}

// RefKind tells how a VarRef designates its target.
type RefKind uint8

const (
	RefImmediate RefKind = iota // name
	RefField                    // base.name
	RefIndex                    // base[i, j]
)

// VarRef designates a variable, constant, record field or array element.
type VarRef struct {
	Kind  RefKind
	Name  string // имя переменной или поля
	Base  Node   // nil для RefImmediate
	Index Seq    // только для RefIndex
}

// Ident builds an immediate reference.
func Ident(name string) *VarRef {
	return &VarRef{Kind: RefImmediate, Name: name}
}

// FieldOf builds base.name.
func FieldOf(base Node, name string) *VarRef {
	return &VarRef{Kind: RefField, Name: name, Base: base}
}

// IndexOf builds base[index...].
func IndexOf(base Node, index Seq) *VarRef {
	return &VarRef{Kind: RefIndex, Base: base, Index: index}
}

// Seq is a homogeneous sequence: a set literal or an argument list.
type Seq []Node

func (IntLit) node()      {}
func (RealLit) node()     {}
func (CharLit) node()     {}
func (BoolLit) node()     {}
func (*In) node()         {}
func (*Comparison) node() {}
func (*Sum) node()        {}
func (*Product) node()    {}
func (*Not) node()        {}
func (*Logic) node()      {}
func (*Call) node()       {}
func (*VarRef) node()     {}
func (Seq) node()         {}
func (*Spanned) node()    {}

func (op CompOp) String() string {
	switch op {
	case CompGt:
		return ">"
	case CompLt:
		return "<"
	case CompGe:
		return ">="
	case CompLe:
		return "<="
	case CompNe:
		return "<>"
	default:
		return "="
	}
}

func (op SumOp) String() string {
	if op == Sub {
		return "-"
	}
	return "+"
}

func (op ProductOp) String() string {
	switch op {
	case RDiv:
		return "/"
	case Div:
		return "div"
	case Mod:
		return "mod"
	default:
		return "*"
	}
}

func (op LogicOp) String() string {
	if op == Or {
		return "or"
	}
	return "and"
}
