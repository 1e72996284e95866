package expr

import (
	"errors"
	"math"
	"testing"

	"pasc/internal/source"
)

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want int64
	}{
		{"int", IntLit(42), 42},
		{"char", CharLit('A'), 65},
		{"true", BoolLit(true), 1},
		{"false", BoolLit(false), 0},
		{"add", &Sum{Left: IntLit(3), Right: IntLit(4), Op: Add}, 7},
		{"sub", &Sum{Left: IntLit(3), Right: IntLit(4), Op: Sub}, -1},
		{"mul", &Product{Left: IntLit(6), Right: IntLit(7), Op: Mul}, 42},
		{"div truncates", &Product{Left: IntLit(-7), Right: IntLit(2), Op: Div}, -3},
		{"mod", &Product{Left: IntLit(7), Right: IntLit(3), Op: Mod}, 1},
		{"char arithmetic", &Sum{Left: CharLit('a'), Right: CharLit('b'), Op: Add}, 97 + 98},
		{"comparison true", &Comparison{Left: IntLit(1), Right: IntLit(2), Op: CompLt}, 1},
		{"comparison false", &Comparison{Left: IntLit(1), Right: IntLit(2), Op: CompGe}, 0},
		{"comparison mixed", &Comparison{Left: CharLit('a'), Right: IntLit(97), Op: CompEq}, 1},
		{"not", &Not{Operand: BoolLit(false)}, 1},
		{"and", &Logic{Left: BoolLit(true), Right: BoolLit(false), Op: And}, 0},
		{"or", &Logic{Left: BoolLit(false), Right: BoolLit(true), Op: Or}, 1},
		{"nested", &Product{Left: &Sum{Left: IntLit(1), Right: IntLit(2), Op: Add}, Right: IntLit(10), Op: Mul}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsNumber(nil, tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AsNumber = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAsNumberInvalidLimit(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"real literal", RealLit(1)},
		{"real operand", &Sum{Left: IntLit(3), Right: RealLit(4), Op: Add}},
		{"promoted to real", &Sum{Left: IntLit(3), Right: CharLit('x'), Op: Add}},
		{"real division", &Product{Left: IntLit(4), Right: IntLit(2), Op: RDiv}},
		{"invalid operand", &Not{Operand: IntLit(1)}},
		{"set", Seq{IntLit(1)}},
		{"membership", &In{Sample: IntLit(1), Set: Seq{IntLit(1)}}},
		{"call", &Call{Name: "f"}},
		{"variable", Ident("x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AsNumber(nil, tt.node)
			if !errors.Is(err, ErrInvalidLimit) {
				t.Errorf("expected ErrInvalidLimit, got %v", err)
			}
		})
	}
}

func TestRealDivisionNeverFolds(t *testing.T) {
	for _, a := range literals() {
		for _, b := range literals() {
			if _, err := AsNumber(nil, &Product{Left: a, Right: b, Op: RDiv}); !errors.Is(err, ErrInvalidLimit) {
				t.Errorf("%v / %v folded: %v", a, b, err)
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, op := range []ProductOp{Div, Mod} {
		_, err := AsNumber(nil, &Product{Left: IntLit(1), Right: &Sum{Left: IntLit(2), Right: IntLit(2), Op: Sub}, Op: op})
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%s by zero: got %v", op, err)
		}
	}
}

func TestFoldConstants(t *testing.T) {
	ctx := mapContext{
		consts: map[string]Node{"n": &Sum{Left: IntLit(4), Right: IntLit(6), Op: Add}, "r": RealLit(2)},
	}
	got, err := AsNumber(ctx, &Product{Left: Ident("n"), Right: IntLit(2), Op: Mul})
	if err != nil || got != 20 {
		t.Fatalf("n * 2 = %d, %v", got, err)
	}
	if _, err := AsNumber(ctx, Ident("r")); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("real constant folded: %v", err)
	}
}

func TestFoldTagsInnermostSpan(t *testing.T) {
	// "3 + 4.0"
	four := Wrap(RealLit(4), source.Span{Start: 4, End: 7})
	sum := Wrap(&Sum{Left: Wrap(IntLit(3), source.Span{Start: 0, End: 1}), Right: four, Op: Add}, source.Span{Start: 0, End: 7})

	_, err := AsNumber(nil, sum)
	var se *SemanticError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SemanticError, got %T", err)
	}
	if se.Span.Start != 4 || se.Span.End != 7 {
		t.Errorf("span = %v, want 4..7", se.Span)
	}
	if !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected InvalidLimit kind, got %v", se.Kind)
	}
	if se.Title() != "Invalid Limit" || se.Description() != "This expression cannot be used as a limit" {
		t.Errorf("unexpected rendering %q / %q", se.Title(), se.Description())
	}
}

func TestAsNumberOverflow(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"add", &Sum{Left: IntLit(math.MaxInt64), Right: IntLit(1), Op: Add}},
		{"add negative", &Sum{Left: IntLit(math.MinInt64), Right: IntLit(-1), Op: Add}},
		{"sub", &Sum{Left: IntLit(math.MinInt64), Right: IntLit(1), Op: Sub}},
		{"sub negative", &Sum{Left: IntLit(0), Right: IntLit(math.MinInt64), Op: Sub}},
		{"mul", &Product{Left: IntLit(math.MaxInt64 / 2), Right: IntLit(3), Op: Mul}},
		{"mul min by -1", &Product{Left: IntLit(-1), Right: IntLit(math.MinInt64), Op: Mul}},
		{"div min by -1", &Product{Left: IntLit(math.MinInt64), Right: IntLit(-1), Op: Div}},
		{"nested", &Sum{Left: &Product{Left: IntLit(1 << 62), Right: IntLit(2), Op: Mul}, Right: IntLit(0), Op: Add}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v, err := AsNumber(nil, tt.node); !errors.Is(err, ErrInvalidLimit) {
				t.Errorf("expected ErrInvalidLimit, got %d, %v", v, err)
			}
		})
	}
}

func TestAsNumberNearLimits(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want int64
	}{
		{"max", &Sum{Left: IntLit(math.MaxInt64 - 1), Right: IntLit(1), Op: Add}, math.MaxInt64},
		{"min", &Sum{Left: IntLit(math.MinInt64 + 1), Right: IntLit(1), Op: Sub}, math.MinInt64},
		{"min mod -1", &Product{Left: IntLit(math.MinInt64), Right: IntLit(-1), Op: Mod}, 0},
		{"negative product", &Product{Left: IntLit(-(1 << 62)), Right: IntLit(2), Op: Mul}, math.MinInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsNumber(nil, tt.node)
			if err != nil || got != tt.want {
				t.Errorf("AsNumber = %d, %v; want %d", got, err, tt.want)
			}
		})
	}
}

// countingContext counts constant lookups.
type countingContext struct {
	mapContext
	lookups int
}

func (c *countingContext) LookupConst(name string) (Node, bool) {
	c.lookups++
	return c.mapContext.LookupConst(name)
}

func TestFoldVisitsEachNodeOnce(t *testing.T) {
	ctx := &countingContext{mapContext: mapContext{consts: map[string]Node{"n": IntLit(1)}}}
	// n + 1 + 1 + ... nested to the left
	var node Node = Ident("n")
	const depth = 500
	for range depth {
		node = &Sum{Left: node, Right: IntLit(1), Op: Add}
	}
	got, err := AsNumber(ctx, node)
	if err != nil || got != depth+1 {
		t.Fatalf("AsNumber = %d, %v", got, err)
	}
	if ctx.lookups != 1 {
		t.Errorf("constant looked up %d times, want 1", ctx.lookups)
	}
}

func TestFoldConstantTypes(t *testing.T) {
	ctx := mapContext{consts: map[string]Node{"c": CharLit('a'), "yes": BoolLit(true)}}
	tests := []struct {
		name string
		node Node
		want int64
		ok   bool
	}{
		{"char constant plus char", &Sum{Left: Ident("c"), Right: CharLit('b'), Op: Add}, 97 + 98, true},
		{"char constant plus int", &Sum{Left: Ident("c"), Right: IntLit(1), Op: Add}, 0, false},
		{"not boolean constant", &Not{Operand: Ident("yes")}, 0, true},
		{"and with integer", &Logic{Left: Ident("yes"), Right: IntLit(1), Op: And}, 0, false},
		{"compare char constant", &Comparison{Left: Ident("c"), Right: CharLit('a'), Op: CompEq}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsNumber(ctx, tt.node)
			if !tt.ok {
				if !errors.Is(err, ErrInvalidLimit) {
					t.Errorf("expected ErrInvalidLimit, got %d, %v", got, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("AsNumber = %d, %v; want %d", got, err, tt.want)
			}
		})
	}
}
