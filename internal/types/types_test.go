package types

import "testing"

func TestStringer(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Integer, "Integer"},
		{Real, "Real"},
		{Boolean, "Boolean"},
		{Char, "Character"},
		{Invalid, "<???>"},
		{NewSet(Char), "Set of Character"},
		{NewArray(Integer, Bounds{1, 10}, Bounds{0, 3}), "Array of Integer [1..10;0..3]"},
		{NewRecord(Field{"a", Integer}, Field{"b", Real}), "Record a: Integer; b: Real; end"},
		{NewRecord(Field{"a", Integer}, Field{"b", Real}, Field{"c", Char}, Field{"d", Boolean}),
			"Record a: Integer; b: Real; c: Character; ... end"},
		{NewEnum("red", "green"), "(red,green)"},
		{NewEnum("a", "b", "c", "d"), "(a,b,c...)"},
		{NewRange(1, 5), "1..5"},
		{NewSet(NewRange(-2, 2)), "Set of -2..2"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same basic", Integer, Integer, true},
		{"different basic", Integer, Real, false},
		{"invalid equals invalid", Invalid, Invalid, true},
		{"invalid vs integer", Invalid, Integer, false},
		{"sets", NewSet(Char), NewSet(Char), true},
		{"sets of different elems", NewSet(Char), NewSet(Integer), false},
		{"arrays", NewArray(Real, Bounds{1, 3}), NewArray(Real, Bounds{1, 3}), true},
		{"arrays with other bounds", NewArray(Real, Bounds{1, 3}), NewArray(Real, Bounds{0, 3}), false},
		{"arrays with more dims", NewArray(Real, Bounds{1, 3}), NewArray(Real, Bounds{1, 3}, Bounds{1, 3}), false},
		{"records ignore field order",
			NewRecord(Field{"a", Integer}, Field{"b", Char}),
			NewRecord(Field{"b", Char}, Field{"a", Integer}), true},
		{"records with other field type",
			NewRecord(Field{"a", Integer}),
			NewRecord(Field{"a", Real}), false},
		{"enums keep order", NewEnum("a", "b"), NewEnum("b", "a"), false},
		{"ranges", NewRange(1, 5), NewRange(1, 5), true},
		{"range vs integer", NewRange(1, 5), Integer, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal is not symmetric")
			}
		})
	}
}

func TestIsPrimitive(t *testing.T) {
	for _, p := range Primitive {
		if !IsPrimitive(p) {
			t.Errorf("%s should be primitive", p)
		}
	}
	for _, typ := range []Type{Invalid, NewSet(Integer), NewRange(0, 1), NewEnum("x"), nil} {
		if IsPrimitive(typ) {
			t.Errorf("%v should not be primitive", typ)
		}
	}
	if len(Primitive) != 4 || Primitive[0] != Integer || Primitive[3] != Boolean {
		t.Errorf("unexpected Primitive order %v", Primitive)
	}
}

func TestBoundsLen(t *testing.T) {
	if n := (Bounds{1, 10}).Len(); n != 10 {
		t.Errorf("Len = %d", n)
	}
	if n := (Bounds{5, 1}).Len(); n != 0 {
		t.Errorf("Len of empty bounds = %d", n)
	}
}
