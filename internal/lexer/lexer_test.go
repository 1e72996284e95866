package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"pasc/internal/diag"
	"pasc/internal/lexer"
	"pasc/internal/source"
	"pasc/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.pas", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(0)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

func messages(bag *diag.Bag) []string {
	items := bag.Items()
	out := make([]string, 0, len(items))
	for _, d := range items {
		out = append(out, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return out
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность токенов без EOF
func expectTokens(t *testing.T, input string, expected ...token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := lx.All()
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), messages(bag))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"foo", token.Ident, "foo"},
		{"_tmp1", token.Ident, "_tmp1"},
		{"FooBar", token.Ident, "foobar"},
		{"переменная", token.Ident, "переменная"},
		{"PROGRAM", token.KwProgram, "program"},
		{"Const", token.KwConst, "const"},
		{"div", token.KwDiv, "div"},
		{"MOD", token.KwMod, "mod"},
		{"True", token.KwTrue, "true"},
		{"record", token.KwRecord, "record"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind || tok.Text != tt.text {
				t.Fatalf("got %v(%q), want %v(%q)", tok.Kind, tok.Text, tt.kind, tt.text)
			}
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %v", messages(bag))
			}
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		i     int64
		r     float64
	}{
		{"42", token.IntLit, 42, 0},
		{"0", token.IntLit, 0, 0},
		{"0H1F", token.IntLit, 31, 0},
		{"0hff", token.IntLit, 255, 0},
		{"0B101", token.IntLit, 5, 0},
		{"1.5", token.RealLit, 0, 1.5},
		{"2e3", token.RealLit, 0, 2000},
		{"1.5E-1", token.RealLit, 0, 0.15},
		{"0H1.8", token.RealLit, 0, 1.5},
		{"0B1.1", token.RealLit, 0, 1.5},
		{"0B1e3", token.RealLit, 0, 8},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind {
				t.Fatalf("kind: got %v, want %v (errors %v)", tok.Kind, tt.kind, messages(bag))
			}
			if tok.Text != tt.input {
				t.Errorf("text: got %q, want %q", tok.Text, tt.input)
			}
			if tok.Int != tt.i {
				t.Errorf("int: got %d, want %d", tok.Int, tt.i)
			}
			if diff := tok.Real - tt.r; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("real: got %v, want %v", tok.Real, tt.r)
			}
			if next := lx.Next(); next.Kind != token.EOF {
				t.Errorf("expected EOF after literal, got %v(%q)", next.Kind, next.Text)
			}
		})
	}
}

func TestNumberBeforeRange(t *testing.T) {
	expectTokens(t, "1..10", token.IntLit, token.DotDot, token.IntLit)
	expectTokens(t, "[0..3]", token.LBracket, token.IntLit, token.DotDot, token.IntLit, token.RBracket)
}

func TestExponentWithoutDigits(t *testing.T) {
	// буква e без цифр относится к идентификатору
	expectTokens(t, "1end", token.IntLit, token.KwEnd)
	expectTokens(t, "2e", token.IntLit, token.Ident)
}

func TestIntegerOverflow(t *testing.T) {
	lx, bag := makeTestLexer("99999999999999999999")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexBadNumber {
		t.Fatalf("expected one LexBadNumber, got %v", messages(bag))
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{`'a'`, 'a'},
		{`'я'`, 'я'},
		{`'\n'`, '\n'},
		{`'\''`, '\''},
		{`'\\'`, '\\'},
		{`'\v'`, '\v'},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.CharLit || tok.Char != tt.want {
				t.Fatalf("got %v %q, want CharLit %q (errors %v)", tok.Kind, tok.Char, tt.want, messages(bag))
			}
		})
	}
}

func TestCharLiteralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unterminated", "'a", diag.LexUnterminatedChar},
		{"newline", "'\nx", diag.LexUnterminatedChar},
		{"empty", "''", diag.LexUnterminatedChar},
		{"too long", "'ab'", diag.LexUnterminatedChar},
		{"bad escape", `'\q'`, diag.LexBadEscape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid, got %v", tok.Kind)
			}
			items := bag.Items()
			if len(items) == 0 || items[0].Code != tt.code {
				t.Fatalf("expected %s, got %v", tt.code.ID(), messages(bag))
			}
		})
	}
}

func TestOperatorsAndPunctuation(t *testing.T) {
	expectTokens(t, "( ) [ ] ; : , . .. = <> > < >= <= ! + - * /",
		token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.Semicolon, token.Colon, token.Comma, token.Dot, token.DotDot,
		token.Eq, token.NotEq, token.Gt, token.Lt, token.GtEq, token.LtEq,
		token.Bang, token.Plus, token.Minus, token.Star, token.Slash)
}

func TestComments(t *testing.T) {
	expectTokens(t, "a { comment } b (* other\n comment *) c",
		token.Ident, token.Ident, token.Ident)
	// ( без *: обычная скобка
	expectTokens(t, "(a)", token.LParen, token.Ident, token.RParen)
}

func TestUnterminatedComment(t *testing.T) {
	lx, bag := makeTestLexer("a { never closed")
	tokens := lx.All()
	if len(tokens) != 2 || tokens[1].Kind != token.EOF {
		t.Fatalf("unexpected tokens %v", tokensToString(tokens))
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected unterminated comment, got %v", messages(bag))
	}
	if items[0].Primary.Start != 2 {
		t.Errorf("comment span should start at the brace, got %s", items[0].Primary)
	}
}

func TestUnknownCharacter(t *testing.T) {
	lx, bag := makeTestLexer("a # b")
	tokens := lx.All()
	if got := tokensToString(tokens); !strings.Contains(got, `invalid("#")`) {
		t.Fatalf("expected invalid token, got %s", got)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected one LexUnknownChar, got %v", messages(bag))
	}
}

func TestSpans(t *testing.T) {
	lx, _ := makeTestLexer("const  x = 0H10;")
	want := []struct {
		kind       token.Kind
		start, end uint32
	}{
		{token.KwConst, 0, 5},
		{token.Ident, 7, 8},
		{token.Eq, 9, 10},
		{token.IntLit, 11, 15},
		{token.Semicolon, 15, 16},
		{token.EOF, 16, 16},
	}
	for i, w := range want {
		tok := lx.Next()
		if tok.Kind != w.kind || tok.Span.Start != w.start || tok.Span.End != w.end {
			t.Errorf("token %d: got %v %s, want %v %d-%d", i, tok.Kind, tok.Span, w.kind, w.start, w.end)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("peek: got %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("next after peek: got %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("second: got %q", n.Text)
	}
	for range 3 {
		if n := lx.Next(); n.Kind != token.EOF {
			t.Fatalf("expected sticky EOF, got %v", n.Kind)
		}
	}
}

func TestNilReporter(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.pas", []byte("# 'x")))
	lx := lexer.New(file, lexer.Options{})
	tokens := lx.All()
	if len(tokens) != 3 {
		t.Fatalf("expected 2 invalid tokens and EOF, got %v", tokensToString(tokens))
	}
}
