package lexer

import (
	"testing"

	"pasc/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.pas", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("peek: got %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("bump: got %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Error("expected EOF")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("reading past EOF must yield 0")
	}
}

func TestPeekAtAndEat(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	if cursor.PeekAt(1) != 'b' || cursor.PeekAt(2) != 0 {
		t.Fatalf("PeekAt mismatch")
	}
	if cursor.Eat('b') {
		t.Fatal("Eat must not consume a different byte")
	}
	if !cursor.Eat('a') || cursor.Off != 1 {
		t.Fatal("Eat must consume a matching byte")
	}
}

func TestMarkSpanReset(t *testing.T) {
	cursor := NewCursor(createFile("hello"))
	cursor.Bump()
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Fatalf("span: got %s", sp)
	}
	cursor.Reset(m)
	if cursor.Peek() != 'e' {
		t.Fatalf("reset: got %q", cursor.Peek())
	}
}
