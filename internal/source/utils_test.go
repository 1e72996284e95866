package source

import (
	"path/filepath"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"unix", "program p;\nconst n = 1;\n", "program p;\nconst n = 1;\n", false},
		{"windows", "program p;\r\nconst n = 1;\r\n", "program p;\nconst n = 1;\n", true},
		// Одиночный \r остаётся и дальше считается пробелом лексера
		{"lone cr", "const a = 1;\rb = 2;", "const a = 1;\rb = 2;", false},
		{"mixed", "type t = 1..9;\r\r\nvar v: t;", "type t = 1..9;\r\nvar v: t;", true},
		{"trailing cr", "program p;\r", "program p;\r", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if string(got) != tt.want || changed != tt.changed {
				t.Errorf("got %q, %v; want %q, %v", got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	got, had := removeBOM([]byte("\xEF\xBB\xBFprogram p;"))
	if !had || string(got) != "program p;" {
		t.Errorf("got %q, %v", got, had)
	}
	for _, in := range []string{"program p;", "\xEF\xBB", ""} {
		if got, had := removeBOM([]byte(in)); had || string(got) != in {
			t.Errorf("%q: got %q, %v", in, got, had)
		}
	}
}

func TestToLineColPascalProgram(t *testing.T) {
	src := "program p;\nconst\n  n = 0H1F;\n"
	idx := buildLineIndex([]byte(src))
	if len(idx) != 3 {
		t.Fatalf("line index %v", idx)
	}
	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"program keyword", 0, LineCol{1, 1}},
		{"first semicolon", 9, LineCol{1, 10}},
		{"first newline stays on its line", 10, LineCol{1, 11}},
		{"const keyword", 11, LineCol{2, 1}},
		{"hex literal", 23, LineCol{3, 7}},
		{"end of file", uint32(len(src)), LineCol{4, 1}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("%s: offset %d got %+v, want %+v", tt.name, tt.off, got, tt.want)
		}
	}
}

func TestRelativePath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "project")
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"nested unit", filepath.Join(base, "src", "units", "types.pas"), "src/units/types.pas"},
		{"base itself", base, "."},
		{"dotted name inside", filepath.Join(base, "..hidden.pas"), "..hidden.pas"},
		{"sibling project", filepath.Join(base, "..", "other", "main.pas"), normalizePath(filepath.Join(filepath.Dir(base), "other", "main.pas"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativePath(tt.target, base)
			if err != nil {
				t.Fatalf("RelativePath: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	if got := BaseName(filepath.Join("src", "prog.pas")); got != "prog.pas" {
		t.Errorf("got %q", got)
	}
}
