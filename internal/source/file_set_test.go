package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("prog.pas", []byte("program a;"), 0)
	id2 := fs.Add("prog.pas", []byte("program b;"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetLatest("prog.pas")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "program a;" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestLineIndex(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []uint32
	}{
		{"empty", "", nil},
		{"no newlines", "hello", nil},
		{"only newline", "\n", []uint32{0}},
		{"two lines", "a\nb\n", []uint32{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			f := fs.Get(fs.AddVirtual("x.pas", []byte(tt.content)))
			if len(f.LineIdx) != len(tt.want) {
				t.Fatalf("LineIdx = %v, want %v", f.LineIdx, tt.want)
			}
			for i := range tt.want {
				if f.LineIdx[i] != tt.want[i] {
					t.Fatalf("LineIdx = %v, want %v", f.LineIdx, tt.want)
				}
			}
			if f.Flags&FileVirtual == 0 {
				t.Error("expected FileVirtual flag")
			}
		})
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.pas", []byte("ab\ncd\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.pas", []byte("first\nsecond\nthird")))
	for i, want := range []string{"", "first", "second", "third", ""} {
		if got := f.GetLine(uint32(i)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		flag FileFlags
	}{
		{"bom", "\xEF\xBB\xBFa\nb\n", FileHadBOM},
		{"crlf", "a\r\nb\r\n", FileNormalizedCRLF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.pas")
			if err := os.WriteFile(path, []byte(tt.raw), 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			fs := NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			f := fs.Get(id)
			if string(f.Content) != "a\nb\n" {
				t.Errorf("content = %q", f.Content)
			}
			if f.Flags&tt.flag == 0 {
				t.Errorf("expected flag %d to be set", tt.flag)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.pas")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
