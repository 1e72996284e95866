package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pasc/internal/diag"
	"pasc/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSetWithBase("/home/user/project")
	content := []byte("program p;\nconst x = 1 + [2];\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.pas", content)

	bag := diag.NewBag(10)
	d := diag.New(diag.SevError, diag.SemaTypeError,
		source.Span{File: fileID, Start: 21, End: 28},
		"Expected one of Integer, Real, Character, Boolean, got Set of Integer")
	d = d.WithNote(source.Span{File: fileID, Start: 17, End: 18}, "in constant x")
	bag.Add(d)
	return bag, fs
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	bag, fs := sampleBag(t)
	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.pas:2:11"},
		{"Relative path", PathModeRelative, "src/test.pas:2:11"},
		{"Basename only", PathModeBasename, "test.pas:2:11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR") || !strings.Contains(output, "SEM3001") {
				t.Errorf("missing severity or code:\n%s", output)
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"test.pas:2:11: ERROR SEM3001 Type Error: Expected one of Integer, Real, Character, Boolean, got Set of Integer",
		"2 | const x = 1 + [2];",
		"  |           ^~~~~~~",
		"  note: in constant x (test.pas:2:7)",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d:\n got %q\nwant %q", i, lines[i], want[i])
		}
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	// Комментарий с широкими символами сдвигает подчёркивание на две ячейки на символ
	id := fs.AddVirtual("w.pas", []byte("{日本} @"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 9, End: 10}, "Unknown character '@'"))
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 || lines[2] != "  |        ^" {
		t.Errorf("caret line %q", lines[2])
	}
}

func TestShort(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	if err := Short(&buf, bag, fs, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// Заметка стоит левее ошибки, поэтому идёт первой
	if !strings.HasPrefix(out, "note SEM3001 ") || !strings.Contains(out, "\nerror SEM3001 ") {
		t.Errorf("unexpected short output:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	err := JSON(&buf, []*diag.Bag{bag, nil}, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, PathMode: PathModeBasename})
	if err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count: %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "SEM3001" || d.Title != "Type Error" || d.Location.File != "test.pas" {
		t.Errorf("diagnostic: %+v", d)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 11 || d.Location.EndCol != 18 {
		t.Errorf("location: %+v", d.Location)
	}
	if len(d.Notes) != 1 {
		t.Errorf("notes: %+v", d.Notes)
	}
}

func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.pas", []byte("program m;"))
	bag := diag.NewBag(0)
	for range 3 {
		bag.Add(diag.NewError(diag.SynExtraToken, source.Span{File: id}, "Extra token"))
	}
	out := BuildDiagnosticsOutput([]*diag.Bag{bag}, fs, JSONOpts{Max: 2})
	if out.Count != 2 || out.Dropped != 1 {
		t.Errorf("count %d dropped %d", out.Count, out.Dropped)
	}
}

func TestThrowables(t *testing.T) {
	m := source.NewMapper("1 + x")
	err := &diag.IOError{Path: "a.pas", Err: bytes.ErrTooLarge}
	var buf bytes.Buffer
	if e := Throwables(&buf, []diag.Throwable{err}, m, false); e != nil {
		t.Fatal(e)
	}
	if !strings.HasPrefix(buf.String(), "Error: a.pas: ") {
		t.Errorf("got %q", buf.String())
	}
}
