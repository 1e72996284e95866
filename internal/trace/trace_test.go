package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		lvl, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if lvl.String() != strings.ToLower(s) {
			t.Errorf("%s: round trip %s", s, lvl)
		}
	}
	if _, err := ParseLevel("loud"); err == nil || !strings.Contains(err.Error(), "off|error|phase|detail|debug") {
		t.Fatalf("unknown level error: %v", err)
	}
}

func TestParseMode(t *testing.T) {
	for _, want := range []StorageMode{ModeStream, ModeRing, ModeBoth} {
		got, err := ParseMode(strings.ToUpper(want.String()))
		if err != nil || got != want {
			t.Errorf("%s: got %v, %v", want, got, err)
		}
	}
	if _, err := ParseMode("disk"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestLevelAllows(t *testing.T) {
	tests := []struct {
		level Level
		phase Phase
		want  bool
	}{
		{LevelOff, PhaseRun, false},
		{LevelError, PhaseSema, true},
		{LevelError, PhaseFile, false},
		{LevelPhase, PhaseRun, true},
		{LevelPhase, PhaseLex, true},
		{LevelPhase, PhaseParse, true},
		{LevelPhase, PhaseFile, false},
		{LevelDetail, PhaseFile, true},
		{LevelDetail, PhaseDecl, false},
		{LevelDebug, PhaseDecl, true},
		{LevelDebug, Phase(0), false},
		{LevelDebug, Phase(42), false},
	}
	for _, tt := range tests {
		if got := tt.level.Allows(tt.phase); got != tt.want {
			t.Errorf("%s/%s: got %v", tt.level, tt.phase, got)
		}
	}
}

func TestRingWrapsAround(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"const:a", "const:b", "type:c", "var:d", "var:e"} {
		Point(r, PhaseDecl, name, "", 0)
	}
	var names []string
	for _, ev := range r.Snapshot() {
		names = append(names, ev.Name)
	}
	if strings.Join(names, " ") != "type:c var:d var:e" {
		t.Fatalf("snapshot: %v", names)
	}
	if r.Snapshot()[0].Seq >= r.Snapshot()[2].Seq {
		t.Error("snapshot must be oldest first")
	}
}

func TestRingBeforeWrap(t *testing.T) {
	r := NewRingTracer(0, LevelPhase)
	Begin(r, PhaseSema, "", 0).End("")
	if got := len(r.Snapshot()); got != 2 {
		t.Fatalf("snapshot holds %d events", got)
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "→ sema") || !strings.Contains(buf.String(), "← sema") {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestStreamText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	span := Begin(tr, PhaseParse, "", 0)
	span.WithExtra("tokens", "12").WithExtra("errors", "0").End("ok")
	Begin(tr, PhaseFile, "hidden.pas", 0).End("")
	Point(tr, PhaseDecl, "const:n", "", 0)

	out := buf.String()
	if !strings.Contains(out, "    → parse\n") || !strings.Contains(out, "    ← parse (ok) {errors=0, tokens=12}") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "hidden") || strings.Contains(out, "const:n") {
		t.Fatalf("file or decl events leaked at phase level:\n%s", out)
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, PhaseDecl, "type:idx", "0 errors", 7)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if ev["name"] != "type:idx" || ev["phase"] != "decl" || ev["kind"] != "point" || ev["parent_id"] != float64(7) {
		t.Fatalf("event: %v", ev)
	}
	if _, ok := ev["span_id"]; ok {
		t.Errorf("points carry no span id: %v", ev)
	}
}

func TestNewPicksFormatFromExtension(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"run.ndjson", FormatNDJSON},
		{"run.jsonl", FormatNDJSON},
		{"run.log", FormatText},
		{"-", FormatText},
	}
	for _, tt := range tests {
		if got := (Config{OutputPath: tt.path}).format(); got != tt.want {
			t.Errorf("%s: got %v", tt.path, got)
		}
	}
	if got := (Config{OutputPath: "run.log", Format: FormatNDJSON}).format(); got != FormatNDJSON {
		t.Errorf("explicit format overridden: %v", got)
	}
}

func TestNewModes(t *testing.T) {
	var buf bytes.Buffer
	stream, err := New(Config{Level: LevelPhase, Mode: ModeStream, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := stream.(*StreamTracer); !ok {
		t.Errorf("stream mode built %T", stream)
	}
	ring, err := New(Config{Level: LevelPhase, Mode: ModeRing})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Ring(ring); !ok {
		t.Errorf("ring mode built %T", ring)
	}
	if off, _ := New(Config{Level: LevelOff, Mode: ModeBoth}); off != Nop {
		t.Errorf("off level built %T", off)
	}
	if _, err := New(Config{Level: LevelPhase}); err == nil {
		t.Error("expected error without a storage mode")
	}
}

func TestErrorLevelOnlyFillsRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelError, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, PhaseSema, "", 0).End("")
	if buf.Len() != 0 {
		t.Fatalf("stream written at error level: %q", buf.String())
	}
	ring, ok := Ring(tr)
	if !ok || len(ring.Snapshot()) != 2 {
		t.Fatalf("ring: %v %v", ok, ring)
	}
}

func TestStartPropagatesParent(t *testing.T) {
	r := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	ctx, run := Start(ctx, PhaseRun, "")
	fileCtx, file := Start(ctx, PhaseFile, "a.pas")
	_, sema := Start(fileCtx, PhaseSema, "")
	sema.End("")
	file.End("")
	run.End("")

	events := r.Snapshot()
	if len(events) != 6 {
		t.Fatalf("events: %d", len(events))
	}
	if events[1].ParentID != run.ID() || events[2].ParentID != file.ID() {
		t.Fatalf("parents: file %d sema %d, want %d and %d",
			events[1].ParentID, events[2].ParentID, run.ID(), file.ID())
	}
	end := events[4]
	if end.Kind != KindEnd || end.Label() != "file a.pas" || end.SpanID != file.ID() {
		t.Errorf("file end event: %+v", end)
	}
}

func TestHiddenPhaseKeepsOuterParent(t *testing.T) {
	r := NewRingTracer(16, LevelPhase)
	ctx := WithTracer(context.Background(), r)
	ctx, run := Start(ctx, PhaseRun, "")
	ctx, file := Start(ctx, PhaseFile, "a.pas")
	_, parse := Start(ctx, PhaseParse, "")
	parse.End("")
	file.End("")
	run.End("")

	if file.ID() != 0 {
		t.Fatal("file span must be inert at phase level")
	}
	events := r.Snapshot()
	if len(events) != 4 || events[1].ParentID != run.ID() {
		t.Fatalf("events: %+v", events)
	}
}

func TestNopContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop tracer")
	}
	_, span := Start(context.Background(), PhaseParse, "")
	if span.ID() != 0 || span.WithExtra("k", "v").End("") != 0 {
		t.Fatal("disabled span must be inert")
	}
}
