package source

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Range is a half-open column range inside a single line.
type Range struct {
	Start int
	End   int
}

// Width returns the number of bytes covered by the range.
func (r Range) Width() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Position is a span projected onto the line that encloses it.
type Position struct {
	LineNo int    // 0-based
	Offset Range  // колонки внутри Line
	Line   string // текст строки без '\n'
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, %s", p.LineNo, p.Offset)
}

// Trace renders the position header, the enclosing line and an underline
// of dashes with carets under the reported columns.
func (p Position) Trace(useColor bool) string {
	blue := color.New(color.FgBlue)
	green := color.New(color.FgGreen)
	caret := color.New(color.FgRed, color.Bold)
	for _, c := range []*color.Color{blue, green, caret} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	start := min(max(p.Offset.Start, 0), len(p.Line))
	end := min(max(p.Offset.End, start), len(p.Line))
	before := runewidth.StringWidth(p.Line[:start])
	marked := runewidth.StringWidth(p.Line[start:end])
	after := runewidth.StringWidth(p.Line[end:]) + 1

	var sb strings.Builder
	sb.WriteString(blue.Sprint(p.String()))
	sb.WriteString("\n\n    ")
	sb.WriteString(p.Line)
	sb.WriteString("\n    ")
	sb.WriteString(green.Sprint(strings.Repeat("-", before)))
	sb.WriteString(caret.Sprint(strings.Repeat("^", marked)))
	sb.WriteString(green.Sprint(strings.Repeat("-", after)))
	sb.WriteString("\n")
	return sb.String()
}

// Mapper projects byte spans of one source text onto lines.
// The zero value maps against an empty text.
type Mapper struct {
	text  string
	lines []string
}

// NewMapper builds a mapper over the full source text.
func NewMapper(text string) *Mapper {
	return &Mapper{text: text, lines: strings.Split(text, "\n")}
}

// Text returns the source the mapper was built from.
func (m *Mapper) Text() string {
	return m.text
}

// Pos reports the error at the last non-blank character before span.End.
// The column range is right-aligned to the end of that prefix, so Offset.Start
// is an approximation when the span crosses trimmed whitespace.
func (m *Mapper) Pos(span Span) Position {
	end := min(int(span.End), len(m.text))
	start := min(int(span.Start), end)
	origStart := start

	prefix := m.text[:end]
	trimmed := strings.TrimRight(prefix, " \t\n\r\f\v")
	cut := len(prefix) - len(trimmed)
	end -= cut
	start = max(start-cut, 0)

	lineNo := strings.Count(trimmed, "\n")
	// A span starting on a newline moves LineNo to the line it ends, not just Line, so both always agree.
	if origStart < len(m.text) && m.text[origStart] == '\n' && lineNo > 0 {
		lineNo--
	}

	lastLen := len(trimmed) - (strings.LastIndexByte(trimmed, '\n') + 1)
	width := end - start
	offset := Range{Start: max(lastLen-width, 0), End: lastLen}

	line := ""
	if lineNo < len(m.lines) {
		line = m.lines[lineNo]
	}
	offset.End = min(offset.End, len(line))
	offset.Start = min(offset.Start, offset.End)

	return Position{LineNo: lineNo, Offset: offset, Line: line}
}
