package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"pasc/internal/source"
)

// Throwable is anything that can be rendered as a positioned diagnostic.
type Throwable interface {
	Title() string
	Description() string
	NoteLines() []string
	Position(m *source.Mapper) source.Position
}

// IOError is a failure to load a source file. It has no meaningful location
// and is reported at the start of the text.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string       { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error       { return e.Err }
func (e *IOError) Title() string       { return IOLoadFileError.Title() }
func (e *IOError) Description() string { return e.Error() }
func (e *IOError) NoteLines() []string { return nil }

func (e *IOError) Position(m *source.Mapper) source.Position {
	return m.Pos(source.Span{})
}

// Printable renders a Throwable against the text behind Mapper.
type Printable struct {
	Err    Throwable
	Mapper *source.Mapper
	Color  bool
}

func (p Printable) String() string {
	title := color.New(color.FgRed, color.Bold)
	note := color.New(color.FgBlue, color.Bold)
	if p.Color {
		title.EnableColor()
		note.EnableColor()
	} else {
		title.DisableColor()
		note.DisableColor()
	}

	m := p.Mapper
	if m == nil {
		m = source.NewMapper("")
	}

	var sb strings.Builder
	sb.WriteString(title.Sprint(p.Err.Title() + ":"))
	sb.WriteByte(' ')
	sb.WriteString(p.Err.Description())
	sb.WriteString(" at ")
	sb.WriteString(p.Err.Position(m).Trace(p.Color))
	for _, n := range p.Err.NoteLines() {
		sb.WriteString("\n")
		sb.WriteString(note.Sprint("Note:"))
		sb.WriteByte(' ')
		sb.WriteString(n)
	}
	return sb.String()
}
