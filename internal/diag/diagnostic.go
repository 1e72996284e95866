package diag

import (
	"pasc/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Title, Description, NoteLines and Position make Diagnostic a Throwable.

func (d Diagnostic) Title() string       { return d.Code.Title() }
func (d Diagnostic) Description() string { return d.Message }

func (d Diagnostic) NoteLines() []string {
	if len(d.Notes) == 0 {
		return nil
	}
	out := make([]string, len(d.Notes))
	for i, n := range d.Notes {
		out[i] = n.Msg
	}
	return out
}

func (d Diagnostic) Position(m *source.Mapper) source.Position {
	return m.Pos(d.Primary)
}
