package parser

import (
	"fmt"
	"strings"

	"pasc/internal/diag"
	"pasc/internal/source"
	"pasc/internal/token"
)

// Variant classifies a syntax error.
type Variant uint8

const (
	InvalidToken      Variant = iota // токен, который лексер не смог распознать
	UnrecognizedToken                // токен, которого грамматика здесь не ждёт
	UnexpectedEOF
	ExtraToken // лишний токен после конца разбора
)

func (v Variant) String() string {
	switch v {
	case InvalidToken:
		return "Stray token in program"
	case UnrecognizedToken:
		return "Unrecognized token"
	case UnexpectedEOF:
		return "Unexpected end of file"
	case ExtraToken:
		return "Extra token"
	default:
		return ""
	}
}

// Code maps the variant to its diagnostic code.
func (v Variant) Code() diag.Code {
	switch v {
	case InvalidToken:
		return diag.SynInvalidToken
	case UnrecognizedToken:
		return diag.SynUnrecognizedToken
	case UnexpectedEOF:
		return diag.SynUnexpectedEOF
	case ExtraToken:
		return diag.SynExtraToken
	default:
		return diag.UnknownCode
	}
}

// Error is a syntax error. It implements diag.Throwable.
type Error struct {
	Variant  Variant
	Span     source.Span
	Token    *token.Token // nil на EOF
	Expected []string
}

func (e *Error) Title() string { return "Error" }

// Description names the offending token in place of the word "token".
func (e *Error) Description() string {
	desc := e.Variant.String()
	if e.Token != nil {
		desc = strings.Replace(desc, "token", "'"+e.Token.Text+"'", 1)
	}
	return desc
}

func (e *Error) NoteLines() []string {
	if len(e.Expected) == 0 {
		return nil
	}
	return []string{"Expected one of: " + strings.Join(e.Expected, ", ")}
}

func (e *Error) Position(m *source.Mapper) source.Position {
	return m.Pos(e.Span)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Description(), e.Span)
}

var _ diag.Throwable = (*Error)(nil)
