package expr

import (
	"fmt"
	"strings"

	"pasc/internal/source"
	"pasc/internal/types"
)

// Error is a semantic error produced by a node. Untagged kinds carry no
// position; *SemanticError adds one.
type Error interface {
	error
	Title() string
	Description() string
	exprError()
}

// expectedLimit is how many expected types a TypeError lists before "...".
const expectedLimit = 3

// TypeError reports an operand whose type is not among Expected.
type TypeError struct {
	Expected []types.Type
	Got      types.Type
}

func (e *TypeError) Title() string { return "Type Error" }

func (e *TypeError) Description() string {
	shown := e.Expected
	more := ""
	if len(shown) > expectedLimit {
		shown, more = shown[:expectedLimit], "..."
	}
	names := make([]string, len(shown))
	for i, t := range shown {
		names[i] = t.String()
	}
	got := types.Invalid
	if e.Got != nil {
		got = e.Got
	}
	return fmt.Sprintf("Expected %s%s, got %s", strings.Join(names, "/"), more, got)
}

func (e *TypeError) Error() string { return e.Description() }
func (*TypeError) exprError()      {}

// InvalidLimitError reports an expression that does not fold to an integer.
type InvalidLimitError struct{}

// ErrInvalidLimit is the single InvalidLimitError value; match it with errors.Is.
var ErrInvalidLimit Error = &InvalidLimitError{}

func (*InvalidLimitError) Title() string       { return "Invalid Limit" }
func (*InvalidLimitError) Description() string { return "This expression cannot be used as a limit" }
func (*InvalidLimitError) Error() string       { return "expression cannot be used as a limit" }
func (*InvalidLimitError) exprError()          {}

// UnresolvedError reports a call or reference whose target is unknown.
type UnresolvedError struct {
	Name string
}

func (e *UnresolvedError) Title() string       { return "Unresolved Reference" }
func (e *UnresolvedError) Description() string { return fmt.Sprintf("Cannot resolve `%s`", e.Name) }
func (e *UnresolvedError) Error() string       { return "unresolved reference " + e.Name }
func (*UnresolvedError) exprError()            {}

// DivisionByZeroError is returned by folding div or mod with a zero divisor.
type DivisionByZeroError struct{}

// ErrDivisionByZero is the single DivisionByZeroError value.
var ErrDivisionByZero Error = &DivisionByZeroError{}

func (*DivisionByZeroError) Title() string       { return "Division By Zero" }
func (*DivisionByZeroError) Description() string { return "Constant division by zero" }
func (*DivisionByZeroError) Error() string       { return "division by zero" }
func (*DivisionByZeroError) exprError()          {}

// SemanticError is an Error tagged with the byte range of the node that produced it.
type SemanticError struct {
	Span source.Span
	Kind Error
}

func (e *SemanticError) Title() string       { return e.Kind.Title() }
func (e *SemanticError) Description() string { return e.Kind.Description() }
func (e *SemanticError) NoteLines() []string { return nil }
func (e *SemanticError) Unwrap() error       { return e.Kind }
func (*SemanticError) exprError()            {}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind.Title(), e.Span, e.Kind.Description())
}

// Position maps the tagged range through m.
func (e *SemanticError) Position(m *source.Mapper) source.Position {
	return m.Pos(e.Span)
}

// Tag binds err to span unless it already carries a range.
func Tag(err Error, span source.Span) *SemanticError {
	if se, ok := err.(*SemanticError); ok {
		return se
	}
	return &SemanticError{Span: span, Kind: err}
}
