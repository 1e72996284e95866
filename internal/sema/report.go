package sema

import (
	"errors"

	"pasc/internal/diag"
	"pasc/internal/expr"
	"pasc/internal/source"
	"pasc/internal/symbols"
)

// codeOf maps an expression error kind to its diagnostic code.
func codeOf(kind expr.Error) diag.Code {
	switch kind.(type) {
	case *expr.TypeError:
		return diag.SemaTypeError
	case *expr.InvalidLimitError:
		return diag.SemaInvalidLimit
	case *expr.UnresolvedError:
		return diag.SemaUnresolved
	case *expr.DivisionByZeroError:
		return diag.SemaDivisionByZero
	default:
		return diag.UnknownCode
	}
}

// reportExprErrors forwards Validate output. Untagged errors land on fallback.
func (c *checker) reportExprErrors(errs []expr.Error, fallback source.Span) {
	for _, err := range errs {
		c.reportExprError(err, fallback)
	}
}

func (c *checker) reportExprError(err error, fallback source.Span) {
	span, kind := fallback, expr.Error(nil)
	var se *expr.SemanticError
	if errors.As(err, &se) {
		span, kind = se.Span, se.Kind
	} else if !errors.As(err, &kind) {
		c.report(diag.UnknownCode, fallback, err.Error()).Emit()
		return
	}
	c.report(codeOf(kind), span, kind.Description()).Emit()
}

func (c *checker) report(code diag.Code, span source.Span, msg string) *diag.ReportBuilder {
	c.result.Errors++
	return diag.ReportError(c.reporter, code, span, msg)
}

// reportDuplicate points at the new name and, for user declarations, at the first one.
func (c *checker) reportDuplicate(name string, span source.Span, prev symbols.Symbol) {
	b := c.report(diag.SemaDuplicateSymbol, span, "`"+name+"` is already declared")
	if prev.IsBuiltin() {
		b.WithNote(span, "`"+name+"` is a builtin "+prev.Kind.String())
	} else {
		b.WithNote(prev.Span, "previous "+prev.Kind.String()+" declaration here")
	}
	b.Emit()
}
