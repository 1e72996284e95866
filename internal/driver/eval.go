package driver

import (
	"fortio.org/safecast"

	"pasc/internal/diag"
	"pasc/internal/expr"
	"pasc/internal/lexer"
	"pasc/internal/parser"
	"pasc/internal/source"
	"pasc/internal/types"
)

// EvalResult is the outcome of evaluating one standalone expression.
type EvalResult struct {
	Mapper *source.Mapper
	Node   expr.Node
	Type   types.Type
	// Value is set when the expression folds to an integer.
	Value  *int64
	Errors []diag.Throwable
}

// HasErrors reports parse or validation failures.
func (r *EvalResult) HasErrors() bool { return len(r.Errors) > 0 }

// Eval parses text as an expression, validates it against ctx (nil means no
// declarations) and folds it when possible.
func Eval(text string, ctx expr.Context) *EvalResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<eval>", []byte(text)))
	res := &EvalResult{Mapper: file.Mapper(), Type: types.Invalid}

	lx := lexer.New(file, lexer.Options{Reporter: lexReporter{res: res}})
	node, perrs := parser.ParseExpr(lx, parser.Options{})
	for _, e := range perrs {
		res.Errors = append(res.Errors, e)
	}
	if len(res.Errors) > 0 || node == nil {
		return res
	}
	res.Node = node

	end, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		end = 0
	}
	whole := source.Span{File: file.ID, Start: 0, End: end}
	if errs := expr.Validate(ctx, node); len(errs) > 0 {
		for _, e := range errs {
			res.Errors = append(res.Errors, expr.Tag(e, whole))
		}
		return res
	}
	res.Type = expr.TypeOf(ctx, node)
	if v, err := expr.AsNumber(ctx, node); err == nil {
		res.Value = &v
	}
	return res
}

// lexReporter turns lexer diagnostics into throwables.
type lexReporter struct{ res *EvalResult }

func (r lexReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if sev < diag.SevError {
		return
	}
	d := diag.New(sev, code, primary, msg)
	d.Notes = notes
	r.res.Errors = append(r.res.Errors, d)
}
