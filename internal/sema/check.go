package sema

import (
	"context"
	"fmt"

	"pasc/internal/ast"
	"pasc/internal/diag"
	"pasc/internal/symbols"
	"pasc/internal/trace"
)

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
	// Program receives the declarations. When nil a fresh one named after
	// the program header is created.
	Program *symbols.Program
}

// Result stores what the checker learned about the file.
type Result struct {
	Program *symbols.Program
	// Values holds every constant that folds to an integer.
	Values map[string]int64
	// Errors counts reported semantic errors.
	Errors int
}

// Check validates every declaration of fileID in source order.
func Check(ctx context.Context, builder *ast.Builder, fileID ast.FileID, opts Options) Result {
	res := Result{Program: opts.Program, Values: make(map[string]int64)}
	if builder == nil || fileID == ast.NoFileID {
		return res
	}
	file := builder.Files.Get(fileID)
	if file == nil {
		return res
	}
	if res.Program == nil {
		res.Program = symbols.NewProgram(file.Name.Name)
	}

	c := checker{
		ctx:      ctx,
		tracer:   trace.FromContext(ctx),
		builder:  builder,
		reporter: opts.Reporter,
		prog:     res.Program,
		result:   &res,
	}
	for _, id := range file.Items {
		c.checkItem(id)
	}
	return res
}

type checker struct {
	ctx      context.Context
	tracer   trace.Tracer
	builder  *ast.Builder
	reporter diag.Reporter
	prog     *symbols.Program
	result   *Result
}

func (c *checker) checkItem(id ast.ItemID) {
	item := c.builder.Items.Get(id)
	if item == nil {
		return
	}
	errsBefore := c.result.Errors
	var name string
	switch item.Kind {
	case ast.ItemConst:
		if decl, ok := c.builder.Items.Const(id); ok {
			name = decl.Name.Name
			c.checkConst(decl)
		}
	case ast.ItemType:
		if decl, ok := c.builder.Items.Type(id); ok {
			name = decl.Name.Name
			c.checkTypeDecl(decl)
		}
	case ast.ItemVar:
		if decl, ok := c.builder.Items.Var(id); ok {
			if len(decl.Names) > 0 {
				name = decl.Names[0].Name
			}
			c.checkVar(decl)
		}
	}
	trace.Point(c.tracer, trace.PhaseDecl, item.Kind.String()+":"+name,
		fmt.Sprintf("%d errors", c.result.Errors-errsBefore), trace.ParentID(c.ctx))
}
