// Package trace records what the checker is doing: a run over many files,
// each file, the lex, parse and sema passes and, at debug level, individual
// declarations.
//
// Enable it from the command line:
//
//	pasc check --trace=- --trace-level=phase prog.pas
//
// Tracers travel through the pipeline inside a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.PhaseParse, "")
//	defer span.End("")
//
// A ring tracer keeps the last events in memory so they can be dumped after a panic.
package trace
