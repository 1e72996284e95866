// Package diag defines the diagnostic model shared by the lexer, parser and
// semantic checker.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form (LEX1xxx,
//     SYN2xxx, SEM3xxx, IO4xxx).
//   - Message – short human oriented text.
//   - Primary – the source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages.
//
// # Throwable
//
// Everything that can be shown to the user implements Throwable: a title,
// a one-line description, notes and a position obtained from a
// source.Mapper. Printable renders a Throwable against the source text as
// "Title: description at <position>" followed by the underlined line.
//
// # Emitting diagnostics
//
// Phases report through a Reporter, either directly or with ReportBuilder
// (ReportError(...).WithNote(...).Emit()). BagReporter collects into a Bag,
// which supports sorting, deduplication and limits.
//
// Package diag performs no IO. Pretty and JSON rendering live in
// internal/diagfmt.
package diag
