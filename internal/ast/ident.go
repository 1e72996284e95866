package ast

import "pasc/internal/source"

// Ident is a lowercased name with the span it was written at.
type Ident struct {
	Name string
	Span source.Span
}
