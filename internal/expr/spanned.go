package expr

import "pasc/internal/source"

// Spanned owns a node together with the source range it was parsed from.
// Type inference passes through unchanged; every error leaving the wrapper
// is tagged with Span unless an inner wrapper already tagged it.
type Spanned struct {
	Node Node
	Span source.Span
}

// Wrap returns n wrapped with span.
func Wrap(n Node, span source.Span) *Spanned {
	return &Spanned{Node: n, Span: span}
}

// Unwrap strips every Spanned layer around n.
func Unwrap(n Node) Node {
	for {
		s, ok := n.(*Spanned)
		if !ok {
			return n
		}
		n = s.Node
	}
}

// SpanOf returns the outermost range attached to n.
func SpanOf(n Node) (source.Span, bool) {
	if s, ok := n.(*Spanned); ok {
		return s.Span, true
	}
	return source.Span{}, false
}
