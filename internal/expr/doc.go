// Package expr models typed expressions: literals, operators and variable
// references, with type inference, validation and integer constant folding.
//
// Nodes are immutable once built and may be shared between goroutines.
// Every operation is a package function switching over the closed set of
// node types, so adding a node without rules is a compile-visible gap:
//
//	TypeOf(prog, n)   // Invalid whenever Validate(prog, n) is non-empty
//	Validate(prog, n) // operand errors first, then the node's own
//	AsNumber(prog, n) // strict folding to int64
//
// Errors produced deep inside the tree carry no position. A *Spanned
// wrapper pairs a node with its byte range and turns each error passing
// through it into a *SemanticError.
package expr
