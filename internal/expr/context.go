package expr

import "pasc/internal/types"

// Context resolves names while expressions are checked. Implementations must
// be safe for concurrent readers; expr never mutates it.
type Context interface {
	LookupType(name string) (types.Type, bool)
	LookupConst(name string) (Node, bool)
	LookupGlobal(name string) (types.Type, bool)
}

// NoContext resolves nothing. A nil Context behaves the same way.
var NoContext Context = emptyContext{}

type emptyContext struct{}

func (emptyContext) LookupType(string) (types.Type, bool)   { return nil, false }
func (emptyContext) LookupConst(string) (Node, bool)        { return nil, false }
func (emptyContext) LookupGlobal(string) (types.Type, bool) { return nil, false }

func orEmpty(prog Context) Context {
	if prog == nil {
		return NoContext
	}
	return prog
}
