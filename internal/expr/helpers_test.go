package expr

import (
	"pasc/internal/source"
	"pasc/internal/types"
)

// mapContext is a minimal Context for tests.
type mapContext struct {
	types   map[string]types.Type
	consts  map[string]Node
	globals map[string]types.Type
}

func (m mapContext) LookupType(name string) (types.Type, bool) {
	t, ok := m.types[name]
	return t, ok
}

func (m mapContext) LookupConst(name string) (Node, bool) {
	n, ok := m.consts[name]
	return n, ok
}

func (m mapContext) LookupGlobal(name string) (types.Type, bool) {
	t, ok := m.globals[name]
	return t, ok
}

func literals() []Node {
	return []Node{IntLit(3), RealLit(1.5), CharLit('a'), BoolLit(true)}
}

func spanAt(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}
