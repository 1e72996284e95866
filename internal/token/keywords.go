package token

var keywords = map[string]Kind{
	"program": KwProgram,
	"const":   KwConst,
	"type":    KwType,
	"var":     KwVar,
	"array":   KwArray,
	"set":     KwSet,
	"record":  KwRecord,
	"of":      KwOf,
	"in":      KwIn,
	"end":     KwEnd,
	"div":     KwDiv,
	"mod":     KwMod,
	"and":     KwAnd,
	"or":      KwOr,
	"not":     KwNot,
	"true":    KwTrue,
	"false":   KwFalse,
}

// LookupKeyword reports the keyword kind of a lowercased identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
