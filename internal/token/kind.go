package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident   // identifier
	IntLit  // 42, 0H2A, 0B101
	RealLit // 3.14, 1e3, 0H1.8, 0B1.1e2
	CharLit // 'c'

	KwProgram // program
	KwConst   // const
	KwType    // type
	KwVar     // var
	KwArray   // array
	KwSet     // set
	KwRecord  // record
	KwOf      // of
	KwIn      // in
	KwEnd     // end
	KwDiv     // div
	KwMod     // mod
	KwAnd     // and
	KwOr      // or
	KwNot     // not
	KwTrue    // true
	KwFalse   // false

	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Semicolon // ;
	Colon     // :
	Comma     // ,
	DotDot    // ..
	Dot       // .
	Eq        // =
	NotEq     // <>
	Gt        // >
	Lt        // <
	GtEq      // >=
	LtEq      // <=
	Bang      // !
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
)

var kindText = [...]string{
	Invalid:   "invalid",
	EOF:       "end of file",
	Ident:     "identifier",
	IntLit:    "integer",
	RealLit:   "real",
	CharLit:   "character",
	KwProgram: "program",
	KwConst:   "const",
	KwType:    "type",
	KwVar:     "var",
	KwArray:   "array",
	KwSet:     "set",
	KwRecord:  "record",
	KwOf:      "of",
	KwIn:      "in",
	KwEnd:     "end",
	KwDiv:     "div",
	KwMod:     "mod",
	KwAnd:     "and",
	KwOr:      "or",
	KwNot:     "not",
	KwTrue:    "true",
	KwFalse:   "false",
	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	Semicolon: ";",
	Colon:     ":",
	Comma:     ",",
	DotDot:    "..",
	Dot:       ".",
	Eq:        "=",
	NotEq:     "<>",
	Gt:        ">",
	Lt:        "<",
	GtEq:      ">=",
	LtEq:      "<=",
	Bang:      "!",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
}

// String returns the source spelling for keywords and punctuation and a
// class name for everything else.
func (k Kind) String() string {
	if int(k) < len(kindText) && kindText[k] != "" {
		return kindText[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwProgram && k <= KwFalse
}

// IsPunct reports whether k is an operator or punctuation.
func (k Kind) IsPunct() bool {
	return k >= LParen && k <= Slash
}

// Describe renders the kind for "expected" lists: quoted spelling for
// keywords and punctuation, the class name otherwise.
func (k Kind) Describe() string {
	if k.IsKeyword() || k.IsPunct() {
		return "'" + k.String() + "'"
	}
	return k.String()
}
