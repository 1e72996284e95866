package lexer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pasc/internal/token"
)

// newFolder нормализует идентификаторы: язык регистронезависимый.
// Caser хранит состояние, поэтому у каждого лексера свой.
func newFolder() cases.Caser {
	return cases.Lower(language.Und)
}

// scanIdentOrKeyword reads [letter_][letter digit _]* and lowercases it.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	r, _ := lx.peekRune()
	if !isIdentStartRune(r) {
		lx.bumpRune()
		return lx.unknownChar(start)
	}
	lx.bumpRune()
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.fold.String(lx.text(sp))
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
