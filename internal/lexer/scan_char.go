package lexer

import (
	"pasc/internal/diag"
	"pasc/internal/token"
)

var escapes = map[byte]rune{
	'\'': '\'',
	'\\': '\\',
	'n':  '\n',
	'f':  '\f',
	'r':  '\r',
	'b':  '\b',
	'v':  '\v',
}

// scanChar reads 'c' or '\x' for one of the escapes above.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '

	var value rune
	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF() || b == '\n':
		return lx.badChar(start, diag.LexUnterminatedChar, "unterminated character literal")
	case b == '\'':
		lx.cursor.Bump()
		return lx.badChar(start, diag.LexUnterminatedChar, "empty character literal")
	case b == '\\':
		lx.cursor.Bump()
		r, ok := escapes[lx.cursor.Peek()]
		if !ok {
			lx.bumpRune()
			lx.skipToQuote()
			return lx.badChar(start, diag.LexBadEscape, "unknown escape sequence")
		}
		lx.cursor.Bump()
		value = r
	default:
		value, _ = lx.peekRune()
		lx.bumpRune()
	}

	if !lx.cursor.Eat('\'') {
		lx.skipToQuote()
		return lx.badChar(start, diag.LexUnterminatedChar, "character literal must hold exactly one character")
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp), Char: value}
}

// skipToQuote consumes the rest of a broken literal up to the closing quote
// on the same line.
func (lx *Lexer) skipToQuote() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\n':
			return
		case '\'':
			lx.cursor.Bump()
			return
		}
		lx.bumpRune()
	}
}

func (lx *Lexer) badChar(start Mark, code diag.Code, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
