package lexer

import (
	"pasc/internal/diag"
	"pasc/internal/token"
)

var singles = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	';': token.Semicolon,
	':': token.Colon,
	',': token.Comma,
	'.': token.Dot,
	'=': token.Eq,
	'>': token.Gt,
	'<': token.Lt,
	'!': token.Bang,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
}

// scanOperatorOrPunct is greedy: ".." before ".", "<>" and "<=" before "<".
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind, ok := singles[b]
	if !ok {
		lx.cursor.Reset(start)
		lx.bumpRune()
		return lx.unknownChar(start)
	}
	switch next := lx.cursor.Peek(); {
	case b == '.' && next == '.':
		kind = token.DotDot
	case b == '<' && next == '>':
		kind = token.NotEq
	case b == '<' && next == '=':
		kind = token.LtEq
	case b == '>' && next == '=':
		kind = token.GtEq
	}
	if kind == token.DotDot || kind == token.NotEq || kind == token.LtEq || kind == token.GtEq {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) unknownChar(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character "+text)
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}
