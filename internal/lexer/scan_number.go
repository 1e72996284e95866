package lexer

import (
	"pasc/internal/diag"
	"pasc/internal/numlit"
	"pasc/internal/token"
)

// scanNumber reads integer and real literals:
//
//	123  1.5  2e10  1.5E-3    decimal
//	0H1F 0H1.8               hexadecimal, no exponent ('E' is a digit)
//	0B101 0B1.1 0B1e3        binary
//
// A '.' followed by another '.' belongs to a range, not to the number.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	digit, radix := isDec, 10
	if lx.cursor.Peek() == '0' {
		switch p := lx.cursor.PeekAt(1); {
		case (p == 'h' || p == 'H') && isHex(lx.cursor.PeekAt(2)):
			digit, radix = isHex, 16
		case (p == 'b' || p == 'B') && isBin(lx.cursor.PeekAt(2)):
			digit, radix = isBin, 2
		}
		if radix != 10 {
			lx.cursor.Bump()
			lx.cursor.Bump()
		}
	}

	for digit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	kind := token.IntLit
	if lx.cursor.Peek() == '.' && digit(lx.cursor.PeekAt(1)) {
		kind = token.RealLit
		lx.cursor.Bump()
		for digit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if radix != 16 && (lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E') {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			kind = token.RealLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			// "1e" или "1ex": буква относится к следующему токену
			lx.cursor.Reset(mark)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
	var err error
	if kind == token.IntLit {
		tok.Int, err = numlit.Int(tok.Text)
	} else {
		tok.Real, err = numlit.Real(tok.Text)
	}
	if err != nil {
		lx.errLex(diag.LexBadNumber, sp, "invalid number "+tok.Text+": "+err.Error())
		tok.Kind = token.Invalid
	}
	return tok
}
