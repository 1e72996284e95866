package lexer

import "pasc/internal/diag"

// skipTrivia пропускает пробелы, переводы строк и комментарии { ... } и (* ... *).
// Незакрытый комментарий репортится и обрезается на EOF.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v':
			lx.cursor.Bump()
		case b == '{':
			lx.skipComment(1, "}")
		case b == '(' && lx.cursor.PeekAt(1) == '*':
			lx.skipComment(2, "*)")
		default:
			return
		}
	}
}

func (lx *Lexer) skipComment(openLen int, closing string) {
	start := lx.cursor.Mark()
	for range openLen {
		lx.cursor.Bump()
	}
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == closing[0] && (len(closing) == 1 || lx.cursor.PeekAt(1) == closing[1]) {
			for range len(closing) {
				lx.cursor.Bump()
			}
			return
		}
		lx.cursor.Bump()
	}
	lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated comment")
}
