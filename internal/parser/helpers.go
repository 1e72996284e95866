package parser

import (
	"pasc/internal/diag"
	"pasc/internal/source"
	"pasc/internal/token"
)

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect: ожидаем конкретный токен. Если нет: фиксируем ошибку и не двигаемся.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.fail(UnrecognizedToken, kindNames(k)...)
	return token.Token{Kind: token.Invalid, Span: p.diagnosticSpan()}, false
}

// diagnosticSpan: на EOF указываем сразу за последним токеном.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF {
		return p.lastSpan.ZeroEnd()
	}
	return peek.Span
}

// fail records an error at the current token. On EOF the variant becomes
// UnexpectedEOF and on a lexer-rejected token InvalidToken, whatever the caller asked.
func (p *Parser) fail(variant Variant, expected ...string) *Error {
	peek := p.lx.Peek()
	switch peek.Kind {
	case token.EOF:
		variant = UnexpectedEOF
	case token.Invalid:
		variant = InvalidToken
	}
	e := &Error{Variant: variant, Span: p.diagnosticSpan(), Expected: expected}
	if peek.Kind != token.EOF {
		tok := peek
		e.Token = &tok
	}
	p.record(e)
	return e
}

func (p *Parser) record(e *Error) {
	if p.enough() {
		return
	}
	p.errors = append(p.errors, e)
	if p.opts.Reporter == nil {
		return
	}
	b := diag.ReportError(p.opts.Reporter, e.Variant.Code(), e.Span, e.Description())
	for _, note := range e.NoteLines() {
		b.WithNote(e.Span, note)
	}
	b.Emit()
}

// enough: достигли ли мы максимального количества ошибок
func (p *Parser) enough() bool {
	return p.opts.MaxErrors != 0 && uint(len(p.errors)) >= p.opts.MaxErrors
}

func kindNames(kinds ...token.Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.Describe()
	}
	return out
}
