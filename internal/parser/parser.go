package parser

import (
	"slices"

	"pasc/internal/ast"
	"pasc/internal/diag"
	"pasc/internal/lexer"
	"pasc/internal/source"
	"pasc/internal/token"
)

type Options struct {
	MaxErrors uint // 0: без ограничений
	Reporter  diag.Reporter
}

type Result struct {
	File   ast.FileID
	Errors []*Error
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	opts     Options
	errors   []*Error
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

func newParser(lx *lexer.Lexer, arenas *ast.Builder, opts Options) *Parser {
	first := lx.Peek().Span
	return &Parser{
		lx:       lx,
		arenas:   arenas,
		opts:     opts,
		lastSpan: first.ZeroAt(),
	}
}

// ParseFile разбирает `program name;` и следующие за ним секции до EOF.
func ParseFile(lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := newParser(lx, arenas, opts)
	p.parseProgram()
	return Result{File: p.file, Errors: p.errors}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseProgram: верхний уровень: заголовок, затем секции const/type/var.
func (p *Parser) parseProgram() {
	start := p.lx.Peek().Span
	name := ast.Ident{Span: start.ZeroAt()}
	headerOK := false
	if _, ok := p.expect(token.KwProgram); ok {
		if id, ok := p.parseIdent(); ok {
			name = id
			_, headerOK = p.expect(token.Semicolon)
		}
	}
	p.file = p.arenas.NewFile(start, name)
	if !headerOK {
		p.resyncTop()
	}

	for !p.at(token.EOF) && !p.enough() {
		switch p.lx.Peek().Kind {
		case token.KwConst:
			p.parseConstSection()
		case token.KwType:
			p.parseTypeSection()
		case token.KwVar:
			p.parseVarSection()
		default:
			p.fail(ExtraToken, kindNames(sectionStarters...)...)
			p.advance()
			p.resyncTop()
		}
	}
	if f := p.arenas.Files.Get(p.file); f != nil {
		f.Span = start.Cover(p.lastSpan)
	}
}

var sectionStarters = []token.Kind{token.KwConst, token.KwType, token.KwVar}

// resyncTop прокручивает до начала следующей секции или EOF.
func (p *Parser) resyncTop() {
	p.resyncUntil(sectionStarters...)
}

// resyncDecl прокручивает до конца текущего объявления. Съедает ';'.
func (p *Parser) resyncDecl() {
	p.resyncUntil(append([]token.Kind{token.Semicolon}, sectionStarters...)...)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}

func (p *Parser) parseIdent() (ast.Ident, bool) {
	tok, ok := p.expect(token.Ident)
	if !ok {
		return ast.Ident{}, false
	}
	return ast.Ident{Name: tok.Text, Span: tok.Span}, true
}
