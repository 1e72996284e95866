package parser

import (
	"pasc/internal/ast"
	"pasc/internal/token"
)

// parseConstSection: const (ident = expr ;)+
func (p *Parser) parseConstSection() {
	p.advance()
	if !p.at(token.Ident) {
		p.fail(UnrecognizedToken, token.Ident.Describe())
		p.resyncTop()
		return
	}
	for p.at(token.Ident) && !p.enough() {
		if item, ok := p.parseConstDecl(); ok {
			p.arenas.PushItem(p.file, item)
		} else {
			p.resyncDecl()
		}
	}
}

func (p *Parser) parseConstDecl() (ast.ItemID, bool) {
	start := p.lx.Peek().Span
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Eq); !ok {
		return ast.NoItemID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Semicolon); !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewConst(name, value, start.Cover(p.lastSpan)), true
}

// parseTypeSection: type (ident = typeExpr ;)+
func (p *Parser) parseTypeSection() {
	p.advance()
	if !p.at(token.Ident) {
		p.fail(UnrecognizedToken, token.Ident.Describe())
		p.resyncTop()
		return
	}
	for p.at(token.Ident) && !p.enough() {
		if item, ok := p.parseTypeDecl(); ok {
			p.arenas.PushItem(p.file, item)
		} else {
			p.resyncDecl()
		}
	}
}

func (p *Parser) parseTypeDecl() (ast.ItemID, bool) {
	start := p.lx.Peek().Span
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Eq); !ok {
		return ast.NoItemID, false
	}
	typ, ok := p.parseTypeExpr()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Semicolon); !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewType(name, typ, start.Cover(p.lastSpan)), true
}

// parseVarSection: var (ident {, ident} : typeExpr ;)+
func (p *Parser) parseVarSection() {
	p.advance()
	if !p.at(token.Ident) {
		p.fail(UnrecognizedToken, token.Ident.Describe())
		p.resyncTop()
		return
	}
	for p.at(token.Ident) && !p.enough() {
		if item, ok := p.parseVarDecl(); ok {
			p.arenas.PushItem(p.file, item)
		} else {
			p.resyncDecl()
		}
	}
}

func (p *Parser) parseVarDecl() (ast.ItemID, bool) {
	start := p.lx.Peek().Span
	names, ok := p.parseIdentList()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Colon); !ok {
		return ast.NoItemID, false
	}
	typ, ok := p.parseTypeExpr()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Semicolon); !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewVar(names, typ, start.Cover(p.lastSpan)), true
}

// parseIdentList: ident {, ident}
func (p *Parser) parseIdentList() ([]ast.Ident, bool) {
	var names []ast.Ident
	for {
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		names = append(names, name)
		if !p.at(token.Comma) {
			return names, true
		}
		p.advance()
	}
}
