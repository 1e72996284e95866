package parser

import (
	"pasc/internal/ast"
	"pasc/internal/expr"
	"pasc/internal/token"
)

// parseTypeExpr разбирает выражение типа:
//
//	name | set of T | array [d {, d}] of T | record fields end | (a, b, c) | lo..hi
func (p *Parser) parseTypeExpr() (ast.TypeID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwSet:
		return p.parseSetType()
	case token.KwArray:
		return p.parseArrayType()
	case token.KwRecord:
		return p.parseRecordType()
	case token.LParen:
		return p.parseEnumType()
	default:
		return p.parseRangeOrName()
	}
}

func (p *Parser) parseSetType() (ast.TypeID, bool) {
	start := p.advance().Span
	if _, ok := p.expect(token.KwOf); !ok {
		return ast.NoTypeID, false
	}
	elem, ok := p.parseTypeExpr()
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewSet(start.Cover(p.lastSpan), elem), true
}

func (p *Parser) parseArrayType() (ast.TypeID, bool) {
	start := p.advance().Span
	if _, ok := p.expect(token.LBracket); !ok {
		return ast.NoTypeID, false
	}
	var dims []ast.TypeID
	for {
		dim, ok := p.parseRangeOrName()
		if !ok {
			return ast.NoTypeID, false
		}
		dims = append(dims, dim)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RBracket); !ok {
		return ast.NoTypeID, false
	}
	if _, ok := p.expect(token.KwOf); !ok {
		return ast.NoTypeID, false
	}
	elem, ok := p.parseTypeExpr()
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewArray(start.Cover(p.lastSpan), dims, elem), true
}

// parseRecordType: record [a, b: T {; c: U}] [;] end
func (p *Parser) parseRecordType() (ast.TypeID, bool) {
	start := p.advance().Span
	var fields []ast.TypeField
	for p.at(token.Ident) {
		fieldStart := p.lx.Peek().Span
		names, ok := p.parseIdentList()
		if !ok {
			return ast.NoTypeID, false
		}
		if _, ok = p.expect(token.Colon); !ok {
			return ast.NoTypeID, false
		}
		typ, ok := p.parseTypeExpr()
		if !ok {
			return ast.NoTypeID, false
		}
		fields = append(fields, ast.TypeField{Names: names, Type: typ, Span: fieldStart.Cover(p.lastSpan)})
		if !p.at(token.Semicolon) {
			break
		}
		p.advance()
	}
	if !p.at(token.KwEnd) {
		p.fail(UnrecognizedToken, kindNames(token.Ident, token.KwEnd)...)
		return ast.NoTypeID, false
	}
	p.advance()
	return p.arenas.Types.NewRecord(start.Cover(p.lastSpan), fields), true
}

func (p *Parser) parseEnumType() (ast.TypeID, bool) {
	start := p.advance().Span
	variants, ok := p.parseIdentList()
	if !ok {
		return ast.NoTypeID, false
	}
	if _, ok = p.expect(token.RParen); !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewEnum(start.Cover(p.lastSpan), variants), true
}

// parseRangeOrName: lo..hi, where both bounds are expressions, or a bare type name.
func (p *Parser) parseRangeOrName() (ast.TypeID, bool) {
	start := p.lx.Peek().Span
	lo, ok := p.parseExpr()
	if !ok {
		return ast.NoTypeID, false
	}
	if p.at(token.DotDot) {
		p.advance()
		hi, ok := p.parseExpr()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewRange(start.Cover(p.lastSpan), lo, hi), true
	}
	if ref, ok := expr.Unwrap(lo).(*expr.VarRef); ok && ref.Kind == expr.RefImmediate {
		span, _ := expr.SpanOf(lo)
		return p.arenas.Types.NewName(ast.Ident{Name: ref.Name, Span: span}), true
	}
	p.fail(UnrecognizedToken, token.DotDot.Describe())
	return ast.NoTypeID, false
}
