package parser

import (
	"pasc/internal/expr"
	"pasc/internal/lexer"
	"pasc/internal/source"
	"pasc/internal/token"
)

// ParseExpr разбирает одно выражение; после него должен идти EOF.
func ParseExpr(lx *lexer.Lexer, opts Options) (expr.Node, []*Error) {
	p := newParser(lx, nil, opts)
	n, ok := p.parseExpr()
	if ok && !p.at(token.EOF) {
		p.fail(ExtraToken, token.EOF.Describe())
		ok = false
	}
	if !ok {
		return nil, p.errors
	}
	return n, p.errors
}

var compOps = map[token.Kind]expr.CompOp{
	token.Gt:    expr.CompGt,
	token.Lt:    expr.CompLt,
	token.GtEq:  expr.CompGe,
	token.LtEq:  expr.CompLe,
	token.NotEq: expr.CompNe,
	token.Eq:    expr.CompEq,
}

// parseExpr: simple [relop simple]. Сравнения не ассоциативны.
func (p *Parser) parseExpr() (expr.Node, bool) {
	start := p.lx.Peek().Span
	left, ok := p.parseSimple()
	if !ok {
		return nil, false
	}
	kind := p.lx.Peek().Kind
	op, isComp := compOps[kind]
	if !isComp && kind != token.KwIn {
		return left, true
	}
	p.advance()
	right, ok := p.parseSimple()
	if !ok {
		return nil, false
	}
	if kind == token.KwIn {
		return p.wrap(&expr.In{Sample: left, Set: right}, start), true
	}
	return p.wrap(&expr.Comparison{Left: left, Right: right, Op: op}, start), true
}

// parseSimple: term {(+ | - | or) term}
func (p *Parser) parseSimple() (expr.Node, bool) {
	start := p.lx.Peek().Span
	left, ok := p.parseTerm()
	if !ok {
		return nil, false
	}
	for {
		kind := p.lx.Peek().Kind
		if kind != token.Plus && kind != token.Minus && kind != token.KwOr {
			return left, true
		}
		p.advance()
		right, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		switch kind {
		case token.Plus:
			left = p.wrap(&expr.Sum{Left: left, Right: right, Op: expr.Add}, start)
		case token.Minus:
			left = p.wrap(&expr.Sum{Left: left, Right: right, Op: expr.Sub}, start)
		default:
			left = p.wrap(&expr.Logic{Left: left, Right: right, Op: expr.Or}, start)
		}
	}
}

var productOps = map[token.Kind]expr.ProductOp{
	token.Star:  expr.Mul,
	token.Slash: expr.RDiv,
	token.KwDiv: expr.Div,
	token.KwMod: expr.Mod,
}

// parseTerm: factor {(* | / | div | mod | and) factor}
func (p *Parser) parseTerm() (expr.Node, bool) {
	start := p.lx.Peek().Span
	left, ok := p.parseFactor()
	if !ok {
		return nil, false
	}
	for {
		kind := p.lx.Peek().Kind
		op, isProduct := productOps[kind]
		if !isProduct && kind != token.KwAnd {
			return left, true
		}
		p.advance()
		right, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		if isProduct {
			left = p.wrap(&expr.Product{Left: left, Right: right, Op: op}, start)
		} else {
			left = p.wrap(&expr.Logic{Left: left, Right: right, Op: expr.And}, start)
		}
	}
}

// parseFactor: (not | ! | - | +) factor | primary
func (p *Parser) parseFactor() (expr.Node, bool) {
	start := p.lx.Peek().Span
	switch p.lx.Peek().Kind {
	case token.KwNot, token.Bang:
		p.advance()
		operand, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		return p.wrap(&expr.Not{Operand: operand}, start), true
	case token.Minus:
		p.advance()
		operand, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		return p.wrap(negate(operand), start), true
	case token.Plus:
		p.advance()
		operand, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		return p.wrap(expr.Unwrap(operand), start), true
	default:
		return p.parsePrimary()
	}
}

// negate folds the sign into numeric literals; anything else becomes 0 - x.
func negate(operand expr.Node) expr.Node {
	switch lit := expr.Unwrap(operand).(type) {
	case expr.IntLit:
		return -lit
	case expr.RealLit:
		return -lit
	default:
		return &expr.Sum{Left: expr.IntLit(0), Right: operand, Op: expr.Sub}
	}
}

func (p *Parser) parsePrimary() (expr.Node, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return expr.Wrap(expr.IntLit(tok.Int), tok.Span), true
	case token.RealLit:
		p.advance()
		return expr.Wrap(expr.RealLit(tok.Real), tok.Span), true
	case token.CharLit:
		p.advance()
		return expr.Wrap(expr.CharLit(tok.Char), tok.Span), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return expr.Wrap(expr.BoolLit(tok.Kind == token.KwTrue), tok.Span), true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok = p.expect(token.RParen); !ok {
			return nil, false
		}
		return inner, true
	case token.LBracket:
		p.advance()
		items, ok := p.parseList(token.RBracket)
		if !ok {
			return nil, false
		}
		return p.wrap(items, tok.Span), true
	case token.Ident:
		return p.parseDesignator()
	default:
		p.fail(UnrecognizedToken, "expression")
		return nil, false
	}
}

// parseDesignator: name(args) | name {.field | [index {, index}]}
func (p *Parser) parseDesignator() (expr.Node, bool) {
	tok := p.advance()
	if p.at(token.LParen) {
		p.advance()
		args, ok := p.parseList(token.RParen)
		if !ok {
			return nil, false
		}
		return p.wrap(&expr.Call{Name: tok.Text, Args: args}, tok.Span), true
	}

	var node expr.Node = expr.Wrap(expr.Ident(tok.Text), tok.Span)
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			field, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			node = p.wrap(expr.FieldOf(node, field.Name), tok.Span)
		case token.LBracket:
			p.advance()
			index, ok := p.parseList(token.RBracket)
			if !ok {
				return nil, false
			}
			node = p.wrap(expr.IndexOf(node, index), tok.Span)
		default:
			return node, true
		}
	}
}

// parseList: [expr {, expr}] closing. Открывающая скобка уже съедена.
func (p *Parser) parseList(closing token.Kind) (expr.Seq, bool) {
	items := expr.Seq{}
	if p.at(closing) {
		p.advance()
		return items, true
	}
	for {
		item, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		items = append(items, item)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(closing); !ok {
		return nil, false
	}
	return items, true
}

// wrap tags n with the range from start to the last consumed token.
func (p *Parser) wrap(n expr.Node, start source.Span) *expr.Spanned {
	return expr.Wrap(n, start.Cover(p.lastSpan))
}
