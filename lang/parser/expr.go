package parser

import (
	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/token"
)

// expression parses the full precedence-climbing expression grammar, from
// assignment (lowest precedence) down to primary (highest).
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment handles `target = value`, reinterpreting the already-parsed
// left-hand expression as an assignment target rather than backtracking.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssign(p.gen, target.Name, value)
		case *ast.GetExpr:
			return ast.NewSet(p.gen, target.Object, target.Name, value)
		default:
			p.errorAt(equals, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(p.gen, expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(p.gen, expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(p.gen, expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(p.gen, expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(p.gen, expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR, token.PERCENT) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(p.gen, expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		operand := p.unary()
		return ast.NewUnary(p.gen, op, operand)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "expected property name after '.'")
			expr = ast.NewGet(p.gen, expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs-1 {
				p.errorAt(p.peek(), "cannot have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "expected ')' after arguments")
	return ast.NewCall(p.gen, callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(p.gen, p.previous().Line, false)
	case p.match(token.TRUE):
		return ast.NewLiteral(p.gen, p.previous().Line, true)
	case p.match(token.NIL):
		return ast.NewLiteral(p.gen, p.previous().Line, nil)
	case p.match(token.NUMBER, token.STRING):
		tok := p.previous()
		return ast.NewLiteral(p.gen, tok.Line, tok.Literal)
	case p.match(token.THIS):
		return ast.NewThis(p.gen, p.previous())
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "expected '.' after 'super'")
		method := p.consume(token.IDENTIFIER, "expected superclass method name")
		return ast.NewSuper(p.gen, keyword, method)
	case p.match(token.IDENTIFIER):
		return ast.NewVariable(p.gen, p.previous())
	case p.match(token.LEFT_PAREN):
		line := p.previous().Line
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "expected ')' after expression")
		return ast.NewGrouping(p.gen, line, expr)
	default:
		panic(p.error(p.peek(), "expected expression"))
	}
}
