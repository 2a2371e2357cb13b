package parser

import (
	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/token"
)

// statement parses any non-declaration statement.
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.LEFT_BRACE):
		line := p.previous().Line
		return ast.NewBlockStmt(line, p.blockStatements())
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) ifStatement() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "expected '(' after 'if'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "expected ')' after if condition")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return ast.NewIfStmt(line, cond, thenBranch, elseBranch)
}

func (p *Parser) printStatement() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "expected '(' after 'print'")
	value := p.expression()
	p.consume(token.RIGHT_PAREN, "expected ')' after value")
	p.consume(token.SEMICOLON, "expected ';' after value")
	return ast.NewPrintStmt(line, value)
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after return value")
	return ast.NewReturnStmt(keyword, value)
}

func (p *Parser) whileStatement() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "expected '(' after 'while'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "expected ')' after while condition")
	body := p.statement()
	return ast.NewWhileStmt(line, cond, body)
}

// forStatement desugars `for (init; cond; post) body` into a Block holding
// the initializer followed by a While whose body wraps the original body and
// the post expression. An absent condition becomes a literal `true`.
func (p *Parser) forStatement() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "expected '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.LET):
		initializer = p.letDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after loop condition")

	var post ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		post = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "expected ')' after for clauses")

	body := p.statement()

	bodyStmts := []ast.Stmt{body}
	if post != nil {
		bodyStmts = append(bodyStmts, ast.NewExpressionStmt(line, post))
	}
	if condition == nil {
		condition = ast.NewLiteral(p.gen, line, true)
	}
	loop := ast.NewWhileStmt(line, condition, ast.NewBlockStmt(line, bodyStmts))

	var outer []ast.Stmt
	if initializer != nil {
		outer = append(outer, initializer)
	}
	return ast.NewBlockStmt(line, append(outer, loop))
}

func (p *Parser) expressionStatement() ast.Stmt {
	line := p.peek().Line
	expr := p.expression()
	p.consume(token.SEMICOLON, "expected ';' after expression")
	return ast.NewExpressionStmt(line, expr)
}
