// Package parser implements the recursive-descent parser that transforms a
// Rift token stream into an abstract syntax tree (AST) of statements.
package parser

import (
	"fmt"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/token"
)

const maxArgs = 256

// Error is a single recoverable parse error, associated with the token at
// which it was detected.
type Error struct {
	Token token.Token
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Parse error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Msg)
}

// ErrorList accumulates parse Errors.
type ErrorList []*Error

func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0], len(el)-1)
	}
}

// panicError unwinds parsing of the current declaration/statement back to
// Parse's synchronize loop; it never escapes the package.
type panicError struct{ err *Error }

func (p panicError) Error() string { return p.err.Error() }

// Parser turns a token list into a statement list via recursive descent.
type Parser struct {
	tokens  []token.Token
	current int
	errors  ErrorList
	gen     *ast.IDGen
}

// New returns a Parser ready to parse tokens. gen assigns stable identities
// to the expressions it builds; the same generator must be reused across a
// file's scan→parse→resolve→evaluate pipeline run.
func New(tokens []token.Token, gen *ast.IDGen) *Parser {
	return &Parser{tokens: tokens, gen: gen}
}

// Parse consumes the whole token stream and returns the accumulated
// statement list and any parse errors. It never panics: a failure inside one
// declaration is recovered by synchronize and parsing resumes at the next
// declaration boundary.
func Parse(tokens []token.Token, gen *ast.IDGen) ([]ast.Stmt, ErrorList) {
	p := New(tokens, gen)
	return p.Parse()
}

// Parse runs the parser to completion.
func (p *Parser) Parse() ([]ast.Stmt, ErrorList) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, p.errors
}

// declaration parses one top-level or block-level declaration, recovering
// via synchronize if a panicError is raised while parsing it.
func (p *Parser) declaration() (stmt ast.Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isPanic := r.(panicError); !isPanic {
				panic(r)
			}
			p.synchronize()
			ok = false
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration(), true
	case p.match(token.FN):
		return p.function("function"), true
	case p.match(token.LET):
		return p.letDeclaration(), true
	default:
		return p.statement(), true
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "expected class name")

	var superclass *ast.VariableExpr
	if p.match(token.LESS) {
		superName := p.consume(token.IDENTIFIER, "expected superclass name")
		superclass = ast.NewVariable(p.gen, superName)
	}

	p.consume(token.LEFT_BRACE, "expected '{' before class body")
	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RIGHT_BRACE, "expected '}' after class body")
	return ast.NewClassStmt(name, superclass, methods)
}

func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENTIFIER, "expected "+kind+" name")
	p.consume(token.LEFT_PAREN, "expected '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs-1 {
				p.errorAt(p.peek(), "cannot have more than 255 parameters")
			}
			params = append(params, p.consume(token.IDENTIFIER, "expected parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "expected ')' after "+kind+" parameters")
	p.consume(token.LEFT_BRACE, "expected '{' before "+kind+" body")
	body := p.blockStatements()
	return ast.NewFunctionStmt(name, params, body)
}

func (p *Parser) letDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "expected variable name")
	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after variable declaration")
	return ast.NewLetStmt(name, initializer)
}

func (p *Parser) blockStatements() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "expected '}' after block")
	return stmts
}

// -- token stream helpers --

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) peek() token.Token     { return p.tokens[p.current] }
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool         { return p.peek().Kind == token.EOF }

func (p *Parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	panic(p.error(p.peek(), msg))
}

func (p *Parser) error(tok token.Token, msg string) panicError {
	err := &Error{Token: tok, Msg: msg}
	p.errors = append(p.errors, err)
	return panicError{err: err}
}

// errorAt records a non-fatal error (parsing continues) at tok.
func (p *Parser) errorAt(tok token.Token, msg string) {
	p.errors = append(p.errors, &Error{Token: tok, Msg: msg})
}

// synchronize advances the token stream until it has just consumed a ';' or
// the next token begins a declaration/statement, so that parsing can resume
// after an error without cascading.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FN, token.LET, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
