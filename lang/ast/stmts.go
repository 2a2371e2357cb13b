package ast

import (
	"fmt"

	"github.com/jmahotiedu/rift/lang/token"
)

type (
	// ExpressionStmt represents an expression evaluated for its side effect.
	ExpressionStmt struct {
		stmtBase
		Expression Expr
	}

	// PrintStmt represents a `print(expr);` statement.
	PrintStmt struct {
		stmtBase
		Expression Expr
	}

	// LetStmt represents a `let name = initializer;` declaration. Initializer
	// may be nil.
	LetStmt struct {
		stmtBase
		Name        token.Token
		Initializer Expr
	}

	// BlockStmt represents a `{ ... }` block of statements.
	BlockStmt struct {
		stmtBase
		Statements []Stmt
	}

	// IfStmt represents an `if (cond) then else else` statement. ElseBranch may
	// be nil.
	IfStmt struct {
		stmtBase
		Condition  Expr
		ThenBranch Stmt
		ElseBranch Stmt
	}

	// WhileStmt represents a `while (cond) body` statement.
	WhileStmt struct {
		stmtBase
		Condition Expr
		Body      Stmt
	}

	// FunctionStmt represents a named function or method declaration.
	FunctionStmt struct {
		stmtBase
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ReturnStmt represents a `return;` or `return expr;` statement. Value may
	// be nil.
	ReturnStmt struct {
		stmtBase
		Keyword token.Token
		Value   Expr
	}

	// ClassStmt represents a class declaration. Superclass, if present, is
	// always a *VariableExpr.
	ClassStmt struct {
		stmtBase
		Name       token.Token
		Superclass *VariableExpr
		Methods    []*FunctionStmt
	}
)

// NewExpressionStmt builds an ExpressionStmt.
func NewExpressionStmt(line int, expr Expr) *ExpressionStmt {
	return &ExpressionStmt{stmtBase: stmtBase{line: line}, Expression: expr}
}

// NewPrintStmt builds a PrintStmt.
func NewPrintStmt(line int, expr Expr) *PrintStmt {
	return &PrintStmt{stmtBase: stmtBase{line: line}, Expression: expr}
}

// NewLetStmt builds a LetStmt.
func NewLetStmt(name token.Token, initializer Expr) *LetStmt {
	return &LetStmt{stmtBase: stmtBase{line: name.Line}, Name: name, Initializer: initializer}
}

// NewBlockStmt builds a BlockStmt.
func NewBlockStmt(line int, stmts []Stmt) *BlockStmt {
	return &BlockStmt{stmtBase: stmtBase{line: line}, Statements: stmts}
}

// NewIfStmt builds an IfStmt.
func NewIfStmt(line int, cond Expr, thenBranch, elseBranch Stmt) *IfStmt {
	return &IfStmt{stmtBase: stmtBase{line: line}, Condition: cond, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

// NewWhileStmt builds a WhileStmt.
func NewWhileStmt(line int, cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{stmtBase: stmtBase{line: line}, Condition: cond, Body: body}
}

// NewFunctionStmt builds a FunctionStmt.
func NewFunctionStmt(name token.Token, params []token.Token, body []Stmt) *FunctionStmt {
	return &FunctionStmt{stmtBase: stmtBase{line: name.Line}, Name: name, Params: params, Body: body}
}

// NewReturnStmt builds a ReturnStmt.
func NewReturnStmt(keyword token.Token, value Expr) *ReturnStmt {
	return &ReturnStmt{stmtBase: stmtBase{line: keyword.Line}, Keyword: keyword, Value: value}
}

// NewClassStmt builds a ClassStmt.
func NewClassStmt(name token.Token, superclass *VariableExpr, methods []*FunctionStmt) *ClassStmt {
	return &ClassStmt{stmtBase: stmtBase{line: name.Line}, Name: name, Superclass: superclass, Methods: methods}
}

func (n *ExpressionStmt) Format(f fmt.State, verb rune) { format(f, verb, "expression") }
func (n *ExpressionStmt) Walk(v Visitor)                { Walk(v, n.Expression) }

func (n *PrintStmt) Format(f fmt.State, verb rune) { format(f, verb, "print") }
func (n *PrintStmt) Walk(v Visitor)                { Walk(v, n.Expression) }

func (n *LetStmt) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("let %s", n.Name.Lexeme))
}
func (n *LetStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}

func (n *BlockStmt) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("block (%d stmts)", len(n.Statements)))
}
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Statements {
		Walk(v, s)
	}
}

func (n *IfStmt) Format(f fmt.State, verb rune) { format(f, verb, "if") }
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Condition)
	Walk(v, n.ThenBranch)
	if n.ElseBranch != nil {
		Walk(v, n.ElseBranch)
	}
}

func (n *WhileStmt) Format(f fmt.State, verb rune) { format(f, verb, "while") }
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Condition)
	Walk(v, n.Body)
}

func (n *FunctionStmt) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("fn %s/%d", n.Name.Lexeme, len(n.Params)))
}
func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}

func (n *ReturnStmt) Format(f fmt.State, verb rune) { format(f, verb, "return") }
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}

func (n *ClassStmt) Format(f fmt.State, verb rune) {
	label := fmt.Sprintf("class %s", n.Name.Lexeme)
	if n.Superclass != nil {
		label += " < " + n.Superclass.Name.Lexeme
	}
	format(f, verb, label)
}
func (n *ClassStmt) Walk(v Visitor) {
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
