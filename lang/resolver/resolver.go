// Package resolver performs a static pass over the AST that computes, for
// every name-bearing expression, the lexical depth of the scope that binds
// it. The result is a side-table consumed by the evaluator so that variable
// lookups never have to search the environment chain at run time.
package resolver

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/token"
)

// Error is a single recoverable resolve error. It shares the parser's
// "Parse error" prefix: both stages report against the same source-level
// vocabulary of declarations and scopes.
type Error struct {
	Token token.Token
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Parse error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Msg)
}

// ErrorList accumulates resolve Errors.
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

// Depths maps an expression's identity (ast.ExprID) to the number of
// enclosing environment frames to walk before finding its binding. A name
// absent from Depths resolves through the globals frame instead.
type Depths map[int]int

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// scope maps a local name to whether its declaration has finished (true) or
// is still being resolved (false, used to catch `let x = x;`).
type scope map[string]bool

// Resolver walks a statement list and produces the Depths side-table.
type Resolver struct {
	scopes   []scope
	depths   Depths
	errors   ErrorList
	curFn    functionKind
	curClass classKind
}

// New returns a Resolver ready to resolve a statement list.
func New() *Resolver {
	return &Resolver{depths: Depths{}}
}

// Resolve runs a fresh Resolver over stmts and returns the depth table and
// any accumulated errors.
func Resolve(stmts []ast.Stmt) (Depths, ErrorList) {
	r := New()
	r.resolveStmts(stmts)
	// Resolution order does not always match source order (e.g. a property
	// assignment resolves its value before its object), so sort by line for
	// deterministic, readable diagnostics.
	slices.SortStableFunc(r.errors, func(a, b *Error) int { return a.Token.Line - b.Token.Line })
	return r.depths, r.errors
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.LetStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.ReturnStmt:
		if r.curFn == fnNone {
			r.errorAt(s.Keyword, "cannot return from top-level code")
		}
		if s.Value != nil {
			if r.curFn == fnInitializer {
				r.errorAt(s.Keyword, "cannot return a value from an initializer")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.ClassStmt:
		r.resolveClass(s)
	default:
		panic(fmt.Sprintf("resolver: unhandled statement type %T", stmt))
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.curClass
	r.curClass = classClass
	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorAt(s.Superclass.Name, "a class cannot inherit from itself")
		}
		r.curClass = classSubclass
		r.resolveExpr(s.Superclass)
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}
	r.curClass = enclosingClass
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.errorAt(e.Name, "cannot read variable in its own initializer")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.UnaryExpr:
		r.resolveExpr(e.Operand)
	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.GetExpr:
		r.resolveExpr(e.Object)
	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)
	case *ast.LiteralExpr:
		// no names to resolve
	case *ast.ThisExpr:
		if r.curClass == classNone {
			r.errorAt(e.Keyword, "cannot use 'this' outside of a class")
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.SuperExpr:
		switch r.curClass {
		case classNone:
			r.errorAt(e.Keyword, "cannot use 'super' outside of a class")
		case classClass:
			r.errorAt(e.Keyword, "cannot use 'super' in a class with no superclass")
		}
		r.resolveLocal(e, e.Keyword)
	default:
		panic(fmt.Sprintf("resolver: unhandled expression type %T", expr))
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosing := r.curFn
	r.curFn = kind
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.curFn = enclosing
}

// resolveLocal scans the scope stack from innermost outward; on finding
// name, it records the depth and stops. An unresolved name is left absent
// from the depth table and falls back to globals at evaluation time.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.depths[ast.ExprID(expr)] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.errorAt(name, fmt.Sprintf("variable '%s' already declared in this scope", name.Lexeme))
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) errorAt(tok token.Token, msg string) {
	r.errors = append(r.errors, &Error{Token: tok, Msg: msg})
}
