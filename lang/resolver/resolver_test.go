package resolver_test

import (
	"testing"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/parser"
	"github.com/jmahotiedu/rift/lang/resolver"
	"github.com/jmahotiedu/rift/lang/scanner"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, serrs := scanner.ScanTokens(src)
	require.Empty(t, serrs)
	stmts, perrs := parser.Parse(toks, ast.NewIDGen())
	require.Empty(t, perrs)
	return stmts
}

func TestResolveLocalDepth(t *testing.T) {
	stmts := parseOK(t, `{ let x = 1; { print(x); } }`)
	outerBlock := stmts[0].(*ast.BlockStmt)
	innerBlock := outerBlock.Statements[1].(*ast.BlockStmt)
	printStmt := innerBlock.Statements[0].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.VariableExpr)

	depths, errs := resolver.Resolve(stmts)
	require.Empty(t, errs)
	require.Equal(t, 1, depths[ast.ExprID(variable)])
}

func TestResolveGlobalIsAbsentFromDepths(t *testing.T) {
	stmts := parseOK(t, `let x = 1; print(x);`)
	printStmt := stmts[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.VariableExpr)

	depths, errs := resolver.Resolve(stmts)
	require.Empty(t, errs)
	_, ok := depths[ast.ExprID(variable)]
	require.False(t, ok)
}

func TestResolveOwnInitializerIsError(t *testing.T) {
	stmts := parseOK(t, `{ let x = x + 1; }`)
	_, errs := resolver.Resolve(stmts)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "own initializer")
}

func TestResolveRedeclarationInSameScopeIsError(t *testing.T) {
	stmts := parseOK(t, `{ let x = 1; let x = 2; }`)
	_, errs := resolver.Resolve(stmts)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "already declared in this scope")
}

func TestResolveGlobalRedeclarationAllowed(t *testing.T) {
	stmts := parseOK(t, `let x = 1; let x = 2;`)
	_, errs := resolver.Resolve(stmts)
	require.Empty(t, errs)
}

func TestResolveReturnAtTopLevelIsError(t *testing.T) {
	stmts := parseOK(t, `return 1;`)
	_, errs := resolver.Resolve(stmts)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "cannot return from top-level code")
}

func TestResolveInitializerReturningValueIsError(t *testing.T) {
	stmts := parseOK(t, `class C { init() { return 1; } }`)
	_, errs := resolver.Resolve(stmts)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "cannot return a value from an initializer")
}

func TestResolveInitializerBareReturnAllowed(t *testing.T) {
	stmts := parseOK(t, `class C { init() { return; } }`)
	_, errs := resolver.Resolve(stmts)
	require.Empty(t, errs)
}

func TestResolveClassInheritingFromItselfIsError(t *testing.T) {
	stmts := parseOK(t, `class C < C {}`)
	_, errs := resolver.Resolve(stmts)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "cannot inherit from itself")
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	stmts := parseOK(t, `print(this);`)
	_, errs := resolver.Resolve(stmts)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "'this' outside of a class")
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	stmts := parseOK(t, `class C { m() { return super.m(); } }`)
	_, errs := resolver.Resolve(stmts)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "no superclass")
}

func TestResolveSuperWithSuperclassIsAllowed(t *testing.T) {
	stmts := parseOK(t, `class A { m() { return 1; } } class B < A { m() { return super.m(); } }`)
	_, errs := resolver.Resolve(stmts)
	require.Empty(t, errs)
}
