package parser_test

import (
	"testing"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/parser"
	"github.com/jmahotiedu/rift/lang/scanner"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, serrs := scanner.ScanTokens(src)
	require.Empty(t, serrs)
	stmts, perrs := parser.Parse(toks, ast.NewIDGen())
	require.Empty(t, perrs)
	return stmts
}

func TestParsePrintExpression(t *testing.T) {
	stmts := parse(t, "print(1+2);")
	require.Len(t, stmts, 1)
	p, ok := stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
	bin, ok := p.Expression.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator.Lexeme)
}

func TestParseLetAndAssignment(t *testing.T) {
	stmts := parse(t, "let x = 10; x = x + 1;")
	require.Len(t, stmts, 2)
	let, ok := stmts[0].(*ast.LetStmt)
	require.True(t, ok)
	require.Equal(t, "x", let.Name.Lexeme)

	es, ok := stmts[1].(*ast.ExpressionStmt)
	require.True(t, ok)
	assign, ok := es.Expression.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "x", assign.Name.Lexeme)
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts := parse(t, "fn add(a,b){return a+b;}")
	require.Len(t, stmts, 1)
	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := parse(t, `class A{init(){} m(){return "A";}} class B<A{m(){return super.m()+"B";}}`)
	require.Len(t, stmts, 2)
	b, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	require.Equal(t, "B", b.Name.Lexeme)
	require.NotNil(t, b.Superclass)
	require.Equal(t, "A", b.Superclass.Name.Lexeme)
	require.Len(t, b.Methods, 1)

	ret := b.Methods[0].Body[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)
	call, ok := bin.Left.(*ast.CallExpr)
	require.True(t, ok)
	_, ok = call.Callee.(*ast.SuperExpr)
	require.True(t, ok)
}

func TestParseForDesugarsToBlockWhile(t *testing.T) {
	stmts := parse(t, "for (let i=0; i<3; i = i+1) print(i);")
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, ok = block.Statements[0].(*ast.LetStmt)
	require.True(t, ok)
	while, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	whileBody, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, whileBody.Statements, 2)
}

func TestParseForWithoutConditionDefaultsTrue(t *testing.T) {
	stmts := parse(t, "for (;;) print(1);")
	block := stmts[0].(*ast.BlockStmt)
	while := block.Statements[0].(*ast.WhileStmt)
	lit, ok := while.Condition.(*ast.LiteralExpr)
	require.True(t, ok)
	require.Equal(t, true, lit.Value)
}

func TestParseAssignmentToNonTargetIsError(t *testing.T) {
	toks, serrs := scanner.ScanTokens("1 = 2;")
	require.Empty(t, serrs)
	_, perrs := parser.Parse(toks, ast.NewIDGen())
	require.Len(t, perrs, 1)
	require.Contains(t, perrs[0].Error(), "invalid assignment target")
}

func TestParseArityCapOnArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"

	toks, serrs := scanner.ScanTokens(src)
	require.Empty(t, serrs)
	_, perrs := parser.Parse(toks, ast.NewIDGen())
	require.Len(t, perrs, 1)
	require.Contains(t, perrs[0].Error(), "more than 255 arguments")
}

func TestParseErrorRecoverySynchronizes(t *testing.T) {
	toks, serrs := scanner.ScanTokens("let; let y = 1;")
	require.Empty(t, serrs)
	stmts, perrs := parser.Parse(toks, ast.NewIDGen())
	require.Len(t, perrs, 1)
	require.Len(t, stmts, 1)
	let, ok := stmts[0].(*ast.LetStmt)
	require.True(t, ok)
	require.Equal(t, "y", let.Name.Lexeme)
}

func TestParsePrecedenceClimbing(t *testing.T) {
	stmts := parse(t, "print(1+2*3);")
	p := stmts[0].(*ast.PrintStmt)
	bin := p.Expression.(*ast.BinaryExpr)
	require.Equal(t, "+", bin.Operator.Lexeme)
	_, ok := bin.Left.(*ast.LiteralExpr)
	require.True(t, ok)
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "*", rhs.Operator.Lexeme)
}
