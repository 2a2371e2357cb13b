package ast

import (
	"fmt"

	"github.com/jmahotiedu/rift/lang/token"
)

type (
	// BinaryExpr represents a binary operator expression, e.g. a + b.
	BinaryExpr struct {
		exprBase
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// UnaryExpr represents a unary operator expression, e.g. -a or !a.
	UnaryExpr struct {
		exprBase
		Operator token.Token
		Operand  Expr
	}

	// LiteralExpr represents a literal nil, boolean, number or string value.
	LiteralExpr struct {
		exprBase
		Value any
	}

	// GroupingExpr represents a parenthesized expression.
	GroupingExpr struct {
		exprBase
		Expression Expr
	}

	// VariableExpr represents a read of a named variable.
	VariableExpr struct {
		exprBase
		Name token.Token
	}

	// AssignExpr represents a variable assignment, e.g. x = value.
	AssignExpr struct {
		exprBase
		Name  token.Token
		Value Expr
	}

	// LogicalExpr represents a short-circuiting `and`/`or` expression.
	LogicalExpr struct {
		exprBase
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// CallExpr represents a function or class call, e.g. f(a, b).
	CallExpr struct {
		exprBase
		Callee    Expr
		Paren     token.Token // closing ')', used to report arity errors
		Arguments []Expr
	}

	// GetExpr represents a property access, e.g. obj.name.
	GetExpr struct {
		exprBase
		Object Expr
		Name   token.Token
	}

	// SetExpr represents a property assignment, e.g. obj.name = value.
	SetExpr struct {
		exprBase
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr represents a `this` reference inside a method.
	ThisExpr struct {
		exprBase
		Keyword token.Token
	}

	// SuperExpr represents a `super.method` reference inside a method.
	SuperExpr struct {
		exprBase
		Keyword token.Token
		Method  token.Token
	}
)

func newExprBase(gen *IDGen, line int) exprBase {
	return exprBase{id: gen.Next(), line: line}
}

// NewBinary builds a BinaryExpr with a fresh identity from gen.
func NewBinary(gen *IDGen, left Expr, op token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: newExprBase(gen, op.Line), Left: left, Operator: op, Right: right}
}

// NewUnary builds a UnaryExpr with a fresh identity from gen.
func NewUnary(gen *IDGen, op token.Token, operand Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: newExprBase(gen, op.Line), Operator: op, Operand: operand}
}

// NewLiteral builds a LiteralExpr with a fresh identity from gen.
func NewLiteral(gen *IDGen, line int, value any) *LiteralExpr {
	return &LiteralExpr{exprBase: newExprBase(gen, line), Value: value}
}

// NewGrouping builds a GroupingExpr with a fresh identity from gen.
func NewGrouping(gen *IDGen, line int, expression Expr) *GroupingExpr {
	return &GroupingExpr{exprBase: newExprBase(gen, line), Expression: expression}
}

// NewVariable builds a VariableExpr with a fresh identity from gen.
func NewVariable(gen *IDGen, name token.Token) *VariableExpr {
	return &VariableExpr{exprBase: newExprBase(gen, name.Line), Name: name}
}

// NewAssign builds an AssignExpr with a fresh identity from gen.
func NewAssign(gen *IDGen, name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{exprBase: newExprBase(gen, name.Line), Name: name, Value: value}
}

// NewLogical builds a LogicalExpr with a fresh identity from gen.
func NewLogical(gen *IDGen, left Expr, op token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{exprBase: newExprBase(gen, op.Line), Left: left, Operator: op, Right: right}
}

// NewCall builds a CallExpr with a fresh identity from gen.
func NewCall(gen *IDGen, callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{exprBase: newExprBase(gen, paren.Line), Callee: callee, Paren: paren, Arguments: args}
}

// NewGet builds a GetExpr with a fresh identity from gen.
func NewGet(gen *IDGen, object Expr, name token.Token) *GetExpr {
	return &GetExpr{exprBase: newExprBase(gen, name.Line), Object: object, Name: name}
}

// NewSet builds a SetExpr with a fresh identity from gen.
func NewSet(gen *IDGen, object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{exprBase: newExprBase(gen, name.Line), Object: object, Name: name, Value: value}
}

// NewThis builds a ThisExpr with a fresh identity from gen.
func NewThis(gen *IDGen, keyword token.Token) *ThisExpr {
	return &ThisExpr{exprBase: newExprBase(gen, keyword.Line), Keyword: keyword}
}

// NewSuper builds a SuperExpr with a fresh identity from gen.
func NewSuper(gen *IDGen, keyword, method token.Token) *SuperExpr {
	return &SuperExpr{exprBase: newExprBase(gen, keyword.Line), Keyword: keyword, Method: method}
}

func (n *BinaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("binary %s", n.Operator.Lexeme))
}
func (n *BinaryExpr) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }

func (n *UnaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("unary %s", n.Operator.Lexeme))
}
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Operand) }

func (n *LiteralExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("literal %v", n.Value))
}
func (n *LiteralExpr) Walk(_ Visitor) {}

func (n *GroupingExpr) Format(f fmt.State, verb rune) { format(f, verb, "grouping") }
func (n *GroupingExpr) Walk(v Visitor)                { Walk(v, n.Expression) }

func (n *VariableExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("variable %s", n.Name.Lexeme))
}
func (n *VariableExpr) Walk(_ Visitor) {}

func (n *AssignExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("assign %s", n.Name.Lexeme))
}
func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }

func (n *LogicalExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("logical %s", n.Operator.Lexeme))
}
func (n *LogicalExpr) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }

func (n *CallExpr) Format(f fmt.State, verb rune) { format(f, verb, "call") }
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Arguments {
		Walk(v, a)
	}
}

func (n *GetExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("get %s", n.Name.Lexeme))
}
func (n *GetExpr) Walk(v Visitor) { Walk(v, n.Object) }

func (n *SetExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("set %s", n.Name.Lexeme))
}
func (n *SetExpr) Walk(v Visitor) { Walk(v, n.Object); Walk(v, n.Value) }

func (n *ThisExpr) Format(f fmt.State, verb rune) { format(f, verb, "this") }
func (n *ThisExpr) Walk(_ Visitor)                {}

func (n *SuperExpr) Format(f fmt.State, verb rune) {
	format(f, verb, fmt.Sprintf("super.%s", n.Method.Lexeme))
}
func (n *SuperExpr) Walk(_ Visitor) {}
