package interp

import (
	"fmt"
	"math"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/resolver"
	"github.com/jmahotiedu/rift/lang/token"
)

// Interpreter holds the persistent state of one evaluator: the globals
// frame and the frame currently in scope. A REPL constructs one Interpreter
// and reuses it across turns so that definitions accumulate; a file run
// constructs one and discards it.
type Interpreter struct {
	globals *Environment
	env     *Environment
	depths  resolver.Depths

	th *Thread
}

// New returns an Interpreter with a fresh globals frame populated with the
// builtins (clock, len, str, num, input, type).
func New() *Interpreter {
	in := &Interpreter{globals: NewEnvironment(nil)}
	in.env = in.globals
	defineBuiltins(in.globals)
	return in
}

// Run executes statements against th, using depths to resolve local
// variable lookups. It returns the first RuntimeError encountered, if any;
// statements already executed keep their side effects (definitions already
// made to globals are not rolled back).
func (in *Interpreter) Run(th *Thread, depths resolver.Depths, stmts []ast.Stmt) error {
	in.th = th
	in.depths = depths
	in.env = in.globals

	for _, stmt := range stmts {
		if th.cancelled() {
			return fmt.Errorf("interrupted")
		}
		if err := in.execute(stmt); err != nil {
			in.env = in.globals
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.th.stdout(), stringify(v))
		return nil

	case *ast.LetStmt:
		var value Value
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return in.execute(s.ElseBranch)
		}
		return nil

	case *ast.WhileStmt:
		for {
			if in.th.cancelled() {
				return fmt.Errorf("interrupted")
			}
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{declaration: s, closure: in.env, interp: in}
		in.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	case *ast.ClassStmt:
		return in.executeClass(s)

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

// executeBlock runs stmts against env, restoring the interpreter's previous
// current-frame pointer afterward even if a RuntimeError or returnSignal
// unwinds out of the block.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return &RuntimeError{Token: s.Superclass.Name, Msg: "superclass must be a class"}
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, nil)

	classEnv := in.env
	if superclass != nil {
		classEnv = NewEnvironment(in.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		fn := &Function{
			declaration:   method,
			closure:       classEnv,
			isInitializer: method.Name.Lexeme == "init",
			interp:        in,
		}
		methods[method.Name.Lexeme] = fn
	}

	class := &Class{Name: s.Name.Lexeme, superclass: superclass, methods: methods}
	return in.env.Assign(s.Name, class)
}

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return in.evaluate(e.Expression)

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.VariableExpr:
		return in.lookupVariable(e.Name, e)

	case *ast.AssignExpr:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.depths[ast.ExprID(e)]; ok {
			in.env.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := in.globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.LogicalExpr:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Kind == token.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else if !isTruthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right)

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		getter, ok := obj.(HasAttrs)
		if !ok {
			return nil, &RuntimeError{Token: e.Name, Msg: "only instances have properties"}
		}
		if v, ok := getter.GetAttr(e.Name.Lexeme); ok {
			return v, nil
		}
		return nil, &RuntimeError{Token: e.Name, Msg: "undefined property '" + e.Name.Lexeme + "'"}

	case *ast.SetExpr:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		setter, ok := obj.(HasSetAttrs)
		if !ok {
			return nil, &RuntimeError{Token: e.Name, Msg: "only instances have fields"}
		}
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		setter.SetAttr(e.Name.Lexeme, value)
		return value, nil

	case *ast.ThisExpr:
		return in.lookupVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	operand, err := in.evaluate(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.MINUS:
		n, ok := operand.(float64)
		if !ok {
			return nil, &RuntimeError{Token: e.Operator, Msg: "operand must be a number"}
		}
		return -n, nil
	case token.BANG:
		return !isTruthy(operand), nil
	}
	return nil, nil
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	op := e.Operator

	switch op.Kind {
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Token: op, Msg: "operands must be two numbers or two strings"}
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, rn, err := checkNumberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		switch op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			if rn == 0 {
				return nil, &RuntimeError{Token: op, Msg: "division by zero"}
			}
			return ln / rn, nil
		case token.PERCENT:
			if rn == 0 {
				return nil, &RuntimeError{Token: op, Msg: "modulo by zero"}
			}
			return mod(ln, rn), nil
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		}
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	}
	return nil, nil
}

// mod implements floored modulo (result takes the sign of b), matching the
// original interpreter's use of Python's `%` operator on floats.
func mod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func checkNumberOperands(op token.Token, left, right Value) (float64, float64, error) {
	ln, ok1 := left.(float64)
	rn, ok2 := right.(float64)
	if !ok1 || !ok2 {
		return 0, 0, &RuntimeError{Token: op, Msg: "operands must be numbers"}
	}
	return ln, rn, nil
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Msg: "can only call functions and classes"}
	}
	if len(args) != callable.Arity() {
		return nil, &RuntimeError{
			Token: e.Paren,
			Msg:   fmt.Sprintf("expected %d arguments but got %d", callable.Arity(), len(args)),
		}
	}
	result, err := callable.Call(in.th, args)
	if err != nil {
		if _, ok := err.(*RuntimeError); ok {
			return nil, err
		}
		return nil, &RuntimeError{Token: e.Paren, Msg: err.Error()}
	}
	return result, nil
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	distance := in.depths[ast.ExprID(e)]
	superVal := in.env.GetAt(distance, "super")
	superclass := superVal.(*Class)
	instance := in.env.GetAt(distance-1, "this").(*Instance)

	method := superclass.findMethod(e.Method.Lexeme)
	if method == nil {
		return nil, &RuntimeError{Token: e.Method, Msg: "undefined property '" + e.Method.Lexeme + "'"}
	}
	return method.bind(instance), nil
}

func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := in.depths[ast.ExprID(expr)]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}
