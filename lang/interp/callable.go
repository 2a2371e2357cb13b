package interp

import (
	"fmt"

	"github.com/jmahotiedu/rift/lang/ast"
)

// Function is a closure over the environment active where it was declared.
// interp is the Interpreter that owns the running evaluation: a function
// value only ever needs to execute within the run that created it, so
// calling it resumes that same Interpreter rather than constructing a new
// one.
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
	interp        *Interpreter
}

var _ Callable = (*Function)(nil)

func (f *Function) Arity() int           { return len(f.declaration.Params) }
func (f *Function) CallableName() string { return f.declaration.Name.Lexeme }
func (f *Function) String() string       { return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme) }

// bind returns a copy of f whose closure additionally defines `this` as
// instance, so the method body resolves `this` like any other local.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer, interp: f.interp}
}

// Call runs the function body in a fresh frame over its closure. A
// returnSignal raised inside the body is consumed here: an initializer
// always yields `this` regardless of the returned value, and the resolver
// forbids a non-empty return from an initializer at resolve time.
func (f *Function) Call(_ *Thread, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := f.interp.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Class is a callable that constructs Instances and holds its method table
// and, if any, superclass.
type Class struct {
	Name       string
	superclass *Class
	methods    map[string]*Function
}

var _ Callable = (*Class)(nil)

func (c *Class) CallableName() string { return c.Name }
func (c *Class) String() string       { return fmt.Sprintf("<class %s>", c.Name) }

func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(th *Thread, args []Value) (Value, error) {
	instance := &Instance{Class: c, fields: map[string]Value{}}
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(th, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// findMethod looks up name in c's method table, recursing into the
// superclass chain when absent.
func (c *Class) findMethod(name string) *Function {
	if fn, ok := c.methods[name]; ok {
		return fn
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

// NativeFunction wraps a builtin implemented in Go, such as clock or len.
type NativeFunction struct {
	Name  string
	arity int
	fn    func(th *Thread, args []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func (n *NativeFunction) Arity() int           { return n.arity }
func (n *NativeFunction) CallableName() string { return n.Name }
func (n *NativeFunction) String() string       { return fmt.Sprintf("<native fn %s>", n.Name) }
func (n *NativeFunction) Call(th *Thread, args []Value) (Value, error) {
	return n.fn(th, args)
}
