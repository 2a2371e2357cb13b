package interp

import (
	"github.com/dolthub/swiss"
	"github.com/jmahotiedu/rift/lang/token"
)

// Environment is one frame of the lexical scope chain: a name-to-value map
// plus a pointer to the enclosing frame. The globals frame has a nil
// enclosing pointer.
type Environment struct {
	values    *swiss.Map[string, Value]
	enclosing *Environment
}

// NewEnvironment returns an empty frame enclosed by parent (nil for
// globals).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8), enclosing: parent}
}

// Define binds name to value in this frame, overwriting any existing
// binding. Redefinition is how the Resolver-permitted case of repeated
// top-level `let` is handled.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get reads name, searching outward through enclosing frames if absent from
// this one.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values.Get(name.Lexeme); ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &RuntimeError{Token: name, Msg: "undefined variable '" + name.Lexeme + "'"}
}

// Assign stores value at name's existing binding, searching outward through
// enclosing frames. Assigning an undefined name is a runtime error.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values.Get(name.Lexeme); ok {
		e.values.Put(name.Lexeme, value)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return &RuntimeError{Token: name, Msg: "undefined variable '" + name.Lexeme + "'"}
}

// GetAt reads name from the frame `distance` enclosing steps away, as
// computed by the resolver's depth table.
func (e *Environment) GetAt(distance int, name string) Value {
	v, _ := e.ancestor(distance).values.Get(name)
	return v
}

// AssignAt stores value for name in the frame `distance` enclosing steps
// away.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).values.Put(name, value)
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}
