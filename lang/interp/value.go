// Package interp implements the tree-walking evaluator: it executes a
// resolved statement list against a persistent environment, producing print
// side effects and runtime errors.
package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is any value the evaluator manipulates. Rift is dynamically typed,
// so nil, bool, float64 and string are used directly as Values; Callable
// (*Function, *Class, *NativeFunction) and *Instance are the only custom
// representations.
type Value = any

// Callable is implemented by any Value that may appear as the operand of a
// call expression.
type Callable interface {
	Arity() int
	Call(th *Thread, args []Value) (Value, error)
	CallableName() string
}

// HasAttrs is implemented by values whose fields may be read by a dot
// expression (obj.name).
type HasAttrs interface {
	GetAttr(name string) (Value, bool)
}

// HasSetAttrs is implemented by values whose fields may be assigned by a dot
// expression (obj.name = value).
type HasSetAttrs interface {
	SetAttr(name string, v Value)
}

// isTruthy implements Rift's truthiness rule: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Rift's `==`: values of different dynamic types are
// never equal, matching the host-language equality that the original
// interpreter inherits from comparing an untagged union.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// stringify renders v the way `print` and the `str` builtin do: an exact
// integral float64 is printed without its trailing ".0".
func stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// typeName implements the `type` builtin.
func typeName(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case *Instance:
		return x.Class.Name
	case *Function, *NativeFunction, *Class:
		return "function"
	default:
		return strings.ToLower(fmt.Sprintf("%T", x))
	}
}
