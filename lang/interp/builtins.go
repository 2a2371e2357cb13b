package interp

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// defineBuiltins populates env with Rift's native function library: clock,
// len, str, num, input and type.
func defineBuiltins(env *Environment) {
	env.Define("clock", &NativeFunction{Name: "clock", arity: 0, fn: nativeClock})
	env.Define("len", &NativeFunction{Name: "len", arity: 1, fn: nativeLen})
	env.Define("str", &NativeFunction{Name: "str", arity: 1, fn: nativeStr})
	env.Define("num", &NativeFunction{Name: "num", arity: 1, fn: nativeNum})
	env.Define("input", &NativeFunction{Name: "input", arity: 1, fn: nativeInput})
	env.Define("type", &NativeFunction{Name: "type", arity: 1, fn: nativeType})
}

func nativeClock(_ *Thread, _ []Value) (Value, error) {
	return float64(time.Now().UnixNano()) / 1e9, nil
}

func nativeLen(_ *Thread, args []Value) (Value, error) {
	s, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("len() argument must be a string")
	}
	return float64(len(s)), nil
}

func nativeStr(_ *Thread, args []Value) (Value, error) {
	return stringify(args[0]), nil
}

func nativeNum(_ *Thread, args []Value) (Value, error) {
	s, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("num() argument must be a string")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to a number", s)
	}
	return n, nil
}

func nativeInput(th *Thread, args []Value) (Value, error) {
	fmt.Fprint(th.stdout(), stringify(args[0]))
	line, err := th.stdinReader().ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("input(): %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func nativeType(_ *Thread, args []Value) (Value, error) {
	return typeName(args[0]), nil
}
