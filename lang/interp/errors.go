package interp

import (
	"fmt"

	"github.com/jmahotiedu/rift/lang/token"
)

// RuntimeError is fatal to the current run: it unwinds the evaluator back
// to Interpreter.Run, which resets the current frame to globals without
// discarding prior definitions and returns the error to its caller.
type RuntimeError struct {
	Token token.Token
	Msg   string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime error: %s", e.Token.Line, e.Msg)
}

// returnSignal is not an error in the user-facing sense: it is the typed
// unwinding mechanism a `return` statement uses to escape nested blocks and
// loops and reach the call that invoked the current function. It implements
// error only so it can travel through the same execute/evaluate return
// channels as a RuntimeError; Function.Call is the only place
// that must recognize and consume it.
type returnSignal struct{ value Value }

func (r *returnSignal) Error() string { return "return outside of a function" }
