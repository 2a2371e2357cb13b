package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/interp"
	"github.com/jmahotiedu/rift/lang/parser"
	"github.com/jmahotiedu/rift/lang/resolver"
	"github.com/jmahotiedu/rift/lang/scanner"
)

// runFile reads the script at c.path(), scans, parses, resolves and runs it
// to completion against a single-use Interpreter.
func (c *Cmd) runFile(ctx context.Context, stdio mainer.Stdio, _ []string) error {
	src, err := os.ReadFile(c.path())
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "file not found: %s\n", c.path())
		return err
	}

	th := &interp.Thread{Stdout: stdio.Stdout, Stderr: stdio.Stderr, Stdin: stdio.Stdin}
	in := interp.New()
	if err := runSource(ctx, in, th, string(src)); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}

// runSource drives one scan→parse→resolve→evaluate pass over src against in,
// returning the first error from whichever stage aborts the run. It is
// used by file execution; the REPL drives the same stages itself so that it
// can buffer incomplete input. Callers decide how to report the error.
func runSource(ctx context.Context, in *interp.Interpreter, th *interp.Thread, src string) error {
	tokens, scanErrs := scanner.ScanTokens(src)
	if len(scanErrs) > 0 {
		return scanErrs
	}

	stmts, parseErrs := parser.Parse(tokens, ast.NewIDGen())
	if len(parseErrs) > 0 {
		return parseErrs
	}

	depths, resolveErrs := resolver.Resolve(stmts)
	if len(resolveErrs) > 0 {
		return resolveErrs
	}

	th.WithContext(ctx)
	return in.Run(th, depths, stmts)
}
