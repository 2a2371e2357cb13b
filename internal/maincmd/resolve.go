package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/parser"
	"github.com/jmahotiedu/rift/lang/resolver"
	"github.com/jmahotiedu/rift/lang/scanner"
)

func (c *Cmd) resolve(ctx context.Context, stdio mainer.Stdio, _ []string) error {
	return ResolveFile(ctx, stdio, c.path())
}

// ResolveFile reads path, runs it through the scanner, parser and
// resolver, and prints the syntax tree annotated with resolved scope
// depths to stdio.Stdout.
func ResolveFile(_ context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "file not found: %s\n", path)
		return err
	}

	tokens, scanErrs := scanner.ScanTokens(string(src))
	if len(scanErrs) > 0 {
		fmt.Fprintln(stdio.Stderr, scanErrs.Error())
		return scanErrs
	}

	stmts, parseErrs := parser.Parse(tokens, ast.NewIDGen())
	if len(parseErrs) > 0 {
		fmt.Fprintln(stdio.Stderr, parseErrs.Error())
		return parseErrs
	}

	depths, resolveErrs := resolver.Resolve(stmts)

	printer := ast.Printer{
		Output: stdio.Stdout,
		DepthLookup: func(exprID int) (int, bool) {
			d, ok := depths[exprID]
			return d, ok
		},
	}
	if err := printer.Print(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	if len(resolveErrs) > 0 {
		fmt.Fprintln(stdio.Stderr, resolveErrs.Error())
		return resolveErrs
	}
	return nil
}
