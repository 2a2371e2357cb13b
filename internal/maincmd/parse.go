package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/parser"
	"github.com/jmahotiedu/rift/lang/scanner"
)

func (c *Cmd) parse(ctx context.Context, stdio mainer.Stdio, _ []string) error {
	return ParseFile(ctx, stdio, c.path())
}

// ParseFile reads path, scans and parses it, and prints the resulting
// syntax tree to stdio.Stdout.
func ParseFile(_ context.Context, stdio mainer.Stdio, path string) error {
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
	printer := ast.Printer{Output: stdio.Stdout}
	if err := printer.Print(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	if len(parseErrs) > 0 {
		fmt.Fprintln(stdio.Stderr, parseErrs.Error())
		return parseErrs
	}
	return nil
}
