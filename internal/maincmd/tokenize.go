package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/jmahotiedu/rift/lang/scanner"
)

func (c *Cmd) tokenize(ctx context.Context, stdio mainer.Stdio, _ []string) error {
	return TokenizeFile(ctx, stdio, c.path())
}

// TokenizeFile reads path, scans it, and prints one line per token to
// stdio.Stdout. It is exported so golden-file tests can exercise the same
// path the CLI does without going through os.Args.
func TokenizeFile(_ context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "file not found: %s\n", path)
		return err
	}

	tokens, errs := scanner.ScanTokens(string(src))
	for _, tok := range tokens {
		fmt.Fprintf(stdio.Stdout, "[line %d] %v\n", tok.Line, tok)
	}
	if len(errs) > 0 {
		fmt.Fprintln(stdio.Stderr, errs.Error())
		return errs
	}
	return nil
}
