package maincmd

import (
	"context"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mna/mainer"

	"github.com/jmahotiedu/rift/lang/ast"
	"github.com/jmahotiedu/rift/lang/interp"
	"github.com/jmahotiedu/rift/lang/parser"
	"github.com/jmahotiedu/rift/lang/resolver"
	"github.com/jmahotiedu/rift/lang/scanner"
)

var (
	replPrompt = color.New(color.FgCyan)
	replError  = color.New(color.FgRed)
)

const (
	replPromptText     = "> "
	replContinuePrompt = "... "
)

// repl runs the interactive read-eval-print loop. One Interpreter persists
// across turns so that globals survive both successful turns and runtime
// errors in a prior turn; only the exit words `exit`/`quit` (case
// insensitive, trimmed) or EOF end the session.
//
// Lines are accumulated into buf until they scan and parse cleanly, so a
// class or function body spanning several lines can be typed interactively;
// the prompt switches to "... " while buf is non-empty, mirroring
// rift/__main__.py's run_prompt.
func (c *Cmd) repl(ctx context.Context, stdio mainer.Stdio, _ []string) error {
	replPrompt.Fprintf(stdio.Stdout, "%s %s — REPL, type 'exit' or 'quit' to leave\n", binName, c.BuildVersion)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: replPromptText,
		Stdin:  stdio.Stdin,
		Stdout: stdio.Stdout,
		Stderr: stdio.Stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	in := interp.New()
	th := &interp.Thread{Stdout: stdio.Stdout, Stderr: stdio.Stderr, Stdin: stdio.Stdin}

	var buf []string
	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit", "quit":
			return nil
		}
		rl.SaveHistory(line)
		buf = append(buf, line)

		tokens, scanErrs := scanner.ScanTokens(strings.Join(buf, "\n"))
		if len(scanErrs) > 0 {
			rl.SetPrompt(replContinuePrompt)
			continue
		}
		stmts, parseErrs := parser.Parse(tokens, ast.NewIDGen())
		if len(parseErrs) > 0 {
			rl.SetPrompt(replContinuePrompt)
			continue
		}

		buf = buf[:0]
		rl.SetPrompt(replPromptText)

		depths, resolveErrs := resolver.Resolve(stmts)
		if len(resolveErrs) > 0 {
			replError.Fprintln(stdio.Stderr, resolveErrs)
			continue
		}

		th.WithContext(ctx)
		if err := in.Run(th, depths, stmts); err != nil {
			replError.Fprintln(stdio.Stderr, err)
		}
	}
}
