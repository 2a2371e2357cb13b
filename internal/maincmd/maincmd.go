// Package maincmd implements the command-line driver for rift: a Cmd type
// parsed by mna/mainer from os.Args, dispatching to file execution, the
// REPL, or one of the tokenize/parse/resolve diagnostic subcommands.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "rift"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<command>] [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<command>] [<path>]
       %[1]s -h|--help
       %[1]s -v|--version

Interpreter for the %[1]s programming language.

With no arguments, %[1]s starts an interactive REPL. With a single <path>
argument, it executes the script at that path.

The <command> can be one of:
       tokenize <path>           Run the scanner and print the resulting
                                 tokens.
       parse <path>              Run the scanner and parser and print the
                                 resulting syntax tree.
       resolve <path>            Run the scanner, parser and resolver and
                                 print the syntax tree with resolved
                                 variable depths.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd holds the parsed command line and dispatches to the matching run
// function once Validate has determined which mode applies.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
	mode func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool)     {}

// Validate selects the run mode from the positional arguments: no args
// means REPL, one of the diagnostic command names plus a path dispatches to
// that subcommand, and any other single argument is treated as a script
// path to execute.
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	switch len(c.args) {
	case 0:
		c.mode = c.repl
		return nil
	case 1:
		c.mode = c.runFile
		return nil
	case 2:
		switch c.args[0] {
		case "tokenize":
			c.mode = c.tokenize
		case "parse":
			c.mode = c.parse
		case "resolve":
			c.mode = c.resolve
		default:
			return fmt.Errorf("unknown command: %s", c.args[0])
		}
		return nil
	default:
		return errors.New("too many arguments")
	}
}

func (c *Cmd) path() string {
	return c.args[len(c.args)-1]
}

// Main parses args with mainer and runs the selected mode, wiring ^C into
// the context passed down to the evaluator.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.mode(ctx, stdio, c.args); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}
