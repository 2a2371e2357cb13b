package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer pretty-prints a statement list, indenting one level per nesting
// depth. It backs the `rift parse` and `rift resolve` diagnostic
// subcommands.
type Printer struct {
	Output io.Writer

	// DepthLookup, if set, is consulted for every Expr node; when it reports
	// ok, the resolved scope depth is appended to that node's line. Used by
	// `rift resolve` to show the resolver's side-table inline.
	DepthLookup func(exprID int) (depth int, ok bool)
}

// Print walks stmts and writes one indented line per node.
func (p *Printer) Print(stmts []Stmt) error {
	pp := &printer{w: p.Output, depthLookup: p.DepthLookup}
	for _, s := range stmts {
		Walk(pp, s)
	}
	return pp.err
}

type printer struct {
	w           io.Writer
	depth       int
	err         error
	depthLookup func(exprID int) (int, bool)
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit {
		p.depth--
		return nil
	}
	if p.err != nil {
		return nil
	}
	suffix := ""
	if p.depthLookup != nil {
		if e, ok := n.(Expr); ok {
			if d, ok := p.depthLookup(ExprID(e)); ok {
				suffix = fmt.Sprintf(" (depth %d)", d)
			}
		}
	}
	_, p.err = fmt.Fprintf(p.w, "%s[line %d] %v%s\n", strings.Repeat(". ", p.depth), n.Line(), n, suffix)
	p.depth++
	return p
}
