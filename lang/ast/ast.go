// Package ast defines the types that represent the abstract syntax tree of a
// Rift program: an ordered list of statements built from expressions, both
// produced by the parser and consumed by the resolver and evaluator.
package ast

import (
	"fmt"
	"strings"
)

// Node is any node of the AST.
type Node interface {
	// Every Node implements fmt.Formatter so it can print a short description
	// of itself, primarily for the `rift parse`/`rift resolve` diagnostic
	// subcommands. The only supported verb is 'v'.
	fmt.Formatter

	// Line returns the source line the node starts on.
	Line() int

	// Walk enters each child node to implement the Visitor pattern.
	Walk(v Visitor)
}

// Expr is an expression node. Every Expr has a stable identity within one
// parse, assigned at construction time: the ID is the key the resolver uses
// to populate the evaluator's depth side-table (see ExprID).
type Expr interface {
	Node
	exprID() int
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmt()
}

// ExprID returns the stable identity of e, assigned by the parser when e was
// constructed. It is the key used by the resolver's depth side-table.
func ExprID(e Expr) int { return e.exprID() }

// IDGen hands out increasing expression identities. NewIDGen returns a fresh
// generator for each parse so that tests produce deterministic ids.
type IDGen struct{ n int }

// NewIDGen returns an identity generator for one parse.
func NewIDGen() *IDGen { return &IDGen{} }

// Next returns the next unique expression id.
func (g *IDGen) Next() int {
	g.n++
	return g.n
}

// exprBase is embedded by every Expr implementation to carry its identity
// and starting line.
type exprBase struct {
	id   int
	line int
}

func (b exprBase) exprID() int { return b.id }
func (b exprBase) Line() int   { return b.line }

// stmtBase is embedded by every Stmt implementation to carry its starting
// line.
type stmtBase struct {
	line int
}

func (b stmtBase) stmt()     {}
func (b stmtBase) Line() int { return b.line }

func format(f fmt.State, verb rune, label string) {
	if verb != 'v' {
		fmt.Fprintf(f, "%%!%c(%s)", verb, label)
		return
	}
	fmt.Fprint(f, strings.TrimSpace(label))
}
