// Package ast is the expression tree the typer consumes and annotates.
// There is only one tree, not an untyped/typed pair: every Expression
// carries a Type field that starts nil and is filled in by the typer
// (package typer) as it walks the tree, mirroring spec's "(eexpr, etype,
// epos)" output shape directly on the input nodes rather than through a
// rewrite.
package ast

import (
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

// Node is satisfied by every tree member, expression or statement.
type Node interface {
	Pos() source.Position
}

// Expression is a Node that produces a value (or, for need_val=false
// contexts, may be typed void). Type is nil until the typer visits it;
// SetType is called exactly once per node, from the typer.
type Expression interface {
	Node
	exprNode()
	Type() types.Type
	SetType(t types.Type)
}

// Statement is a Node that does not itself produce a value, though it may
// wrap an Expression (ExprStmt) or a value-producing construct used in
// statement position (switch/if with need_val=false).
type Statement interface {
	Node
	stmtNode()
}

// Base carries the file position every node needs.
type Base struct {
	P source.Position
}

func (b Base) Pos() source.Position { return b.P }

// ExprBase is embedded by every Expression implementation.
type ExprBase struct {
	Base
	T types.Type
}

func (e ExprBase) exprNode()          {}
func (e *ExprBase) Type() types.Type  { return e.T }
func (e *ExprBase) SetType(t types.Type) { e.T = t }

// StmtBase is embedded by every Statement implementation.
type StmtBase struct {
	Base
}

func (s StmtBase) stmtNode() {}

// TypeRef is an unresolved type annotation as written by the programmer —
// a type path plus optional type arguments. The typer never constructs
// these; they arrive on VarDecl/Param/CatchClause/Cast/FunctionLiteral
// nodes and are turned into types.Type via the loader's LoadComplexType
// (spec §6), once, the first time each is visited.
type TypeRef struct {
	Base
	Path   string
	Args   []*TypeRef
	Nullable bool // written as `?T` at the annotation site
}
