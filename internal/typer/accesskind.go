package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

// AccessKind is the tagged variant returned by the access resolver (spec
// §3). It is a closed sum: every implementation lives in this file, and
// callers pattern-match with a type switch rather than a subclass
// hierarchy (spec §9 DESIGN NOTES).
type AccessKind interface {
	accessKind()
}

// NoAccess is `No(name)`: not readable/writable.
type NoAccess struct {
	Name string
	Pos  source.Position
}

func (NoAccess) accessKind() {}

// ExprAccess is `Expr(e)`: a plain typed expression.
type ExprAccess struct {
	Expr ast.Expression
}

func (ExprAccess) accessKind() {}

// SetAccess is `Set(receiver, setter_name, prop_type, field_name)`:
// write-side deferred until combined with an RHS.
type SetAccess struct {
	Receiver  ast.Expression
	Setter    string
	PropType  types.Type
	FieldName string
}

func (SetAccess) accessKind() {}

// InlineAccess is `Inline(receiver, field, type)`: a method or variable
// to be inlined at the call/closure-synthesis site.
type InlineAccess struct {
	Receiver ast.Expression
	Field    *types.Field
	Type     types.Type
}

func (InlineAccess) accessKind() {}

// MacroAccess is `Macro(receiver, field)`: a macro call site.
type MacroAccess struct {
	Receiver ast.Expression
	Field    *types.Field
}

func (MacroAccess) accessKind() {}

// UsingAccess is `Using(applied_static, first_arg_expr)`: an
// extension-method call with the first argument pre-bound.
type UsingAccess struct {
	Static      *types.Field
	StaticOwner *types.TypeDecl
	FirstArg    ast.Expression
}

func (UsingAccess) accessKind() {}

// AccessMode is Get/Set/Call (spec §3).
type AccessMode int

const (
	AccessGet AccessMode = iota
	AccessSet
	AccessCall
)
