// Package typer implements the expression typer: access-kind resolution
// (C3), field-access elaboration (C5), call-parameter matching (C4), the
// expression grammar (C6), using-extension resolution (C7), finalization
// and reachability (C8), the macro bridge (C9), and the context factory
// (C10). It consumes package types (C1/C2) and package ast, and depends
// on package loader as an external collaborator (spec §6).
package typer

import (
	"github.com/google/uuid"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/loader"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/symbols"
	"github.com/zinclang/zinc/internal/types"
)

// Backend selects the target-specific policy switches spec §6 lists
// under "Context flags". Only the switches this module actually branches
// on are represented as fields on Globals; Backend itself drives the
// nullable-lift and optional-tail-trimming policies below. The macro
// bridge's sibling context shares the host's Globals, Backend included.
type Backend string

const (
	BackendFlash   Backend = "flash"
	BackendJS      Backend = "js"
	BackendAS3     Backend = "as3"
	BackendSWFMark Backend = "swf-mark"
	BackendFlash9  Backend = "flash9"
	BackendCPP     Backend = "cpp"
	// BackendNeko names the bytecode backend. Nothing in this module
	// switches to it: the macro bridge's sibling context keeps the host's
	// Backend.
	BackendNeko Backend = "neko"
)

// liftsValueTypes reports whether Null(T) must lift to Nullable<T> (value
// -typed backends) rather than Null(T)=T (reference-typed backends), per
// C10 (spec §4.9).
func (b Backend) liftsValueTypes() bool {
	switch b {
	case BackendCPP, BackendFlash9:
		return true
	default:
		return false
	}
}

// trimsOptionalNullTail reports whether the target cannot represent a
// literal null argument, triggering C4's optional-tail trimming (spec
// §4.4).
func (b Backend) trimsOptionalNullTail() bool {
	switch b {
	case BackendFlash, BackendSWFMark:
		return true
	default:
		return false
	}
}

// DelayedClosure is one entry of the finalization queue (spec §4.7,
// DESIGN NOTES "Delayed closures for finalization"): a callback that may
// itself enqueue more work, drained to a fixpoint.
type DelayedClosure func() error

// MacroInterpreter is the single entry point into the out-of-scope macro
// interpreter (spec §1, §4.8). This module never implements one; it only
// defines the boundary the bridge (C9) calls through.
type MacroInterpreter interface {
	Invoke(id, module, method string, args []MacroValue) (MacroValue, error)
}

// MacroValue is the encoded/decoded value form crossing the macro
// boundary (spec §5: "the two contexts do NOT share monomorphs — macro
// input is encoded to serialized form and decoded back"). Kept as an
// opaque interface{} payload with a Kind tag rather than a concrete
// struct, since the interpreter that produces/consumes these lives
// entirely outside this module.
type MacroValue struct {
	Kind    string
	Payload interface{}
}

// Globals is `g` (spec §3): state shared by a typing context and every
// sibling context spawned from it, except where the macro bridge
// explicitly forks a copy (spec §5 "shared resources").
type Globals struct {
	Loader        loader.Loader
	Backend       Backend
	NoInline      bool
	NoTraces      bool
	Macro         MacroInterpreter
	NumericTags   types.NumericTags
	NullableDecl  *types.TypeDecl
	VoidDecl      *types.TypeDecl
	BoolDecl      *types.TypeDecl
	StringDecl    *types.TypeDecl
	ArrayDecl     *types.TypeDecl

	delayed  []DelayedClosure
	finalize map[*types.TypeDecl]bool // not read or written; Generate tracks per-type progress in TypeDecl.FinalizeState

	Warnings []diagnostics.Warning
}

// Delay enqueues cb on the delayed-closure queue (spec §4.7).
func (g *Globals) Delay(cb DelayedClosure) {
	g.delayed = append(g.delayed, cb)
}

// Warn records a non-fatal diagnostic such as the static-cycle notice
// (spec §4.7/S6).
func (g *Globals) Warn(pos source.Position, msg string) {
	g.Warnings = append(g.Warnings, diagnostics.Warning{Pos: pos, Msg: msg})
}

// NewMacroCorrelationID tags one macro invocation crossing the
// encode/invoke/decode boundary (spec §4.8). It is passed as the first
// argument to every MacroInterpreter.Invoke call so a real interpreter/host
// pairing can match requests to responses; the typer itself never
// inspects the value beyond generating and forwarding it.
func NewMacroCorrelationID() string {
	return uuid.NewString()
}

// Context is the typing context (spec §3): one per compilation, with a
// sibling constructed by the macro bridge.
type Context struct {
	G *Globals

	Scope       *symbols.Scope
	LocalTypes  []*types.TypeDecl // local_types
	Using       *symbols.UsingList
	TypeParams  map[string]types.TParam

	CurClass  *types.TypeDecl
	CurMethod string
	TThis     types.Type
	Ret       types.Type

	InStatic     bool
	InConstructor bool
	InLoop       bool
	InSuperCall  bool
	InDisplay    bool
	InMacro      bool
	Untyped      bool

	// Opened is the stack of open-anonymous status cells created during
	// speculative inference (spec §3, §9 "Open anonymous types").
	Opened []*types.TAnon

	// ParamType is not read by the typer: a function literal's contextual
	// hint (spec §4.5 "Function literal") reaches it as typeExprHinted's
	// hint argument instead.
	ParamType types.Type
}

// NewContext builds a fresh top-level context sharing g. Used directly by
// C10's factory and by tests; the macro bridge instead uses Sibling.
func NewContext(g *Globals) *Context {
	return &Context{
		G:          g,
		Scope:      symbols.NewRootScope(),
		Using:      &symbols.UsingList{},
		TypeParams: map[string]types.TParam{},
	}
}

// Sibling constructs the macro bridge's secondary typing context (spec
// §4.8, §5): a fresh scope, an independently-forked using list (no
// shared monomorphs or mutable state with the host beyond Globals
// itself), and InMacro set.
func (c *Context) Sibling() *Context {
	return &Context{
		G:          c.G,
		Scope:      symbols.NewRootScope(),
		Using:      c.Using.Fork(),
		TypeParams: map[string]types.TParam{},
		InMacro:    true,
	}
}

// EnterBlock returns a child context sharing everything except Scope,
// which is pushed one level (spec §5 "scoped acquisition"). Callers must
// use the returned context for the block's body and discard it once done;
// resuming the parent context is all that leaving the block takes.
func (c *Context) EnterBlock() *Context {
	child := *c
	child.Scope = c.Scope.Enter()
	return &child
}

// Fresh allocates a new, unbound monomorph cell for this context. Every
// call site gets its own *types.TMono even when the diagnostic name
// repeats, since binding is by pointer identity.
func (c *Context) Fresh(name string) *types.TMono {
	return &types.TMono{Name: name}
}
