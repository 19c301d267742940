// C9: the macro bridge (spec §4.8). A macro call is detected by the
// access resolver as MacroAccess during Call-mode typing (expr.go's
// typeCall); this file implements the two execution phases and the
// encode/invoke/decode boundary crossing.
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

// exprTypePath is the distinguished "by-expression" macro parameter shape
// (spec §4.8 arity checking): the first formal is Expr, so argument count
// must match the call exactly.
const exprTypePath = "haxe.macro.Expr"

// arrayExprTypePath is the "by-array" shape: a single variadic Array<Expr>
// formal receives every argument.
const arrayExprTypePath = "haxe.macro.Expr.Array"

func typeMacroCall(ctx *Context, n *ast.Call, v MacroAccess) (ast.Expression, error) {
	tfun, ok := types.Follow(v.Field.Type).(types.TFun)
	if !ok {
		return nil, diagnostics.Custom(n.Pos(), "Macro field "+v.Field.Name+" is not callable")
	}
	byArray := len(tfun.Args) == 1 && isArrayExprFormal(ctx, tfun.Args[0].Type)
	if !byArray && len(n.Args) != len(tfun.Args) {
		return nil, diagnostics.Custom(n.Pos(), "Wrong number of arguments to macro "+v.Field.Name)
	}

	encoded := make([]MacroValue, len(n.Args))
	for i, a := range n.Args {
		typed, err := ExprType(ctx, a)
		if err != nil {
			return nil, err
		}
		n.Args[i] = typed
		encoded[i] = encodeExprArg(typed)
	}

	owner := ""
	if v.Field.Owner != nil {
		owner = v.Field.Owner.Name
	}

	if ctx.InMacro {
		// Nested macro call: emit a delay_call placeholder and register the
		// actual invocation to run once the outer macro itself executes,
		// using the locals snapshot captured now (spec §4.8 "Nested").
		slot := ctx.Fresh("MacroResult")
		ctx.G.Delay(func() error {
			_, err := invokeMacro(ctx, owner, v.Field.Name, encoded, n.Pos())
			return err
		})
		placeholder := &ast.Ident{Name: "@delay_call", ExprBase: ast.ExprBase{Base: ast.Base{P: n.Pos()}, T: slot}}
		return placeholder, nil
	}

	result, err := invokeMacro(ctx, owner, v.Field.Name, encoded, n.Pos())
	if err != nil {
		return nil, err
	}
	return decodeExprResult(result, n.Pos())
}

// isArrayExprFormal reports whether t is Array<Expr>, the by-array shape.
func isArrayExprFormal(ctx *Context, t types.Type) bool {
	inst, ok := types.Follow(t).(types.TInst)
	if !ok || inst.Decl == nil || inst.Decl != ctx.G.ArrayDecl || len(inst.Params) != 1 {
		return false
	}
	elem, ok := types.Follow(inst.Params[0]).(types.TInst)
	return ok && elem.Decl != nil && elem.Decl.Module+"."+elem.Decl.Name == exprTypePath
}

// invokeMacro calls through to the configured interpreter, tagging the
// call with a fresh correlation ID (spec §4.8) so the host boundary can
// match this request to its response. Building a sibling context (spec §5:
// "the two contexts do NOT share monomorphs") is how the macro module
// itself would be type-checked before any of its methods are callable at
// all; that happens once at load time, not per invocation, so it has no
// place here.
func invokeMacro(ctx *Context, module, method string, args []MacroValue, pos source.Position) (MacroValue, error) {
	if ctx.G.Macro == nil {
		return MacroValue{}, diagnostics.Custom(pos, "No macro interpreter configured")
	}
	id := NewMacroCorrelationID()
	return ctx.G.Macro.Invoke(id, module, method, args)
}

// encodeExprArg crosses the macro boundary outbound: the typed AST
// argument is wrapped, not serialized to a concrete wire format, since no
// real macro interpreter exists in this module to define one (spec §1
// "Out of scope ... macro interpreter").
func encodeExprArg(e ast.Expression) MacroValue {
	return MacroValue{Kind: "expr", Payload: e}
}

// decodeExprResult crosses the boundary inbound: the interpreter is
// expected to hand back an already-built ast.Expression payload (spec
// §4.8 "decode the returned expression back into an untyped tree spliced
// at the call site").
func decodeExprResult(v MacroValue, pos source.Position) (ast.Expression, error) {
	e, ok := v.Payload.(ast.Expression)
	if !ok {
		return nil, diagnostics.Custom(pos, "Macro did not return a spliced expression")
	}
	return e, nil
}
