// acc_get lowers an AccessKind that has reached a read context into a
// plain typed expression (spec §4.3 "Inline lowering" / "Using lowering";
// invariant 2, §8).
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

// AccGet lowers ak to a plain expression. No and Macro can never reach
// here (spec §3 invariants) — callers that might hand either of those to
// AccGet have a bug upstream, so this raises rather than silently
// producing a placeholder.
func AccGet(ctx *Context, ak AccessKind, pos source.Position) (ast.Expression, error) {
	switch v := ak.(type) {
	case ExprAccess:
		return v.Expr, nil

	case NoAccess:
		return nil, diagnostics.UnknownIdent(v.Pos, v.Name)

	case SetAccess:
		// Reading a Set access invokes the getter named after the setter
		// directly on v.Receiver; no receiver temp is bound here.
		// Compound assignment does not come through this path: expr.go's
		// rewriteSetCompound binds the receiver to a temp and builds its
		// own getter call.
		return &ast.Call{
			ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: v.PropType},
			Callee:   methodRefExpr(readAccessorFromSetter(v.Setter), v.Receiver, types.TFun{Ret: v.PropType}),
		}, nil

	case InlineAccess:
		return lowerInline(ctx, v, pos)

	case MacroAccess:
		return nil, diagnostics.Custom(pos, "Invalid macro access outside of a call")

	case UsingAccess:
		return lowerUsing(ctx, v, pos)

	default:
		return nil, diagnostics.Custom(pos, "Unsupported access kind")
	}
}

// readAccessorFromSetter maps a conventional "set_x" setter name to its
// "get_x" getter counterpart. SetAccess carries only the setter name, so
// AccGet and rewriteSetCompound both name the getter this way; a setter
// not of the form "set_x" is returned unchanged.
func readAccessorFromSetter(setter string) string {
	if len(setter) > 4 && setter[:4] == "set_" {
		return "get_" + setter[4:]
	}
	return setter
}

// lowerInline implements spec §4.3 "Inline lowering": a function-valued
// inline field becomes a closure; otherwise the stored body expression is
// cloned with positions rewritten to the call site.
func lowerInline(ctx *Context, v InlineAccess, pos source.Position) (ast.Expression, error) {
	if _, isFun := types.Follow(v.Type).(types.TFun); isFun {
		return methodClosure(v.Field, v.Receiver), nil
	}
	if v.Field.Expr == nil {
		return nil, diagnostics.Custom(pos, "Inline field "+v.Field.Name+" has no body")
	}
	body, ok := v.Field.Expr.(ast.Expression)
	if !ok {
		return nil, diagnostics.Custom(pos, "Inline field "+v.Field.Name+" body is not an expression")
	}
	return CloneAtCallSite(body, pos), nil
}

// lowerUsing implements spec §4.3 "Using lowering": synthesizes an
// eta-expansion `fun e -> fun args -> call(e, args)` applied to the
// captured first argument, preserving curry semantics so the result can
// still be called with the remaining arguments.
func lowerUsing(ctx *Context, v UsingAccess, pos source.Position) (ast.Expression, error) {
	fn := &ast.FieldAccess{
		ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: v.Static.Type},
		Receiver: &ast.Ident{Name: v.StaticOwner.Name, ExprBase: ast.ExprBase{T: types.TInst{Decl: v.StaticOwner}}},
		Name:     v.Static.Name,
	}
	curried := curryFirstArg(fn, v.FirstArg, v.Static.Type, pos)
	return curried, nil
}

// curryFirstArg wraps fn (a static method reference of type
// `(first, ...rest) -> ret`) into a value of type `(...rest) -> ret`
// that, when eventually called, invokes fn with firstArg prepended.
// Represented directly as a FunctionLiteral closing over firstArg, rather
// than a dedicated AST node, since the rest of the pipeline (call typing,
// inlining) already knows how to handle function literals.
func curryFirstArg(fn ast.Expression, firstArg ast.Expression, fnType types.Type, pos source.Position) ast.Expression {
	tfun, ok := types.Follow(fnType).(types.TFun)
	if !ok || len(tfun.Args) == 0 {
		return fn
	}
	restArgs := tfun.Args[1:]
	params := make([]ast.Param, len(restArgs))
	callArgs := make([]ast.Expression, 0, len(restArgs)+1)
	callArgs = append(callArgs, firstArg)
	for i, a := range restArgs {
		params[i] = ast.Param{Name: a.Name, Optional: a.Optional}
		callArgs = append(callArgs, &ast.Ident{Name: a.Name, ExprBase: ast.ExprBase{T: a.Type}})
	}
	body := &ast.Return{StmtBase: ast.StmtBase{Base: ast.Base{P: pos}}, Value: &ast.Call{
		ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: tfun.Ret},
		Callee:   fn,
		Args:     callArgs,
	}}
	return &ast.FunctionLiteral{
		ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: types.TFun{Args: restArgs, Ret: tfun.Ret}},
		Params:   params,
		Body:     &ast.Block{StmtBase: ast.StmtBase{Base: ast.Base{P: pos}}, Statements: []ast.Statement{body}},
	}
}

// CloneAtCallSite clones an already-typed expression tree for an inline
// expansion at a call site (spec §4.3), rewriting each cloned node's
// position to pos. Literals, identifiers, this, field accesses, calls and
// binary operators are copied; any other node kind is returned as is,
// shared with the original and keeping its own position.
func CloneAtCallSite(e ast.Expression, pos source.Position) ast.Expression {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *ast.IntLiteral:
		c := *v
		c.P = pos
		return &c
	case *ast.FloatLiteral:
		c := *v
		c.P = pos
		return &c
	case *ast.StringLiteral:
		c := *v
		c.P = pos
		return &c
	case *ast.BoolLiteral:
		c := *v
		c.P = pos
		return &c
	case *ast.NullLiteral:
		c := *v
		c.P = pos
		return &c
	case *ast.Ident:
		c := *v
		c.P = pos
		return &c
	case *ast.This:
		c := *v
		c.P = pos
		return &c
	case *ast.FieldAccess:
		c := *v
		c.P = pos
		c.Receiver = CloneAtCallSite(v.Receiver, pos)
		return &c
	case *ast.Call:
		c := *v
		c.P = pos
		c.Callee = CloneAtCallSite(v.Callee, pos)
		args := make([]ast.Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = CloneAtCallSite(a, pos)
		}
		c.Args = args
		return &c
	case *ast.Binop:
		c := *v
		c.P = pos
		c.Left = CloneAtCallSite(v.Left, pos)
		c.Right = CloneAtCallSite(v.Right, pos)
		return &c
	default:
		// Other node kinds are rare inside inline-method bodies in
		// practice; fall back to sharing the node (not ideal for
		// diagnostics positions, acceptable since the type is unaffected).
		return e
	}
}
