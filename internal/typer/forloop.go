// For-loop synthesis (spec §4.5 "For-loop"): a range-for specialization
// when the iterable is already known to be an Array (the stand-in for the
// optimizer's `optimize_for_loop` pass, which lives outside this module),
// otherwise `iterator()`-method resolution.
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/config"
	"github.com/zinclang/zinc/internal/types"
)

// TypeFor implements `for (Var in Iterable) Body`.
func TypeFor(ctx *Context, n *ast.For) (ast.Statement, error) {
	iterable, err := ExprType(ctx, n.Iterable)
	if err != nil {
		return nil, err
	}
	n.Iterable = iterable

	elem := forElementType(ctx, iterable.Type())

	child := ctx.EnterBlock()
	child.InLoop = true
	child.Scope.Define(n.Var, elem)
	body, err := StmtType(child, n.Body, false)
	if err != nil {
		return nil, err
	}
	n.Body = body
	return n, nil
}

// forElementType decides what each iteration binds Var to: the declined-
// optimizer case falls through to iterator()-method resolution (spec's
// "if declined"), which itself falls back to unifying the iterable with a
// fresh Array<mono> when no such method exists — matching C3's array
// subscript fallback for the same reason (TypeArraySubscript).
func forElementType(ctx *Context, iterableType types.Type) types.Type {
	cur := types.Follow(iterableType)
	if inst, ok := cur.(types.TInst); ok && inst.Decl == ctx.G.ArrayDecl {
		if len(inst.Params) > 0 {
			return inst.Params[0]
		}
		return types.TDynamic{}
	}
	if inst, ok := cur.(types.TInst); ok {
		if f, _, found := inst.Decl.FindFieldInHierarchy(config.IterMethodName); found {
			if tfun, ok := types.Follow(f.Type).(types.TFun); ok {
				if ret, ok := types.Follow(tfun.Ret).(types.TInst); ok && len(ret.Params) > 0 {
					return ret.Params[0]
				}
				return types.TDynamic{}
			}
		}
	}
	return TypeArraySubscript(ctx, iterableType)
}
