// Operator typing (spec §4.5 "Operator typing (binop)").
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

func isArith(op string) bool {
	switch op {
	case "+", "-", "*", "/", "%":
		return true
	}
	return false
}

func isBitwiseOrShift(op string) bool {
	switch op {
	case "&", "|", "^", "<<", ">>", ">>>":
		return true
	}
	return false
}

func isEquality(op string) bool {
	return op == "==" || op == "!="
}

func isOrdering(op string) bool {
	switch op {
	case "<", "<=", ">", ">=":
		return true
	}
	return false
}

func isBoolOp(op string) bool {
	return op == "&&" || op == "||"
}

// TypeBinop implements the full operator-typing table of spec §4.5.
func TypeBinop(ctx *Context, op string, left, right ast.Expression) (types.Type, error) {
	lt, rt := left.Type(), right.Type()
	pos := left.Pos()

	switch {
	case op == "...":
		if err := types.UnifyRaise(lt, intTypeOf(ctx)); err != nil {
			return nil, diagnostics.Unify(pos, lt, intTypeOf(ctx), "")
		}
		if err := types.UnifyRaise(rt, intTypeOf(ctx)); err != nil {
			return nil, diagnostics.Unify(pos, rt, intTypeOf(ctx), "")
		}
		if ctx.G.ArrayDecl != nil {
			return types.TInst{Decl: ctx.G.ArrayDecl, Params: []types.Type{intTypeOf(ctx)}}, nil
		}
		return intTypeOf(ctx), nil

	case isBoolOp(op):
		b := boolTypeOf(ctx)
		if err := types.UnifyRaise(lt, b); err != nil {
			return nil, diagnostics.Unify(pos, lt, b, "")
		}
		if err := types.UnifyRaise(rt, b); err != nil {
			return nil, diagnostics.Unify(pos, rt, b, "")
		}
		return b, nil

	case isEquality(op):
		if types.UnifyRaise(lt, rt) != nil {
			if types.UnifyRaise(rt, lt) != nil {
				return nil, diagnostics.Unify(pos, lt, rt, "")
			}
		}
		return boolTypeOf(ctx), nil

	case isOrdering(op):
		return typeOrdering(ctx, lt, rt, pos)

	case isBitwiseOrShift(op):
		i := intTypeOf(ctx)
		if err := types.UnifyRaise(lt, i); err != nil {
			return nil, diagnostics.Unify(pos, lt, i, "")
		}
		if err := types.UnifyRaise(rt, i); err != nil {
			return nil, diagnostics.Unify(pos, rt, i, "")
		}
		return i, nil

	case isArith(op):
		return typeArith(ctx, op, lt, rt, pos)

	default:
		return nil, diagnostics.Custom(pos, "Unsupported operator "+op)
	}
}

func typeOrdering(ctx *Context, lt, rt types.Type, pos source.Position) (types.Type, error) {
	lk := types.Classify(lt, ctx.G.NumericTags)
	rk := types.Classify(rt, ctx.G.NumericTags)
	switch {
	case (lk == types.KInt || lk == types.KFloat) && (rk == types.KInt || rk == types.KFloat):
		return boolTypeOf(ctx), nil
	case lk == types.KString && rk == types.KString:
		return boolTypeOf(ctx), nil
	case lk == types.KDyn || rk == types.KDyn:
		return boolTypeOf(ctx), nil
	case lk == types.KParam && rk == types.KParam:
		return boolTypeOf(ctx), nil
	default:
		return nil, diagnostics.Custom(pos, "Cannot compare "+lt.String()+" and "+rt.String())
	}
}

// typeArith implements the `+`/`-`/`*`/`/`/`%` result table (spec §4.5).
func typeArith(ctx *Context, op string, lt, rt types.Type, pos source.Position) (types.Type, error) {
	tags := ctx.G.NumericTags
	lk := types.Classify(lt, tags)
	rk := types.Classify(rt, tags)

	// String wins on either side for `+`; String is invalid for other
	// arithmetic operators.
	if op == "+" {
		if lk == types.KString || rk == types.KString {
			if rk == types.KString {
				return rt, nil
			}
			return lt, nil
		}
	}
	if lk == types.KDyn {
		return lt, nil
	}
	if rk == types.KDyn {
		return rt, nil
	}

	switch {
	case lk == types.KInt && rk == types.KInt:
		if op == "/" {
			return floatTypeOf(ctx), nil
		}
		return lt, nil

	case (lk == types.KFloat && (rk == types.KInt || rk == types.KFloat)) ||
		(rk == types.KFloat && lk == types.KInt):
		return floatTypeOf(ctx), nil

	case lk == types.KUnk && rk == types.KInt:
		if types.UnifyInt(lt, rt, tags) {
			return intTypeOf(ctx), nil
		}
		return floatTypeOf(ctx), nil

	case rk == types.KUnk && lk == types.KInt:
		if types.UnifyInt(rt, lt, tags) {
			return intTypeOf(ctx), nil
		}
		return floatTypeOf(ctx), nil

	case lk == types.KUnk:
		if err := types.UnifyRaise(lt, rt); err != nil {
			return nil, diagnostics.Unify(pos, lt, rt, "")
		}
		return lt, nil

	case rk == types.KUnk:
		if err := types.UnifyRaise(rt, lt); err != nil {
			return nil, diagnostics.Unify(pos, rt, lt, "")
		}
		return rt, nil

	case lk == types.KParam && rk == types.KParam:
		if types.UnifyRaise(lt, rt) == nil {
			return lt, nil
		}
		return nil, diagnostics.Custom(pos, "Cannot unify type parameters")

	case lk == types.KParam && rk == types.KInt:
		if op == "/" {
			return floatTypeOf(ctx), nil
		}
		return lt, nil

	case lk == types.KParam && rk == types.KFloat:
		return floatTypeOf(ctx), nil

	case rk == types.KParam && lk == types.KInt:
		if op == "/" {
			return floatTypeOf(ctx), nil
		}
		return rt, nil

	case rk == types.KParam && lk == types.KFloat:
		return floatTypeOf(ctx), nil

	default:
		return nil, diagnostics.Custom(pos, "Cannot use operator "+op+" on "+lt.String()+" and "+rt.String())
	}
}

func intTypeOf(ctx *Context) types.Type {
	if ctx.G.NumericTags.Int == nil {
		return types.TDynamic{}
	}
	return types.TInst{Decl: ctx.G.NumericTags.Int}
}

func floatTypeOf(ctx *Context) types.Type {
	if ctx.G.NumericTags.Float == nil {
		return types.TDynamic{}
	}
	return types.TInst{Decl: ctx.G.NumericTags.Float}
}

func boolTypeOf(ctx *Context) types.Type {
	if ctx.G.BoolDecl == nil {
		return types.TDynamic{}
	}
	return types.TInst{Decl: ctx.G.BoolDecl}
}
