// Statement-level typing (spec §4.5): control flow, declarations, and the
// non-local exits. StmtType mirrors ExprType's role for the statement
// grammar; needVal threads "the enclosing position wants a value" down
// into switch/if so their arms may be typed as expressions rather than
// defaulting to void.
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/types"
)

// StmtType types s in place, returning the (possibly rewritten) node.
func StmtType(ctx *Context, s ast.Statement, needVal bool) (ast.Statement, error) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		typed, err := ExprType(ctx, n.Expr)
		if err != nil {
			return nil, err
		}
		n.Expr = typed
		return n, nil

	case *ast.VarDecl:
		return typeVarDecl(ctx, n)

	case *ast.Block:
		return typeBlock(ctx, n, needVal)

	case *ast.If:
		return typeIf(ctx, n, needVal)

	case *ast.While:
		return typeWhile(ctx, n)

	case *ast.For:
		return TypeFor(ctx, n)

	case *ast.Switch:
		_, err := typeSwitch(ctx, n, needVal)
		return n, err

	case *ast.Try:
		return TypeTry(ctx, n)

	case *ast.Return:
		return typeReturn(ctx, n)

	case *ast.Break:
		if !ctx.InLoop {
			return nil, diagnostics.Custom(n.Pos(), "break outside of a loop")
		}
		return n, nil

	case *ast.Continue:
		if !ctx.InLoop {
			return nil, diagnostics.Custom(n.Pos(), "continue outside of a loop")
		}
		return n, nil

	case *ast.Throw:
		val, err := ExprType(ctx, n.Value)
		if err != nil {
			return nil, err
		}
		n.Value = val
		return n, nil

	default:
		return nil, diagnostics.Custom(s.Pos(), "Unsupported statement form")
	}
}

func typeVarDecl(ctx *Context, n *ast.VarDecl) (ast.Statement, error) {
	var declared types.Type
	if n.TypeAnnotation != nil {
		t, err := ctx.G.Loader.LoadComplexType(n.Pos(), n.TypeAnnotation)
		if err != nil {
			return nil, err
		}
		declared = t
	}

	if n.Init == nil {
		if declared == nil {
			declared = ctx.Fresh(n.Name)
		}
		ctx.Scope.Define(n.Name, declared)
		return n, nil
	}

	init, err := typeExprHinted(ctx, n.Init, declared)
	if err != nil {
		return nil, err
	}
	n.Init = init
	if declared == nil {
		declared = init.Type()
	} else if err := types.UnifyRaise(init.Type(), declared); err != nil {
		return nil, diagnostics.Unify(n.Pos(), init.Type(), declared, "")
	}
	ctx.Scope.Define(n.Name, declared)
	return n, nil
}

func typeBlock(ctx *Context, n *ast.Block, needVal bool) (ast.Statement, error) {
	child := ctx.EnterBlock()
	for i, st := range n.Statements {
		last := i == len(n.Statements)-1
		typed, err := StmtType(child, st, needVal && last)
		if err != nil {
			return nil, err
		}
		n.Statements[i] = typed
	}
	return n, nil
}

func typeIf(ctx *Context, n *ast.If, needVal bool) (ast.Statement, error) {
	cond, err := typeExprHinted(ctx, n.Cond, boolTypeOf(ctx))
	if err != nil {
		return nil, err
	}
	n.Cond = cond
	if err := types.UnifyRaise(cond.Type(), boolTypeOf(ctx)); err != nil {
		return nil, diagnostics.Unify(n.Pos(), cond.Type(), boolTypeOf(ctx), "")
	}
	then, err := StmtType(ctx, n.Then, needVal)
	if err != nil {
		return nil, err
	}
	n.Then = then
	if n.Else != nil {
		els, err := StmtType(ctx, n.Else, needVal)
		if err != nil {
			return nil, err
		}
		n.Else = els
	} else if needVal {
		return nil, diagnostics.Custom(n.Pos(), "If-expression without else cannot produce a value")
	}
	return n, nil
}

func typeWhile(ctx *Context, n *ast.While) (ast.Statement, error) {
	cond, err := typeExprHinted(ctx, n.Cond, boolTypeOf(ctx))
	if err != nil {
		return nil, err
	}
	n.Cond = cond
	if err := types.UnifyRaise(cond.Type(), boolTypeOf(ctx)); err != nil {
		return nil, diagnostics.Unify(n.Pos(), cond.Type(), boolTypeOf(ctx), "")
	}
	child := ctx.EnterBlock()
	child.InLoop = true
	body, err := StmtType(child, n.Body, false)
	if err != nil {
		return nil, err
	}
	n.Body = body
	return n, nil
}

func typeReturn(ctx *Context, n *ast.Return) (ast.Statement, error) {
	if n.Value == nil {
		if ctx.Ret != nil {
			if err := types.UnifyRaise(ctx.Ret, voidType(ctx)); err != nil {
				return nil, diagnostics.Custom(n.Pos(), "Must return a value of type "+ctx.Ret.String())
			}
		}
		return n, nil
	}
	val, err := typeExprHinted(ctx, n.Value, ctx.Ret)
	if err != nil {
		return nil, err
	}
	n.Value = val
	if ctx.Ret != nil {
		if err := types.UnifyRaise(val.Type(), ctx.Ret); err != nil {
			return nil, diagnostics.Unify(n.Pos(), val.Type(), ctx.Ret, "")
		}
	}
	return n, nil
}
