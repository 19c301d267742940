// C4: the call-parameter matcher (spec §4.4).
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

// PosInfosPath is the distinguished type-path default-value synthesis
// checks for (spec §4.4 "Default-value synthesis").
const PosInfosPath = "haxe.PosInfos"

// UnifyCallParams implements `unify_call_params(name, actuals, formals,
// pos, inline) -> [typed actuals]`.
func UnifyCallParams(ctx *Context, name string, actuals []ast.Expression, formals []types.TFunArg, pos source.Position, inline bool) ([]ast.Expression, error) {
	out := make([]ast.Expression, 0, len(formals))
	ai := 0
	skips := 0
	var lastSkipErr error

	for fi := 0; fi < len(formals); fi++ {
		formal := formals[fi]
		if ai >= len(actuals) {
			if formal.Optional {
				out = append(out, defaultValue(ctx, formal, pos))
				continue
			}
			return nil, tooFewArgs(name, pos, len(actuals), len(formals))
		}

		typed, err := typeExprHinted(ctx, actuals[ai], formal.Type)
		if err == nil {
			if uerr := types.UnifyRaise(typed.Type(), formal.Type); uerr == nil {
				out = append(out, typed)
				ai++
				continue
			}
			err = diagnostics.Unify(pos, typed.Type(), formal.Type, argContext(name, formal))
		}

		if formal.Optional {
			skips++
			lastSkipErr = err
			out = append(out, defaultValue(ctx, formal, pos))
			continue
		}
		return nil, err
	}

	if ai < len(actuals) {
		if skips == 1 && lastSkipErr != nil {
			return nil, lastSkipErr
		}
		return nil, tooManyArgs(name, pos, len(actuals), len(formals))
	}

	if !inline && ctx.G.Backend.trimsOptionalNullTail() {
		out = trimOptionalNullTail(out, formals)
	}
	return out, nil
}

func argContext(name string, formal types.TFunArg) string {
	kind := "required"
	if formal.Optional {
		kind = "optional"
	}
	return "For " + kind + " argument '" + formal.Name + "' of " + name
}

func tooFewArgs(name string, pos source.Position, got, want int) error {
	return diagnostics.Custom(pos, "Not enough arguments to "+name)
}

func tooManyArgs(name string, pos source.Position, got, want int) error {
	return diagnostics.Custom(pos, "Too many arguments to "+name)
}

// defaultValue synthesizes the value for a skipped/omitted optional
// formal (spec §4.4): a PosInfos record for that distinguished alias,
// otherwise a typed null.
func defaultValue(ctx *Context, formal types.TFunArg, pos source.Position) ast.Expression {
	if inst, ok := types.Follow(formal.Type).(types.TInst); ok && inst.Decl != nil && inst.Decl.Module+"."+inst.Decl.Name == PosInfosPath {
		return &ast.ObjectLiteral{
			ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: formal.Type},
			Fields: []ast.ObjectField{
				{Name: "fileName", Value: &ast.StringLiteral{ExprBase: ast.ExprBase{T: ctx.stringType()}, Value: pos.File}},
				{Name: "lineNumber", Value: &ast.IntLiteral{ExprBase: ast.ExprBase{T: intTypeOf(ctx)}, Value: int64(pos.Line)}},
				{Name: "className", Value: &ast.StringLiteral{ExprBase: ast.ExprBase{T: ctx.stringType()}, Value: className(ctx)}},
				{Name: "methodName", Value: &ast.StringLiteral{ExprBase: ast.ExprBase{T: ctx.stringType()}, Value: ctx.CurMethod}},
			},
		}
	}
	t := types.NullOf(formal.Type, ctx.G.Backend.liftsValueTypes(), ctx.G.NullableDecl)
	return &ast.NullLiteral{ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: t}}
}

func className(ctx *Context) string {
	if ctx.CurClass == nil {
		return ""
	}
	return ctx.CurClass.Name
}

// trimOptionalNullTail drops trailing optional arguments whose call-site
// value is a literal null, for backends that cannot represent a null
// argument slot (spec §4.4 "Optional-tail trimming").
func trimOptionalNullTail(out []ast.Expression, formals []types.TFunArg) []ast.Expression {
	end := len(out)
	for end > 0 {
		i := end - 1
		if i >= len(formals) || !formals[i].Optional {
			break
		}
		if _, isNull := out[i].(*ast.NullLiteral); !isNull {
			break
		}
		end--
	}
	return out[:end]
}
