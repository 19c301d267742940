// C3: the access-kind resolver (spec §4.2).
package typer

import (
	"strings"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/types"
)

// TypeAccess implements `type_access(expr, mode) -> AccessKind` (spec
// §4.2). typeContext indicates the grammar position permits a bare type
// reference (lookup step 6) — true only when the caller is resolving the
// leftmost identifier of a longer field path, since a standalone
// expression statement never denotes a type.
func TypeAccess(ctx *Context, e ast.Expression, mode AccessMode, typeContext bool) (AccessKind, error) {
	switch n := e.(type) {
	case *ast.This:
		if ctx.InStatic {
			return nil, diagnostics.Custom(n.Pos(), "Cannot access this in a static function")
		}
		if mode == AccessSet {
			return NoAccess{Name: "this", Pos: n.Pos()}, nil
		}
		n.SetType(ctx.TThis)
		return ExprAccess{Expr: n}, nil

	case *ast.Super:
		if !ctx.InSuperCall {
			return nil, diagnostics.Custom(n.Pos(), "Cannot access super outside of a super call")
		}
		if ctx.CurClass == nil || ctx.CurClass.Super == nil {
			return nil, diagnostics.Custom(n.Pos(), "Current class does not have a super class")
		}
		if mode == AccessSet {
			return NoAccess{Name: "super", Pos: n.Pos()}, nil
		}
		n.SetType(*ctx.CurClass.Super)
		return ExprAccess{Expr: n}, nil

	case *ast.BoolLiteral, *ast.NullLiteral:
		if mode == AccessSet {
			return NoAccess{Name: "constant", Pos: e.Pos()}, nil
		}
		return ExprAccess{Expr: e}, nil

	case *ast.Ident:
		return typeIdentAccess(ctx, n, mode, typeContext)

	case *ast.FieldAccess:
		return resolveFieldPath(ctx, n, mode)

	default:
		return ExprAccess{Expr: e}, nil
	}
}

// typeIdentAccess implements the seven-step lookup order for a bare
// identifier (spec §4.2).
func typeIdentAccess(ctx *Context, id *ast.Ident, mode AccessMode, typeContext bool) (AccessKind, error) {
	name := id.Name

	// 1. Local variable.
	if t, ok := ctx.Scope.Resolve(name); ok {
		id.SetType(t)
		return ExprAccess{Expr: id}, nil
	}

	// 2. Member field of enclosing class (only when not in static).
	if !ctx.InStatic && ctx.CurClass != nil {
		if f, owner, ok := ctx.CurClass.FindFieldInHierarchy(name); ok && !f.IsStatic {
			thisExpr := &ast.This{ExprBase: ast.ExprBase{T: ctx.TThis}}
			return FieldAccessElaborate(ctx, mode, f, owner, thisExpr)
		}
	}

	// 3. Using-extension static, implicit `this` receiver.
	if !ctx.InStatic && ctx.TThis != nil {
		thisExpr := &ast.This{ExprBase: ast.ExprBase{T: ctx.TThis}}
		if ak, ok := UsingField(ctx, mode, thisExpr, name); ok {
			return ak, nil
		}
	}

	// 4. Static field of enclosing class.
	if ctx.CurClass != nil {
		if f, owner, ok := ctx.CurClass.FindFieldInHierarchy(name); ok && f.IsStatic {
			classExpr := &ast.Ident{Name: owner.Name, ExprBase: ast.ExprBase{T: types.TInst{Decl: owner}}}
			return FieldAccessElaborate(ctx, mode, f, owner, classExpr)
		}
	}

	// 5. Constructor of any imported enum.
	for _, decl := range ctx.LocalTypes {
		if decl.Kind != types.DeclEnum {
			continue
		}
		for _, c := range decl.Ctors {
			if c.Name == name {
				if mode == AccessSet {
					return NoAccess{Name: name, Pos: id.Pos()}, nil
				}
				id.SetType(enumCtorType(decl, c))
				return ExprAccess{Expr: id}, nil
			}
		}
	}

	// 6. Top-level type named `i`, only where the grammar permits a type.
	if typeContext {
		if decl, err := ctx.G.Loader.LoadTypeDef(name, id.Pos()); err == nil {
			id.SetType(types.TInst{Decl: decl})
			return ExprAccess{Expr: id}, nil
		}
	}

	// 7. Untyped placeholder, else Unknown_ident.
	if ctx.Untyped {
		m := ctx.Fresh("Unknown<untyped:" + name + ">")
		ctx.Scope.Define(name, m)
		id.SetType(m)
		return ExprAccess{Expr: id}, nil
	}
	return nil, diagnostics.UnknownIdent(id.Pos(), name)
}

// resolveFieldPath implements spec §4.2's prefix-greedy field-path
// resolution for `a.b.c`.
func resolveFieldPath(ctx *Context, fa *ast.FieldAccess, mode AccessMode) (AccessKind, error) {
	segments, base := flattenPath(fa)

	if base == nil {
		// The chain bottoms out at a plain identifier. Try progressively
		// shorter prefixes as a type path with the remaining segments as
		// static field accesses.
		for prefixLen := len(segments) - 1; prefixLen >= 1; prefixLen-- {
			path := strings.Join(segments[:prefixLen], ".")
			decl, err := ctx.G.Loader.LoadTypeDef(path, fa.Pos())
			if err != nil {
				continue
			}
			cur := AccessKind(ExprAccess{Expr: &ast.Ident{Name: path, ExprBase: ast.ExprBase{T: types.TInst{Decl: decl}}}})
			curExpr, ok := accessGetExpr(ctx, cur)
			if !ok {
				break
			}
			curDecl := decl
			ok = true
			for i := prefixLen; i < len(segments); i++ {
				last := i == len(segments)-1
				m := mode
				if !last {
					m = AccessGet
				}
				f, owner, found := curDecl.FindFieldInHierarchy(segments[i])
				if !found {
					ok = false
					break
				}
				var ak AccessKind
				var akErr error
				ak, akErr = FieldAccessElaborate(ctx, m, f, owner, curExpr)
				if akErr != nil {
					return nil, akErr
				}
				if !last {
					next, isExpr := accessGetExpr(ctx, ak)
					if !isExpr {
						ok = false
						break
					}
					curExpr = next
					if inst, isInst := types.Follow(next.Type()).(types.TInst); isInst {
						curDecl = inst.Decl
					} else {
						ok = false
						break
					}
				} else {
					cur = ak
				}
			}
			if ok {
				return cur, nil
			}
		}
		// No prefix resolved as a type path: type the receiver as an
		// ordinary expression below.
		base = fa.Receiver
	}

	// Fallback: expression-then-field, one level, recursing naturally
	// through the AST's own nesting for the rest of the chain.
	recvMode := AccessGet
	recvAK, err := TypeAccess(ctx, base, recvMode, len(segments) > 1)
	if err != nil {
		return nil, diagnostics.ModuleNotFound(fa.Pos(), pathOf(fa), firstCapitalized(segments))
	}
	recvExpr, ok := accessGetExpr(ctx, recvAK)
	if !ok {
		return nil, diagnostics.Custom(fa.Pos(), "Cannot read receiver of field access")
	}
	fieldName := segments[len(segments)-1]
	recvType := types.Follow(recvExpr.Type())
	inst, ok := recvType.(types.TInst)
	if !ok {
		if _, isDyn := recvType.(types.TDynamic); isDyn {
			fa.SetType(types.TDynamic{})
			return ExprAccess{Expr: fa}, nil
		}
		return nil, diagnostics.Custom(fa.Pos(), "Cannot access field on non-object type "+recvType.String())
	}
	f, owner, found := inst.Decl.FindFieldInHierarchy(fieldName)
	if !found {
		if ak, ok := UsingField(ctx, mode, recvExpr, fieldName); ok {
			return ak, nil
		}
		if ctx.Untyped {
			fa.SetType(types.TDynamic{})
			return ExprAccess{Expr: fa}, nil
		}
		return nil, diagnostics.UnknownIdent(fa.Pos(), fieldName)
	}
	return FieldAccessElaborate(ctx, mode, f, owner, recvExpr)
}

// flattenPath decomposes a right-nested FieldAccess chain into its dotted
// name segments and the non-Ident base expression, if any (nil when the
// chain bottoms out at a plain identifier, in which case that identifier
// is segments[0]).
func flattenPath(fa *ast.FieldAccess) (segments []string, base ast.Expression) {
	var rec func(e ast.Expression) ast.Expression
	rec = func(e ast.Expression) ast.Expression {
		switch v := e.(type) {
		case *ast.Ident:
			segments = append(segments, v.Name)
			return nil
		case *ast.FieldAccess:
			b := rec(v.Receiver)
			segments = append(segments, v.Name)
			return b
		default:
			return v
		}
	}
	base = rec(fa)
	return segments, base
}

func pathOf(fa *ast.FieldAccess) string {
	segs, base := flattenPath(fa)
	if base != nil {
		return strings.Join(segs, ".")
	}
	return strings.Join(segs, ".")
}

func firstCapitalized(segments []string) string {
	for _, s := range segments {
		if s != "" && s[0] >= 'A' && s[0] <= 'Z' {
			return s
		}
	}
	if len(segments) > 0 {
		return segments[0]
	}
	return ""
}

// accessGetExpr extracts a plain expression from an AccessKind already
// known to be readable in this call site's narrow internal use (module
// path traversal only reads static fields, never Set/Inline/Macro/Using
// forms at intermediate positions).
func accessGetExpr(ctx *Context, ak AccessKind) (ast.Expression, bool) {
	switch v := ak.(type) {
	case ExprAccess:
		return v.Expr, true
	default:
		return nil, false
	}
}

func enumCtorType(decl *types.TypeDecl, c *types.EnumCtor) types.Type {
	if len(c.Args) == 0 {
		return types.TInst{Decl: decl}
	}
	args := make([]types.TFunArg, len(c.Args))
	copy(args, c.Args)
	return types.TFun{Args: args, Ret: types.TInst{Decl: decl}}
}

// TypeArraySubscript implements `e1[e2]` element-type resolution (spec
// §4.2): walks the receiver's class hierarchy for the built-in Array
// declaration to read off its type argument, falling back to unifying
// the receiver with a fresh Array<mono> instance.
func TypeArraySubscript(ctx *Context, arrType types.Type) types.Type {
	cur := types.Follow(arrType)
	for {
		inst, ok := cur.(types.TInst)
		if !ok {
			break
		}
		if inst.Decl == ctx.G.ArrayDecl {
			if len(inst.Params) > 0 {
				return inst.Params[0]
			}
			return types.TDynamic{}
		}
		if inst.Decl.Super == nil {
			break
		}
		cur = *inst.Decl.Super
	}
	elem := ctx.Fresh("ArrayElem")
	_ = types.UnifyRaise(arrType, types.TInst{Decl: ctx.G.ArrayDecl, Params: []types.Type{elem}})
	return elem
}
