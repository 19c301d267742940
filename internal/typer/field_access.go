// C5: the field-access elaborator (spec §4.3).
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/types"
)

// FieldAccessElaborate implements `field_access(mode, field, type,
// receiver) -> AccessKind`, the property dispatch table of spec §4.3.
func FieldAccessElaborate(ctx *Context, mode AccessMode, f *types.Field, owner *types.TypeDecl, receiver ast.Expression) (AccessKind, error) {
	if f.Kind == types.FieldMethod {
		return fieldAccessMethod(ctx, mode, f, owner, receiver)
	}
	return fieldAccessVar(ctx, mode, f, owner, receiver)
}

func fieldAccessMethod(ctx *Context, mode AccessMode, f *types.Field, owner *types.TypeDecl, receiver ast.Expression) (AccessKind, error) {
	switch f.Method {
	case types.MethodNormal:
		if mode == AccessSet {
			return nil, diagnostics.Custom(receiver.Pos(), "Cannot rebind method "+f.Name)
		}
		if mode == AccessCall {
			return closureOrCallTarget(f, receiver), nil
		}
		// Get: closure over receiver.
		return ExprAccess{Expr: methodClosure(f, receiver)}, nil

	case types.MethodMacro:
		if mode == AccessSet {
			return nil, diagnostics.Custom(receiver.Pos(), "Cannot rebind macro "+f.Name)
		}
		return MacroAccess{Receiver: receiver, Field: f}, nil

	case types.MethodInline:
		if mode == AccessSet {
			return nil, diagnostics.Custom(receiver.Pos(), "Cannot rebind inline method "+f.Name)
		}
		if ctx.G.NoInline {
			return ExprAccess{Expr: methodClosure(f, receiver)}, nil
		}
		return InlineAccess{Receiver: receiver, Field: f, Type: f.Type}, nil

	case types.MethodDynamic:
		// Settable, plain Expr either way.
		return ExprAccess{Expr: fieldExpr(f, receiver)}, nil

	default:
		return ExprAccess{Expr: fieldExpr(f, receiver)}, nil
	}
}

func fieldAccessVar(ctx *Context, mode AccessMode, f *types.Field, owner *types.TypeDecl, receiver ast.Expression) (AccessKind, error) {
	readAccessor := f.ReadMode
	writeAccessor := f.WriteMode
	accMode := readAccessor
	if mode == AccessSet {
		accMode = writeAccessor
	}

	switch accMode {
	case types.AccNormal:
		if mode == AccessSet {
			return ExprAccess{Expr: fieldExpr(f, receiver)}, nil
		}
		// Get of a read-only function-typed field must be a closure, not
		// a direct field read (spec §4.3 "Closure emission rule").
		readOnly := writeAccessor == types.AccNo || writeAccessor == types.AccNever
		if _, isFun := types.Follow(f.Type).(types.TFun); isFun && readOnly {
			return ExprAccess{Expr: methodClosure(f, receiver)}, nil
		}
		return ExprAccess{Expr: fieldExpr(f, receiver)}, nil

	case types.AccNo:
		if ctx.CurClass != nil && ctx.CurClass.IsSubclassOf(owner) {
			return ExprAccess{Expr: fieldExpr(f, receiver)}, nil
		}
		return NoAccess{Name: f.Name, Pos: receiver.Pos()}, nil

	case types.AccCall:
		accessor := f.ReadAccessor
		if mode == AccessSet {
			accessor = f.WriteAccessor
		}
		if isSelfAccessorCall(ctx, owner, accessor) {
			return ExprAccess{Expr: fieldExpr(f, receiver)}, nil
		}
		if mode == AccessSet {
			return SetAccess{Receiver: receiver, Setter: accessor, PropType: f.Type, FieldName: f.Name}, nil
		}
		return ExprAccess{Expr: &ast.Call{
			ExprBase: ast.ExprBase{Base: ast.Base{P: receiver.Pos()}, T: f.Type},
			Callee:   methodRefExpr(accessor, receiver, types.TFun{Ret: f.Type}),
		}}, nil

	case types.AccResolve:
		if mode == AccessSet {
			return nil, diagnostics.Custom(receiver.Pos(), "Cannot write to resolve-backed field "+f.Name)
		}
		call := &ast.Call{
			ExprBase: ast.ExprBase{Base: ast.Base{P: receiver.Pos()}, T: f.Type},
			Callee:   methodRefExpr("resolve", receiver, types.TFun{Args: []types.TFunArg{{Name: "name", Type: ctx.stringType()}}, Ret: f.Type}),
			Args:     []ast.Expression{&ast.StringLiteral{ExprBase: ast.ExprBase{T: ctx.stringType()}, Value: f.Name}},
		}
		return ExprAccess{Expr: call}, nil

	case types.AccInline:
		if mode == AccessSet {
			return nil, diagnostics.Custom(receiver.Pos(), "Cannot rebind inline variable "+f.Name)
		}
		return InlineAccess{Receiver: receiver, Field: f, Type: f.Type}, nil

	case types.AccNever:
		return NoAccess{Name: f.Name, Pos: receiver.Pos()}, nil

	default:
		return ExprAccess{Expr: fieldExpr(f, receiver)}, nil
	}
}

// isSelfAccessorCall implements the "self-accessor exception" (spec
// §4.3): inside the body of accessor m, m's own field is read/written
// directly rather than recursing back into itself.
func isSelfAccessorCall(ctx *Context, owner *types.TypeDecl, accessor string) bool {
	return ctx.CurClass == owner && ctx.CurMethod == accessor
}

func fieldExpr(f *types.Field, receiver ast.Expression) ast.Expression {
	return &ast.FieldAccess{
		ExprBase: ast.ExprBase{Base: ast.Base{P: receiver.Pos()}, T: f.Type},
		Receiver: receiver,
		Name:     f.Name,
	}
}

func methodRefExpr(name string, receiver ast.Expression, t types.Type) ast.Expression {
	return &ast.FieldAccess{
		ExprBase: ast.ExprBase{Base: ast.Base{P: receiver.Pos()}, T: t},
		Receiver: receiver,
		Name:     name,
	}
}

// methodClosure synthesizes the explicit closure node required whenever
// a callable field/method is read without being called (spec §4.3
// closure-emission rule; S5).
func methodClosure(f *types.Field, receiver ast.Expression) ast.Expression {
	return &ast.Closure{
		ExprBase: ast.ExprBase{Base: ast.Base{P: receiver.Pos()}, T: f.Type},
		Receiver: receiver,
		Method:   f.Name,
	}
}

// closureOrCallTarget is used in AccessCall mode for an ordinary method:
// the caller (C6's call-expression typer) supplies the Args itself, so
// this just returns an Expr carrying the method's function type; the
// call site wraps it in ast.Call.
func closureOrCallTarget(f *types.Field, receiver ast.Expression) AccessKind {
	return ExprAccess{Expr: fieldExpr(f, receiver)}
}

func (ctx *Context) stringType() types.Type {
	if ctx.G.StringDecl == nil {
		return types.TDynamic{}
	}
	return types.TInst{Decl: ctx.G.StringDecl}
}
