package typer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

func thisOf(ctx *Context, owner *types.TypeDecl) ast.Expression {
	return &ast.This{ExprBase: ast.ExprBase{Base: ast.Base{P: source.Position{Line: 1}}, T: types.TInst{Decl: owner}}}
}

func TestFieldAccessVarAccNormalGetIsPlainField(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Point"}
	f := &types.Field{Name: "x", Type: intTypeOf(ctx), Kind: types.FieldVar, ReadMode: types.AccNormal, Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessGet, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	expr := ak.(ExprAccess)
	_, ok := expr.Expr.(*ast.FieldAccess)
	assert.True(t, ok)
}

// A read-only function-typed field is a closure even in Get mode, never a
// direct field read (spec's closure-emission rule).
func TestFieldAccessVarAccNormalFunctionTypedIsClosure(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Holder"}
	fnType := types.TFun{Ret: intTypeOf(ctx)}
	f := &types.Field{Name: "onTick", Type: fnType, Kind: types.FieldVar, ReadMode: types.AccNormal, WriteMode: types.AccNever, Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessGet, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	expr := ak.(ExprAccess)
	cl := expr.Expr.(*ast.Closure)
	assert.Equal(t, fnType, cl.Type())
	assert.Equal(t, "onTick", cl.Method)
}

func TestFieldAccessVarAccNoInsideHierarchyIsReadable(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Base"}
	f := &types.Field{Name: "secret", Type: intTypeOf(ctx), Kind: types.FieldVar, ReadMode: types.AccNo, Owner: owner}
	ctx.CurClass = owner

	ak, err := FieldAccessElaborate(ctx, AccessGet, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	_, ok := ak.(ExprAccess)
	assert.True(t, ok)
}

func TestFieldAccessVarAccNoOutsideHierarchyIsNoAccess(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Base"}
	f := &types.Field{Name: "secret", Type: intTypeOf(ctx), Kind: types.FieldVar, ReadMode: types.AccNo, Owner: owner}
	ctx.CurClass = &types.TypeDecl{Kind: types.DeclClass, Name: "Unrelated"}

	ak, err := FieldAccessElaborate(ctx, AccessGet, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	_, ok := ak.(NoAccess)
	assert.True(t, ok)
}

func TestFieldAccessVarAccCallYieldsSetAccessOnWrite(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Point"}
	f := &types.Field{Name: "x", Type: intTypeOf(ctx), Kind: types.FieldVar, WriteMode: types.AccCall, WriteAccessor: "set_x", Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessSet, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	set, ok := ak.(SetAccess)
	require.True(t, ok)
	assert.Equal(t, "set_x", set.Setter)
	assert.Equal(t, "x", set.FieldName)
}

func TestFieldAccessVarAccCallYieldsCallOnRead(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Point"}
	f := &types.Field{Name: "x", Type: intTypeOf(ctx), Kind: types.FieldVar, ReadMode: types.AccCall, ReadAccessor: "get_x", Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessGet, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	expr := ak.(ExprAccess)
	call, ok := expr.Expr.(*ast.Call)
	require.True(t, ok)
	fa := call.Callee.(*ast.FieldAccess)
	assert.Equal(t, "get_x", fa.Name)
}

// The self-accessor exception: inside get_x's own body, reading x reads
// the stored field directly rather than recursing into get_x again.
func TestFieldAccessVarAccCallSelfAccessorReadsFieldDirectly(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Point"}
	f := &types.Field{Name: "x", Type: intTypeOf(ctx), Kind: types.FieldVar, ReadMode: types.AccCall, ReadAccessor: "get_x", Owner: owner}
	ctx.CurClass = owner
	ctx.CurMethod = "get_x"

	ak, err := FieldAccessElaborate(ctx, AccessGet, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	expr := ak.(ExprAccess)
	fa, ok := expr.Expr.(*ast.FieldAccess)
	require.True(t, ok)
	assert.Equal(t, "x", fa.Name)
}

func TestFieldAccessVarAccNeverIsAlwaysNoAccess(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Point"}
	f := &types.Field{Name: "ghost", Type: intTypeOf(ctx), Kind: types.FieldVar, ReadMode: types.AccNever, Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessGet, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	_, ok := ak.(NoAccess)
	assert.True(t, ok)
}

func TestFieldAccessMethodNormalSetIsError(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Point"}
	f := &types.Field{Name: "move", Type: types.TFun{Ret: types.TInst{Decl: ctx.G.VoidDecl}}, Kind: types.FieldMethod, Method: types.MethodNormal, Owner: owner}

	_, err := FieldAccessElaborate(ctx, AccessSet, f, owner, thisOf(ctx, owner))
	require.Error(t, err)
}

func TestFieldAccessMethodNormalCallIsCallTarget(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Point"}
	f := &types.Field{Name: "move", Type: types.TFun{Ret: intTypeOf(ctx)}, Kind: types.FieldMethod, Method: types.MethodNormal, Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessCall, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	_, ok := ak.(ExprAccess)
	assert.True(t, ok)
}

func TestFieldAccessMethodNormalGetIsClosure(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Point"}
	f := &types.Field{Name: "move", Type: types.TFun{Ret: intTypeOf(ctx)}, Kind: types.FieldMethod, Method: types.MethodNormal, Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessGet, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	expr := ak.(ExprAccess)
	cl := expr.Expr.(*ast.Closure)
	assert.Equal(t, "move", cl.Method)
}

func TestFieldAccessMacroMethodIsMacroAccess(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Context"}
	f := &types.Field{Name: "build", Type: types.TFun{Ret: types.TDynamic{}}, Kind: types.FieldMethod, Method: types.MethodMacro, Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessCall, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	_, ok := ak.(MacroAccess)
	assert.True(t, ok)
}

func TestFieldAccessInlineMethodIsInlineAccess(t *testing.T) {
	ctx, _, _ := newTestContext()
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Math"}
	f := &types.Field{Name: "sq", Type: types.TFun{Ret: intTypeOf(ctx)}, Kind: types.FieldMethod, Method: types.MethodInline, Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessCall, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	_, ok := ak.(InlineAccess)
	assert.True(t, ok)
}

// The -no-inline flag downgrades an inline method to a plain closure.
func TestFieldAccessInlineMethodNoInlineFlagIsClosure(t *testing.T) {
	ctx, _, _ := newTestContext()
	ctx.G.NoInline = true
	owner := &types.TypeDecl{Kind: types.DeclClass, Name: "Math"}
	f := &types.Field{Name: "sq", Type: types.TFun{Ret: intTypeOf(ctx)}, Kind: types.FieldMethod, Method: types.MethodInline, Owner: owner}

	ak, err := FieldAccessElaborate(ctx, AccessCall, f, owner, thisOf(ctx, owner))
	require.NoError(t, err)
	expr, ok := ak.(ExprAccess)
	require.True(t, ok)
	_, ok = expr.Expr.(*ast.Closure)
	assert.True(t, ok)
}
