package typer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

func TestUsingFieldMatchesCompatibleStaticExtension(t *testing.T) {
	ctx, _, _ := newTestContext()
	ext := &types.TypeDecl{Kind: types.DeclClass, Name: "IntTools"}
	ext.Fields = []*types.Field{{
		Name: "double", Owner: ext, Kind: types.FieldMethod, IsStatic: true,
		Type: types.TFun{Args: []types.TFunArg{{Name: "n", Type: intTypeOf(ctx)}}, Ret: intTypeOf(ctx)},
	}}
	ctx.Using.Add(ext)

	receiver := litInt(ctx, 1)
	ak, ok := UsingField(ctx, AccessGet, receiver, "double")
	require.True(t, ok)
	u := ak.(UsingAccess)
	assert.Same(t, ext, u.StaticOwner)
	assert.Same(t, receiver, u.FirstArg)
}

func TestUsingFieldRejectsMismatchedFirstParam(t *testing.T) {
	ctx, _, _ := newTestContext()
	ext := &types.TypeDecl{Kind: types.DeclClass, Name: "StringTools"}
	ext.Fields = []*types.Field{{
		Name: "upper", Owner: ext, Kind: types.FieldMethod, IsStatic: true,
		Type: types.TFun{Args: []types.TFunArg{{Name: "s", Type: ctx.stringType()}}, Ret: ctx.stringType()},
	}}
	ctx.Using.Add(ext)

	_, ok := UsingField(ctx, AccessGet, litInt(ctx, 1), "upper")
	assert.False(t, ok)
}

func TestUsingFieldSkipsInstanceMethods(t *testing.T) {
	ctx, _, _ := newTestContext()
	ext := &types.TypeDecl{Kind: types.DeclClass, Name: "IntTools"}
	ext.Fields = []*types.Field{{
		Name: "double", Owner: ext, Kind: types.FieldMethod, IsStatic: false,
		Type: types.TFun{Args: []types.TFunArg{{Name: "n", Type: intTypeOf(ctx)}}, Ret: intTypeOf(ctx)},
	}}
	ctx.Using.Add(ext)

	_, ok := UsingField(ctx, AccessGet, litInt(ctx, 1), "double")
	assert.False(t, ok, "a non-static field is never a using-extension candidate")
}

func TestUsingFieldRejectsSetMode(t *testing.T) {
	ctx, _, _ := newTestContext()
	_, ok := UsingField(ctx, AccessSet, litInt(ctx, 1), "double")
	assert.False(t, ok)
}

// Dynamic-to-Dynamic must not count as a spurious match.
func TestUsingFieldRejectsDynamicToDynamicMatch(t *testing.T) {
	ctx, _, _ := newTestContext()
	ext := &types.TypeDecl{Kind: types.DeclClass, Name: "DynTools"}
	ext.Fields = []*types.Field{{
		Name: "poke", Owner: ext, Kind: types.FieldMethod, IsStatic: true,
		Type: types.TFun{Args: []types.TFunArg{{Name: "v", Type: types.TDynamic{}}}, Ret: types.TDynamic{}},
	}}
	ctx.Using.Add(ext)

	receiver := &ast.Ident{Name: "d", ExprBase: ast.ExprBase{Base: ast.Base{P: source.Position{Line: 1}}, T: types.TDynamic{}}}
	_, ok := UsingField(ctx, AccessGet, receiver, "poke")
	assert.False(t, ok)
}

// Declaration order is preserved: the first compatible static wins even
// when a later one would also match.
func TestUsingFieldPicksFirstDeclaredMatch(t *testing.T) {
	ctx, _, _ := newTestContext()
	first := &types.TypeDecl{Kind: types.DeclClass, Name: "First"}
	first.Fields = []*types.Field{{
		Name: "f", Owner: first, Kind: types.FieldMethod, IsStatic: true,
		Type: types.TFun{Args: []types.TFunArg{{Name: "n", Type: intTypeOf(ctx)}}, Ret: intTypeOf(ctx)},
	}}
	second := &types.TypeDecl{Kind: types.DeclClass, Name: "Second"}
	second.Fields = []*types.Field{{
		Name: "f", Owner: second, Kind: types.FieldMethod, IsStatic: true,
		Type: types.TFun{Args: []types.TFunArg{{Name: "n", Type: intTypeOf(ctx)}}, Ret: intTypeOf(ctx)},
	}}
	ctx.Using.Add(first)
	ctx.Using.Add(second)

	ak, ok := UsingField(ctx, AccessGet, litInt(ctx, 1), "f")
	require.True(t, ok)
	assert.Same(t, first, ak.(UsingAccess).StaticOwner)
}
