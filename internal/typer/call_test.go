package typer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

// S3: an omitted trailing optional argument is filled with a typed null
// rather than rejected as too few arguments.
func TestUnifyCallParamsSkipsOptionalTail(t *testing.T) {
	ctx, _, _ := newTestContext()
	pos := source.Position{Line: 1}
	formals := []types.TFunArg{
		{Name: "a", Type: intTypeOf(ctx)},
		{Name: "b", Type: intTypeOf(ctx), Optional: true},
	}
	actuals := []ast.Expression{litInt(ctx, 1)}

	out, err := UnifyCallParams(ctx, "f", actuals, formals, pos, false)
	require.NoError(t, err)
	require.Len(t, out, 2)
	_, isNull := out[1].(*ast.NullLiteral)
	assert.True(t, isNull, "omitted optional formal should synthesize a null default")
}

func TestUnifyCallParamsTooFewRequiredIsError(t *testing.T) {
	ctx, _, _ := newTestContext()
	pos := source.Position{Line: 1}
	formals := []types.TFunArg{{Name: "a", Type: intTypeOf(ctx)}}

	_, err := UnifyCallParams(ctx, "f", nil, formals, pos, false)
	require.Error(t, err)
}

func TestUnifyCallParamsTooManyIsError(t *testing.T) {
	ctx, _, _ := newTestContext()
	pos := source.Position{Line: 1}
	formals := []types.TFunArg{{Name: "a", Type: intTypeOf(ctx)}}
	actuals := []ast.Expression{litInt(ctx, 1), litInt(ctx, 2)}

	_, err := UnifyCallParams(ctx, "f", actuals, formals, pos, false)
	require.Error(t, err)
}

// PosInfos-typed optional trailing formals synthesize the source-location
// record rather than a null.
func TestUnifyCallParamsSynthesizesPosInfos(t *testing.T) {
	ctx, reg, _ := newTestContext()
	posInfosDecl := &types.TypeDecl{Kind: types.DeclClass, Name: "PosInfos", Module: "haxe"}
	reg.Register("haxe", posInfosDecl)

	pos := source.Position{File: "Test.hx", Line: 7}
	formals := []types.TFunArg{
		{Name: "pos", Type: types.TInst{Decl: posInfosDecl}, Optional: true},
	}
	out, err := UnifyCallParams(ctx, "f", nil, formals, pos, false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	obj, ok := out[0].(*ast.ObjectLiteral)
	require.True(t, ok, "PosInfos-typed optional should synthesize an object literal")
	assert.Len(t, obj.Fields, 4)
}
