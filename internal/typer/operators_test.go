package typer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinclang/zinc/internal/ast"
)

func litInt(ctx *Context, v int64) ast.Expression {
	return &ast.IntLiteral{ExprBase: ast.ExprBase{T: intTypeOf(ctx)}, Value: v}
}

func litFloat(ctx *Context, v float64) ast.Expression {
	return &ast.FloatLiteral{ExprBase: ast.ExprBase{T: floatTypeOf(ctx)}, Value: v}
}

func litString(ctx *Context, v string) ast.Expression {
	return &ast.StringLiteral{ExprBase: ast.ExprBase{T: ctx.stringType()}, Value: v}
}

func TestTypeArithIntPlusIntIsInt(t *testing.T) {
	ctx, _, _ := newTestContext()
	result, err := TypeBinop(ctx, "+", litInt(ctx, 1), litInt(ctx, 2))
	require.NoError(t, err)
	assert.Equal(t, intTypeOf(ctx), result)
}

func TestTypeArithIntDivIntIsFloat(t *testing.T) {
	ctx, _, _ := newTestContext()
	result, err := TypeBinop(ctx, "/", litInt(ctx, 1), litInt(ctx, 2))
	require.NoError(t, err)
	assert.Equal(t, floatTypeOf(ctx), result)
}

func TestTypeArithFloatWins(t *testing.T) {
	ctx, _, _ := newTestContext()
	result, err := TypeBinop(ctx, "+", litInt(ctx, 1), litFloat(ctx, 2.5))
	require.NoError(t, err)
	assert.Equal(t, floatTypeOf(ctx), result)
}

func TestTypeArithStringConcat(t *testing.T) {
	ctx, _, _ := newTestContext()
	result, err := TypeBinop(ctx, "+", litString(ctx, "a"), litInt(ctx, 1))
	require.NoError(t, err)
	assert.Equal(t, ctx.stringType(), result)
}

func TestTypeArithStringMinusIsError(t *testing.T) {
	ctx, _, _ := newTestContext()
	_, err := TypeBinop(ctx, "-", litString(ctx, "a"), litInt(ctx, 1))
	require.Error(t, err)
}

func TestTypeOrderingBoolMismatchIsError(t *testing.T) {
	ctx, _, _ := newTestContext()
	_, err := TypeBinop(ctx, "<", litString(ctx, "a"), litInt(ctx, 1))
	require.Error(t, err)
}

func TestTypeBoolOpRequiresBool(t *testing.T) {
	ctx, _, _ := newTestContext()
	one := litInt(ctx, 1)
	_, err := TypeBinop(ctx, "&&", one, one)
	require.Error(t, err)
}
