package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

func TestRegistryRegisterIndexesByQualifiedAndBareName(t *testing.T) {
	reg := NewRegistry()
	decl := &types.TypeDecl{Kind: types.DeclClass, Name: "Foo"}
	reg.Register("pkg", decl)

	byQualified, err := reg.LoadTypeDef("pkg.Foo", source.Position{})
	require.NoError(t, err)
	assert.Same(t, decl, byQualified)

	byBare, err := reg.LoadTypeDef("Foo", source.Position{})
	require.NoError(t, err)
	assert.Same(t, decl, byBare)

	assert.Equal(t, "pkg", decl.Module)
}

func TestRegistryLoadTypeDefNotFound(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.LoadTypeDef("Missing", source.Position{})
	require.Error(t, err)
}

func TestRegistryLoadInstanceAppliesTypeParams(t *testing.T) {
	reg := NewRegistry()
	elem := &types.TypeDecl{Kind: types.DeclClass, Name: "Int"}
	arr := &types.TypeDecl{Kind: types.DeclClass, Name: "Array", TypeParams: []string{"T"}}
	reg.Register("", elem)
	reg.Register("", arr)

	ref := &ast.TypeRef{Path: "Array", Args: []*ast.TypeRef{{Path: "Int"}}}
	result, err := reg.LoadInstance(ref, source.Position{}, false)
	require.NoError(t, err)

	inst, ok := result.(types.TInst)
	require.True(t, ok)
	require.Len(t, inst.Params, 1)
	assert.Same(t, elem, inst.Params[0].(types.TInst).Decl)
}

func TestRegistryLoadInstanceMissingTypeParamErrorsWithoutDefaults(t *testing.T) {
	reg := NewRegistry()
	arr := &types.TypeDecl{Kind: types.DeclClass, Name: "Array", TypeParams: []string{"T"}}
	reg.Register("", arr)

	ref := &ast.TypeRef{Path: "Array"}
	_, err := reg.LoadInstance(ref, source.Position{}, false)
	require.Error(t, err)
}

func TestRegistryLoadInstanceMissingTypeParamDefaultsToDynamic(t *testing.T) {
	reg := NewRegistry()
	arr := &types.TypeDecl{Kind: types.DeclClass, Name: "Array", TypeParams: []string{"T"}}
	reg.Register("", arr)

	ref := &ast.TypeRef{Path: "Array"}
	result, err := reg.LoadInstance(ref, source.Position{}, true)
	require.NoError(t, err)
	inst := result.(types.TInst)
	_, isDyn := inst.Params[0].(types.TDynamic)
	assert.True(t, isDyn)
}
