package typer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

func TestGenerateWalksSuperclassAndFieldTypes(t *testing.T) {
	base := &types.TypeDecl{Kind: types.DeclClass, Name: "Base"}
	helper := &types.TypeDecl{Kind: types.DeclClass, Name: "Helper"}
	derived := &types.TypeDecl{
		Kind: types.DeclClass, Name: "Derived",
		Super: &types.TInst{Decl: base},
		Fields: []*types.Field{
			{Name: "h", Kind: types.FieldVar, Type: types.TInst{Decl: helper}},
		},
	}

	reachable, _ := Generate(derived, nil, func(string) {})

	names := map[string]bool{}
	for _, d := range reachable {
		names[d.Name] = true
	}
	assert.True(t, names["Base"])
	assert.True(t, names["Helper"])
	assert.True(t, names["Derived"])
	assert.True(t, names["@Main"])
}

// S6: a static-initializer cycle warns rather than looping forever.
func TestGenerateWarnsOnStaticInitCycle(t *testing.T) {
	pos := source.Position{Line: 1}
	a := &types.TypeDecl{Kind: types.DeclClass, Name: "A"}
	b := &types.TypeDecl{Kind: types.DeclClass, Name: "B"}

	aInit := &ast.New{ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: types.TInst{Decl: b}}, TypePath: &ast.TypeRef{Base: ast.Base{P: pos}, Path: "B"}}
	bInit := &ast.New{ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: types.TInst{Decl: a}}, TypePath: &ast.TypeRef{Base: ast.Base{P: pos}, Path: "A"}}
	a.StaticInit = &ast.ExprStmt{StmtBase: ast.StmtBase{Base: ast.Base{P: pos}}, Expr: aInit}
	b.StaticInit = &ast.ExprStmt{StmtBase: ast.StmtBase{Base: ast.Base{P: pos}}, Expr: bInit}

	var warnings []string
	reachable, _ := Generate(a, nil, func(msg string) { warnings = append(warnings, msg) })

	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "maybe loop in static generation")

	names := map[string]bool{}
	for _, d := range reachable {
		names[d.Name] = true
	}
	assert.True(t, names["A"])
	assert.True(t, names["B"])
}

// Excluded types are marked extern and their static initializers are not
// walked for references.
func TestGenerateExcludedTypesMarkedExtern(t *testing.T) {
	excluded := &types.TypeDecl{Kind: types.DeclClass, Name: "Excluded"}
	main := &types.TypeDecl{Kind: types.DeclClass, Name: "Main"}

	_, _ = Generate(main, map[*types.TypeDecl]bool{excluded: true}, func(string) {})
	assert.True(t, excluded.IsExtern)
}

func TestFinalizeDrainsDelayedQueueToFixpoint(t *testing.T) {
	g := &Globals{}
	var order []int
	g.Delay(func() error {
		order = append(order, 1)
		g.Delay(func() error {
			order = append(order, 2)
			return nil
		})
		return nil
	})
	err := g.Finalize()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}
