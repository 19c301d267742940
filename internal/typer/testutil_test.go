package typer

import (
	"github.com/zinclang/zinc/internal/loader"
	"github.com/zinclang/zinc/internal/types"
)

// newTestContext builds a minimal root context with the built-in
// declarations the factory would otherwise resolve from a real standard
// library, for tests that don't need the full NewRootContext path.
func newTestContext() (*Context, *loader.Registry, types.NumericTags) {
	reg := loader.NewRegistry()

	voidDecl := &types.TypeDecl{Kind: types.DeclClass, Name: "Void"}
	boolDecl := &types.TypeDecl{Kind: types.DeclClass, Name: "Bool"}
	reg.Register("StdTypes", voidDecl)
	reg.Register("StdTypes", boolDecl)

	floatDecl := &types.TypeDecl{Kind: types.DeclClass, Name: "Float"}
	intDecl := &types.TypeDecl{Kind: types.DeclClass, Name: "Int"}
	stringDecl := &types.TypeDecl{Kind: types.DeclClass, Name: "String"}
	arrayDecl := &types.TypeDecl{Kind: types.DeclClass, Name: "Array", TypeParams: []string{"T"}}
	reg.Register("", floatDecl)
	reg.Register("", intDecl)
	reg.Register("", stringDecl)
	reg.Register("", arrayDecl)

	tags := types.NumericTags{Int: intDecl, Float: floatDecl, String: stringDecl}
	g := &Globals{
		Loader:      reg,
		Backend:     BackendJS,
		NumericTags: tags,
		VoidDecl:    voidDecl,
		BoolDecl:    boolDecl,
		StringDecl:  stringDecl,
		ArrayDecl:   arrayDecl,
	}
	return NewContext(g), reg, tags
}
