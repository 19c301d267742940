package main

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/loader"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/typer"
	"github.com/zinclang/zinc/internal/types"
)

// buildFixture populates a loader.Registry with the built-in
// declarations the factory (C10) requires plus a small Main class, and
// returns its TypeDecl. There is no parser in this module (spec §1), so
// this stands in for what a real frontend would have already resolved
// by the time the typer runs.
func buildFixture() (*loader.Registry, *types.TypeDecl) {
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

	pos := source.Position{File: "Main.hx", Line: 1}
	intType := types.TInst{Decl: intDecl}

	// static function main(): Int { return 1 + 2; }
	body := &ast.Block{
		StmtBase: ast.StmtBase{Base: ast.Base{P: pos}},
		Statements: []ast.Statement{
			&ast.Return{
				StmtBase: ast.StmtBase{Base: ast.Base{P: pos}},
				Value: &ast.Binop{
					ExprBase: ast.ExprBase{Base: ast.Base{P: pos}},
					Op:       "+",
					Left:     &ast.IntLiteral{ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: intType}, Value: 1},
					Right:    &ast.IntLiteral{ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: intType}, Value: 2},
				},
			},
		},
	}

	mainField := &types.Field{
		Name:     "main",
		Kind:     types.FieldMethod,
		Method:   types.MethodNormal,
		IsStatic: true,
		IsPublic: true,
		Type:     types.TFun{Ret: intType},
		Expr:     body,
	}
	mainDecl := &types.TypeDecl{
		Kind:   types.DeclClass,
		Name:   "Main",
		Fields: []*types.Field{mainField},
	}
	mainField.Owner = mainDecl
	reg.Register("Main", mainDecl)

	return reg, mainDecl
}

// typeFixture runs the statement typer over Main.main's body, the one
// entry point a real frontend would invoke once per method after access
// resolution has bound the surrounding class.
func typeFixture(ctx *typer.Context, main *types.TypeDecl) error {
	for _, f := range main.Fields {
		if f.Kind != types.FieldMethod {
			continue
		}
		body, ok := f.Expr.(ast.Statement)
		if !ok {
			continue
		}
		tfun, ok := f.Type.(types.TFun)
		if !ok {
			continue
		}
		child := ctx.EnterBlock()
		child.CurClass = main
		child.CurMethod = f.Name
		child.InStatic = f.IsStatic
		child.Ret = tfun.Ret
		typed, err := typer.StmtType(child, body, false)
		if err != nil {
			return err
		}
		f.Expr = typed
	}
	return nil
}
