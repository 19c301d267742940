// C10: the context factory (spec §4.9). Loads the standard library's
// StdTypes module and binds Void/Bool/Float/Int/String/Array onto Globals,
// then constructs the root typing context.
package typer

import (
	"github.com/zinclang/zinc/internal/loader"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

const stdTypesModule = "StdTypes"

// FactoryOptions mirrors spec §6 "Context flags": the subset of recognized
// options the factory itself consumes when building Globals.
type FactoryOptions struct {
	Backend  Backend
	NoInline bool
	NoTraces bool
	Macro    MacroInterpreter
}

// NewRootContext implements `context_factory(loader, opts) -> Context`:
// resolves the built-in declarations, installs the nullable-lift policy
// (C10, §4.9), and returns a fresh top-level Context sharing the result.
func NewRootContext(l loader.Loader, opts FactoryOptions) (*Context, error) {
	pos := source.Position{}

	voidDecl, err := l.LoadTypeDef(stdTypesModule+".Void", pos)
	if err != nil {
		voidDecl, err = l.LoadTypeDef("Void", pos)
	}
	if err != nil {
		return nil, err
	}
	boolDecl, err := l.LoadTypeDef(stdTypesModule+".Bool", pos)
	if err != nil {
		boolDecl, err = l.LoadTypeDef("Bool", pos)
	}
	if err != nil {
		return nil, err
	}
	floatDecl, err := l.LoadTypeDef("Float", pos)
	if err != nil {
		return nil, err
	}
	intDecl, err := l.LoadTypeDef("Int", pos)
	if err != nil {
		return nil, err
	}
	stringDecl, err := l.LoadTypeDef("String", pos)
	if err != nil {
		return nil, err
	}
	arrayDecl, err := l.LoadTypeDef("Array", pos)
	if err != nil {
		return nil, err
	}
	nullableDecl, _ := l.LoadTypeDef("Nullable", pos) // absent on reference-typed backends; nil is fine, NullOf is a no-op then

	g := &Globals{
		Loader:       l,
		Backend:      opts.Backend,
		NoInline:     opts.NoInline,
		NoTraces:     opts.NoTraces,
		Macro:        opts.Macro,
		NumericTags:  types.NumericTags{Int: intDecl, Float: floatDecl, String: stringDecl},
		NullableDecl: nullableDecl,
		VoidDecl:     voidDecl,
		BoolDecl:     boolDecl,
		StringDecl:   stringDecl,
		ArrayDecl:    arrayDecl,
	}
	return NewContext(g), nil
}
