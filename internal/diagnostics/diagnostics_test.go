package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

func TestUnknownIdentMessage(t *testing.T) {
	d := UnknownIdent(source.Position{Line: 3}, "foo")
	assert.Equal(t, KindUnknownIdent, d.Kind)
	assert.Contains(t, d.Error(), "Unknown identifier : foo")
}

func TestModuleNotFoundMessage(t *testing.T) {
	d := ModuleNotFound(source.Position{Line: 1}, "haxe.ds.Vector", "ds")
	assert.Equal(t, KindModuleNotFound, d.Kind)
	assert.Contains(t, d.Error(), "Module not found : haxe.ds.Vector (looking for ds)")
}

func TestUnifyWithoutContextHasNoStack(t *testing.T) {
	intDecl := &types.TypeDecl{Name: "Int"}
	stringDecl := &types.TypeDecl{Name: "String"}
	d := Unify(source.Position{Line: 1}, types.TInst{Decl: intDecl}, types.TInst{Decl: stringDecl}, "")
	assert.Equal(t, KindUnify, d.Kind)
	assert.Empty(t, d.Stack)
	assert.Contains(t, d.Error(), "Int should be String")
}

func TestUnifyWithContextWrapsCustomFrame(t *testing.T) {
	intDecl := &types.TypeDecl{Name: "Int"}
	stringDecl := &types.TypeDecl{Name: "String"}
	d := Unify(source.Position{Line: 1}, types.TInst{Decl: intDecl}, types.TInst{Decl: stringDecl}, "For optional argument 'x'")
	require := assert.New(t)
	require.Len(d.Stack, 1)
	require.Equal(KindCustom, d.Stack[0].Kind)
	require.Contains(d.Error(), "For optional argument 'x'")
}

func TestCustomDiagnosticMessage(t *testing.T) {
	d := Custom(source.Position{Line: 5}, "something went wrong")
	assert.Equal(t, KindCustom, d.Kind)
	assert.Contains(t, d.Error(), "something went wrong")
}

func TestKindStringNames(t *testing.T) {
	assert.Equal(t, "unknown identifier", KindUnknownIdent.String())
	assert.Equal(t, "module not found", KindModuleNotFound.String())
	assert.Equal(t, "type mismatch", KindUnify.String())
	assert.Equal(t, "error", KindCustom.String())
}

func TestWarningStringIncludesMessage(t *testing.T) {
	w := Warning{Pos: source.Position{Line: 2}, Msg: "maybe loop in static generation: A"}
	assert.Contains(t, w.String(), "maybe loop in static generation: A")
}

// Display and TypePath are deliberately not error-implementing types so
// that a bare `return err` can never swallow or propagate them.
func TestDisplayAndTypePathAreNotErrors(t *testing.T) {
	var d interface{} = Display{Pos: source.Position{Line: 1}, Type: types.TDynamic{}}
	_, isErr := d.(error)
	assert.False(t, isErr)

	var tp interface{} = TypePath{Pos: source.Position{Line: 1}, Path: "haxe.ds"}
	_, isErr2 := tp.(error)
	assert.False(t, isErr2)
}
