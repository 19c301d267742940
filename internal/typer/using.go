// C7: the using-extension resolver (spec §4.6).
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/types"
)

// UsingField implements `using_field(mode, receiver, name)`. Disallowed
// in Set mode. Iterates ctx.Using in declaration order; returns the first
// compatible static method, or ok=false if none matched (the caller then
// continues its own lookup chain rather than raising, since this is just
// one step of a larger fallback order — spec §4.2 step 3, §4.3's
// not-found fallback in field access).
func UsingField(ctx *Context, mode AccessMode, receiver ast.Expression, name string) (AccessKind, bool) {
	if mode == AccessSet {
		return nil, false
	}
	receiverType := receiver.Type()
	for _, decl := range ctx.Using.All() {
		f, ok := decl.FindField(name)
		if !ok || f.Kind != types.FieldMethod || !f.IsStatic {
			continue
		}
		tfun, ok := types.Follow(f.Type).(types.TFun)
		if !ok || len(tfun.Args) == 0 {
			continue
		}
		if !firstParamMatches(tfun.Args[0].Type, receiverType) {
			continue
		}
		return UsingAccess{Static: f, StaticOwner: decl, FirstArg: receiver}, true
	}
	return nil, false
}

// firstParamMatches checks the candidate's first formal against the
// receiver's type without letting a spurious Dynamic-to-Dynamic match
// count (spec §4.6: "not just because either side is the dynamic top
// spuriously").
func firstParamMatches(formal, actual types.Type) bool {
	ff, fa := types.Follow(formal), types.Follow(actual)
	_, formalDyn := ff.(types.TDynamic)
	_, actualDyn := fa.(types.TDynamic)
	if formalDyn && actualDyn {
		return false
	}
	return types.UnifyRaise(formal, actual) == nil
}
