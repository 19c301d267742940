// Try/catch typing (spec §4.5 "Try/catch").
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/types"
)

// TypeTry implements `try Body catch (c1) ... catch (cn)`: each catch
// binds a fresh local of its declared type for the duration of its body,
// and may not catch a parameterized class unless every type argument is
// the dynamic top.
func TypeTry(ctx *Context, n *ast.Try) (ast.Statement, error) {
	body, err := StmtType(ctx.EnterBlock(), n.Body, false)
	if err != nil {
		return nil, err
	}
	n.Body = body

	for i := range n.Catches {
		c := &n.Catches[i]
		pos := c.Type.Pos()
		t, err := ctx.G.Loader.LoadComplexType(pos, c.Type)
		if err != nil {
			return nil, err
		}
		if inst, ok := types.Follow(t).(types.TInst); ok {
			for _, p := range inst.Params {
				if _, isDyn := p.(types.TDynamic); !isDyn {
					return nil, diagnostics.Custom(pos, "Cannot catch a parameterized type unless its arguments are Dynamic")
				}
			}
		}
		child := ctx.EnterBlock()
		child.Scope.Define(c.Name, t)
		typedBody, err := StmtType(child, c.Body, false)
		if err != nil {
			return nil, err
		}
		c.Body = typedBody
	}
	return n, nil
}
