// C8: finalization and reachability (spec §4.7).
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/types"
)

// Finalize drains the delayed-closure queue to a fixpoint (spec §4.7,
// invariant 5): each closure may itself enqueue more work, so the queue
// is drained in FIFO order until empty rather than in one fixed pass.
func (g *Globals) Finalize() error {
	for len(g.delayed) > 0 {
		cb := g.delayed[0]
		g.delayed = g.delayed[1:]
		if err := cb(); err != nil {
			return err
		}
	}
	return nil
}

// Generate implements `generate(main, excludes) -> (types, modules)`: a
// DFS over declared types, transitively walking superclasses, interfaces,
// static initializers, and anything a static initializer's expression
// tree references (new/call/enum-match targets), memoizing per type in
// FinalizeState, so types already Done from an earlier Generate call are
// neither walked nor returned again (spec invariant 5).
func Generate(main *types.TypeDecl, excludes map[*types.TypeDecl]bool, warn func(msg string)) (reachable []*types.TypeDecl, modules []string) {
	seenModule := map[string]bool{}
	var visit func(d *types.TypeDecl)
	visit = func(d *types.TypeDecl) {
		if d == nil {
			return
		}
		if excludes[d] {
			d.IsExtern = true
		}
		switch generateState(d) {
		case types.Done:
			return
		case types.Generating:
			warn("maybe loop in static generation: " + d.Name)
			return
		}
		setGenerateState(d, types.Generating)

		if d.Super != nil {
			visit(d.Super.Decl)
		}
		for _, iface := range d.Interfaces {
			visit(iface.Decl)
		}
		for _, f := range d.Fields {
			visitFieldType(f.Type, visit)
		}
		if !d.IsExtern && d.StaticInit != nil {
			walkStaticInit(d.StaticInit, visit)
		}

		setGenerateState(d, types.Done)
		reachable = append(reachable, d)
		if d.Module != "" && !seenModule[d.Module] {
			seenModule[d.Module] = true
			modules = append(modules, d.Module)
		}
	}

	for d := range excludes {
		d.IsExtern = true
	}
	// Seed traversal from every type already reachable via main, walking
	// outward from it first so main's own dependency order is preserved in
	// the output (spec §4.7 "ordered list").
	if main != nil {
		visit(main)
		synthetic := &types.TypeDecl{
			Kind:   types.DeclClass,
			Name:   "@Main",
			Module: main.Module,
		}
		reachable = append(reachable, synthetic)
	}
	return reachable, modules
}

func visitFieldType(t types.Type, visit func(*types.TypeDecl)) {
	switch v := types.Follow(t).(type) {
	case types.TInst:
		visit(v.Decl)
	case types.TFun:
		for _, a := range v.Args {
			visitFieldType(a.Type, visit)
		}
		visitFieldType(v.Ret, visit)
	}
}

// walkStaticInit scans a static initializer body for New/Call/enum-match
// subject references, using the shared ast.Walk traversal (spec §4.7
// "Type-expr nodes, new constructor classes, match-subject enums,
// static-method calls used for initializer values").
func walkStaticInit(n types.Node, visit func(*types.TypeDecl)) {
	node, ok := n.(ast.Node)
	if !ok {
		return
	}
	ast.Walk(node, func(cur ast.Node) bool {
		switch v := cur.(type) {
		case *ast.New:
			if inst, ok := types.Follow(v.Type()).(types.TInst); ok {
				visit(inst.Decl)
			}
		case *ast.Call:
			if fa, ok := v.Callee.(*ast.FieldAccess); ok {
				if inst, ok := types.Follow(fa.Receiver.Type()).(types.TInst); ok {
					visit(inst.Decl)
				}
			}
		case *ast.Switch:
			if inst, ok := types.Follow(v.Subject.Type()).(types.TInst); ok {
				visit(inst.Decl)
			}
		}
		return true
	})
}

// generateState/setGenerateState read and write TypeDecl.FinalizeState
// through its exported field directly; kept as named helpers so the DFS
// above reads clearly at each call site.
func generateState(d *types.TypeDecl) types.FinalizeState { return d.FinalizeState }
func setGenerateState(d *types.TypeDecl, s types.FinalizeState) { d.FinalizeState = s }
