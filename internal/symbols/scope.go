// Package symbols implements the concrete scope-chain data structure
// backing the typing context's locals/locals_map/locals_map_inv triple
// and local_using list (spec §3).
package symbols

import (
	"fmt"

	"github.com/zinclang/zinc/internal/types"
)

// Scope is one block's local-variable frame. Blocks form a parent chain;
// entering a block pushes a new Scope, leaving it discards the Scope and
// resumes the parent — the save/restore discipline spec §5 requires
// around every local block falls out of this structure directly rather
// than needing an explicit snapshot/restore pair.
type Scope struct {
	parent *Scope
	locals map[string]types.Type
	// rename and invRename implement locals_map/locals_map_inv: when
	// Shadow gives a redeclared name a fresh internal identity, both
	// directions are recorded here so later passes can print either the
	// surface name or the internal one.
	rename    map[string]string
	invRename map[string]string
	fresh     *int // shared counter across the whole chain
}

// NewRootScope creates the outermost scope of a typing context (spec's
// ScopeGlobal-equivalent — the class/method's outermost block).
func NewRootScope() *Scope {
	n := 0
	return &Scope{locals: map[string]types.Type{}, fresh: &n}
}

// Enter pushes a new child scope, the concrete form of spec §5's "every
// new local block saves locals, locals_map, locals_map_inv".
func (s *Scope) Enter() *Scope {
	return &Scope{parent: s, locals: map[string]types.Type{}, fresh: s.fresh}
}

// Exit returns the parent scope, the concrete form of "on scope exit
// ... the snapshot is restored". Discarding s and its maps is the
// restore: nothing written into s survives past this call.
func (s *Scope) Exit() *Scope {
	if s.parent == nil {
		return s
	}
	return s.parent
}

// Define introduces name in this scope, shadowing any outer binding of
// the same name (ordinary case: no rename needed, since the outer
// binding remains reachable under its own scope once this one exits).
func (s *Scope) Define(name string, t types.Type) {
	s.locals[name] = t
}

// Shadow introduces name in this same scope where it is already bound
// (e.g. a for-loop variable reusing an enclosing local's surface name),
// giving the new binding a fresh internal identity and recording the
// rename pair so codegen and diagnostics can still report the original
// surface name.
func (s *Scope) Shadow(name string, t types.Type) (internalName string) {
	if s.rename == nil {
		s.rename = map[string]string{}
		s.invRename = map[string]string{}
	}
	*s.fresh++
	internalName = fmt.Sprintf("%s$%d", name, *s.fresh)
	s.rename[name] = internalName
	s.invRename[internalName] = name
	s.locals[internalName] = t
	return internalName
}

// Resolve walks the scope chain outward looking for name, returning the
// first (innermost) binding found — spec §4.2 lookup step 1.
func (s *Scope) Resolve(name string) (types.Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if internal, ok := cur.rename[name]; ok {
			if t, ok := cur.locals[internal]; ok {
				return t, true
			}
		}
		if t, ok := cur.locals[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// SurfaceName reverses a Shadow-produced internal name back to what the
// programmer wrote, or returns internalName unchanged if it was never
// renamed.
func (s *Scope) SurfaceName(internalName string) string {
	for cur := s; cur != nil; cur = cur.parent {
		if orig, ok := cur.invRename[internalName]; ok {
			return orig
		}
	}
	return internalName
}
