package symbols

import "github.com/zinclang/zinc/internal/types"

// UsingList is local_using (spec §3): the ordered list of type
// declarations whose static methods are eligible as extension-method
// candidates, in declaration order. Order is significant — spec §4.6
// and §5 both require first-match-wins in declaration order, which a Go
// map could not preserve, unlike the teacher's map-keyed
// extensionMethods table (that package has no equivalent ordering
// requirement since it dispatches by type name, not by trying static
// methods in import order).
type UsingList struct {
	decls []*types.TypeDecl
}

// Add appends a using-imported type, preserving declaration order.
func (u *UsingList) Add(decl *types.TypeDecl) {
	u.decls = append(u.decls, decl)
}

// All returns the list in declaration order for C7 to iterate.
func (u *UsingList) All() []*types.TypeDecl {
	if u == nil {
		return nil
	}
	return u.decls
}

// Fork returns a copy sharing no backing array with u, for a macro
// bridge's sibling context (spec §5: contexts do not share mutable
// state across the macro boundary).
func (u *UsingList) Fork() *UsingList {
	if u == nil {
		return &UsingList{}
	}
	out := make([]*types.TypeDecl, len(u.decls))
	copy(out, u.decls)
	return &UsingList{decls: out}
}
