package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinclang/zinc/internal/types"
)

func TestScopeDefineAndResolve(t *testing.T) {
	s := NewRootScope()
	s.Define("x", types.TDynamic{})
	typ, ok := s.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, types.TDynamic{}, typ)
}

func TestScopeResolveWalksOuterward(t *testing.T) {
	outer := NewRootScope()
	outer.Define("x", types.TDynamic{})
	inner := outer.Enter()
	_, ok := inner.Resolve("x")
	assert.True(t, ok)
}

func TestScopeEnterDoesNotLeakIntoParent(t *testing.T) {
	outer := NewRootScope()
	inner := outer.Enter()
	inner.Define("x", types.TDynamic{})
	_, ok := outer.Resolve("x")
	assert.False(t, ok, "a child scope's locals must not be visible to its parent")
}

func TestScopeShadowGivesFreshInternalNameAndPreservesSurfaceName(t *testing.T) {
	s := NewRootScope()
	s.Define("tmp", types.TDynamic{})
	internal1 := s.Shadow("tmp", types.TDynamic{})
	internal2 := s.Shadow("tmp", types.TDynamic{})

	assert.NotEqual(t, internal1, internal2, "every Shadow call gets a distinct internal identity")
	assert.Equal(t, "tmp", s.SurfaceName(internal1))
	assert.Equal(t, "tmp", s.SurfaceName(internal2))

	typ, ok := s.Resolve(internal1)
	assert.True(t, ok)
	assert.Equal(t, types.TDynamic{}, typ)
}

func TestUsingListPreservesDeclarationOrder(t *testing.T) {
	u := &UsingList{}
	a := &types.TypeDecl{Name: "A"}
	b := &types.TypeDecl{Name: "B"}
	u.Add(a)
	u.Add(b)
	all := u.All()
	require.Len(t, all, 2)
	assert.Same(t, a, all[0])
	assert.Same(t, b, all[1])
}

func TestUsingListForkDoesNotShareBackingArray(t *testing.T) {
	u := &UsingList{}
	u.Add(&types.TypeDecl{Name: "A"})
	forked := u.Fork()
	forked.Add(&types.TypeDecl{Name: "B"})
	assert.Len(t, u.All(), 1, "mutating the fork must not affect the original")
	assert.Len(t, forked.All(), 2)
}
