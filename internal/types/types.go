// Package types is the type model consumed by the expression typer: the
// algebraic type representation, monomorph cells, unification and
// parameter application. It corresponds to the typer's sole upstream
// collaborator besides the module loader — everything in package typer
// treats this package as already-resolved, already-loaded fact.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the interface implemented by every member of the type algebra.
// Implementations are immutable values, except TMono whose Bound field is
// mutated in place by Unify — that mutation is the entire unification
// algorithm; see unify.go.
type Type interface {
	String() string
}

// TMono is a monomorph cell: an as-yet-unsolved type variable shared by
// every occurrence that was produced from the same inference site (e.g.
// every use of an unannotated local, or the element type of `new Array()`
// before its first push). Binding a TMono mutates Bound for every holder of
// the pointer — this is why TMono is always handled and passed as
// *TMono, never by value.
type TMono struct {
	ID    int
	Name  string // diagnostic name such as "Unknown<0>"
	Bound Type   // nil while unresolved
}

func (m *TMono) String() string {
	if m.Bound != nil {
		return Follow(m).String()
	}
	return m.Name
}

// TDynamic is the dynamic top type: unifies with anything, classifies as
// KDyn, and never needs monomorph resolution.
type TDynamic struct{}

func (TDynamic) String() string { return "Dynamic" }

// TParam is a rigid reference to a type parameter in scope (a class's own
// `<T>`, not an inference variable). Unlike TMono it never binds.
type TParam struct {
	Name string
}

func (p TParam) String() string { return p.Name }

// TInst is a nominal instance of a class or enum declaration, applied to
// concrete (or still-monomorphic) type parameters.
type TInst struct {
	Decl   *TypeDecl
	Params []Type
}

func (t TInst) String() string {
	if len(t.Params) == 0 {
		return t.Decl.qualifiedName()
	}
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s<%s>", t.Decl.qualifiedName(), strings.Join(parts, ", "))
}

// TFunArg is one formal parameter of a TFun.
type TFunArg struct {
	Name     string
	Type     Type
	Optional bool
}

// TFun is a function type. Variadic functions mark their final argument.
type TFun struct {
	Args     []TFunArg
	Ret      Type
	Variadic bool
}

func (t TFun) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		opt := ""
		if a.Optional {
			opt = "?"
		}
		parts[i] = fmt.Sprintf("%s%s:%s", opt, a.Name, a.Type.String())
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.Ret.String())
}

// AnonStatus tracks how open an anonymous structural type still is. Fields
// may be added to TAnon.Fields while Status is Opened; a Closed or Const
// anon accepts no new fields. The typer creates object-literal anons as
// Opened and display anons as Closed; no pass closes an Opened anon
// afterwards, on leaving a block or elsewhere. See DESIGN NOTES §"Open
// anonymous types".
type AnonStatus int

const (
	AnonConst AnonStatus = iota
	AnonClosed
	AnonOpened
)

// TAnon is a structural record type: the result of an object literal, or
// the synthesized type of a Display query (§4.5 Display).
type TAnon struct {
	Fields map[string]Type
	Status AnonStatus
}

func (t TAnon) String() string {
	names := make([]string, 0, len(t.Fields))
	for n := range t.Fields {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s: %s", n, t.Fields[n].String())
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// NullOf applies the nullable-lift policy installed by the context factory
// (C10): on reference-typed backends Null(T) = T, on value-typed backends
// Null(T) = Nullable<T>. Callers that need "the type of a value that may
// additionally be null" always go through here rather than constructing
// TInst{Decl: nullableDecl} directly.
func NullOf(t Type, liftsValueTypes bool, nullableDecl *TypeDecl) Type {
	if !liftsValueTypes {
		return t
	}
	if IsNullableAlready(t, nullableDecl) {
		return t
	}
	return TInst{Decl: nullableDecl, Params: []Type{t}}
}

// IsNullableAlready reports whether t is already Nullable<_>.
func IsNullableAlready(t Type, nullableDecl *TypeDecl) bool {
	inst, ok := Follow(t).(TInst)
	return ok && inst.Decl == nullableDecl
}
