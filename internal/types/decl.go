package types

import (
	"fmt"

	"github.com/zinclang/zinc/internal/source"
)

// Node is the minimal interface the parser-facing expression tree (package
// ast) satisfies. It is declared here, rather than importing ast directly,
// so that the type model has no dependency on the tree shape it is
// occasionally asked to store a fragment of (an inline method body, a
// static initializer).
type Node interface {
	Pos() source.Position
}

// DeclKind distinguishes the handful of declaration shapes the module
// loader (an external collaborator — see spec §6) can hand back.
type DeclKind int

const (
	DeclClass DeclKind = iota
	DeclEnum
	DeclAbstract
	DeclTypedef
)

// TypeDecl is the declaration-side counterpart of TInst: what the module
// loader resolved a type path to. The typer never constructs one itself
// except for the synthetic @Main class the finalizer (C8) appends; the
// built-ins the context factory (C10) binds come from the loader too.
type TypeDecl struct {
	Kind       DeclKind
	Name       string
	Module     string
	TypeParams []string

	Super      *TInst   // nil for Enum/interfaceless Class
	Interfaces []TInst  // implemented/extended interfaces
	Fields     []*Field // DeclClass only
	Ctors      []*EnumCtor

	StaticInit Node // cl_init: the static initializer block, nil if none

	// Underlying is set for DeclTypedef: the aliased type, possibly still
	// containing this declaration's own TypeParams as TParam references.
	Underlying Type

	IsExtern        bool // excluded from codegen; see finalize.go
	FinalizeState   FinalizeState
	staticsResolved map[string]bool // not read or written; finalize.go tracks progress through FinalizeState
}

func (d *TypeDecl) qualifiedName() string {
	if d.Module == "" {
		return d.Name
	}
	return d.Module + "." + d.Name
}

// FinalizeState is C8's per-type fixpoint marker.
type FinalizeState int

const (
	NotYet FinalizeState = iota
	Generating
	Done
)

// FieldKind distinguishes a stored variable from a method.
type FieldKind int

const (
	FieldVar FieldKind = iota
	FieldMethod
)

// MethodKind refines FieldKind == FieldMethod.
type MethodKind int

const (
	MethodNormal MethodKind = iota
	MethodInline
	MethodDynamic
	MethodMacro
)

// AccessModeKind is the per-field read/write dispatch discriminant driving
// C5's property table (spec §4.3).
type AccessModeKind int

const (
	AccNormal  AccessModeKind = iota // direct field access
	AccNo                            // same-hierarchy only, else No
	AccCall                          // invoke accessor method
	AccResolve                       // dynamic `resolve(name)` dispatch
	AccInline                       // field behaves like an inline method
	AccNever                        // always an error
)

// Field is one class member: a stored variable or a method, each carrying
// independent read-side and write-side access modes (a property declared
// `(get, set)` has AccNormal/AccCall or AccCall/AccCall depending on which
// accessors are implemented).
type Field struct {
	Name     string
	Type     Type
	Kind     FieldKind
	Method   MethodKind // meaningful only when Kind == FieldMethod
	ReadMode AccessModeKind
	WriteMode AccessModeKind
	// Accessor is the method name for AccCall (e.g. "get_x"/"set_x").
	ReadAccessor  string
	WriteAccessor string
	IsStatic      bool
	IsPublic      bool
	// Expr is the stored body for inline methods/vars (C5 Inline lowering
	// clones this at the call site).
	Expr Node
	// Owner lets the self-accessor exception and AccNo hierarchy check
	// find the declaring class without a back-pointer cycle at
	// construction time; whoever builds the declaration sets it (the
	// loader's registry does not).
	Owner *TypeDecl
}

// EnumCtor is one constructor of an enum declaration (spec §4.5a enum
// match / §4.2 lookup step 5).
type EnumCtor struct {
	Name  string
	Index int
	Args  []TFunArg // empty for a nullary constructor
	Owner *TypeDecl
}

func (c *EnumCtor) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return fmt.Sprintf("%s(...)", c.Name)
}

// FindField looks up a direct (non-inherited) field by name.
func (d *TypeDecl) FindField(name string) (*Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// FindFieldInHierarchy walks super classes until it finds name. It applies
// no access check; field_access.go applies the AccNo "same hierarchy" rule.
func (d *TypeDecl) FindFieldInHierarchy(name string) (*Field, *TypeDecl, bool) {
	cur := d
	for cur != nil {
		if f, ok := cur.FindField(name); ok {
			return f, cur, true
		}
		if cur.Super == nil {
			break
		}
		cur = cur.Super.Decl
	}
	return nil, nil, false
}

// IsSubclassOf reports whether d is other or descends from it, the test
// used by the AccNo "inside same class hierarchy" rule and by typeNew's
// private-constructor check.
func (d *TypeDecl) IsSubclassOf(other *TypeDecl) bool {
	cur := d
	for cur != nil {
		if cur == other {
			return true
		}
		if cur.Super == nil {
			return false
		}
		cur = cur.Super.Decl
	}
	return false
}

func (c *EnumCtor) ArgType(i int) Type {
	if i < 0 || i >= len(c.Args) {
		return TDynamic{}
	}
	return c.Args[i].Type
}
