// Package loader implements the module-resolution boundary the typer
// treats as an external collaborator (spec §6): resolving type paths to
// declarations. Parsing is out of scope, so this is not backed by a real
// frontend — it is a registry populated ahead of time (by the CLI or by
// tests) that answers the same four operations a real loader would.
package loader

import (
	"fmt"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

// Module is a compilation unit: a set of type declarations sharing a
// module path, the granularity C8's reachability walker emits alongside
// types (spec §4.7 Output: "ordered list of reachable type declarations
// and an ordered list of containing modules").
type Module struct {
	Path  string
	Types []*types.TypeDecl
}

// Loader is the interface package typer depends on; nothing in C3-C9
// constructs a Registry directly, so a real parser-backed implementation
// can replace Registry without the typer changing.
type Loader interface {
	LoadModule(path string, pos source.Position) (*Module, error)
	LoadTypeDef(path string, pos source.Position) (*types.TypeDecl, error)
	LoadInstance(ref *ast.TypeRef, pos source.Position, allowParamDefaults bool) (types.Type, error)
	LoadComplexType(pos source.Position, ref *ast.TypeRef) (types.Type, error)
}

// Registry is the in-memory reference Loader (C11), grounded on the
// teacher's module-scoped symbol registration
// (internal/symbols.SymbolTable) but factored into its own package since
// spec draws the loader as an explicit, separately-replaceable
// collaborator rather than folding it into scope management.
type Registry struct {
	modules map[string]*Module
	types   map[string]*types.TypeDecl // qualified name -> decl
}

// NewRegistry returns an empty registry; callers populate it with
// Register before constructing a typing context against it.
func NewRegistry() *Registry {
	return &Registry{modules: map[string]*Module{}, types: map[string]*types.TypeDecl{}}
}

// Register adds decl to path's module, indexing it for LoadTypeDef by its
// qualified name. Call this ahead of typing — Registry never mutates
// itself once typing starts.
func (r *Registry) Register(path string, decl *types.TypeDecl) {
	decl.Module = path
	m, ok := r.modules[path]
	if !ok {
		m = &Module{Path: path}
		r.modules[path] = m
	}
	m.Types = append(m.Types, decl)
	r.types[qualify(path, decl.Name)] = decl
	r.types[decl.Name] = decl
}

func qualify(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func (r *Registry) LoadModule(path string, pos source.Position) (*Module, error) {
	m, ok := r.modules[path]
	if !ok {
		return nil, diagnostics.ModuleNotFound(pos, path, firstCapitalizedSegment(path))
	}
	return m, nil
}

func (r *Registry) LoadTypeDef(path string, pos source.Position) (*types.TypeDecl, error) {
	if d, ok := r.types[path]; ok {
		return d, nil
	}
	return nil, diagnostics.ModuleNotFound(pos, path, firstCapitalizedSegment(path))
}

// LoadInstance resolves a written type reference to a concrete Type,
// applying type arguments. allowParamDefaults permits omitted type
// arguments to default to Dynamic rather than erroring, mirroring the
// real loader's `load_instance` flexibility for partially-applied
// generics used inside `untyped` code and macro-produced trees.
func (r *Registry) LoadInstance(ref *ast.TypeRef, pos source.Position, allowParamDefaults bool) (types.Type, error) {
	if ref == nil {
		return types.TDynamic{}, nil
	}
	decl, err := r.LoadTypeDef(ref.Path, pos)
	if err != nil {
		return nil, err
	}
	if len(decl.TypeParams) == 0 {
		return types.TInst{Decl: decl}, nil
	}
	params := make([]types.Type, len(decl.TypeParams))
	for i := range decl.TypeParams {
		if i < len(ref.Args) {
			t, err := r.LoadInstance(ref.Args[i], pos, allowParamDefaults)
			if err != nil {
				return nil, err
			}
			params[i] = t
		} else if allowParamDefaults {
			params[i] = types.TDynamic{}
		} else {
			return nil, diagnostics.Custom(pos, fmt.Sprintf("Not enough type parameters for %s", ref.Path))
		}
	}
	return types.TInst{Decl: decl, Params: params}, nil
}

// LoadComplexType resolves an annotation that may denote a function type,
// an anonymous structure, or a nominal instance. The in-memory registry
// only ever sees nominal paths (function/anon syntax is parser-level
// sugar this module never receives, since there is no parser); it
// delegates to LoadInstance.
func (r *Registry) LoadComplexType(pos source.Position, ref *ast.TypeRef) (types.Type, error) {
	return r.LoadInstance(ref, pos, true)
}

func firstCapitalizedSegment(path string) string {
	start := 0
	for i, r := range path {
		if r == '.' {
			start = i + 1
			continue
		}
		if r >= 'A' && r <= 'Z' {
			end := len(path)
			for j := start; j < len(path); j++ {
				if path[j] == '.' {
					end = j
					break
				}
			}
			return path[start:end]
		}
	}
	return path
}
