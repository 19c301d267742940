package types

import "fmt"

// Follow dereferences a chain of bound monomorphs, returning the first
// non-TMono type (or the last unbound TMono). Every consumer of a Type that
// needs to pattern-match its shape must call Follow first — spec §3 notes
// monomorph cells "escape beyond scopes until unified or generalized".
func Follow(t Type) Type {
	for {
		m, ok := t.(*TMono)
		if !ok || m.Bound == nil {
			return t
		}
		t = m.Bound
	}
}

// Trail records monomorph bindings made during a unification attempt so a
// caller using UnifyRaise can roll them back on failure. This is the
// "undo log" strategy from DESIGN NOTES §"Speculative unification".
type Trail struct {
	bound []*TMono
}

// Rollback undoes every binding recorded in the trail, in reverse order.
func (tr *Trail) Rollback() {
	for i := len(tr.bound) - 1; i >= 0; i-- {
		tr.bound[i].Bound = nil
	}
	tr.bound = nil
}

func (tr *Trail) record(m *TMono) {
	if tr != nil {
		tr.bound = append(tr.bound, m)
	}
}

// UnifyError reports two types that could not be made equal.
type UnifyError struct {
	Left, Right Type
	Reason      string
}

func (e *UnifyError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot unify %s with %s: %s", e.Left, e.Right, e.Reason)
	}
	return fmt.Sprintf("cannot unify %s with %s", e.Left, e.Right)
}

// Unify attempts to make t1 and t2 equal, mutating monomorph cells in
// place. On failure any partial bindings already made are left in place —
// callers that need transactional semantics must use UnifyRaise instead.
func Unify(t1, t2 Type) error {
	return unify(t1, t2, nil)
}

// UnifyRaise behaves like Unify but rolls back every monomorph binding it
// made if it ultimately fails, so the caller can retry with a different
// pair without corrupting shared cells (spec §5 "speculative unification").
func UnifyRaise(t1, t2 Type) error {
	tr := &Trail{}
	if err := unify(t1, t2, tr); err != nil {
		tr.Rollback()
		return err
	}
	return nil
}

func unify(t1, t2 Type, tr *Trail) error {
	t1 = Follow(t1)
	t2 = Follow(t2)

	if m, ok := t1.(*TMono); ok {
		return bind(m, t2, tr)
	}
	if m, ok := t2.(*TMono); ok {
		return bind(m, t1, tr)
	}

	if _, ok := t1.(TDynamic); ok {
		return nil
	}
	if _, ok := t2.(TDynamic); ok {
		return nil
	}

	switch a := t1.(type) {
	case TParam:
		b, ok := t2.(TParam)
		if !ok || a.Name != b.Name {
			return &UnifyError{t1, t2, "distinct type parameters"}
		}
		return nil

	case TInst:
		b, ok := t2.(TInst)
		if !ok || a.Decl != b.Decl {
			return &UnifyError{t1, t2, "distinct nominal types"}
		}
		if len(a.Params) != len(b.Params) {
			return &UnifyError{t1, t2, "type argument count mismatch"}
		}
		for i := range a.Params {
			if err := unify(a.Params[i], b.Params[i], tr); err != nil {
				return err
			}
		}
		return nil

	case TFun:
		b, ok := t2.(TFun)
		if !ok {
			return &UnifyError{t1, t2, "not a function type"}
		}
		if len(a.Args) != len(b.Args) {
			return &UnifyError{t1, t2, "argument count mismatch"}
		}
		for i := range a.Args {
			if err := unify(a.Args[i].Type, b.Args[i].Type, tr); err != nil {
				return err
			}
		}
		return unify(a.Ret, b.Ret, tr)

	case TAnon:
		b, ok := t2.(TAnon)
		if !ok {
			return &UnifyError{t1, t2, "not a structure"}
		}
		return unifyAnon(a, b, tr)

	default:
		return &UnifyError{t1, t2, "incompatible type shapes"}
	}
}

// unifyAnon implements structural unification of two open/closed records.
// A Closed (or Const) anon accepts exactly its own fields; an Opened anon
// accepts the union, growing to absorb fields only the other side has —
// this is how Display's synthesized type and an object literal's
// progressively-discovered fields converge (DESIGN NOTES: "Open anonymous
// types").
func unifyAnon(a, b TAnon, tr *Trail) error {
	for name, at := range a.Fields {
		bt, ok := b.Fields[name]
		if !ok {
			if b.Status != AnonOpened {
				return &UnifyError{a, b, fmt.Sprintf("missing field %s", name)}
			}
			b.Fields[name] = at
			continue
		}
		if err := unify(at, bt, tr); err != nil {
			return err
		}
	}
	for name, bt := range b.Fields {
		if _, ok := a.Fields[name]; ok {
			continue
		}
		if a.Status != AnonOpened {
			return &UnifyError{a, b, fmt.Sprintf("missing field %s", name)}
		}
		a.Fields[name] = bt
	}
	return nil
}

func bind(m *TMono, t Type, tr *Trail) error {
	if other, ok := t.(*TMono); ok && other == m {
		return nil
	}
	if OccursCheck(m, t) {
		return &UnifyError{m, t, "infinite type (occurs check)"}
	}
	m.Bound = t
	tr.record(m)
	return nil
}

// OccursCheck reports whether m appears free inside t, guarding against the
// infinite types an unchecked bind would create.
func OccursCheck(m *TMono, t Type) bool {
	t = Follow(t)
	switch v := t.(type) {
	case *TMono:
		return v == m
	case TInst:
		for _, p := range v.Params {
			if OccursCheck(m, p) {
				return true
			}
		}
		return false
	case TFun:
		for _, a := range v.Args {
			if OccursCheck(m, a.Type) {
				return true
			}
		}
		return OccursCheck(m, v.Ret)
	case TAnon:
		for _, ft := range v.Fields {
			if OccursCheck(m, ft) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
