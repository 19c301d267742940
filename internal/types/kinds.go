package types

// Kind is the coarse numeric/string/other classification operator typing
// (spec §4.1) dispatches on. It is computed from a Type's nominal identity,
// not its structure, so the context factory (C10) must tag the built-in
// Int/Float/String declarations before Classify can recognize them.
type Kind int

const (
	KUnk    Kind = iota // unresolved monomorph; operator typing defers
	KDyn                // Dynamic; operator typing accepts and returns Dynamic
	KInt
	KFloat
	KString
	KOther
	KParam // a rigid type parameter; Promote treats it as non-numeric (KOther)
)

// NumericTags lets the context factory mark which TypeDecl is Int, Float
// and String without Classify needing to special-case a hardcoded name —
// a backend with a different Int representation (spec's `flash9`/`cpp`
// split) still classifies correctly as long as it registers its own decls
// here once, at boot.
type NumericTags struct {
	Int, Float, String *TypeDecl
}

// Classify implements spec §4.1's numeric kind lattice. It follows
// monomorphs first so a bound `Unknown<0> = Int` classifies as KInt.
func Classify(t Type, tags NumericTags) Kind {
	switch v := Follow(t).(type) {
	case *TMono:
		return KUnk
	case TDynamic:
		return KDyn
	case TParam:
		return KParam
	case TInst:
		switch v.Decl {
		case tags.Int:
			return KInt
		case tags.Float:
			return KFloat
		case tags.String:
			return KString
		default:
			return KOther
		}
	default:
		return KOther
	}
}

// UnifyInt is the heuristic, deliberately non-orthogonal rule preserved
// verbatim from the original typer (spec §9 Open Questions: "unify_int
// heuristic preserved verbatim"): when one operand of a binary arithmetic
// op is an unresolved monomorph and the other already classifies as KInt,
// the monomorph is bound to Int rather than left unknown or defaulted to
// Float. This only ever fires for `+ - * / %` between exactly one
// KUnk operand and one KInt operand; every other pairing goes through the
// ordinary promotion table in the expression typer.
func UnifyInt(mono Type, other Type, tags NumericTags) bool {
	m, ok := Follow(mono).(*TMono)
	if !ok {
		return false
	}
	if Classify(other, tags) != KInt || tags.Int == nil {
		return false
	}
	return Unify(m, TInst{Decl: tags.Int}) == nil
}

// Promote computes the result kind of a binary arithmetic operator given
// its two operand kinds, per spec §4.1/§4.5's operator typing table:
// Int op Int = Int; anything else numeric promotes to Float; String and
// every other non-numeric kind give KOther, whatever the operator;
// Dynamic infects the result; KUnk defers. The expression typer's own
// operator rules (operators.go) do not call Promote.
func Promote(a, b Kind) Kind {
	switch {
	case a == KDyn || b == KDyn:
		return KDyn
	case a == KUnk || b == KUnk:
		return KUnk
	case a == KInt && b == KInt:
		return KInt
	case isNumeric(a) && isNumeric(b):
		return KFloat
	default:
		return KOther
	}
}

func isNumeric(k Kind) bool {
	return k == KInt || k == KFloat
}
