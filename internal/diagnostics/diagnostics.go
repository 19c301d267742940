// Package diagnostics implements the typer's error taxonomy (spec §7):
// a closed set of error kinds carrying a position, plus two non-error
// control-transfer signals (Display, TypePath) kept as distinct types so
// a bare `return err` can never accidentally swallow or propagate them as
// failures.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

// Kind discriminates the error-taxonomy members. It exists mainly for
// callers that want to react differently per kind (e.g. the CLI's exit
// code, or a caller retrying under `untyped`) without a type switch.
type Kind int

const (
	KindUnknownIdent Kind = iota
	KindModuleNotFound
	KindUnify
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindUnknownIdent:
		return "unknown identifier"
	case KindModuleNotFound:
		return "module not found"
	case KindUnify:
		return "type mismatch"
	case KindCustom:
		return "error"
	default:
		return "error"
	}
}

// Diagnostic is the single concrete error type the typer returns. It is
// built by the constructors below rather than directly, so every
// diagnostic is guaranteed a Kind and a Position.
type Diagnostic struct {
	Kind Kind
	Pos  source.Position
	Msg  string
	// Stack holds wrapped context, innermost first — e.g. call-parameter
	// matching wraps a Unify failure in Stack(Unify, Custom("For optional
	// argument 'x'")) per spec §7.
	Stack []*Diagnostic
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Pos, d.Msg)
	for _, s := range d.Stack {
		fmt.Fprintf(&b, "\n  %s: %s", s.Pos, s.Msg)
	}
	return b.String()
}

// UnknownIdent reports lookup exhaustion for an ordinary identifier (spec
// §4.2 step 7).
func UnknownIdent(pos source.Position, name string) *Diagnostic {
	return &Diagnostic{Kind: KindUnknownIdent, Pos: pos, Msg: fmt.Sprintf("Unknown identifier : %s", name)}
}

// ModuleNotFound reports prefix-greedy module resolution failure (spec
// §4.2), naming the first capitalized path segment per the retry rule.
func ModuleNotFound(pos source.Position, path, name string) *Diagnostic {
	return &Diagnostic{Kind: KindModuleNotFound, Pos: pos, Msg: fmt.Sprintf("Module not found : %s (looking for %s)", path, name)}
}

// Unify reports a type mismatch, optionally wrapped in a Custom context
// frame (the "Stack(Unify, Custom(...))" shape from spec §7 used by
// call-parameter matching).
func Unify(pos source.Position, left, right types.Type, context string) *Diagnostic {
	d := &Diagnostic{Kind: KindUnify, Pos: pos, Msg: fmt.Sprintf("%s should be %s", left, right)}
	if context != "" {
		d.Stack = []*Diagnostic{Custom(pos, context)}
	}
	return d
}

// Custom wraps an arbitrary composed message.
func Custom(pos source.Position, msg string) *Diagnostic {
	return &Diagnostic{Kind: KindCustom, Pos: pos, Msg: msg}
}

// Warning is a non-fatal diagnostic (e.g. the static-initialization cycle
// notice, spec §4.7/S6). It is not an error — callers collect Warnings
// separately and keep going; it never aborts typing.
type Warning struct {
	Pos source.Position
	Msg string
}

func (w Warning) String() string { return fmt.Sprintf("%s: warning: %s", w.Pos, w.Msg) }

// Display is the non-error editor-integration signal raised by a display
// query (spec §4.5 "Display", §7). Display itself does not implement
// error; the typer hands it to callers wrapped in an unexported error
// value (displayError in package typer), which callers tell apart from a
// failure by its type.
type Display struct {
	Pos  source.Position
	Type types.Type
}

// TypePath is the sibling editor-integration signal for a bare type-path
// completion query.
type TypePath struct {
	Pos  source.Position
	Path string
}
