// Switch/match elaboration (spec §4.5a). Two modes are distinguished by
// the shape of the first case's pattern: enum match (ConstructorPattern)
// or value switch (ValuePattern); mixing the two within one switch is an
// error. WildcardPattern ("_") is legal in either mode as an explicit
// catch-all case distinct from Default.
package typer

import (
	"fmt"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/types"
)

func typeSwitchExpr(ctx *Context, n *ast.SwitchExpr, needVal bool) (ast.Expression, error) {
	t, err := typeSwitch(ctx, n.Switch, needVal)
	if err != nil {
		return nil, err
	}
	n.SetType(t)
	return n, nil
}

// typeSwitch types n.Subject and every case, returning the arms' common
// least-upper-bound type (void when needVal is false).
func typeSwitch(ctx *Context, n *ast.Switch, needVal bool) (types.Type, error) {
	n.NeedVal = needVal
	subject, err := ExprType(ctx, n.Subject)
	if err != nil {
		return nil, err
	}
	n.Subject = subject

	mode := switchMode(n)
	switch mode {
	case modeEnum:
		if err := checkEnumExhaustive(ctx, n, subject.Type()); err != nil {
			return nil, err
		}
	case modeValue:
		if err := checkNoDuplicateValues(n); err != nil {
			return nil, err
		}
	case modeMixed:
		return nil, diagnostics.Custom(n.Pos(), "Cannot mix constructor and value patterns in one switch")
	}

	var result types.Type
	haveResult := false
	for i := range n.Cases {
		t, err := typeCase(ctx, &n.Cases[i], subject.Type(), needVal)
		if err != nil {
			return nil, err
		}
		if needVal {
			if !haveResult {
				result, haveResult = t, true
			} else {
				result, err = leastUpperBound(ctx, result, t, n.Pos())
				if err != nil {
					return nil, err
				}
			}
		}
	}
	if n.Default != nil {
		typed, err := StmtType(ctx, n.Default, needVal)
		if err != nil {
			return nil, err
		}
		n.Default = typed
		if needVal {
			t, err := armResultType(ctx, typed)
			if err != nil {
				return nil, err
			}
			if !haveResult {
				result, haveResult = t, true
			} else {
				result, err = leastUpperBound(ctx, result, t, n.Pos())
				if err != nil {
					return nil, err
				}
			}
		}
	}
	if !needVal || !haveResult {
		return voidType(ctx), nil
	}
	return result, nil
}

type switchModeKind int

const (
	modeValue switchModeKind = iota
	modeEnum
	modeMixed
)

func switchMode(n *ast.Switch) switchModeKind {
	sawCtor, sawValue := false, false
	for _, c := range n.Cases {
		switch c.Pattern.(type) {
		case *ast.ConstructorPattern:
			sawCtor = true
		case *ast.ValuePattern:
			sawValue = true
		case *ast.WildcardPattern:
			// compatible with either mode
		}
	}
	if sawCtor && sawValue {
		return modeMixed
	}
	if sawCtor {
		return modeEnum
	}
	return modeValue
}

func typeCase(ctx *Context, c *ast.SwitchCase, subjectType types.Type, needVal bool) (types.Type, error) {
	child := ctx.EnterBlock()
	switch p := c.Pattern.(type) {
	case *ast.ConstructorPattern:
		if inst, ok := types.Follow(subjectType).(types.TInst); ok {
			for _, ctor := range inst.Decl.Ctors {
				if ctor.Name != p.Constructor {
					continue
				}
				for i, bind := range p.Bindings {
					if bind == "" || bind == "_" {
						continue
					}
					child.Scope.Define(bind, ctor.ArgType(i))
				}
				break
			}
		}
	case *ast.ValuePattern:
		typed, err := typeExprHinted(child, p.Value, subjectType)
		if err != nil {
			return nil, err
		}
		p.Value = typed
		if err := types.UnifyRaise(typed.Type(), subjectType); err != nil {
			return nil, diagnostics.Unify(p.Pos(), typed.Type(), subjectType, "")
		}
	}
	body, err := StmtType(child, c.Body, needVal)
	if err != nil {
		return nil, err
	}
	c.Body = body
	if !needVal {
		return voidType(ctx), nil
	}
	return armResultType(ctx, body)
}

// armResultType reads off the value an already-typed arm body produces:
// a bare ExprStmt's expression type, or a Block's final ExprStmt.
func armResultType(ctx *Context, body ast.Statement) (types.Type, error) {
	switch v := body.(type) {
	case *ast.ExprStmt:
		return v.Expr.Type(), nil
	case *ast.Block:
		if len(v.Statements) == 0 {
			return voidType(ctx), nil
		}
		if last, ok := v.Statements[len(v.Statements)-1].(*ast.ExprStmt); ok {
			return last.Expr.Type(), nil
		}
		return voidType(ctx), nil
	default:
		return voidType(ctx), nil
	}
}

// checkEnumExhaustive implements spec §4.5a / S4: every constructor of
// the subject's enum must be named by some case (or a Default or a `_`
// case must be present); unmatched constructors are reported by name.
func checkEnumExhaustive(ctx *Context, n *ast.Switch, subjectType types.Type) error {
	inst, ok := types.Follow(subjectType).(types.TInst)
	if !ok || inst.Decl.Kind != types.DeclEnum {
		return diagnostics.Custom(n.Pos(), "Cannot match on non-enum type "+subjectType.String())
	}
	if n.Default != nil {
		return nil
	}
	matched := map[string]bool{}
	for _, c := range n.Cases {
		switch p := c.Pattern.(type) {
		case *ast.ConstructorPattern:
			matched[p.Constructor] = true
		case *ast.WildcardPattern:
			return nil
		}
	}
	var missing []string
	for _, ctor := range inst.Decl.Ctors {
		if !matched[ctor.Name] {
			missing = append(missing, ctor.Name)
		}
	}
	if len(missing) > 0 {
		msg := "Some constructors are not matched:"
		for _, m := range missing {
			msg += " " + m
		}
		return diagnostics.Custom(n.Pos(), msg)
	}
	return nil
}

// checkNoDuplicateValues rejects repeated literal constants among value-
// switch case patterns (spec §4.5a). Non-literal case expressions cannot
// be compared structurally here and are skipped, matching the source's
// own constant-only duplicate check.
func checkNoDuplicateValues(n *ast.Switch) error {
	seen := map[string]bool{}
	for _, c := range n.Cases {
		vp, ok := c.Pattern.(*ast.ValuePattern)
		if !ok {
			continue
		}
		key, ok := literalKey(vp.Value)
		if !ok {
			continue
		}
		if seen[key] {
			return diagnostics.Custom(c.Pattern.Pos(), "Duplicate case value")
		}
		seen[key] = true
	}
	return nil
}

func literalKey(e ast.Expression) (string, bool) {
	switch v := e.(type) {
	case *ast.IntLiteral:
		return fmt.Sprintf("i%d", v.Value), true
	case *ast.FloatLiteral:
		return fmt.Sprintf("f%v", v.Value), true
	case *ast.StringLiteral:
		return "s" + v.Value, true
	case *ast.BoolLiteral:
		return fmt.Sprintf("b%v", v.Value), true
	default:
		return "", false
	}
}
