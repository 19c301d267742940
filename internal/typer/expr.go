// C6: the expression typer (spec §4.5). ExprType is the recursive-descent
// entry point every other component calls back into; typeExprHinted is the
// bidirectional variant call-parameter matching (C4) and function-literal
// inference use to seed an expected type.
package typer

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/source"
	"github.com/zinclang/zinc/internal/types"
)

// ExprType types e in place and returns the (possibly rewritten) node to
// use in its position — rewriting happens for compound assignment,
// increment/decrement over a Set access, and Inline/Using lowering.
func ExprType(ctx *Context, e ast.Expression) (ast.Expression, error) {
	return typeExprHinted(ctx, e, nil)
}

// typeExprHinted is ExprType with an expected type threaded in (spec §4.4
// "type with expected type hint equal to the formal's type"; §4.5
// "Function literal" param_type hinting).
func typeExprHinted(ctx *Context, e ast.Expression, hint types.Type) (ast.Expression, error) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		n.SetType(intTypeOf(ctx))
		return n, nil

	case *ast.FloatLiteral:
		n.SetType(floatTypeOf(ctx))
		return n, nil

	case *ast.StringLiteral:
		n.SetType(ctx.stringType())
		return n, nil

	case *ast.BoolLiteral:
		n.SetType(boolTypeOf(ctx))
		return n, nil

	case *ast.NullLiteral:
		if hint != nil {
			n.SetType(hint)
		} else {
			n.SetType(ctx.Fresh("Null"))
		}
		return n, nil

	case *ast.This, *ast.Super:
		ak, err := TypeAccess(ctx, e, AccessGet, false)
		if err != nil {
			return nil, err
		}
		return AccGet(ctx, ak, e.Pos())

	case *ast.Ident:
		ak, err := TypeAccess(ctx, n, AccessGet, false)
		if err != nil {
			return nil, err
		}
		return AccGet(ctx, ak, n.Pos())

	case *ast.FieldAccess:
		ak, err := TypeAccess(ctx, n, AccessGet, false)
		if err != nil {
			return nil, err
		}
		return AccGet(ctx, ak, n.Pos())

	case *ast.ArraySubscript:
		return typeArraySubscript(ctx, n)

	case *ast.Call:
		return typeCall(ctx, n)

	case *ast.New:
		return typeNew(ctx, n)

	case *ast.Binop:
		return typeBinopExpr(ctx, n)

	case *ast.Unop:
		return typeUnop(ctx, n)

	case *ast.Assign:
		return typeAssign(ctx, n)

	case *ast.AssignOp:
		return typeAssignOp(ctx, n)

	case *ast.ArrayLiteral:
		return typeArrayLiteral(ctx, n, hint)

	case *ast.ObjectLiteral:
		return typeObjectLiteral(ctx, n)

	case *ast.FunctionLiteral:
		return typeFunctionLiteral(ctx, n, hint)

	case *ast.Cast:
		return typeCast(ctx, n)

	case *ast.Untyped:
		return typeUntyped(ctx, n)

	case *ast.Display:
		return typeDisplay(ctx, n)

	case *ast.Ternary:
		return typeTernary(ctx, n)

	case *ast.SwitchExpr:
		return typeSwitchExpr(ctx, n, true)

	case *ast.BlockExpr:
		return typeBlockExpr(ctx, n)

	default:
		return nil, diagnostics.Custom(e.Pos(), "Unsupported expression form")
	}
}

func typeArraySubscript(ctx *Context, n *ast.ArraySubscript) (ast.Expression, error) {
	arr, err := ExprType(ctx, n.Array)
	if err != nil {
		return nil, err
	}
	n.Array = arr
	idx, err := typeExprHinted(ctx, n.Index, intTypeOf(ctx))
	if err != nil {
		return nil, err
	}
	n.Index = idx
	if err := types.UnifyRaise(idx.Type(), intTypeOf(ctx)); err != nil {
		return nil, diagnostics.Unify(n.Pos(), idx.Type(), intTypeOf(ctx), "")
	}
	n.SetType(TypeArraySubscript(ctx, arr.Type()))
	return n, nil
}

// typeCall implements the call-expression leg of C6, dispatching the
// callee through the access resolver (so Macro/Using/Inline call-site
// forms are discovered) before running C4 against whatever function type
// results.
func typeCall(ctx *Context, n *ast.Call) (ast.Expression, error) {
	if id, ok := n.Callee.(*ast.Ident); ok && id.Name == "trace" && ctx.G.NoTraces {
		// -no-traces: a trace(...) call becomes a null of type Void.
		return &ast.NullLiteral{ExprBase: ast.ExprBase{Base: ast.Base{P: n.Pos()}, T: voidType(ctx)}}, nil
	}
	var ak AccessKind
	var err error
	switch callee := n.Callee.(type) {
	case *ast.Ident:
		ak, err = TypeAccess(ctx, callee, AccessCall, false)
	case *ast.FieldAccess:
		ak, err = TypeAccess(ctx, callee, AccessCall, false)
	default:
		typed, terr := ExprType(ctx, callee)
		if terr != nil {
			return nil, terr
		}
		ak = ExprAccess{Expr: typed}
	}
	if err != nil {
		return nil, err
	}

	switch v := ak.(type) {
	case MacroAccess:
		return typeMacroCall(ctx, n, v)

	case UsingAccess:
		tfun, ok := types.Follow(v.Static.Type).(types.TFun)
		if !ok || len(tfun.Args) == 0 {
			return nil, diagnostics.Custom(n.Pos(), "Using-extension target is not callable")
		}
		typedArgs, err := UnifyCallParams(ctx, v.Static.Name, n.Args, tfun.Args[1:], n.Pos(), false)
		if err != nil {
			return nil, err
		}
		fn := methodRefExpr(v.Static.Name, &ast.Ident{Name: v.StaticOwner.Name, ExprBase: ast.ExprBase{T: types.TInst{Decl: v.StaticOwner}}}, v.Static.Type)
		allArgs := append([]ast.Expression{v.FirstArg}, typedArgs...)
		call := &ast.Call{ExprBase: ast.ExprBase{Base: ast.Base{P: n.Pos()}, T: tfun.Ret}, Callee: fn, Args: allArgs}
		return call, nil

	case InlineAccess:
		tfun, ok := types.Follow(v.Type).(types.TFun)
		if !ok {
			return nil, diagnostics.Custom(n.Pos(), "Inline target is not callable")
		}
		if ctx.G.NoInline {
			n.Callee = methodRefExpr(v.Field.Name, v.Receiver, v.Type)
			typedArgs, err := UnifyCallParams(ctx, v.Field.Name, n.Args, tfun.Args, n.Pos(), false)
			if err != nil {
				return nil, err
			}
			n.Args = typedArgs
			n.SetType(tfun.Ret)
			return n, nil
		}
		typedArgs, err := UnifyCallParams(ctx, v.Field.Name, n.Args, tfun.Args, n.Pos(), true)
		if err != nil {
			return nil, err
		}
		if v.Field.Expr == nil {
			return nil, diagnostics.Custom(n.Pos(), "Inline method "+v.Field.Name+" has no body")
		}
		body, ok := v.Field.Expr.(ast.Expression)
		if !ok {
			// Statement-bodied inline methods are not reducible to a single
			// spliced expression in this model; fall back to an ordinary call.
			n.Callee = methodRefExpr(v.Field.Name, v.Receiver, v.Type)
			n.Args = typedArgs
			n.SetType(tfun.Ret)
			return n, nil
		}
		cloned := CloneAtCallSite(body, n.Pos())
		cloned.SetType(tfun.Ret)
		return cloned, nil

	case ExprAccess:
		callee := v.Expr
		tfun, ok := types.Follow(callee.Type()).(types.TFun)
		if !ok {
			if _, isDyn := types.Follow(callee.Type()).(types.TDynamic); isDyn {
				typedArgs := make([]ast.Expression, len(n.Args))
				for i, a := range n.Args {
					ta, err := ExprType(ctx, a)
					if err != nil {
						return nil, err
					}
					typedArgs[i] = ta
				}
				n.Callee = callee
				n.Args = typedArgs
				n.SetType(types.TDynamic{})
				return n, nil
			}
			return nil, diagnostics.Custom(n.Pos(), "Not a function: "+callee.Type().String())
		}
		typedArgs, err := UnifyCallParams(ctx, calleeName(n.Callee), n.Args, tfun.Args, n.Pos(), false)
		if err != nil {
			return nil, err
		}
		n.Callee = callee
		n.Args = typedArgs
		n.SetType(tfun.Ret)
		return n, nil

	default:
		return nil, diagnostics.Custom(n.Pos(), "Not callable")
	}
}

func calleeName(e ast.Expression) string {
	switch v := e.(type) {
	case *ast.Ident:
		return v.Name
	case *ast.FieldAccess:
		return v.Name
	default:
		return "<anonymous>"
	}
}

func typeNew(ctx *Context, n *ast.New) (ast.Expression, error) {
	t, err := ctx.G.Loader.LoadInstance(n.TypePath, n.Pos(), true)
	if err != nil {
		return nil, err
	}
	inst, ok := types.Follow(t).(types.TInst)
	if !ok {
		return nil, diagnostics.Custom(n.Pos(), "Cannot instantiate "+t.String())
	}
	ctor, owner, ok := inst.Decl.FindFieldInHierarchy("new")
	var formals []types.TFunArg
	if ok {
		if tfun, isFun := types.Follow(ctor.Type).(types.TFun); isFun {
			formals = tfun.Args
		}
		if !ctor.IsPublic && (ctx.CurClass == nil || !ctx.CurClass.IsSubclassOf(owner)) {
			return nil, diagnostics.Custom(n.Pos(), "Cannot access private constructor of "+owner.Name)
		}
	}
	typedArgs, err := UnifyCallParams(ctx, "new", n.Args, formals, n.Pos(), false)
	if err != nil {
		return nil, err
	}
	n.Args = typedArgs
	n.SetType(inst)
	return n, nil
}

func typeBinopExpr(ctx *Context, n *ast.Binop) (ast.Expression, error) {
	left, err := ExprType(ctx, n.Left)
	if err != nil {
		return nil, err
	}
	n.Left = left
	right, err := typeExprHinted(ctx, n.Right, left.Type())
	if err != nil {
		return nil, err
	}
	n.Right = right
	t, err := TypeBinop(ctx, n.Op, left, right)
	if err != nil {
		return nil, err
	}
	n.SetType(t)
	return n, nil
}

// typeUnop implements prefix/postfix `++`/`--` and the simple prefix
// `!`/`-`/`~` forms (spec §4.5 "Unary ++/--"): Set-access operands are
// rewritten into a temp-binding block so the receiver is evaluated once.
func typeUnop(ctx *Context, n *ast.Unop) (ast.Expression, error) {
	if n.Op != "++" && n.Op != "--" {
		operand, err := ExprType(ctx, n.Operand)
		if err != nil {
			return nil, err
		}
		n.Operand = operand
		switch n.Op {
		case "!":
			n.SetType(boolTypeOf(ctx))
		case "-", "~":
			n.SetType(operand.Type())
		default:
			n.SetType(operand.Type())
		}
		return n, nil
	}

	ak, err := TypeAccess(ctx, n.Operand, AccessSet, false)
	if err != nil {
		return nil, err
	}
	switch v := ak.(type) {
	case ExprAccess:
		n.Operand = v.Expr
		n.SetType(v.Expr.Type())
		return n, nil

	case SetAccess:
		one := &ast.IntLiteral{ExprBase: ast.ExprBase{T: intTypeOf(ctx)}, Value: 1}
		op := "+"
		if n.Op == "--" {
			op = "-"
		}
		return rewriteSetCompound(ctx, v, op, one, n.Pos())

	default:
		return nil, diagnostics.Custom(n.Pos(), "Invalid assignment target")
	}
}

// typeAssign implements plain `target = value`.
func typeAssign(ctx *Context, n *ast.Assign) (ast.Expression, error) {
	ak, err := TypeAccess(ctx, n.Target, AccessSet, false)
	if err != nil {
		return nil, err
	}
	switch v := ak.(type) {
	case ExprAccess:
		val, err := typeExprHinted(ctx, n.Value, v.Expr.Type())
		if err != nil {
			return nil, err
		}
		if err := types.UnifyRaise(val.Type(), v.Expr.Type()); err != nil {
			return nil, diagnostics.Unify(n.Pos(), val.Type(), v.Expr.Type(), "")
		}
		n.Target = v.Expr
		n.Value = val
		n.SetType(val.Type())
		return n, nil

	case SetAccess:
		val, err := typeExprHinted(ctx, n.Value, v.PropType)
		if err != nil {
			return nil, err
		}
		if err := types.UnifyRaise(val.Type(), v.PropType); err != nil {
			return nil, diagnostics.Unify(n.Pos(), val.Type(), v.PropType, "")
		}
		call := &ast.Call{
			ExprBase: ast.ExprBase{Base: ast.Base{P: n.Pos()}, T: v.PropType},
			Callee:   methodRefExpr(v.Setter, v.Receiver, types.TFun{Args: []types.TFunArg{{Name: "v", Type: v.PropType}}, Ret: v.PropType}),
			Args:     []ast.Expression{val},
		}
		return call, nil

	default:
		return nil, diagnostics.Custom(n.Pos(), "Invalid assignment target")
	}
}

// typeAssignOp implements `x op= y` (spec §4.5 "Compound assignment").
func typeAssignOp(ctx *Context, n *ast.AssignOp) (ast.Expression, error) {
	ak, err := TypeAccess(ctx, n.Target, AccessSet, false)
	if err != nil {
		return nil, err
	}
	switch v := ak.(type) {
	case ExprAccess:
		val, err := ExprType(ctx, n.Value)
		if err != nil {
			return nil, err
		}
		t, err := TypeBinop(ctx, n.Op, v.Expr, val)
		if err != nil {
			return nil, err
		}
		n.Target = v.Expr
		n.Value = val
		n.SetType(t)
		return n, nil

	case SetAccess:
		val, err := ExprType(ctx, n.Value)
		if err != nil {
			return nil, err
		}
		return rewriteSetCompound(ctx, v, n.Op, val, n.Pos())

	default:
		return nil, diagnostics.Custom(n.Pos(), "Invalid assignment target")
	}
}

// rewriteSetCompound implements the `{let v = receiver; v.set_x(v.get_x()
// op rhs)}` expansion (spec §4.5, S1, invariant 3): the receiver is bound
// to a temp exactly once regardless of how many times the property is
// read/written by the expansion.
func rewriteSetCompound(ctx *Context, v SetAccess, op string, rhs ast.Expression, pos source.Position) (ast.Expression, error) {
	tempType := v.Receiver.Type()
	tempName := ctx.Scope.Shadow("$tmp", tempType)
	tempRef := &ast.Ident{Name: tempName, ExprBase: ast.ExprBase{T: tempType}}
	ctx.Scope.Define(tempName, tempType)

	getCall := &ast.Call{
		ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: v.PropType},
		Callee:   methodRefExpr(readAccessorFromSetter(v.Setter), tempRef, types.TFun{Ret: v.PropType}),
	}
	computed, err := TypeBinop(ctx, op, getCall, rhs)
	if err != nil {
		return nil, err
	}
	binop := &ast.Binop{ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: computed}, Op: op, Left: getCall, Right: rhs}
	setCall := &ast.Call{
		ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: v.PropType},
		Callee:   methodRefExpr(v.Setter, tempRef, types.TFun{Args: []types.TFunArg{{Name: "v", Type: v.PropType}}, Ret: v.PropType}),
		Args:     []ast.Expression{binop},
	}
	letStmt := &ast.VarDecl{StmtBase: ast.StmtBase{Base: ast.Base{P: pos}}, Name: tempName, Init: v.Receiver}
	block := &ast.Block{StmtBase: ast.StmtBase{Base: ast.Base{P: pos}}, Statements: []ast.Statement{
		letStmt,
		&ast.ExprStmt{StmtBase: ast.StmtBase{Base: ast.Base{P: pos}}, Expr: setCall},
	}}
	return &ast.BlockExpr{ExprBase: ast.ExprBase{Base: ast.Base{P: pos}, T: v.PropType}, Body: block}, nil
}

func typeArrayLiteral(ctx *Context, n *ast.ArrayLiteral, hint types.Type) (ast.Expression, error) {
	var elem types.Type
	if hint != nil {
		if inst, ok := types.Follow(hint).(types.TInst); ok && inst.Decl == ctx.G.ArrayDecl && len(inst.Params) > 0 {
			elem = inst.Params[0]
		}
	}
	if elem == nil {
		elem = ctx.Fresh("ArrayElem")
	}
	for i, el := range n.Elements {
		typed, err := typeExprHinted(ctx, el, elem)
		if err != nil {
			return nil, err
		}
		if err := types.UnifyRaise(typed.Type(), elem); err != nil {
			return nil, diagnostics.Unify(el.Pos(), typed.Type(), elem, "")
		}
		n.Elements[i] = typed
	}
	n.SetType(types.TInst{Decl: ctx.G.ArrayDecl, Params: []types.Type{elem}})
	return n, nil
}

// typeObjectLiteral produces an Opened TAnon with one field per entry
// (spec §9 "Open anonymous types"). TAnon.Fields is a map, so the
// entries' source order is not kept in the type.
func typeObjectLiteral(ctx *Context, n *ast.ObjectLiteral) (ast.Expression, error) {
	fields := make(map[string]types.Type, len(n.Fields))
	for i, f := range n.Fields {
		typed, err := ExprType(ctx, f.Value)
		if err != nil {
			return nil, err
		}
		n.Fields[i].Value = typed
		fields[f.Name] = typed.Type()
	}
	anon := &types.TAnon{Fields: fields, Status: types.AnonOpened}
	ctx.Opened = append(ctx.Opened, anon)
	n.SetType(*anon)
	return n, nil
}

// typeFunctionLiteral implements spec §4.5 "Function literal": a
// contextual param_type hint, when present, seeds unresolved parameter
// monomorphs before the body is typed against a fresh enclosing return.
func typeFunctionLiteral(ctx *Context, n *ast.FunctionLiteral, hint types.Type) (ast.Expression, error) {
	var hintFun types.TFun
	hasHint := false
	if hint != nil {
		if tf, ok := types.Follow(hint).(types.TFun); ok {
			hintFun = tf
			hasHint = true
		}
	}

	args := make([]types.TFunArg, len(n.Params))
	child := ctx.EnterBlock()
	for i, p := range n.Params {
		var pt types.Type
		if p.Type != nil {
			t, err := ctx.G.Loader.LoadComplexType(n.Pos(), p.Type)
			if err != nil {
				return nil, err
			}
			pt = t
		} else if hasHint && i < len(hintFun.Args) {
			pt = hintFun.Args[i].Type
		} else {
			pt = child.Fresh("Param")
		}
		args[i] = types.TFunArg{Name: p.Name, Type: pt, Optional: p.Optional}
		child.Scope.Define(p.Name, pt)
	}

	var ret types.Type
	if n.RetType != nil {
		t, err := ctx.G.Loader.LoadComplexType(n.Pos(), n.RetType)
		if err != nil {
			return nil, err
		}
		ret = t
	} else if hasHint {
		ret = hintFun.Ret
	} else {
		ret = child.Fresh("Return")
	}
	child.Ret = ret
	child.InLoop = false

	body, err := StmtType(child, n.Body, false)
	if err != nil {
		return nil, err
	}
	n.Body = body
	n.SetType(types.TFun{Args: args, Ret: ret})
	return n, nil
}

func typeCast(ctx *Context, n *ast.Cast) (ast.Expression, error) {
	val, err := ExprType(ctx, n.Value)
	if err != nil {
		return nil, err
	}
	n.Value = val
	if n.Target == nil {
		n.SetType(ctx.Fresh("Cast"))
		return n, nil
	}
	t, err := ctx.G.Loader.LoadInstance(n.Target, n.Pos(), true)
	if err != nil {
		return nil, err
	}
	inst, ok := types.Follow(t).(types.TInst)
	if !ok || (inst.Decl.Kind != types.DeclClass && inst.Decl.Kind != types.DeclEnum) {
		return nil, diagnostics.Custom(n.Pos(), "Cannot cast to "+t.String())
	}
	for _, p := range inst.Params {
		if _, isDyn := p.(types.TDynamic); !isDyn {
			return nil, diagnostics.Custom(n.Pos(), "Cast target type parameters must be Dynamic")
		}
	}
	n.SetType(t)
	return n, nil
}

func typeUntyped(ctx *Context, n *ast.Untyped) (ast.Expression, error) {
	prev := ctx.Untyped
	ctx.Untyped = true
	val, err := ExprType(ctx, n.Value)
	ctx.Untyped = prev
	if err != nil {
		return nil, err
	}
	n.Value = val
	n.SetType(val.Type())
	return n, nil
}

// typeDisplay implements spec §4.5 "Display": collects the reachable
// field set of the subject (hierarchy merge plus matching using-extension
// methods) into an anon type and raises the non-error Display signal.
func typeDisplay(ctx *Context, n *ast.Display) (ast.Expression, error) {
	val, err := ExprType(ctx, n.Value)
	if err != nil {
		return nil, err
	}
	n.Value = val

	fields := map[string]types.Type{}
	if inst, ok := types.Follow(val.Type()).(types.TInst); ok {
		for cur := inst.Decl; cur != nil; {
			for _, f := range cur.Fields {
				if _, exists := fields[f.Name]; !exists {
					fields[f.Name] = f.Type
				}
			}
			if cur.Super == nil {
				break
			}
			cur = cur.Super.Decl
		}
		for _, decl := range ctx.Using.All() {
			for _, f := range decl.Fields {
				if f.Kind != types.FieldMethod || !f.IsStatic {
					continue
				}
				tfun, ok := types.Follow(f.Type).(types.TFun)
				if !ok || len(tfun.Args) == 0 {
					continue
				}
				if firstParamMatches(tfun.Args[0].Type, val.Type()) {
					if _, exists := fields[f.Name]; !exists {
						fields[f.Name] = f.Type
					}
				}
			}
		}
	}
	anon := types.TAnon{Fields: fields, Status: types.AnonClosed}
	return nil, displaySignal(n.Pos(), anon)
}

// displaySignal wraps diagnostics.Display as an error so it propagates
// through the ordinary error-return path while remaining distinguishable
// from a real failure by callers that type-switch on it.
type displayError struct{ d diagnostics.Display }

func (e displayError) Error() string { return "display query" }

func displaySignal(pos source.Position, t types.Type) error {
	return displayError{d: diagnostics.Display{Pos: pos, Type: t}}
}

func typeTernary(ctx *Context, n *ast.Ternary) (ast.Expression, error) {
	cond, err := typeExprHinted(ctx, n.Cond, boolTypeOf(ctx))
	if err != nil {
		return nil, err
	}
	n.Cond = cond
	if err := types.UnifyRaise(cond.Type(), boolTypeOf(ctx)); err != nil {
		return nil, diagnostics.Unify(n.Pos(), cond.Type(), boolTypeOf(ctx), "")
	}
	then, err := ExprType(ctx, n.Then)
	if err != nil {
		return nil, err
	}
	n.Then = then
	els, err := typeExprHinted(ctx, n.Else, then.Type())
	if err != nil {
		return nil, err
	}
	n.Else = els
	lub, err := leastUpperBound(ctx, then.Type(), els.Type(), n.Pos())
	if err != nil {
		return nil, err
	}
	n.SetType(lub)
	return n, nil
}

func typeBlockExpr(ctx *Context, n *ast.BlockExpr) (ast.Expression, error) {
	typed, err := StmtType(ctx.EnterBlock(), n.Body, true)
	if err != nil {
		return nil, err
	}
	blk, ok := typed.(*ast.Block)
	if !ok {
		return nil, diagnostics.Custom(n.Pos(), "Block-expression lowering failed")
	}
	n.Body = blk
	if len(blk.Statements) > 0 {
		if last, ok := blk.Statements[len(blk.Statements)-1].(*ast.ExprStmt); ok {
			n.SetType(last.Expr.Type())
			return n, nil
		}
	}
	n.SetType(voidType(ctx))
	return n, nil
}

func voidType(ctx *Context) types.Type {
	if ctx.G.VoidDecl == nil {
		return types.TDynamic{}
	}
	return types.TInst{Decl: ctx.G.VoidDecl}
}

// leastUpperBound implements spec §4.5a's result-type rule, shared by
// ternary and switch/match: attempt unify(prev,cur) then unify(cur,prev).
// A null arm is not lifted to Nullable here; the two types are only
// unified.
func leastUpperBound(ctx *Context, prev, cur types.Type, pos source.Position) (types.Type, error) {
	if err := types.UnifyRaise(prev, cur); err == nil {
		return prev, nil
	}
	if err := types.UnifyRaise(cur, prev); err == nil {
		return cur, nil
	}
	return nil, diagnostics.Unify(pos, prev, cur, "branches must agree on a common type")
}
