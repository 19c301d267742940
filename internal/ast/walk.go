package ast

// Walk visits n and every node reachable from it, calling visit on each.
// If visit returns false for a node, that node's children are skipped but
// walking continues with its siblings. This is the traversal the
// reachability walker (finalize.go, spec §4.7) uses to find New
// expressions, static-method Calls, and enum-match subjects nested inside
// a static initializer's expression tree.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	switch v := n.(type) {
	case *FieldAccess:
		Walk(v.Receiver, visit)
	case *Closure:
		Walk(v.Receiver, visit)
	case *ArraySubscript:
		Walk(v.Array, visit)
		Walk(v.Index, visit)
	case *Call:
		Walk(v.Callee, visit)
		for _, a := range v.Args {
			Walk(a, visit)
		}
	case *New:
		for _, a := range v.Args {
			Walk(a, visit)
		}
	case *Binop:
		Walk(v.Left, visit)
		Walk(v.Right, visit)
	case *Unop:
		Walk(v.Operand, visit)
	case *Assign:
		Walk(v.Target, visit)
		Walk(v.Value, visit)
	case *AssignOp:
		Walk(v.Target, visit)
		Walk(v.Value, visit)
	case *ArrayLiteral:
		for _, e := range v.Elements {
			Walk(e, visit)
		}
	case *ObjectLiteral:
		for _, f := range v.Fields {
			Walk(f.Value, visit)
		}
	case *FunctionLiteral:
		Walk(v.Body, visit)
	case *Cast:
		Walk(v.Value, visit)
	case *Untyped:
		Walk(v.Value, visit)
	case *Display:
		Walk(v.Value, visit)
	case *Ternary:
		Walk(v.Cond, visit)
		Walk(v.Then, visit)
		Walk(v.Else, visit)
	case *BlockExpr:
		Walk(v.Body, visit)
	case *ExprStmt:
		Walk(v.Expr, visit)
	case *VarDecl:
		Walk(v.Init, visit)
	case *Block:
		for _, s := range v.Statements {
			Walk(s, visit)
		}
	case *If:
		Walk(v.Cond, visit)
		Walk(v.Then, visit)
		Walk(v.Else, visit)
	case *While:
		Walk(v.Cond, visit)
		Walk(v.Body, visit)
	case *For:
		Walk(v.Iterable, visit)
		Walk(v.Body, visit)
	case *Switch:
		Walk(v.Subject, visit)
		for _, c := range v.Cases {
			Walk(c.Body, visit)
		}
		Walk(v.Default, visit)
	case *SwitchExpr:
		Walk(v.Switch, visit)
	case *Return:
		Walk(v.Value, visit)
	case *Throw:
		Walk(v.Value, visit)
	case *Try:
		Walk(v.Body, visit)
		for _, c := range v.Catches {
			Walk(c.Body, visit)
		}
	}
}
