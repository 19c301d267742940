package ast

// Literal constants. Keyword identifiers (true/false/this/super/null) are
// constant-folded to these by the access resolver (spec §4.2), except
// This/Super which keep their own node kind since their legality depends
// on context (static/in_super_call).

type IntLiteral struct {
	ExprBase
	Value int64
}

type FloatLiteral struct {
	ExprBase
	Value float64
}

type StringLiteral struct {
	ExprBase
	Value string
}

type BoolLiteral struct {
	ExprBase
	Value bool
}

type NullLiteral struct {
	ExprBase
}

// This/Super reference the enclosing instance or its superclass.
type This struct{ ExprBase }
type Super struct{ ExprBase }

// Ident is a bare identifier before access-kind resolution decides what it
// names (local, member, static, enum constructor, type, or using-extension).
type Ident struct {
	ExprBase
	Name string
}

// FieldAccess is `receiver.name`. Array subscript has its own node since
// its element-type rule (cl_array_access / array unification) is distinct
// from field_access's property dispatch table.
type FieldAccess struct {
	ExprBase
	Receiver Expression
	Name     string
}

// Closure is a bound method or function-typed field read off Receiver
// without being called. It is distinct from FieldAccess so that downstream
// code can tell "callable value" apart from "property reference" without
// re-deriving it from the field's type (spec §4.3 "Closure emission rule").
type Closure struct {
	ExprBase
	Receiver Expression
	Method   string
}

// ArraySubscript is `e1[e2]` (spec §4.2 array subscript rule).
type ArraySubscript struct {
	ExprBase
	Array Expression
	Index Expression
}

// Call is any invocation, including one already classified as a macro or
// using-extension call by the access resolver before the typer re-visits
// the Callee.
type Call struct {
	ExprBase
	Callee Expression
	Args   []Expression
}

// New is `new Path<Targs>(args)`.
type New struct {
	ExprBase
	TypePath *TypeRef
	Args     []Expression
}

// Binop is a binary operator application; Op is the surface token
// ("+","-","*","/","%","==","!=","<","<=",">",">=","&&","||","&","|","^",
// "<<",">>","...").
type Binop struct {
	ExprBase
	Op    string
	Left  Expression
	Right Expression
}

// Unop is a unary operator; Postfix distinguishes `x++` from `++x`, and
// Op additionally covers prefix `!`/`-`/`~`.
type Unop struct {
	ExprBase
	Op      string
	Operand Expression
	Postfix bool
}

// Assign is plain `target = value`.
type Assign struct {
	ExprBase
	Target Expression
	Value  Expression
}

// AssignOp is `target op= value`; Op is the bare operator ("+","-",...)
// without the trailing `=`. The typer classifies Target's access kind and
// rewrites per spec §4.5 "Compound assignment".
type AssignOp struct {
	ExprBase
	Op     string
	Target Expression
	Value  Expression
}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	ExprBase
	Elements []Expression
}

// ObjectField is one `name: value` pair of an ObjectLiteral. The literal
// keeps its fields as a slice in source order; the TAnon the typer
// synthesizes from it stores them in a map, so that order is not carried
// into the type.
type ObjectField struct {
	Name  string
	Value Expression
}

// ObjectLiteral is `{ name: value, ... }`, the source of most TAnon
// instances the typer creates.
type ObjectLiteral struct {
	ExprBase
	Fields []ObjectField
}

// FunctionLiteral is an anonymous function expression. RetType is the
// optional declared return annotation; when nil the return type is
// inferred from the body. ParamType hinting (spec §4.5 "Function literal")
// is threaded by the typer via the enclosing call's expected-type context,
// not stored on this node.
type FunctionLiteral struct {
	ExprBase
	Params  []Param
	RetType *TypeRef
	Body    Statement
}

// Param is one formal parameter of a FunctionLiteral or, at the
// declaration level the loader hands the typer, of a method signature
// represented for call-matching purposes as []types.TFunArg instead.
type Param struct {
	Name     string
	Type     *TypeRef
	Optional bool
}

// Cast is `cast(e)` (Target == nil, unchecked) or `cast(e, T)` (checked,
// spec §4.5 "Cast").
type Cast struct {
	ExprBase
	Value  Expression
	Target *TypeRef
}

// Untyped marks an `untyped e` block: the typer sets ctx.Untyped while
// visiting Value.
type Untyped struct {
	ExprBase
	Value Expression
}

// Display wraps an expression as an editor-integration display query
// (spec §4.5 "Display"); typing it raises the non-error Display signal
// rather than returning normally.
type Display struct {
	ExprBase
	Value Expression
}

// Ternary is `cond ? then : else`.
type Ternary struct {
	ExprBase
	Cond Expression
	Then Expression
	Else Expression
}

// Block used as an expression (the last statement's value, if any,
// becomes the block's value under need_val=true) is represented by
// wrapping ast.Block in BlockExpr so Expression's Type()/SetType() have
// somewhere to live; plain statement-position blocks use Block directly.
type BlockExpr struct {
	ExprBase
	Body *Block
}
