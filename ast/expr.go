package ast

import "fmt"

type ThisExpression struct {
	NodeBase
}

// ArrayLiteral holds its elements in syntactic order. A nil slot is an
// elided entry ("hole", as in [1,,3]) — a different thing from a slot
// holding a null literal. Holes keep their position so the literal's
// arity is preserved, but shallow traversal skips them.
type ArrayLiteral struct {
	NodeBase
	Elements []Expression
}

type ObjectLiteral struct {
	NodeBase
	Properties []*Property
}

// PropertyKind tags an object-literal property as a plain value or an
// accessor.
type PropertyKind uint8

const (
	PropertyInit PropertyKind = iota
	PropertyGet
	PropertySet
)

func (k PropertyKind) String() string {
	switch k {
	case PropertyInit:
		return "init"
	case PropertyGet:
		return "get"
	case PropertySet:
		return "set"
	}
	return "unknown"
}

// Property is one entry of an object literal. Key is a *Name or a
// *Literal. For accessor properties the value is the accessor's function
// node; for init properties it is an arbitrary expression.
type Property struct {
	NodeBase
	Kind  PropertyKind
	Key   Node
	Value Expression
}

// Accessor returns the getter/setter function of an accessor property.
// Calling it on an init property, or on a malformed accessor whose value
// is not a function node, is a precondition violation and panics.
func (p *Property) Accessor() *FunctionLiteral {
	if p.Kind == PropertyInit {
		panic("ast: Accessor called on an init property")
	}
	fn, ok := p.Value.(*FunctionLiteral)
	if !ok {
		panic(fmt.Sprintf("ast: %s property value is %T, not a function node", p.Kind, p.Value))
	}
	return fn
}

// SequenceExpression is a comma sequence; its value is the last operand.
type SequenceExpression struct {
	NodeBase
	Exprs []Expression
}

type UnaryExpression struct {
	NodeBase
	Op      string
	Operand Expression
}

type BinaryExpression struct {
	NodeBase
	Op    string
	Left  Expression
	Right Expression
}

type AssignmentExpression struct {
	NodeBase
	Op    string // "=", "+=", "<<=", ...
	Left  Expression
	Right Expression
}

// IsCompound reports whether the assignment combines an operation with
// the store (any operator longer than plain "=").
func (a *AssignmentExpression) IsCompound() bool { return len(a.Op) > 1 }

type UpdateExpression struct {
	NodeBase
	Op      string // "++" or "--"
	Operand Expression
	Prefix  bool
}

type ConditionalExpression struct {
	NodeBase
	Cond Expression
	Then Expression
	Else Expression
}

// CallExpression is an invocation. New distinguishes constructor calls
// from ordinary ones.
type CallExpression struct {
	NodeBase
	Callee Expression
	Args   []Expression
	New    bool
}

// MemberExpression is static (dot) property access.
type MemberExpression struct {
	NodeBase
	Object   Expression
	Property *Name
}

// IndexExpression is dynamic (bracket) property access.
type IndexExpression struct {
	NodeBase
	Object Expression
	Index  Expression
}

// LiteralKind tags the constant carried by a Literal.
type LiteralKind uint8

const (
	LitString LiteralKind = iota
	LitNumber
	LitBool
	LitNull
)

func (k LiteralKind) String() string {
	switch k {
	case LitString:
		return "string"
	case LitNumber:
		return "number"
	case LitBool:
		return "bool"
	case LitNull:
		return "null"
	}
	return "unknown"
}

// Literal is a string, number, boolean or null constant. Raw is the
// verbatim source text it came from; the decoded value lives in the field
// matching Kind.
type Literal struct {
	NodeBase
	Kind LiteralKind
	Raw  string
	Str  string
	Num  float64
	Bool bool
}

// RegExpLiteral keeps the verbatim literal text, delimiters and flags
// included. The text stays opaque at this layer; Compile is the only
// interpretation offered.
type RegExpLiteral struct {
	NodeBase
	Raw string // e.g. "/a+b/gi"
}

func (*ThisExpression) exprNode()        {}
func (*ArrayLiteral) exprNode()          {}
func (*ObjectLiteral) exprNode()         {}
func (*FunctionLiteral) exprNode()       {}
func (*ArrowFunctionLiteral) exprNode()  {}
func (*SequenceExpression) exprNode()    {}
func (*UnaryExpression) exprNode()       {}
func (*BinaryExpression) exprNode()      {}
func (*AssignmentExpression) exprNode()  {}
func (*UpdateExpression) exprNode()      {}
func (*ConditionalExpression) exprNode() {}
func (*CallExpression) exprNode()        {}
func (*MemberExpression) exprNode()      {}
func (*IndexExpression) exprNode()       {}
func (*NameRef) exprNode()               {}
func (*Literal) exprNode()               {}
func (*RegExpLiteral) exprNode()         {}
