package ast

import "fmt"

// NameRole classifies how an identifier occurrence is used. The role is
// never stored on the node; it is computed from the parent variant.
type NameRole uint8

const (
	NameVariable NameRole = iota
	NameProperty
	NameLabel
)

func (r NameRole) String() string {
	switch r {
	case NameVariable:
		return "variable"
	case NameProperty:
		return "property"
	case NameLabel:
		return "label"
	}
	return "unknown"
}

// Name is a single identifier occurrence.
type Name struct {
	NodeBase
	Value string
	// Scope is a non-owning reference to the scope declaring this
	// identifier. It stays nil until an external resolution pass assigns
	// it; use ResolvedScope for the defaulting read.
	Scope Scope
}

// ResolvedScope returns the declaring scope. Names the resolver never
// bound explicitly resolve to the enclosing Program, modeling the source
// language's hoisting and implicit-global semantics. Returns nil for
// orphan names with no enclosing Program.
func (n *Name) ResolvedScope() Scope {
	if n.Scope != nil {
		return n.Scope
	}
	if p := EnclosingProgram(n); p != nil {
		return p
	}
	return nil
}

// Role derives the syntactic role from the parent variant. Calling it on a
// detached name, or one attached to a parent that cannot hold a name, is a
// precondition violation and panics.
func (n *Name) Role() NameRole {
	switch n.Parent.(type) {
	case *NameRef, *Declarator, *FunctionLiteral:
		return NameVariable
	case *MemberExpression, *Property:
		// A Name under a member access can only be its .Property field,
		// and under an object property only its key: the value slots
		// take expressions, which Name is not.
		return NameProperty
	case *LabeledStatement, *BreakStatement, *ContinueStatement:
		return NameLabel
	}
	panic(fmt.Sprintf("ast: name %q has no syntactic role (parent %T)", n.Value, n.Parent))
}

func (n *Name) IsVariable() bool { return n.Role() == NameVariable }
func (n *Name) IsProperty() bool { return n.Role() == NameProperty }
func (n *Name) IsLabel() bool    { return n.Role() == NameLabel }

// NameRef is an identifier used as a value expression.
type NameRef struct {
	NodeBase
	Name *Name
}
