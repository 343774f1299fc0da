package ast

import "slices"

// Function is satisfied by the two function-bearing literals,
// FunctionLiteral and ArrowFunctionLiteral.
type Function interface {
	Expression
	Scope
	FuncParams() []string
	FuncBody() Statement
}

// FunctionLiteral is a function in any syntactic position. What kind of
// function it is — declaration, expression or accessor — is not stored; it
// is derived from the parent, so the classification can never drift out of
// sync with where the node actually sits.
type FunctionLiteral struct {
	NodeBase
	ScopeBase
	Name   *Name // nil for anonymous function expressions
	Params []string
	Body   Statement // conventionally a *BlockStatement
}

func (f *FunctionLiteral) FuncParams() []string { return f.Params }
func (f *FunctionLiteral) FuncBody() Statement  { return f.Body }

// IsDeclaration reports whether this function is the body of a function
// declaration statement.
func (f *FunctionLiteral) IsDeclaration() bool {
	_, ok := f.Parent.(*FunctionDeclaration)
	return ok
}

// IsAccessor reports whether this function is the getter or setter of an
// object-literal accessor property.
func (f *FunctionLiteral) IsAccessor() bool {
	p, ok := f.Parent.(*Property)
	return ok && p.Kind != PropertyInit
}

// IsExpression reports whether this function appears in expression
// position. Orphan functions count as expressions.
func (f *FunctionLiteral) IsExpression() bool {
	return !f.IsDeclaration() && !f.IsAccessor()
}

// Function scopes implicitly bind "arguments".

func (f *FunctionLiteral) Declares(name string) bool {
	return name == "arguments" || f.ScopeBase.Declares(name)
}

func (f *FunctionLiteral) DeclaredNames() []string {
	names := f.ScopeBase.DeclaredNames()
	if !f.ScopeBase.Declares("arguments") {
		names = append(names, "arguments")
		slices.Sort(names)
	}
	return names
}

// ArrowFunctionLiteral is an arrow function. Unlike FunctionLiteral its
// classification is a syntactic fact: it is always an expression, never a
// declaration or accessor, and it does not bind its own "arguments".
type ArrowFunctionLiteral struct {
	NodeBase
	ScopeBase
	Params []string
	Body   Statement
}

func (f *ArrowFunctionLiteral) FuncParams() []string { return f.Params }
func (f *ArrowFunctionLiteral) FuncBody() Statement  { return f.Body }

func (f *ArrowFunctionLiteral) IsExpression() bool  { return true }
func (f *ArrowFunctionLiteral) IsDeclaration() bool { return false }
func (f *ArrowFunctionLiteral) IsAccessor() bool    { return false }
