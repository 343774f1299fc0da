package ast

// EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	NodeBase
}

// BlockStatement is a braced statement list.
type BlockStatement struct {
	NodeBase
	Body []Statement
}

// ExpressionStatement wraps an expression evaluated for effect.
type ExpressionStatement struct {
	NodeBase
	Expr Expression
}

type IfStatement struct {
	NodeBase
	Cond Expression
	Then Statement
	Else Statement // nil when absent
}

type LabeledStatement struct {
	NodeBase
	Label *Name
	Body  Statement
}

type BreakStatement struct {
	NodeBase
	Label *Name // nil for an unlabeled break
}

type ContinueStatement struct {
	NodeBase
	Label *Name // nil for an unlabeled continue
}

type WithStatement struct {
	NodeBase
	Object Expression
	Body   Statement
}

type SwitchStatement struct {
	NodeBase
	Disc  Expression
	Cases []*SwitchCase
}

// SwitchCase is one case clause. A nil Test marks the default clause.
type SwitchCase struct {
	NodeBase
	Test Expression
	Body []Statement
}

// IsDefault reports whether this is the default clause.
func (c *SwitchCase) IsDefault() bool { return c.Test == nil }

type ReturnStatement struct {
	NodeBase
	Value Expression // nil for a bare return
}

type ThrowStatement struct {
	NodeBase
	Value Expression
}

// TryStatement is a try with an optional catch and an optional finally.
// At least one of Catch and Finally must be present: a bare try block is
// not a meaningful construct and no parser produces one.
type TryStatement struct {
	NodeBase
	Block   *BlockStatement
	Catch   *CatchClause    // nil when absent
	Finally *BlockStatement // nil when absent
}

// CatchClause binds the caught value and hosts declarations for its body.
type CatchClause struct {
	NodeBase
	ScopeBase
	Param *Name
	Body  *BlockStatement
}

type WhileStatement struct {
	NodeBase
	Cond Expression
	Body Statement
}

type DoWhileStatement struct {
	NodeBase
	Body Statement
	Cond Expression
}

// ForStatement is a classic three-clause loop. Init is either a
// *VariableDeclaration or an Expression; all three clauses may be nil.
type ForStatement struct {
	NodeBase
	Init   Node
	Cond   Expression
	Update Expression
	Body   Statement
}

// ForInStatement enumerates Right's keys into Left, which is either a
// *VariableDeclaration or an Expression.
type ForInStatement struct {
	NodeBase
	Left  Node
	Right Expression
	Body  Statement
}

// FunctionDeclaration hoists a named function into the enclosing scope.
type FunctionDeclaration struct {
	NodeBase
	Function *FunctionLiteral
}

type VariableDeclaration struct {
	NodeBase
	Decls []*Declarator
}

// Declarator is one name/initializer pair of a variable declaration.
type Declarator struct {
	NodeBase
	Name *Name
	Init Expression // nil when absent
}

type DebuggerStatement struct {
	NodeBase
}

func (*EmptyStatement) stmtNode()      {}
func (*BlockStatement) stmtNode()      {}
func (*ExpressionStatement) stmtNode() {}
func (*IfStatement) stmtNode()         {}
func (*LabeledStatement) stmtNode()    {}
func (*BreakStatement) stmtNode()      {}
func (*ContinueStatement) stmtNode()   {}
func (*WithStatement) stmtNode()       {}
func (*SwitchStatement) stmtNode()     {}
func (*ReturnStatement) stmtNode()     {}
func (*ThrowStatement) stmtNode()      {}
func (*TryStatement) stmtNode()        {}
func (*WhileStatement) stmtNode()      {}
func (*DoWhileStatement) stmtNode()    {}
func (*ForStatement) stmtNode()        {}
func (*ForInStatement) stmtNode()      {}
func (*FunctionDeclaration) stmtNode() {}
func (*VariableDeclaration) stmtNode() {}
func (*DebuggerStatement) stmtNode()   {}
