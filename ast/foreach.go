package ast

// Shallow child enumeration. Every method visits the node's immediate
// children exactly once, left to right in source order, skipping children
// that are structurally absent. Two trees with equal shape must enumerate
// identically; generic algorithms (walk, resolvers, rewriters) depend on
// this and nothing else.

func (n *Programs) ForEach(fn func(Node)) {
	for _, unit := range n.Units {
		fn(unit)
	}
}

func (n *Program) ForEach(fn func(Node)) {
	for _, s := range n.Body {
		fn(s)
	}
}

func (n *FunctionLiteral) ForEach(fn func(Node)) {
	if n.Name != nil {
		fn(n.Name)
	}
	if n.Body != nil {
		fn(n.Body)
	}
}

func (n *ArrowFunctionLiteral) ForEach(fn func(Node)) {
	if n.Body != nil {
		fn(n.Body)
	}
}

func (n *Name) ForEach(fn func(Node)) {}

func (n *NameRef) ForEach(fn func(Node)) {
	if n.Name != nil {
		fn(n.Name)
	}
}

func (n *EmptyStatement) ForEach(fn func(Node)) {}

func (n *BlockStatement) ForEach(fn func(Node)) {
	for _, s := range n.Body {
		fn(s)
	}
}

func (n *ExpressionStatement) ForEach(fn func(Node)) {
	if n.Expr != nil {
		fn(n.Expr)
	}
}

func (n *IfStatement) ForEach(fn func(Node)) {
	fn(n.Cond)
	fn(n.Then)
	if n.Else != nil {
		fn(n.Else)
	}
}

func (n *LabeledStatement) ForEach(fn func(Node)) {
	if n.Label != nil {
		fn(n.Label)
	}
	if n.Body != nil {
		fn(n.Body)
	}
}

func (n *BreakStatement) ForEach(fn func(Node)) {
	if n.Label != nil {
		fn(n.Label)
	}
}

func (n *ContinueStatement) ForEach(fn func(Node)) {
	if n.Label != nil {
		fn(n.Label)
	}
}

func (n *WithStatement) ForEach(fn func(Node)) {
	fn(n.Object)
	if n.Body != nil {
		fn(n.Body)
	}
}

func (n *SwitchStatement) ForEach(fn func(Node)) {
	fn(n.Disc)
	for _, c := range n.Cases {
		fn(c)
	}
}

func (n *SwitchCase) ForEach(fn func(Node)) {
	if n.Test != nil {
		fn(n.Test)
	}
	for _, s := range n.Body {
		fn(s)
	}
}

func (n *ReturnStatement) ForEach(fn func(Node)) {
	if n.Value != nil {
		fn(n.Value)
	}
}

func (n *ThrowStatement) ForEach(fn func(Node)) {
	if n.Value != nil {
		fn(n.Value)
	}
}

func (n *TryStatement) ForEach(fn func(Node)) {
	if n.Block != nil {
		fn(n.Block)
	}
	if n.Catch != nil {
		fn(n.Catch)
	}
	if n.Finally != nil {
		fn(n.Finally)
	}
}

func (n *CatchClause) ForEach(fn func(Node)) {
	if n.Param != nil {
		fn(n.Param)
	}
	if n.Body != nil {
		fn(n.Body)
	}
}

func (n *WhileStatement) ForEach(fn func(Node)) {
	fn(n.Cond)
	if n.Body != nil {
		fn(n.Body)
	}
}

func (n *DoWhileStatement) ForEach(fn func(Node)) {
	if n.Body != nil {
		fn(n.Body)
	}
	fn(n.Cond)
}

func (n *ForStatement) ForEach(fn func(Node)) {
	if n.Init != nil {
		fn(n.Init)
	}
	if n.Cond != nil {
		fn(n.Cond)
	}
	if n.Update != nil {
		fn(n.Update)
	}
	if n.Body != nil {
		fn(n.Body)
	}
}

func (n *ForInStatement) ForEach(fn func(Node)) {
	fn(n.Left)
	fn(n.Right)
	if n.Body != nil {
		fn(n.Body)
	}
}

func (n *FunctionDeclaration) ForEach(fn func(Node)) {
	if n.Function != nil {
		fn(n.Function)
	}
}

func (n *VariableDeclaration) ForEach(fn func(Node)) {
	for _, d := range n.Decls {
		fn(d)
	}
}

func (n *Declarator) ForEach(fn func(Node)) {
	if n.Name != nil {
		fn(n.Name)
	}
	if n.Init != nil {
		fn(n.Init)
	}
}

func (n *DebuggerStatement) ForEach(fn func(Node)) {}

func (n *ThisExpression) ForEach(fn func(Node)) {}

func (n *ArrayLiteral) ForEach(fn func(Node)) {
	for _, e := range n.Elements {
		if e == nil { // hole
			continue
		}
		fn(e)
	}
}

func (n *ObjectLiteral) ForEach(fn func(Node)) {
	for _, p := range n.Properties {
		fn(p)
	}
}

func (n *Property) ForEach(fn func(Node)) {
	if n.Key != nil {
		fn(n.Key)
	}
	if n.Value != nil {
		fn(n.Value)
	}
}

func (n *SequenceExpression) ForEach(fn func(Node)) {
	for _, e := range n.Exprs {
		fn(e)
	}
}

func (n *UnaryExpression) ForEach(fn func(Node)) {
	fn(n.Operand)
}

func (n *BinaryExpression) ForEach(fn func(Node)) {
	fn(n.Left)
	fn(n.Right)
}

func (n *AssignmentExpression) ForEach(fn func(Node)) {
	fn(n.Left)
	fn(n.Right)
}

func (n *UpdateExpression) ForEach(fn func(Node)) {
	fn(n.Operand)
}

func (n *ConditionalExpression) ForEach(fn func(Node)) {
	fn(n.Cond)
	fn(n.Then)
	fn(n.Else)
}

func (n *CallExpression) ForEach(fn func(Node)) {
	fn(n.Callee)
	for _, a := range n.Args {
		fn(a)
	}
}

func (n *MemberExpression) ForEach(fn func(Node)) {
	fn(n.Object)
	if n.Property != nil {
		fn(n.Property)
	}
}

func (n *IndexExpression) ForEach(fn func(Node)) {
	fn(n.Object)
	fn(n.Index)
}

func (n *Literal) ForEach(fn func(Node)) {}

func (n *RegExpLiteral) ForEach(fn func(Node)) {}
