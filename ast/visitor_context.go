package ast

// ContextVisitor is the single-extra-argument dispatch protocol: identical
// to Visitor, but AcceptContext threads one caller-supplied value into the
// handler. That keeps context-dependent traversals (the enclosing
// function, an accumulator, an indentation level) free of mutable shared
// state without a second traversal mechanism. The exhaustiveness contract
// is the same as Visitor's.
type ContextVisitor interface {
	VisitPrograms(n *Programs, ctx any) any
	VisitProgram(n *Program, ctx any) any
	VisitFunctionLiteral(n *FunctionLiteral, ctx any) any
	VisitArrowFunctionLiteral(n *ArrowFunctionLiteral, ctx any) any
	VisitName(n *Name, ctx any) any
	VisitNameRef(n *NameRef, ctx any) any

	VisitEmptyStatement(n *EmptyStatement, ctx any) any
	VisitBlockStatement(n *BlockStatement, ctx any) any
	VisitExpressionStatement(n *ExpressionStatement, ctx any) any
	VisitIfStatement(n *IfStatement, ctx any) any
	VisitLabeledStatement(n *LabeledStatement, ctx any) any
	VisitBreakStatement(n *BreakStatement, ctx any) any
	VisitContinueStatement(n *ContinueStatement, ctx any) any
	VisitWithStatement(n *WithStatement, ctx any) any
	VisitSwitchStatement(n *SwitchStatement, ctx any) any
	VisitSwitchCase(n *SwitchCase, ctx any) any
	VisitReturnStatement(n *ReturnStatement, ctx any) any
	VisitThrowStatement(n *ThrowStatement, ctx any) any
	VisitTryStatement(n *TryStatement, ctx any) any
	VisitCatchClause(n *CatchClause, ctx any) any
	VisitWhileStatement(n *WhileStatement, ctx any) any
	VisitDoWhileStatement(n *DoWhileStatement, ctx any) any
	VisitForStatement(n *ForStatement, ctx any) any
	VisitForInStatement(n *ForInStatement, ctx any) any
	VisitFunctionDeclaration(n *FunctionDeclaration, ctx any) any
	VisitVariableDeclaration(n *VariableDeclaration, ctx any) any
	VisitDeclarator(n *Declarator, ctx any) any
	VisitDebuggerStatement(n *DebuggerStatement, ctx any) any

	VisitThisExpression(n *ThisExpression, ctx any) any
	VisitArrayLiteral(n *ArrayLiteral, ctx any) any
	VisitObjectLiteral(n *ObjectLiteral, ctx any) any
	VisitProperty(n *Property, ctx any) any
	VisitSequenceExpression(n *SequenceExpression, ctx any) any
	VisitUnaryExpression(n *UnaryExpression, ctx any) any
	VisitBinaryExpression(n *BinaryExpression, ctx any) any
	VisitAssignmentExpression(n *AssignmentExpression, ctx any) any
	VisitUpdateExpression(n *UpdateExpression, ctx any) any
	VisitConditionalExpression(n *ConditionalExpression, ctx any) any
	VisitCallExpression(n *CallExpression, ctx any) any
	VisitMemberExpression(n *MemberExpression, ctx any) any
	VisitIndexExpression(n *IndexExpression, ctx any) any
	VisitLiteral(n *Literal, ctx any) any
	VisitRegExpLiteral(n *RegExpLiteral, ctx any) any
}

func (n *Programs) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitPrograms(n, ctx)
}

func (n *Program) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitProgram(n, ctx)
}

func (n *FunctionLiteral) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitFunctionLiteral(n, ctx)
}

func (n *ArrowFunctionLiteral) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitArrowFunctionLiteral(n, ctx)
}

func (n *Name) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitName(n, ctx)
}

func (n *NameRef) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitNameRef(n, ctx)
}

func (n *EmptyStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitEmptyStatement(n, ctx)
}

func (n *BlockStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitBlockStatement(n, ctx)
}

func (n *ExpressionStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitExpressionStatement(n, ctx)
}

func (n *IfStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitIfStatement(n, ctx)
}

func (n *LabeledStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitLabeledStatement(n, ctx)
}

func (n *BreakStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitBreakStatement(n, ctx)
}

func (n *ContinueStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitContinueStatement(n, ctx)
}

func (n *WithStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitWithStatement(n, ctx)
}

func (n *SwitchStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitSwitchStatement(n, ctx)
}

func (n *SwitchCase) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitSwitchCase(n, ctx)
}

func (n *ReturnStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitReturnStatement(n, ctx)
}

func (n *ThrowStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitThrowStatement(n, ctx)
}

func (n *TryStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitTryStatement(n, ctx)
}

func (n *CatchClause) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitCatchClause(n, ctx)
}

func (n *WhileStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitWhileStatement(n, ctx)
}

func (n *DoWhileStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitDoWhileStatement(n, ctx)
}

func (n *ForStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitForStatement(n, ctx)
}

func (n *ForInStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitForInStatement(n, ctx)
}

func (n *FunctionDeclaration) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitFunctionDeclaration(n, ctx)
}

func (n *VariableDeclaration) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitVariableDeclaration(n, ctx)
}

func (n *Declarator) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitDeclarator(n, ctx)
}

func (n *DebuggerStatement) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitDebuggerStatement(n, ctx)
}

func (n *ThisExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitThisExpression(n, ctx)
}

func (n *ArrayLiteral) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitArrayLiteral(n, ctx)
}

func (n *ObjectLiteral) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitObjectLiteral(n, ctx)
}

func (n *Property) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitProperty(n, ctx)
}

func (n *SequenceExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitSequenceExpression(n, ctx)
}

func (n *UnaryExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitUnaryExpression(n, ctx)
}

func (n *BinaryExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitBinaryExpression(n, ctx)
}

func (n *AssignmentExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitAssignmentExpression(n, ctx)
}

func (n *UpdateExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitUpdateExpression(n, ctx)
}

func (n *ConditionalExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitConditionalExpression(n, ctx)
}

func (n *CallExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitCallExpression(n, ctx)
}

func (n *MemberExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitMemberExpression(n, ctx)
}

func (n *IndexExpression) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitIndexExpression(n, ctx)
}

func (n *Literal) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitLiteral(n, ctx)
}

func (n *RegExpLiteral) AcceptContext(v ContextVisitor, ctx any) any {
	return v.VisitRegExpLiteral(n, ctx)
}
