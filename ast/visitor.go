package ast

// Visitor is the zero-argument dispatch protocol: Accept routes a call to
// the one method matching the node's concrete variant, so operations over
// the tree are written against this interface instead of type-switching.
//
// The handler set is deliberately exhaustive — one method per variant with
// no fallback. A visitor missing a handler fails to satisfy the interface
// at compile time, and adding a node variant is a breaking change that
// forces every visitor to grow a handler. Open operations over a closed
// variant set is the point of the design.
type Visitor interface {
	VisitPrograms(n *Programs) any
	VisitProgram(n *Program) any
	VisitFunctionLiteral(n *FunctionLiteral) any
	VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) any
	VisitName(n *Name) any
	VisitNameRef(n *NameRef) any

	VisitEmptyStatement(n *EmptyStatement) any
	VisitBlockStatement(n *BlockStatement) any
	VisitExpressionStatement(n *ExpressionStatement) any
	VisitIfStatement(n *IfStatement) any
	VisitLabeledStatement(n *LabeledStatement) any
	VisitBreakStatement(n *BreakStatement) any
	VisitContinueStatement(n *ContinueStatement) any
	VisitWithStatement(n *WithStatement) any
	VisitSwitchStatement(n *SwitchStatement) any
	VisitSwitchCase(n *SwitchCase) any
	VisitReturnStatement(n *ReturnStatement) any
	VisitThrowStatement(n *ThrowStatement) any
	VisitTryStatement(n *TryStatement) any
	VisitCatchClause(n *CatchClause) any
	VisitWhileStatement(n *WhileStatement) any
	VisitDoWhileStatement(n *DoWhileStatement) any
	VisitForStatement(n *ForStatement) any
	VisitForInStatement(n *ForInStatement) any
	VisitFunctionDeclaration(n *FunctionDeclaration) any
	VisitVariableDeclaration(n *VariableDeclaration) any
	VisitDeclarator(n *Declarator) any
	VisitDebuggerStatement(n *DebuggerStatement) any

	VisitThisExpression(n *ThisExpression) any
	VisitArrayLiteral(n *ArrayLiteral) any
	VisitObjectLiteral(n *ObjectLiteral) any
	VisitProperty(n *Property) any
	VisitSequenceExpression(n *SequenceExpression) any
	VisitUnaryExpression(n *UnaryExpression) any
	VisitBinaryExpression(n *BinaryExpression) any
	VisitAssignmentExpression(n *AssignmentExpression) any
	VisitUpdateExpression(n *UpdateExpression) any
	VisitConditionalExpression(n *ConditionalExpression) any
	VisitCallExpression(n *CallExpression) any
	VisitMemberExpression(n *MemberExpression) any
	VisitIndexExpression(n *IndexExpression) any
	VisitLiteral(n *Literal) any
	VisitRegExpLiteral(n *RegExpLiteral) any
}

func (n *Programs) Accept(v Visitor) any              { return v.VisitPrograms(n) }
func (n *Program) Accept(v Visitor) any               { return v.VisitProgram(n) }
func (n *FunctionLiteral) Accept(v Visitor) any       { return v.VisitFunctionLiteral(n) }
func (n *ArrowFunctionLiteral) Accept(v Visitor) any  { return v.VisitArrowFunctionLiteral(n) }
func (n *Name) Accept(v Visitor) any                  { return v.VisitName(n) }
func (n *NameRef) Accept(v Visitor) any               { return v.VisitNameRef(n) }
func (n *EmptyStatement) Accept(v Visitor) any        { return v.VisitEmptyStatement(n) }
func (n *BlockStatement) Accept(v Visitor) any        { return v.VisitBlockStatement(n) }
func (n *ExpressionStatement) Accept(v Visitor) any   { return v.VisitExpressionStatement(n) }
func (n *IfStatement) Accept(v Visitor) any           { return v.VisitIfStatement(n) }
func (n *LabeledStatement) Accept(v Visitor) any      { return v.VisitLabeledStatement(n) }
func (n *BreakStatement) Accept(v Visitor) any        { return v.VisitBreakStatement(n) }
func (n *ContinueStatement) Accept(v Visitor) any     { return v.VisitContinueStatement(n) }
func (n *WithStatement) Accept(v Visitor) any         { return v.VisitWithStatement(n) }
func (n *SwitchStatement) Accept(v Visitor) any       { return v.VisitSwitchStatement(n) }
func (n *SwitchCase) Accept(v Visitor) any            { return v.VisitSwitchCase(n) }
func (n *ReturnStatement) Accept(v Visitor) any       { return v.VisitReturnStatement(n) }
func (n *ThrowStatement) Accept(v Visitor) any        { return v.VisitThrowStatement(n) }
func (n *TryStatement) Accept(v Visitor) any          { return v.VisitTryStatement(n) }
func (n *CatchClause) Accept(v Visitor) any           { return v.VisitCatchClause(n) }
func (n *WhileStatement) Accept(v Visitor) any        { return v.VisitWhileStatement(n) }
func (n *DoWhileStatement) Accept(v Visitor) any      { return v.VisitDoWhileStatement(n) }
func (n *ForStatement) Accept(v Visitor) any          { return v.VisitForStatement(n) }
func (n *ForInStatement) Accept(v Visitor) any        { return v.VisitForInStatement(n) }
func (n *FunctionDeclaration) Accept(v Visitor) any   { return v.VisitFunctionDeclaration(n) }
func (n *VariableDeclaration) Accept(v Visitor) any   { return v.VisitVariableDeclaration(n) }
func (n *Declarator) Accept(v Visitor) any            { return v.VisitDeclarator(n) }
func (n *DebuggerStatement) Accept(v Visitor) any     { return v.VisitDebuggerStatement(n) }
func (n *ThisExpression) Accept(v Visitor) any        { return v.VisitThisExpression(n) }
func (n *ArrayLiteral) Accept(v Visitor) any          { return v.VisitArrayLiteral(n) }
func (n *ObjectLiteral) Accept(v Visitor) any         { return v.VisitObjectLiteral(n) }
func (n *Property) Accept(v Visitor) any              { return v.VisitProperty(n) }
func (n *SequenceExpression) Accept(v Visitor) any    { return v.VisitSequenceExpression(n) }
func (n *UnaryExpression) Accept(v Visitor) any       { return v.VisitUnaryExpression(n) }
func (n *BinaryExpression) Accept(v Visitor) any      { return v.VisitBinaryExpression(n) }
func (n *AssignmentExpression) Accept(v Visitor) any  { return v.VisitAssignmentExpression(n) }
func (n *UpdateExpression) Accept(v Visitor) any      { return v.VisitUpdateExpression(n) }
func (n *ConditionalExpression) Accept(v Visitor) any { return v.VisitConditionalExpression(n) }
func (n *CallExpression) Accept(v Visitor) any        { return v.VisitCallExpression(n) }
func (n *MemberExpression) Accept(v Visitor) any      { return v.VisitMemberExpression(n) }
func (n *IndexExpression) Accept(v Visitor) any       { return v.VisitIndexExpression(n) }
func (n *Literal) Accept(v Visitor) any               { return v.VisitLiteral(n) }
func (n *RegExpLiteral) Accept(v Visitor) any         { return v.VisitRegExpLiteral(n) }
