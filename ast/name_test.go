package ast

import "testing"

func TestNameRole_FromParent(t *testing.T) {
	tests := []struct {
		name   string
		attach func(n *Name) Node
		want   NameRole
	}{
		{
			name: "value use",
			attach: func(n *Name) Node {
				ref := &NameRef{Name: n}
				return Adopt(ref, n)
			},
			want: NameVariable,
		},
		{
			name: "declarator target",
			attach: func(n *Name) Node {
				d := &Declarator{Name: n}
				return Adopt(d, n)
			},
			want: NameVariable,
		},
		{
			name: "function name",
			attach: func(n *Name) Node {
				fn := &FunctionLiteral{Name: n}
				return Adopt(fn, n)
			},
			want: NameVariable,
		},
		{
			name: "member property",
			attach: func(n *Name) Node {
				m := &MemberExpression{Object: &ThisExpression{}, Property: n}
				return Adopt(m, m.Object, n)
			},
			want: NameProperty,
		},
		{
			name: "object property key",
			attach: func(n *Name) Node {
				p := &Property{Kind: PropertyInit, Key: n, Value: &Literal{Kind: LitNull, Raw: "null"}}
				return Adopt(p, n, p.Value)
			},
			want: NameProperty,
		},
		{
			name: "statement label",
			attach: func(n *Name) Node {
				l := &LabeledStatement{Label: n, Body: &EmptyStatement{}}
				return Adopt(l, n, l.Body)
			},
			want: NameLabel,
		},
		{
			name: "break label",
			attach: func(n *Name) Node {
				b := &BreakStatement{Label: n}
				return Adopt(b, n)
			},
			want: NameLabel,
		},
		{
			name: "continue label",
			attach: func(n *Name) Node {
				c := &ContinueStatement{Label: n}
				return Adopt(c, n)
			},
			want: NameLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Name{Value: "id"}
			tt.attach(n)
			if got := n.Role(); got != tt.want {
				t.Errorf("Role() = %v, want %v", got, tt.want)
			}

			switch tt.want {
			case NameVariable:
				if !n.IsVariable() || n.IsProperty() || n.IsLabel() {
					t.Errorf("predicates disagree with role %v", tt.want)
				}
			case NameProperty:
				if !n.IsProperty() || n.IsVariable() || n.IsLabel() {
					t.Errorf("predicates disagree with role %v", tt.want)
				}
			case NameLabel:
				if !n.IsLabel() || n.IsVariable() || n.IsProperty() {
					t.Errorf("predicates disagree with role %v", tt.want)
				}
			}
		})
	}
}

func TestNameRole_DetachedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Role on a detached name must panic")
		}
	}()
	(&Name{Value: "ghost"}).Role()
}

func TestFunctionClassification_FromParent(t *testing.T) {
	// Declaration position.
	fn := &FunctionLiteral{Body: &BlockStatement{}}
	decl := &FunctionDeclaration{Function: fn}
	Adopt(decl, fn)
	if !fn.IsDeclaration() || fn.IsExpression() || fn.IsAccessor() {
		t.Errorf("function under a declaration misclassified")
	}

	// Accessor position.
	getter := &FunctionLiteral{Body: &BlockStatement{}}
	prop := &Property{Kind: PropertyGet, Key: &Name{Value: "x"}, Value: getter}
	Adopt(prop, prop.Key, getter)
	if !getter.IsAccessor() || getter.IsExpression() || getter.IsDeclaration() {
		t.Errorf("accessor function misclassified")
	}
	if got := prop.Accessor(); got != getter {
		t.Errorf("Property.Accessor = %v, want the getter", got)
	}

	// Plain value property holds an expression function.
	expr := &FunctionLiteral{Body: &BlockStatement{}}
	init := &Property{Kind: PropertyInit, Key: &Name{Value: "f"}, Value: expr}
	Adopt(init, init.Key, expr)
	if !expr.IsExpression() {
		t.Errorf("init-property function should classify as expression")
	}

	// Orphans default to expression.
	orphan := &FunctionLiteral{}
	if !orphan.IsExpression() {
		t.Errorf("orphan function should classify as expression")
	}
}

func TestPropertyAccessor_InitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Accessor on an init property must panic")
		}
	}()
	p := &Property{Kind: PropertyInit, Key: &Name{Value: "x"}, Value: &Literal{Kind: LitNull, Raw: "null"}}
	p.Accessor()
}
