package ast

import (
	"reflect"
	"testing"
)

func childTypes(n Node) []string {
	var out []string
	n.ForEach(func(c Node) {
		out = append(out, reflect.TypeOf(c).String())
	})
	return out
}

func num(v float64, raw string) *Literal {
	return &Literal{Kind: LitNumber, Num: v, Raw: raw}
}

func TestForEach_OptionalFieldSkip(t *testing.T) {
	bare := &ReturnStatement{}
	if got := childTypes(bare); len(got) != 0 {
		t.Fatalf("bare return should enumerate no children, got %v", got)
	}

	ret := &ReturnStatement{Value: &NameRef{Name: &Name{Value: "x"}}}
	Adopt(ret, ret.Value)

	count := 0
	ret.ForEach(func(c Node) {
		count++
		if _, ok := c.(*NameRef); !ok {
			t.Fatalf("expected the return value, got %T", c)
		}
	})
	if count != 1 {
		t.Fatalf("return with value should enumerate exactly one child, got %d", count)
	}
}

func TestForEach_SourceOrder(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want []string
	}{
		{
			name: "if enumerates cond, then, else",
			node: &IfStatement{
				Cond: &Literal{Kind: LitBool, Bool: true, Raw: "true"},
				Then: &EmptyStatement{},
				Else: &DebuggerStatement{},
			},
			want: []string{"*ast.Literal", "*ast.EmptyStatement", "*ast.DebuggerStatement"},
		},
		{
			name: "if without else stops after then",
			node: &IfStatement{
				Cond: &Literal{Kind: LitBool, Bool: true, Raw: "true"},
				Then: &EmptyStatement{},
			},
			want: []string{"*ast.Literal", "*ast.EmptyStatement"},
		},
		{
			name: "for enumerates init, cond, update, body",
			node: &ForStatement{
				Init:   &VariableDeclaration{},
				Cond:   &Literal{Kind: LitBool, Bool: true, Raw: "true"},
				Update: &UpdateExpression{Op: "++", Operand: &NameRef{Name: &Name{Value: "i"}}},
				Body:   &BlockStatement{},
			},
			want: []string{"*ast.VariableDeclaration", "*ast.Literal", "*ast.UpdateExpression", "*ast.BlockStatement"},
		},
		{
			name: "for with empty clauses enumerates body only",
			node: &ForStatement{Body: &EmptyStatement{}},
			want: []string{"*ast.EmptyStatement"},
		},
		{
			name: "do-while enumerates body before cond",
			node: &DoWhileStatement{
				Body: &BlockStatement{},
				Cond: &Literal{Kind: LitBool, Bool: false, Raw: "false"},
			},
			want: []string{"*ast.BlockStatement", "*ast.Literal"},
		},
		{
			name: "binary enumerates left then right",
			node: &BinaryExpression{Op: "+", Left: num(1, "1"), Right: &ThisExpression{}},
			want: []string{"*ast.Literal", "*ast.ThisExpression"},
		},
		{
			name: "try enumerates block, catch, finally",
			node: &TryStatement{
				Block:   &BlockStatement{},
				Catch:   &CatchClause{Param: &Name{Value: "e"}, Body: &BlockStatement{}},
				Finally: &BlockStatement{},
			},
			want: []string{"*ast.BlockStatement", "*ast.CatchClause", "*ast.BlockStatement"},
		},
		{
			name: "call enumerates callee before arguments",
			node: &CallExpression{
				Callee: &NameRef{Name: &Name{Value: "f"}},
				Args:   []Expression{num(1, "1"), num(2, "2")},
			},
			want: []string{"*ast.NameRef", "*ast.Literal", "*ast.Literal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := childTypes(tt.node)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ForEach order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForEach_Deterministic(t *testing.T) {
	node := &SwitchStatement{
		Disc: &NameRef{Name: &Name{Value: "x"}},
		Cases: []*SwitchCase{
			{Test: num(1, "1"), Body: []Statement{&BreakStatement{}}},
			{Body: []Statement{&ReturnStatement{}}}, // default clause
		},
	}

	first := childTypes(node)
	for i := 0; i < 10; i++ {
		if got := childTypes(node); !reflect.DeepEqual(got, first) {
			t.Fatalf("iteration %d enumerated %v, first run %v", i, got, first)
		}
	}
}

func TestForEach_ArrayHoles(t *testing.T) {
	// [1,,3] — the middle slot is a hole, not a null literal.
	arr := &ArrayLiteral{
		Elements: []Expression{num(1, "1"), nil, num(3, "3")},
	}

	if len(arr.Elements) != 3 {
		t.Fatalf("hole must keep its slot: arity = %d, want 3", len(arr.Elements))
	}

	var raws []string
	arr.ForEach(func(c Node) {
		lit, ok := c.(*Literal)
		if !ok {
			t.Fatalf("unexpected child %T", c)
		}
		raws = append(raws, lit.Raw)
	})
	if !reflect.DeepEqual(raws, []string{"1", "3"}) {
		t.Fatalf("traversal reported %v, want [1 3]", raws)
	}

	// A null literal in the same position is not a hole.
	arr.Elements[1] = &Literal{Kind: LitNull, Raw: "null"}
	count := 0
	arr.ForEach(func(Node) { count++ })
	if count != 3 {
		t.Fatalf("null literal slot must be enumerated: got %d children, want 3", count)
	}
}

func TestAdopt_ParentChildSymmetry(t *testing.T) {
	cond := &Literal{Kind: LitBool, Bool: true, Raw: "true"}
	then := &EmptyStatement{}
	stmt := &IfStatement{Cond: cond, Then: then}
	Adopt(stmt, cond, then)

	if cond.Parent != Node(stmt) || then.Parent != Node(stmt) {
		t.Fatalf("Adopt did not set parent links")
	}

	found := 0
	stmt.ForEach(func(c Node) {
		if c == Node(cond) || c == Node(then) {
			found++
		}
	})
	if found != 2 {
		t.Fatalf("attached children must appear in the parent's enumeration, found %d of 2", found)
	}

	Orphan(cond)
	if cond.Parent != nil {
		t.Fatalf("Orphan did not clear the parent link")
	}
}
