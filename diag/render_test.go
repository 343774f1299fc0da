package diag

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"jsast/ast"
	"jsast/source"
)

func renderToString(fs *source.FileSet, d Diagnostic) string {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var sb strings.Builder
	Render(&sb, fs, d)
	return sb.String()
}

func TestRender_WithExcerpt(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mem.js", []byte("let x = 1;\n"))

	out := renderToString(fs, Diagnostic{
		Severity: SevError,
		Code:     "JS0001",
		Message:  "undefined variable",
		Primary:  source.Span{File: id, Start: 4, End: 5},
	})

	want := "ERROR[JS0001] mem.js:1:5: undefined variable\n" +
		"    let x = 1;\n" +
		"        ^\n"
	if out != want {
		t.Fatalf("Render output:\n%q\nwant:\n%q", out, want)
	}
}

func TestRender_WideRunes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mem.js", []byte("日本 = 1;\n"))

	// Span covers "=": byte offset 7 in the UTF-8 line, display column 6.
	out := renderToString(fs, Diagnostic{
		Severity: SevWarning,
		Code:     "JS0100",
		Message:  "suspicious assignment",
		Primary:  source.Span{File: id, Start: 7, End: 8},
	})

	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("Render output too short:\n%q", out)
	}
	if !strings.HasPrefix(lines[0], "WARNING[JS0100] mem.js:1:8:") {
		t.Fatalf("head line = %q", lines[0])
	}
	caret := lines[2]
	// "日本" occupies four display cells plus the space: the caret sits at
	// display column 6, not byte column 8.
	if caret != "    "+strings.Repeat(" ", 5)+"^" {
		t.Fatalf("caret line = %q", caret)
	}
}

func TestRender_UnresolvableSpan(t *testing.T) {
	out := renderToString(source.NewFileSet(), Diagnostic{
		Severity: SevInfo,
		Code:     "JS0200",
		Message:  "detached",
	})
	if out != "INFO[JS0200] detached\n" {
		t.Fatalf("Render output = %q", out)
	}
}

func TestRender_Notes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mem.js", []byte("var a;\nvar a;\n"))

	out := renderToString(fs, Diagnostic{
		Severity: SevError,
		Code:     "JS0002",
		Message:  "redeclaration of a",
		Primary:  source.Span{File: id, Start: 11, End: 12},
		Notes: []Note{
			{Span: source.Span{File: id, Start: 4, End: 5}, Msg: "first declared here"},
			{Msg: "shadowing is not allowed"},
		},
	})

	if !strings.Contains(out, "    note: mem.js:1:5: first declared here\n") {
		t.Fatalf("resolved note missing:\n%q", out)
	}
	if !strings.Contains(out, "    note: shadowing is not allowed\n") {
		t.Fatalf("unresolved note missing:\n%q", out)
	}
}

func TestErrorAt_UsesNodeSpanAndLocation(t *testing.T) {
	prog := &ast.Program{Filename: "app.js"}
	ref := &ast.NameRef{Name: &ast.Name{Value: "x"}}
	ref.NodeBase.Span = source.Span{File: 1, Start: 3, End: 4}
	ref.NodeBase.Line = 7
	prog.Body = []ast.Statement{&ast.ExpressionStatement{Expr: ref}}
	ast.Adopt(prog, prog.Body[0])
	ast.Adopt(prog.Body[0], ref)

	bag := NewBag(4)
	ErrorAt(BagReporter{Bag: bag}, ref, "JS0001", "undefined variable").
		NoteAt(ref, "referenced").
		Emit()

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Primary != ref.NodeBase.Span {
		t.Fatalf("primary span = %+v, want the node's span", d.Primary)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "referenced (app.js:7)" {
		t.Fatalf("notes = %+v", d.Notes)
	}
}
