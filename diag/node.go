package diag

import (
	"jsast/ast"
)

// Anchors for diagnostics produced while analyzing a tree: the span comes
// from the node, and the note records the node's human-readable location
// so orphan nodes (empty location) still render something useful.

// ErrorAt starts an error diagnostic anchored at n.
func ErrorAt(r Reporter, n ast.Node, code Code, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, n.Base().Span, msg)
}

// WarningAt starts a warning diagnostic anchored at n.
func WarningAt(r Reporter, n ast.Node, code Code, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, n.Base().Span, msg)
}

// InfoAt starts an info diagnostic anchored at n.
func InfoAt(r Reporter, n ast.Node, code Code, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevInfo, code, n.Base().Span, msg)
}

// NoteAt attaches a note pointing at another node.
func (b *ReportBuilder) NoteAt(n ast.Node, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	if loc := ast.Location(n); loc != "" {
		msg = msg + " (" + loc + ")"
	}
	return b.WithNote(n.Base().Span, msg)
}
