// Package diag carries diagnostics produced by passes over the tree:
// a bounded Bag to collect them, the Reporter contract passes emit
// through, and a human renderer that points back into the source via
// spans. The tree core itself never reports — it only supplies positions.
package diag

import (
	"jsast/source"
)

// Code identifies a diagnostic kind. Passes mint their own codes; this
// layer only requires them to be stable strings so sorting and
// deduplication are deterministic.
type Code string

// Note is secondary information attached to a diagnostic, usually
// pointing at a related span.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
