package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsast/source"
)

var (
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func severityColor(sev Severity) *color.Color {
	switch sev {
	case SevWarning:
		return warningColor
	case SevError:
		return errorColor
	default:
		return infoColor
	}
}

// Render writes one diagnostic in human-readable form:
//
//	ERROR[code] path:line:col: message
//	    <source line>
//	    ^^^^^
//
// The excerpt and caret are omitted when the span does not resolve
// through fs. Caret placement accounts for the display width of the
// source text, so underlines stay aligned under wide runes.
func Render(w io.Writer, fs *source.FileSet, d Diagnostic) {
	sev := severityColor(d.Severity).Sprint(d.Severity.String())
	head := fmt.Sprintf("%s[%s]", sev, d.Code)

	start, end, ok := resolve(fs, d.Primary)
	if !ok {
		fmt.Fprintf(w, "%s %s\n", head, d.Message)
		renderNotes(w, fs, d.Notes)
		return
	}

	file := fs.Get(d.Primary.File)
	fmt.Fprintf(w, "%s %s:%d:%d: %s\n", head, file.Path, start.Line, start.Col, d.Message)

	line := file.Line(start.Line)
	if line == "" {
		renderNotes(w, fs, d.Notes)
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	// Caret offsets are display widths, not byte counts.
	prefix := line[:min(int(start.Col-1), len(line))]
	underlined := line[len(prefix):]
	if start.Line == end.Line {
		width := int(end.Col - start.Col)
		if width < len(underlined) {
			underlined = underlined[:width]
		}
	}
	pad := runewidth.StringWidth(prefix)
	carets := max(runewidth.StringWidth(underlined), 1)
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), strings.Repeat("^", carets))

	renderNotes(w, fs, d.Notes)
}

// RenderBag renders every diagnostic in the bag, in its current order.
func RenderBag(w io.Writer, fs *source.FileSet, b *Bag) {
	for _, d := range b.Items() {
		Render(w, fs, d)
	}
}

func renderNotes(w io.Writer, fs *source.FileSet, notes []Note) {
	for _, n := range notes {
		if start, _, ok := resolve(fs, n.Span); ok {
			file := fs.Get(n.Span.File)
			fmt.Fprintf(w, "    note: %s:%d:%d: %s\n", file.Path, start.Line, start.Col, n.Msg)
			continue
		}
		fmt.Fprintf(w, "    note: %s\n", n.Msg)
	}
}

func resolve(fs *source.FileSet, span source.Span) (start, end source.LineCol, ok bool) {
	if fs == nil || !span.IsValid() {
		return source.LineCol{}, source.LineCol{}, false
	}
	return fs.Resolve(span)
}
