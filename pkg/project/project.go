// Package project shifts span-local diagnostics produced by the grammar
// rule engine back into document-global coordinates, so a collaborator
// sees positions relative to the whole file rather than the extracted
// span the rule engine actually ran against.
package project

import "github.com/clearclown/mozuku-go/pkg/diagnostic"

// Span is the minimal shape project needs from an extracted text span: the
// position where it begins in the document.
type Span struct {
	StartLine int
	StartCol  int
}

// Diagnostic shifts a single span-local diagnostic into document-global
// coordinates: every line number is offset by the span's start line, and
// the column is offset by the span's start column only on whichever
// span-local line was line 0 (the only line whose column 0 coincides with
// the span's own start column; every other line's column 0 is the
// document's own left margin).
func Diagnostic(span Span, d diagnostic.Diagnostic) diagnostic.Diagnostic {
	origStartLine := d.Range.Start.Line
	origEndLine := d.Range.End.Line

	d.Range.Start.Line += span.StartLine
	d.Range.End.Line += span.StartLine

	if origStartLine == 0 {
		d.Range.Start.Column += span.StartCol
	}
	if origEndLine == 0 {
		d.Range.End.Column += span.StartCol
	}

	return d
}

// All projects every diagnostic in diagnostics, preserving order.
func All(span Span, diagnostics []diagnostic.Diagnostic) []diagnostic.Diagnostic {
	projected := make([]diagnostic.Diagnostic, len(diagnostics))
	for i, d := range diagnostics {
		projected[i] = Diagnostic(span, d)
	}
	return projected
}
