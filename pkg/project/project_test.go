package project

import (
	"testing"

	"github.com/clearclown/mozuku-go/pkg/diagnostic"
)

func rangeAt(startLine, startCol, endLine, endCol int) diagnostic.Range {
	return diagnostic.Range{
		Start: diagnostic.Position{Line: startLine, Column: startCol},
		End:   diagnostic.Position{Line: endLine, Column: endCol},
	}
}

func TestDiagnosticShiftsLineAlways(t *testing.T) {
	span := Span{StartLine: 5, StartCol: 10}
	d := diagnostic.New(rangeAt(2, 3, 2, 7), diagnostic.Warning, "x", "msg")

	got := Diagnostic(span, d)
	if got.Range.Start.Line != 7 || got.Range.End.Line != 7 {
		t.Errorf("lines = (%d, %d), want (7, 7)", got.Range.Start.Line, got.Range.End.Line)
	}
	// Neither original line was 0, so column is untouched.
	if got.Range.Start.Column != 3 || got.Range.End.Column != 7 {
		t.Errorf("columns = (%d, %d), want (3, 7)", got.Range.Start.Column, got.Range.End.Column)
	}
}

func TestDiagnosticShiftsColumnOnlyOnFirstLine(t *testing.T) {
	span := Span{StartLine: 5, StartCol: 10}
	d := diagnostic.New(rangeAt(0, 3, 1, 2), diagnostic.Warning, "x", "msg")

	got := Diagnostic(span, d)
	if got.Range.Start.Line != 5 || got.Range.End.Line != 6 {
		t.Errorf("lines = (%d, %d), want (5, 6)", got.Range.Start.Line, got.Range.End.Line)
	}
	if got.Range.Start.Column != 13 {
		t.Errorf("start column = %d, want 13 (3+10)", got.Range.Start.Column)
	}
	if got.Range.End.Column != 2 {
		t.Errorf("end column = %d, want 2 (unshifted, end line was not 0)", got.Range.End.Column)
	}
}

func TestDiagnosticAtSpanOriginIsIdentityPlusOffset(t *testing.T) {
	span := Span{StartLine: 0, StartCol: 0}
	d := diagnostic.New(rangeAt(0, 0, 0, 3), diagnostic.Hint, "x", "msg")

	got := Diagnostic(span, d)
	if got != d {
		t.Errorf("projecting at the zero span should be identity: got %+v, want %+v", got, d)
	}
}

func TestAllPreservesOrder(t *testing.T) {
	span := Span{StartLine: 1, StartCol: 0}
	ds := []diagnostic.Diagnostic{
		diagnostic.New(rangeAt(0, 0, 0, 1), diagnostic.Hint, "a", "first"),
		diagnostic.New(rangeAt(0, 2, 0, 3), diagnostic.Hint, "b", "second"),
	}

	got := All(span, ds)
	if len(got) != 2 || got[0].Code != "a" || got[1].Code != "b" {
		t.Errorf("All() did not preserve order: %+v", got)
	}
}
