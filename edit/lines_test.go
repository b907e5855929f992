package edit

import (
	"testing"
)

func TestLineAddressing(t *testing.T) {
	// Offsets:     0123 4567 89
	tb := NewTextBuffer("ab\ncd\nef")
	tab := []struct {
		q                int
		start, end, next int
		atStart          bool
		line             string
	}{
		{0, 0, 2, 3, true, "ab"},
		{1, 0, 2, 3, false, "ab"},
		{2, 0, 2, 3, false, "ab"},
		{3, 3, 5, 6, true, "cd"},
		{5, 3, 5, 6, false, "cd"},
		{7, 6, 8, 8, false, "ef"},
		{8, 6, 8, 8, false, "ef"},
	}
	for _, test := range tab {
		if got := LineStart(tb, test.q); got != test.start {
			t.Errorf("LineStart(%d): got %d, want %d", test.q, got, test.start)
		}
		if got := LineEnd(tb, test.q); got != test.end {
			t.Errorf("LineEnd(%d): got %d, want %d", test.q, got, test.end)
		}
		if got := NextLine(tb, test.q); got != test.next {
			t.Errorf("NextLine(%d): got %d, want %d", test.q, got, test.next)
		}
		if got := AtLineStart(tb, test.q); got != test.atStart {
			t.Errorf("AtLineStart(%d): got %v, want %v", test.q, got, test.atStart)
		}
		if got := Line(tb, test.q); got != test.line {
			t.Errorf("Line(%d): got %q, want %q", test.q, got, test.line)
		}
	}
}

func TestNarrow(t *testing.T) {
	tb := NewTextBuffer("head\nBODY\ntail")
	err := Narrow(tb, 5, 10, func(v Texter) error {
		if got, want := v.Nc(), 5; got != want {
			t.Fatalf("narrowed Nc: got %d, want %d", got, want)
		}
		if got, want := string(v.View(0, 4)), "BODY"; got != want {
			t.Fatalf("narrowed View: got %q, want %q", got, want)
		}
		// Edits through the view keep the restriction consistent.
		v.Insert(0, []rune("x"))
		v.Delete(1, 5)
		if got, want := string(v.View(0, v.Nc())), "x\n"; got != want {
			t.Fatalf("after edits: got %q, want %q", got, want)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Narrow: %v", err)
	}
	if got, want := tb.String(), "head\nx\ntail"; got != want {
		t.Errorf("underlying buffer: got %q, want %q", got, want)
	}
}
