package box

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rjkroege/semibox/edit"
)

func TestRefillInsideBox(t *testing.T) {
	s := Default()
	tb := edit.NewTextBuffer(",----\n| one two three four five\n`----\n")
	if err := s.Refill(tb, 10, 12); err != nil {
		t.Fatalf("Refill: %v", err)
	}
	want := ",----\n| one two\n| three four\n| five\n`----\n"
	if diff := cmp.Diff(want, tb.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// The refilled box is still a box.
	b, ok := s.Locate(tb, 10)
	if !ok || b != (Box{0, tb.Nc()}) {
		t.Errorf("Locate after refill: got %v ok %v", b, ok)
	}
}

func TestRefillJoinsShortLines(t *testing.T) {
	s := Default()
	tb := edit.NewTextBuffer(",----\n| a\n| b\n| c\n`----\n")
	if err := s.Refill(tb, 8, 40); err != nil {
		t.Fatalf("Refill: %v", err)
	}
	want := ",----\n| a b c\n`----\n"
	if diff := cmp.Diff(want, tb.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRefillRespectsBlankLines(t *testing.T) {
	// Body paragraphs are separated by blank (side-only) lines; only
	// the one around the position is refilled.
	s := Default()
	tb := edit.NewTextBuffer(",----\n| a\n| b\n| \n| c\n| d\n`----\n")
	if err := s.Refill(tb, 8, 40); err != nil {
		t.Fatalf("Refill: %v", err)
	}
	want := ",----\n| a b\n| \n| c\n| d\n`----\n"
	if diff := cmp.Diff(want, tb.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRefillOutsideBox(t *testing.T) {
	s := Default()
	tb := edit.NewTextBuffer("one two three four\n\nnext paragraph\n")
	if err := s.Refill(tb, 0, 10); err != nil {
		t.Fatalf("Refill: %v", err)
	}
	want := "one two\nthree four\n\nnext paragraph\n"
	if diff := cmp.Diff(want, tb.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRefillEmptyBox(t *testing.T) {
	s := Default()
	doc := ",----\n`----\n"
	tb := edit.NewTextBuffer(doc)
	if err := s.Refill(tb, 0, 40); err != nil {
		t.Fatalf("Refill: %v", err)
	}
	if got := tb.String(); got != doc {
		t.Errorf("empty box changed: got %q, want %q", got, doc)
	}
}
