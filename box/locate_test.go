package box

import (
	"errors"
	"testing"

	"github.com/rjkroege/semibox/edit"
)

// The fixture document:
//
//	0   head
//	5   ,----
//	11  | one
//	17  | two
//	23  `----
//	29  tail
const locateDoc = "head\n,----\n| one\n| two\n`----\ntail\n"

func TestLocate(t *testing.T) {
	tab := []struct {
		name string
		q    int
		want Box
		ok   bool
	}{
		{"plain line above", 0, Box{}, false},
		{"top marker line", 5, Box{5, 29}, true},
		{"end of top marker line", 10, Box{5, 29}, true},
		{"first body line", 13, Box{5, 29}, true},
		{"second body line", 19, Box{5, 29}, true},
		{"bottom marker line", 24, Box{5, 29}, true},
		{"plain line below", 30, Box{}, false},
	}
	s := Default()
	for _, test := range tab {
		t.Run(test.name, func(t *testing.T) {
			tb := edit.NewTextBuffer(locateDoc)
			got, ok := s.Locate(tb, test.q)
			if ok != test.ok || got != test.want {
				t.Errorf("Locate(%d): got %v ok %v, want %v ok %v", test.q, got, ok, test.want, test.ok)
			}
		})
	}
}

func TestLocateUnpaired(t *testing.T) {
	tab := []struct {
		name string
		doc  string
		q    int
	}{
		{"top marker without bottom", "head\n,----\n| a\n", 6},
		{"bottom marker without top", "| a\n`----\n", 5},
		{"side lines without markers", "| a\n| b\n", 0},
		{"side line, only bottom", "| a\n`----\n", 0},
		{"empty document", "", 0},
	}
	s := Default()
	for _, test := range tab {
		t.Run(test.name, func(t *testing.T) {
			tb := edit.NewTextBuffer(test.doc)
			if b, ok := s.Locate(tb, test.q); ok {
				t.Errorf("Locate(%d) in %q: got %v, want not found", test.q, test.doc, b)
			}
		})
	}
}

func TestLocateOrErr(t *testing.T) {
	s := Default()
	tb := edit.NewTextBuffer("no boxes here\n")
	if _, err := s.LocateOrErr(tb, 3); !errors.Is(err, ErrNoBox) {
		t.Errorf("got %v, want ErrNoBox", err)
	}
}

func TestContent(t *testing.T) {
	s := Default()
	tb := edit.NewTextBuffer(locateDoc)
	b, err := s.LocateOrErr(tb, 13)
	if err != nil {
		t.Fatalf("LocateOrErr: %v", err)
	}
	q0, q1 := s.Content(tb, b)
	if got, want := string(tb.View(q0, q1)), "| one\n| two\n"; got != want {
		t.Errorf("content: got %q, want %q", got, want)
	}

	// A box with no body has an empty content range.
	tb = edit.NewTextBuffer(",----\n`----\n")
	b, err = s.LocateOrErr(tb, 0)
	if err != nil {
		t.Fatalf("LocateOrErr: %v", err)
	}
	q0, q1 = s.Content(tb, b)
	if q0 != q1 {
		t.Errorf("empty box content: got %d,%d, want equal offsets", q0, q1)
	}
}

func TestLocateCustomStyle(t *testing.T) {
	s := &Style{
		TopCorner:    "/",
		BottomCorner: "\\",
		TopAndTail:   "===",
		Side:         "> ",
		TitleFormat:  "< %s >",
	}
	tb := edit.NewTextBuffer("/===\n> quoted\n\\===\n")
	b, ok := s.Locate(tb, 7)
	if !ok {
		t.Fatalf("Locate: not found")
	}
	if got, want := string(tb.View(b.Q0, b.Q1)), "/===\n> quoted\n\\===\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// The default style finds nothing in it.
	if _, ok := Default().Locate(tb, 7); ok {
		t.Errorf("default style located a box in a custom-style document")
	}
}
