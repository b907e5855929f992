package box

import (
	"fmt"
	"strings"

	"github.com/rjkroege/semibox/edit"
)

// A Box is a located annotation: a half-open rune-offset range
// [Q0, Q1) over the document. Q0 is the start of the top marker line;
// Q1 is just past the bottom marker line and its terminator. A Box is
// computed on demand and is stale after any edit.
type Box struct {
	Q0, Q1 int
}

type lineClass int

const (
	classNone lineClass = iota
	classTop
	classBottom
	classSide
)

// classify reports what role a line plays and at what nesting depth.
// Boxed boxes carry their inner marker lines behind one side prefix per
// enclosing box, so marker recognition strips side prefixes first and
// counts them. A line that is side prefixes all the way down to plain
// text is body text at that depth. Side text that happens to look like
// a deeper box is read as the deeper box; the ambiguity is inherent in
// the textual format.
func (s *Style) classify(line string) (lineClass, int) {
	depth := 0
	for {
		switch {
		case s.isTop(line):
			return classTop, depth
		case s.isBottom(line):
			return classBottom, depth
		case s.isSide(line):
			depth++
			line = strings.TrimPrefix(line, s.Side)
		default:
			if depth > 0 {
				return classSide, depth
			}
			return classNone, 0
		}
	}
}

// Locate resolves the box enclosing position q. The line containing q
// is classified; a marker line bounds its own box, a body line searches
// backward for its top marker and forward for its bottom marker. Both
// bounds must resolve. For nested boxes the innermost box wins: a body
// line at depth d belongs to the box whose markers sit at depth d-1.
func (s *Style) Locate(t edit.Texter, q int) (Box, bool) {
	if err := s.check(); err != nil {
		return Box{}, false
	}
	q0, _ := t.Constrain(q, q)
	ls := edit.LineStart(t, q0)

	switch cls, depth := s.classify(edit.Line(t, ls)); cls {
	case classTop:
		bot, ok := s.findMarker(t, edit.NextLine(t, ls), +1, classBottom, depth)
		if !ok {
			return Box{}, false
		}
		return Box{Q0: ls, Q1: edit.NextLine(t, bot)}, true

	case classSide:
		top, ok := s.findMarker(t, ls, -1, classTop, depth-1)
		if !ok {
			return Box{}, false
		}
		bot, ok := s.findMarker(t, edit.NextLine(t, ls), +1, classBottom, depth-1)
		if !ok {
			return Box{}, false
		}
		return Box{Q0: top, Q1: edit.NextLine(t, bot)}, true

	case classBottom:
		top, ok := s.findMarker(t, ls, -1, classTop, depth)
		if !ok {
			return Box{}, false
		}
		return Box{Q0: top, Q1: edit.NextLine(t, ls)}, true
	}
	return Box{}, false
}

// LocateOrErr is Locate for operations that require an existing box;
// it returns ErrNoBox instead of a false ok.
func (s *Style) LocateOrErr(t edit.Texter, q int) (Box, error) {
	b, ok := s.Locate(t, q)
	if !ok {
		return Box{}, fmt.Errorf("locate at %d: %w", q, ErrNoBox)
	}
	return b, nil
}

// findMarker walks whole lines from the line start at q in direction
// dir (+1 forward, -1 backward) and returns the start of the first line
// classified as want at the wanted depth.
func (s *Style) findMarker(t edit.Texter, q, dir int, want lineClass, depth int) (int, bool) {
	if dir < 0 {
		if q == 0 {
			return 0, false
		}
		q = edit.LineStart(t, q-1)
		for {
			if cls, d := s.classify(edit.Line(t, q)); cls == want && d == depth {
				return q, true
			}
			if q == 0 {
				return 0, false
			}
			q = edit.LineStart(t, q-1)
		}
	}
	for q < t.Nc() {
		if cls, d := s.classify(edit.Line(t, q)); cls == want && d == depth {
			return q, true
		}
		q = edit.NextLine(t, q)
	}
	return 0, false
}

// Content returns the range strictly between b's marker lines.
func (s *Style) Content(t edit.Texter, b Box) (q0, q1 int) {
	q0 = edit.NextLine(t, b.Q0)
	q1 = edit.LineStart(t, b.Q1-1)
	if q1 < q0 {
		q1 = q0
	}
	return q0, q1
}
