package box

import (
	"fmt"

	"github.com/rjkroege/semibox/edit"
)

// Decorate wraps [q0, q1) of t in a box and returns the box's range.
// Partial-line selections are normalized first: a mid-line boundary
// gets a line break inserted at the cut point, never a line merge. The
// markers and the side prefixes are staged in one edit log and applied
// as a single batch, so the text between the staged offsets is read in
// one coordinate system and the transform lands atomically.
//
// Decorate is not idempotent: applied to a range that already holds a
// box it produces a nested box, which is valid and independently
// locatable.
func (s *Style) Decorate(t edit.Texter, q0, q1 int) (Box, error) {
	if err := s.check(); err != nil {
		return Box{}, err
	}
	q0, q1 = t.Constrain(q0, q1)

	// Whole lines only. Break the line at either cut point.
	if !edit.AtLineStart(t, q0) {
		t.Insert(q0, []rune{'\n'})
		q0, q1 = q0+1, q1+1
	}
	broke := false
	if !edit.AtLineStart(t, q1) {
		t.Insert(q1, []rune{'\n'})
		q1++
		broke = true
	}

	side := []rune(s.Side)
	top := []rune(s.top() + "\n")
	bottom := []rune(s.bottom())
	// The bottom marker line goes unterminated only when the end cut
	// point was mid-line at the end of the document: the break inserted
	// there already terminates the content, and Undecorate takes the
	// break back out with the marker line.
	if !(broke && q1 == t.Nc()) {
		bottom = append(bottom, '\n')
	}

	elog := edit.MakeElog()
	elog.Insert(q0, top)
	nlines := 0
	for l := q0; l < q1; l = edit.NextLine(t, l) {
		elog.Insert(l, side)
		nlines++
	}
	elog.Insert(q1, bottom)
	elog.Apply(t)

	return Box{Q0: q0, Q1: q1 + len(top) + nlines*len(side) + len(bottom)}, nil
}

// Undecorate strips exactly one layer of box markers and side prefixes
// from b, the inverse of Decorate. Marker lines are deleted whole,
// terminator included; side-prefixed lines lose the side prefix; other
// lines pass through. Inner boxes of a nested box sit behind a side
// prefix and so survive intact.
func (s *Style) Undecorate(t edit.Texter, b Box) error {
	if err := s.check(); err != nil {
		return err
	}
	if !s.isTop(edit.Line(t, b.Q0)) {
		return fmt.Errorf("undecorate at %d: %w", b.Q0, ErrNoBox)
	}
	nside := len([]rune(s.Side))
	return edit.Narrow(t, b.Q0, b.Q1, func(v edit.Texter) error {
		elog := edit.MakeElog()
		for l := 0; l < v.Nc(); l = edit.NextLine(v, l) {
			switch line := edit.Line(v, l); {
			case s.isTop(line) || s.isBottom(line):
				start, end := l, edit.NextLine(v, l)
				// A final marker line with no terminator of its own
				// consumes its leading one.
				if end == v.Nc() && end > 0 && v.ReadC(end-1) != '\n' && start > 0 {
					start--
				}
				elog.Delete(start, end)
			case s.isSide(line):
				elog.Delete(l, l+nside)
			}
		}
		elog.Apply(v)
		return nil
	})
}

// Unbox locates the box at q and strips it in place.
func (s *Style) Unbox(t edit.Texter, q int) error {
	b, err := s.LocateOrErr(t, q)
	if err != nil {
		return err
	}
	return s.Undecorate(t, b)
}

// Kill locates the box at q, deletes it from the document whole and
// returns its verbatim text.
func (s *Style) Kill(t edit.Texter, q int) (string, error) {
	b, err := s.LocateOrErr(t, q)
	if err != nil {
		return "", err
	}
	text := string(t.View(b.Q0, b.Q1))
	t.Delete(b.Q0, b.Q1)
	return text, nil
}

// Text decorates text as a standalone document and returns the result,
// titled when title is non-empty. It is the string-in, string-out
// convenience behind the content provider commands.
func (s *Style) Text(text, title string) (string, error) {
	t := edit.NewTextBuffer(text)
	b, err := s.Decorate(t, 0, t.Nc())
	if err != nil {
		return "", err
	}
	if title != "" {
		if err := s.SetTitle(t, b, title); err != nil {
			return "", err
		}
	}
	return t.String(), nil
}
