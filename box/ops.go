package box

import (
	"github.com/rjkroege/semibox/edit"
)

// Position-addressed forms of the box operations. Each resolves the box
// enclosing q first and fails with ErrNoBox when there is none.

// TitleAt returns the title of the box at q.
func (s *Style) TitleAt(t edit.Texter, q int) (string, error) {
	b, err := s.LocateOrErr(t, q)
	if err != nil {
		return "", err
	}
	return s.Title(t, b)
}

// SetTitleAt sets the title of the box at q.
func (s *Style) SetTitleAt(t edit.Texter, q int, title string) error {
	b, err := s.LocateOrErr(t, q)
	if err != nil {
		return err
	}
	return s.SetTitle(t, b, title)
}

// Rebox wraps the box at q in a further box and returns the outer box.
func (s *Style) Rebox(t edit.Texter, q int) (Box, error) {
	b, err := s.LocateOrErr(t, q)
	if err != nil {
		return Box{}, err
	}
	return s.Decorate(t, b.Q0, b.Q1)
}

// ContentAt returns the content range of the box at q.
func (s *Style) ContentAt(t edit.Texter, q int) (q0, q1 int, err error) {
	b, err := s.LocateOrErr(t, q)
	if err != nil {
		return 0, 0, err
	}
	q0, q1 = s.Content(t, b)
	return q0, q1, nil
}
