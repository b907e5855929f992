package box

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rjkroege/semibox/edit"
)

// Title returns the title encoded on b's top marker line, or "" when
// the box has none. The trailing text of the marker line is matched
// against the wildcarded title template; on a match the title is the
// text between the template's literal prefix and suffix. A title whose
// own text is shaped like another rendering of the template cannot be
// told apart from one; such a title reads back as written here but the
// format is inherently ambiguous about it.
func (s *Style) Title(t edit.Texter, b Box) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	trailing := s.trailing(t, b)
	if !s.titleRx.MatchString(trailing) {
		return "", nil
	}
	r := []rune(trailing)
	return string(r[1+s.titlePrefix : len(r)-s.titleSuffix]), nil
}

// SetTitle replaces the title on b's top marker line. An empty title
// removes any existing title outright. The rendered title is a single
// space and the filled-in template, appended after the marker text.
func (s *Style) SetTitle(t edit.Texter, b Box, title string) error {
	if err := s.check(); err != nil {
		return err
	}
	if strings.ContainsRune(title, '\n') {
		return errors.New("title: must not contain a line terminator")
	}
	markerEnd := b.Q0 + len([]rune(s.top()))
	lineEnd := edit.LineEnd(t, b.Q0)

	var rendered []rune
	if title != "" {
		rendered = []rune(" " + fmt.Sprintf(s.TitleFormat, title))
	}
	elog := edit.MakeElog()
	elog.Replace(markerEnd, lineEnd, rendered)
	elog.Apply(t)
	return nil
}

// trailing returns whatever follows the marker text on b's top line.
func (s *Style) trailing(t edit.Texter, b Box) string {
	markerEnd := b.Q0 + len([]rune(s.top()))
	return string(t.View(markerEnd, edit.LineEnd(t, b.Q0)))
}
