// Package box implements left-margin "semi-box" annotations for plain
// text: a top marker line, a side-prefixed body and a bottom marker
// line. It can decorate a range of a document with such a box, find the
// box enclosing a position, retitle it, re-fill its paragraphs and
// strip it back to plain text. The document is anything implementing
// edit.Texter.
package box

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoBox is returned by every operation that needs an existing box at
// the given position and cannot find one.
var ErrNoBox = errors.New("no box found")

// A Style holds the marker strings and the title template that govern
// box rendering. A Style must not be modified once it has been used;
// derived matchers are cached on first use.
type Style struct {
	TopCorner    string // first runes of the top marker line
	BottomCorner string // first runes of the bottom marker line
	TopAndTail   string // fill text following either corner
	Side         string // prefix applied to every body line
	TitleFormat  string // template with a single %s for the title text

	titleRx     *regexp.Regexp
	titlePrefix int // runes of rendered title before the title text
	titleSuffix int // runes of rendered title after the title text
}

// Default returns the conventional style:
//
//	,----
//	| quoted text
//	`----
//
// with titles rendered as [ title ].
func Default() *Style {
	return &Style{
		TopCorner:    ",",
		BottomCorner: "`",
		TopAndTail:   "----",
		Side:         "| ",
		TitleFormat:  "[ %s ]",
	}
}

// check validates the style and caches the derived title matcher. The
// template is rendered once with a sentinel to measure the literal text
// before and after the placeholder; the matcher is the same rendering
// with the sentinel replaced by a wildcard.
func (s *Style) check() error {
	if s.TopCorner == "" || s.BottomCorner == "" {
		return errors.New("style: corner strings must be non-empty")
	}
	if s.Side == "" {
		return errors.New("style: side string must be non-empty")
	}
	if strings.Count(s.TitleFormat, "%s") != 1 {
		return errors.New("style: title format must contain %s exactly once")
	}
	if s.titleRx != nil {
		return nil
	}

	const sentinel = "\x00"
	rendered := fmt.Sprintf(s.TitleFormat, sentinel)
	i := strings.Index(rendered, sentinel)
	s.titlePrefix = len([]rune(rendered[:i]))
	s.titleSuffix = len([]rune(rendered[i+len(sentinel):]))

	rx, err := regexp.Compile("^ " + strings.Replace(regexp.QuoteMeta(rendered), sentinel, ".*", 1) + "$")
	if err != nil {
		return fmt.Errorf("style: bad title format: %w", err)
	}
	s.titleRx = rx
	return nil
}

// top returns the text of a top marker line, without terminator.
func (s *Style) top() string { return s.TopCorner + s.TopAndTail }

// bottom returns the text of a bottom marker line, without terminator.
func (s *Style) bottom() string { return s.BottomCorner + s.TopAndTail }

func (s *Style) isTop(line string) bool    { return strings.HasPrefix(line, s.top()) }
func (s *Style) isBottom(line string) bool { return strings.HasPrefix(line, s.bottom()) }
func (s *Style) isSide(line string) bool   { return strings.HasPrefix(line, s.Side) }
