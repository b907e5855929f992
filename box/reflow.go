package box

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/rjkroege/semibox/edit"
)

// DefaultFillWidth is the fill column used when a caller has no better
// idea (no terminal, no configuration).
const DefaultFillWidth = 70

// Refill re-wraps the paragraph around q so no line exceeds width
// runes. Inside a box the operation is restricted to the box's content
// and the side prefix becomes the fill margin: it is stripped before
// wrapping, the wrap width excludes it, and every produced line gets it
// back, so the box's left border is regenerated consistently. Outside
// any box this is a plain paragraph fill.
func (s *Style) Refill(t edit.Texter, q, width int) error {
	if err := s.check(); err != nil {
		return err
	}
	if width <= 0 {
		width = DefaultFillWidth
	}

	if b, ok := s.Locate(t, q); ok {
		q0, q1 := s.Content(t, b)
		if q0 == q1 {
			return nil
		}
		if q < q0 {
			q = q0
		}
		if q >= q1 {
			q = q1 - 1
		}
		return edit.Narrow(t, q0, q1, func(v edit.Texter) error {
			return fillParagraph(v, q-q0, width, s.Side)
		})
	}
	return fillParagraph(t, q, width, "")
}

// fillParagraph re-wraps the paragraph containing q. A paragraph is a
// run of lines that are non-blank once prefix is stripped, bounded by
// blank lines or the buffer. The rewrapped text replaces the paragraph
// in one batched edit.
func fillParagraph(t edit.Texter, q, width int, prefix string) error {
	blank := func(line string) bool {
		return strings.TrimSpace(strings.TrimPrefix(line, prefix)) == ""
	}

	q, _ = t.Constrain(q, q)
	ls := edit.LineStart(t, q)
	if ls == t.Nc() || blank(edit.Line(t, ls)) {
		return nil
	}

	// Walk out to the paragraph bounds.
	start := ls
	for start > 0 {
		prev := edit.LineStart(t, start-1)
		if blank(edit.Line(t, prev)) {
			break
		}
		start = prev
	}
	end := edit.NextLine(t, ls)
	for end < t.Nc() && !blank(edit.Line(t, end)) {
		end = edit.NextLine(t, end)
	}
	terminated := end > start && t.ReadC(end-1) == '\n'

	// One line of words, then wrap at the width left of the margin.
	var words []string
	for l := start; l < end; l = edit.NextLine(t, l) {
		line := strings.TrimPrefix(edit.Line(t, l), prefix)
		words = append(words, strings.Fields(line)...)
	}
	lim := width - len([]rune(prefix))
	if lim < 1 {
		lim = 1
	}
	wrapped := strings.Split(wordwrap.WrapString(strings.Join(words, " "), uint(lim)), "\n")

	var out strings.Builder
	for i, line := range wrapped {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(prefix)
		out.WriteString(line)
	}
	if terminated {
		out.WriteByte('\n')
	}

	elog := edit.MakeElog()
	elog.Replace(start, end, []rune(out.String()))
	elog.Apply(t)
	return nil
}
