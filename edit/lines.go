package edit

// LineStart returns the offset of the first rune of the line containing q.
func LineStart(t Texter, q int) int {
	for q > 0 && t.ReadC(q-1) != '\n' {
		q--
	}
	return q
}

// LineEnd returns the offset of the newline terminating the line
// containing q, or Nc() for an unterminated final line.
func LineEnd(t Texter, q int) int {
	for q < t.Nc() && t.ReadC(q) != '\n' {
		q++
	}
	return q
}

// NextLine returns the start of the line following the one containing
// q. At the last line it returns Nc().
func NextLine(t Texter, q int) int {
	q = LineEnd(t, q)
	if q < t.Nc() {
		q++
	}
	return q
}

// AtLineStart reports whether q addresses the first rune of a line.
func AtLineStart(t Texter, q int) bool {
	return q == 0 || t.ReadC(q-1) == '\n'
}

// Line returns the text of the line containing q, without its terminator.
func Line(t Texter, q int) string {
	return string(t.View(LineStart(t, q), LineEnd(t, q)))
}
