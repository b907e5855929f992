// Package content gathers text for boxing from the places users quote
// from: files, external command output, the system clipboard, arbitrary
// readers. Each provider yields the captured text plus an inferred
// title; the box transforms neither know nor care where text came from.
package content

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// A Source is a string of captured text and the title inferred from
// where it was captured.
type Source struct {
	Text  string
	Title string
}

// FromFile reads path whole; the path becomes the title.
func FromFile(path string) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("content: %w", err)
	}
	return Source{Text: normalize(b), Title: path}, nil
}

// FromReader drains r. The caller supplies whatever title it has.
func FromReader(r io.Reader, title string) (Source, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("content: %w", err)
	}
	return Source{Text: normalize(b), Title: title}, nil
}

// normalize decodes captured bytes the way an editor load does: NUL
// runes are elided, invalid encodings become RuneError.
func normalize(p []byte) string {
	r := make([]rune, 0, len(p))
	for nb := 0; nb < len(p); {
		var w int
		var ru rune
		if p[nb] < utf8.RuneSelf {
			w = 1
			ru = rune(p[nb])
		} else {
			ru, w = utf8.DecodeRune(p[nb:])
		}
		if ru != 0 {
			r = append(r, ru)
		}
		nb += w
	}
	return string(r)
}
