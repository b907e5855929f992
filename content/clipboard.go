package content

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// FromClipboard captures the system clipboard.
func FromClipboard() (Source, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return Source{}, fmt.Errorf("content: clipboard: %w", err)
	}
	return Source{Text: s, Title: "clipboard"}, nil
}

// ToClipboard stores text on the system clipboard. Killing a box hands
// its text here so it survives the deletion.
func ToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("content: clipboard: %w", err)
	}
	return nil
}
