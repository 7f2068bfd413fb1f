package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System implements ports.Clipboard on the OS clipboard
type System struct{}

// NewSystem creates a new system clipboard adapter
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents
func (s *System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// ReadAll returns the clipboard contents
func (s *System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("clipboard not supported on this system")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}
