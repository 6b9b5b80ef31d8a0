package export

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

// Lines joins items with newlines, skipping blanks.
func Lines(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			kept = append(kept, item)
		}
	}
	return strings.Join(kept, "\n")
}

// Clipboard receives exported text.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// SystemClipboard writes to the operating system clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// Copy writes text to cb. Failures wrap apperrors.ErrClipboardFailed.
func Copy(cb Clipboard, text string) error {
	if err := cb.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrClipboardFailed, err)
	}
	return nil
}
